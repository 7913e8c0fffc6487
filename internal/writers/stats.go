// internal/writers/stats.go
package writers

import (
	"io"

	"refasta/internal/common"
	"refasta/internal/output"
	"refasta/internal/stats"
)

type statsArgs struct {
	Sort      bool
	Header    bool
	PerRecord bool
	In        <-chan stats.RecordStats
}

func drainStats(ch <-chan stats.RecordStats) []stats.RecordStats {
	list := make([]stats.RecordStats, 0, 128)
	for s := range ch {
		list = append(list, s)
	}
	return list
}

// feed pumps a buffered list through a JSONL pipe and waits it out.
func feed[T any](pipe chan<- T, done <-chan error, list []T) error {
	for _, v := range list {
		pipe <- v
	}
	close(pipe)
	return <-done
}

func init() {
	// TEXT/TSV: per-record rows stream; aggregates buffer by necessity.
	RegisterStats(output.FormatText, func(w io.Writer, payload any) error {
		args := payload.(statsArgs)
		if args.PerRecord && !args.Sort {
			return output.StreamStatsTSV(w, args.In, args.Header)
		}
		list := drainStats(args.In)
		if args.PerRecord {
			common.SortRecordStats(list)
			return output.WriteStatsTSV(w, list, args.Header)
		}
		files := stats.Aggregate(list)
		if args.Sort {
			common.SortFileStats(files)
		}
		return output.WriteFileStatsTSV(w, files, args.Header)
	})

	// JSON array
	RegisterStats(output.FormatJSON, func(w io.Writer, payload any) error {
		args := payload.(statsArgs)
		list := drainStats(args.In)
		if args.PerRecord {
			if args.Sort {
				common.SortRecordStats(list)
			}
			return output.WriteStatsJSON(w, list)
		}
		files := stats.Aggregate(list)
		if args.Sort {
			common.SortFileStats(files)
		}
		return output.WriteFileStatsJSON(w, files)
	})

	// JSONL: per-record streams unless sorted; aggregates always buffer.
	RegisterStats(output.FormatJSONL, func(w io.Writer, payload any) error {
		args := payload.(statsArgs)
		if args.PerRecord {
			if !args.Sort {
				pipe, done := StartStatsJSONLWriter(w, 64)
				for s := range args.In {
					pipe <- s
				}
				close(pipe)
				return <-done
			}
			list := drainStats(args.In)
			common.SortRecordStats(list)
			pipe, done := StartStatsJSONLWriter(w, 64)
			return feed(pipe, done, list)
		}
		files := stats.Aggregate(drainStats(args.In))
		if args.Sort {
			common.SortFileStats(files)
		}
		pipe, done := StartFileStatsJSONLWriter(w, 64)
		return feed(pipe, done, files)
	})
}

// StartStatsWriter spins up a writer goroutine for per-record statistics.
// With perRecord unset the goroutine aggregates everything it receives
// into per-file rows before writing.
func StartStatsWriter(out io.Writer, format string, sort, header, perRecord bool, bufSize int) (chan<- stats.RecordStats, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan stats.RecordStats, bufSize)
	errCh := make(chan error, 1)
	go func() {
		errCh <- WriteStats(format, out, statsArgs{
			Sort:      sort,
			Header:    header,
			PerRecord: perRecord,
			In:        in,
		})
	}()
	return in, errCh
}
