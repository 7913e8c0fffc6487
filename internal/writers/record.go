// internal/writers/record.go
package writers

import (
	"io"

	"refasta/internal/common"
	"refasta/internal/output"
	"refasta/internal/pretty"
	"refasta/internal/records"
)

type recordArgs struct {
	Sort   bool
	Header bool
	Pretty bool
	Wrap   int
	Opt    pretty.Options
	In     <-chan records.Record
}

func drainRecords(ch <-chan records.Record) []records.Record {
	list := make([]records.Record, 0, 128)
	for r := range ch {
		list = append(list, r)
	}
	return list
}

func init() {
	// JSON array
	RegisterRecord(output.FormatJSON, func(w io.Writer, payload any) error {
		args := payload.(recordArgs)
		list := drainRecords(args.In)
		if args.Sort {
			common.SortRecords(list)
		}
		return output.WriteJSON(w, list)
	})

	// JSONL streaming
	RegisterRecord(output.FormatJSONL, func(w io.Writer, payload any) error {
		args := payload.(recordArgs)
		pipe, done := StartRecordJSONLWriter(w, 64)
		for r := range args.In {
			pipe <- r
		}
		close(pipe)
		return <-done
	})

	// FASTA re-emission (stream or buffered+sort)
	RegisterRecord(output.FormatFASTA, func(w io.Writer, payload any) error {
		args := payload.(recordArgs)
		if args.Sort {
			list := drainRecords(args.In)
			common.SortRecords(list)
			return output.WriteFASTA(w, list, args.Wrap)
		}
		return output.StreamFASTA(w, args.In, args.Wrap)
	})

	// TEXT/TSV (+ optional pretty blocks)
	RegisterRecord(output.FormatText, func(w io.Writer, payload any) error {
		args := payload.(recordArgs)
		var render func(records.Record) string
		if args.Pretty {
			render = func(r records.Record) string { return pretty.RenderRecordWithOptions(r, args.Opt) }
		}
		if args.Sort {
			list := drainRecords(args.In)
			common.SortRecords(list)
			return output.WriteTextWithRenderer(w, list, args.Header, args.Pretty, render)
		}
		return output.StreamTextWithRenderer(w, args.In, args.Header, args.Pretty, render)
	})
}

// StartRecordWriter spins up a writer goroutine for record projections.
// (Backward-compatible wrapper using pretty.DefaultOptions)
func StartRecordWriter(out io.Writer, format string, sort, header, prettyMode bool, wrap, bufSize int) (chan<- records.Record, <-chan error) {
	return StartRecordWriterWithPrettyOptions(out, format, sort, header, prettyMode, wrap, pretty.DefaultOptions, bufSize)
}

// StartRecordWriterWithPrettyOptions allows customizing the pretty renderer.
func StartRecordWriterWithPrettyOptions(out io.Writer, format string, sort, header, prettyMode bool, wrap int, popt pretty.Options, bufSize int) (chan<- records.Record, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan records.Record, bufSize)
	errCh := make(chan error, 1)
	go func() {
		errCh <- WriteRecord(format, out, recordArgs{
			Sort:   sort,
			Header: header,
			Pretty: prettyMode,
			Wrap:   wrap,
			Opt:    popt,
			In:     in,
		})
	}()
	return in, errCh
}
