// internal/writers/jsonl.go
package writers

import (
	"encoding/json"
	"io"

	"refasta/internal/jsonlutil"
	"refasta/internal/output"
	"refasta/internal/records"
	"refasta/internal/stats"
)

// StartRecordJSONLWriter streams each record as one JSON line (v1).
func StartRecordJSONLWriter(out io.Writer, bufSize int) (chan<- records.Record, <-chan error) {
	return jsonlutil.Start[records.Record](out, bufSize,
		func(enc *json.Encoder, r records.Record) error {
			return enc.Encode(output.ToAPIRecord(r))
		},
		IsBrokenPipe,
	)
}

// StartStatsJSONLWriter streams per-record stats as JSON lines (v1).
func StartStatsJSONLWriter(out io.Writer, bufSize int) (chan<- stats.RecordStats, <-chan error) {
	return jsonlutil.Start[stats.RecordStats](out, bufSize,
		func(enc *json.Encoder, s stats.RecordStats) error {
			return enc.Encode(output.ToAPIRecordStats(s))
		},
		IsBrokenPipe,
	)
}

// StartFileStatsJSONLWriter streams per-file aggregates as JSON lines (v1).
func StartFileStatsJSONLWriter(out io.Writer, bufSize int) (chan<- stats.FileStats, <-chan error) {
	return jsonlutil.Start[stats.FileStats](out, bufSize,
		func(enc *json.Encoder, f stats.FileStats) error {
			return enc.Encode(output.ToAPIFileStats(f))
		},
		IsBrokenPipe,
	)
}
