// internal/output/json.go
package output

import (
	"io"

	"refasta/internal/jsonutil"
	"refasta/internal/records"
	"refasta/pkg/api"
)

// ToAPIRecord converts a record projection to the stable wire schema (v1).
func ToAPIRecord(r records.Record) api.RecordV1 {
	return api.RecordV1{
		SourceFile: r.SourceFile,
		Index:      r.Index,
		ID:         r.ID,
		Descriptor: r.Descriptor,
		Length:     r.SeqLen,
		Lines:      r.Lines,
		Seq:        string(r.Seq),
	}
}

func toAPIRecords(list []records.Record) []api.RecordV1 {
	out := make([]api.RecordV1, 0, len(list))
	for _, r := range list {
		out = append(out, ToAPIRecord(r))
	}
	return out
}

// WriteJSON writes a single JSON array of v1 records (pretty-indented).
func WriteJSON(w io.Writer, list []records.Record) error {
	return jsonutil.EncodePretty(w, toAPIRecords(list))
}
