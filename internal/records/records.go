// internal/records/records.go
package records

import (
	"refasta-core/fasta"
)

// Record is the owned projection of one parsed FASTA record that flows
// through writers. Unlike fasta.Record it does not alias any input buffer,
// so it stays valid after the source document is dropped.
type Record struct {
	SourceFile string
	Index      int // 1-based position within its source file
	ID         string
	Descriptor string
	SeqLen     int
	Lines      int
	Seq        []byte // newline-free sequence; nil unless requested
}

// Project builds the projection for rec. The sequence is materialized via
// CopySequential only when includeSeq is set; metadata-only outputs skip
// the copy entirely.
func Project(rec fasta.Record, sourceFile string, index int, includeSeq bool) Record {
	r := Record{
		SourceFile: sourceFile,
		Index:      index,
		ID:         rec.ID(),
		Descriptor: string(rec.Descriptor()),
		SeqLen:     rec.SeqLen(),
		Lines:      rec.Lines(),
	}
	if includeSeq {
		r.Seq = rec.CopySequential()
	}
	return r
}
