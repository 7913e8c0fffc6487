// internal/output/fasta.go
package output

import (
	"fmt"
	"io"

	"refasta/internal/records"
)

// writeRecordFASTA emits one record: the descriptor byte-for-byte, then
// the sequence wrapped at wrap columns (0 = one line). Records without a
// sequence emit only their header line, which round-trips back to an
// empty body.
func writeRecordFASTA(w io.Writer, r records.Record, wrap int) error {
	if _, err := fmt.Fprintf(w, ">%s\n", r.Descriptor); err != nil {
		return err
	}
	seq := r.Seq
	if len(seq) == 0 {
		return nil
	}
	if wrap <= 0 {
		wrap = len(seq)
	}
	for start := 0; start < len(seq); start += wrap {
		end := min(start+wrap, len(seq))
		if _, err := w.Write(seq[start:end]); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

// StreamFASTA streams FASTA records from a channel to the writer.
func StreamFASTA(w io.Writer, in <-chan records.Record, wrap int) error {
	for r := range in {
		if err := writeRecordFASTA(w, r, wrap); err != nil {
			return err
		}
	}
	return nil
}

// WriteFASTA writes a slice of records as FASTA to the writer.
func WriteFASTA(w io.Writer, list []records.Record, wrap int) error {
	for _, r := range list {
		if err := writeRecordFASTA(w, r, wrap); err != nil {
			return err
		}
	}
	return nil
}
