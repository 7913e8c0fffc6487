// internal/output/text.go
package output

import (
	"fmt"
	"io"

	"refasta/internal/records"
)

// FormatRecordRowTSV returns the base columns (no trailing newline).
// Descriptors are emitted raw; a descriptor containing tabs widens its row.
func FormatRecordRowTSV(r records.Record) string {
	return fmt.Sprintf("%s\t%d\t%s\t%s\t%d\t%d",
		r.SourceFile, r.Index, r.ID, r.Descriptor, r.SeqLen, r.Lines)
}

func writeRecordText(w io.Writer, r records.Record, pretty bool, render func(records.Record) string) error {
	if _, err := fmt.Fprintln(w, FormatRecordRowTSV(r)); err != nil {
		return err
	}
	if pretty && render != nil {
		if _, err := io.WriteString(w, render(r)); err != nil {
			return err
		}
	}
	return nil
}

// WriteTextWithRenderer writes TSV rows (header first unless disabled),
// appending a rendered block per record when pretty is set.
func WriteTextWithRenderer(w io.Writer, list []records.Record, header, pretty bool, render func(records.Record) string) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for _, r := range list {
		if err := writeRecordText(w, r, pretty, render); err != nil {
			return err
		}
	}
	return nil
}

// StreamTextWithRenderer is WriteTextWithRenderer over a channel.
func StreamTextWithRenderer(w io.Writer, in <-chan records.Record, header, pretty bool, render func(records.Record) string) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for r := range in {
		if err := writeRecordText(w, r, pretty, render); err != nil {
			return err
		}
	}
	return nil
}
