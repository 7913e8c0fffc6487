// internal/statscli/examples.go
package statscli

import (
	"fmt"
	"io"

	"refasta/internal/clibase"
)

// PrintExamples prints a tiny, focused quickstart for refastat.
func PrintExamples(out io.Writer) {
	clibase.PrintExamples(out, "refastat", func(w io.Writer) {
		_, _ = fmt.Fprintln(w, "Sequence statistics: lengths and GC content per file or per record.")
		_, _ = fmt.Fprintln(w, "\nExamples:")
		_, _ = fmt.Fprintln(w, "  refastat genome.fa")
		_, _ = fmt.Fprintln(w, "  refastat --per-record --sort assembly.fa.zst")
		_, _ = fmt.Fprintln(w, "  refastat --output json *.fa")
	})
}
