// internal/cli/examples.go
package cli

import (
	"fmt"
	"io"

	"refasta/internal/clibase"
)

// PrintExamples prints a tiny, focused quickstart for refasta.
func PrintExamples(out io.Writer) {
	clibase.PrintExamples(out, "refasta", func(w io.Writer) {
		_, _ = fmt.Fprintln(w, "Reformat Multi-FASTA: TSV summaries, JSON, or re-wrapped FASTA.")
		_, _ = fmt.Fprintln(w, "\nExamples:")
		_, _ = fmt.Fprintln(w, "  refasta genome.fa")
		_, _ = fmt.Fprintln(w, "  refasta --output json --seq genome.fa.gz")
		_, _ = fmt.Fprintln(w, "  refasta --output fasta --wrap 80 --unique scaffolds.fa > clean.fa")
		_, _ = fmt.Fprintln(w, "  cat reads.fa | refasta --output jsonl -")
	})
}
