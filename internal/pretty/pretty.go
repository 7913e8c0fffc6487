// internal/pretty/pretty.go
//
// Package pretty renders the optional per-record block printed under text
// rows (--pretty). Lines are comment-prefixed so the surrounding TSV
// stream stays machine-parseable.
package pretty

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/muesli/reflow/ansi"
	"golang.org/x/term"

	"refasta/internal/records"
)

const linePrefix = "# "

// Options control the ASCII block rendering.
type Options struct {
	// Total printed width cap per line, prefix included. If <=0, use
	// DefaultOptions.Width. Only the descriptor line is width-capped;
	// the sequence line is bounded by HeadTail instead.
	Width int

	// Sequence preview bases kept at each end around the ellipsis.
	HeadTail int

	// Glyph between the preview halves. Default "…".
	Ellipsis string
}

// DefaultOptions keeps the stock look: 80 columns, 10-base preview ends.
var DefaultOptions = Options{
	Width:    80,
	HeadTail: 10,
	Ellipsis: "…",
}

// TerminalWidth returns the stdout terminal width, the COLUMNS variable,
// or fallback, in that order (first usable value wins).
func TerminalWidth(fallback int) int {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	if v := os.Getenv("COLUMNS"); v != "" {
		if w, err := strconv.Atoi(v); err == nil && w > 0 {
			return w
		}
	}
	return fallback
}

// truncate caps s at limit printable cells, ellipsizing when it is cut.
// Widths are measured with reflow's ansi so multi-cell runes in a
// descriptor do not blow past the cap unnoticed.
func truncate(s string, limit int) string {
	if ansi.PrintableRuneWidth(s) <= limit {
		return s
	}
	if limit <= 0 {
		return ""
	}
	if limit == 1 {
		return "…"
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

// seqPreview shows the whole sequence when it is short enough, otherwise
// headTail bases from each end around the ellipsis.
func seqPreview(seq []byte, headTail int, ellipsis string) string {
	if len(seq) <= 2*headTail+1 {
		return string(seq)
	}
	return string(seq[:headTail]) + ellipsis + string(seq[len(seq)-headTail:])
}

// RenderRecordWithOptions prints the per-record block: the header line
// with its marker restored, then a 5'→3' sequence preview with length and
// line counts, then a spacer.
func RenderRecordWithOptions(r records.Record, opt Options) string {
	width := opt.Width
	if width <= 0 {
		width = DefaultOptions.Width
	}
	headTail := opt.HeadTail
	if headTail <= 0 {
		headTail = DefaultOptions.HeadTail
	}
	ellipsis := opt.Ellipsis
	if ellipsis == "" {
		ellipsis = DefaultOptions.Ellipsis
	}

	var b strings.Builder

	// 1) Header line, width-capped ('>' + descriptor).
	fmt.Fprintf(&b, "%s>%s\n", linePrefix, truncate(r.Descriptor, width-len(linePrefix)-1))

	// 2) Sequence preview plus counts.
	switch {
	case r.SeqLen == 0:
		fmt.Fprintf(&b, "%s(empty sequence)\n", linePrefix)
	case len(r.Seq) == 0:
		fmt.Fprintf(&b, "%s(pretty not available: sequence missing)\n", linePrefix)
	default:
		fmt.Fprintf(&b, "%s5'-%s-3'  (%d bp, %d lines)\n",
			linePrefix, seqPreview(r.Seq, headTail, ellipsis), r.SeqLen, r.Lines)
	}

	// spacer
	b.WriteString("#\n")
	return b.String()
}

// RenderRecord keeps backward compat (uses DefaultOptions).
func RenderRecord(r records.Record) string {
	return RenderRecordWithOptions(r, DefaultOptions)
}
