// internal/cli/options.go
package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"refasta/internal/clibase"
)

// Output formats accepted by refasta.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
	FormatFASTA = "fasta"
)

// Options holds all refasta flags and arguments.
type Options struct {
	clibase.Common

	// FASTA re-emission
	Wrap int // sequence line width; 0 = single line

	// Output extras
	Pretty     bool
	IncludeSeq bool // include sequences in json/jsonl
}

// NewFlagSet returns a configured FlagSet with grouped usage text.
func NewFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetInterspersed(true)
	clibase.UsageCommon(fs, name, "reformat and convert Multi-FASTA", func(out io.Writer, def func(string) string) {
		fmt.Fprintf(out, "Usage:\n  %s [flags] [file ...]\n", name)
		fmt.Fprintln(out, "\nFormat:")
		fmt.Fprintf(out, "  -o, --output string         Output: text | json | jsonl | fasta [%s]\n", def("output"))
		fmt.Fprintf(out, "  -w, --wrap int              FASTA sequence line width (0 = single line) [%s]\n", def("wrap"))
		fmt.Fprintf(out, "      --seq                   Include sequences in json/jsonl [%s]\n", def("seq"))
		fmt.Fprintf(out, "      --pretty                Per-record summary block under text output [%s]\n", def("pretty"))
	})
	return fs
}

// ParseArgs registers and parses all flags, returning an Options struct.
// --version short-circuits validation; -h/--help surfaces pflag.ErrHelp.
func ParseArgs(fs *pflag.FlagSet, argv []string) (Options, error) {
	var opt Options
	noHeader := clibase.Register(fs, &opt.Common)

	fs.IntVarP(&opt.Wrap, "wrap", "w", 60, "FASTA sequence line width (0 = single line)")
	fs.BoolVar(&opt.Pretty, "pretty", false, "per-record summary block under text output")
	fs.BoolVar(&opt.IncludeSeq, "seq", false, "include sequences in json/jsonl")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if opt.Version || opt.Examples {
		return opt, nil
	}
	if err := clibase.AfterParse(&opt.Common, noHeader, fs.Args()); err != nil {
		return opt, err
	}

	switch opt.Output {
	case FormatText, FormatJSON, FormatJSONL, FormatFASTA:
	default:
		return opt, fmt.Errorf("invalid --output %q", opt.Output)
	}
	if opt.Wrap < 0 {
		return opt, errors.New("--wrap must be ≥ 0")
	}
	return opt, nil
}
