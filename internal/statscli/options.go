// internal/statscli/options.go
package statscli

import (
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"refasta/internal/clibase"
)

// Output formats accepted by refastat.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
)

// Options holds all refastat flags and arguments.
type Options struct {
	clibase.Common

	PerRecord bool // one row per record instead of per-file aggregates
}

// NewFlagSet returns a configured FlagSet with grouped usage text.
func NewFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetInterspersed(true)
	clibase.UsageCommon(fs, name, "Multi-FASTA sequence statistics", func(out io.Writer, def func(string) string) {
		fmt.Fprintf(out, "Usage:\n  %s [flags] [file ...]\n", name)
		fmt.Fprintln(out, "\nFormat:")
		fmt.Fprintf(out, "  -o, --output string         Output: text | json | jsonl [%s]\n", def("output"))
		fmt.Fprintf(out, "      --per-record            Per-record rows instead of per-file aggregates [%s]\n", def("per-record"))
	})
	return fs
}

// ParseArgs registers and parses all flags, returning an Options struct.
func ParseArgs(fs *pflag.FlagSet, argv []string) (Options, error) {
	var opt Options
	noHeader := clibase.Register(fs, &opt.Common)

	fs.BoolVar(&opt.PerRecord, "per-record", false, "per-record rows instead of per-file aggregates")

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
	case FormatText, FormatJSON, FormatJSONL:
	default:
		return opt, fmt.Errorf("invalid --output %q", opt.Output)
	}
	return opt, nil
}
