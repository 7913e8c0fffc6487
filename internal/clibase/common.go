// internal/clibase/common.go
package clibase

import (
	"errors"

	"github.com/spf13/pflag"

	"refasta/internal/cliutil"
)

// Common holds CLI fields shared by refasta and refastat.
type Common struct {
	// Input
	SeqFiles []string

	// Performance
	Threads   int
	DedupeCap int

	// Output
	Output string // each tool validates its own format set
	Sort   bool
	Unique bool
	Header bool // true unless --no-header

	// Misc
	Quiet    bool
	Examples bool
	Version  bool
}

// Register wires shared flags onto fs and returns a pointer to the
// "no-header" bool that AfterParse folds into Common.Header.
func Register(fs *pflag.FlagSet, c *Common) *bool {
	// Input
	fs.StringArrayVarP(&c.SeqFiles, "sequences", "s", nil, "FASTA file(s) (repeatable) or '-' for stdin")

	// Performance
	fs.IntVarP(&c.Threads, "threads", "t", 0, "parallel file loads (0 = all CPUs)")
	fs.IntVar(&c.DedupeCap, "dedupe-cap", 0, "max IDs remembered by --unique (0 = unbounded)")

	// Output
	fs.StringVarP(&c.Output, "output", "o", "text", "output format")
	fs.BoolVar(&c.Sort, "sort", false, "sort rows by (source_file, id) instead of input order")
	fs.BoolVar(&c.Unique, "unique", false, "drop records with repeated IDs (first wins)")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line in text/TSV")

	// Misc
	fs.BoolVarP(&c.Quiet, "quiet", "q", false, "suppress non-essential warnings")
	fs.BoolVar(&c.Examples, "examples", false, "print quickstart examples and exit")
	fs.BoolVarP(&c.Version, "version", "v", false, "print version and exit")

	return &noHeader
}

// AfterParse finalizes header and expands positionals, then runs shared
// validation. Positional arguments (including globs) are appended after
// the repeatable --sequences values.
func AfterParse(c *Common, noHeader *bool, posArgs []string) error {
	c.Header = !*noHeader

	if len(posArgs) > 0 {
		exp, err := cliutil.ExpandPositionals(posArgs)
		if err != nil {
			return err
		}
		c.SeqFiles = append(c.SeqFiles, exp...)
	}
	return Validate(c)
}

// Validate applies shared CLI invariants used by both tools.
func Validate(c *Common) error {
	if len(c.SeqFiles) == 0 {
		return errors.New("at least one sequence file is required")
	}
	if c.Threads < 0 {
		return errors.New("--threads must be ≥ 0")
	}
	if c.DedupeCap < 0 {
		return errors.New("--dedupe-cap must be ≥ 0")
	}
	return nil
}
