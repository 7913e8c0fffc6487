// internal/clibase/usage.go
package clibase

import (
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"refasta/internal/version"
)

// UsageCommon installs a shared Usage() handler on fs. tagline is the
// one-line tool description; extra prints tool-specific sections (usage
// line, examples, the tool's own flags).
func UsageCommon(fs *pflag.FlagSet, name, tagline string, extra func(out io.Writer, def func(string) string)) {
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		// Header
		fmt.Fprintf(out, "%s – %s\n", name, tagline)
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)

		// Tool-specific additions (usage line, examples, extra flags)
		if extra != nil {
			extra(out, def)
		}

		// Shared blocks
		fmt.Fprintln(out, "\nInput:")
		fmt.Fprintln(out, "  -s, --sequences file        FASTA file(s) (repeatable) or '-' for stdin;")
		fmt.Fprintln(out, "                              plain/gzip/zstd/lz4 inputs are detected automatically;")
		fmt.Fprintln(out, "                              positional paths and globs are accepted too")

		fmt.Fprintln(out, "\nPerformance:")
		fmt.Fprintf(out, "  -t, --threads int           Parallel file loads (0 = all CPUs) [%s]\n", def("threads"))
		fmt.Fprintf(out, "      --dedupe-cap int        Max IDs remembered by --unique (0 = unbounded) [%s]\n", def("dedupe-cap"))

		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintf(out, "      --sort                  Sort rows by (source_file, id) [%s]\n", def("sort"))
		fmt.Fprintf(out, "      --unique                Drop records with repeated IDs, first wins [%s]\n", def("unique"))
		fmt.Fprintf(out, "      --no-header             Suppress header line in text/TSV [%s]\n", def("no-header"))

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintf(out, "  -q, --quiet                 Suppress non-essential warnings [%s]\n", def("quiet"))
		fmt.Fprintln(out, "      --examples              Print quickstart examples and exit")
		fmt.Fprintln(out, "  -v, --version               Print version and exit")
		fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
	}
}
