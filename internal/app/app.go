// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"refasta/internal/appcore"
	"refasta/internal/cli"
	"refasta/internal/cmdutil"
	"refasta/internal/output"
	"refasta/internal/pretty"
	"refasta/internal/records"
	"refasta/internal/version"
	"refasta/internal/visitors"
	"refasta/internal/writers"
)

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("refasta")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		_, _ = cli.ParseArgs(fs, []string{"-h"})
		fs.SetOutput(outw)
		fs.Usage()
		if err := outw.Flush(); writers.IsBrokenPipe(err) {
			return 0
		} else if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 3
		}
		return 0
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			if e := outw.Flush(); writers.IsBrokenPipe(e) {
				return 0
			} else if e != nil {
				_, _ = fmt.Fprintln(stderr, e)
				return 3
			}
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
		if e := outw.Flush(); writers.IsBrokenPipe(e) {
			return 0
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return 2
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "refasta version %s\n", version.Version)
		if e := outw.Flush(); writers.IsBrokenPipe(e) {
			return 0
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return 0
	}

	if opts.Examples {
		cli.PrintExamples(outw)
		if e := outw.Flush(); writers.IsBrokenPipe(e) {
			return 0
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return 0
	}

	// Flag combinations that parse fine but do nothing get a warning, not
	// an error.
	if fs.Changed("wrap") && opts.Output != output.FormatFASTA {
		cmdutil.Warnf(stderr, opts.Quiet, "--wrap has no effect without --output fasta")
	}
	if opts.Pretty && opts.Output != output.FormatText {
		cmdutil.Warnf(stderr, opts.Quiet, "--pretty has no effect without --output text")
	}
	if opts.IncludeSeq && opts.Output != output.FormatJSON && opts.Output != output.FormatJSONL {
		cmdutil.Warnf(stderr, opts.Quiet, "--seq has no effect with --output %s", opts.Output)
	}

	popt := pretty.DefaultOptions
	if opts.Pretty {
		popt.Width = pretty.TerminalWidth(popt.Width)
	}

	coreOpts := appcore.Options{
		SeqFiles:  opts.SeqFiles,
		Threads:   opts.Threads,
		Unique:    opts.Unique,
		DedupeCap: opts.DedupeCap,
		Quiet:     opts.Quiet,
	}
	writer := appcore.NewRecordWriterFactory(opts.Output, opts.Sort, opts.Header, opts.Pretty, opts.Wrap, opts.IncludeSeq, popt)
	return appcore.Run[records.Record](parent, stdout, stderr, coreOpts, visitors.Project{IncludeSeq: writer.NeedSeq()}.Visit, writer)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
