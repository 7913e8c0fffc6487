// internal/statsapp/app.go
package statsapp

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"refasta/internal/appcore"
	"refasta/internal/stats"
	"refasta/internal/statscli"
	"refasta/internal/version"
	"refasta/internal/visitors"
	"refasta/internal/writers"
)

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := statscli.NewFlagSet("refastat")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		_, _ = statscli.ParseArgs(fs, []string{"-h"})
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

	opts, err := statscli.ParseArgs(fs, argv)
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
		_, _ = fmt.Fprintf(outw, "refastat version %s\n", version.Version)
		if e := outw.Flush(); writers.IsBrokenPipe(e) {
			return 0
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return 0
	}

	if opts.Examples {
		statscli.PrintExamples(outw)
		if e := outw.Flush(); writers.IsBrokenPipe(e) {
			return 0
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return 0
	}

	coreOpts := appcore.Options{
		SeqFiles:  opts.SeqFiles,
		Threads:   opts.Threads,
		Unique:    opts.Unique,
		DedupeCap: opts.DedupeCap,
		Quiet:     opts.Quiet,
	}
	writer := appcore.NewStatsWriterFactory(opts.Output, opts.Sort, opts.Header, opts.PerRecord)
	return appcore.Run[stats.RecordStats](parent, stdout, stderr, coreOpts, visitors.Stats{}.Visit, writer)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
