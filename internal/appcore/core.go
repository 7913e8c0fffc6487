// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"

	"refasta/internal/cmdutil"
	"refasta/internal/pipeline"
	"refasta/internal/writers"
)

type Options struct {
	SeqFiles []string

	Threads   int
	Unique    bool
	DedupeCap int

	Quiet bool
}

// VisitorFunc filters and converts one pipeline item into the writer's
// payload type. Returning keep=false drops the item silently.
type VisitorFunc[T any] func(pipeline.Item) (keep bool, out T, err error)

// WriterFactory builds the output goroutine for a payload type. NeedSeq
// tells the caller whether its visitor must copy sequence bytes out of
// the zero-copy view before the backing buffer goes away.
type WriterFactory[T any] interface {
	NeedSeq() bool
	Start(out io.Writer, bufSize int) (chan<- T, <-chan error)
}

// Run wires pipeline → visitor → writer and maps the outcome onto exit
// codes: 0 ok (broken pipe included), 1 load/parse failure, 3 write
// failure, 130 canceled.
func Run[T any](
	parent context.Context,
	stdout, stderr io.Writer,
	o Options,
	visit VisitorFunc[T],
	wf WriterFactory[T],
) int {
	outw := bufio.NewWriter(stdout)

	thr := o.Threads
	if thr <= 0 {
		thr = runtime.NumCPU()
	}

	inCh, writeErr := wf.Start(outw, thr*4)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	_, perr := cmdutil.RunStream[T](
		ctx,
		pipeline.Config{
			Threads:   thr,
			Unique:    o.Unique,
			DedupeCap: o.DedupeCap,
			Warn:      stderr,
			Quiet:     o.Quiet,
		},
		o.SeqFiles,
		visit,
		func(x T) error {
			select {
			case inCh <- x:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	)

	close(inCh)

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return 0
	} else if werr != nil {
		fmt.Fprintln(stderr, werr)
		return 3
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		fmt.Fprintln(stderr, e)
		return 3
	}

	if perr != nil {
		if errors.Is(perr, context.Canceled) {
			return 130
		}
		fmt.Fprintln(stderr, perr)
		return 1
	}
	return 0
}
