// internal/jsonlutil/jsonlutil.go
//
// Package jsonlutil runs JSONL encoder goroutines over a shared pool of
// buffered writers, so each record and stats stream costs one channel and
// no per-writer allocation.
package jsonlutil

import (
	"bufio"
	"encoding/json"
	"io"
	"sync"
)

// One pooled 64 KiB buffer per concurrent JSONL stream. The encoder is
// tiny and bound to its writer, so it is created fresh per goroutine.
var bwPool = sync.Pool{
	New: func() any {
		return bufio.NewWriterSize(io.Discard, 64<<10)
	},
}

// Start spins up a JSONL encoder goroutine for values of type T. encode
// converts one value to its wire type and calls enc.Encode; isBroken
// recognizes broken/closed pipe errors so an early `head` exit is not an
// error. The returned channel must be closed by the caller; the error
// channel then yields exactly one value. HTML escaping is off for the
// same reason as jsonutil.EncodePretty (descriptors contain '>').
func Start[T any](out io.Writer, bufSize int, encode func(*json.Encoder, T) error, isBroken func(error) bool) (chan<- T, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan T, bufSize)
	done := make(chan error, 1)

	go func() {
		bw := bwPool.Get().(*bufio.Writer)
		bw.Reset(out)
		defer func() {
			// Drop the reference to out before pooling.
			bw.Reset(io.Discard)
			bwPool.Put(bw)
		}()

		enc := json.NewEncoder(bw)
		enc.SetEscapeHTML(false)

		for v := range in {
			if err := encode(enc, v); err != nil {
				done <- err
				return
			}
		}
		if err := bw.Flush(); err != nil && !isBroken(err) {
			done <- err
			return
		}
		done <- nil
	}()

	return in, done
}
