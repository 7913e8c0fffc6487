// core/fasta/iter.go
package fasta

import (
	"iter"

	"refasta-core/bytescan"
)

// SequenceIterator walks a record's body span yielding sequence bytes with
// every '\n' elided. It is a forward-only cursor: not restartable, but a
// fresh one costs a single small allocation. One iterator must stay on one
// goroutine; distinct iterators over the same Record are independent.
type SequenceIterator struct {
	body []byte
	pos  int
}

// Iter returns a fresh iterator over the record's sequence bytes.
func (r Record) Iter() *SequenceIterator {
	return &SequenceIterator{body: r.body}
}

// Next returns the next non-newline body byte. A run of consecutive
// newlines is skipped in a single call. The second result is false once
// the span is exhausted, and every later call keeps returning (0, false).
func (it *SequenceIterator) Next() (byte, bool) {
	for it.pos < len(it.body) {
		b := it.body[it.pos]
		it.pos++
		if b != '\n' {
			return b, true
		}
	}
	return 0, false
}

// Bytes returns the same element sequence as draining Iter, as a
// range-over-func sequence for callers that prefer `for b := range`.
func (r Record) Bytes() iter.Seq[byte] {
	return func(yield func(byte) bool) {
		it := r.Iter()
		for b, ok := it.Next(); ok; b, ok = it.Next() {
			if !yield(b) {
				return
			}
		}
	}
}

// CopySequential returns an owned buffer holding the body with all '\n'
// bytes removed, bit-identical to draining Iter. It makes exactly one
// allocation of capacity len(body) and fills it by copying the newline-free
// chunks between line breaks, so it is the cheaper path when a sequence
// will be traversed more than once. The result does not alias the parsed
// buffer.
func (r Record) CopySequential() []byte {
	out := make([]byte, 0, len(r.body))
	for from := 0; from < len(r.body); {
		nl := bytescan.Index(r.body, from, '\n')
		if nl < 0 {
			out = append(out, r.body[from:]...)
			break
		}
		out = append(out, r.body[from:nl]...)
		from = nl + 1
	}
	return out
}
