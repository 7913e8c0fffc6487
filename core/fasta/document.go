// core/fasta/document.go
//
// Package fasta parses Multi-FASTA text in a single pass without copying
// sequence data. Parse splits the input buffer into records whose descriptor
// and body fields are views into the caller's buffer; newline removal from
// bodies is deferred until the caller iterates (SequenceIterator) or
// materializes (CopySequential) a sequence. The package does no I/O; see
// refasta-core/fastaio for loading buffers from files.
package fasta

import (
	"errors"
	"fmt"

	"refasta-core/bytescan"
)

// Marker is the record-start byte. Every record begins with it, including
// the first byte of the document.
const Marker = '>'

// ErrNotFasta reports input that is empty or does not begin with Marker.
// It is the only error Parse produces; all other degenerate inputs (empty
// descriptors, empty bodies, mid-line markers, missing trailing newline,
// stray '\r' bytes) parse without error.
var ErrNotFasta = errors.New("not a FASTA document")

// Document is the parsed result: records in input order, each a view into
// the buffer given to Parse. A Document is immutable after Parse returns
// and safe for concurrent readers as long as nobody mutates that buffer.
type Document struct {
	Records []Record
}

// Parse splits data into records. The returned Document borrows from data;
// callers must not mutate data while the Document or anything derived from
// it is in use. The only failure is ErrNotFasta.
func Parse(data []byte) (*Document, error) {
	recs, err := split(data)
	if err != nil {
		return nil, err
	}
	return &Document{Records: recs}, nil
}

// ParseString is Parse over the string's bytes. The conversion copies once
// (Go strings are immutable); the records then share that single buffer.
func ParseString(s string) (*Document, error) {
	return Parse([]byte(s))
}

// split runs the single linear pass. Each iteration starts on a Marker
// byte: the descriptor runs to the next '\n' (or end of input, leaving an
// empty body), the body runs to the next Marker (or end of input). Marker
// position within a line is deliberately not inspected, so a '>' mid-line
// still starts a new record.
func split(data []byte) ([]Record, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrNotFasta)
	}
	if data[0] != Marker {
		return nil, fmt.Errorf("%w: input starts with %q, want %q", ErrNotFasta, data[0], byte(Marker))
	}

	// Marker count over-estimates only when a descriptor itself contains
	// '>', so this is a tight capacity hint for the one bookkeeping slice.
	recs := make([]Record, 0, bytescan.Count(data, Marker))

	for at := 0; at >= 0; {
		start := at + 1 // skip the marker byte
		var rec Record
		nl := bytescan.Index(data, start, '\n')
		if nl < 0 {
			rec.descriptor = data[start:]
			rec.body = data[len(data):]
			at = -1
		} else {
			rec.descriptor = data[start:nl]
			next := bytescan.Index(data, nl+1, Marker)
			if next < 0 {
				rec.body = data[nl+1:]
				at = -1
			} else {
				rec.body = data[nl+1 : next]
				at = next
			}
		}
		recs = append(recs, rec)
	}
	return recs, nil
}
