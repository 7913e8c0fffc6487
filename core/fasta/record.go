// core/fasta/record.go
package fasta

import (
	"bytes"

	"refasta-core/bytescan"
)

// Record is one FASTA record: a descriptor span and a body span, both views
// into the parsed buffer. Neither span includes the Marker byte. The body
// still contains its embedded newlines; use Iter or CopySequential for the
// newline-free sequence.
type Record struct {
	descriptor []byte
	body       []byte
}

// Descriptor returns the raw descriptor span (bytes between the marker and
// the end of the header line). May be empty.
func (r Record) Descriptor() []byte { return r.descriptor }

// Body returns the raw body span with newlines still embedded. May be empty.
func (r Record) Body() []byte { return r.body }

// ID returns the first whitespace-delimited field of the descriptor, the
// conventional FASTA sequence identifier. Empty descriptors yield "".
func (r Record) ID() string {
	hdr := bytes.TrimSpace(r.descriptor)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return string(hdr[:i])
	}
	return string(hdr)
}

// SeqLen returns the sequence length (body bytes minus newlines) without
// copying or iterating.
func (r Record) SeqLen() int {
	return len(r.body) - bytescan.Count(r.body, '\n')
}

// Lines returns the number of newline bytes in the body. A body without a
// trailing newline still counts its final partial line's content through
// SeqLen; Lines reports physical line breaks only.
func (r Record) Lines() int {
	return bytescan.Count(r.body, '\n')
}
