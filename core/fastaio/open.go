// core/fastaio/open.go
//
// Package fastaio loads FASTA input for the parser. It handles "-" for
// stdin and transparently decompresses gzip, zstd and lz4 streams, detected
// by magic bytes with a file-suffix fallback for inputs shorter than the
// magic. The parser itself (refasta-core/fasta) stays free of I/O.
package fastaio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// multiReadCloser closes multiple io.Closers when Close() is called.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// Open returns a reader over the decoded bytes of path. "-" reads stdin.
// Close releases the decompressor and the underlying file together.
func Open(path string) (io.ReadCloser, error) {
	if path == "-" {
		return decode(os.Stdin, "-", nil)
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	rc, err := decode(fh, path, []io.Closer{fh})
	if err != nil {
		_ = fh.Close()
		return nil, err
	}
	return rc, nil
}

// decode sniffs the stream head and stacks the matching decompressor on
// top of r. Buffering via bufio keeps the peeked bytes in the stream, so
// the same path works for files and for stdin.
func decode(r io.Reader, path string, closers []io.Closer) (io.ReadCloser, error) {
	br := bufio.NewReader(r)
	magic, _ := br.Peek(4)
	switch {
	case isGzip(magic, path):
		gr, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("gzip %s: %w", path, err)
		}
		return &multiReadCloser{Reader: gr, closers: append([]io.Closer{gr}, closers...)}, nil
	case isZstd(magic, path):
		dec, err := zstd.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("zstd %s: %w", path, err)
		}
		rc := dec.IOReadCloser()
		return &multiReadCloser{Reader: rc, closers: append([]io.Closer{rc}, closers...)}, nil
	case isLZ4(magic, path):
		return &multiReadCloser{Reader: lz4.NewReader(br), closers: closers}, nil
	default:
		return &multiReadCloser{Reader: br, closers: closers}, nil
	}
}

func isGzip(magic []byte, path string) bool {
	if len(magic) >= 2 && magic[0] == 0x1f && magic[1] == 0x8b {
		return true
	}
	return strings.HasSuffix(path, ".gz")
}

func isZstd(magic []byte, path string) bool {
	if len(magic) >= 4 && magic[0] == 0x28 && magic[1] == 0xb5 && magic[2] == 0x2f && magic[3] == 0xfd {
		return true
	}
	return strings.HasSuffix(path, ".zst") || strings.HasSuffix(path, ".zstd")
}

func isLZ4(magic []byte, path string) bool {
	if len(magic) >= 4 && magic[0] == 0x04 && magic[1] == 0x22 && magic[2] == 0x4d && magic[3] == 0x18 {
		return true
	}
	return strings.HasSuffix(path, ".lz4")
}
