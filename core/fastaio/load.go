// core/fastaio/load.go
package fastaio

import (
	"fmt"
	"io"

	"refasta-core/fasta"
)

// Load reads the whole decoded input into one buffer.
func Load(path string) ([]byte, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	data, rerr := io.ReadAll(rc)
	if cerr := rc.Close(); rerr == nil {
		rerr = cerr
	}
	if rerr != nil {
		return nil, fmt.Errorf("read %s: %w", path, rerr)
	}
	return data, nil
}

// ParseFile loads path and parses it. The returned Document's records are
// views into the loaded buffer, which the Document keeps reachable; nothing
// is copied. Parse failures carry the path.
func ParseFile(path string) (*fasta.Document, error) {
	data, err := Load(path)
	if err != nil {
		return nil, err
	}
	doc, err := fasta.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}
