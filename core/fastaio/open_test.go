// core/fastaio/open_test.go
package fastaio

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"refasta-core/fasta"
)

const sample = ">seq1 test\nACGT\nACGT\n>seq2\nTTTT\n"

func writeTemp(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func gzipBytes(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, err := gz.Write(data)
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	return buf.Bytes()
}

func zstdBytes(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	enc, err := zstd.NewWriter(&buf)
	require.NoError(t, err)
	_, err = enc.Write(data)
	require.NoError(t, err)
	require.NoError(t, enc.Close())
	return buf.Bytes()
}

func lz4Bytes(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := lz4.NewWriter(&buf)
	_, err := w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func TestOpenDetectsCompressionByMagic(t *testing.T) {
	cases := []struct {
		name string
		data func(t *testing.T) []byte
	}{
		{"plain", func(t *testing.T) []byte { return []byte(sample) }},
		{"gzip", func(t *testing.T) []byte { return gzipBytes(t, []byte(sample)) }},
		{"zstd", func(t *testing.T) []byte { return zstdBytes(t, []byte(sample)) }},
		{"lz4", func(t *testing.T) []byte { return lz4Bytes(t, []byte(sample)) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			// Neutral suffix so only the magic bytes can drive detection.
			path := writeTemp(t, "data.fasta", tc.data(t))
			rc, err := Open(path)
			require.NoError(t, err)
			got, err := io.ReadAll(rc)
			require.NoError(t, err)
			require.NoError(t, rc.Close())
			assert.Equal(t, []byte(sample), got)
		})
	}
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope.fa"))
	require.Error(t, err)
}

func TestLoadRoundTrip(t *testing.T) {
	path := writeTemp(t, "in.fa.gz", gzipBytes(t, []byte(sample)))
	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []byte(sample), got)
}

func TestParseFile(t *testing.T) {
	path := writeTemp(t, "in.fa", []byte(sample))
	doc, err := ParseFile(path)
	require.NoError(t, err)
	require.Len(t, doc.Records, 2)
	assert.Equal(t, "seq1", doc.Records[0].ID())
	assert.Equal(t, []byte("ACGTACGT"), doc.Records[0].CopySequential())
}

func TestParseFileReportsPathOnBadInput(t *testing.T) {
	path := writeTemp(t, "notfasta.txt", []byte("plain text\n"))
	_, err := ParseFile(path)
	require.ErrorIs(t, err, fasta.ErrNotFasta)
	assert.ErrorContains(t, err, "notfasta.txt")
}

func TestOpenCorruptGzipBySuffix(t *testing.T) {
	// Suffix says gzip, content is not: surfacing the decoder error beats
	// silently handing back garbage.
	path := writeTemp(t, "broken.fa.gz", []byte("no gzip here"))
	_, err := Open(path)
	require.Error(t, err)
}
