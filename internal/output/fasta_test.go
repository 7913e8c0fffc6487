// internal/output/fasta_test.go
package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"refasta-core/fasta"
	"refasta/internal/records"
)

func rec(desc, seq string) records.Record {
	return records.Record{Descriptor: desc, Seq: []byte(seq), SeqLen: len(seq)}
}

func TestWriteFASTAWrap(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteFASTA(&buf, []records.Record{rec("id desc", "ACGTACGTAC")}, 4))
	assert.Equal(t, ">id desc\nACGT\nACGT\nAC\n", buf.String())
}

func TestWriteFASTASingleLine(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteFASTA(&buf, []records.Record{rec("x", "ACGTACGTAC")}, 0))
	assert.Equal(t, ">x\nACGTACGTAC\n", buf.String())
}

func TestWriteFASTAHeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteFASTA(&buf, []records.Record{rec("lonely", "")}, 60))
	assert.Equal(t, ">lonely\n", buf.String())
}

func TestStreamFASTA(t *testing.T) {
	in := make(chan records.Record, 2)
	in <- rec("a", "AC")
	in <- rec("b", "GT")
	close(in)

	var buf bytes.Buffer
	require.NoError(t, StreamFASTA(&buf, in, 60))
	assert.Equal(t, ">a\nAC\n>b\nGT\n", buf.String())
}

func TestFASTARoundTrip(t *testing.T) {
	const in = ">seq1 first\nACGTACGTAC\nGGGG\n>seq2\nTT\n>empty\n"
	doc, err := fasta.ParseString(in)
	require.NoError(t, err)

	var list []records.Record
	for i, r := range doc.Records {
		list = append(list, records.Project(r, "in.fa", i+1, true))
	}

	var buf bytes.Buffer
	require.NoError(t, WriteFASTA(&buf, list, 5))

	doc2, err := fasta.Parse(buf.Bytes())
	require.NoError(t, err)
	require.Len(t, doc2.Records, len(doc.Records))
	for i := range doc.Records {
		assert.Equal(t, doc.Records[i].Descriptor(), doc2.Records[i].Descriptor(), "record %d", i)
		assert.Equal(t, doc.Records[i].CopySequential(), doc2.Records[i].CopySequential(), "record %d", i)
	}
}
