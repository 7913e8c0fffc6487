// internal/output/text_test.go
package output

import (
	"bytes"
	"strings"
	"testing"

	"refasta/internal/records"
)

func row(id string) records.Record {
	return records.Record{SourceFile: "in.fa", Index: 1, ID: id, Descriptor: id + " desc", SeqLen: 8, Lines: 2}
}

func TestWriteTextHeaderToggle(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteTextWithRenderer(&buf, []records.Record{row("s1")}, true, false, nil); err != nil {
		t.Fatalf("write: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 || lines[0] != TSVHeader {
		t.Fatalf("expected header + row, got: %q", buf.String())
	}
	if lines[1] != "in.fa\t1\ts1\ts1 desc\t8\t2" {
		t.Fatalf("unexpected row: %q", lines[1])
	}

	buf.Reset()
	if err := WriteTextWithRenderer(&buf, []records.Record{row("s1")}, false, false, nil); err != nil {
		t.Fatalf("write: %v", err)
	}
	if strings.Contains(buf.String(), TSVHeader) {
		t.Fatalf("header leaked with no-header: %q", buf.String())
	}
}

func TestWriteTextAppendsRenderedBlock(t *testing.T) {
	var buf bytes.Buffer
	render := func(r records.Record) string { return "# block for " + r.ID + "\n" }
	if err := WriteTextWithRenderer(&buf, []records.Record{row("s1"), row("s2")}, false, true, render); err != nil {
		t.Fatalf("write: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "# block for s1\n") || !strings.Contains(out, "# block for s2\n") {
		t.Fatalf("missing rendered blocks: %q", out)
	}
}

func TestStreamTextMatchesWrite(t *testing.T) {
	list := []records.Record{row("s1"), row("s2")}

	var w bytes.Buffer
	if err := WriteTextWithRenderer(&w, list, true, false, nil); err != nil {
		t.Fatalf("write: %v", err)
	}

	in := make(chan records.Record, len(list))
	for _, r := range list {
		in <- r
	}
	close(in)
	var s bytes.Buffer
	if err := StreamTextWithRenderer(&s, in, true, false, nil); err != nil {
		t.Fatalf("stream: %v", err)
	}

	if w.String() != s.String() {
		t.Fatalf("stream output differs from write:\n%q\n%q", w.String(), s.String())
	}
}
