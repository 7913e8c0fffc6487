package writers

import (
	"bufio"
	"bytes"
	"encoding/json"
	"testing"

	"refasta/internal/stats"
	"refasta/pkg/api"
)

func TestStatsJSONL_StreamsValidV1(t *testing.T) {
	var buf bytes.Buffer
	in, done := StartStatsJSONLWriter(&buf, 2)
	in <- stats.RecordStats{SourceFile: "ref.fa", Index: 1, ID: "a", Length: 4, Lines: 1, GCCount: 2}
	in <- stats.RecordStats{SourceFile: "ref.fa", Index: 2, ID: "b", Length: 8, Lines: 2, GCCount: 4}
	close(in)
	if err := <-done; err != nil {
		t.Fatalf("writer err: %v", err)
	}

	sc := bufio.NewScanner(bytes.NewReader(buf.Bytes()))
	var n int
	for sc.Scan() {
		n++
		var v api.RecordStatsV1
		if err := json.Unmarshal(sc.Bytes(), &v); err != nil {
			t.Fatalf("bad json line %d: %v\n%s", n, err, sc.Text())
		}
		if v.GCPct != 50.0 {
			t.Fatalf("line %d: want gc_pct 50, got %v", n, v.GCPct)
		}
	}
	if n != 2 {
		t.Fatalf("want 2 lines, got %d", n)
	}
}

func TestFileStatsJSONL_StreamsValidV1(t *testing.T) {
	var buf bytes.Buffer
	in, done := StartFileStatsJSONLWriter(&buf, 2)
	in <- stats.FileStats{SourceFile: "ref.fa", Records: 2, TotalLen: 12, MinLen: 4, MaxLen: 8, GCCount: 6}
	close(in)
	if err := <-done; err != nil {
		t.Fatalf("writer err: %v", err)
	}

	var v api.FileStatsV1
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &v); err != nil {
		t.Fatalf("bad json line: %v\n%s", err, buf.String())
	}
	if v.Records != 2 || v.AvgLen != 6.0 || v.GCPct != 50.0 {
		t.Fatalf("unexpected aggregate: %+v", v)
	}
}
