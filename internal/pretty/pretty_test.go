package pretty

import (
	"os"
	"path/filepath"
	"testing"

	"refasta/internal/records"
)

func writeIfMissingOrUpdate(path string, got string) (created bool, err error) {
	// Ensure the testdata directory exists before writing.
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, err
	}
	// Allow updating goldens explicitly.
	if os.Getenv("UPDATE_GOLDEN") == "1" {
		return true, os.WriteFile(path, []byte(got), 0644)
	}
	// First-run: create golden if missing.
	if _, e := os.Stat(path); os.IsNotExist(e) {
		return true, os.WriteFile(path, []byte(got), 0644)
	}
	return false, nil
}

func mustRead(path string, t *testing.T) string {
	t.Helper()
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden %s: %v", path, err)
	}
	return string(b)
}

func checkGolden(t *testing.T, name, got string) {
	t.Helper()
	path := filepath.Join("testdata", name)
	if created, err := writeIfMissingOrUpdate(path, got); err != nil {
		t.Fatalf("write golden: %v", err)
	} else if created {
		t.Logf("wrote %s", path)
		return
	}
	want := mustRead(path, t)
	if got != want {
		t.Fatalf("mismatch:\n--- got ---\n%s\n--- want ---\n%s", got, want)
	}
}

func TestRenderRecord_Golden(t *testing.T) {
	r := records.Record{
		Descriptor: "seq1 Homo sapiens chr7",
		Seq:        []byte("ACGTACGTACGTACGTACGTACGT"),
		SeqLen:     24,
		Lines:      2,
	}
	checkGolden(t, "record.golden", RenderRecord(r))
}

func TestRenderRecord_ShortSeq_Golden(t *testing.T) {
	r := records.Record{
		Descriptor: "s",
		Seq:        []byte("ACGT"),
		SeqLen:     4,
		Lines:      1,
	}
	checkGolden(t, "short.golden", RenderRecord(r))
}

func TestRenderRecord_Truncation_Golden(t *testing.T) {
	r := records.Record{
		Descriptor: "very long header that keeps going and going",
		Seq:        []byte("AAAAACCCCCGGGGGTTTTTXYZ"),
		SeqLen:     23,
		Lines:      1,
	}
	checkGolden(t, "truncated.golden", RenderRecordWithOptions(r, Options{Width: 30, HeadTail: 5}))
}

func TestRenderRecord_EmptySeq_Golden(t *testing.T) {
	r := records.Record{Descriptor: "void"}
	checkGolden(t, "empty.golden", RenderRecord(r))
}

func TestRenderRecord_SeqNotMaterialized(t *testing.T) {
	r := records.Record{Descriptor: "x", SeqLen: 12, Lines: 1}
	got := RenderRecordWithOptions(r, DefaultOptions)
	want := "# >x\n# (pretty not available: sequence missing)\n#\n"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestTerminalWidthFallsBack(t *testing.T) {
	// go test pipes stdout, so IsTerminal is false here and the COLUMNS
	// variable decides.
	t.Setenv("COLUMNS", "123")
	if w := TerminalWidth(80); w != 123 {
		t.Fatalf("COLUMNS override: got %d", w)
	}
	t.Setenv("COLUMNS", "not-a-number")
	if w := TerminalWidth(80); w != 80 {
		t.Fatalf("fallback: got %d", w)
	}
}
