package appcore

import (
	"testing"

	"refasta/internal/pretty"
)

func TestRecordWriterFactory_NeedSeq(t *testing.T) {
	w := NewRecordWriterFactory("text", false, false, true, 0, false, pretty.DefaultOptions)
	if !w.NeedSeq() {
		t.Fatal("pretty text must NeedSeq")
	}

	w = NewRecordWriterFactory("json", false, false, false, 0, false, pretty.DefaultOptions)
	if w.NeedSeq() {
		t.Fatal("plain json should not need seq")
	}

	w = NewRecordWriterFactory("fasta", false, false, false, 0, false, pretty.DefaultOptions)
	if !w.NeedSeq() {
		t.Fatal("fasta must NeedSeq")
	}

	w = NewRecordWriterFactory("json", false, false, false, 0, true, pretty.DefaultOptions)
	if !w.NeedSeq() {
		t.Fatal("json + --seq must NeedSeq")
	}
}

func TestStatsWriterFactory_NeverNeedsSeq(t *testing.T) {
	w := NewStatsWriterFactory("text", false, false, true)
	if w.NeedSeq() {
		t.Fatal("stats run on the raw body view; no copy needed")
	}
}
