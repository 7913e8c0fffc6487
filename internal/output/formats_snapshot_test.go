package output

import "testing"

func TestFormats_Stable(t *testing.T) {
	if FormatText != "text" || FormatJSON != "json" || FormatJSONL != "jsonl" || FormatFASTA != "fasta" {
		t.Fatalf("output format constants changed")
	}
}

func TestTSVHeaders_Stable(t *testing.T) {
	const wantRecords = "source_file\tindex\tid\tdescriptor\tlength\tlines"
	if TSVHeader != wantRecords {
		t.Fatalf("TSVHeader changed:\n got:  %q\n want: %q", TSVHeader, wantRecords)
	}
	const wantStats = "source_file\tindex\tid\tlength\tlines\tgc_pct"
	if StatsTSVHeader != wantStats {
		t.Fatalf("StatsTSVHeader changed:\n got:  %q\n want: %q", StatsTSVHeader, wantStats)
	}
	const wantFiles = "source_file\trecords\ttotal_length\tmin_length\tavg_length\tmax_length\tgc_pct"
	if FileStatsTSVHeader != wantFiles {
		t.Fatalf("FileStatsTSVHeader changed:\n got:  %q\n want: %q", FileStatsTSVHeader, wantFiles)
	}
}
