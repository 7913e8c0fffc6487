// internal/stats/stats.go
package stats

import (
	"refasta-core/bytescan"
	"refasta-core/fasta"
)

// RecordStats holds the per-record numbers reported by refastat.
type RecordStats struct {
	SourceFile string
	Index      int // 1-based position within its source file
	ID         string
	Length     int
	Lines      int
	GCCount    int
}

// Compute derives stats straight from the zero-copy record view. GC bytes
// are counted over the raw body; newlines are never G/C, so no sequence
// copy is needed. Both cases count: lowercase marks soft-masked residues,
// not different bases.
func Compute(rec fasta.Record, sourceFile string, index int) RecordStats {
	body := rec.Body()
	gc := bytescan.Count(body, 'G') + bytescan.Count(body, 'C') +
		bytescan.Count(body, 'g') + bytescan.Count(body, 'c')
	return RecordStats{
		SourceFile: sourceFile,
		Index:      index,
		ID:         rec.ID(),
		Length:     rec.SeqLen(),
		Lines:      rec.Lines(),
		GCCount:    gc,
	}
}

// GCPct returns the GC share of the sequence as a percentage. Empty
// sequences report 0.
func (s RecordStats) GCPct() float64 {
	if s.Length == 0 {
		return 0
	}
	return 100 * float64(s.GCCount) / float64(s.Length)
}

// FileStats aggregates one source file's records.
type FileStats struct {
	SourceFile string
	Records    int
	TotalLen   int
	MinLen     int
	MaxLen     int
	GCCount    int
}

// AvgLen returns the mean sequence length.
func (f FileStats) AvgLen() float64 {
	if f.Records == 0 {
		return 0
	}
	return float64(f.TotalLen) / float64(f.Records)
}

// GCPct returns the GC share across all of the file's sequences.
func (f FileStats) GCPct() float64 {
	if f.TotalLen == 0 {
		return 0
	}
	return 100 * float64(f.GCCount) / float64(f.TotalLen)
}

// Aggregate groups per-record stats by source file, preserving first-seen
// file order.
func Aggregate(list []RecordStats) []FileStats {
	var out []FileStats
	at := make(map[string]int, 4)
	for _, s := range list {
		i, ok := at[s.SourceFile]
		if !ok {
			i = len(out)
			at[s.SourceFile] = i
			out = append(out, FileStats{SourceFile: s.SourceFile, MinLen: s.Length, MaxLen: s.Length})
		}
		f := &out[i]
		f.Records++
		f.TotalLen += s.Length
		f.GCCount += s.GCCount
		if s.Length < f.MinLen {
			f.MinLen = s.Length
		}
		if s.Length > f.MaxLen {
			f.MaxLen = s.Length
		}
	}
	return out
}
