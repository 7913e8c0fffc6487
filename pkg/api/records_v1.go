// pkg/api/records_v1.go
package api

// RecordV1 is the stable JSON/JSONL schema for parsed FASTA records.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type RecordV1 struct {
	SourceFile string `json:"source_file,omitempty"`
	Index      int    `json:"index"` // 1-based position within its source file
	ID         string `json:"id,omitempty"`
	Descriptor string `json:"descriptor,omitempty"`
	Length     int    `json:"length"` // sequence length, newlines excluded
	Lines      int    `json:"lines,omitempty"`
	Seq        string `json:"seq,omitempty"`
}

// RecordStatsV1 is the stable schema for per-record statistics.
type RecordStatsV1 struct {
	SourceFile string  `json:"source_file,omitempty"`
	Index      int     `json:"index"`
	ID         string  `json:"id,omitempty"`
	Length     int     `json:"length"`
	Lines      int     `json:"lines"`
	GCPct      float64 `json:"gc_pct"`
}

// FileStatsV1 is the stable schema for per-file aggregate statistics.
type FileStatsV1 struct {
	SourceFile string  `json:"source_file,omitempty"`
	Records    int     `json:"records"`
	TotalLen   int     `json:"total_length"`
	MinLen     int     `json:"min_length"`
	AvgLen     float64 `json:"avg_length"`
	MaxLen     int     `json:"max_length"`
	GCPct      float64 `json:"gc_pct"`
}
