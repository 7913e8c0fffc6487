// internal/output/common.go
package output

// Format names shared by writers and the app layer.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
	FormatFASTA = "fasta"
)

// TSVHeader is the canonical header row for refasta text output.
// Keep this as the single source of truth; all writers should use it.
const TSVHeader = "source_file\tindex\tid\tdescriptor\tlength\tlines"

// StatsTSVHeader is the header row for refastat per-record output.
const StatsTSVHeader = "source_file\tindex\tid\tlength\tlines\tgc_pct"

// FileStatsTSVHeader is the header row for refastat per-file aggregates.
const FileStatsTSVHeader = "source_file\trecords\ttotal_length\tmin_length\tavg_length\tmax_length\tgc_pct"
