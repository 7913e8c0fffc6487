// internal/output/stats.go
package output

import (
	"fmt"
	"io"

	"refasta/internal/jsonutil"
	"refasta/internal/stats"
	"refasta/pkg/api"
)

// ToAPIRecordStats converts per-record stats to the stable wire schema (v1).
func ToAPIRecordStats(s stats.RecordStats) api.RecordStatsV1 {
	return api.RecordStatsV1{
		SourceFile: s.SourceFile,
		Index:      s.Index,
		ID:         s.ID,
		Length:     s.Length,
		Lines:      s.Lines,
		GCPct:      s.GCPct(),
	}
}

// ToAPIFileStats converts per-file aggregates to the stable wire schema (v1).
func ToAPIFileStats(f stats.FileStats) api.FileStatsV1 {
	return api.FileStatsV1{
		SourceFile: f.SourceFile,
		Records:    f.Records,
		TotalLen:   f.TotalLen,
		MinLen:     f.MinLen,
		AvgLen:     f.AvgLen(),
		MaxLen:     f.MaxLen,
		GCPct:      f.GCPct(),
	}
}

// FormatStatsRowTSV returns one per-record row (no trailing newline).
func FormatStatsRowTSV(s stats.RecordStats) string {
	return fmt.Sprintf("%s\t%d\t%s\t%d\t%d\t%.1f",
		s.SourceFile, s.Index, s.ID, s.Length, s.Lines, s.GCPct())
}

// WriteStatsTSV writes per-record rows.
func WriteStatsTSV(w io.Writer, list []stats.RecordStats, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, StatsTSVHeader); err != nil {
			return err
		}
	}
	for _, s := range list {
		if _, err := fmt.Fprintln(w, FormatStatsRowTSV(s)); err != nil {
			return err
		}
	}
	return nil
}

// StreamStatsTSV is WriteStatsTSV over a channel.
func StreamStatsTSV(w io.Writer, in <-chan stats.RecordStats, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, StatsTSVHeader); err != nil {
			return err
		}
	}
	for s := range in {
		if _, err := fmt.Fprintln(w, FormatStatsRowTSV(s)); err != nil {
			return err
		}
	}
	return nil
}

// WriteFileStatsTSV writes per-file aggregate rows.
func WriteFileStatsTSV(w io.Writer, list []stats.FileStats, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, FileStatsTSVHeader); err != nil {
			return err
		}
	}
	for _, f := range list {
		if _, err := fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%.1f\t%d\t%.1f\n",
			f.SourceFile, f.Records, f.TotalLen, f.MinLen, f.AvgLen(), f.MaxLen, f.GCPct()); err != nil {
			return err
		}
	}
	return nil
}

// WriteStatsJSON writes a single JSON array of v1 per-record stats.
func WriteStatsJSON(w io.Writer, list []stats.RecordStats) error {
	out := make([]api.RecordStatsV1, 0, len(list))
	for _, s := range list {
		out = append(out, ToAPIRecordStats(s))
	}
	return jsonutil.EncodePretty(w, out)
}

// WriteFileStatsJSON writes a single JSON array of v1 per-file aggregates.
func WriteFileStatsJSON(w io.Writer, list []stats.FileStats) error {
	out := make([]api.FileStatsV1, 0, len(list))
	for _, f := range list {
		out = append(out, ToAPIFileStats(f))
	}
	return jsonutil.EncodePretty(w, out)
}
