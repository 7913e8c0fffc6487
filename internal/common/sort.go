// internal/common/sort.go
package common

import (
	"sort"

	"refasta/internal/records"
	"refasta/internal/stats"
)

// LessRecord defines the stable row order used by --sort: source file,
// then ID, then position for records sharing an ID (or lacking one).
func LessRecord(a, b records.Record) bool {
	if a.SourceFile != b.SourceFile {
		return a.SourceFile < b.SourceFile
	}
	if a.ID != b.ID {
		return a.ID < b.ID
	}
	return a.Index < b.Index
}

func SortRecords(list []records.Record) {
	sort.Slice(list, func(i, j int) bool { return LessRecord(list[i], list[j]) })
}

func SortRecordStats(list []stats.RecordStats) {
	sort.Slice(list, func(i, j int) bool {
		a, b := list[i], list[j]
		if a.SourceFile != b.SourceFile {
			return a.SourceFile < b.SourceFile
		}
		if a.ID != b.ID {
			return a.ID < b.ID
		}
		return a.Index < b.Index
	})
}

func SortFileStats(list []stats.FileStats) {
	sort.Slice(list, func(i, j int) bool { return list[i].SourceFile < list[j].SourceFile })
}
