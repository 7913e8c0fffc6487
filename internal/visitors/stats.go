package visitors

import (
	"refasta/internal/pipeline"
	"refasta/internal/stats"
)

// Stats computes per-record numbers straight off the zero-copy view.
type Stats struct{}

func (Stats) Visit(it pipeline.Item) (keep bool, out stats.RecordStats, err error) {
	return true, stats.Compute(it.Rec, it.File, it.Index), nil
}
