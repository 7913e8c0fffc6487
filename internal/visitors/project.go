package visitors

import (
	"refasta/internal/pipeline"
	"refasta/internal/records"
)

// Project turns pipeline items into owned record projections. IncludeSeq
// materializes the sequence; leave it unset for metadata-only outputs.
type Project struct {
	IncludeSeq bool
}

func (v Project) Visit(it pipeline.Item) (keep bool, out records.Record, err error) {
	return true, records.Project(it.Rec, it.File, it.Index, v.IncludeSeq), nil
}
