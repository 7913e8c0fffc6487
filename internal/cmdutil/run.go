// internal/cmdutil/run.go
package cmdutil

import (
	"context"

	"refasta/internal/pipeline"
)

// RunStream runs the shared pipeline, applies a visitor, and streams kept
// outputs via send. It returns the number of outputs sent and the first
// error encountered.
func RunStream[T any](
	ctx context.Context,
	cfg pipeline.Config,
	seqFiles []string,
	visit func(pipeline.Item) (bool, T, error),
	send func(T) error,
) (int, error) {
	total := 0
	err := pipeline.ForEachItem(ctx, cfg, seqFiles, func(it pipeline.Item) error {
		keep, out, vErr := visit(it)
		if vErr != nil {
			return vErr
		}
		if !keep {
			return nil
		}
		if err := send(out); err != nil {
			return err
		}
		total++
		return nil
	})
	return total, err
}
