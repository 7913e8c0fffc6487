// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"fmt"
	"io"
	"runtime"

	"golang.org/x/sync/errgroup"

	"refasta-core/fasta"
	"refasta-core/fastaio"
	"refasta/internal/runutil"
)

// Config controls the load/parse pipeline.
type Config struct {
	Threads   int       // parallel file loads (<=0 = all CPUs)
	Unique    bool      // skip records whose ID was already seen (first wins)
	DedupeCap int       // max IDs remembered by Unique; 0 = unbounded
	Warn      io.Writer // duplicate-drop summary target (nil = silent)
	Quiet     bool      // suppress the summary even when Warn is set
}

// Item is one parsed record plus its provenance. Rec is a zero-copy view;
// the pipeline keeps the backing buffer alive for the duration of visit.
type Item struct {
	File  string
	Index int // 1-based position within File
	Rec   fasta.Record
}

// ForEachItem parses every input concurrently, then visits records in
// input order. The first load or parse failure aborts the run and is
// returned; a canceled context surfaces as ctx.Err(). Records with an
// empty ID are never treated as duplicates of each other.
func ForEachItem(ctx context.Context, cfg Config, files []string, visit func(Item) error) error {
	if cfg.Threads <= 0 {
		cfg.Threads = runtime.NumCPU()
	}

	docs := make([]*fasta.Document, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Threads)
	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			doc, err := fastaio.ParseFile(path)
			if err != nil {
				return err
			}
			docs[i] = doc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	isDup := dupChecker(cfg)
	dropped := 0
	for i, doc := range docs {
		for j := range doc.Records {
			if err := ctx.Err(); err != nil {
				return err
			}
			rec := doc.Records[j]
			if isDup != nil {
				if id := rec.ID(); id != "" && isDup(id) {
					dropped++
					continue
				}
			}
			if err := visit(Item{File: files[i], Index: j + 1, Rec: rec}); err != nil {
				return err
			}
		}
	}
	if dropped > 0 && !cfg.Quiet && cfg.Warn != nil {
		fmt.Fprintf(cfg.Warn, "WARN: dropped %d record(s) with duplicate IDs\n", dropped)
	}
	return nil
}

// dupChecker returns the first-seen test for Unique mode, or nil when
// dedupe is off. A positive DedupeCap bounds remembered IDs via an LRU
// set; past the cap an ID can slip through again, which Unique accepts
// in exchange for a memory ceiling on huge runs.
func dupChecker(cfg Config) func(string) bool {
	if !cfg.Unique {
		return nil
	}
	if cfg.DedupeCap > 0 {
		return runutil.NewLRUSet[string](cfg.DedupeCap).Add
	}
	seen := make(map[string]struct{}, 1<<10)
	return func(id string) bool {
		if _, dup := seen[id]; dup {
			return true
		}
		seen[id] = struct{}{}
		return false
	}
}
