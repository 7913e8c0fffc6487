// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
)

// Writer registries (format → handler), populated by init() blocks in
// record.go and stats.go. Handlers receive their args payload (input
// channel included) and run to completion on the writer goroutine.
var (
	RecordWriters = map[string]func(w io.Writer, payload any) error{}
	StatsWriters  = map[string]func(w io.Writer, payload any) error{}
)

// Register helpers (idempotent last-wins)
func RegisterRecord(format string, fn func(io.Writer, any) error) { RecordWriters[format] = fn }
func RegisterStats(format string, fn func(io.Writer, any) error)  { StatsWriters[format] = fn }

// Dispatch helpers used by the Start* writers.
func WriteRecord(format string, w io.Writer, payload any) error {
	fn, ok := RecordWriters[format]
	if !ok {
		return fmt.Errorf("unknown record format %q (no writer registered)", format)
	}
	return fn(w, payload)
}

func WriteStats(format string, w io.Writer, payload any) error {
	fn, ok := StatsWriters[format]
	if !ok {
		return fmt.Errorf("unknown stats format %q (no writer registered)", format)
	}
	return fn(w, payload)
}
