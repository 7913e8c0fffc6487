package integration

import (
	"context"
	"io"
	"os"
	"strings"
	"testing"

	"refasta/internal/app"
)

func TestPreCanceledContextExit130(t *testing.T) {
	fn := "cancel_big.fa"
	defer os.Remove(fn)
	seq := strings.Repeat("ACGT", 1<<18) // ~1MB
	if err := os.WriteFile(fn, []byte(">chr1\n"+seq+"\n"), 0644); err != nil {
		t.Fatalf("write fasta: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // canceled before the pipeline starts

	code := app.RunContext(ctx, []string{"-s", fn}, io.Discard, io.Discard)
	if code != 130 {
		t.Fatalf("expected exit 130 on cancel, got %d", code)
	}
}
