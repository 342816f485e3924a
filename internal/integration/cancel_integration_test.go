package integration

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"seqmatch/internal/app"
)

func TestCtrlC_MidScan_Exit130(t *testing.T) {
	// Enough data that scanning is underway when the context is cancelled.
	const n = 2000
	line := strings.Repeat("ACGT", 4096)
	var b strings.Builder
	b.WriteString("2000 16384\n")
	for i := 0; i < n; i++ {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	seqFile := write(t, "cancel_big.txt", b.String())
	patFile := write(t, "p.txt", "2 8\nACGTACGT\nTTTT\n")

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	code := app.RunContext(ctx, []string{"-algorithm", "naive", "-threads", "1", "-batch-size", "1", seqFile, patFile}, io.Discard, io.Discard)
	if code != 130 {
		t.Fatalf("expected exit 130 on cancel, got %d", code)
	}
}
