// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"seqmatch/internal/counts"
)

// Counter is the minimal capability the pipeline needs.
// Any engine (including fakes in tests) can satisfy this. CountInto is
// called concurrently and must not mutate shared state.
type Counter interface {
	PatternCount() int
	CountInto(seq []byte, counts []int)
}

// Config controls the scanning pipeline.
type Config struct {
	Threads   int // worker goroutines; <=0 means runtime.NumCPU()
	BatchSize int // sequences handed to a worker at a time; <=0 means 64
}

type batch struct{ lo, hi int }

// CountAll counts every pattern of c in every sequence. Column s of the
// result holds the counts for seqs[s]. The table is the same for any thread
// count. It returns ctx.Err() if ctx is cancelled before all work is done.
func CountAll(ctx context.Context, cfg Config, c Counter, seqs [][]byte) (counts.Table, error) {
	thr := cfg.Threads
	if thr <= 0 {
		thr = runtime.NumCPU()
	}
	bs := cfg.BatchSize
	if bs <= 0 {
		bs = 64
	}

	table := counts.New(c.PatternCount(), len(seqs))
	jobs := make(chan batch, thr*2)

	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < thr; w++ {
		g.Go(func() error {
			// Each worker owns its counts buffer; columns of table are disjoint.
			buf := make([]int, c.PatternCount())
			for b := range jobs {
				for s := b.lo; s < b.hi; s++ {
					if err := gctx.Err(); err != nil {
						return err
					}
					c.CountInto(seqs[s], buf)
					table.SetColumn(s, buf)
				}
			}
			return nil
		})
	}

	g.Go(func() error {
		defer close(jobs)
		for lo := 0; lo < len(seqs); lo += bs {
			hi := min(lo+bs, len(seqs))
			select {
			case jobs <- batch{lo: lo, hi: hi}:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return table, nil
}
