package mnemonic

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/Klingon-tech/klingnet-mnemonic/internal/log"
	"golang.org/x/sync/errgroup"
)

// ComputeSeeds derives the seeds of ms concurrently on at most workers
// goroutines (GOMAXPROCS when workers <= 0). Seeds are returned in input
// order. Cancelling ctx stops work that has not started yet.
func ComputeSeeds(ctx context.Context, ms []*Mnemonic, workers int) ([][]byte, error) {
	for i, m := range ms {
		if m == nil {
			return nil, fmt.Errorf("mnemonic %d: %w", i, ErrNilMnemonic)
		}
		if !m.initialized() {
			return nil, fmt.Errorf("mnemonic %d: %w", i, ErrUninitialized)
		}
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	start := time.Now()
	seeds := make([][]byte, len(ms))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, m := range ms {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			seeds[i] = m.ComputeSeed()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	log.Mnemonic.Debug().
		Int("count", len(ms)).
		Int("workers", workers).
		Dur("duration", time.Since(start)).
		Msg("Seeds derived")
	return seeds, nil
}
