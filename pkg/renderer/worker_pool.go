package renderer

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// TileFunc renders a single tile. It is called concurrently for distinct tiles.
type TileFunc func(ctx context.Context, tile *Tile) error

// WorkerPool runs tile work with a bounded number of concurrent workers
type WorkerPool struct {
	numWorkers int
}

// NewWorkerPool creates a worker pool with the specified number of workers
func NewWorkerPool(numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &WorkerPool{numWorkers: numWorkers}
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// Run calls fn for every tile, at most GetNumWorkers at a time, and returns once all
// started calls have finished. The first error cancels the remaining tiles and is returned.
func (wp *WorkerPool) Run(ctx context.Context, tiles []*Tile, fn TileFunc) error {
	eg, egCtx := errgroup.WithContext(ctx)
	sem := semaphore.NewWeighted(int64(wp.numWorkers))

	for _, tile := range tiles {
		// Acquire only fails once egCtx is done; Wait below reports why
		if err := sem.Acquire(egCtx, 1); err != nil {
			break
		}

		tile := tile
		eg.Go(func() error {
			defer sem.Release(1)
			return fn(egCtx, tile)
		})
	}

	if err := eg.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}
