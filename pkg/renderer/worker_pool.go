package renderer

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// TileResult contains the result from rendering a tile
type TileResult struct {
	TileID int
	Stats  RenderStats
}

// TileFunc renders one tile
type TileFunc func(ctx context.Context, tile *Tile) (RenderStats, error)

// WorkerPool renders tiles in parallel with a bounded number of goroutines
type WorkerPool struct {
	numWorkers int
}

// NewWorkerPool creates a worker pool with the specified number of workers
func NewWorkerPool(numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = 1
	}
	return &WorkerPool{numWorkers: numWorkers}
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// Run renders every tile and returns the results indexed by tile position.
// The first error cancels the remaining tiles.
func (wp *WorkerPool) Run(ctx context.Context, tiles []*Tile, render TileFunc) ([]TileResult, error) {
	results := make([]TileResult, len(tiles))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(wp.numWorkers)

	for i, tile := range tiles {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			stats, err := render(ctx, tile)
			if err != nil {
				return fmt.Errorf("tile %d: %w", tile.ID, err)
			}
			// Each goroutine owns one slot
			results[i] = TileResult{TileID: tile.ID, Stats: stats}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
