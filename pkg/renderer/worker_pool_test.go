package renderer

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
)

func TestWorkerPool_RunsEveryTile(t *testing.T) {
	tiles := NewTileGrid(40, 40, 8, 1)
	pool := NewWorkerPool(3)

	var calls atomic.Int32
	results, err := pool.Run(context.Background(), tiles, func(ctx context.Context, tile *Tile) (RenderStats, error) {
		calls.Add(1)
		return RenderStats{TotalPixels: tile.Bounds.Dx() * tile.Bounds.Dy()}, nil
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if int(calls.Load()) != len(tiles) {
		t.Errorf("Expected %d calls, got %d", len(tiles), calls.Load())
	}

	total := 0
	for i, result := range results {
		if result.TileID != tiles[i].ID {
			t.Errorf("Expected result %d for tile %d, got tile %d", i, tiles[i].ID, result.TileID)
		}
		total += result.Stats.TotalPixels
	}
	if total != 1600 {
		t.Errorf("Expected 1600 pixels, got %d", total)
	}
}

func TestWorkerPool_PropagatesError(t *testing.T) {
	tiles := NewTileGrid(64, 64, 16, 1)
	boom := errors.New("boom")

	_, err := NewWorkerPool(2).Run(context.Background(), tiles, func(ctx context.Context, tile *Tile) (RenderStats, error) {
		if tile.ID == 3 {
			return RenderStats{}, boom
		}
		return RenderStats{}, nil
	})
	if !errors.Is(err, boom) {
		t.Errorf("Expected wrapped tile error, got %v", err)
	}
}

func TestWorkerPool_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewWorkerPool(2).Run(ctx, NewTileGrid(16, 16, 8, 1), func(ctx context.Context, tile *Tile) (RenderStats, error) {
		return RenderStats{}, nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

func TestNewWorkerPool_MinimumOneWorker(t *testing.T) {
	if got := NewWorkerPool(0).GetNumWorkers(); got != 1 {
		t.Errorf("Expected 1 worker, got %d", got)
	}
}
