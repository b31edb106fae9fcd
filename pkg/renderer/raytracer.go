package renderer

import (
	"context"
	"fmt"
	"time"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/integrator"
)

// Raytracer renders a camera and world into a packed pixel buffer
type Raytracer struct {
	camera     Camera
	tracer     integrator.Tracer
	config     Config
	integrator *integrator.PathTracingIntegrator
	logger     core.Logger
}

// NewRaytracer creates a new raytracer. The config is validated on Render.
func NewRaytracer(camera Camera, tracer integrator.Tracer, config Config, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = discardLogger{}
	}
	integratorConfig := integrator.DefaultConfig()
	integratorConfig.MaxDepth = config.MaxDepth

	return &Raytracer{
		camera:     camera,
		tracer:     tracer,
		config:     config,
		integrator: integrator.NewPathTracingIntegrator(integratorConfig),
		logger:     logger,
	}
}

// Integrator exposes the integrator so callers can inspect its counters
func (rt *Raytracer) Integrator() *integrator.PathTracingIntegrator {
	return rt.integrator
}

// Render traces every pixel and returns Width×Height pixels, row-major with
// the top row first. Output depends only on the config and scene, not on the
// number of workers.
func (rt *Raytracer) Render(ctx context.Context) ([]uint32, RenderStats, error) {
	if err := rt.config.Validate(); err != nil {
		return nil, RenderStats{}, err
	}

	start := time.Now()
	rt.integrator.ResetStats()

	tiles := NewTileGrid(rt.config.Width, rt.config.Height, rt.config.TileSize, rt.config.Seed)
	pool := NewWorkerPool(rt.config.workers())
	tileRenderer := NewTileRenderer(rt.camera, rt.tracer, rt.integrator, rt.config)
	pixels := make([]uint32, rt.config.Width*rt.config.Height)

	rt.logger.Printf("Rendering %dx%d at %d spp (%d tiles, %d workers, jittered=%v)\n",
		rt.config.Width, rt.config.Height, rt.config.SamplesPerPixel,
		len(tiles), pool.GetNumWorkers(), rt.config.Jittered)

	results, err := pool.Run(ctx, tiles, func(ctx context.Context, tile *Tile) (RenderStats, error) {
		return tileRenderer.RenderTile(ctx, tile, pixels)
	})
	if err != nil {
		return nil, RenderStats{}, fmt.Errorf("render: %w", err)
	}

	var stats RenderStats
	for _, result := range results {
		stats.merge(result.Stats)
	}
	integratorStats := rt.integrator.Stats()
	stats.PathEvaluations = integratorStats.Evaluations
	stats.DepthLimited = integratorStats.DepthLimited
	stats.MaxDepthReached = integratorStats.MaxDepthReached
	stats.Duration = time.Since(start)
	stats.finalize()

	rt.logger.Printf("Render complete in %v: %d samples (%.1f/pixel), %d path evaluations, %d depth-limited\n",
		stats.Duration.Round(time.Millisecond), stats.TotalSamples, stats.AverageSamples,
		stats.PathEvaluations, stats.DepthLimited)

	return pixels, stats, nil
}
