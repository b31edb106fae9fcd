package renderer

import (
	"context"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/integrator"
)

// Camera generates primary rays for normalized image coordinates
type Camera interface {
	GetRay(s, t float32, sampler core.Sampler) core.Ray
}

// TileRenderer renders individual tiles into a shared pixel buffer
type TileRenderer struct {
	camera     Camera
	tracer     integrator.Tracer
	integrator integrator.Integrator
	config     Config
}

// NewTileRenderer creates a new tile renderer with the given scene and integrator
func NewTileRenderer(camera Camera, tracer integrator.Tracer, integratorInst integrator.Integrator, config Config) *TileRenderer {
	return &TileRenderer{
		camera:     camera,
		tracer:     tracer,
		integrator: integratorInst,
		config:     config,
	}
}

// RenderTile renders every pixel of the tile into pixels (row-major, full
// image width). Tiles never overlap, so concurrent tiles may share pixels.
func (tr *TileRenderer) RenderTile(ctx context.Context, tile *Tile, pixels []uint32) (RenderStats, error) {
	sampler := core.NewRandomSampler(tile.Random)
	bounds := tile.Bounds
	stats := RenderStats{TotalPixels: bounds.Dx() * bounds.Dy()}

	for j := bounds.Min.Y; j < bounds.Max.Y; j++ {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		for i := bounds.Min.X; i < bounds.Max.X; i++ {
			ps := tr.samplePixel(i, j, sampler)
			stats.TotalSamples += ps.SampleCount
			pixels[j*tr.config.Width+i] = EncodePixel(ps.GetColor(tr.config.SamplesPerPixel))
		}
	}

	return stats, nil
}

// samplePixel traces one camera ray per sub-pixel offset
func (tr *TileRenderer) samplePixel(i, j int, sampler core.Sampler) PixelStats {
	var ps PixelStats
	width := float32(tr.config.Width)
	height := float32(tr.config.Height)

	for _, offset := range tr.offsets(sampler) {
		s := (float32(i) + offset[0]) / width
		t := (float32(j) + offset[1]) / height
		ray := tr.camera.GetRay(s, t, sampler)
		ps.AddSample(tr.integrator.RayColor(ray, tr.tracer, sampler))
	}
	return ps
}

func (tr *TileRenderer) offsets(sampler core.Sampler) []core.Vec2 {
	if tr.config.Jittered {
		return core.JitteredOffsets(tr.config.SamplesPerPixel, sampler)
	}
	return core.RandomOffsets(tr.config.SamplesPerPixel, sampler)
}
