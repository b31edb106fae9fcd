package renderer

import (
	"context"
	"errors"
	"testing"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/geometry"
	"github.com/df07/go-stochastic-raytracer/pkg/integrator"
	"github.com/df07/go-stochastic-raytracer/pkg/material"
)

func smallConfig(width, height, samples int) Config {
	config := DefaultConfig()
	config.Width = width
	config.Height = height
	config.SamplesPerPixel = samples
	config.TileSize = 4
	config.NumWorkers = 2
	return config
}

// upwardCamera looks straight up from the origin with a pinhole lens
func upwardCamera(aspect float32) *geometry.Camera {
	return geometry.NewCamera(geometry.CameraConfig{
		Center:       core.NewVec3(0, 0, 0),
		LookAt:       core.NewVec3(0, 1, 0),
		Up:           core.NewVec3(0, 0, -1),
		VFov:         60,
		AspectRatio:  aspect,
		ShutterOpen:  0,
		ShutterClose: 1,
	})
}

func TestRaytracer_LightPanelFillsFrame(t *testing.T) {
	emission := core.NewVec3(0.25, 0.49, 0.64)
	world := geometry.NewWorld(
		geometry.NewRect(-1000, 1000, -1000, 1000, 1, material.NewDiffuseLight(emission)),
	)

	for _, jittered := range []bool{true, false} {
		config := smallConfig(12, 8, 16)
		config.Jittered = jittered
		rt := NewRaytracer(upwardCamera(1.5), world, config, nil)

		pixels, stats, err := rt.Render(context.Background())
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if len(pixels) != 12*8 {
			t.Fatalf("Expected %d pixels, got %d", 12*8, len(pixels))
		}

		expected := EncodePixel(emission)
		for i, p := range pixels {
			if p != expected {
				t.Fatalf("jittered=%v pixel %d: expected %v, got %v", jittered, i, DecodePixel(expected), DecodePixel(p))
			}
		}

		// Each camera ray stops at the light with no recursion
		if stats.TotalSamples != 12*8*16 {
			t.Errorf("Expected %d samples, got %d", 12*8*16, stats.TotalSamples)
		}
		if stats.PathEvaluations != int64(stats.TotalSamples) {
			t.Errorf("Expected one evaluation per sample (%d), got %d", stats.TotalSamples, stats.PathEvaluations)
		}
		if stats.MaxDepthReached != 0 {
			t.Errorf("Expected no bounces, got max depth %d", stats.MaxDepthReached)
		}
	}
}

func TestRaytracer_EnclosingMirrorHitsDepthLimit(t *testing.T) {
	// A mirror sphere around the camera reflects every ray back inside
	mirror := &material.Metallic{Albedo: core.NewVec3(0.9, 0.5, 0.1), Fuzz: 0}
	world := geometry.NewWorld(geometry.NewSphere(core.NewVec3(0, 0, 0), 10, mirror))

	config := smallConfig(6, 4, 4)
	rt := NewRaytracer(upwardCamera(1.5), world, config, nil)

	pixels, stats, err := rt.Render(context.Background())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	expected := EncodePixel(integrator.DefaultConfig().Background)
	for i, p := range pixels {
		if p != expected {
			t.Fatalf("Pixel %d: expected background %v, got %v", i, DecodePixel(expected), DecodePixel(p))
		}
	}

	samples := int64(stats.TotalSamples)
	if stats.PathEvaluations != samples*101 {
		t.Errorf("Expected %d evaluations, got %d", samples*101, stats.PathEvaluations)
	}
	if stats.DepthLimited != samples {
		t.Errorf("Expected every path depth-limited (%d), got %d", samples, stats.DepthLimited)
	}
	if stats.MaxDepthReached != 100 {
		t.Errorf("Expected max depth 100, got %d", stats.MaxDepthReached)
	}
}

func TestRaytracer_FacingMirrorsStayBounded(t *testing.T) {
	mirror := &material.Metallic{Albedo: core.Splat(1), Fuzz: 0}
	world := geometry.NewWorld(
		geometry.NewSphere(core.NewVec3(0, 3, 0), 2, mirror),
		geometry.NewSphere(core.NewVec3(0, -3, 0), 2, mirror),
	)

	config := smallConfig(8, 8, 4)
	rt := NewRaytracer(upwardCamera(1), world, config, nil)

	pixels, stats, err := rt.Render(context.Background())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(pixels) != 64 {
		t.Fatalf("Expected 64 pixels, got %d", len(pixels))
	}
	if stats.MaxDepthReached > 100 {
		t.Errorf("Expected depth at most 100, got %d", stats.MaxDepthReached)
	}
	if stats.PathEvaluations > int64(stats.TotalSamples)*101 {
		t.Errorf("Expected at most 101 evaluations per sample, got %d for %d samples",
			stats.PathEvaluations, stats.TotalSamples)
	}
}

func TestRaytracer_DeterministicAcrossWorkerCounts(t *testing.T) {
	world := geometry.NewWorld(
		geometry.NewSphere(core.NewVec3(0, 5, 0), 2, material.NewLambertian(core.NewVec3(0.8, 0.3, 0.3))),
		geometry.NewSphere(core.NewVec3(1.5, 6, 0.5), 1, material.NewDielectric(1.5)),
		geometry.NewRect(-3, 3, -3, 3, 9, material.NewDiffuseLight(core.NewVec3(4, 4, 4))),
	)

	render := func(workers int) []uint32 {
		config := smallConfig(16, 12, 4)
		config.NumWorkers = workers
		pixels, _, err := NewRaytracer(upwardCamera(16.0/12.0), world, config, nil).Render(context.Background())
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		return pixels
	}

	single := render(1)
	many := render(8)
	for i := range single {
		if single[i] != many[i] {
			t.Fatalf("Pixel %d differs between worker counts: %v vs %v", i, DecodePixel(single[i]), DecodePixel(many[i]))
		}
	}
}

func TestRaytracer_NonSquareJitterDividesBySampleCount(t *testing.T) {
	emission := core.NewVec3(1, 1, 1)
	world := geometry.NewWorld(
		geometry.NewRect(-1000, 1000, -1000, 1000, 1, material.NewDiffuseLight(emission)),
	)

	// 5 samples jittered take a 2×2 grid, so each pixel sums 4 of 5
	config := smallConfig(2, 2, 5)
	config.Jittered = true
	pixels, stats, err := NewRaytracer(upwardCamera(1), world, config, nil).Render(context.Background())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if stats.TotalSamples != 16 {
		t.Errorf("Expected 16 samples, got %d", stats.TotalSamples)
	}
	expected := EncodePixel(core.Splat(0.8))
	if pixels[0] != expected {
		t.Errorf("Expected %v, got %v", DecodePixel(expected), DecodePixel(pixels[0]))
	}
}

func TestRaytracer_InvalidConfig(t *testing.T) {
	config := smallConfig(0, 4, 1)
	_, _, err := NewRaytracer(upwardCamera(1), geometry.NewWorld(), config, nil).Render(context.Background())
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig, got %v", err)
	}
}

func TestRaytracer_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := NewRaytracer(upwardCamera(1), geometry.NewWorld(), smallConfig(8, 8, 1), nil).Render(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}
