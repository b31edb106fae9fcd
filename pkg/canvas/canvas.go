// Package canvas is the public entry point: it turns a small render request
// into a packed pixel buffer and writes buffers out as PNG files.
package canvas

import (
	"context"
	"errors"
	"fmt"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/renderer"
	"github.com/df07/go-stochastic-raytracer/pkg/scene"
)

// ErrInvalidRequest is returned when a request cannot produce an image
var ErrInvalidRequest = errors.New("invalid image request")

// Request describes one image
type Request struct {
	Width           uint16
	Height          uint16
	SamplesPerPixel uint8
	RandomScene     bool // Random spheres instead of the predefined scene
	Jittered        bool // Stratified sub-pixel sampling
	ObjectCount     int  // Random scene sphere count (0 = scene default)
	Seed            int64
	Workers         int // 0 = one per CPU
	Logger          core.Logger
}

// SceneID returns the registry name of the requested scene
func (r Request) SceneID() string {
	if r.RandomScene {
		return "random"
	}
	return "predefined"
}

// Validate rejects zero-sized images and zero sample counts
func (r Request) Validate() error {
	switch {
	case r.Width == 0:
		return fmt.Errorf("%w: width must be positive", ErrInvalidRequest)
	case r.Height == 0:
		return fmt.Errorf("%w: height must be positive", ErrInvalidRequest)
	case r.SamplesPerPixel == 0:
		return fmt.Errorf("%w: samples per pixel must be positive", ErrInvalidRequest)
	case r.ObjectCount < 0:
		return fmt.Errorf("%w: object count must not be negative, got %d", ErrInvalidRequest, r.ObjectCount)
	case r.Workers < 0:
		return fmt.Errorf("%w: worker count must not be negative, got %d", ErrInvalidRequest, r.Workers)
	}
	return nil
}

// MakeImage renders the requested scene and returns Width×Height packed
// RGBA pixels, row-major with the top row first
func MakeImage(ctx context.Context, req Request) ([]uint32, error) {
	pixels, _, err := MakeImageWithStats(ctx, req)
	return pixels, err
}

// MakeImageWithStats is MakeImage plus the render statistics
func MakeImageWithStats(ctx context.Context, req Request) ([]uint32, renderer.RenderStats, error) {
	if err := req.Validate(); err != nil {
		return nil, renderer.RenderStats{}, err
	}

	width, height := int(req.Width), int(req.Height)
	s, err := scene.Build(req.SceneID(), scene.Options{
		Width:       width,
		Height:      height,
		ObjectCount: req.ObjectCount,
	}, req.Seed)
	if err != nil {
		return nil, renderer.RenderStats{}, fmt.Errorf("build scene: %w", err)
	}

	config := renderer.DefaultConfig()
	config.Width = width
	config.Height = height
	config.SamplesPerPixel = int(req.SamplesPerPixel)
	config.Jittered = req.Jittered
	config.NumWorkers = req.Workers
	config.Seed = req.Seed

	rt := renderer.NewRaytracer(s.Camera, s.World, config, req.Logger)
	return rt.Render(ctx)
}
