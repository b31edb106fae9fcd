package renderer

import (
	"time"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels     int           // Total number of pixels rendered
	TotalSamples    int           // Total number of camera rays traced
	AverageSamples  float64       // Average camera rays per pixel
	PathEvaluations int64         // Recursive color evaluations, camera rays included
	DepthLimited    int64         // Paths cut off at the depth limit
	MaxDepthReached int64         // Deepest bounce evaluated
	Duration        time.Duration // Wall-clock render time
}

// merge adds the per-tile counts of other into s
func (s *RenderStats) merge(other RenderStats) {
	s.TotalPixels += other.TotalPixels
	s.TotalSamples += other.TotalSamples
}

// finalize derives the averages once all tiles are merged
func (s *RenderStats) finalize() {
	if s.TotalPixels > 0 {
		s.AverageSamples = float64(s.TotalSamples) / float64(s.TotalPixels)
	}
}

// PixelStats accumulates the samples of a single pixel
type PixelStats struct {
	ColorAccum  core.Vec3 // RGB accumulator
	SampleCount int       // Number of samples taken
}

// AddSample adds a new color sample to the pixel statistics
func (ps *PixelStats) AddSample(color core.Vec3) {
	ps.ColorAccum = ps.ColorAccum.Add(color)
	ps.SampleCount++
}

// GetColor returns the accumulated color divided by divisor
func (ps *PixelStats) GetColor(divisor int) core.Vec3 {
	if divisor <= 0 {
		return core.Vec3{}
	}
	return ps.ColorAccum.Mul(1 / float32(divisor))
}
