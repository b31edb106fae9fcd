package material

import (
	"math"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/noise"
)

// ColorSource provides spatially-varying colors for materials
type ColorSource interface {
	// Evaluate returns the color at a world-space point
	Evaluate(point core.Vec3) core.Vec3
}

// SolidColor provides uniform color
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor creates a new solid color source
func NewSolidColor(color core.Vec3) *SolidColor {
	return &SolidColor{Color: color}
}

// Evaluate returns the solid color regardless of position
func (s *SolidColor) Evaluate(point core.Vec3) core.Vec3 {
	return s.Color
}

// Checkerboard alternates between two color sources in a 3D sine pattern
type Checkerboard struct {
	Left  ColorSource // used where sin(10x)·sin(10y)·sin(10z) < 0
	Right ColorSource
}

// NewCheckerboard creates a checkerboard from two child sources
func NewCheckerboard(left, right ColorSource) *Checkerboard {
	return &Checkerboard{Left: left, Right: right}
}

// Evaluate routes to Left or Right depending on the sign of the sine product
func (c *Checkerboard) Evaluate(point core.Vec3) core.Vec3 {
	sines := math.Sin(10*float64(point[0])) *
		math.Sin(10*float64(point[1])) *
		math.Sin(10*float64(point[2]))
	if sines < 0 {
		return c.Left.Evaluate(point)
	}
	return c.Right.Evaluate(point)
}

const (
	// DefaultNoiseScale is the frequency of the marble stripes along z
	DefaultNoiseScale = 5.0
	// DefaultNoiseOctaves is the number of turbulence octaves
	DefaultNoiseOctaves = 7
)

// NoiseTexture is a gray marble pattern driven by Perlin turbulence
type NoiseTexture struct {
	Perlin  *noise.Perlin
	Scale   float32
	Octaves int
}

// NewNoiseTexture creates a marble texture over a shared noise table
func NewNoiseTexture(perlin *noise.Perlin) *NoiseTexture {
	return &NoiseTexture{
		Perlin:  perlin,
		Scale:   DefaultNoiseScale,
		Octaves: DefaultNoiseOctaves,
	}
}

// Evaluate returns (1,1,1)·0.5·(1 + sin(scale·z + 10·turbulence(p)))
func (n *NoiseTexture) Evaluate(point core.Vec3) core.Vec3 {
	turb := n.Perlin.Turbulence(point, n.Octaves)
	gray := 0.5 * (1 + math.Sin(float64(n.Scale*point[2]+10*turb)))
	return core.Splat(float32(gray))
}
