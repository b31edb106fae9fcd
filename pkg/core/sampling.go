package core

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"
)

// Vec2 holds a pair of sample values or sub-pixel offsets
type Vec2 = mgl32.Vec2

// Sampler provides random sampling for rendering algorithms
// Can be swapped out for deterministic testing or different sampling patterns
type Sampler interface {
	Get1D() float32
	Get2D() Vec2
	Get3D() Vec3
}

// RandomSampler wraps a standard Go random generator
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// NewSeededSampler creates a sampler with its own generator seeded by seed
func NewSeededSampler(seed int64) *RandomSampler {
	return NewRandomSampler(rand.New(rand.NewSource(seed)))
}

// Get1D returns a random float32 in [0, 1)
func (r *RandomSampler) Get1D() float32 {
	return r.random.Float32()
}

// Get2D returns two random float32 values in [0, 1)
func (r *RandomSampler) Get2D() Vec2 {
	return Vec2{r.random.Float32(), r.random.Float32()}
}

// Get3D returns three random float32 values in [0, 1)
func (r *RandomSampler) Get3D() Vec3 {
	return Vec3{r.random.Float32(), r.random.Float32(), r.random.Float32()}
}

// SamplePointInUnitDisk maps a sample to the unit disk with the polar method
// (r = sqrt(u), theta = 2πv). The result lies in the XY plane.
func SamplePointInUnitDisk(sample Vec2) Vec3 {
	r := math.Sqrt(float64(sample[0]))
	theta := 2 * math.Pi * float64(sample[1])
	return Vec3{float32(r * math.Cos(theta)), float32(r * math.Sin(theta)), 0}
}

// SampleOnUnitSphere generates a uniform direction on the unit sphere by
// inverse transform on z in [-1, 1] and phi in [0, 2π)
func SampleOnUnitSphere(sample Vec2) Vec3 {
	z := 1 - 2*float64(sample[0])
	r := math.Sqrt(math.Max(0, 1-z*z))
	phi := 2 * math.Pi * float64(sample[1])
	return Vec3{float32(r * math.Cos(phi)), float32(r * math.Sin(phi)), float32(z)}
}

// SamplePointInUnitSphere picks a direction on the unit sphere and scales it
// by a uniform radius. Points cluster toward the center compared to a
// volume-uniform distribution; diffuse scattering relies on this shape.
func SamplePointInUnitSphere(sample Vec3) Vec3 {
	return SampleOnUnitSphere(Vec2{sample[0], sample[1]}).Mul(sample[2])
}

// JitteredOffsets returns n×n stratified sub-pixel offsets in [0,1)², where
// n = ⌊√samples⌋, with one uniformly perturbed point inside each cell.
// Offsets are ordered row by row.
func JitteredOffsets(samples int, sampler Sampler) []Vec2 {
	n := int(math.Sqrt(float64(samples)))
	offsets := make([]Vec2, 0, n*n)
	cell := 1 / float32(n)
	for j := 0; j < n; j++ {
		for k := 0; k < n; k++ {
			jitter := sampler.Get2D()
			offsets = append(offsets, Vec2{
				inCell(k, jitter[0], cell),
				inCell(j, jitter[1], cell),
			})
		}
	}
	return offsets
}

// inCell places u in [0,1) inside cell i, staying below the cell's upper edge
// when float32 rounding would land on it
func inCell(i int, u, cell float32) float32 {
	upper := math.Nextafter32(float32(i+1)*cell, 0)
	return min((float32(i)+u)*cell, upper)
}

// RandomOffsets returns samples independent sub-pixel offsets in [0,1)²
func RandomOffsets(samples int, sampler Sampler) []Vec2 {
	offsets := make([]Vec2, samples)
	for i := range offsets {
		offsets[i] = sampler.Get2D()
	}
	return offsets
}
