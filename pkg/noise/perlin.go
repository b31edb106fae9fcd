// Package noise provides lattice gradient noise for procedural textures.
package noise

import (
	"math"
	"math/rand"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
)

const tableSize = 256

// Perlin holds the gradient and permutation tables for gradient noise.
// A table is read-only once built and safe for concurrent use.
type Perlin struct {
	gradients [tableSize]core.Vec3
	permX     [tableSize]int
	permY     [tableSize]int
	permZ     [tableSize]int
}

// NewPerlin builds a noise table from the given random generator. The same
// seed always produces the same table.
func NewPerlin(random *rand.Rand) *Perlin {
	p := &Perlin{}
	for i := range p.gradients {
		p.gradients[i] = core.Normalize(core.NewVec3(
			-1+2*random.Float32(),
			-1+2*random.Float32(),
			-1+2*random.Float32(),
		))
	}
	copy(p.permX[:], random.Perm(tableSize))
	copy(p.permY[:], random.Perm(tableSize))
	copy(p.permZ[:], random.Perm(tableSize))
	return p
}

// Noise evaluates gradient noise at point. The result is continuous in the
// point and roughly within [-1, 1].
func (p *Perlin) Noise(point core.Vec3) float32 {
	fx := math.Floor(float64(point[0]))
	fy := math.Floor(float64(point[1]))
	fz := math.Floor(float64(point[2]))

	u := point[0] - float32(fx)
	v := point[1] - float32(fy)
	w := point[2] - float32(fz)

	i, j, k := int(fx), int(fy), int(fz)

	var corners [2][2][2]core.Vec3
	for di := 0; di < 2; di++ {
		for dj := 0; dj < 2; dj++ {
			for dk := 0; dk < 2; dk++ {
				hash := p.permX[(i+di)&255] ^ p.permY[(j+dj)&255] ^ p.permZ[(k+dk)&255]
				corners[di][dj][dk] = p.gradients[hash]
			}
		}
	}

	return trilinear(corners, u, v, w)
}

// Turbulence sums octaves of noise, halving the amplitude and doubling the
// frequency each octave. Signed contributions are kept.
func (p *Perlin) Turbulence(point core.Vec3, octaves int) float32 {
	var accum float32
	amplitude := float32(1)
	for i := 0; i < octaves; i++ {
		accum += amplitude * p.Noise(point)
		amplitude *= 0.5
		point = point.Mul(2)
	}
	return accum
}

// trilinear blends the corner gradient contributions with Hermite weights
func trilinear(c [2][2][2]core.Vec3, u, v, w float32) float32 {
	uu := hermite(u)
	vv := hermite(v)
	ww := hermite(w)

	var accum float32
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				fi, fj, fk := float32(i), float32(j), float32(k)
				offset := core.NewVec3(u-fi, v-fj, w-fk)
				accum += (fi*uu + (1-fi)*(1-uu)) *
					(fj*vv + (1-fj)*(1-vv)) *
					(fk*ww + (1-fk)*(1-ww)) *
					c[i][j][k].Dot(offset)
			}
		}
	}
	return accum
}

func hermite(t float32) float32 {
	return t * t * (3 - 2*t)
}
