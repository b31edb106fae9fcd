package material

import (
	"github.com/df07/go-stochastic-raytracer/pkg/core"
)

// DefaultMetalFuzz is the reflection blur used by NewMetallic
const DefaultMetalFuzz = 0.5

// Metallic represents a fuzzy mirror
type Metallic struct {
	Albedo core.Vec3
	Fuzz   float32 // Radius of the random perturbation added to the mirror direction
}

// NewMetallic creates a metal with the default fuzz
func NewMetallic(albedo core.Vec3) *Metallic {
	return &Metallic{Albedo: albedo, Fuzz: DefaultMetalFuzz}
}

// Scatter reflects the normalized incoming direction and perturbs it.
// A perturbed direction that points below the surface is still followed but
// left untinted: attenuation is (1,1,1) rather than black.
func (m *Metallic) Scatter(rayIn core.Ray, rec ShadeRecord, sampler core.Sampler) (ScatterResult, bool) {
	reflected := core.Reflect(core.Normalize(rayIn.Direction), rec.Normal)
	direction := reflected.Add(core.SamplePointInUnitSphere(sampler.Get3D()).Mul(m.Fuzz))
	scattered := core.NewRay(rec.Point, direction, rayIn.Time)

	attenuation := core.Splat(1)
	if direction.Dot(rec.Normal) > 0 {
		attenuation = m.Albedo
	}

	return ScatterResult{
		Incoming:    rayIn,
		Scattered:   scattered,
		Attenuation: attenuation,
	}, true
}
