package material

import (
	"github.com/df07/go-stochastic-raytracer/pkg/core"
)

// DiffuseLight represents a light-emitting surface. Paths end when they reach it.
type DiffuseLight struct {
	Emission ColorSource
}

// NewDiffuseLight creates a light with a constant emission color
func NewDiffuseLight(emission core.Vec3) *DiffuseLight {
	return &DiffuseLight{Emission: NewSolidColor(emission)}
}

// Scatter never scatters: lights absorb all incoming rays
func (e *DiffuseLight) Scatter(rayIn core.Ray, rec ShadeRecord, sampler core.Sampler) (ScatterResult, bool) {
	return ScatterResult{}, false
}

// Emit returns the emission color at the hit point
func (e *DiffuseLight) Emit(rayIn core.Ray, rec ShadeRecord) core.Vec3 {
	return e.Emission.Evaluate(rec.Point)
}
