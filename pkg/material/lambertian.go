package material

import (
	"github.com/df07/go-stochastic-raytracer/pkg/core"
)

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	Albedo ColorSource
}

// NewLambertian creates a new lambertian material with a solid color
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: NewSolidColor(albedo)}
}

// NewTexturedLambertian creates a lambertian material tinted by a color source
func NewTexturedLambertian(albedo ColorSource) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter aims at hit + normal + a random point in the unit sphere
func (l *Lambertian) Scatter(rayIn core.Ray, rec ShadeRecord, sampler core.Sampler) (ScatterResult, bool) {
	target := rec.Point.Add(rec.Normal).Add(core.SamplePointInUnitSphere(sampler.Get3D()))
	scattered := core.NewRay(rec.Point, target.Sub(rec.Point), rayIn.Time)

	return ScatterResult{
		Incoming:    rayIn,
		Scattered:   scattered,
		Attenuation: l.Albedo.Evaluate(rec.Point),
	}, true
}
