package material

import (
	"math"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
)

// Dielectric represents a transparent material like glass that can both reflect and refract
type Dielectric struct {
	RefractiveIndex float32 // Index of refraction (e.g., 1.5 for glass)
}

// NewDielectric creates a new dielectric material
func NewDielectric(refractiveIndex float32) *Dielectric {
	return &Dielectric{RefractiveIndex: refractiveIndex}
}

// Scatter chooses between reflection and refraction with Schlick's
// reflectance as the reflection probability
func (d *Dielectric) Scatter(rayIn core.Ray, rec ShadeRecord, sampler core.Sampler) (ScatterResult, bool) {
	direction := rayIn.Direction
	dn := direction.Dot(rec.Normal)
	length := direction.Len()

	var outwardNormal core.Vec3
	var niOverNt, cosine float32
	if dn > 0 {
		// Exiting the medium
		outwardNormal = rec.Normal.Mul(-1)
		niOverNt = d.RefractiveIndex
		cosine = dn / length
		cosine = sqrtOrZero(1 - d.RefractiveIndex*d.RefractiveIndex*(1-cosine*cosine))
	} else {
		outwardNormal = rec.Normal
		niOverNt = 1 / d.RefractiveIndex
		cosine = -dn / length
	}

	reflectProb := float32(1)
	refracted, ok := Refract(direction, outwardNormal, niOverNt)
	if ok {
		reflectProb = Reflectance(cosine, d.RefractiveIndex)
	}

	scatteredDir := refracted
	if sampler.Get1D() < reflectProb {
		scatteredDir = core.Reflect(direction, rec.Normal)
	}

	return ScatterResult{
		Incoming:    rayIn,
		Scattered:   core.NewRay(rec.Point, scatteredDir, rayIn.Time),
		Attenuation: core.Splat(1),
	}, true
}

// Refract bends v through a surface with normal n by Snell's law.
// Returns false under total internal reflection.
func Refract(v, n core.Vec3, niOverNt float32) (core.Vec3, bool) {
	uv := core.Normalize(v)
	dt := uv.Dot(n)
	discriminant := 1 - niOverNt*niOverNt*(1-dt*dt)
	if discriminant <= 0 {
		return core.Vec3{}, false
	}
	refracted := uv.Sub(n.Mul(dt)).Mul(niOverNt).Sub(n.Mul(float32(math.Sqrt(float64(discriminant)))))
	return refracted, true
}

// Reflectance calculates the Fresnel reflectance using Schlick's approximation
func Reflectance(cosine, refractiveIndex float32) float32 {
	r0 := (1 - refractiveIndex) / (1 + refractiveIndex)
	r0 = r0 * r0
	return r0 + (1-r0)*float32(math.Pow(float64(1-cosine), 5))
}

func sqrtOrZero(f float32) float32 {
	if f <= 0 {
		return 0
	}
	return float32(math.Sqrt(float64(f)))
}
