package material

import (
	"github.com/df07/go-stochastic-raytracer/pkg/core"
)

// Material interface for surfaces that can scatter rays
type Material interface {
	// Scatter picks exactly one outgoing ray for an incoming ray at a hit.
	// Returns false when the path ends at this surface.
	Scatter(rayIn core.Ray, rec ShadeRecord, sampler core.Sampler) (ScatterResult, bool)
}

// Emitter interface for materials that emit light
type Emitter interface {
	Emit(rayIn core.Ray, rec ShadeRecord) core.Vec3
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Incoming    core.Ray  // The incoming ray
	Scattered   core.Ray  // The scattered ray
	Attenuation core.Vec3 // Color attenuation applied to light arriving along Scattered
}

// ShadeRecord contains information about a ray-object intersection.
// It is transient and only valid while the bounce that produced it is shaded.
type ShadeRecord struct {
	T           float32   // Parameter t along the ray
	Point       core.Vec3 // Point of intersection
	Normal      core.Vec3 // Outward unit surface normal
	Material    Material  // Material of the hit object
	ObjectIndex int       // Index of the hit object in the world, -1 if unset
}
