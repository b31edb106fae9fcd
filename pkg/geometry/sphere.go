package geometry

import (
	"math"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float32
	Material material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float32, mat material.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: mat,
	}
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float32) (*material.ShadeRecord, bool) {
	return hitSphere(ray, s.Center, s.Radius, s.Material, tMin, tMax)
}

// hitSphere solves |o + t·d - c|² = r² and returns the nearest root in range.
// The normal always points away from the center.
func hitSphere(ray core.Ray, center core.Vec3, radius float32, mat material.Material, tMin, tMax float32) (*material.ShadeRecord, bool) {
	oc := ray.Origin.Sub(center)

	// Quadratic coefficients for a·t² + 2b·t + c = 0
	a := ray.Direction.Dot(ray.Direction)
	b := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - radius*radius

	if a == 0 {
		return nil, false
	}

	discriminant := b*b - a*c
	if !(discriminant > 0) {
		return nil, false
	}
	sqrtD := float32(math.Sqrt(float64(discriminant)))

	root := (-b - sqrtD) / a
	if !validRoot(root, tMin, tMax) {
		root = (-b + sqrtD) / a
		if !validRoot(root, tMin, tMax) {
			return nil, false
		}
	}

	point := ray.At(root)
	return &material.ShadeRecord{
		T:           root,
		Point:       point,
		Normal:      point.Sub(center).Mul(1 / radius),
		Material:    mat,
		ObjectIndex: -1,
	}, true
}
