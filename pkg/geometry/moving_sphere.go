package geometry

import (
	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/material"
)

// MovingSphere is a sphere whose center travels linearly between two points
// over a time interval, producing motion blur
type MovingSphere struct {
	CenterStart core.Vec3
	CenterEnd   core.Vec3
	TimeStart   float32
	TimeEnd     float32
	Radius      float32
	Material    material.Material
}

// NewMovingSphere creates a sphere moving from start (at t0) to end (at t1)
func NewMovingSphere(start, end core.Vec3, t0, t1, radius float32, mat material.Material) *MovingSphere {
	return &MovingSphere{
		CenterStart: start,
		CenterEnd:   end,
		TimeStart:   t0,
		TimeEnd:     t1,
		Radius:      radius,
		Material:    mat,
	}
}

// CenterAt returns the center at the given time. Times outside the interval
// extrapolate along the same line.
func (s *MovingSphere) CenterAt(time float32) core.Vec3 {
	frac := (time - s.TimeStart) / (s.TimeEnd - s.TimeStart)
	return s.CenterStart.Add(s.CenterEnd.Sub(s.CenterStart).Mul(frac))
}

// Hit tests the ray against the sphere at the ray's time
func (s *MovingSphere) Hit(ray core.Ray, tMin, tMax float32) (*material.ShadeRecord, bool) {
	return hitSphere(ray, s.CenterAt(ray.Time), s.Radius, s.Material, tMin, tMax)
}
