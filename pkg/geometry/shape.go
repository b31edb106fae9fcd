package geometry

import (
	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/material"
)

// Shape interface for objects that can be hit by rays.
// Hit returns the closest intersection with tMin < t < tMax.
type Shape interface {
	Hit(ray core.Ray, tMin, tMax float32) (*material.ShadeRecord, bool)
}

// validRoot reports whether t is a finite parameter strictly inside (tMin, tMax)
func validRoot(t, tMin, tMax float32) bool {
	return core.IsFinite(t) && t > tMin && t < tMax
}
