package geometry

import (
	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/material"
)

// rectNormal is the reported normal for every rect hit. Rects are only used
// as horizontal light panels, whose shading never reads the normal.
var rectNormal = core.NewVec3(0, 0, 1)

// Rect is an axis-aligned rectangle in the horizontal plane y = Y,
// bounded by [X0,X1] × [Z0,Z1]
type Rect struct {
	X0, X1   float32
	Z0, Z1   float32
	Y        float32
	Material material.Material
}

// NewRect creates a horizontal rectangle at height y
func NewRect(x0, x1, z0, z1, y float32, mat material.Material) *Rect {
	return &Rect{X0: x0, X1: x1, Z0: z0, Z1: z1, Y: y, Material: mat}
}

// Hit intersects the ray with the plane y = Y and checks the x/z bounds
func (r *Rect) Hit(ray core.Ray, tMin, tMax float32) (*material.ShadeRecord, bool) {
	dy := ray.Direction.Y()
	if dy == 0 {
		return nil, false
	}

	t := (r.Y - ray.Origin.Y()) / dy
	if !validRoot(t, tMin, tMax) {
		return nil, false
	}

	point := ray.At(t)
	x, z := point.X(), point.Z()
	if x < r.X0 || x > r.X1 || z < r.Z0 || z > r.Z1 {
		return nil, false
	}

	return &material.ShadeRecord{
		T:           t,
		Point:       point,
		Normal:      rectNormal,
		Material:    r.Material,
		ObjectIndex: -1,
	}, true
}
