package geometry

import (
	"math"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/material"
)

// MinHitDistance keeps rays leaving a surface from hitting it again
const MinHitDistance = 0.001

// World owns the shapes of a scene in a stable-indexed arena
type World struct {
	shapes []Shape
}

// NewWorld creates a world holding the given shapes
func NewWorld(shapes ...Shape) *World {
	w := &World{}
	for _, s := range shapes {
		w.Add(s)
	}
	return w
}

// Add appends a shape and returns its index
func (w *World) Add(shape Shape) int {
	w.shapes = append(w.shapes, shape)
	return len(w.shapes) - 1
}

// Len returns the number of shapes
func (w *World) Len() int {
	return len(w.shapes)
}

// Object returns the shape stored at index i
func (w *World) Object(i int) Shape {
	return w.shapes[i]
}

// Trace finds the nearest hit along the ray with t in (MinHitDistance, +∞).
// Every shape is tested; each accepted hit narrows the search range.
func (w *World) Trace(ray core.Ray) (*material.ShadeRecord, bool) {
	var closest *material.ShadeRecord
	closestSoFar := float32(math.MaxFloat32)

	for i, shape := range w.shapes {
		rec, ok := shape.Hit(ray, MinHitDistance, closestSoFar)
		if !ok || !core.IsFinite(rec.T) {
			continue
		}
		rec.ObjectIndex = i
		closestSoFar = rec.T
		closest = rec
	}

	return closest, closest != nil
}
