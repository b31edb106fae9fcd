package integrator

import (
	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/material"
)

// Tracer answers nearest-hit queries against a scene
type Tracer interface {
	Trace(ray core.Ray) (*material.ShadeRecord, bool)
}

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor computes the linear color carried back along a camera ray
	RayColor(ray core.Ray, tracer Tracer, sampler core.Sampler) core.Vec3
}

// Config controls path termination and the environment seen by escaping rays
type Config struct {
	MaxDepth   int       // Paths reaching this depth return Background
	Background core.Vec3 // Color at the depth limit and looking straight up
	Ambient    core.Vec3 // Color looking straight down
}

// DefaultConfig returns the dark environment used by the built-in scenes
func DefaultConfig() Config {
	return Config{
		MaxDepth:   100,
		Background: core.NewVec3(0.01, 0.01, 0.01),
		Ambient:    core.NewVec3(0.1, 0.1, 0.1),
	}
}
