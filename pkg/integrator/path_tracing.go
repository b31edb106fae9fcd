package integrator

import (
	"sync/atomic"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/material"
)

// Stats counts integrator work across all goroutines sharing an integrator
type Stats struct {
	Evaluations     int64 // Calls to the recursive color evaluation, camera rays included
	DepthLimited    int64 // Paths cut off at MaxDepth
	MaxDepthReached int64 // Deepest bounce index evaluated
}

// PathTracingIntegrator follows a single scattered ray per bounce until the
// path escapes, reaches a light, is absorbed or hits the depth limit
type PathTracingIntegrator struct {
	config Config

	evaluations     atomic.Int64
	depthLimited    atomic.Int64
	maxDepthReached atomic.Int64
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(config Config) *PathTracingIntegrator {
	return &PathTracingIntegrator{config: config}
}

// RayColor computes the color for a single camera ray
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, tracer Tracer, sampler core.Sampler) core.Vec3 {
	return pt.rayColor(ray, tracer, sampler, 0)
}

func (pt *PathTracingIntegrator) rayColor(ray core.Ray, tracer Tracer, sampler core.Sampler, depth int) core.Vec3 {
	pt.evaluations.Add(1)
	pt.recordDepth(int64(depth))

	if depth >= pt.config.MaxDepth {
		pt.depthLimited.Add(1)
		return pt.config.Background
	}

	hit, isHit := tracer.Trace(ray)
	if !isHit {
		return pt.backgroundGradient(ray)
	}

	if emitter, isEmissive := hit.Material.(material.Emitter); isEmissive {
		return emitter.Emit(ray, *hit)
	}

	scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
	if !didScatter {
		return core.Vec3{}
	}

	incoming := pt.rayColor(scatter.Scattered, tracer, sampler, depth+1)
	return core.MulVec(scatter.Attenuation, incoming)
}

// backgroundGradient blends from Ambient (looking down) to Background (looking up)
func (pt *PathTracingIntegrator) backgroundGradient(r core.Ray) core.Vec3 {
	unitDirection := core.Normalize(r.Direction)
	t := 0.5 * (unitDirection.Y() + 1)
	return core.Lerp(pt.config.Ambient, pt.config.Background, t)
}

func (pt *PathTracingIntegrator) recordDepth(depth int64) {
	for {
		current := pt.maxDepthReached.Load()
		if depth <= current || pt.maxDepthReached.CompareAndSwap(current, depth) {
			return
		}
	}
}

// Stats returns a snapshot of the work counters
func (pt *PathTracingIntegrator) Stats() Stats {
	return Stats{
		Evaluations:     pt.evaluations.Load(),
		DepthLimited:    pt.depthLimited.Load(),
		MaxDepthReached: pt.maxDepthReached.Load(),
	}
}

// ResetStats zeroes the work counters
func (pt *PathTracingIntegrator) ResetStats() {
	pt.evaluations.Store(0)
	pt.depthLimited.Store(0)
	pt.maxDepthReached.Store(0)
}
