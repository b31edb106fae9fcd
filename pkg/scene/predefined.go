package scene

import (
	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/geometry"
	"github.com/df07/go-stochastic-raytracer/pkg/material"
	"github.com/df07/go-stochastic-raytracer/pkg/noise"
)

// NewPredefinedScene creates the showcase scene: a checkered ground, diffuse,
// glass, marble and metal spheres, one moving sphere and three light panels
func NewPredefinedScene(opts Options) *Scene {
	random := opts.Random
	perlin := noise.NewPerlin(random)

	checker := material.NewCheckerboard(
		material.NewSolidColor(core.NewVec3(0.2, 0.3, 0.1)),
		material.NewSolidColor(core.NewVec3(0.9, 0.9, 0.9)),
	)
	white := core.NewVec3(1, 1, 1)

	// The small blue sphere bounces upwards while the shutter is open
	bounceStart := core.NewVec3(0.6, -0.1, 0.1)
	bounceEnd := bounceStart.Add(core.NewVec3(0, 0.35*random.Float32(), 0))

	world := geometry.NewWorld(
		geometry.NewSphere(core.NewVec3(0, -1000.5, -1), 1000, material.NewTexturedLambertian(checker)),
		geometry.NewSphere(core.NewVec3(0, 0.1, -1), 0.6, material.NewLambertian(core.NewVec3(0.9, 0.1, 0.2))),
		geometry.NewSphere(core.NewVec3(1.1, 0, -1), 0.5, material.NewDielectric(1.7)),
		geometry.NewSphere(core.NewVec3(-0.95, 0.5, -1), 0.45, material.NewTexturedLambertian(material.NewNoiseTexture(perlin))),
		geometry.NewSphere(core.NewVec3(-1.2, -0.2, -1), 0.3, material.NewLambertian(core.NewVec3(0.9, 0.9, 0.2))),
		geometry.NewMovingSphere(bounceStart, bounceEnd, 0, 1, 0.2, material.NewLambertian(core.NewVec3(0.25, 0.45, 0.8))),
		geometry.NewSphere(core.NewVec3(-0.6, -0.3, 0.4), 0.2, material.NewMetallic(core.NewVec3(0.8, 0.8, 0.8))),
		geometry.NewRect(-1.7, -0.7, -0.5, 0.5, 0.9, material.NewDiffuseLight(white)),
		geometry.NewRect(-0.5, 0.5, -0.5, 0.5, 0.9, material.NewDiffuseLight(white)),
		geometry.NewRect(0.7, 1.7, -0.5, 0.5, 0.9, material.NewDiffuseLight(white)),
	)

	camera := geometry.NewCamera(geometry.CameraConfig{
		Center:       core.NewVec3(0.7, -0.25, 5.5),
		LookAt:       core.NewVec3(0, 0, -1),
		Up:           core.NewVec3(0, 1, 0),
		VFov:         20,
		AspectRatio:  opts.aspectRatio(),
		Aperture:     0.1,
		ShutterOpen:  0,
		ShutterClose: 1,
	})

	return &Scene{
		Name:   "predefined",
		Camera: camera,
		World:  world,
		Perlin: perlin,
	}
}
