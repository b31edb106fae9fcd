package scene

import (
	"github.com/charmbracelet/harmonica"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/geometry"
	"github.com/df07/go-stochastic-raytracer/pkg/material"
	"github.com/df07/go-stochastic-raytracer/pkg/noise"
)

const (
	// tossEvery makes every n-th random sphere a tossed, motion-blurred one
	tossEvery = 4
	// tossSteps is the number of projectile steps simulated over the shutter interval
	tossSteps = 60
)

// tossGravity is gentler than harmonica.Gravity so tossed spheres stay in frame
var tossGravity = harmonica.Vector{X: 0, Y: -1.5, Z: 0}

// NewRandomScene creates a ground sphere of random color and ObjectCount
// random diffuse spheres scattered in front of the camera
func NewRandomScene(opts Options) *Scene {
	random := opts.Random
	perlin := noise.NewPerlin(random)

	count := opts.ObjectCount
	if count <= 0 {
		count = DefaultObjectCount
	}

	ground := randomColor(random.Float64(), random.Float64(), random.Float64())
	world := geometry.NewWorld(
		geometry.NewSphere(core.NewVec3(0, -1000.5, -1), 1000, material.NewLambertian(ground)),
	)

	for i := 0; i < count; i++ {
		radius := random.Float32() * 0.5
		center := core.NewVec3(1.5-3*random.Float32(), 0, 5-10*random.Float32())
		albedo := material.NewLambertian(randomColor(random.Float64(), random.Float64(), random.Float64()))

		if i%tossEvery == tossEvery-1 {
			end := tossEnd(center, 1+0.5*random.Float64())
			world.Add(geometry.NewMovingSphere(center, end, 0, 1, radius, albedo))
			continue
		}
		world.Add(geometry.NewSphere(center, radius, albedo))
	}

	camera := geometry.NewCamera(geometry.CameraConfig{
		Center:       core.NewVec3(0, 0.8, 5),
		LookAt:       core.NewVec3(0, 0, -1),
		Up:           core.NewVec3(0, 1, 0),
		VFov:         20,
		AspectRatio:  opts.aspectRatio(),
		Aperture:     0.15,
		ShutterOpen:  0,
		ShutterClose: 1,
	})

	return &Scene{
		Name:   "random",
		Camera: camera,
		World:  world,
		Perlin: perlin,
	}
}

// randomColor maps three uniform draws to a saturated linear RGB color
func randomColor(h, s, v float64) core.Vec3 {
	c := colorful.Hsv(360*h, 0.4+0.6*s, 0.5+0.5*v)
	r, g, b := c.LinearRgb()
	return core.NewVec3(float32(r), float32(g), float32(b))
}

// tossEnd simulates a sphere thrown straight up from start and returns where
// it is when the shutter closes
func tossEnd(start core.Vec3, upSpeed float64) core.Vec3 {
	projectile := harmonica.NewProjectile(
		harmonica.FPS(tossSteps),
		harmonica.Point{X: float64(start.X()), Y: float64(start.Y()), Z: float64(start.Z())},
		harmonica.Vector{X: 0, Y: upSpeed, Z: 0},
		tossGravity,
	)

	var pos harmonica.Point
	for i := 0; i < tossSteps; i++ {
		pos = projectile.Update()
	}
	return core.NewVec3(float32(pos.X), float32(pos.Y), float32(pos.Z))
}
