package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
)

// CameraConfig contains all camera configuration parameters
type CameraConfig struct {
	Center        core.Vec3 // Camera position (look-from)
	LookAt        core.Vec3 // Point the camera looks at
	Up            core.Vec3 // Up direction
	VFov          float32   // Vertical field of view in degrees
	AspectRatio   float32   // Width / height
	Aperture      float32   // Lens diameter, 0 for a pinhole
	FocusDistance float32   // Distance to the focus plane (0 = auto-calculate from LookAt)
	ShutterOpen   float32
	ShutterClose  float32
}

// Camera generates rays through a thin lens during a shutter interval
type Camera struct {
	origin       core.Vec3
	topLeft      core.Vec3
	horizontal   core.Vec3
	vertical     core.Vec3
	u, v, w      core.Vec3
	lensRadius   float32
	shutterOpen  float32
	shutterClose float32
}

// NewCamera creates a camera from its configuration
func NewCamera(config CameraConfig) *Camera {
	focusDistance := config.FocusDistance
	if focusDistance <= 0 {
		focusDistance = config.Center.Sub(config.LookAt).Len()
	}

	halfHeight := float32(math.Tan(float64(mgl32.DegToRad(config.VFov)) / 2))
	halfWidth := config.AspectRatio * halfHeight

	w := core.Normalize(config.Center.Sub(config.LookAt))
	u := core.Normalize(config.Up.Cross(w))
	v := w.Cross(u)

	origin := config.Center
	topLeft := origin.
		Sub(u.Mul(halfWidth * focusDistance)).
		Add(v.Mul(halfHeight * focusDistance)).
		Sub(w.Mul(focusDistance))

	return &Camera{
		origin:       origin,
		topLeft:      topLeft,
		horizontal:   u.Mul(2 * halfWidth * focusDistance),
		vertical:     v.Mul(2 * halfHeight * focusDistance),
		u:            u,
		v:            v,
		w:            w,
		lensRadius:   config.Aperture / 2,
		shutterOpen:  config.ShutterOpen,
		shutterClose: config.ShutterClose,
	}
}

// GetRay returns a ray through image coordinates (s, t) in [0,1]², where
// (0,0) is the top-left corner and t grows downwards. The origin is jittered
// across the lens and the time is drawn from the shutter interval.
func (c *Camera) GetRay(s, t float32, sampler core.Sampler) core.Ray {
	lens := core.SamplePointInUnitDisk(sampler.Get2D()).Mul(c.lensRadius)
	offset := c.u.Mul(lens.X()).Add(c.v.Mul(lens.Y()))

	direction := c.topLeft.
		Add(c.horizontal.Mul(s)).
		Sub(c.vertical.Mul(t)).
		Sub(c.origin).
		Sub(offset)

	time := c.shutterOpen + sampler.Get1D()*(c.shutterClose-c.shutterOpen)
	return core.NewRay(c.origin.Add(offset), direction, time)
}

// Forward returns the unit viewing direction
func (c *Camera) Forward() core.Vec3 {
	return c.w.Mul(-1)
}
