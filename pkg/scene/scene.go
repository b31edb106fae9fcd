package scene

import (
	"math/rand"

	"github.com/df07/go-stochastic-raytracer/pkg/geometry"
	"github.com/df07/go-stochastic-raytracer/pkg/noise"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name   string
	Camera *geometry.Camera
	World  *geometry.World
	Perlin *noise.Perlin // Noise table shared by every noise texture in the scene
}

// Options controls how a scene builder populates a scene
type Options struct {
	Width       int        // Target image width, used for the camera aspect ratio
	Height      int        // Target image height
	ObjectCount int        // Number of generated objects (random scene only)
	Random      *rand.Rand // Source of all scene randomness, noise table included
}

// DefaultObjectCount is the number of spheres in a random scene
const DefaultObjectCount = 20

// Builder populates a scene from options
type Builder func(opts Options) *Scene

// aspectRatio returns width/height
func (o Options) aspectRatio() float32 {
	return float32(o.Width) / float32(o.Height)
}
