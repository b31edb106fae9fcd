package scene

import (
	"errors"
	"fmt"
	"math/rand"
)

// ErrUnknownScene is returned when a scene name is not registered
var ErrUnknownScene = errors.New("unknown scene")

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string  `json:"id"`          // Unique identifier
	DisplayName string  `json:"displayName"` // UI display name
	Description string  `json:"description"` // Optional description
	Builder     Builder `json:"-"`
}

var builtInScenes = []SceneInfo{
	{
		ID:          "predefined",
		DisplayName: "Predefined",
		Description: "Checkered ground with glass, marble, metal and moving spheres under three light panels",
		Builder:     NewPredefinedScene,
	},
	{
		ID:          "random",
		DisplayName: "Random Spheres",
		Description: "Randomly placed and colored diffuse spheres, some tossed during the exposure",
		Builder:     NewRandomScene,
	},
}

// List returns the built-in scenes in display order
func List() []SceneInfo {
	out := make([]SceneInfo, len(builtInScenes))
	copy(out, builtInScenes)
	return out
}

// Lookup finds a built-in scene by ID
func Lookup(id string) (SceneInfo, error) {
	for _, info := range builtInScenes {
		if info.ID == id {
			return info, nil
		}
	}
	return SceneInfo{}, fmt.Errorf("%w: %q", ErrUnknownScene, id)
}

// Build creates the named scene. A nil Random is replaced by a generator seeded with seed.
func Build(id string, opts Options, seed int64) (*Scene, error) {
	info, err := Lookup(id)
	if err != nil {
		return nil, err
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("scene %s: image size must be positive, got %dx%d", id, opts.Width, opts.Height)
	}
	if opts.Random == nil {
		opts.Random = rand.New(rand.NewSource(seed))
	}
	return info.Builder(opts), nil
}
