package scene

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/geometry"
	"github.com/df07/go-stochastic-raytracer/pkg/material"
)

func testOptions(seed int64) Options {
	return Options{Width: 80, Height: 50, Random: rand.New(rand.NewSource(seed))}
}

func TestBuild(t *testing.T) {
	tests := []struct {
		name        string
		sceneID     string
		opts        Options
		expectError bool
	}{
		{"predefined", "predefined", Options{Width: 80, Height: 50}, false},
		{"random", "random", Options{Width: 80, Height: 50, ObjectCount: 5}, false},
		{"unknown", "cornell", Options{Width: 80, Height: 50}, true},
		{"zero width", "random", Options{Width: 0, Height: 50}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Build(tt.sceneID, tt.opts, 42)
			if tt.expectError {
				if err == nil {
					t.Error("Expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if s.Camera == nil || s.World == nil || s.Perlin == nil {
				t.Fatalf("Expected camera, world and noise table, got %+v", s)
			}
			if s.Name != tt.sceneID {
				t.Errorf("Expected name %q, got %q", tt.sceneID, s.Name)
			}
		})
	}
}

func TestLookup_UnknownScene(t *testing.T) {
	_, err := Lookup("nope")
	if !errors.Is(err, ErrUnknownScene) {
		t.Errorf("Expected ErrUnknownScene, got %v", err)
	}
}

func TestList_BuiltIns(t *testing.T) {
	scenes := List()
	if len(scenes) != 2 {
		t.Fatalf("Expected 2 scenes, got %d", len(scenes))
	}
	for _, info := range scenes {
		if info.Builder == nil || info.DisplayName == "" {
			t.Errorf("Scene %q is missing a builder or display name", info.ID)
		}
	}

	// Callers cannot modify the registry
	scenes[0].ID = "changed"
	if List()[0].ID == "changed" {
		t.Error("Expected List to return a copy")
	}
}

func TestPredefinedScene_Contents(t *testing.T) {
	s := NewPredefinedScene(testOptions(1))
	if s.World.Len() != 10 {
		t.Fatalf("Expected 10 objects, got %d", s.World.Len())
	}

	var lights, moving int
	for i := 0; i < s.World.Len(); i++ {
		switch obj := s.World.Object(i).(type) {
		case *geometry.Rect:
			if _, ok := obj.Material.(*material.DiffuseLight); !ok {
				t.Errorf("Expected rect %d to be a light", i)
			}
			lights++
		case *geometry.MovingSphere:
			if obj.CenterEnd.Y() < obj.CenterStart.Y() || obj.CenterEnd.Y()-obj.CenterStart.Y() > 0.35 {
				t.Errorf("Expected upward bounce of at most 0.35, got %v -> %v", obj.CenterStart, obj.CenterEnd)
			}
			moving++
		}
	}
	if lights != 3 || moving != 1 {
		t.Errorf("Expected 3 lights and 1 moving sphere, got %d and %d", lights, moving)
	}
}

func TestRandomScene_ObjectCountAndDeterminism(t *testing.T) {
	tests := []struct {
		objectCount int
		expected    int
	}{
		{0, DefaultObjectCount + 1},
		{1, 2},
		{8, 9},
	}

	for _, tt := range tests {
		opts := testOptions(9)
		opts.ObjectCount = tt.objectCount
		s := NewRandomScene(opts)
		if s.World.Len() != tt.expected {
			t.Errorf("ObjectCount %d: expected %d objects, got %d", tt.objectCount, tt.expected, s.World.Len())
		}
	}

	// Same seed, same scene
	ray := core.NewRay(core.NewVec3(0, 0.8, 5), core.NewVec3(0, -0.1, -1), 0.5)
	a := NewRandomScene(testOptions(3))
	b := NewRandomScene(testOptions(3))
	recA, hitA := a.World.Trace(ray)
	recB, hitB := b.World.Trace(ray)
	if hitA != hitB || (hitA && (recA.T != recB.T || recA.ObjectIndex != recB.ObjectIndex)) {
		t.Error("Expected identical scenes for identical seeds")
	}
}

func TestRandomScene_TossedSpheresRise(t *testing.T) {
	opts := testOptions(5)
	opts.ObjectCount = 8
	s := NewRandomScene(opts)

	tossed := 0
	for i := 0; i < s.World.Len(); i++ {
		obj, ok := s.World.Object(i).(*geometry.MovingSphere)
		if !ok {
			continue
		}
		tossed++
		if obj.CenterEnd.X() != obj.CenterStart.X() || obj.CenterEnd.Z() != obj.CenterStart.Z() {
			t.Errorf("Expected vertical toss, got %v -> %v", obj.CenterStart, obj.CenterEnd)
		}
		if obj.CenterEnd.Y() <= obj.CenterStart.Y() {
			t.Errorf("Expected sphere above its start when the shutter closes, got %v -> %v", obj.CenterStart, obj.CenterEnd)
		}
	}
	if tossed != 2 {
		t.Errorf("Expected 2 tossed spheres out of 8, got %d", tossed)
	}
}

func TestRandomColor_InUnitRange(t *testing.T) {
	random := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		c := randomColor(random.Float64(), random.Float64(), random.Float64())
		for k := 0; k < 3; k++ {
			if c[k] < 0 || c[k] > 1 {
				t.Fatalf("Expected linear color in [0,1], got %v", c)
			}
		}
	}
}
