package core

import (
	"math"
	"math/rand"
	"testing"
)

func TestJitteredOffsets_OnePerCell(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(42)))
	offsets := JitteredOffsets(16, sampler)

	if len(offsets) != 16 {
		t.Fatalf("Expected 16 offsets, got %d", len(offsets))
	}

	seen := make(map[[2]int]bool)
	for i, o := range offsets {
		if o[0] < 0 || o[0] >= 1 || o[1] < 0 || o[1] >= 1 {
			t.Errorf("Offset %d out of unit square: %v", i, o)
		}
		cell := [2]int{int(o[0] * 4), int(o[1] * 4)}
		expected := [2]int{i % 4, i / 4}
		if cell != expected {
			t.Errorf("Offset %d: expected cell %v, got %v (%v)", i, expected, cell, o)
		}
		seen[cell] = true
	}
	if len(seen) != 16 {
		t.Errorf("Expected 16 distinct cells, got %d", len(seen))
	}
}

// maxSampler always returns the largest float32 below one
type maxSampler struct{}

func (maxSampler) Get1D() float32 { return math.Nextafter32(1, 0) }
func (maxSampler) Get2D() Vec2 { return Vec2{math.Nextafter32(1, 0), math.Nextafter32(1, 0)} }
func (maxSampler) Get3D() Vec3 { return Vec3{math.Nextafter32(1, 0), math.Nextafter32(1, 0), math.Nextafter32(1, 0)} }

func TestJitteredOffsets_LargestDrawStaysInCell(t *testing.T) {
	for _, samples := range []int{4, 9, 16, 64, 225} {
		n := int(math.Sqrt(float64(samples)))
		cell := 1 / float32(n)
		for i, o := range JitteredOffsets(samples, maxSampler{}) {
			k, j := i%n, i/n
			if o[0] >= float32(k+1)*cell || o[0] < float32(k)*cell {
				t.Errorf("samples=%d offset %d: x %v outside cell %d", samples, i, o[0], k)
			}
			if o[1] >= float32(j+1)*cell || o[1] < float32(j)*cell {
				t.Errorf("samples=%d offset %d: y %v outside cell %d", samples, i, o[1], j)
			}
			if o[0] >= 1 || o[1] >= 1 {
				t.Errorf("samples=%d offset %d: expected offsets below 1, got %v", samples, i, o)
			}
		}
	}
}

func TestJitteredOffsets_NonSquareCount(t *testing.T) {
	sampler := NewSeededSampler(7)
	tests := []struct {
		samples  int
		expected int
	}{
		{1, 1},
		{2, 1},
		{10, 9},
		{255, 225},
	}
	for _, tt := range tests {
		if got := len(JitteredOffsets(tt.samples, sampler)); got != tt.expected {
			t.Errorf("JitteredOffsets(%d): expected %d offsets, got %d", tt.samples, tt.expected, got)
		}
	}
}

func TestRandomOffsets(t *testing.T) {
	offsets := RandomOffsets(32, NewSeededSampler(1))
	if len(offsets) != 32 {
		t.Fatalf("Expected 32 offsets, got %d", len(offsets))
	}
	for i, o := range offsets {
		if o[0] < 0 || o[0] >= 1 || o[1] < 0 || o[1] >= 1 {
			t.Errorf("Offset %d out of unit square: %v", i, o)
		}
	}
}

func TestSamplePointInUnitDisk(t *testing.T) {
	sampler := NewSeededSampler(3)
	for i := 0; i < 1000; i++ {
		p := SamplePointInUnitDisk(sampler.Get2D())
		if p.Z() != 0 {
			t.Fatalf("Expected disk point in XY plane, got %v", p)
		}
		if p.Len() > 1+1e-6 {
			t.Fatalf("Expected point inside unit disk, got length %f", p.Len())
		}
	}
}

func TestSamplePointInUnitSphere(t *testing.T) {
	sampler := NewSeededSampler(5)
	for i := 0; i < 1000; i++ {
		p := SamplePointInUnitSphere(sampler.Get3D())
		if p.Len() > 1+1e-5 {
			t.Fatalf("Expected point inside unit sphere, got length %f", p.Len())
		}
	}

	// Radius factor scales a unit direction
	p := SamplePointInUnitSphere(NewVec3(0.25, 0.5, 0.5))
	if math.Abs(float64(p.Len())-0.5) > 1e-5 {
		t.Errorf("Expected length 0.5, got %f", p.Len())
	}
}

func TestSampleOnUnitSphere(t *testing.T) {
	tests := []struct {
		name     string
		sample   Vec2
		expected Vec3
	}{
		{"north pole", Vec2{0, 0}, NewVec3(0, 0, 1)},
		{"equator", Vec2{0.5, 0}, NewVec3(1, 0, 0)},
		{"equator quarter turn", Vec2{0.5, 0.25}, NewVec3(0, 1, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SampleOnUnitSphere(tt.sample)
			if !got.ApproxEqualThreshold(tt.expected, 1e-5) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}
