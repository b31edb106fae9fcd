package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Vec3 is a 3D vector used for points, directions and linear RGB colors
type Vec3 = mgl32.Vec3

// NewVec3 creates a new Vec3
func NewVec3(x, y, z float32) Vec3 {
	return Vec3{x, y, z}
}

// Splat returns a vector with all three components set to s
func Splat(s float32) Vec3 {
	return Vec3{s, s, s}
}

// MulVec returns the component-wise product of two vectors
func MulVec(a, b Vec3) Vec3 {
	return Vec3{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}

// Normalize returns a unit vector in the same direction, or the zero vector
// when v has no length
func Normalize(v Vec3) Vec3 {
	length := v.Len()
	if length == 0 {
		return Vec3{}
	}
	return v.Mul(1 / length)
}

// Lerp blends linearly from a (t=0) to b (t=1)
func Lerp(a, b Vec3, t float32) Vec3 {
	return a.Mul(1 - t).Add(b.Mul(t))
}

// Clamp returns a vector with components clamped to [lo, hi]
func Clamp(v Vec3, lo, hi float32) Vec3 {
	return Vec3{
		mgl32.Clamp(v[0], lo, hi),
		mgl32.Clamp(v[1], lo, hi),
		mgl32.Clamp(v[2], lo, hi),
	}
}

// GammaCorrect raises each component to 1/gamma
func GammaCorrect(v Vec3, gamma float32) Vec3 {
	if gamma == 2 {
		return Vec3{sqrt32(v[0]), sqrt32(v[1]), sqrt32(v[2])}
	}
	inv := float64(1 / gamma)
	return Vec3{
		float32(math.Pow(float64(v[0]), inv)),
		float32(math.Pow(float64(v[1]), inv)),
		float32(math.Pow(float64(v[2]), inv)),
	}
}

// Reflect mirrors v about the plane with normal n: v - 2(v·n)n
func Reflect(v, n Vec3) Vec3 {
	return v.Sub(n.Mul(2 * v.Dot(n)))
}

// IsFinite reports whether f is neither NaN nor infinite
func IsFinite(f float32) bool {
	return !math.IsNaN(float64(f)) && !math.IsInf(float64(f), 0)
}

// VecIsFinite reports whether every component of v is finite
func VecIsFinite(v Vec3) bool {
	return IsFinite(v[0]) && IsFinite(v[1]) && IsFinite(v[2])
}

func sqrt32(f float32) float32 {
	return float32(math.Sqrt(float64(f)))
}
