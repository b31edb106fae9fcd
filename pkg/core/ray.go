package core

// Ray represents a ray with an origin, a direction and the time at which it
// was cast (used for motion blur)
type Ray struct {
	Origin    Vec3
	Direction Vec3
	Time      float32
}

// NewRay creates a new ray
func NewRay(origin, direction Vec3, time float32) Ray {
	return Ray{Origin: origin, Direction: direction, Time: time}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float32) Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}
