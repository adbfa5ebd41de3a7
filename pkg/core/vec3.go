package core

import "math"

// Vec3 represents a 3D vector. It doubles as an RGB color whose channels
// are unclamped floats on the 0-255 scale.
type Vec3 struct {
	X, Y, Z float64
}

// NewVec3 creates a new Vec3
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns the sum of two vectors
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Subtract returns the difference of two vectors
func (v Vec3) Subtract(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Multiply returns the vector scaled by a scalar
func (v Vec3) Multiply(scalar float64) Vec3 {
	return Vec3{v.X * scalar, v.Y * scalar, v.Z * scalar}
}

// MultiplyVec returns component-wise multiplication of two vectors
func (v Vec3) MultiplyVec(other Vec3) Vec3 {
	return Vec3{
		X: v.X * other.X,
		Y: v.Y * other.Y,
		Z: v.Z * other.Z,
	}
}

// Length returns the magnitude of the vector
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// LengthSquared returns the squared magnitude of the vector
func (v Vec3) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Dot returns the dot product of two vectors
func (v Vec3) Dot(other Vec3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Negate returns the negative of the vector
func (v Vec3) Negate() Vec3 {
	return Vec3{
		X: -v.X,
		Y: -v.Y,
		Z: -v.Z,
	}
}

// IsZero reports whether every component is exactly zero
func (v Vec3) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// IsFinite reports whether no component is NaN or infinite
func (v Vec3) IsFinite() bool {
	return isFinite(v.X) && isFinite(v.Y) && isFinite(v.Z)
}

// Normalize returns a unit vector in the same direction.
// A zero (or non-finite length) vector normalizes to the zero vector.
func (v Vec3) Normalize() Vec3 {
	n, ok := v.TryNormalize()
	if !ok {
		return Vec3{0, 0, 0}
	}
	return n
}

// TryNormalize returns the unit vector and true, or the zero vector and
// false when v has no usable direction.
func (v Vec3) TryNormalize() (Vec3, bool) {
	length := v.Length()
	if length == 0 || !isFinite(length) {
		return Vec3{}, false
	}
	return Vec3{v.X / length, v.Y / length, v.Z / length}, true
}

// Reflect mirrors v about normal: 2*N*(N.v) - v.
// The result points away from the surface when v does.
func (v Vec3) Reflect(normal Vec3) Vec3 {
	return normal.Multiply(2 * normal.Dot(v)).Subtract(v)
}

// Clamp returns a vector with components clamped to [min, max].
// NaN components clamp to min.
func (v Vec3) Clamp(minVal, maxVal float64) Vec3 {
	return Vec3{
		X: clampValue(v.X, minVal, maxVal),
		Y: clampValue(v.Y, minVal, maxVal),
		Z: clampValue(v.Z, minVal, maxVal),
	}
}

func clampValue(val, minVal, maxVal float64) float64 {
	if math.IsNaN(val) || val < minVal {
		return minVal
	}
	if val > maxVal {
		return maxVal
	}
	return val
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Ray represents a ray with an origin and direction
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// NewRay creates a new ray
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}
