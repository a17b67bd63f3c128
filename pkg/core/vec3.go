package core

import "math"

// Vec3 represents a 3D vector. Vec3 is an immutable value type: every
// operation returns a new vector and never modifies its receiver.
type Vec3 struct {
	X, Y, Z float64
}

// Package-level basis vectors and the origin.
var (
	Zero  = Vec3{0, 0, 0}
	UnitX = Vec3{1, 0, 0}
	UnitY = Vec3{0, 1, 0}
	UnitZ = Vec3{0, 0, 1}
)

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

// Scale returns the vector scaled by a scalar
func (v Vec3) Scale(factor float64) Vec3 {
	return Vec3{v.X * factor, v.Y * factor, v.Z * factor}
}

// Negate returns the negative of the vector
func (v Vec3) Negate() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// Divide returns the vector divided by a scalar. Dividing by zero yields
// the zero vector rather than failing.
func (v Vec3) Divide(divisor float64) Vec3 {
	if divisor == 0 {
		return Zero
	}
	return Vec3{v.X / divisor, v.Y / divisor, v.Z / divisor}
}

// Dot returns the dot product of two vectors
func (v Vec3) Dot(other Vec3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of two vectors (right-hand rule)
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Length returns the magnitude of the vector
func (v Vec3) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

// LengthSquared returns the squared magnitude of the vector, avoiding the
// square root where only relative comparisons are needed
func (v Vec3) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Unit returns a unit vector in the same direction. The zero vector
// normalizes to itself; callers must not rely on that degenerate result
// for directionality.
func (v Vec3) Unit() Vec3 {
	return v.Divide(v.Length())
}

// To returns the displacement vector pointing from v to dest
func (v Vec3) To(dest Vec3) Vec3 {
	return dest.Subtract(v)
}
