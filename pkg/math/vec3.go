// Package math provides float32 vector and matrix types for mesh generation.
package math

import (
	"errors"
	gomath "math"

	"github.com/chewxy/math32"
)

// ErrZeroLength is returned when a zero vector is normalized.
var ErrZeroLength = errors.New("cannot normalize zero-length vector")

// Vec3 is a 3D vector. It doubles as an RGB triple for face colors.
//
// Vec3 is a plain value: assignment copies it. Methods with a value
// receiver never modify v. The pointer-receiver methods (AddAssign,
// NormalizeInPlace, NormalizeTo) mutate v, so take a copy first when the
// original is still needed.
type Vec3 struct {
	X, Y, Z float32
}

// Add returns v + other.
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns v - other.
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Scale returns v * scalar.
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Dot returns the dot product.
func (v Vec3) Dot(other Vec3) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product.
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X,
	}
}

// LengthSquared returns the squared magnitude.
func (v Vec3) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Length returns the magnitude. It is accumulated in float64, so
// components near the float32 range limits neither overflow nor flush
// to zero.
func (v Vec3) Length() float32 {
	return float32(v.length64())
}

func (v Vec3) length64() float64 {
	x, y, z := float64(v.X), float64(v.Y), float64(v.Z)
	return gomath.Sqrt(x*x + y*y + z*z)
}

// scale64 returns v with every component multiplied by s in float64.
func (v Vec3) scale64(s float64) Vec3 {
	return Vec3{
		float32(float64(v.X) * s),
		float32(float64(v.Y) * s),
		float32(float64(v.Z) * s),
	}
}

// Normalize returns a unit vector, or the zero vector if v has no length.
func (v Vec3) Normalize() Vec3 {
	l := v.length64()
	if l == 0 {
		return Vec3{}
	}
	return v.scale64(1 / l)
}

// Midpoint returns the point halfway between v and other. Both are halved
// before the sum so the result stays finite for any finite inputs.
func (v Vec3) Midpoint(other Vec3) Vec3 {
	return v.Scale(0.5).Add(other.Scale(0.5))
}

// Distance returns the distance to another point.
func (v Vec3) Distance(other Vec3) float32 {
	return v.Sub(other).Length()
}

// ApproxEqual reports whether every component of v is within eps of other.
func (v Vec3) ApproxEqual(other Vec3, eps float32) bool {
	return math32.Abs(v.X-other.X) <= eps &&
		math32.Abs(v.Y-other.Y) <= eps &&
		math32.Abs(v.Z-other.Z) <= eps
}

// AddAssign adds other to v in place and returns v for chaining.
func (v *Vec3) AddAssign(other Vec3) *Vec3 {
	v.X += other.X
	v.Y += other.Y
	v.Z += other.Z
	return v
}

// NormalizeInPlace rescales v to unit length.
func (v *Vec3) NormalizeInPlace() error {
	return v.NormalizeTo(1)
}

// NormalizeTo rescales v in place so that its length becomes length.
// A zero vector is left untouched and ErrZeroLength is returned.
func (v *Vec3) NormalizeTo(length float32) error {
	l := v.length64()
	if l == 0 {
		return ErrZeroLength
	}
	*v = v.scale64(float64(length) / l)
	return nil
}
