// SPDX-License-Identifier: MIT

// Package vec3 provides a 3D vector value type for lattice axes and
// reciprocal-space trial vectors.
//
// Vectors are plain values: every operation returns a new Vec and nothing is
// shared, so they can be passed freely between goroutines.
package vec3

import (
	"fmt"
	"math"
)

// Vec is a 3D vector. Units are the caller's (meters for real-space axes,
// inverse meters for reciprocal axes).
type Vec struct {
	X, Y, Z float64
}

// New creates a vector from its components.
func New(x, y, z float64) Vec {
	return Vec{X: x, Y: y, Z: z}
}

// Scale returns s·v.
func (v Vec) Scale(s float64) Vec {
	return Vec{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Dot returns the scalar product v·w.
func (v Vec) Dot(w Vec) float64 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Len returns the modulus |v|.
func (v Vec) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// String formats the vector in engineering notation.
func (v Vec) String() string {
	return fmt.Sprintf("(%10.3e %10.3e %10.3e)", v.X, v.Y, v.Z)
}

// Angle returns the angle between v and w in radians, in [0, π].
// The cosine is clamped to [-1, 1] so rounding on (anti)parallel vectors
// never produces NaN. A zero-length argument yields NaN.
func Angle(v, w Vec) float64 {
	cosine := v.Dot(w) / (v.Len() * w.Len())
	if cosine > 1.0 {
		cosine = 1.0
	}
	if cosine < -1.0 {
		cosine = -1.0
	}

	return math.Acos(cosine)
}

// Combine returns n1·a + n2·b + n3·c.
func Combine(n1 float64, a Vec, n2 float64, b Vec, n3 float64, c Vec) Vec {
	return Vec{
		X: n1*a.X + n2*b.X + n3*c.X,
		Y: n1*a.Y + n2*b.Y + n3*c.Y,
		Z: n1*a.Z + n2*b.Z + n3*c.Z,
	}
}
