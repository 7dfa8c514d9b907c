// SPDX-License-Identifier: MIT

package cell

import (
	"math"

	"github.com/katalvlaran/lattice/vec3"
)

// Representation names the description a UnitCell currently stores.
type Representation int

const (
	// Crystallographic stores lengths and angles.
	Crystallographic Representation = iota

	// Cartesian stores the real-space axis vectors.
	Cartesian

	// Reciprocal stores the reciprocal-space axis vectors.
	Reciprocal
)

// String returns the lower-case name of the representation.
func (r Representation) String() string {
	switch r {
	case Crystallographic:
		return "crystallographic"
	case Cartesian:
		return "cartesian"
	case Reciprocal:
		return "reciprocal"
	default:
		return "unknown"
	}
}

// Parameters is the crystallographic description of a cell.
// Lengths are in meters, angles in radians.
type Parameters struct {
	A, B, C            float64
	Alpha, Beta, Gamma float64
}

// Basis holds three axis vectors. Depending on context they are the
// real-space axes (meters) or the reciprocal axes (inverse meters).
type Basis struct {
	A, B, C vec3.Vec
}

// Lengths returns |A|, |B|, |C|.
func (b Basis) Lengths() [3]float64 {
	return [3]float64{b.A.Len(), b.B.Len(), b.C.Len()}
}

// Angles returns the inter-axial angles in the crystallographic order
// [∠(B,C), ∠(A,C), ∠(A,B)].
func (b Basis) Angles() [3]float64 {
	return [3]float64{
		vec3.Angle(b.B, b.C),
		vec3.Angle(b.A, b.C),
		vec3.Angle(b.A, b.B),
	}
}

// repr is the stored description of a cell. Exactly one variant is active.
type repr interface {
	representation() Representation
}

func (Parameters) representation() Representation { return Crystallographic }

// cartesian and reciprocal are distinct types over Basis so the active
// variant alone tells which space the vectors live in.
type cartesian Basis

type reciprocal Basis

func (cartesian) representation() Representation { return Cartesian }

func (reciprocal) representation() Representation { return Reciprocal }

// defaultParameters is the cubic placeholder returned by New and used by the
// zero UnitCell.
var defaultParameters = Parameters{
	A: 1.0, B: 1.0, C: 1.0,
	Alpha: math.Pi / 2, Beta: math.Pi / 2, Gamma: math.Pi / 2,
}
