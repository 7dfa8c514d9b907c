// SPDX-License-Identifier: MIT

package cell

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lattice/matrix"
	"github.com/katalvlaran/lattice/vec3"
)

// Parameters returns (a, b, c, α, β, γ).
//
// Crystallographic cells answer directly. Cartesian cells are converted via
// axis moduli and inter-axis angles; reciprocal cells are first inverted to
// real space. Fails with ErrDegenerateBasis if that inversion is singular.
func (uc *UnitCell) Parameters() (Parameters, error) {
	if uc == nil {
		return Parameters{}, cellErrorf(opParameters, ErrNilCell)
	}

	switch s := uc.state().(type) {
	case Parameters:
		return s, nil
	case cartesian:
		return basisToParameters(Basis(s)), nil
	case reciprocal:
		axes, err := invert(Basis(s))
		if err != nil {
			return Parameters{}, cellErrorf(opParameters, err)
		}

		return basisToParameters(axes), nil
	}

	return Parameters{}, cellErrorf(opParameters, ErrDegenerateBasis)
}

// Cartesian returns the real-space axes.
//
// From parameters, a lies along +x and b in the xy-plane. Fails with
// ErrDegenerateBasis when the parameters describe no 3D cell (non-positive
// volume term) or when a reciprocal basis cannot be inverted.
func (uc *UnitCell) Cartesian() (Basis, error) {
	if uc == nil {
		return Basis{}, cellErrorf(opCartesian, ErrNilCell)
	}

	switch s := uc.state().(type) {
	case Parameters:
		axes, err := parametersToBasis(s)
		if err != nil {
			return Basis{}, cellErrorf(opCartesian, err)
		}

		return axes, nil
	case cartesian:
		return Basis(s), nil
	case reciprocal:
		axes, err := invert(Basis(s))
		if err != nil {
			return Basis{}, cellErrorf(opCartesian, err)
		}

		return axes, nil
	}

	return Basis{}, cellErrorf(opCartesian, ErrDegenerateBasis)
}

// Reciprocal returns the reciprocal axes a*, b*, c*, satisfying
// a·a* = 1 and a·b* = 0 (no 2π factor).
// Fails with ErrDegenerateBasis when the real-space basis has zero volume.
func (uc *UnitCell) Reciprocal() (Basis, error) {
	if uc == nil {
		return Basis{}, cellErrorf(opReciprocal, ErrNilCell)
	}

	switch s := uc.state().(type) {
	case Parameters:
		axes, err := parametersToBasis(s)
		if err != nil {
			return Basis{}, cellErrorf(opReciprocal, err)
		}
		rs, err := invert(axes)
		if err != nil {
			return Basis{}, cellErrorf(opReciprocal, err)
		}

		return rs, nil
	case cartesian:
		rs, err := invert(Basis(s))
		if err != nil {
			return Basis{}, cellErrorf(opReciprocal, err)
		}

		return rs, nil
	case reciprocal:
		return Basis(s), nil
	}

	return Basis{}, cellErrorf(opReciprocal, ErrDegenerateBasis)
}

// parametersToBasis places a along +x, b in the xy-plane and derives c from
// β, the cell volume and cos α*.
func parametersToBasis(p Parameters) (Basis, error) {
	cosA, cosB, cosG := math.Cos(p.Alpha), math.Cos(p.Beta), math.Cos(p.Gamma)
	sinB, sinG := math.Sin(p.Beta), math.Sin(p.Gamma)

	radicand := 1.0 - cosA*cosA - cosB*cosB - cosG*cosG + 2.0*cosA*cosB*cosG
	if !(radicand > 0) {
		return Basis{}, fmt.Errorf("%w: volume term %g", ErrDegenerateBasis, radicand)
	}
	V := p.A * p.B * p.C * math.Sqrt(radicand)
	if V == 0 || math.IsNaN(V) || math.IsInf(V, 0) {
		return Basis{}, fmt.Errorf("%w: volume %g", ErrDegenerateBasis, V)
	}

	cosAlphaStar := (cosB*cosG - cosA) / (sinB * sinG)
	cStar := (p.A * p.B * sinG) / V

	return Basis{
		A: vec3.New(p.A, 0, 0),
		B: vec3.New(p.B*cosG, p.B*sinG, 0),
		C: vec3.New(p.C*cosB, -p.C*sinB*cosAlphaStar, 1.0/cStar),
	}, nil
}

// basisToParameters measures moduli and inter-axis angles.
func basisToParameters(b Basis) Parameters {
	l := b.Lengths()
	ang := b.Angles()

	return Parameters{
		A: l[0], B: l[1], C: l[2],
		Alpha: ang[0], Beta: ang[1], Gamma: ang[2],
	}
}

// invert returns the dual basis. With M = [a|b|c] (axes as columns), the dual
// vectors are the columns of (M⁻¹)ᵀ. The relation is symmetric, so the same
// routine maps real to reciprocal space and back.
func invert(b Basis) (Basis, error) {
	m, err := columns(b)
	if err != nil {
		return Basis{}, err
	}
	inv, err := matrix.Inverse(m)
	if err != nil {
		return Basis{}, fmt.Errorf("%w: %w", ErrDegenerateBasis, err)
	}
	t, err := matrix.Transpose(inv)
	if err != nil {
		return Basis{}, err
	}

	var out [3]vec3.Vec
	var v [3]float64
	for j := 0; j < 3; j++ {
		for i := 0; i < 3; i++ {
			if v[i], err = t.At(i, j); err != nil {
				return Basis{}, err
			}
		}
		out[j] = vec3.New(v[0], v[1], v[2])
	}

	return Basis{A: out[0], B: out[1], C: out[2]}, nil
}

// columns returns the 3×3 matrix [A|B|C] with the axes as columns.
// Non-finite components fail with ErrDegenerateBasis.
func columns(b Basis) (*matrix.Dense, error) {
	m, err := matrix.NewDenseFrom(3, 3, []float64{
		b.A.X, b.B.X, b.C.X,
		b.A.Y, b.B.Y, b.C.Y,
		b.A.Z, b.B.Z, b.C.Z,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDegenerateBasis, err)
	}

	return m, nil
}
