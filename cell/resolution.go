// SPDX-License-Identifier: MIT

package cell

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lattice/matrix"
	"github.com/katalvlaran/lattice/vec3"
)

// Resolution returns sin θ/λ = 1/(2d) for the reflection (h, k, l), using the
// general triclinic metric. Multiply by two for 1/d.
//
// Fails if the parameters cannot be obtained, or with ErrDegenerateBasis if
// the squared cell volume is not positive.
func (uc *UnitCell) Resolution(h, k, l int) (float64, error) {
	p, err := uc.Parameters()
	if err != nil {
		return 0, cellErrorf(opResolution, err)
	}

	a, b, c := p.A, p.B, p.C
	cosA, cosB, cosG := math.Cos(p.Alpha), math.Cos(p.Beta), math.Cos(p.Gamma)
	sinA, sinB, sinG := math.Sin(p.Alpha), math.Sin(p.Beta), math.Sin(p.Gamma)

	Vsq := a * a * b * b * c * c * (1 - cosA*cosA - cosB*cosB - cosG*cosG + 2*cosA*cosB*cosG)
	if !(Vsq > 0) {
		return 0, cellErrorf(opResolution, fmt.Errorf("%w: V² = %g", ErrDegenerateBasis, Vsq))
	}

	S11 := b * b * c * c * sinA * sinA
	S22 := a * a * c * c * sinB * sinB
	S33 := a * a * b * b * sinG * sinG
	S12 := a * b * c * c * (cosA*cosB - cosG)
	S23 := a * a * b * c * (cosB*cosG - cosA)
	S13 := a * b * b * c * (cosG*cosA - cosB)

	fh, fk, fl := float64(h), float64(k), float64(l)
	brackets := S11*fh*fh + S22*fk*fk + S33*fl*fl +
		2*S12*fh*fk + 2*S23*fk*fl + 2*S13*fh*fl

	return math.Sqrt(brackets/Vsq) / 2, nil
}

// ReciprocalVector returns the scattering vector h·a* + k·b* + l·c* of the
// reflection (h, k, l), in inverse meters. Its modulus is 1/d.
func (uc *UnitCell) ReciprocalVector(h, k, l int) (vec3.Vec, error) {
	rs, err := uc.Reciprocal()
	if err != nil {
		return vec3.Vec{}, cellErrorf(opReciprocalVector, err)
	}
	m, err := columns(rs)
	if err != nil {
		return vec3.Vec{}, cellErrorf(opReciprocalVector, err)
	}
	g, err := matrix.MatVec(m, []float64{float64(h), float64(k), float64(l)})
	if err != nil {
		return vec3.Vec{}, cellErrorf(opReciprocalVector, err)
	}

	return vec3.New(g[0], g[1], g[2]), nil
}

// Volume returns the real-space cell volume |det[a|b|c]| in m³.
// A basis that is singular under the default pivot threshold reports 0.
func (uc *UnitCell) Volume() (float64, error) {
	axes, err := uc.Cartesian()
	if err != nil {
		return 0, cellErrorf(opVolume, err)
	}
	m, err := columns(axes)
	if err != nil {
		return 0, cellErrorf(opVolume, err)
	}
	det, err := matrix.Det(m)
	if err != nil {
		return 0, cellErrorf(opVolume, err)
	}

	return math.Abs(det), nil
}

// Validate is the geometric sanity predicate: all lengths finite and
// positive, all angles strictly inside (0, π), and the angle triple able to
// close a cell. Constructors never call it.
func (uc *UnitCell) Validate() error {
	p, err := uc.Parameters()
	if err != nil {
		return cellErrorf(opValidate, err)
	}

	for _, l := range [3]float64{p.A, p.B, p.C} {
		if !(l > 0) || math.IsInf(l, 0) {
			return cellErrorf(opValidate, fmt.Errorf("%w: %g", ErrInvalidLength, l))
		}
	}
	for _, ang := range [3]float64{p.Alpha, p.Beta, p.Gamma} {
		if !(ang > 0 && ang < math.Pi) {
			return cellErrorf(opValidate, fmt.Errorf("%w: %g rad", ErrInvalidAngle, ang))
		}
	}

	cosA, cosB, cosG := math.Cos(p.Alpha), math.Cos(p.Beta), math.Cos(p.Gamma)
	if !(1-cosA*cosA-cosB*cosB-cosG*cosG+2*cosA*cosB*cosG > 0) {
		return cellErrorf(opValidate, fmt.Errorf("%w: angles do not close a cell", ErrInvalidAngle))
	}

	return nil
}
