// SPDX-License-Identifier: MIT

package cell

import "github.com/katalvlaran/lattice/vec3"

// UnitCell is a lattice basis stored in one of three representations.
// The zero value is the cubic placeholder returned by New.
type UnitCell struct {
	r repr
}

// New returns a cell with a = b = c = 1 and α = β = γ = π/2.
func New() *UnitCell {
	return &UnitCell{r: defaultParameters}
}

// NewFromParameters returns a crystallographic cell. No validation is
// performed.
func NewFromParameters(a, b, c, alpha, beta, gamma float64) *UnitCell {
	return &UnitCell{r: Parameters{A: a, B: b, C: c, Alpha: alpha, Beta: beta, Gamma: gamma}}
}

// NewFromCartesian returns a cell described by its real-space axes.
func NewFromCartesian(a, b, c vec3.Vec) *UnitCell {
	return &UnitCell{r: cartesian{A: a, B: b, C: c}}
}

// NewFromReciprocal returns a cell described by its reciprocal axes.
func NewFromReciprocal(as, bs, cs vec3.Vec) *UnitCell {
	return &UnitCell{r: reciprocal{A: as, B: bs, C: cs}}
}

// Clone returns an independent copy. A nil cell clones to nil.
func (uc *UnitCell) Clone() *UnitCell {
	if uc == nil {
		return nil
	}

	return &UnitCell{r: uc.state()}
}

// Rep reports the representation currently stored.
func (uc *UnitCell) Rep() Representation {
	return uc.state().representation()
}

// state returns the stored description, treating the zero value as the
// default placeholder.
func (uc *UnitCell) state() repr {
	if uc == nil || uc.r == nil {
		return defaultParameters
	}

	return uc.r
}

// SetParameters stores a crystallographic description.
// Returns ErrNilCell on a nil receiver.
func (uc *UnitCell) SetParameters(a, b, c, alpha, beta, gamma float64) error {
	return uc.store(opSetParameters, Parameters{A: a, B: b, C: c, Alpha: alpha, Beta: beta, Gamma: gamma})
}

// SetCartesian stores the real-space axes.
func (uc *UnitCell) SetCartesian(a, b, c vec3.Vec) error {
	return uc.store(opSetCartesian, cartesian{A: a, B: b, C: c})
}

// SetReciprocal stores the reciprocal axes.
func (uc *UnitCell) SetReciprocal(as, bs, cs vec3.Vec) error {
	return uc.store(opSetReciprocal, reciprocal{A: as, B: bs, C: cs})
}

func (uc *UnitCell) store(op string, r repr) error {
	if uc == nil {
		return cellErrorf(op, ErrNilCell)
	}
	uc.r = r

	return nil
}

// SetCartesianA replaces the real-space a axis and keeps b and c.
// If the cell is not Cartesian, b and c are first derived from the stored
// description; when that fails the cell is left unchanged.
func (uc *UnitCell) SetCartesianA(v vec3.Vec) error {
	return uc.setAxis(func(b *Basis) { b.A = v })
}

// SetCartesianB replaces the real-space b axis and keeps a and c.
func (uc *UnitCell) SetCartesianB(v vec3.Vec) error {
	return uc.setAxis(func(b *Basis) { b.B = v })
}

// SetCartesianC replaces the real-space c axis and keeps a and b.
func (uc *UnitCell) SetCartesianC(v vec3.Vec) error {
	return uc.setAxis(func(b *Basis) { b.C = v })
}

func (uc *UnitCell) setAxis(replace func(*Basis)) error {
	if uc == nil {
		return cellErrorf(opSetAxis, ErrNilCell)
	}
	axes, err := uc.Cartesian()
	if err != nil {
		return cellErrorf(opSetAxis, err)
	}
	replace(&axes)
	uc.r = cartesian(axes)

	return nil
}
