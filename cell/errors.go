// SPDX-License-Identifier: MIT

package cell

import (
	"errors"
	"fmt"
)

var (
	// ErrDegenerateBasis is returned when a conversion requires inverting a
	// basis with zero (or numerically zero) volume, or when the stored
	// parameters cannot describe any 3D lattice.
	ErrDegenerateBasis = errors.New("cell: degenerate basis")

	// ErrInvalidLength is returned by Validate when an axis length is not a
	// finite positive number.
	ErrInvalidLength = errors.New("cell: axis length must be finite and > 0")

	// ErrInvalidAngle is returned by Validate when an angle is outside the
	// open interval (0, π) or the three angles cannot close a cell.
	ErrInvalidAngle = errors.New("cell: invalid inter-axial angle")

	// ErrNilCell is returned when a method is called on a nil *UnitCell.
	ErrNilCell = errors.New("cell: nil unit cell")
)

// Operation tags for error wrapping.
const (
	opParameters       = "Parameters"
	opCartesian        = "Cartesian"
	opReciprocal       = "Reciprocal"
	opResolution       = "Resolution"
	opReciprocalVector = "ReciprocalVector"
	opVolume           = "Volume"
	opValidate         = "Validate"
	opSetParameters    = "SetParameters"
	opSetCartesian     = "SetCartesian"
	opSetReciprocal    = "SetReciprocal"
	opSetAxis          = "SetCartesianAxis"
)

// cellErrorf wraps err with an operation tag, keeping errors.Is matching.
func cellErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
