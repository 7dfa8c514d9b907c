// SPDX-License-Identifier: MIT

package match

import "errors"

var (
	// ErrDegenerateTemplate is returned when the template's reciprocal basis
	// cannot be computed. It wraps cell.ErrDegenerateBasis.
	ErrDegenerateTemplate = errors.New("match: template cell is degenerate")

	// ErrDegenerateObserved is returned when the observed cell's reciprocal
	// basis cannot be computed. It wraps cell.ErrDegenerateBasis.
	ErrDegenerateObserved = errors.New("match: observed cell is degenerate")

	// ErrNoMatch is returned when no candidate triple satisfies all three
	// angle tolerances.
	ErrNoMatch = errors.New("match: no matching cell found")
)
