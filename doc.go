// Package lattice is a small toolkit for crystal unit cells: describing a
// lattice three interchangeable ways and reconciling an indexing solution
// with a known reference cell.
//
// 🚀 What is lattice?
//
//	A pure-Go library that brings together:
//		• vec3   – 3D vector values for lattice axes
//		• matrix – dense 3×3 linear algebra (pivoted LU, inverse, determinant)
//		• cell   – UnitCell: crystallographic, Cartesian and reciprocal views
//		           with lazy conversion, resolution and volume
//		• match  – fit an observed cell onto a template via small rational
//		           combinations of its reciprocal axes
//
// ✨ Why lattice?
//
//   - Explicit errors – degenerate bases surface as sentinels, never NaN
//   - Deterministic – fixed enumeration order, first-best tie breaking
//   - Structured logs – log/slog with cells rendered as groups
//   - Concurrent batches – MatchAll runs patterns on a bounded worker pool
//
// Units: lengths in meters, reciprocal lengths in inverse meters (no 2π),
// angles in radians.
//
// Quick example:
//
//	observed := cell.NewFromParameters(50e-10, 70e-10, 90e-10, π/2, π/2, π/2)
//	res, err := match.Match(observed, template)
//	if errors.Is(err, match.ErrNoMatch) {
//		// try the next indexing solution
//	}
//
//	go get github.com/katalvlaran/lattice
package lattice
