// Package cell represents crystallographic unit cells.
//
// A UnitCell holds exactly one of three equivalent descriptions of a 3D
// lattice basis:
//
//   - Crystallographic: lengths a, b, c (meters) and angles α, β, γ (radians),
//     with α between b and c, β between a and c, γ between a and b.
//   - Cartesian: the real-space axes a, b, c as vectors (meters).
//   - Reciprocal: the reciprocal axes a*, b*, c* as vectors (inverse meters),
//     dual to the real-space axes without the 2π factor (a·a* = 1, a·b* = 0).
//
// The stored description is authoritative. Accessors convert on demand and
// never modify the cell; setters replace the stored description and move the
// cell into the matching Representation.
//
//	c := cell.NewFromParameters(100e-10, 100e-10, 100e-10,
//		cell.Deg2Rad(90), cell.Deg2Rad(90), cell.Deg2Rad(90))
//	rs, err := c.Reciprocal() // rs.A = (1e8, 0, 0) m⁻¹
//
// Conversions that need a matrix inversion fail with ErrDegenerateBasis when
// the basis is flat. Constructors never validate; call Validate before
// trusting geometric results on user-supplied parameters.
//
// Cells are not safe for concurrent mutation. Each goroutine should own its
// cell; use Clone to hand a copy to another one.
package cell
