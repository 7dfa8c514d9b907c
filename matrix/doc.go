// Package matrix offers a small dense linear-algebra toolkit.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with safe accessors (At/Set return
//     errors instead of panicking) and an optional finite-value policy.
//   - Kernels: Transpose, MatVec, Inverse and Det (LU with partial pivoting).
//   - Sentinel errors (ErrSingular, ErrDimensionMismatch, ...) wrapped with
//     an operation tag and matched via errors.Is.
//
// The lattice packages use it on 3×3 bases whose columns are the cell axes:
// the reciprocal axes are the rows of the inverse, the volume is |det|, and a
// reflection's scattering vector is the reciprocal basis applied to (h, k, l).
// A degenerate (flat) basis surfaces as ErrSingular.
//
// See example_test.go for usage patterns.
package matrix
