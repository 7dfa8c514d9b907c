// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// transpose, matrix-vector product, and inversion and determinant through LU
// factorization with partial pivoting. All functions perform strict
// fail-fast validation and return clear errors on dimension mismatches.
//
// Notes:
//   - Every kernel allocates a fresh result; inputs are never mutated.
//   - All kernels use central validators and wrap sentinels via matrixErrorf.

package matrix

import (
	"errors"
	"fmt"
	"math"
)

// NormZero is the additive identity for norm and accumulation operations.
const NormZero = 0.0

// ZeroSum is the initial sum value for forward/backward substitution and similar.
const ZeroSum = 0.0

// ZeroPivot is the sentinel for detecting an exact zero pivot in LU/Inverse routines.
const ZeroPivot = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opTranspose = "Transpose"
	opMatVec    = "MatVec"
	opInverse   = "Inverse"
	opDet       = "Det"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting across facades.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - Always gate calls with `if err != nil { return nil, matrixErrorf(tag, err) }`.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Fast-path copies *Dense data via flat indexing; fallback uses At.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows, WithNoValidateNaNInf())
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j int
	if dm, ok := m.(*Dense); ok {
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[baseSrc+j]
			}
		}

		return res, nil
	}

	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// MatVec computes y = m × x.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (len(x) != m.Cols()).
//
// Complexity:
//   - Time O(r*c), Space O(r).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	if err := ValidateVecLen(x, cols); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	y := make([]float64, rows)
	var i, j int
	var sum, v float64
	var err error
	if dm, ok := m.(*Dense); ok {
		var base int
		for i = 0; i < rows; i++ {
			sum = ZeroSum
			base = i * cols
			for j = 0; j < cols; j++ {
				sum += dm.data[base+j] * x[j]
			}
			y[i] = sum
		}

		return y, nil
	}

	for i = 0; i < rows; i++ {
		sum = ZeroSum
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			sum += v * x[j]
		}
		y[i] = sum
	}

	return y, nil
}

// luFactor is the packed in-place result of Gaussian elimination with
// partial pivoting: P·A = L·U, with L's unit diagonal implied.
type luFactor struct {
	lu   *Dense // strictly-lower part holds L, upper part (with diagonal) holds U
	perm []int  // perm[i] = original row index now at row i
	sign float64
}

// factorize runs Doolittle elimination with row pivoting on a copy of m.
// Implementation:
//   - Stage 1: copy m into a Dense work buffer; compute scale = max|A|.
//   - Stage 2: for each column k pick the row p ≥ k maximizing |a[p,k]|;
//     reject when |a[p,k]| <= eps*scale (ErrSingular); swap rows k,p.
//   - Stage 3: eliminate below the pivot, storing multipliers in place.
//
// Determinism:
//   - Fixed column order; ties between equal-magnitude pivots keep the
//     topmost row.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func factorize(m Matrix, eps float64) (*luFactor, error) {
	a, err := toDense(m)
	if err != nil {
		return nil, err
	}
	n := a.r
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	threshold := eps * a.maxAbs()
	sign := 1.0

	var i, j, k, p int
	var best, v, pivot, f float64
	for k = 0; k < n; k++ {
		p, best = k, math.Abs(a.data[k*n+k])
		for i = k + 1; i < n; i++ {
			if v = math.Abs(a.data[i*n+k]); v > best {
				p, best = i, v
			}
		}
		if best == ZeroPivot || best <= threshold {
			return nil, ErrSingular
		}
		if p != k {
			for j = 0; j < n; j++ {
				a.data[k*n+j], a.data[p*n+j] = a.data[p*n+j], a.data[k*n+j]
			}
			perm[k], perm[p] = perm[p], perm[k]
			sign = -sign
		}
		pivot = a.data[k*n+k]
		for i = k + 1; i < n; i++ {
			f = a.data[i*n+k] / pivot
			a.data[i*n+k] = f
			if f == 0 {
				continue
			}
			for j = k + 1; j < n; j++ {
				a.data[i*n+j] -= f * a.data[k*n+j]
			}
		}
	}

	return &luFactor{lu: a, perm: perm, sign: sign}, nil
}

// solveUnit solves L·U·x = P·e_col into x, using y as scratch.
func (f *luFactor) solveUnit(col int, y, x []float64) {
	n := f.lu.r
	d := f.lu.data
	var i, k int
	var sum float64
	// Forward substitution: L*y = P*e_col
	for i = 0; i < n; i++ {
		sum = ZeroSum
		for k = 0; k < i; k++ {
			sum += d[i*n+k] * y[k]
		}
		if f.perm[i] == col {
			y[i] = 1.0 - sum
		} else {
			y[i] = ZeroSum - sum // keeps +0 for zero entries
		}
	}
	// Backward substitution: U*x = y
	for i = n - 1; i >= 0; i-- {
		sum = ZeroSum
		for k = i + 1; k < n; k++ {
			sum += d[i*n+k] * x[k]
		}
		x[i] = (y[i] - sum) / d[i*n+i]
	}
}

// Inverse computes A^{-1} via LU factorization with partial pivoting.
// The input must be non-nil and square. Returns ErrSingular if no usable
// pivot exists for some column. Produces a new Dense; does not mutate the input.
//
// Implementation:
//   - Stage 1: ValidateSquareNonNil(m). Factorize P·A = L·U.
//   - Stage 2: For each canonical basis column e_col solve L·U·x = P·e_col
//     and write x into column col of the result.
//
// Errors:
//   - ErrNilMatrix         (ValidateNotNil).
//   - ErrDimensionMismatch (ValidateSquare).
//   - ErrSingular          (no usable pivot).
//
// Determinism:
//   - Fixed traversal (col↑, forward i↑, backward i↓) and pivot tie-breaking.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
//
// Notes:
//   - Pivoting is required for lattice bases: a permuted basis such as
//     (b*, c*, a*) of an orthogonal cell has exact zeros on the diagonal.
//
// AI-Hints:
//   - If you only need A^{-1}*b, solve once instead of forming A^{-1}.
func Inverse(m Matrix, opts ...Option) (Matrix, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	o := gatherOptions(opts...)

	f, err := factorize(m, o.eps)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	n := f.lu.r
	inv, err := NewDense(n, n, WithNoValidateNaNInf())
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	y := make([]float64, n)
	x := make([]float64, n)
	var col, i int
	for col = 0; col < n; col++ {
		f.solveUnit(col, y, x)
		for i = 0; i < n; i++ {
			inv.data[i*n+col] = x[i]
		}
	}

	return inv, nil
}

// Det returns the determinant of a square matrix.
// A matrix rejected as singular under the configured epsilon reports 0.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func Det(m Matrix, opts ...Option) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opDet, err)
	}
	o := gatherOptions(opts...)

	f, err := factorize(m, o.eps)
	if err != nil {
		if errors.Is(err, ErrSingular) {
			return 0, nil
		}

		return 0, matrixErrorf(opDet, err)
	}
	n := f.lu.r
	det := f.sign
	for i := 0; i < n; i++ {
		det *= f.lu.data[i*n+i]
	}

	return det, nil
}
