// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   - Provide small, deterministic fixtures for the dense kernels.
//   - Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lattice/matrix"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing kernels onto their interface fallback paths.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(tb testing.TB, r, c int) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(tb, err)

	return m
}

// MustFrom builds an r×c *Dense from row-major data or fails the test.
func MustFrom(tb testing.TB, r, c int, data ...float64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDenseFrom(r, c, data)
	require.NoError(tb, err)

	return m
}

// MustAt reads m[i,j] or fails the test.
func MustAt(tb testing.TB, m matrix.Matrix, i, j int) float64 {
	tb.Helper()
	v, err := m.At(i, j)
	require.NoError(tb, err)

	return v
}

// RequireClose asserts that got and want have the same shape and every
// element differs by at most tol.
func RequireClose(tb testing.TB, want, got matrix.Matrix, tol float64) {
	tb.Helper()
	require.Equal(tb, want.Rows(), got.Rows(), "rows")
	require.Equal(tb, want.Cols(), got.Cols(), "cols")
	for i := 0; i < want.Rows(); i++ {
		for j := 0; j < want.Cols(); j++ {
			w, g := MustAt(tb, want, i, j), MustAt(tb, got, i, j)
			require.LessOrEqualf(tb, math.Abs(w-g), tol, "[%d,%d]: want %g, got %g", i, j, w, g)
		}
	}
}

// permuted returns the 3×3 cyclic permutation matrix. Every diagonal entry
// is zero, so elimination without row exchanges fails on it.
func permuted(tb testing.TB) *matrix.Dense {
	tb.Helper()

	return MustFrom(tb, 3, 3,
		0, 1, 0,
		0, 0, 1,
		1, 0, 0,
	)
}

// product returns a·b computed through the Matrix interface.
func product(tb testing.TB, a, b matrix.Matrix) *matrix.Dense {
	tb.Helper()
	require.Equal(tb, a.Cols(), b.Rows(), "inner dimensions")
	out := MustDense(tb, a.Rows(), b.Cols())
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < b.Cols(); j++ {
			sum := 0.0
			for k := 0; k < a.Cols(); k++ {
				sum += MustAt(tb, a, i, k) * MustAt(tb, b, k, j)
			}
			require.NoError(tb, out.Set(i, j, sum))
		}
	}

	return out
}

// identity returns the n×n identity matrix.
func identity(tb testing.TB, n int) *matrix.Dense {
	tb.Helper()
	id := MustDense(tb, n, n)
	for i := 0; i < n; i++ {
		require.NoError(tb, id.Set(i, i, 1))
	}

	return id
}
