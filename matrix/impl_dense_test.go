// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lattice/matrix"
)

func TestNewDenseDefaultZero(t *testing.T) {
	for _, tc := range []struct{ rows, cols int }{
		{1, 1},
		{3, 3},
		{2, 5},
	} {
		t.Run(fmt.Sprintf("%dx%d", tc.rows, tc.cols), func(t *testing.T) {
			m := MustDense(t, tc.rows, tc.cols)
			require.Equal(t, tc.rows, m.Rows())
			require.Equal(t, tc.cols, m.Cols())
			for i := 0; i < tc.rows; i++ {
				for j := 0; j < tc.cols; j++ {
					require.Zero(t, MustAt(t, m, i, j))
				}
			}
		})
	}
}

func TestNewDense_InvalidDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 3}, {3, 0}, {-1, 2}} {
		_, err := matrix.NewDense(dims[0], dims[1])
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	}
}

func TestNewDenseFrom(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5, 6}
	m := MustFrom(t, 2, 3, data...)
	require.Equal(t, 6.0, MustAt(t, m, 1, 2))

	// The caller keeps ownership of the input slice.
	data[0] = 42
	require.Equal(t, 1.0, MustAt(t, m, 0, 0))

	_, err := matrix.NewDenseFrom(2, 3, data[:5])
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.NewDenseFrom(1, 2, []float64{1, math.NaN()})
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	m, err = matrix.NewDenseFrom(1, 2, []float64{1, math.Inf(1)}, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.True(t, math.IsInf(MustAt(t, m, 0, 1), 1))
}

func TestDense_AtSetBounds(t *testing.T) {
	m := MustDense(t, 2, 2)
	for _, ij := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		_, err := m.At(ij[0], ij[1])
		require.ErrorIs(t, err, matrix.ErrOutOfRange)
		require.ErrorIs(t, m.Set(ij[0], ij[1], 1), matrix.ErrOutOfRange)
	}

	require.NoError(t, m.Set(1, 0, 3.5))
	require.Equal(t, 3.5, MustAt(t, m, 1, 0))
}

func TestDense_SetNumericPolicy(t *testing.T) {
	strict := MustDense(t, 1, 1)
	require.ErrorIs(t, strict.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, strict.Set(0, 0, math.Inf(-1)), matrix.ErrNaNInf)

	loose, err := matrix.NewDense(1, 1, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.NoError(t, loose.Set(0, 0, math.NaN()))

	// Clone preserves the policy.
	cp := strict.Clone()
	require.ErrorIs(t, cp.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
}

func TestDense_CloneIndependent(t *testing.T) {
	m := MustFrom(t, 2, 2, 1, 2, 3, 4)
	cp := m.Clone()
	require.NoError(t, cp.Set(0, 0, 9))
	require.Equal(t, 1.0, MustAt(t, m, 0, 0))
	require.Equal(t, 9.0, MustAt(t, cp, 0, 0))
}

func TestDense_String(t *testing.T) {
	m := MustFrom(t, 2, 2, 1, 2, 3, 4.5)
	require.Equal(t, "[1, 2]\n[3, 4.5]\n", m.String())
}
