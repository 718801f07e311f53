// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/katalvlaran/numerics/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDenseDefaultZero(t *testing.T) {
	for _, tc := range []struct{ rows, cols int }{
		{1, 1},
		{3, 4},
		{6, 6},
	} {
		t.Run(fmt.Sprintf("%dx%d", tc.rows, tc.cols), func(t *testing.T) {
			m := MustDense(t, tc.rows, tc.cols)
			assert.Equal(t, tc.rows, m.Rows())
			assert.Equal(t, tc.cols, m.Cols())
			for i := 0; i < tc.rows; i++ {
				for j := 0; j < tc.cols; j++ {
					assert.Zero(t, MustAt(t, m, i, j))
				}
			}
		})
	}
}

func TestNewDenseInvalidDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 1}, {1, 0}, {-1, 3}} {
		_, err := matrix.NewDense(dims[0], dims[1])
		assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	}
}

// TestDense_AtSetBounds verifies that out-of-range indexers return errors, not panics.
func TestDense_AtSetBounds(t *testing.T) {
	m := MustDense(t, 2, 2)

	_, err := m.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, -1)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(-1, 0, 1), matrix.ErrOutOfRange)
	_, err = m.Row(5)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestDense_NaNPolicy checks the default finite-only policy and its opt-out.
func TestDense_NaNPolicy(t *testing.T) {
	strict := MustDense(t, 1, 1)
	assert.ErrorIs(t, strict.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	assert.ErrorIs(t, strict.Set(0, 0, math.Inf(-1)), matrix.ErrNaNInf)

	loose, err := matrix.NewDense(1, 1, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.NoError(t, loose.Set(0, 0, math.Inf(1)))
	assert.True(t, math.IsInf(MustAt(t, loose, 0, 0), 1))
}

func TestNewDenseFrom(t *testing.T) {
	m := MustFrom(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())
	assert.Equal(t, 6.0, MustAt(t, m, 1, 2))

	_, err := matrix.NewDenseFrom([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, matrix.ErrRagged)
	_, err = matrix.NewDenseFrom(nil)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestDense_CloneIndependent ensures Clone returns an independent deep copy.
func TestDense_CloneIndependent(t *testing.T) {
	m := MustFrom(t, [][]float64{{1, 2}, {3, 4}})
	c := m.Clone()
	require.NoError(t, m.Set(0, 0, 99))

	assert.Equal(t, 1.0, MustAt(t, c, 0, 0))
	assert.Equal(t, [][]float64{{99, 2}, {3, 4}}, m.RawRows())
}

func TestDense_RowOps(t *testing.T) {
	m := MustFrom(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})

	require.NoError(t, m.SwapRows(0, 2))
	assert.Equal(t, [][]float64{{5, 6}, {3, 4}, {1, 2}}, m.RawRows())

	require.NoError(t, m.AddScaledRow(1, 2, -3))
	assert.Equal(t, []float64{0, -2}, m.RawRows()[1])

	s, err := m.RowScales(2)
	require.NoError(t, err)
	assert.Equal(t, []float64{6, 2, 2}, s)
	s, err = m.RowScales(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 0, 1}, s)
	_, err = m.RowScales(3)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)

	p, err := m.ArgMaxAbsInColumn(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, p)

	assert.ErrorIs(t, m.SwapRows(0, 3), matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.AddScaledRow(-1, 0, 1), matrix.ErrOutOfRange)
}

func TestDense_Format(t *testing.T) {
	m := MustFrom(t, [][]float64{{1, -2.5}, {10, 0}})
	assert.Equal(t, "[ 1.00  -2.50]\n[10.00   0.00]", m.Format(2))
	assert.Equal(t, "[1  -2.5]\n[10  0]", m.String())
}
