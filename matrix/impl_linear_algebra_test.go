// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the linear algebra kernels.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/numerics/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMul(t *testing.T) {
	a := MustFrom(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	b := MustFrom(t, [][]float64{{7, 8}, {9, 10}, {11, 12}})

	c, err := matrix.Mul(a, b)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{58, 64}, {139, 154}}, c.RawRows())

	// Fallback path through a hidden concrete type must agree bit for bit.
	c2, err := matrix.Mul(hide{a}, b)
	require.NoError(t, err)
	assert.Equal(t, c.RawRows(), c2.RawRows())

	_, err = matrix.Mul(a, a)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Mul(nil, a)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestTranspose(t *testing.T) {
	a := MustFrom(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	at, err := matrix.Transpose(a)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, at.RawRows())

	at2, err := matrix.Transpose(hide{a})
	require.NoError(t, err)
	assert.Equal(t, at.RawRows(), at2.RawRows())
}

func TestMatVec(t *testing.T) {
	a := MustFrom(t, [][]float64{{2, 1}, {1, 3}})

	y, err := matrix.MatVec(a, []float64{0.8, 1.4})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{3, 5}, y, 1e-12)

	y2, err := matrix.MatVec(hide{a}, []float64{0.8, 1.4})
	require.NoError(t, err)
	assert.Equal(t, y, y2)

	_, err = matrix.MatVec(a, []float64{1})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.MatVec(a, nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}
