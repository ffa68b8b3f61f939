// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/q4/matrix"
)

// --- ewBroadcastSubCols -------------------------------------------------------

func TestEwBroadcastSubCols_DenseAndWrapped_Match(t *testing.T) {
	t.Parallel()

	X := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 10, 20, 30})
	means := []float64{4, 5, 6}

	gotDense, err := matrix.EwBroadcastSubCols(X, means)
	require.NoError(t, err)
	gotWrapped, err := matrix.EwBroadcastSubCols(hide{X}, means)
	require.NoError(t, err)

	want := NewFilledDense(t, 2, 3, []float64{-3, -3, -3, 6, 15, 24})
	assert.True(t, mat.Equal(gotDense, want))
	assert.True(t, mat.Equal(gotWrapped, want))
	assert.Equal(t, 1.0, X.At(0, 0), "input must not be mutated")
}

func TestEwBroadcastSubCols_DimMismatch(t *testing.T) {
	t.Parallel()

	X := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	_, err := matrix.EwBroadcastSubCols(X, []float64{0, 0})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// --- ewScaleRows --------------------------------------------------------------

func TestEwScaleRows(t *testing.T) {
	t.Parallel()

	X := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})
	got, err := matrix.EwScaleRows(hide{X}, []float64{2, -0.5})
	require.NoError(t, err)
	assert.True(t, mat.Equal(got, NewFilledDense(t, 2, 2, []float64{2, 4, -1.5, -2})))

	_, err = matrix.EwScaleRows(X, []float64{1})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
