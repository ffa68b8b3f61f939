// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/q4/matrix"
)

func TestValidateInput_Taxonomy(t *testing.T) {
	t.Parallel()

	var nilDense *mat.Dense
	assert.ErrorIs(t, matrix.ValidateInput(nil), matrix.ErrNilMatrix)
	assert.ErrorIs(t, matrix.ValidateInput(nilDense), matrix.ErrInvalidInput)
	assert.ErrorIs(t, matrix.ValidateInput(&mat.Dense{}), matrix.ErrEmpty)

	bad := NewFilledDense(t, 2, 2, []float64{1, 2, math.NaN(), 4})
	err := matrix.ValidateInput(bad)
	assert.ErrorIs(t, err, matrix.ErrNaNInf)
	assert.ErrorIs(t, err, matrix.ErrInvalidInput, "refinements must match the root sentinel")

	inf := NewFilledDense(t, 1, 2, []float64{math.Inf(-1), 0})
	assert.ErrorIs(t, matrix.ValidateInput(hide{inf}), matrix.ErrNaNInf, "At fallback must scan too")

	require.NoError(t, matrix.ValidateInput(NewFilledDense(t, 1, 1, []float64{3})))
}

func TestValidateRank(t *testing.T) {
	t.Parallel()

	cases := []struct {
		k, r, c int
		ok      bool
	}{
		{1, 5, 3, true},
		{3, 5, 3, true},
		{4, 5, 3, false},
		{0, 5, 3, false},
		{-1, 5, 3, false},
		{2, 2, 9, true},
		{3, 2, 9, false},
	}
	for _, tc := range cases {
		err := matrix.ValidateRank(tc.k, tc.r, tc.c)
		if tc.ok {
			assert.NoError(t, err, "k=%d r=%d c=%d", tc.k, tc.r, tc.c)
		} else {
			assert.ErrorIs(t, err, matrix.ErrInvalidRank, "k=%d r=%d c=%d", tc.k, tc.r, tc.c)
		}
	}
}

func TestValidateProjectorAndVecLen(t *testing.T) {
	t.Parallel()

	P := mat.NewDense(3, 3, nil)
	require.NoError(t, matrix.ValidateProjector(P, 3))
	assert.ErrorIs(t, matrix.ValidateProjector(P, 4), matrix.ErrDimensionMismatch)
	assert.ErrorIs(t, matrix.ValidateProjector(nil, 3), matrix.ErrNilMatrix)

	assert.NoError(t, matrix.ValidateVecLen([]float64{1, 2}, 2))
	assert.ErrorIs(t, matrix.ValidateVecLen([]float64{1}, 2), matrix.ErrDimensionMismatch)
}

func TestValidateSymmetric(t *testing.T) {
	t.Parallel()

	S := NewFilledDense(t, 2, 2, []float64{1, 2, 2 + 1e-12, 1})
	require.NoError(t, matrix.ValidateSymmetric(S, 1e-9))

	A := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 1})
	assert.ErrorIs(t, matrix.ValidateSymmetric(A, 1e-9), matrix.ErrConsistencyCheckFailed)

	R := mat.NewDense(2, 3, nil)
	assert.ErrorIs(t, matrix.ValidateSymmetric(R, 1e-9), matrix.ErrDimensionMismatch)
}
