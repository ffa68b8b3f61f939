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

func TestNewIdentity(t *testing.T) {
	t.Parallel()

	I := matrix.NewIdentity(3)
	r, c := I.Dims()
	require.Equal(t, 3, r)
	require.Equal(t, 3, c)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1
			}
			assert.Equal(t, want, I.At(i, j))
		}
	}
}

func TestSymmetrize(t *testing.T) {
	t.Parallel()

	A := NewFilledDense(t, 2, 2, []float64{1, 2, 4, 5})
	S, err := matrix.Symmetrize(A)
	require.NoError(t, err)
	assert.True(t, mat.Equal(S, NewFilledDense(t, 2, 2, []float64{1, 3, 3, 5})))
	require.NoError(t, matrix.ValidateSymmetric(S, 0))

	_, err = matrix.Symmetrize(mat.NewDense(2, 3, nil))
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestFrobeniusSqAndDiffs(t *testing.T) {
	t.Parallel()

	A := NewFilledDense(t, 2, 2, []float64{1, -2, 3, 0})
	assert.Equal(t, 14.0, matrix.FrobeniusSq(A))
	assert.Equal(t, 3.0, matrix.MaxAbs(A))

	B := NewFilledDense(t, 2, 2, []float64{1, -2, 3, 0.5})
	assert.Equal(t, 0.5, matrix.MaxAbsDiff(A, B))
	assert.True(t, matrix.AllClose(A, B, 0.5))
	assert.False(t, matrix.AllClose(A, B, 0.49))
	assert.True(t, math.IsInf(matrix.MaxAbsDiff(A, mat.NewDense(1, 2, nil)), 1))
}

func TestStaticProjectors(t *testing.T) {
	t.Parallel()

	Ps := NewFilledDense(t, 2, 2, []float64{1, 0, 0, 0})
	Pv := NewFilledDense(t, 2, 2, []float64{0, 0, 0, 1})
	p := matrix.StaticProjectors(Ps, Pv)

	gotS, gotV, err := matrix.ProjectorMatrices(p, 2)
	require.NoError(t, err)
	assert.True(t, mat.Equal(gotS, Ps))
	assert.True(t, mat.Equal(gotV, Pv))

	gotS.Set(0, 0, 7)
	assert.Equal(t, 1.0, p.Stable().At(0, 0), "StaticProjectors must hand out copies")

	_, _, err = matrix.ProjectorMatrices(p, 3)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, _, err = matrix.ProjectorMatrices(nil, 2)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, _, err = matrix.ProjectorMatrices(matrix.StaticProjectors(Ps, nil), 2)
	assert.ErrorIs(t, err, matrix.ErrInvalidInput)
}
