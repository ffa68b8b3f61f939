// SPDX-License-Identifier: MIT

package quadrant_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/q4/matrix"
	"github.com/katalvlaran/q4/projector"
	"github.com/katalvlaran/q4/quadrant"
)

const eps = 1e-10

func randNormal(r, c int, seed uint64) *mat.Dense {
	rng := rand.New(rand.NewPCG(seed, seed))
	data := make([]float64, r*c)
	for i := range data {
		data[i] = rng.NormFloat64()
	}

	return mat.NewDense(r, c, data)
}

func learned(t *testing.T, X mat.Matrix, rank int) *projector.Pair {
	t.Helper()
	pair, err := projector.Learn(X, projector.WithRank(rank))
	require.NoError(t, err)

	return pair
}

func TestSplit_ShapesAndStudy(t *testing.T) {
	t.Parallel()

	for _, shape := range [][2]int{{5, 3}, {12, 7}, {50, 10}} {
		n, d := shape[0], shape[1]
		X := randNormal(n, d, uint64(n*d))
		res, err := quadrant.Split(X, learned(t, X, 1))
		require.NoError(t, err)

		gn, gd := res.Dims()
		assert.Equal(t, n, gn)
		assert.Equal(t, d, gd)
		for _, m := range []*mat.Dense{res.Keep(), res.Variant(), res.Discard()} {
			r, c := m.Dims()
			assert.Equal(t, n, r)
			assert.Equal(t, d, c)
		}

		st := res.Study()
		assert.Len(t, st.MuV, d)
		assert.GreaterOrEqual(t, st.Rate, 0.0)
		assert.LessOrEqual(t, st.Rate, 1.0)
	}
}

func TestSplit_DiscardIsCentered(t *testing.T) {
	t.Parallel()

	X := randNormal(40, 6, 3)
	res, err := quadrant.Split(X, learned(t, X, 2))
	require.NoError(t, err)

	means, err := matrix.ColumnMeans(res.Discard())
	require.NoError(t, err)
	for j, m := range means {
		assert.InDelta(t, 0, m, eps, "column %d", j)
	}
}

func TestSplit_KeepPlusVariantRebuildsX(t *testing.T) {
	t.Parallel()

	X := randNormal(30, 5, 9)
	res, err := quadrant.Split(X, learned(t, X, 2))
	require.NoError(t, err)

	var sum mat.Dense
	sum.Add(res.Keep(), res.Variant())
	assert.LessOrEqual(t, matrix.MaxAbsDiff(&sum, X), eps)
}

func TestSplit_RateCountsNonZeroRows(t *testing.T) {
	t.Parallel()

	// Pv projects onto the x-axis. Rows 0 and 1 share x, so after centering
	// only rows 2 and 3 carry variant signal.
	X := mat.NewDense(4, 2, []float64{
		1, 5,
		1, -2,
		3, 0,
		-1, 7,
	})
	Pv := mat.NewDense(2, 2, []float64{1, 0, 0, 0})
	Ps := mat.NewDense(2, 2, []float64{0, 0, 0, 1})

	res, err := quadrant.Split(X, matrix.StaticProjectors(Ps, Pv))
	require.NoError(t, err)

	st := res.Study()
	assert.InDeltaSlice(t, []float64{1, 0}, st.MuV, eps)
	assert.InDelta(t, 0.5, st.Rate, eps)
}

func TestSplit_ConstantVariantHasZeroRate(t *testing.T) {
	t.Parallel()

	X := mat.NewDense(3, 2, []float64{2, 1, 2, 4, 2, 9})
	Pv := mat.NewDense(2, 2, []float64{1, 0, 0, 0})
	Ps := mat.NewDense(2, 2, []float64{0, 0, 0, 1})

	res, err := quadrant.Split(X, matrix.StaticProjectors(Ps, Pv))
	require.NoError(t, err)
	assert.Zero(t, res.Study().Rate)
}

func TestSplit_Errors(t *testing.T) {
	t.Parallel()

	X := randNormal(6, 3, 1)
	pair := learned(t, X, 1)

	_, err := quadrant.Split(nil, pair)
	assert.ErrorIs(t, err, quadrant.ErrInvalidInput)
	assert.ErrorIs(t, err, matrix.ErrInvalidInput)

	bad := mat.DenseCopyOf(X)
	bad.Set(0, 0, math.NaN())
	_, err = quadrant.Split(bad, pair)
	assert.ErrorIs(t, err, quadrant.ErrInvalidInput)

	_, err = quadrant.Split(X, nil)
	assert.ErrorIs(t, err, quadrant.ErrInvalidInput)

	wide := randNormal(6, 4, 2)
	_, err = quadrant.Split(wide, pair)
	assert.ErrorIs(t, err, quadrant.ErrDimensionMismatch)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestSplit_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	X := randNormal(10, 4, 5)
	orig := mat.DenseCopyOf(X)
	res, err := quadrant.Split(X, learned(t, X, 1))
	require.NoError(t, err)

	assert.True(t, mat.Equal(X, orig))
	k := res.Keep()
	k.Set(0, 0, 1e6)
	assert.NotEqual(t, 1e6, res.Keep().At(0, 0), "accessors must return copies")
}
