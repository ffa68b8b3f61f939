// SPDX-License-Identifier: MIT

package projector_test

import (
	"fmt"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/q4/matrix"
	"github.com/katalvlaran/q4/projector"
)

// invariantTol is the absolute tolerance for projector invariants.
const invariantTol = 1e-8

// randNormal returns an r×c standard-normal matrix from a fixed seed.
func randNormal(r, c int, seed uint64) *mat.Dense {
	rng := rand.New(rand.NewPCG(seed, seed))
	data := make([]float64, r*c)
	for i := range data {
		data[i] = rng.NormFloat64()
	}

	return mat.NewDense(r, c, data)
}

// LearnSuite exercises projector learning under various scenarios.
type LearnSuite struct {
	suite.Suite
}

// TestScenarioA: 50×10 standard normal, rank 1 ⇒ all invariants at 1e-8.
func (s *LearnSuite) TestScenarioA() {
	X := randNormal(50, 10, 42)

	pair, err := projector.Learn(X, projector.WithRank(1))
	require.NoError(s.T(), err)
	require.NoError(s.T(), pair.Check(invariantTol))
	require.Equal(s.T(), 1, pair.Rank())
	require.Equal(s.T(), 10, pair.Dim())
	require.Equal(s.T(), projector.Unsupervised, pair.Mode())
}

// TestInvariantsAcrossShapes mirrors the property grid n∈[5,20], d∈[3,10].
func (s *LearnSuite) TestInvariantsAcrossShapes() {
	for n := 5; n <= 20; n += 3 {
		for d := 3; d <= 10; d++ {
			X := randNormal(n, d, uint64(n*100+d))
			pair, err := projector.Learn(X)
			require.NoError(s.T(), err, "n=%d d=%d", n, d)
			r := pair.Residuals()
			assert.LessOrEqual(s.T(), r.Max(), invariantTol, "n=%d d=%d residuals=%+v", n, d, r)
		}
	}
}

// TestCompletenessIsExact: Ps is derived as I − Pv, so Ps + Pv = I to rounding.
func (s *LearnSuite) TestCompletenessIsExact() {
	X := randNormal(30, 6, 3)
	pair, err := projector.Learn(X, projector.WithRank(2))
	require.NoError(s.T(), err)

	var sum mat.Dense
	sum.Add(pair.Stable(), pair.Variant())
	assert.LessOrEqual(s.T(), matrix.MaxAbsDiff(&sum, matrix.NewIdentity(6)), 1e-15)
}

// TestBasisIsOrthonormal: Bvᵀ·Bv = I_r.
func (s *LearnSuite) TestBasisIsOrthonormal() {
	X := randNormal(40, 8, 5)
	pair, err := projector.Learn(X, projector.WithRank(3))
	require.NoError(s.T(), err)

	B := pair.Basis()
	r, c := B.Dims()
	require.Equal(s.T(), 8, r)
	require.Equal(s.T(), 3, c)

	var g mat.Dense
	g.Mul(B.T(), B)
	assert.True(s.T(), matrix.AllClose(&g, matrix.NewIdentity(3), 1e-10))
}

// TestFullRankCollapses: rank = d ⇒ Pv ≈ I, Ps ≈ 0.
func (s *LearnSuite) TestFullRankCollapses() {
	X := randNormal(20, 4, 9)
	pair, err := projector.Learn(X, projector.WithRank(4))
	require.NoError(s.T(), err)
	assert.True(s.T(), matrix.AllClose(pair.Variant(), matrix.NewIdentity(4), 1e-10))
	assert.LessOrEqual(s.T(), matrix.MaxAbs(pair.Stable()), 1e-10)
	require.NoError(s.T(), pair.Check(invariantTol))
}

// TestVariantCapturesDominantDirection: a column scaled ×50 dominates Bv.
func (s *LearnSuite) TestVariantCapturesDominantDirection() {
	X := randNormal(200, 5, 11)
	for i := 0; i < 200; i++ {
		X.Set(i, 2, 50*X.At(i, 2))
	}
	pair, err := projector.Learn(X)
	require.NoError(s.T(), err)
	assert.Greater(s.T(), pair.Basis().At(2, 0), 0.99, "sign is fixed so the dominant loading is positive")
}

// TestSupervisedSeparatesClassMeans: Bv aligns with the axis separating two groups.
func (s *LearnSuite) TestSupervisedSeparatesClassMeans() {
	n, d := 400, 5
	X := randNormal(n, d, 21)
	labels := make([]string, n)
	for i := 0; i < n; i++ {
		// Large within-class variance on column 1, class offset on column 0.
		X.Set(i, 1, 20*X.At(i, 1))
		if i%2 == 0 {
			labels[i] = "a"
			X.Set(i, 0, X.At(i, 0)*0.1+10)
		} else {
			labels[i] = "b"
			X.Set(i, 0, X.At(i, 0)*0.1-10)
		}
	}

	sup, err := projector.Learn(X, projector.WithLabels(labels))
	require.NoError(s.T(), err)
	require.Equal(s.T(), projector.Supervised, sup.Mode())
	require.NoError(s.T(), sup.Check(invariantTol))
	assert.Greater(s.T(), math.Abs(sup.Basis().At(0, 0)), 0.95, "supervised basis follows class means")

	unsup, err := projector.Learn(X)
	require.NoError(s.T(), err)
	assert.Greater(s.T(), math.Abs(unsup.Basis().At(1, 0)), 0.9, "unsupervised basis follows variance")
}

// TestSupervisedRankBoundedByClasses: two classes cannot support r = 3.
func (s *LearnSuite) TestSupervisedRankBoundedByClasses() {
	X := randNormal(10, 5, 1)
	labels := []string{"x", "y", "x", "y", "x", "y", "x", "y", "x", "y"}

	_, err := projector.Learn(X, projector.WithLabels(labels), projector.WithRank(3))
	require.ErrorIs(s.T(), err, projector.ErrInvalidRank)
	require.ErrorIs(s.T(), err, matrix.ErrInvalidRank)
}

// TestErrors covers the error taxonomy.
func (s *LearnSuite) TestErrors() {
	_, err := projector.Learn(nil)
	require.ErrorIs(s.T(), err, projector.ErrInvalidInput)

	_, err = projector.Learn(&mat.Dense{})
	require.ErrorIs(s.T(), err, matrix.ErrInvalidInput)

	bad := randNormal(4, 3, 1)
	bad.Set(1, 1, math.Inf(1))
	_, err = projector.Learn(bad)
	require.ErrorIs(s.T(), err, projector.ErrInvalidInput)
	require.ErrorIs(s.T(), err, matrix.ErrNaNInf)

	X := randNormal(6, 4, 2)
	for _, r := range []int{0, -1, 5} {
		_, err = projector.Learn(X, projector.WithRank(r))
		require.ErrorIs(s.T(), err, projector.ErrInvalidRank, fmt.Sprintf("rank=%d", r))
	}

	_, err = projector.Learn(X, projector.WithLabels([]string{"a", "b"}))
	require.ErrorIs(s.T(), err, projector.ErrDimensionMismatch)
}

// TestAccessorsReturnCopies: mutating returned matrices never leaks into the pair.
func (s *LearnSuite) TestAccessorsReturnCopies() {
	pair, err := projector.Learn(randNormal(12, 3, 8))
	require.NoError(s.T(), err)

	Pv := pair.Variant()
	Pv.Set(0, 0, 1e6)
	assert.NotEqual(s.T(), 1e6, pair.Variant().At(0, 0))
	require.NoError(s.T(), pair.Check(invariantTol))
}

func TestLearnSuite(t *testing.T) {
	suite.Run(t, new(LearnSuite))
}

func TestMeasure_DetectsBrokenPair(t *testing.T) {
	Ps := matrix.NewIdentity(3)
	Pv := matrix.NewIdentity(3) // Ps + Pv = 2I, Ps·Pv = I
	r, err := projector.Measure(Ps, Pv)
	require.NoError(t, err)
	assert.InDelta(t, 1, r.Orthogonality, 1e-15)
	assert.InDelta(t, 1, r.Completeness, 1e-15)
	assert.Zero(t, r.StableIdempotence)

	_, err = projector.Measure(Ps, matrix.NewIdentity(2))
	assert.ErrorIs(t, err, projector.ErrDimensionMismatch)
}
