// SPDX-License-Identifier: MIT

package svdfit_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
)

func randNormal(r, c int, seed uint64) *mat.Dense {
	rng := rand.New(rand.NewPCG(seed, seed))
	data := make([]float64, r*c)
	for i := range data {
		data[i] = rng.NormFloat64()
	}

	return mat.NewDense(r, c, data)
}

// lowRank returns an n×d matrix of exact rank len(scales): column-centered
// Gaussian factors with well separated strengths.
func lowRank(n, d int, scales []float64, seed uint64) *mat.Dense {
	r := len(scales)
	F := randNormal(n, r, seed)
	for j, s := range scales {
		for i := 0; i < n; i++ {
			F.Set(i, j, F.At(i, j)*s)
		}
	}
	W := randNormal(r, d, seed+1)
	var X mat.Dense
	X.Mul(F, W)

	return &X
}

// assertContract checks the output contract shared by every back-end.
func assertContract(t *testing.T, C *mat.Dense, ev []float64, k, d int) {
	t.Helper()

	r, c := C.Dims()
	assert.Equal(t, k, r)
	assert.Equal(t, d, c)
	assert.Len(t, ev, k)

	var gram mat.Dense
	gram.Mul(C, C.T())
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			want := 0.0
			if i == j {
				want = 1
			}
			assert.InDelta(t, want, gram.At(i, j), 1e-8, "gram[%d,%d]", i, j)
		}
	}

	for i, v := range ev {
		assert.GreaterOrEqual(t, v, 0.0, "ev[%d]", i)
		if i > 0 {
			assert.LessOrEqual(t, v, ev[i-1], "ev must decrease at %d", i)
		}
	}

	for i := 0; i < k; i++ {
		row := C.RawRowView(i)
		arg, best := 0, -1.0
		for j, x := range row {
			if math.Abs(x) > best {
				arg, best = j, math.Abs(x)
			}
		}
		assert.Positive(t, row[arg], "component %d sign", i)
	}
}
