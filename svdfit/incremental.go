// SPDX-License-Identifier: MIT

package svdfit

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/q4/matrix"
)

// fitIncremental folds row batches of A into a running rank-k factorisation.
// Implementation:
//   - Stage 1: permute rows with a seeded PCG source and cut batches of size batch.
//   - Stage 2: for every batch stack [Σ·Vᵀ ; batch], take its thin SVD and keep
//     the leading k singular triplets as the new Σ·Vᵀ.
//   - Stage 3: return the leading k right singular vectors of the last stack.
//
// The working set is (k+batch)×d. The result is exact when rank(A) ≤ k.
// Requires batch ≥ k and k ≤ min(n, d).
func fitIncremental(A *mat.Dense, k, batch int, seed uint64) (*mat.Dense, error) {
	n, d := A.Dims()

	// Stage 1: seeded row order.
	perm := rand.New(rand.NewPCG(seed, seed)).Perm(n)

	// Stage 2: batch updates.
	var (
		carry *mat.Dense // r×d, Σ·Vᵀ of the running factorisation
		v     mat.Dense
		svd   mat.SVD
	)
	for start := 0; start < n; start += batch {
		end := min(start+batch, n)
		off := 0
		if carry != nil {
			off, _ = carry.Dims()
		}
		stack := mat.NewDense(off+end-start, d, nil)
		if carry != nil {
			stack.Slice(0, off, 0, d).(*mat.Dense).Copy(carry)
		}
		for i := start; i < end; i++ {
			stack.SetRow(off+i-start, A.RawRowView(perm[i]))
		}

		if ok := svd.Factorize(stack, mat.SVDThinV); !ok {
			return nil, matrix.ErrDecompositionFailed
		}
		v.Reset()
		svd.VTo(&v)
		sigma := svd.Values(nil)
		r := min(k, len(sigma))
		carry = mat.NewDense(r, d, nil)
		for j := 0; j < r; j++ {
			row := carry.RawRowView(j)
			for c := 0; c < d; c++ {
				row[c] = sigma[j] * v.At(c, j)
			}
		}
	}

	// Stage 3: leading k right singular vectors of the final stack.
	return mat.DenseCopyOf(v.Slice(0, d, 0, k)), nil
}
