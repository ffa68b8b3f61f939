// SPDX-License-Identifier: MIT

package svdfit

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/q4/matrix"
)

// fitRandomized approximates the top-k right singular vectors of A (n×d).
// Implementation:
//   - Stage 1: sketch Y = A·Ω with Ω a seeded d×l Gaussian, l = min(k+p, n, d).
//   - Stage 2: q power iterations Q ← orth(A·orth(Aᵀ·Q)) sharpen the spectrum.
//   - Stage 3: B = Qᵀ·A (l×d); its exact top-k right singular vectors are returned.
//
// Complexity: O(n·d·l·(2q+2)) plus O(l²·d) for the small SVD.
func fitRandomized(A *mat.Dense, k, oversamples, powerIters int, seed uint64) (*mat.Dense, error) {
	n, d := A.Dims()
	l := min(k+oversamples, n, d)

	// Stage 1: Gaussian sketch.
	rng := rand.New(rand.NewPCG(seed, seed))
	omega := mat.NewDense(d, l, nil)
	raw := omega.RawMatrix().Data
	for i := range raw {
		raw[i] = rng.NormFloat64()
	}
	Y := mat.NewDense(n, l, nil)
	Y.Mul(A, omega)
	Q, err := orthonormalize(Y)
	if err != nil {
		return nil, err
	}

	// Stage 2: power iterations, re-orthonormalised on both sides.
	W := mat.NewDense(d, l, nil)
	for it := 0; it < powerIters; it++ {
		W.Mul(A.T(), Q)
		Wq, err := orthonormalize(W)
		if err != nil {
			return nil, err
		}
		Y.Mul(A, Wq)
		if Q, err = orthonormalize(Y); err != nil {
			return nil, err
		}
	}

	// Stage 3: project and solve the small problem exactly.
	B := mat.NewDense(l, d, nil)
	B.Mul(Q.T(), A)
	Vk, _, err := matrix.TopRightSingularVectors(B, k)

	return Vk, err
}

// orthonormalize returns an orthonormal basis for the column space of Y
// (rows ≥ cols), taken as the thin left singular vectors. Unlike QR's QTo it
// never materialises a rows×rows factor.
func orthonormalize(Y *mat.Dense) (*mat.Dense, error) {
	var svd mat.SVD
	if ok := svd.Factorize(Y, mat.SVDThinU); !ok {
		return nil, matrix.ErrDecompositionFailed
	}
	var U mat.Dense
	svd.UTo(&U)

	return &U, nil
}
