// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   - Provide small, deterministic fixtures shared by the matrix tests.

package matrix_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// hide wraps a mat.Matrix to mask its concrete type, forcing the At-based
// fallback paths in code that type-switches on *mat.Dense / RawMatrixer.
type hide struct{ mat.Matrix }

// NewFilledDense builds an r×c *mat.Dense from row-major data or fails the test.
func NewFilledDense(t testing.TB, r, c int, data []float64) *mat.Dense {
	t.Helper()
	require.Len(t, data, r*c, "fixture data length")

	return mat.NewDense(r, c, append([]float64(nil), data...))
}

// randNormal returns an r×c matrix of standard normal draws from a fixed seed.
func randNormal(r, c int, seed uint64) *mat.Dense {
	rng := rand.New(rand.NewPCG(seed, seed))
	data := make([]float64, r*c)
	for i := range data {
		data[i] = rng.NormFloat64()
	}

	return mat.NewDense(r, c, data)
}
