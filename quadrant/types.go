// SPDX-License-Identifier: MIT

package quadrant

import "gonum.org/v1/gonum/mat"

// RateThreshold is the row-norm above which a Discard row counts as non-zero.
const RateThreshold = 1e-8

// Study summarises the variant part: its column means and the fraction of
// rows that carry any variant signal once centered.
type Study struct {
	MuV  []float64 `json:"mu_V"`
	Rate float64   `json:"rate"`
}

// Result is the immutable outcome of Split. Accessors return copies.
type Result struct {
	keep    *mat.Dense // S = X·Psᵀ
	variant *mat.Dense // V = X·Pvᵀ
	discard *mat.Dense // V − colmean(V)
	study   Study
}

// Keep returns a copy of S, the stable part of every row (n×d).
func (r *Result) Keep() *mat.Dense { return mat.DenseCopyOf(r.keep) }

// Variant returns a copy of V, the uncentered variant part (n×d).
func (r *Result) Variant() *mat.Dense { return mat.DenseCopyOf(r.variant) }

// Discard returns a copy of the column-centered variant part (n×d).
func (r *Result) Discard() *mat.Dense { return mat.DenseCopyOf(r.discard) }

// Study returns the variant summary. MuV is copied.
func (r *Result) Study() Study {
	return Study{MuV: append([]float64(nil), r.study.MuV...), Rate: r.study.Rate}
}

// Dims returns the shape shared by Keep, Variant and Discard.
func (r *Result) Dims() (n, d int) { return r.keep.Dims() }
