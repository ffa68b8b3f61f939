// SPDX-License-Identifier: MIT

package svdfit

import (
	"sort"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/q4/matrix"
)

const opFit = "Fit"

// Fit learns k components from vn, data already prepared with the centering
// vector mu (len d). mu is stored on the model and subtracted by Project; it
// is never recomputed here.
// Implementation:
//   - Stage 1 (Validate): vn non-empty and finite, len(mu) = d, k ∈ [1, min(n, d)].
//   - Stage 2 (Select): resolve Auto through Thresholds.Select.
//   - Stage 3 (Execute): top-k right singular vectors with the chosen back-end.
//   - Stage 4 (Finalize): order by captured variance, fix signs.
//
// Errors:
//   - ErrInvalidInput for nil/empty/non-finite vn or mu.
//   - ErrDimensionMismatch when len(mu) != cols(vn).
//   - ErrInvalidRank when k ∉ [1, min(n, d)].
//   - ErrDecompositionFailed when an SVD does not converge.
//
// Complexity: Truncated O(n·d·min(n,d)); Randomized O(n·d·(k+p)·(2q+2));
// Incremental O(n·d·(k+b)) with batch size b.
func Fit(vn mat.Matrix, mu []float64, k int, opts ...Option) (*Model, error) {
	o := gatherOptions(opts...)

	// Stage 1: validate.
	if err := matrix.ValidateInput(vn); err != nil {
		return nil, svdfitErrorf(opFit, err)
	}
	n, d := vn.Dims()
	if err := matrix.ValidateVecLen(mu, d); err != nil {
		return nil, svdfitErrorf(opFit, err)
	}
	if err := validateVector(mu); err != nil {
		return nil, svdfitErrorf(opFit, err)
	}
	if err := matrix.ValidateRank(k, n, d); err != nil {
		return nil, svdfitErrorf(opFit, err)
	}

	// Stage 2: method.
	method := o.method
	if method == Auto {
		method = o.thresholds.Select(n, d)
	}
	A := mat.DenseCopyOf(vn)

	// Stage 3: leading right singular vectors as columns of a d×k matrix.
	var (
		Vk  *mat.Dense
		err error
	)
	switch method {
	case Randomized:
		Vk, err = fitRandomized(A, k, o.oversamples, o.powerIters, o.seed)
	case Incremental:
		batch := o.thresholds.BatchSize(n, k)
		o.logger.Debug("svdfit: incremental batches", "batch", batch, "batches", (n+batch-1)/batch)
		Vk, err = fitIncremental(A, k, batch, o.seed)
	default:
		Vk, _, err = matrix.TopRightSingularVectors(A, k)
	}
	if err != nil {
		return nil, svdfitErrorf(opFit, err)
	}

	// Stage 4: finalize.
	components, ev := finalize(A, Vk)
	o.logger.Debug("svdfit: fit done",
		"method", method.String(), "rows", n, "cols", d, "k", k,
		"seed", o.seed, "centering", o.centering.String(), "explained_var_0", ev[0])

	return &Model{
		mu:           append([]float64(nil), mu...),
		components:   components,
		explainedVar: ev,
		centering:    o.centering,
		method:       method,
	}, nil
}

// FitCentered fits on a token produced by Normalize, threading its centering
// vector and convention into the model.
func FitCentered(c *Centered, k int, opts ...Option) (*Model, error) {
	if c == nil {
		return nil, svdfitErrorf(opFit, matrix.ErrNilMatrix)
	}
	opts = append(append([]Option(nil), opts...), WithCentering(c.convention))

	return Fit(c.data, c.mu, k, opts...)
}

// finalize turns the d×k basis Vk into k×d component rows sorted by the
// population variance of A·Vk columns (decreasing), largest-|entry| positive.
func finalize(A, Vk *mat.Dense) (*mat.Dense, []float64) {
	n, _ := A.Dims()
	d, k := Vk.Dims()
	matrix.FlipColumnSigns(Vk)

	Z := mat.NewDense(n, k, nil)
	Z.Mul(A, Vk)
	ev := make([]float64, k)
	col := make([]float64, n)
	for j := 0; j < k; j++ {
		mat.Col(col, j, Z)
		ev[j] = popVariance(col)
	}

	order := make([]int, k)
	for j := range order {
		order[j] = j
	}
	sort.SliceStable(order, func(a, b int) bool { return ev[order[a]] > ev[order[b]] })

	components := mat.NewDense(k, d, nil)
	sorted := make([]float64, k)
	for out, j := range order {
		row := components.RawRowView(out)
		for c := 0; c < d; c++ {
			row[c] = Vk.At(c, j)
		}
		sorted[out] = ev[j]
	}

	return components, sorted
}

// popVariance is the ddof = 0 variance; 0 for fewer than two samples.
func popVariance(x []float64) float64 {
	n := len(x)
	if n < 2 {
		return 0
	}
	_, v := stat.MeanVariance(x, nil)

	return v * float64(n-1) / float64(n)
}
