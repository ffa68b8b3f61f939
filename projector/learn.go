// SPDX-License-Identifier: MIT

package projector

import (
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/q4/matrix"
)

const opLearn = "Learn"

// Learn derives the projector pair (Ps, Pv) from X.
// Implementation:
//   - Stage 1 (Validate): X non-empty and finite; labels (if any) one per row.
//   - Stage 2 (Prepare): M = column-centered X, or the class-mean differences
//     (classmean_c − globalmean) stacked in sorted label order.
//   - Stage 3 (Execute): Bv = leading r right singular vectors of M.
//   - Stage 4 (Finalize): Pv = sym(Bv·Bvᵀ), Ps = I − Pv.
//
// Behavior highlights:
//   - r = d collapses Pv toward I and Ps toward 0; documented, not an error.
//   - In supervised mode r is bounded by the number of distinct labels.
//
// Errors:
//   - ErrInvalidInput for nil/empty/non-finite X.
//   - ErrDimensionMismatch when len(labels) != rows(X).
//   - ErrInvalidRank when r ∉ [1, min(rows(M), d)].
//
// Complexity: O(n·d·min(n,d) + d²·r).
func Learn(X mat.Matrix, opts ...Option) (*Pair, error) {
	o := gatherOptions(opts...)

	// Stage 1: validate input.
	if err := matrix.ValidateInput(X); err != nil {
		return nil, projectorErrorf(opLearn, err)
	}
	n, d := X.Dims()

	// Stage 2: build the matrix whose row space defines the variant subspace.
	var (
		M    *mat.Dense
		err  error
		mode = Unsupervised
	)
	if o.supervised {
		if len(o.labels) != n {
			return nil, projectorErrorf(opLearn, matrix.ErrDimensionMismatch)
		}
		M, err = classMeanDifferences(X, o.labels)
		mode = Supervised
	} else {
		M, _, err = matrix.CenterColumns(X)
	}
	if err != nil {
		return nil, projectorErrorf(opLearn, err)
	}

	// Stage 3: leading right singular vectors (rank validated inside).
	Bv, _, err := matrix.TopRightSingularVectors(M, o.rank)
	if err != nil {
		return nil, projectorErrorf(opLearn, err)
	}

	// Stage 4: Pv = sym(Bv·Bvᵀ); Ps = I − Pv.
	var outer mat.Dense
	outer.Mul(Bv, Bv.T())
	Pv, err := matrix.Symmetrize(&outer)
	if err != nil {
		return nil, projectorErrorf(opLearn, err)
	}
	Ps := matrix.NewIdentity(d)
	Ps.Sub(Ps, Pv)

	return &Pair{stable: Ps, variant: Pv, basis: Bv, rank: o.rank, mode: mode}, nil
}

// classMeanDifferences returns the classes×d matrix whose row c is
// mean(X[labels==c]) − mean(X), with classes in ascending label order.
// Complexity: O(n·d).
func classMeanDifferences(X mat.Matrix, labels []string) (*mat.Dense, error) {
	global, err := matrix.ColumnMeans(X)
	if err != nil {
		return nil, err
	}

	classes := distinct(labels)
	index := make(map[string]int, len(classes))
	for i, c := range classes {
		index[c] = i
	}

	_, d := X.Dims()
	M := mat.NewDense(len(classes), d, nil)
	counts := make([]float64, len(classes))
	var i, j int
	for i = range labels {
		c := index[labels[i]]
		counts[c]++
		row := M.RawRowView(c)
		for j = 0; j < d; j++ {
			row[j] += X.At(i, j)
		}
	}
	for c := range classes {
		row := M.RawRowView(c)
		for j = 0; j < d; j++ {
			row[j] = row[j]/counts[c] - global[j]
		}
	}

	return M, nil
}

// distinct returns the sorted set of labels.
func distinct(labels []string) []string {
	seen := make(map[string]struct{}, len(labels))
	out := make([]string, 0, len(labels))
	for _, l := range labels {
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}
	sort.Strings(out)

	return out
}
