// SPDX-License-Identifier: MIT

package qstudy

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/q4/matrix"
)

const opCompute = "Compute"

// Record key names.
const (
	KeyMeanAbsV     = "mean_absV"
	KeyStdMean      = "std_mean"
	KeyFracTailMean = "frac_tail_mean"
	KeyEnergy       = "energy"
)

// Dimension holds the statistics of one reported score dimension.
type Dimension struct {
	Mean float64 // column mean
	Std  float64 // sample standard deviation (ddof = 1)
	Tail float64 // frac_tail
}

// Features is the anisotropy summary of one score matrix.
type Features struct {
	MeanAbsV     float64     // mean of |Z| over all entries
	StdMean      float64     // mean of the per-dimension std over all k dimensions
	FracTailMean float64     // mean of frac_tail over all k dimensions
	Energy       float64     // mean over rows of ‖Z[i,:]‖²
	Dims         []Dimension // the first min(k, MaxReported) dimensions
}

// Field is one named value of a flattened record.
type Field struct {
	Key   string
	Value float64
}

// Fields flattens f in schema order: mean_absV, std_mean, frac_tail_mean,
// energy, then comp{i}_mean, comp{i}_std, comp{i}_tail for every reported i.
func (f *Features) Fields() []Field {
	out := make([]Field, 0, 4+3*len(f.Dims))
	out = append(out,
		Field{KeyMeanAbsV, f.MeanAbsV},
		Field{KeyStdMean, f.StdMean},
		Field{KeyFracTailMean, f.FracTailMean},
		Field{KeyEnergy, f.Energy},
	)
	for i, d := range f.Dims {
		out = append(out,
			Field{fmt.Sprintf("comp%d_mean", i), d.Mean},
			Field{fmt.Sprintf("comp%d_std", i), d.Std},
			Field{fmt.Sprintf("comp%d_tail", i), d.Tail},
		)
	}

	return out
}

// Record returns the flattened record as a map.
func (f *Features) Record() map[string]float64 {
	fields := f.Fields()
	rec := make(map[string]float64, len(fields))
	for _, fd := range fields {
		rec[fd.Key] = fd.Value
	}

	return rec
}

// MarshalJSON writes the flat record with keys in schema order.
func (f *Features) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, fd := range f.Fields() {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, _ := json.Marshal(fd.Key)
		v, err := json.Marshal(fd.Value)
		if err != nil {
			return nil, fmt.Errorf("qstudy: %s: %w", fd.Key, err)
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// Compute summarises Z (n×k scores).
// Implementation:
//   - Stage 1 (Validate): Z finite with n ≥ 2 rows (the std uses ddof = 1).
//   - Stage 2 (Per column): mean, std, tau = quantile(|Z[:,j]|, q), frac_tail.
//   - Stage 3 (Aggregate): mean_absV, std_mean, frac_tail_mean, energy.
//
// Errors: ErrInvalidInput for nil/empty/non-finite Z or fewer than two rows.
// Complexity: O(n·k·log n) for the per-column sorts.
func Compute(Z mat.Matrix, opts ...Option) (*Features, error) {
	o := gatherOptions(opts...)

	// Stage 1: validate.
	if err := matrix.ValidateInput(Z); err != nil {
		return nil, qstudyErrorf(opCompute, err)
	}
	n, k := Z.Dims()
	if n < 2 {
		return nil, qstudyErrorf(opCompute, fmt.Errorf("%w: need at least 2 rows, got %d", matrix.ErrInvalidInput, n))
	}

	// Stage 2: per column.
	var (
		col    = make([]float64, n)
		abs    = make([]float64, n)
		stds   = make([]float64, k)
		tails  = make([]float64, k)
		means  = make([]float64, k)
		sumAbs float64
	)
	for j := 0; j < k; j++ {
		mat.Col(col, j, Z)
		means[j], stds[j] = stat.MeanStdDev(col, nil)
		for i, v := range col {
			abs[i] = math.Abs(v)
		}
		sumAbs += floats.Sum(abs)
		sort.Float64s(abs)
		tau := quantileSorted(abs, o.tailQuantile)
		tails[j] = fractionAbove(abs, tau)
	}

	// Stage 3: aggregate.
	rowSq, err := matrix.RowSquaredNorms(Z)
	if err != nil {
		return nil, qstudyErrorf(opCompute, err)
	}
	f := &Features{
		MeanAbsV:     sumAbs / float64(n*k),
		StdMean:      stat.Mean(stds, nil),
		FracTailMean: stat.Mean(tails, nil),
		Energy:       stat.Mean(rowSq, nil),
		Dims:         make([]Dimension, min(k, MaxReported)),
	}
	for j := range f.Dims {
		f.Dims[j] = Dimension{Mean: means[j], Std: stds[j], Tail: tails[j]}
	}

	return f, nil
}

// quantileSorted is the linear-interpolation quantile of ascending x:
// position h = (n−1)·q, value x[⌊h⌋] + (h−⌊h⌋)·(x[⌊h⌋+1] − x[⌊h⌋]).
func quantileSorted(x []float64, q float64) float64 {
	h := float64(len(x)-1) * q
	lo := int(math.Floor(h))
	if lo >= len(x)-1 {
		return x[len(x)-1]
	}

	return x[lo] + (h-float64(lo))*(x[lo+1]-x[lo])
}

// fractionAbove is the share of ascending x strictly greater than tau.
func fractionAbove(x []float64, tau float64) float64 {
	i := sort.Search(len(x), func(i int) bool { return x[i] > tau })

	return float64(len(x)-i) / float64(len(x))
}
