// SPDX-License-Identifier: MIT

package qstudy

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/q4/matrix"
)

const (
	opEmbed   = "Embed"
	opHeatmap = "Heatmap"
)

// Point is one record placed in the 2-D embedding.
type Point struct {
	E0, E1       float64
	FracTailMean float64
}

// Embed places every record on the two leading principal axes of the record
// table (rows = records, columns = Fields in schema order). Axes are signed so
// their largest-magnitude loading is positive. When the table has rank < 2 the
// missing coordinate is 0.
//
// Errors: ErrInvalidInput for fewer than two records or a nil record;
// ErrDimensionMismatch when records do not share one schema.
// Complexity: O(m·p·min(m,p)) for m records of p fields.
func Embed(records []*Features) ([]Point, error) {
	if len(records) < 2 {
		return nil, qstudyErrorf(opEmbed, fmt.Errorf("%w: need at least 2 records, got %d", matrix.ErrInvalidInput, len(records)))
	}

	table, err := recordTable(records)
	if err != nil {
		return nil, qstudyErrorf(opEmbed, err)
	}

	var pc stat.PC
	if ok := pc.PrincipalComponents(table, nil); !ok {
		return nil, qstudyErrorf(opEmbed, matrix.ErrDecompositionFailed)
	}
	var vecs mat.Dense
	pc.VectorsTo(&vecs)
	matrix.FlipColumnSigns(&vecs)

	centered, _, err := matrix.CenterColumns(table)
	if err != nil {
		return nil, qstudyErrorf(opEmbed, err)
	}
	p, axes := vecs.Dims()
	axes = min(axes, 2)
	var proj mat.Dense
	proj.Mul(centered, vecs.Slice(0, p, 0, axes))

	out := make([]Point, len(records))
	for i, r := range records {
		out[i] = Point{E0: proj.At(i, 0), FracTailMean: r.FracTailMean}
		if axes > 1 {
			out[i].E1 = proj.At(i, 1)
		}
	}

	return out, nil
}

// recordTable stacks the flattened records, checking they share one schema.
func recordTable(records []*Features) (*mat.Dense, error) {
	if records[0] == nil {
		return nil, matrix.ErrNilMatrix
	}
	schema := records[0].Fields()
	table := mat.NewDense(len(records), len(schema), nil)
	for i, r := range records {
		if r == nil {
			return nil, matrix.ErrNilMatrix
		}
		fields := r.Fields()
		if len(fields) != len(schema) {
			return nil, fmt.Errorf("%w: record %d has %d fields, want %d", matrix.ErrDimensionMismatch, i, len(fields), len(schema))
		}
		row := table.RawRowView(i)
		for j, fd := range fields {
			row[j] = fd.Value
		}
	}
	if err := matrix.ValidateFinite(table); err != nil {
		return nil, err
	}

	return table, nil
}

// Heatmap is a bins×bins grid over the embedding holding the mean
// frac_tail_mean of the points in every cell (0 for empty cells).
type Heatmap struct {
	XEdges, YEdges []float64  // bins+1 ascending edges per axis
	Count          *mat.Dense // points per cell, indexed [x][y]
	Mean           *mat.Dense // sum(frac_tail_mean)/max(count, 1), indexed [x][y]
}

// NewHeatmap bins points into a bins×bins grid spanning their bounding box.
// A degenerate axis (all equal) is widened to ±0.5 around its value. The last
// bin of each axis is closed on the right.
//
// Errors: ErrInvalidInput for no points, bins < 1 or non-finite coordinates.
// Complexity: O(len(points) + bins²).
func NewHeatmap(points []Point, bins int) (*Heatmap, error) {
	if len(points) == 0 || bins < 1 {
		return nil, qstudyErrorf(opHeatmap, fmt.Errorf("%w: %d points, %d bins", matrix.ErrInvalidInput, len(points), bins))
	}
	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		if math.IsNaN(p.E0+p.E1+p.FracTailMean) || math.IsInf(p.E0+p.E1+p.FracTailMean, 0) {
			return nil, qstudyErrorf(opHeatmap, matrix.ErrNaNInf)
		}
		xs[i], ys[i] = p.E0, p.E1
	}

	h := &Heatmap{
		XEdges: edges(xs, bins),
		YEdges: edges(ys, bins),
		Count:  mat.NewDense(bins, bins, nil),
		Mean:   mat.NewDense(bins, bins, nil),
	}
	for i, p := range points {
		bx, by := binOf(xs[i], h.XEdges), binOf(ys[i], h.YEdges)
		h.Count.Set(bx, by, h.Count.At(bx, by)+1)
		h.Mean.Set(bx, by, h.Mean.At(bx, by)+p.FracTailMean)
	}
	for x := 0; x < bins; x++ {
		for y := 0; y < bins; y++ {
			h.Mean.Set(x, y, h.Mean.At(x, y)/math.Max(h.Count.At(x, y), 1))
		}
	}

	return h, nil
}

// edges returns bins+1 evenly spaced edges over [min(v), max(v)].
func edges(v []float64, bins int) []float64 {
	lo, hi := v[0], v[0]
	for _, x := range v[1:] {
		lo, hi = math.Min(lo, x), math.Max(hi, x)
	}
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
	}
	out := make([]float64, bins+1)
	step := (hi - lo) / float64(bins)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	out[bins] = hi

	return out
}

// binOf returns the cell index of x for ascending edges.
func binOf(x float64, e []float64) int {
	bins := len(e) - 1
	b := int((x - e[0]) / (e[bins] - e[0]) * float64(bins))

	return max(0, min(b, bins-1))
}
