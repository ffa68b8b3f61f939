// SPDX-License-Identifier: MIT

package energy

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/q4/matrix"
)

const (
	opSplit = "Split"
	opCheck = "Check"
)

// Report is the persisted outcome of an energy check.
type Report struct {
	EnergySplit float64 `json:"energy_split"`
	Rows        int     `json:"rows"`
}

// Split returns (‖X·Ps‖²_F + ‖X·Pv‖²_F) / (‖X‖²_F + DenominatorFloor).
// The norms are taken over X/max|X| and rescaled, so entries near the float64
// range do not overflow.
//
// Errors:
//   - ErrInvalidInput for nil/empty/non-finite X or a nil pair.
//   - ErrDimensionMismatch when Ps or Pv is not d×d.
//
// Complexity: O(n·d²).
func Split(X mat.Matrix, p matrix.Projectors) (float64, error) {
	e, err := measure(opSplit, X, p)
	if err != nil {
		return 0, err
	}

	return e.ratio(), nil
}

// Check computes Split and fails with ErrConsistencyCheckFailed unless
//
//	|‖X·Ps‖²_F + ‖X·Pv‖²_F − ‖X‖²_F| ≤ tol·‖X‖²_F
//
// with tol = DefaultTolerance unless WithTolerance is given. The rule is
// relative to the energy of X, so it does not depend on the magnitude of the
// data; an all-zero X is conserved. Report.EnergySplit is the Split ratio and
// is filled in on failure as well.
func Check(X mat.Matrix, p matrix.Projectors, opts ...Option) (Report, error) {
	o := gatherOptions(opts...)

	e, err := measure(opCheck, X, p)
	if err != nil {
		return Report{}, err
	}
	n, _ := X.Dims()
	rep := Report{EnergySplit: e.ratio(), Rows: n}
	if e.scale == 0 {
		return rep, nil
	}

	dev := math.Abs(e.projected-e.total) / e.total
	if !(dev <= o.tolerance) {
		return rep, fmt.Errorf("%s: %w: energy_split=%.12g, relative deviation %.3g > %.3g",
			opCheck, ErrConsistencyCheckFailed, rep.EnergySplit, dev, o.tolerance)
	}

	return rep, nil
}

// energies holds ‖X·Ps‖²_F + ‖X·Pv‖²_F and ‖X‖²_F, both of X/scale with
// scale = max|X| (0 for an all-zero X).
type energies struct {
	projected, total, scale float64
}

func (e energies) ratio() float64 {
	if e.scale == 0 {
		return 0
	}

	return e.projected / (e.total + DenominatorFloor/(e.scale*e.scale))
}

func measure(op string, X mat.Matrix, p matrix.Projectors) (energies, error) {
	if err := matrix.ValidateInput(X); err != nil {
		return energies{}, energyErrorf(op, err)
	}
	n, d := X.Dims()
	Ps, Pv, err := matrix.ProjectorMatrices(p, d)
	if err != nil {
		return energies{}, energyErrorf(op, err)
	}

	scale := matrix.MaxAbs(X)
	if scale == 0 {
		return energies{}, nil
	}
	Xs := mat.NewDense(n, d, nil)
	Xs.Apply(func(_, _ int, v float64) float64 { return v / scale }, X)

	S := mat.NewDense(n, d, nil)
	S.Mul(Xs, Ps)
	V := mat.NewDense(n, d, nil)
	V.Mul(Xs, Pv)

	return energies{
		projected: matrix.FrobeniusSq(S) + matrix.FrobeniusSq(V),
		total:     matrix.FrobeniusSq(Xs),
		scale:     scale,
	}, nil
}
