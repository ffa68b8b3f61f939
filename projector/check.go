// SPDX-License-Identifier: MIT

package projector

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/q4/matrix"
)

const opCheck = "Check"

// Residuals are the max-abs violations of the projector invariants.
type Residuals struct {
	StableIdempotence  float64 // max |Ps·Ps − Ps|
	VariantIdempotence float64 // max |Pv·Pv − Pv|
	Orthogonality      float64 // max |Ps·Pv|
	Completeness       float64 // max |Ps + Pv − I|
	Symmetry           float64 // max(|Ps − Psᵀ|, |Pv − Pvᵀ|)
}

// Max returns the largest residual.
func (r Residuals) Max() float64 {
	return math.Max(
		math.Max(math.Max(r.StableIdempotence, r.VariantIdempotence), math.Max(r.Orthogonality, r.Completeness)),
		r.Symmetry,
	)
}

// Measure computes the invariant residuals for any square pair (Ps, Pv) of
// equal size. Complexity: O(d³).
func Measure(Ps, Pv mat.Matrix) (Residuals, error) {
	if err := matrix.ValidateNotNil(Ps); err != nil {
		return Residuals{}, projectorErrorf("Measure", err)
	}
	if err := matrix.ValidateSquare(Ps); err != nil {
		return Residuals{}, projectorErrorf("Measure", err)
	}
	d, _ := Ps.Dims()
	if err := matrix.ValidateProjector(Pv, d); err != nil {
		return Residuals{}, projectorErrorf("Measure", err)
	}

	var ss, vv, sv, sum mat.Dense
	ss.Mul(Ps, Ps)
	vv.Mul(Pv, Pv)
	sv.Mul(Ps, Pv)
	sum.Add(Ps, Pv)

	return Residuals{
		StableIdempotence:  matrix.MaxAbsDiff(&ss, Ps),
		VariantIdempotence: matrix.MaxAbsDiff(&vv, Pv),
		Orthogonality:      matrix.MaxAbs(&sv),
		Completeness:       matrix.MaxAbsDiff(&sum, matrix.NewIdentity(d)),
		Symmetry:           math.Max(matrix.MaxAbsDiff(Ps, Ps.T()), matrix.MaxAbsDiff(Pv, Pv.T())),
	}, nil
}

// Residuals measures the invariants of p.
func (p *Pair) Residuals() Residuals {
	r, _ := Measure(p.stable, p.variant) // shapes are guaranteed by Learn
	return r
}

// Check verifies every projector invariant within tol and returns
// ErrConsistencyCheckFailed naming the first violated one.
func (p *Pair) Check(tol float64) error {
	r := p.Residuals()
	checks := []struct {
		name string
		v    float64
	}{
		{"stable idempotence", r.StableIdempotence},
		{"variant idempotence", r.VariantIdempotence},
		{"orthogonality", r.Orthogonality},
		{"completeness", r.Completeness},
		{"symmetry", r.Symmetry},
	}
	for _, c := range checks {
		if !(c.v <= tol) { // NaN fails too
			return fmt.Errorf("%s: %w: %s residual %.3g > %.3g", opCheck, ErrConsistencyCheckFailed, c.name, c.v, tol)
		}
	}

	return nil
}
