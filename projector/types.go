// SPDX-License-Identifier: MIT

package projector

import "gonum.org/v1/gonum/mat"

// Pair is an immutable complementary projector pair over R^d.
//
// Invariants (to numerical tolerance, see Check):
//   - Ps·Ps = Ps and Pv·Pv = Pv (idempotent),
//   - Ps·Pv = 0 (mutually orthogonal),
//   - Ps + Pv = I (complete; exact by construction),
//   - Ps = Psᵀ and Pv = Pvᵀ.
//
// Accessors return copies, so a Pair can be shared freely across goroutines.
type Pair struct {
	stable  *mat.Dense // Ps = I − Pv, d×d
	variant *mat.Dense // Pv = sym(Bv·Bvᵀ), d×d
	basis   *mat.Dense // Bv, d×r
	rank    int
	mode    Mode
}

// Mode records how the variant basis was learned.
type Mode int

const (
	// Unsupervised: leading right singular vectors of the column-centered data.
	Unsupervised Mode = iota

	// Supervised: leading right singular vectors of the class-mean differences.
	Supervised
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	if m == Supervised {
		return "supervised"
	}

	return "unsupervised"
}

// Stable returns a copy of Ps, the projector onto the kept (semantic) subspace.
func (p *Pair) Stable() *mat.Dense { return mat.DenseCopyOf(p.stable) }

// Variant returns a copy of Pv, the projector onto the discarded (variant) subspace.
func (p *Pair) Variant() *mat.Dense { return mat.DenseCopyOf(p.variant) }

// Basis returns a copy of Bv (d×r), the near-orthonormal variant directions.
func (p *Pair) Basis() *mat.Dense { return mat.DenseCopyOf(p.basis) }

// Rank returns r, the dimension of the variant subspace.
func (p *Pair) Rank() int { return p.rank }

// Dim returns d, the ambient dimension.
func (p *Pair) Dim() int {
	d, _ := p.stable.Dims()
	return d
}

// Mode reports whether the pair was learned with or without labels.
func (p *Pair) Mode() Mode { return p.mode }
