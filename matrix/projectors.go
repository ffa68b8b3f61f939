// SPDX-License-Identifier: MIT

package matrix

import "gonum.org/v1/gonum/mat"

// Projectors is the read side of a complementary projector pair (Ps, Pv).
// *projector.Pair satisfies it; StaticProjectors adapts raw matrices.
type Projectors interface {
	Stable() *mat.Dense
	Variant() *mat.Dense
}

type staticProjectors struct {
	ps, pv *mat.Dense
}

// StaticProjectors wraps Ps and Pv as Projectors. Both are copied; nil stays nil
// so that consumers report ErrNilMatrix.
func StaticProjectors(ps, pv mat.Matrix) Projectors {
	return staticProjectors{ps: copyOrNil(ps), pv: copyOrNil(pv)}
}

func (s staticProjectors) Stable() *mat.Dense  { return copyOrNil(s.ps) }
func (s staticProjectors) Variant() *mat.Dense { return copyOrNil(s.pv) }

func copyOrNil(m mat.Matrix) *mat.Dense {
	if ValidateNotNil(m) != nil {
		return nil
	}

	return mat.DenseCopyOf(m)
}

// ProjectorMatrices extracts (Ps, Pv) from p and checks both are d×d.
func ProjectorMatrices(p Projectors, d int) (*mat.Dense, *mat.Dense, error) {
	if p == nil {
		return nil, nil, ErrNilMatrix
	}
	ps, pv := p.Stable(), p.Variant()
	if err := ValidateProjector(ps, d); err != nil {
		return nil, nil, matrixErrorf("Ps", err)
	}
	if err := ValidateProjector(pv, d); err != nil {
		return nil, nil, matrixErrorf("Pv", err)
	}

	return ps, pv, nil
}
