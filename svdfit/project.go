// SPDX-License-Identifier: MIT

package svdfit

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/q4/matrix"
)

const (
	opProject         = "Project"
	opProjectCentered = "ProjectCentered"
	opReconstruct     = "Reconstruct"
)

// Project returns Z = (V − Mu)·Componentsᵀ with shape (rows(V), k). Only Mu
// is subtracted; no row normalisation is applied, whatever the model's
// convention. Use Model.Normalize with ProjectCentered for a checked path.
//
// Errors: ErrInvalidInput for a nil model or nil/empty/non-finite V;
// ErrDimensionMismatch when cols(V) != model.Dims().
// Complexity: O(n·d·k).
func Project(V mat.Matrix, m *Model) (*mat.Dense, error) {
	if m == nil {
		return nil, svdfitErrorf(opProject, matrix.ErrNilMatrix)
	}
	if err := matrix.ValidateInput(V); err != nil {
		return nil, svdfitErrorf(opProject, err)
	}
	Vc, err := matrix.SubtractColumnMeans(V, m.mu)
	if err != nil {
		return nil, svdfitErrorf(opProject, err)
	}

	return m.apply(Vc), nil
}

// ProjectCentered projects data prepared by Normalize or Model.Normalize.
// It fails with ErrCenteringMismatch unless c carries exactly the model's
// centering vector and convention; the data is then used as is.
func ProjectCentered(c *Centered, m *Model) (*mat.Dense, error) {
	if m == nil || c == nil {
		return nil, svdfitErrorf(opProjectCentered, matrix.ErrNilMatrix)
	}
	if _, d := c.data.Dims(); d != m.Dims() {
		return nil, svdfitErrorf(opProjectCentered, matrix.ErrDimensionMismatch)
	}
	if !c.sameCentering(m) {
		return nil, fmt.Errorf("%s: %w: data %s, model %s",
			opProjectCentered, ErrCenteringMismatch, c.convention, m.centering)
	}

	return m.apply(c.data), nil
}

// Reconstruct maps scores back to input space: Z·Components + Mu.
// Errors: ErrDimensionMismatch when cols(Z) != K().
func (m *Model) Reconstruct(Z mat.Matrix) (*mat.Dense, error) {
	if err := matrix.ValidateInput(Z); err != nil {
		return nil, svdfitErrorf(opReconstruct, err)
	}
	n, k := Z.Dims()
	if k != m.K() {
		return nil, svdfitErrorf(opReconstruct, matrix.ErrDimensionMismatch)
	}
	out := mat.NewDense(n, m.Dims(), nil)
	out.Mul(Z, m.components)
	for i := 0; i < n; i++ {
		row := out.RawRowView(i)
		for j, mu := range m.mu {
			row[j] += mu
		}
	}

	return out, nil
}

// apply computes Vc·Componentsᵀ.
func (m *Model) apply(Vc mat.Matrix) *mat.Dense {
	n, _ := Vc.Dims()
	Z := mat.NewDense(n, m.K(), nil)
	Z.Mul(Vc, m.components.T())

	return Z
}
