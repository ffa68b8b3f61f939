// SPDX-License-Identifier: MIT

package svdfit

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/q4/matrix"
)

const opNewModel = "NewModel"

// Model is an immutable low-rank linear model over R^d.
// Accessors return copies; a Model is safe for concurrent use.
type Model struct {
	mu           []float64  // d
	components   *mat.Dense // k×d, rows ordered by decreasing explained variance
	explainedVar []float64  // k
	centering    Centering
	method       Method // back-end that produced the model; Auto when unknown
}

// NewModel assembles a Model from its parts, checking shapes and finiteness.
// Parts are copied.
//
// Errors:
//   - ErrInvalidInput for empty or non-finite parts, or negative variances.
//   - ErrDimensionMismatch when len(mu) != cols(components) or len(ev) != rows(components).
func NewModel(mu []float64, components mat.Matrix, explainedVar []float64, centering Centering) (*Model, error) {
	if err := validateVector(mu); err != nil {
		return nil, svdfitErrorf(opNewModel, err)
	}
	if err := matrix.ValidateInput(components); err != nil {
		return nil, svdfitErrorf(opNewModel, err)
	}
	k, d := components.Dims()
	if err := matrix.ValidateVecLen(mu, d); err != nil {
		return nil, svdfitErrorf(opNewModel, err)
	}
	if err := matrix.ValidateVecLen(explainedVar, k); err != nil {
		return nil, svdfitErrorf(opNewModel, err)
	}
	if err := validateVector(explainedVar); err != nil {
		return nil, svdfitErrorf(opNewModel, err)
	}
	for _, v := range explainedVar {
		if v < 0 {
			return nil, svdfitErrorf(opNewModel, matrix.ErrInvalidInput)
		}
	}
	if centering != Center && centering != CenterL2 {
		return nil, svdfitErrorf(opNewModel, ErrUnknownCentering)
	}

	return &Model{
		mu:           append([]float64(nil), mu...),
		components:   mat.DenseCopyOf(components),
		explainedVar: append([]float64(nil), explainedVar...),
		centering:    centering,
	}, nil
}

// Mu returns a copy of the centering vector (length d).
func (m *Model) Mu() []float64 { return append([]float64(nil), m.mu...) }

// Components returns a copy of the k×d component matrix.
func (m *Model) Components() *mat.Dense { return mat.DenseCopyOf(m.components) }

// ExplainedVar returns a copy of the per-component variance (length k).
func (m *Model) ExplainedVar() []float64 { return append([]float64(nil), m.explainedVar...) }

// Centering returns the convention the training data was prepared with.
func (m *Model) Centering() Centering { return m.centering }

// Method returns the back-end that fitted the model, or Auto for a model
// built by NewModel or Load.
func (m *Model) Method() Method { return m.method }

// Dims returns d, the input width.
func (m *Model) Dims() int { return len(m.mu) }

// K returns the number of components.
func (m *Model) K() int { return len(m.explainedVar) }

// Normalize brings V into the model's frame: V − Mu under the model's
// convention. The result is accepted by ProjectCentered.
func (m *Model) Normalize(V mat.Matrix) (*Centered, error) {
	return NormalizeWith(V, m.mu, m.centering)
}
