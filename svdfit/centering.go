// SPDX-License-Identifier: MIT

package svdfit

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/q4/matrix"
)

const opNormalize = "Normalize"

// Centering is the convention used to prepare data before fitting.
type Centering int

const (
	// Center subtracts the column means.
	Center Centering = iota
	// CenterL2 subtracts the column means, then scales every row to unit L2
	// norm (rows with norm below matrix.DefaultNormFloor are divided by the floor).
	CenterL2
)

// String returns the persisted name: "center" or "center_l2".
func (c Centering) String() string {
	switch c {
	case Center:
		return "center"
	case CenterL2:
		return "center_l2"
	default:
		return fmt.Sprintf("Centering(%d)", int(c))
	}
}

// ParseCentering is the inverse of String. The empty string maps to Center.
func ParseCentering(s string) (Centering, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "center":
		return Center, nil
	case "center_l2":
		return CenterL2, nil
	default:
		return Center, fmt.Errorf("%w: %q", ErrUnknownCentering, s)
	}
}

// Centered is data prepared under a known centering. It is the token that
// ProjectCentered checks against a model, so a projection can never silently
// mix conventions. Immutable.
type Centered struct {
	data       *mat.Dense
	mu         []float64
	convention Centering
}

// Data returns a copy of the prepared matrix.
func (c *Centered) Data() *mat.Dense { return mat.DenseCopyOf(c.data) }

// Mu returns a copy of the centering vector.
func (c *Centered) Mu() []float64 { return append([]float64(nil), c.mu...) }

// Convention returns the centering convention.
func (c *Centered) Convention() Centering { return c.convention }

// Normalize centers X by its own column means under convention conv.
// Complexity: O(n·d).
func Normalize(X mat.Matrix, conv Centering) (*Centered, error) {
	mu, err := matrix.ColumnMeans(X)
	if err != nil {
		return nil, svdfitErrorf(opNormalize, err)
	}

	return NormalizeWith(X, mu, conv)
}

// NormalizeWith prepares X with a given centering vector mu, as needed to
// bring new data into the frame of an existing model (see Model.Normalize).
func NormalizeWith(X mat.Matrix, mu []float64, conv Centering) (*Centered, error) {
	if conv != Center && conv != CenterL2 {
		return nil, svdfitErrorf(opNormalize, fmt.Errorf("%w: %v", ErrUnknownCentering, conv))
	}
	if err := matrix.ValidateInput(X); err != nil {
		return nil, svdfitErrorf(opNormalize, err)
	}
	if err := validateVector(mu); err != nil {
		return nil, svdfitErrorf(opNormalize, err)
	}
	Y, err := matrix.SubtractColumnMeans(X, mu)
	if err != nil {
		return nil, svdfitErrorf(opNormalize, err)
	}
	if conv == CenterL2 {
		if Y, _, err = matrix.NormalizeRowsL2(Y, matrix.DefaultNormFloor); err != nil {
			return nil, svdfitErrorf(opNormalize, err)
		}
	}

	return &Centered{data: Y, mu: append([]float64(nil), mu...), convention: conv}, nil
}

// sameCentering reports whether c was prepared exactly as the model expects.
func (c *Centered) sameCentering(m *Model) bool {
	return c.convention == m.centering && floats.Equal(c.mu, m.mu)
}

// validateVector rejects empty or non-finite vectors.
func validateVector(v []float64) error {
	if len(v) == 0 {
		return matrix.ErrEmpty
	}
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return matrix.ErrNaNInf
		}
	}

	return nil
}
