// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/q4/matrix"
)

func ExampleCenterColumns() {
	X := mat.NewDense(3, 2, []float64{
		1, 10,
		2, 20,
		3, 60,
	})
	Xc, means, err := matrix.CenterColumns(X)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("means:", means)
	fmt.Println("row 2:", Xc.RawRowView(2))
	// Output:
	// means: [2 30]
	// row 2: [1 30]
}

func ExampleNormalizeRowsL2() {
	X := mat.NewDense(2, 2, []float64{0, 4, 0, 0})
	Y, norms, err := matrix.NormalizeRowsL2(X, matrix.DefaultNormFloor)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("norms:", norms)
	fmt.Println("row 0:", Y.RawRowView(0))
	fmt.Println("row 1:", Y.RawRowView(1))
	// Output:
	// norms: [4 0]
	// row 0: [0 1]
	// row 1: [0 0]
}
