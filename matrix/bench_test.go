// SPDX-License-Identifier: MIT

// Package matrix_test provides benchmarks for the statistics kernels,
// using deterministic random fill.
package matrix_test

import (
	"fmt"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/q4/matrix"
)

// benchShapes are the (rows, cols) shapes to benchmark.
var benchShapes = [][2]int{{256, 64}, {2048, 64}, {2048, 512}}

// sinks to defeat dead-code elimination
var (
	sinkM *mat.Dense
	sinkF float64
)

func BenchmarkCenterColumns(b *testing.B) {
	b.ReportAllocs()
	for _, s := range benchShapes {
		b.Run(fmt.Sprintf("%dx%d", s[0], s[1]), func(b *testing.B) {
			X := randNormal(s[0], s[1], 1337)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, _, err := matrix.CenterColumns(X)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkNormalizeRowsL2(b *testing.B) {
	b.ReportAllocs()
	for _, s := range benchShapes {
		b.Run(fmt.Sprintf("%dx%d", s[0], s[1]), func(b *testing.B) {
			X := randNormal(s[0], s[1], 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, _, err := matrix.NormalizeRowsL2(X, matrix.DefaultNormFloor)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkFrobeniusSq(b *testing.B) {
	b.ReportAllocs()
	for _, s := range benchShapes {
		b.Run(fmt.Sprintf("%dx%d", s[0], s[1]), func(b *testing.B) {
			X := randNormal(s[0], s[1], 11)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkF = matrix.FrobeniusSq(X)
			}
		})
	}
}
