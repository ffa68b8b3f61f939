// SPDX-License-Identifier: MIT

package svdfit_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/q4/svdfit"
)

var sinkModel *svdfit.Model

func BenchmarkFit(b *testing.B) {
	b.ReportAllocs()
	for _, m := range methods {
		for _, s := range [][2]int{{500, 64}, {4000, 128}} {
			b.Run(fmt.Sprintf("%s/%dx%d", m, s[0], s[1]), func(b *testing.B) {
				c, err := svdfit.Normalize(randNormal(s[0], s[1], 1337), svdfit.CenterL2)
				if err != nil {
					b.Fatal(err)
				}
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					model, err := svdfit.FitCentered(c, 16, svdfit.WithMethod(m))
					if err != nil {
						b.Fatal(err)
					}
					sinkModel = model
				}
			})
		}
	}
}
