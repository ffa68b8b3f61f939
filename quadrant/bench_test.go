// SPDX-License-Identifier: MIT

package quadrant_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/q4/projector"
	"github.com/katalvlaran/q4/quadrant"
)

var sinkResult *quadrant.Result

func BenchmarkSplit(b *testing.B) {
	b.ReportAllocs()
	for _, s := range [][2]int{{256, 16}, {2048, 64}, {4096, 128}} {
		b.Run(fmt.Sprintf("%dx%d", s[0], s[1]), func(b *testing.B) {
			X := randNormal(s[0], s[1], 1337)
			pair, err := projector.Learn(X, projector.WithRank(2))
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				r, err := quadrant.Split(X, pair)
				if err != nil {
					b.Fatal(err)
				}
				sinkResult = r
			}
		})
	}
}
