// SPDX-License-Identifier: MIT
package builder_test

import (
	"math/rand"
	"testing"

	"github.com/dagtools/sparsebn/builder"
)

func BenchmarkRandomGraph(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := builder.RandomGraph(50, 100, builder.WithRand(rng)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRandomSPD(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := builder.RandomSPD(30, builder.WithRand(rng)); err != nil {
			b.Fatal(err)
		}
	}
}
