// SPDX-License-Identifier: MIT
package coo_test

import (
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/dagtools/sparsebn/coo"
)

// benchDense builds a p×p matrix with one stored entry per column.
func benchDense(p int) *mat.Dense {
	d := mat.NewDense(p, p, nil)
	for j := 0; j < p; j++ {
		d.Set((j+1)%p, j, float64(j+1))
	}

	return d
}

func BenchmarkFromDense(b *testing.B) {
	d := benchDense(200)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := coo.FromDense(d, coo.OneBased); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkToDense(b *testing.B) {
	x, err := coo.FromDense(benchDense(200), coo.OneBased)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = x.ToDense(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkTranspose(b *testing.B) {
	x, err := coo.FromDense(benchDense(200), coo.OneBased)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = x.Transpose()
	}
}
