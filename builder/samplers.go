// SPDX-License-Identifier: MIT
// Package builder — draw policies for weights and variances.

package builder

import (
	"math/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

// Sampler draws n values from some distribution using the supplied RNG.
// Implementations must return exactly n values; generators reject any
// other length with ErrSamplerCount.
type Sampler func(rng *rand.Rand, n int) []float64

// UniformSampler draws n independent Uniform(0,1) values. This is the
// default weight and variance policy.
func UniformSampler(rng *rand.Rand, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = rng.Float64()
	}

	return out
}

// FromRander adapts a gonum distribution (distuv.Normal, distuv.Beta,
// distuv.Uniform, ...) into a Sampler. The distribution draws from its
// own source and ignores the generator RNG; for reproducible runs, set
// the distribution's Src field when constructing it.
func FromRander(d distuv.Rander) Sampler {
	if d == nil {
		panic(panicNilSampler)
	}

	return func(_ *rand.Rand, n int) []float64 {
		out := make([]float64, n)
		for i := range out {
			out[i] = d.Rand()
		}

		return out
	}
}
