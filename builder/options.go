// SPDX-License-Identifier: MIT
// Package builder — functional options.
//
// Option constructors panic only on nonsensical arguments (programmer
// error, caught at wiring time); every runtime condition surfaces as a
// sentinel error from the generator itself.

package builder

import "math/rand"

// Internal panic messages (no magic strings).
const (
	panicNilRand        = "builder: WithRand: rng must be non-nil"
	panicNilSampler     = "builder: sampler must be non-nil"
	panicBadReflections = "builder: WithReflections: count must be at least 1"
)

// Option mutates the generator configuration. Safe to apply repeatedly;
// later options override earlier ones.
type Option func(*builderConfig)

// WithRand injects the pseudorandom source used for every stochastic
// choice. Panics when rng is nil.
func WithRand(rng *rand.Rand) Option {
	if rng == nil {
		panic(panicNilRand)
	}

	return func(cfg *builderConfig) { cfg.rng = rng }
}

// WithSeed is shorthand for WithRand(rand.New(rand.NewSource(seed))):
// a private, deterministic stream for the call.
func WithSeed(seed int64) Option {
	return func(cfg *builderConfig) { cfg.rng = rand.New(rand.NewSource(seed)) }
}

// WithWeightSampler overrides the Uniform(0,1) default used for edge
// weights in RandomDAG and RandomParams. Panics when s is nil.
func WithWeightSampler(s Sampler) Option {
	if s == nil {
		panic(panicNilSampler)
	}

	return func(cfg *builderConfig) { cfg.weightFn = s }
}

// WithVarianceSampler overrides the Uniform(0,1) default used for node
// variances in RandomParams. Panics when s is nil.
func WithVarianceSampler(s Sampler) Option {
	if s == nil {
		panic(panicNilSampler)
	}

	return func(cfg *builderConfig) { cfg.varianceFn = s }
}

// WithAcyclic controls whether RandomGraph restricts candidates to a
// fixed topological order (row > col), guaranteeing acyclicity by
// construction. Default true.
func WithAcyclic(acyclic bool) Option {
	return func(cfg *builderConfig) { cfg.acyclic = acyclic }
}

// WithSelfLoops admits diagonal pairs as edge candidates. Only observable
// on the cyclic path: the acyclic filter excludes the diagonal anyway.
// Default false.
func WithSelfLoops(loops bool) Option {
	return func(cfg *builderConfig) { cfg.selfLoops = loops }
}

// WithPermutation controls the final uniform relabeling of node
// identities in RandomGraph. Disabling it preserves the lower-triangular
// (retrievable topological) labeling 1..n. Default true.
func WithPermutation(permute bool) Option {
	return func(cfg *builderConfig) { cfg.permute = permute }
}

// WithReflections sets how many random Householder reflections compose
// the orthogonal factor in RandomSPD. Panics when count < 1.
func WithReflections(count int) Option {
	if count < 1 {
		panic(panicBadReflections)
	}

	return func(cfg *builderConfig) { cfg.reflections = count }
}

// WithEigenvalues pins the spectrum of RandomSPD instead of sampling it.
// Shorter-than-n lists are zero-padded; longer lists fail with
// ErrEigenCount at call time. Negative values are accepted without
// validation — the result is then indefinite; supplying a non-negative
// spectrum is the caller's responsibility.
func WithEigenvalues(eigs []float64) Option {
	cp := append([]float64(nil), eigs...)

	return func(cfg *builderConfig) {
		cfg.eigenvalues = cp
		cfg.eigsSet = true
	}
}
