// SPDX-License-Identifier: MIT
// Package builder — internal configuration and deterministic defaults.
//
// Design:
//   - builderConfig is the single source of truth for all generator knobs.
//   - A config is resolved ONCE per public call and threaded through every
//     internal phase, so a seeded RNG advances through graph sampling,
//     weight draws and permutation in a single deterministic stream.
//   - Defaults are deterministic and documented; no globals.

package builder

import "math/rand"

// Deterministic defaults (named, no magic numbers).
const (
	defaultAcyclic     = true  // retain row > col pairs: acyclic by construction
	defaultSelfLoops   = false // drop diagonal pairs
	defaultPermute     = true  // uniformly relabel node identities
	defaultReflections = 10    // Householder reflections composed into Q
)

// builderConfig aggregates all knobs used by the generators.
// Passed by value to implementations (immutable to callers).
type builderConfig struct {
	// RNG for all stochastic choices; nil means "not supplied" and is
	// rejected with ErrNeedRandSource by stochastic generators.
	rng *rand.Rand

	// Weight and variance draw policies.
	weightFn   Sampler
	varianceFn Sampler

	// Graph sampling policy.
	acyclic   bool
	selfLoops bool
	permute   bool

	// SPD policy.
	reflections int
	eigenvalues []float64 // supplied spectrum; nil with eigsSet=false ⇒ sample
	eigsSet     bool
}

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order (last wins). Complexity: O(len(opts)).
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		rng:         nil,
		weightFn:    UniformSampler,
		varianceFn:  UniformSampler,
		acyclic:     defaultAcyclic,
		selfLoops:   defaultSelfLoops,
		permute:     defaultPermute,
		reflections: defaultReflections,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
