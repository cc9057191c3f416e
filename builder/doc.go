// SPDX-License-Identifier: MIT

// Package builder provides random structure generators for synthetic
// benchmarking of structure-learning algorithms:
//
//   - RandomGraph  — directed graphs with an exact edge count, acyclic by
//     construction (fixed topological order) unless configured otherwise
//   - RandomDAG    — weighted dense adjacency matrices over random DAGs
//   - RandomParams — per-edge weights and per-node variances for a linear
//     structural-equation model over a given graph
//   - RandomSPD    — random symmetric positive-semidefinite matrices via
//     composed Householder reflections
//
// Randomness is explicit: every generator takes an injected *rand.Rand
// through WithRand or WithSeed and fails with ErrNeedRandSource when none
// is supplied. There is no package-level RNG state, so results are
// reproducible for a fixed seed and safe to run in parallel.
//
// Weight and variance draws default to Uniform(0,1); any gonum
// distribution can be plugged in through FromRander.
package builder
