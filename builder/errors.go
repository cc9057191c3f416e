// SPDX-License-Identifier: MIT
// Package builder: sentinel errors for the generator package.
//
// Error policy (explicit and strict):
//   - Only sentinel variables are exposed; callers branch via errors.Is.
//   - Implementations attach context with %w wrapping at call sites.
//   - Generators never panic at runtime; validation panics are confined to
//     option constructors (WithX...).

package builder

import "errors"

// ErrTooFewNodes indicates that a node-count parameter is below the
// minimum of the requested generator (1 for graphs, 2 for SPD matrices).
var ErrTooFewNodes = errors.New("builder: node count too small")

// ErrEdgeBound indicates that a requested edge count is negative or
// exceeds the maximum simple-DAG edge count n(n-1)/2, the number of
// strictly-lower-triangular off-diagonal cells.
var ErrEdgeBound = errors.New("builder: edge count out of bounds")

// ErrSampleExhausted indicates that the candidate pair pool is smaller
// than the requested sample size, so drawing without replacement cannot
// proceed (reachable only on the cyclic path; the acyclic path is guarded
// by ErrEdgeBound first).
var ErrSampleExhausted = errors.New("builder: candidate pool exhausted")

// ErrNeedRandSource indicates that a stochastic generator was invoked
// without a non-nil *rand.Rand (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrEigenCount indicates that more eigenvalues than nodes were supplied
// to RandomSPD. Shorter lists are padded with zeros instead.
var ErrEigenCount = errors.New("builder: too many eigenvalues")

// ErrNilEdgeList indicates that a nil edge-list was passed to a generator
// that parameterizes an existing graph.
var ErrNilEdgeList = errors.New("builder: edge-list is nil")

// ErrSamplerCount indicates that a caller-supplied sampler returned a
// slice of the wrong length. This breaks the alignment between draws and
// their targets, so it is rejected rather than truncated or recycled.
var ErrSamplerCount = errors.New("builder: sampler returned wrong number of draws")
