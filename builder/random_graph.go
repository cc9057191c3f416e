// SPDX-License-Identifier: MIT
// Package builder — RandomGraph implementation.
//
// Canonical model:
//   - Enumerate the off-diagonal cells of the n×n grid as ordered
//     (row, col) candidate pairs, in a stable row-asc/col-asc order.
//   - Acyclic mode retains only row > col: every edge then points from a
//     higher label to a lower one, which fixes the topological order
//     1..n and rules out cycles with no detection pass.
//   - Draw exactly e distinct pairs uniformly without replacement, group
//     them by child column into an edge-list, then (optionally) apply a
//     uniform relabeling. Relabeling renames nodes without touching
//     structure, so acyclicity survives the permutation.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewNodes).
//   - Acyclic mode: 0 ≤ e ≤ n(n−1)/2 (else ErrEdgeBound); the bound is
//     exactly the strictly-lower-triangular cell count.
//   - Cyclic mode: e may exceed that bound; an undersized candidate pool
//     fails with ErrSampleExhausted instead.
//   - cfg.rng must be non-nil for every stochastic path (ErrNeedRandSource).
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity: O(n²) enumeration + O(n²) permutation draw; O(n²) space.
//
// Determinism: fixed enumeration order plus sorted sample indices make
// outcomes reproducible for a fixed seed and option set.

package builder

import (
	"fmt"
	"sort"

	"github.com/dagtools/sparsebn/edgelist"
)

const (
	methodRandomGraph = "RandomGraph"
	minGraphNodes     = 1
)

// pair is one candidate edge: row = parent, col = child.
type pair struct {
	row, col int
}

// RandomGraph samples a directed graph over n nodes with exactly e edges
// and returns it as a 1-based edge-list. Acyclic by default; see the
// package options for the cyclic/self-loop/permutation knobs.
func RandomGraph(n, e int, opts ...Option) (*edgelist.EdgeList, error) {
	cfg := newBuilderConfig(opts...)

	return randomGraph(n, e, cfg)
}

// randomGraph is the config-resolved kernel shared with RandomDAG so a
// single RNG stream covers both structure and weight draws.
func randomGraph(n, e int, cfg builderConfig) (*edgelist.EdgeList, error) {
	// 1) Validate parameters early, zero side effects on invalid input.
	if n < minGraphNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomGraph, n, minGraphNodes, ErrTooFewNodes)
	}
	maxDagEdges := n * (n - 1) / 2
	if e < 0 || (cfg.acyclic && e > maxDagEdges) {
		return nil, fmt.Errorf("%s: e=%d not in 0..%d: %w", methodRandomGraph, e, maxDagEdges, ErrEdgeBound)
	}

	// 2) Trivial single-node graph needs no randomness.
	if n == 1 && e == 0 {
		return edgelist.New(n)
	}

	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", methodRandomGraph, ErrNeedRandSource)
	}

	// 3) Enumerate candidate pairs in a stable row-asc, col-asc order.
	cands := make([]pair, 0, n*n-n)
	for row := 1; row <= n; row++ {
		for col := 1; col <= n; col++ {
			// Loop guard: diagonal cells only when explicitly admitted.
			if row == col && !cfg.selfLoops {
				continue
			}
			// Acyclic filter: keep the strict lower triangle only.
			if cfg.acyclic && row <= col {
				continue
			}
			cands = append(cands, pair{row: row, col: col})
		}
	}
	if e > len(cands) {
		return nil, fmt.Errorf("%s: e=%d > %d candidates: %w", methodRandomGraph, e, len(cands), ErrSampleExhausted)
	}

	// 4) Uniform sample of e distinct pairs, restored to enumeration order
	//    so grouping below is deterministic for a fixed draw.
	chosen := cfg.rng.Perm(len(cands))[:e]
	sort.Ints(chosen)

	// 5) Group sampled pairs by child column into the parent-list form.
	parents := make([][]int, n)
	for _, idx := range chosen {
		p := cands[idx]
		parents[p.col-1] = append(parents[p.col-1], p.row)
	}
	el, err := edgelist.New(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodRandomGraph, err)
	}
	for child := 1; child <= n; child++ {
		if len(parents[child-1]) == 0 {
			continue
		}
		if err = el.SetParents(child, parents[child-1]); err != nil {
			return nil, fmt.Errorf("%s: %w", methodRandomGraph, err)
		}
	}

	// 6) Optional uniform relabeling of node identities.
	if cfg.permute {
		raw := cfg.rng.Perm(n)
		perm := make([]int, n)
		for i, lbl := range raw {
			perm[i] = lbl + 1
		}
		if el, err = el.Relabel(perm); err != nil {
			return nil, fmt.Errorf("%s: %w", methodRandomGraph, err)
		}
	}

	return el, nil
}
