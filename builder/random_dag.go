// SPDX-License-Identifier: MIT
// Package builder — RandomDAG and RandomParams implementations.
//
// RandomDAG pipes a sampled acyclic edge-list through the coo converters
// (edge-list → coordinate form → dense) and then overwrites each
// structural cell — marked NaN by the converter, since edge-lists carry
// no weights — with an independently drawn weight. The overwrite walks
// the dense buffer column-major, matching the converters' canonical
// entry order, so weight k lands on stored entry k.

package builder

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/dagtools/sparsebn/coo"
	"github.com/dagtools/sparsebn/edgelist"
)

const (
	methodRandomDAG    = "RandomDAG"
	methodRandomParams = "RandomParams"
)

// RandomDAG samples an acyclic graph over n nodes with exactly e edges
// and returns its weighted dense adjacency matrix. Weights default to
// Uniform(0,1); override via WithWeightSampler. The acyclic policy is
// forced regardless of WithAcyclic.
func RandomDAG(n, e int, opts ...Option) (*mat.Dense, error) {
	cfg := newBuilderConfig(opts...)
	cfg.acyclic = true

	el, err := randomGraph(n, e, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodRandomDAG, err)
	}

	sp, err := coo.FromEdgeList(el)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodRandomDAG, err)
	}
	dense, err := sp.ToDense()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodRandomDAG, err)
	}

	weights := cfg.weightFn(cfg.rng, e)
	if len(weights) != e {
		return nil, fmt.Errorf("%s: want %d weights, got %d: %w", methodRandomDAG, e, len(weights), ErrSamplerCount)
	}

	// Replace every unknown-weight marker with its draw, column-major.
	k := 0
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			if math.IsNaN(dense.At(i, j)) {
				dense.Set(i, j, weights[k])
				k++
			}
		}
	}

	return dense, nil
}

// RandomParams draws the parameters of a linear structural-equation model
// over the given graph: one weight per edge, in the edge-list's
// enumeration order (child 1..n, parents ascending within each child),
// followed by one variance per node, in node order. Both draws default to
// Uniform(0,1).
func RandomParams(el *edgelist.EdgeList, opts ...Option) (weights, variances []float64, err error) {
	if el == nil {
		return nil, nil, fmt.Errorf("%s: %w", methodRandomParams, ErrNilEdgeList)
	}
	cfg := newBuilderConfig(opts...)
	if cfg.rng == nil {
		return nil, nil, fmt.Errorf("%s: %w", methodRandomParams, ErrNeedRandSource)
	}

	ne, nn := el.EdgeCount(), el.NodeCount()
	weights = cfg.weightFn(cfg.rng, ne)
	if len(weights) != ne {
		return nil, nil, fmt.Errorf("%s: want %d weights, got %d: %w", methodRandomParams, ne, len(weights), ErrSamplerCount)
	}
	variances = cfg.varianceFn(cfg.rng, nn)
	if len(variances) != nn {
		return nil, nil, fmt.Errorf("%s: want %d variances, got %d: %w", methodRandomParams, nn, len(variances), ErrSamplerCount)
	}

	return weights, variances, nil
}
