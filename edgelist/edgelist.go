// SPDX-License-Identifier: MIT
// Package edgelist — EdgeList type and operations.
//
// Contract:
//   - Node ids are 1-based everywhere on the public surface.
//   - Parent sequences are stored sorted ascending and free of the caller's
//     aliasing (copies on the way in, copies on the way out).
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   - Accessors O(1) plus copy cost; HasCycle O(V+E); Relabel O(V+E log E).

package edgelist

import (
	"fmt"
	"sort"
	"strings"
)

// minNodes is the smallest legal graph order.
const minNodes = 1

// EdgeList maps each node to the ordered sequence of its parents.
// The zero value is not usable; construct with New.
type EdgeList struct {
	// parents[i] holds the sorted parent ids of node i+1.
	parents [][]int
}

// New returns an empty edge-list over n nodes (no edges).
// Returns ErrTooFewNodes when n < 1.
func New(n int) (*EdgeList, error) {
	if n < minNodes {
		return nil, fmt.Errorf("New: n=%d < min=%d: %w", n, minNodes, ErrTooFewNodes)
	}

	return &EdgeList{parents: make([][]int, n)}, nil
}

// NodeCount returns the number of nodes.
func (el *EdgeList) NodeCount() int { return len(el.parents) }

// EdgeCount returns the total number of parent pointers across all nodes,
// i.e. the number of directed edges. Complexity: O(V).
func (el *EdgeList) EdgeCount() int {
	var total int
	for _, ps := range el.parents {
		total += len(ps)
	}

	return total
}

// Parents returns a copy of the parent sequence of node (1-based).
// Returns ErrNodeOutOfRange for ids outside 1..NodeCount.
func (el *EdgeList) Parents(node int) ([]int, error) {
	if node < 1 || node > len(el.parents) {
		return nil, fmt.Errorf("Parents: node=%d not in 1..%d: %w", node, len(el.parents), ErrNodeOutOfRange)
	}

	return append([]int(nil), el.parents[node-1]...), nil
}

// SetParents replaces the parent sequence of node (1-based) with a sorted
// copy of ps. Every parent id must lie in 1..NodeCount.
func (el *EdgeList) SetParents(node int, ps []int) error {
	n := len(el.parents)
	if node < 1 || node > n {
		return fmt.Errorf("SetParents: node=%d not in 1..%d: %w", node, n, ErrNodeOutOfRange)
	}
	for _, p := range ps {
		if p < 1 || p > n {
			return fmt.Errorf("SetParents: parent=%d not in 1..%d: %w", p, n, ErrNodeOutOfRange)
		}
	}

	cp := append([]int(nil), ps...)
	sort.Ints(cp)
	el.parents[node-1] = cp

	return nil
}

// Clone returns a deep copy of the edge-list.
func (el *EdgeList) Clone() *EdgeList {
	out := &EdgeList{parents: make([][]int, len(el.parents))}
	for i, ps := range el.parents {
		out.parents[i] = append([]int(nil), ps...)
	}

	return out
}

// Relabel returns a new edge-list with node identities remapped: perm[i] is
// the new 1-based label of node i+1. perm must be a permutation of
// 1..NodeCount, otherwise ErrBadPermutation.
//
// Relabeling changes names only, never structure, so acyclicity of the
// input carries over to the output.
func (el *EdgeList) Relabel(perm []int) (*EdgeList, error) {
	n := len(el.parents)
	if len(perm) != n {
		return nil, fmt.Errorf("Relabel: len(perm)=%d != n=%d: %w", len(perm), n, ErrBadPermutation)
	}
	// A slice of length n over 1..n is a permutation iff every label is
	// in range and seen exactly once.
	seen := make([]bool, n)
	for _, lbl := range perm {
		if lbl < 1 || lbl > n || seen[lbl-1] {
			return nil, fmt.Errorf("Relabel: label=%d repeated or out of 1..%d: %w", lbl, n, ErrBadPermutation)
		}
		seen[lbl-1] = true
	}

	out := &EdgeList{parents: make([][]int, n)}
	for child := 1; child <= n; child++ {
		newChild := perm[child-1]
		ps := el.parents[child-1]
		mapped := make([]int, len(ps))
		for i, p := range ps {
			mapped[i] = perm[p-1]
		}
		sort.Ints(mapped)
		out.parents[newChild-1] = mapped
	}

	return out, nil
}

// HasCycle reports whether the directed graph contains a cycle.
// Edges point parent → child; an iterative three-color DFS over the
// parent lists detects back edges. Complexity: O(V+E), O(V) space.
func (el *EdgeList) HasCycle() bool {
	const (
		white = iota // unvisited
		gray         // on the current DFS stack
		black        // fully explored
	)
	n := len(el.parents)
	color := make([]int, n)

	for start := 0; start < n; start++ {
		if color[start] != white {
			continue
		}
		// Each stack frame tracks the node and how many parents were consumed.
		type frame struct{ node, next int }
		stack := []frame{{node: start}}
		color[start] = gray

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			ps := el.parents[top.node]
			if top.next < len(ps) {
				p := ps[top.next] - 1
				top.next++
				switch color[p] {
				case gray:
					return true
				case white:
					color[p] = gray
					stack = append(stack, frame{node: p})
				}
				continue
			}
			color[top.node] = black
			stack = stack[:len(stack)-1]
		}
	}

	return false
}

// String renders one "node: [parents]" line per node, in node order.
func (el *EdgeList) String() string {
	var b strings.Builder
	for i, ps := range el.parents {
		fmt.Fprintf(&b, "%d: %v\n", i+1, ps)
	}

	return b.String()
}
