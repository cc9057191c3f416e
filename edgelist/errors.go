// SPDX-License-Identifier: MIT
// Package edgelist: sentinel error set.
//
// Error policy (same rules as the rest of the module):
//   - Only package-level sentinels are exposed; callers branch with errors.Is.
//   - Call sites attach context via fmt.Errorf("Method: ...: %w", ErrX).
//   - No panics on user input.

package edgelist

import "errors"

// ErrTooFewNodes indicates a node count below the allowed minimum of 1.
var ErrTooFewNodes = errors.New("edgelist: node count must be at least 1")

// ErrNodeOutOfRange indicates a node id outside 1..NodeCount.
var ErrNodeOutOfRange = errors.New("edgelist: node id out of range")

// ErrBadPermutation indicates that a relabeling slice is not a permutation
// of 1..NodeCount.
var ErrBadPermutation = errors.New("edgelist: invalid permutation")
