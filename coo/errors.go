// SPDX-License-Identifier: MIT
// Package coo: sentinel error set.
//
// Error policy:
//   - Only package-level sentinels are exposed; callers MUST branch with
//     errors.Is, never string comparison.
//   - Call sites wrap with fmt.Errorf("Method: ...: %w", ErrX) to attach
//     context while preserving the sentinel.
//   - No panics on user-triggered conditions; ErrInternalInvariant marks a
//     library defect, never a user error.

package coo

import "errors"

// ErrTripletLength indicates that the rows, cols and vals sequences do not
// share a common length.
var ErrTripletLength = errors.New("coo: rows/cols/vals length mismatch")

// ErrBadDim indicates that the dim field does not have exactly two
// non-negative components.
var ErrBadDim = errors.New("coo: dim must have exactly two non-negative components")

// ErrNonSquare indicates that a square matrix was required but the given
// dimensions (or dense input) were rectangular.
var ErrNonSquare = errors.New("coo: matrix is not square")

// ErrBadIndexBase indicates an index base outside {0, 1}.
var ErrBadIndexBase = errors.New("coo: index base must be 0 or 1")

// ErrIndexOutOfRange indicates a stored row or column index outside
// [base, dim-1+base].
var ErrIndexOutOfRange = errors.New("coo: row/col index out of range")

// ErrNilMatrix indicates that a nil matrix (receiver or argument) was used.
var ErrNilMatrix = errors.New("coo: nil matrix")

// ErrInternalInvariant indicates a violated internal invariant (mismatched
// triplet accumulators, threshold-count disagreement). Occurrences are
// defects in this package, not caller mistakes.
var ErrInternalInvariant = errors.New("coo: internal invariant violated")
