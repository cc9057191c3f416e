// SPDX-License-Identifier: MIT

// Package coo — re-indexing, transposition and query operations.
//
// All transforms are pure: the receiver is never mutated and the result
// owns fresh backing slices. Re-indexing to the base the matrix already
// uses is semantically a no-op; it warns (never errors) and returns a
// clone so the caller still receives an independent value.

package coo

import (
	"fmt"
	"math"
)

// warn messages for the redundant re-index paths.
const (
	warnAlreadyZeroBased = "ToZeroBased: matrix is already 0-based; returning unchanged"
	warnAlreadyOneBased  = "ToOneBased: matrix is already 1-based; returning unchanged"
)

// ToZeroBased returns the matrix re-indexed to base 0 by shifting every
// row and column index down by one. dim never changes. Re-indexing a
// matrix already at base 0 warns and returns an unchanged clone.
func (x *Matrix) ToZeroBased() *Matrix {
	if x.base == ZeroBased {
		x.warnf(warnAlreadyZeroBased, "nnz", len(x.rows))
		return x.clone()
	}

	return x.shifted(-1, ZeroBased)
}

// ToOneBased is the symmetric inverse of ToZeroBased: indices shift up by
// one and the base becomes 1.
func (x *Matrix) ToOneBased() *Matrix {
	if x.base == OneBased {
		x.warnf(warnAlreadyOneBased, "nnz", len(x.rows))
		return x.clone()
	}

	return x.shifted(+1, OneBased)
}

// shifted clones the matrix, adds delta to every index and installs base.
func (x *Matrix) shifted(delta int, base IndexBase) *Matrix {
	y := x.clone()
	for k := range y.rows {
		y.rows[k] += delta
		y.cols[k] += delta
	}
	y.base = base

	return y
}

// Transpose returns the matrix with row and column sequences swapped.
// Values are untouched: this transposes the encoded relation, entry by
// entry, and keeps the stored entry order.
func (x *Matrix) Transpose() *Matrix {
	y := x.clone()
	y.rows, y.cols = y.cols, y.rows

	return y
}

// IsZero reports whether the matrix stores no entries.
func (x *Matrix) IsZero() bool { return len(x.rows) == 0 }

// NodeCount returns the number of nodes of the encoded graph, i.e. the
// column dimension. The matrix is square so either axis would do; the
// column axis is canonical because edge-list derivations index by child.
func (x *Matrix) NodeCount() int { return x.dim[1] }

// EdgeCount returns the number of stored entries (edges).
func (x *Matrix) EdgeCount() int { return len(x.rows) }

// EdgeCountThreshold counts entries that are non-negligible: NaN (unknown
// weight) or magnitude above NearZeroTol. The count must equal NNZ — all
// stored entries are required to be non-negligible — and a mismatch is
// reported as ErrInternalInvariant: it signals a defect in a converter,
// not a caller mistake.
func (x *Matrix) EdgeCountThreshold() (int, error) {
	var count int
	for _, v := range x.vals {
		if nonzero(v) {
			count++
		}
	}
	if count != len(x.vals) {
		return 0, fmt.Errorf("EdgeCountThreshold: %d of %d entries above tolerance %g: %w",
			count, len(x.vals), NearZeroTol, ErrInternalInvariant)
	}

	return count, nil
}

// Equal reports whether x and y encode the same triplet sequence, base
// and dimensions. NaN values compare equal to NaN (both mean "unknown").
// Intended for tests and round-trip verification.
func (x *Matrix) Equal(y *Matrix) bool {
	if x == nil || y == nil {
		return x == y
	}
	if x.dim != y.dim || x.base != y.base || len(x.rows) != len(y.rows) {
		return false
	}
	for k := range x.rows {
		if x.rows[k] != y.rows[k] || x.cols[k] != y.cols[k] {
			return false
		}
		if x.vals[k] != y.vals[k] && !(math.IsNaN(x.vals[k]) && math.IsNaN(y.vals[k])) {
			return false
		}
	}

	return true
}
