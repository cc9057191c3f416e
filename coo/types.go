// SPDX-License-Identifier: MIT

// Package coo: domain types. Errors live in errors.go, options in
// options.go, converters in conversions.go per the module conventions.

package coo

// IndexBase is the smallest valid row/column index of a sparse matrix.
type IndexBase int

// The two supported indexing conventions.
const (
	// ZeroBased indexes rows and columns from 0 (numeric-code convention).
	ZeroBased IndexBase = 0
	// OneBased indexes rows and columns from 1 (modelling convention).
	OneBased IndexBase = 1
)

// NearZeroTol is the fixed tolerance below which a stored magnitude is
// treated as structurally zero by the dense converter and the threshold
// edge counter. NaN is always treated as nonzero (unknown weight).
const NearZeroTol = 1e-8

// nonzero reports whether v counts as a stored entry: either an unknown
// weight (NaN) or a magnitude above the near-zero tolerance. The dense
// scanner and the threshold counter MUST share this predicate, otherwise
// the nnz consistency invariant breaks.
func nonzero(v float64) bool {
	return v != v || abs(v) > NearZeroTol
}

// abs avoids importing math for a single call in a hot scan loop.
func abs(v float64) float64 {
	if v < 0 {
		return -v
	}

	return v
}

// Matrix is a square sparse matrix in coordinate (triplet) form.
// Immutable by convention: every transform returns a new instance and all
// accessors copy. The zero value is not usable; construct via New or one
// of the converters.
type Matrix struct {
	rows []int     // row index per stored entry
	cols []int     // column index per stored entry, aligned with rows
	vals []float64 // value per stored entry; NaN = unknown weight
	dim  [2]int    // matrix order, both components equal (square)
	base IndexBase // indexing convention of rows/cols

	warnf WarnFunc // sink for non-fatal warnings (no-op re-index)
}

// Components is the raw five-field construction record accepted by New,
// mirroring the canonical triplet interchange layout. Dim is a slice, not
// an array, so that a malformed component count is a reportable
// validation failure rather than a silent truncation.
type Components struct {
	Rows []int
	Cols []int
	Vals []float64
	Dim  []int
	Base int
}

// NNZ returns the number of stored entries.
func (x *Matrix) NNZ() int { return len(x.rows) }

// Base returns the indexing convention of the matrix.
func (x *Matrix) Base() IndexBase { return x.base }

// Dim returns the (rows, cols) dimensions. Always equal.
func (x *Matrix) Dim() (int, int) { return x.dim[0], x.dim[1] }

// Rows returns a copy of the row-index sequence.
func (x *Matrix) Rows() []int { return append([]int(nil), x.rows...) }

// Cols returns a copy of the column-index sequence.
func (x *Matrix) Cols() []int { return append([]int(nil), x.cols...) }

// Vals returns a copy of the value sequence.
func (x *Matrix) Vals() []float64 { return append([]float64(nil), x.vals...) }

// clone deep-copies the matrix, preserving the configured warn sink.
func (x *Matrix) clone() *Matrix {
	return &Matrix{
		rows:  append([]int(nil), x.rows...),
		cols:  append([]int(nil), x.cols...),
		vals:  append([]float64(nil), x.vals...),
		dim:   x.dim,
		base:  x.base,
		warnf: x.warnf,
	}
}
