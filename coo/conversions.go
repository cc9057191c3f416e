// SPDX-License-Identifier: MIT

// Package coo — converters between the coordinate form and its three
// boundary representations: gonum dense matrices, external triplet-format
// sparse structures, and edge-lists.
//
// Ordering contract (correctness-critical, not stylistic): index
// extraction and value extraction MUST traverse cells in the same order or
// rows/cols/vals come out misaligned. FromDense walks cells column-major
// (the natural flatten order of the column-major numeric ecosystem this
// format interchanges with) and collects indices and values in a single
// pass. FromNonZero canonicalizes whatever order the source iterates in
// back to column-major, so both converters yield bit-identical triplets
// for the same logical content and requested base.

package coo

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/dagtools/sparsebn/edgelist"
)

// TripletMatrix is the native sparse-triplet boundary: any 0-based sparse
// structure that can report its shape and visit its stored entries. The
// triplet types of github.com/james-bowman/sparse (COO, CSR, DOK)
// satisfy it. Treated as an opaque input format only.
type TripletMatrix interface {
	Dims() (r, c int)
	DoNonZero(fn func(i, j int, v float64))
}

// FromDense scans a square gonum matrix and returns its coordinate form
// at the requested base. A cell is stored when it is NaN or its magnitude
// exceeds NearZeroTol. Cells are visited column-major; see the ordering
// contract in the package header.
//
// Errors: ErrNilMatrix for nil input, ErrNonSquare for rectangular input,
// ErrBadIndexBase for a base outside {0, 1}.
// Complexity: O(p²) scan, O(nnz) storage.
func FromDense(m mat.Matrix, base IndexBase, opts ...Option) (*Matrix, error) {
	if m == nil {
		return nil, fmt.Errorf("FromDense: %w", ErrNilMatrix)
	}
	r, c := m.Dims()
	if r != c {
		return nil, fmt.Errorf("FromDense: dims=%dx%d: %w", r, c, ErrNonSquare)
	}
	if base != ZeroBased && base != OneBased {
		return nil, fmt.Errorf("FromDense: base=%d: %w", int(base), ErrBadIndexBase)
	}

	var (
		rows, cols []int
		vals       []float64
	)
	// Single column-major pass collecting indices and values together.
	for j := 0; j < c; j++ {
		for i := 0; i < r; i++ {
			if v := m.At(i, j); nonzero(v) {
				rows = append(rows, i+1)
				cols = append(cols, j+1)
				vals = append(vals, v)
			}
		}
	}

	return assemble(rows, cols, vals, r, base, opts...)
}

// FromNonZero copies the stored triplets of an external 0-based sparse
// structure — no scanning — then re-indexes exactly like FromDense. The
// source's iteration order is canonicalized to column-major so the result
// is bit-identical to FromDense of the same logical matrix.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrBadIndexBase.
// Complexity: O(nnz log nnz) for the canonical sort.
func FromNonZero(m TripletMatrix, base IndexBase, opts ...Option) (*Matrix, error) {
	if m == nil {
		return nil, fmt.Errorf("FromNonZero: %w", ErrNilMatrix)
	}
	r, c := m.Dims()
	if r != c {
		return nil, fmt.Errorf("FromNonZero: dims=%dx%d: %w", r, c, ErrNonSquare)
	}
	if base != ZeroBased && base != OneBased {
		return nil, fmt.Errorf("FromNonZero: base=%d: %w", int(base), ErrBadIndexBase)
	}

	var (
		rows, cols []int
		vals       []float64
	)
	m.DoNonZero(func(i, j int, v float64) {
		rows = append(rows, i+1)
		cols = append(cols, j+1)
		vals = append(vals, v)
	})

	// Canonical column-major entry order: sort by (col, row). Sources such
	// as COO iterate in insertion order, CSR in row-major order.
	order := make([]int, len(rows))
	for k := range order {
		order[k] = k
	}
	sort.Slice(order, func(a, b int) bool {
		ka, kb := order[a], order[b]
		if cols[ka] != cols[kb] {
			return cols[ka] < cols[kb]
		}
		return rows[ka] < rows[kb]
	})
	sr := make([]int, len(rows))
	sc := make([]int, len(cols))
	sv := make([]float64, len(vals))
	for k, idx := range order {
		sr[k], sc[k], sv[k] = rows[idx], cols[idx], vals[idx]
	}

	return assemble(sr, sc, sv, r, base, opts...)
}

// FromEdgeList converts a parent-list graph to its coordinate form:
// (row=parent, col=child) per parent pointer, values all NaN since
// edge-lists carry no weights. The result is always 1-based — edge-lists
// never interoperate with 0-based numeric code directly.
//
// A length mismatch between the accumulated sequences is unreachable
// given the construction loop; any occurrence is surfaced as
// ErrInternalInvariant so the defect is caught, not masked.
func FromEdgeList(el *edgelist.EdgeList, opts ...Option) (*Matrix, error) {
	if el == nil {
		return nil, fmt.Errorf("FromEdgeList: %w", ErrNilMatrix)
	}

	n := el.NodeCount()
	var (
		rows, cols []int
	)
	for child := 1; child <= n; child++ {
		ps, err := el.Parents(child)
		if err != nil {
			return nil, fmt.Errorf("FromEdgeList: %w", err)
		}
		for _, parent := range ps {
			rows = append(rows, parent)
			cols = append(cols, child)
		}
	}
	if len(rows) != len(cols) {
		return nil, fmt.Errorf("FromEdgeList: rows=%d cols=%d: %w",
			len(rows), len(cols), ErrInternalInvariant)
	}

	vals := make([]float64, len(rows))
	for k := range vals {
		vals[k] = math.NaN()
	}

	return assemble(rows, cols, vals, n, OneBased, opts...)
}

// ToDense materializes the matrix as a zero-filled gonum dense matrix with
// stored entries written at their (1-based view) positions. Unset cells
// stay zero. Presentation labels for the axes come from Labels.
func (x *Matrix) ToDense() (*mat.Dense, error) {
	if x == nil {
		return nil, fmt.Errorf("ToDense: %w", ErrNilMatrix)
	}

	y := x
	if y.base == ZeroBased {
		y = y.shifted(+1, OneBased) // real conversion, no warning
	}

	d := mat.NewDense(y.dim[0], y.dim[1], nil)
	for k := range y.rows {
		d.Set(y.rows[k]-1, y.cols[k]-1, y.vals[k])
	}

	return d, nil
}

// assemble builds a 1-based matrix from pre-validated triplets and lowers
// it to base 0 only when requested, mirroring the two-step conversion
// contract (construct canonical 1-based form, then re-index).
func assemble(rows, cols []int, vals []float64, p int, base IndexBase, opts ...Option) (*Matrix, error) {
	s := newSettings(opts...)
	x := &Matrix{
		rows:  rows,
		cols:  cols,
		vals:  vals,
		dim:   [2]int{p, p},
		base:  OneBased,
		warnf: s.warnf,
	}
	if base == ZeroBased {
		x = x.ToZeroBased()
	}

	return x, nil
}
