// SPDX-License-Identifier: MIT

// Package coo — constructor and validation.
//
// Contract (validation order is part of the API, each step has its own
// sentinel so callers can branch precisely):
//  1. rows, cols, vals share one length          → ErrTripletLength
//  2. dim has exactly two non-negative entries   → ErrBadDim
//  3. the two dim entries are equal (square)     → ErrNonSquare
//  4. base is 0 or 1                             → ErrBadIndexBase
//  5. every index lies in [base, dim-1+base]     → ErrIndexOutOfRange
//
// Two checks of the original interchange contract are enforced by Go's
// type system rather than at runtime: the field set is fixed by the
// Components struct, and rows/cols hold integers while vals holds floats.
// NaN values are accepted as the unknown-weight sentinel.
//
// Complexity: O(nnz) validation, O(nnz) copy.

package coo

import "fmt"

const dimComponents = 2

// New validates c and returns the corresponding sparse matrix. All input
// slices are copied; the caller keeps ownership of its arguments.
func New(c Components, opts ...Option) (*Matrix, error) {
	if len(c.Rows) != len(c.Cols) || len(c.Cols) != len(c.Vals) {
		return nil, fmt.Errorf("New: rows=%d cols=%d vals=%d: %w",
			len(c.Rows), len(c.Cols), len(c.Vals), ErrTripletLength)
	}
	if len(c.Dim) != dimComponents || c.Dim[0] < 0 || c.Dim[1] < 0 {
		return nil, fmt.Errorf("New: dim=%v: %w", c.Dim, ErrBadDim)
	}
	if c.Dim[0] != c.Dim[1] {
		return nil, fmt.Errorf("New: dim=%dx%d: %w", c.Dim[0], c.Dim[1], ErrNonSquare)
	}
	base, err := toIndexBase(c.Base)
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	lo, hi := int(base), c.Dim[0]-1+int(base)
	for k := range c.Rows {
		if c.Rows[k] < lo || c.Rows[k] > hi || c.Cols[k] < lo || c.Cols[k] > hi {
			return nil, fmt.Errorf("New: entry %d at (%d,%d) outside [%d,%d]: %w",
				k, c.Rows[k], c.Cols[k], lo, hi, ErrIndexOutOfRange)
		}
	}

	s := newSettings(opts...)

	return &Matrix{
		rows:  append([]int(nil), c.Rows...),
		cols:  append([]int(nil), c.Cols...),
		vals:  append([]float64(nil), c.Vals...),
		dim:   [2]int{c.Dim[0], c.Dim[1]},
		base:  base,
		warnf: s.warnf,
	}, nil
}

// toIndexBase maps a raw integer onto the IndexBase domain.
func toIndexBase(b int) (IndexBase, error) {
	switch IndexBase(b) {
	case ZeroBased:
		return ZeroBased, nil
	case OneBased:
		return OneBased, nil
	default:
		return 0, fmt.Errorf("base=%d: %w", b, ErrBadIndexBase)
	}
}
