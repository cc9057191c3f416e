// SPDX-License-Identifier: MIT

// Package coo — presentation helpers. Pure display; nothing here is part
// of the algorithmic contract, but both modes are supported as debugging
// aids: the pretty listing reads like an edge table, the raw dump exposes
// the underlying fields verbatim.

package coo

import (
	"fmt"
	"strconv"
	"strings"
)

// String renders the pretty mode: a header line and one "col row val"
// record per stored entry, columns ordered col, row, val — akin to a
// listing of edges child-first.
func (x *Matrix) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%dx%d sparse matrix (COO, %d-based), nnz=%d\n",
		x.dim[0], x.dim[1], int(x.base), len(x.rows))
	if len(x.rows) == 0 {
		return b.String()
	}
	b.WriteString("col row val\n")
	for k := range x.rows {
		fmt.Fprintf(&b, "%3d %3d %v\n", x.cols[k], x.rows[k], x.vals[k])
	}

	return b.String()
}

// Raw renders the raw mode: the four underlying fields as a flat mapping.
func (x *Matrix) Raw() string {
	var b strings.Builder
	fmt.Fprintf(&b, "rows: %v\n", x.rows)
	fmt.Fprintf(&b, "cols: %v\n", x.cols)
	fmt.Fprintf(&b, "vals: %v\n", x.vals)
	fmt.Fprintf(&b, "dim:  [%d %d]\n", x.dim[0], x.dim[1])
	fmt.Fprintf(&b, "base: %d\n", int(x.base))

	return b.String()
}

// Labels returns the presentation labels "1".."n" used for dense row and
// column headers regardless of the matrix index base.
func Labels(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = strconv.Itoa(i + 1)
	}

	return out
}
