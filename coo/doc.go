// SPDX-License-Identifier: MIT

// Package coo implements the coordinate-format (COO) sparse matrix used as
// the canonical interchange representation for sparse DAG structures.
//
// A coo.Matrix stores the nonzero entries of a square matrix as parallel
// (row, col, val) sequences plus the matrix order and an index base:
//
//   - index base 1 — the modelling-facing convention (edge-lists, labels)
//   - index base 0 — the convention of low-level numeric code
//
// A NaN value is a legitimate "unknown weight" sentinel: it marks an edge
// whose weight has not yet been estimated, distinct from a structural zero.
//
// Converters in this package move between:
//
//   - gonum dense matrices (FromDense / Matrix.ToDense),
//   - external triplet-format sparse structures such as the types in
//     github.com/james-bowman/sparse (FromNonZero),
//   - edge-lists (FromEdgeList, always producing a 1-based matrix).
//
// All transforms follow value semantics: the receiver is never mutated and
// every result owns its backing storage. Re-indexing to the base a matrix
// already uses is a no-op that emits a warning (see WithWarnHandler), not
// an error.
package coo
