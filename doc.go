// Package sparsebn is a small statistical-computing toolkit for sparse
// directed-graph (Bayesian network) structures and the synthetic
// structures used to benchmark structure-learning algorithms.
//
// What lives here:
//
//	coo/      — coordinate-format (COO) sparse matrices with explicit
//	            0-based / 1-based index bookkeeping, plus converters
//	            between dense matrices, external triplet formats and
//	            edge-lists
//	edgelist/ — per-node parent-list encoding of a directed graph,
//	            always 1-based
//	builder/  — random structure generators: fixed-edge-count acyclic
//	            graphs, weighted random DAGs, linear-SEM parameter
//	            draws and random symmetric positive-definite matrices
//
// Design principles:
//
//   - Value semantics — every transform returns a fresh instance; no
//     aliasing between callers.
//   - Sentinel errors — each package exposes errors.Is-matchable
//     sentinels; no panics on user input.
//   - Explicit randomness — generators take an injected *rand.Rand via
//     options; there is no hidden global state, so runs are reproducible
//     for a fixed seed.
//
// The COO form is the canonical interchange format: dense adjacency
// matrices and edge-lists convert into it, get transposed / re-indexed /
// queried, and convert back out for whichever downstream consumer needs
// them. Structure learning itself, data I/O and plotting are deliberately
// out of scope.
package sparsebn
