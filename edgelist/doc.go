// SPDX-License-Identifier: MIT

// Package edgelist provides the parent-list encoding of a directed graph:
// for every node, the ordered set of its parents.
//
// Conventions:
//
//   - Node identifiers are ALWAYS 1-based (1..NodeCount). Edge-lists are a
//     modelling-facing representation and are never lowered to the 0-based
//     convention used by low-level numeric code; converters that need a
//     0-based view go through the coo package instead.
//   - Parent sequences are kept sorted ascending; SetParents normalizes.
//   - All mutating-looking operations (Relabel, Clone) return fresh values;
//     accessors return defensive copies.
//
// EdgeList is consumed by the coo converters and produced by the random
// generators in builder. Structure-learning estimators are downstream
// consumers and out of scope here.
package edgelist
