// Package govine is your in-memory toolkit for building and evaluating
// regular-vine (R-vine) copula models — from the structure matrix up to
// the pair-copula density factorization.
//
// 🚀 What is govine?
//
//	A pure-Go library that decomposes multivariate dependence into a
//	cascade of bivariate ("pair") copulas organized by a vine structure:
//		• Structure matrices: the triangular R-vine encoding, D-vine
//		  construction, natural-order canonicalization
//		• Derived matrices: running-maximum matrix and the two
//		  needed-h-function masks that tell an evaluator which
//		  conditional transforms it may skip
//		• Pair copulas: independence, Gaussian, Clayton, Gumbel and
//		  Frank families with h-functions, inverses, rotations and
//		  Kendall-tau conversions
//		• Density evaluation: batch R-vine pdf / log-likelihood over
//		  pseudo-observations
//
// ✨ Why choose govine?
//
//   - Deterministic – every routine is a pure function of its inputs
//   - Strict at the boundary – malformed structures are rejected at
//     construction, never repaired or silently accepted
//   - Pure Go – numerics via gonum, no cgo, no hidden state
//
// Everything is organized under three subpackages:
//
//	rvine/ — R-vine structure matrix, relabeling, derived matrices
//	bicop/ — bivariate pair-copula families and their h-functions
//	vine/  — vine-density evaluation composing rvine and bicop
//
// Quick ASCII example (a 4-variable D-vine — every tree is a path):
//
//	T1:  1 ── 2 ── 3 ── 4
//	T2:  (1,3|2) ── (2,4|3)
//	T3:  (1,4|2,3)
//
// Dive into the package docs and example tests for full walkthroughs.
//
//	go get github.com/katalvlaran/govine
package govine
