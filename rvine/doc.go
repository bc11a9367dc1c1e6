// Package rvine implements the regular-vine (R-vine) structure matrix:
// the compact triangular encoding of which variables are paired at each
// tree level of a vine copula and which conditioning sets apply.
//
// 🚀 What is an R-vine matrix?
//
//	A d×d integer matrix encoding a sequence of d−1 nested trees over d
//	variables. Only the cells with i+j ≤ d−1 are meaningful; the
//	structural "diagonal" runs along the anti-diagonal (d−1−j, j),
//	following the historical convention of the vine-copula literature:
//
//	    3 2 1 1        column j belongs to the variable on its
//	    2 1 2 .        anti-diagonal cell; row t−1 holds the
//	    1 3 . .        partner paired with it in tree t, and the
//	    4 . . .        rows above hold the conditioning labels.
//
// ✨ What the package provides:
//
//   - New / NewDVine — validated construction from an explicit matrix
//     or from a variable ordering (path-shaped "D-vine" reference)
//   - Relabel — pure substitution of one integer labeling for another,
//     failing loudly on unknown labels
//   - InNaturalOrder — canonical relabeling so the diagonal reads
//     (d, …, 1); all derivation algorithms assume this form
//   - MaxMatrix — per-column running maximum of labels, used to locate
//     the right pseudo-observation for each edge
//   - NeededHFunc1 / NeededHFunc2 — boolean masks telling a density
//     evaluator which conditional (h-function) transforms it must
//     compute and which it may reuse from a sibling edge
//
// Every operation is a pure function: derivations allocate fresh
// results and never mutate the receiver. Malformed structures are
// rejected at construction with the package sentinel errors — there is
// no best-effort repair.
//
// Complexity: all derivations are O(d²) or O(d³); memory O(d²).
package rvine
