// SPDX-License-Identifier: MIT
// Package: rvine
//
// Purpose:
//   - Provide a single, canonical source of truth for structural validation.
//   - Keep constructors minimal by delegating all checks here.
//   - Return plain sentinel errors wrapped with a call-site tag, so call
//     sites stay uniform and tests match via errors.Is.
//
// Determinism & Performance:
//   - All checks are pure and deterministic.
//   - The proximity check is O(d³) worst case; everything else is O(d²).
//
// Note:
//   - validateStructure runs a fixed sequence: upper region → diagonal
//     permutation → entry range → column discipline → proximity. The first
//     violation wins; tests pin this priority.

package rvine

import "fmt"

// validatorErrorf wraps an underlying sentinel with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validatePermutation checks that seq is a permutation of 1..len(seq).
// Returns ErrNotPermutation on any duplicate or out-of-range value.
// Complexity: O(d).
func validatePermutation(seq []int) error {
	seen := make([]bool, len(seq)+1)
	for _, v := range seq {
		if v < 1 || v > len(seq) || seen[v] {
			return ErrNotPermutation
		}
		seen[v] = true
	}
	return nil
}

// validateStructure verifies that m encodes a proper R-vine:
//
//  1. cells outside the structural region (i+j > d−1) are zero;
//  2. the structural diagonal is a permutation of 1..d;
//  3. every structural entry is a label in 1..d;
//  4. in natural order, column j holds labels from 1..d−1−j with no
//     duplicates within the column;
//  5. the proximity (running-maximum) condition holds: the conditioned set
//     of every tree-t edge (t ≥ 2) reappears as the full variable set of a
//     tree-(t−1) edge in the column owned by its largest label.
//
// Checks 4–5 run on the natural-order relabeling, which exists whenever
// 2–3 hold. Complexity: O(d³).
func validateStructure(m *Matrix) error {
	d := m.d

	// 1. The region above the anti-diagonal must be zero by convention.
	for i := 0; i < d; i++ {
		for j := d - i; j < d; j++ {
			if m.at(i, j) != 0 {
				return validatorErrorf("validateStructure: upper region", ErrNonZeroUpper)
			}
		}
	}

	// 2. Structural diagonal must be a permutation of 1..d.
	if err := validatePermutation(m.diagonal()); err != nil {
		return validatorErrorf("validateStructure: diagonal", err)
	}

	// 3. Every structural entry must be a variable label.
	for i := 0; i < d; i++ {
		for j := 0; j < d-i; j++ {
			if v := m.at(i, j); v < 1 || v > d {
				return validatorErrorf("validateStructure: entry range", ErrStructure)
			}
		}
	}

	// Relabel to natural order; guaranteed to succeed after checks 2-3.
	no, err := relabelData(m.data, d, m.diagonal(), naturalLabels(d))
	if err != nil {
		return validatorErrorf("validateStructure: natural order", err)
	}

	// 4. Column discipline: labels below the diagonal of column j must be
	// strictly smaller than the column's own label d-j and pairwise distinct.
	seen := make([]bool, d+1)
	for j := 0; j < d-1; j++ {
		for k := range seen {
			seen[k] = false
		}
		for i := 0; i < d-1-j; i++ {
			v := no[i*d+j]
			if v < 1 || v > d-1-j || seen[v] {
				return validatorErrorf("validateStructure: column discipline", ErrStructure)
			}
			seen[v] = true
		}
	}

	// 5. Proximity condition, checked per edge from tree 2 upward.
	return validateProximity(no, d)
}

// validateProximity checks the running-maximum property on the natural-order
// data: for the tree-(i+1) edge in column j — conditioned set
// S = {no(0,j), …, no(i,j)} — the same set must equal {d−k} joined with the
// conditioned set of the tree-i edge in column k = d − max(S). Violations
// mean the encoded trees are not nested and pseudo-observations for the edge
// could never be produced by any lower tree.
// Complexity: O(d³) with an O(d) scratch table.
func validateProximity(no []int, d int) error {
	inSet := make([]bool, d+1)
	for j := 0; j <= d-3; j++ {
		for i := 1; i <= d-2-j; i++ {
			// Collect S and its maximum.
			for k := range inSet {
				inSet[k] = false
			}
			maxLabel := 0
			for r := 0; r <= i; r++ {
				v := no[r*d+j]
				inSet[v] = true
				if v > maxLabel {
					maxLabel = v
				}
			}

			// The largest label of S owns column k. Column discipline makes
			// the i+1 labels of S distinct, so maxLabel ≥ i+1 and the
			// matching tree-i edge row always exists in column k.
			k := d - maxLabel

			// Compare S against {d-k} ∪ {no(0,k), …, no(i-1,k)}. Column k's
			// own label d-k equals max(S) by choice of k, and column
			// discipline guarantees the i remaining labels are distinct and
			// below d-k, so membership of each in S implies set equality.
			for r := 0; r < i; r++ {
				if !inSet[no[r*d+k]] {
					return validatorErrorf("validateProximity", ErrStructure)
				}
			}
		}
	}
	return nil
}
