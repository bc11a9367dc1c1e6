// SPDX-License-Identifier: MIT

// Package rvine: matrices derived from the natural-order form.
//
// Purpose:
//   - MaxMatrix      — per-column running maximum of labels, top row down.
//   - NeededHFunc1/2 — boolean masks saying which h-function direction a
//     density evaluator must compute per pair-copula edge.
//
// All three consume the natural-order relabeling internally, allocate fresh
// results and leave the receiver untouched. Entries of the maximum matrix
// are natural-order labels, not the receiver's original labels.
package rvine

// MaxMatrix derives the maximum matrix: starting from the natural-order
// form, each cell below the top row becomes the maximum of itself and the
// cell directly above, swept top to bottom so every column carries a
// non-decreasing running maximum. Row 0 is unchanged.
//
// The running maximum identifies the largest label "active" in a column's
// conditioning history at each tree level, which is what evaluation
// algorithms use to find the right pseudo-observations for an edge.
// Complexity: O(d²) after the O(d³) relabeling.
func (m *Matrix) MaxMatrix() [][]int {
	d := m.d
	no := m.InNaturalOrder()
	max := no.Raw()
	for i := 0; i < d-1; i++ {
		for j := 0; j < d-i-1; j++ {
			if max[i][j] > max[i+1][j] {
				max[i+1][j] = max[i][j]
			}
		}
	}
	return max
}

// NeededHFunc1 derives the first-direction h-function mask.
//
// Cell (r, c) is true iff some edge left of column c at tree level r pairs
// with column c's pseudo-observation through a transformed — not raw —
// value: the natural-order label there differs from the running maximum
// while the running maximum equals column c's own label. Everywhere else
// the first h-function result is never consumed and may be skipped.
// Complexity: O(d³).
func (m *Matrix) NeededHFunc1() *BoolMatrix {
	d := m.d
	no := m.InNaturalOrder()
	max := m.MaxMatrix()
	needed := newBoolMatrix(d)
	for i := 1; i < d-1; i++ {
		j := d - i // column i's critical label
		for r := 0; r < j; r++ {
			for c := 0; c < i; c++ {
				if no.at(r, c) != j && max[r][c] == j {
					needed.data[r*d+i] = true
					break
				}
			}
		}
	}
	return needed
}

// NeededHFunc2 derives the second-direction h-function mask.
//
// Except at the very bottom tree level, the second transform is always
// needed to hand a pseudo-observation up to the next tree, so column c is
// true strictly above its critical row. Exactly at the critical row the
// transform is needed only when some row band to the left shows the
// natural-order label and the running maximum agreeing on the column's own
// label — otherwise the already-available value is reused.
// Complexity: O(d³).
func (m *Matrix) NeededHFunc2() *BoolMatrix {
	d := m.d
	no := m.InNaturalOrder()
	max := m.MaxMatrix()
	needed := newBoolMatrix(d)
	for r := 0; r < d-1; r++ {
		needed.data[r*d] = true // first column: every level feeds the next
	}
	for i := 1; i < d-1; i++ {
		j := d - i
		for r := 0; r < d-i; r++ {
			needed.data[r*d+i] = true
		}
		// Critical row: recompute only when matrix and maximum coincide on j
		// somewhere in the band to the left.
		agree := false
		for c := 0; c < i; c++ {
			if no.at(j-1, c) == j && max[j-1][c] == j {
				agree = true
				break
			}
		}
		needed.data[(j-1)*d+i] = agree
	}
	return needed
}
