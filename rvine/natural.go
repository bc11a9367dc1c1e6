// SPDX-License-Identifier: MIT

// Package rvine: natural-order canonicalization.
//
// Natural order means the structural diagonal reads (d, …, 1) column by
// column — equivalently (1, …, d) in build order. All estimation and
// evaluation algorithms downstream assume this canonical labeling; the
// derived matrices in derived.go compute it internally.
package rvine

// naturalLabels returns the target label sequence (d, d-1, …, 1).
func naturalLabels(d int) []int {
	labels := make([]int, d)
	for i := 0; i < d; i++ {
		labels[i] = d - i
	}
	return labels
}

// InNaturalOrder returns the matrix relabeled so that its structural
// diagonal reads (d, …, 1): the current diagonal labels are the old labels,
// (d, …, 1) the new. Applying it to an already canonical matrix returns an
// equal matrix (idempotence).
//
// The receiver is never mutated. Validated matrices always relabel cleanly,
// so no error is surfaced; an impossible lookup failure would be a
// programmer error and panics.
// Complexity: O(d³) worst case.
func (m *Matrix) InNaturalOrder() *Matrix {
	data, err := relabelData(m.data, m.d, m.diagonal(), naturalLabels(m.d))
	if err != nil {
		panic("rvine: internal: validated matrix failed to relabel: " + err.Error())
	}
	return &Matrix{d: m.d, data: data}
}
