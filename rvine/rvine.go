// SPDX-License-Identifier: MIT

// Package rvine: construction paths for the structure matrix.
//
// Purpose:
//   - New        — explicit d×d matrix, fully validated at the boundary.
//   - NewDVine   — path-structured ("D-vine") matrix built from an ordering;
//     valid by construction, re-validated anyway for uniformity.
//
// Determinism & Policy:
//   - Construction either returns a fully validated matrix or an error;
//     there is no partial result and no best-effort repair.
package rvine

// New constructs an R-vine matrix from explicit rows.
//
// The input must be square with zero cells outside the structural region
// (i+j ≤ d−1), an anti-diagonal that is a permutation of 1..d, and
// below-diagonal columns satisfying the R-vine running-maximum (proximity)
// condition. The rows are copied; callers keep ownership of the input.
//
// Errors: ErrBadShape, ErrNonSquare, ErrNonZeroUpper, ErrNotPermutation,
// ErrStructure.
// Complexity: O(d³) dominated by the proximity check.
func New(rows [][]int) (*Matrix, error) {
	d := len(rows)
	if d == 0 {
		return nil, ErrBadShape
	}
	for i := 0; i < d; i++ {
		if len(rows[i]) != d {
			return nil, ErrNonSquare
		}
	}

	m := &Matrix{d: d, data: make([]int, d*d)}
	for i := 0; i < d; i++ {
		copy(m.data[i*d:(i+1)*d], rows[i])
	}

	if err := validateStructure(m); err != nil {
		return nil, err
	}
	return m, nil
}

// NewDVine constructs the canonical path-structured vine matrix for the
// given variable ordering: each tree of the encoded vine is a path, with
// order[0] and order[d−1] as the path endpoints in the first tree.
//
// The diagonal cell (d−1−i, i) holds order[d−1−i]; the below-diagonal cell
// (d−1−i, j) holds order[i−j−1]. The result is a valid R-vine matrix by
// construction, which makes it a handy reference structure and a test
// oracle for relabeling and canonicalization.
//
// Errors: ErrBadShape if order is empty, ErrNotPermutation if order is not
// a permutation of 1..d.
// Complexity: O(d²).
func NewDVine(order []int) (*Matrix, error) {
	d := len(order)
	if d == 0 {
		return nil, ErrBadShape
	}
	if err := validatePermutation(order); err != nil {
		return nil, err
	}

	m := &Matrix{d: d, data: make([]int, d*d)}
	for i := 0; i < d; i++ {
		m.set(d-1-i, i, order[d-1-i]) // diagonal
	}
	for i := 1; i < d; i++ {
		for j := 0; j < i; j++ {
			m.set(d-1-i, j, order[i-j-1]) // below diagonal
		}
	}

	if err := validateStructure(m); err != nil {
		return nil, err
	}
	return m, nil
}
