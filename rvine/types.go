// SPDX-License-Identifier: MIT

// Package rvine: domain types. This file contains ONLY the matrix containers
// and their O(1)/O(d²) accessors; construction and validation live in
// rvine.go and validators.go, derivations in natural.go and derived.go.
package rvine

// Matrix is a validated d×d R-vine structure matrix.
//
// Storage is a flat row-major []int. Cells with i+j ≤ d−1 carry structure;
// all other cells are zero. The structural diagonal sits on the
// anti-diagonal: cell (d−1−j, j) holds the variable owning column j.
// Instances are immutable after construction: every derivation returns a
// freshly allocated result and accessors hand out copies.
type Matrix struct {
	d    int   // dimension (number of modeled variables)
	data []int // row-major d×d backing store
}

// Dim returns the matrix dimension d.
// Complexity: O(1).
func (m *Matrix) Dim() int { return m.d }

// at reads cell (i, j) without bounds checks. Callers must guarantee
// 0 ≤ i, j < d; this is the hot path of every derivation.
func (m *Matrix) at(i, j int) int { return m.data[i*m.d+j] }

// set writes cell (i, j) without bounds checks; used during construction only.
func (m *Matrix) set(i, j, v int) { m.data[i*m.d+j] = v }

// At retrieves the entry at position (i, j).
// Returns ErrOutOfRange if i or j is outside [0, d).
// Complexity: O(1).
func (m *Matrix) At(i, j int) (int, error) {
	if m == nil {
		return 0, ErrNilMatrix
	}
	if i < 0 || i >= m.d || j < 0 || j >= m.d {
		return 0, ErrOutOfRange
	}
	return m.at(i, j), nil
}

// Raw returns a deep copy of the structure matrix as d row slices.
// Mutating the result never affects the receiver.
// Complexity: O(d²).
func (m *Matrix) Raw() [][]int {
	rows := make([][]int, m.d)
	for i := 0; i < m.d; i++ {
		rows[i] = make([]int, m.d)
		copy(rows[i], m.data[i*m.d:(i+1)*m.d])
	}
	return rows
}

// Order returns the variable order used to build the structure: Order()[k]
// is the variable at build position k. It is the structural diagonal read
// from the bottom-left cell upward, reversed — a permutation of 1..d.
// Complexity: O(d).
func (m *Matrix) Order() []int {
	order := make([]int, m.d)
	for k := 0; k < m.d; k++ {
		order[k] = m.at(k, m.d-1-k)
	}
	return order
}

// diagonal returns the structural diagonal read column by column (left to
// right), i.e. the reverse of Order. This is the label sequence relabeling
// operates against.
func (m *Matrix) diagonal() []int {
	diag := make([]int, m.d)
	for j := 0; j < m.d; j++ {
		diag[j] = m.at(m.d-1-j, j)
	}
	return diag
}

// Clone returns an independent deep copy of the matrix.
// Complexity: O(d²).
func (m *Matrix) Clone() *Matrix {
	data := make([]int, len(m.data))
	copy(data, m.data)
	return &Matrix{d: m.d, data: data}
}

// BoolMatrix is a d×d boolean matrix produced by the needed-h-function
// derivations. The same triangular convention applies: cells outside the
// structural region are always false.
type BoolMatrix struct {
	d    int
	data []bool
}

// Dim returns the matrix dimension d.
// Complexity: O(1).
func (b *BoolMatrix) Dim() int { return b.d }

// At retrieves the flag at position (i, j).
// Returns ErrOutOfRange if i or j is outside [0, d).
// Complexity: O(1).
func (b *BoolMatrix) At(i, j int) (bool, error) {
	if i < 0 || i >= b.d || j < 0 || j >= b.d {
		return false, ErrOutOfRange
	}
	return b.data[i*b.d+j], nil
}

// Raw returns a deep copy of the flags as d row slices.
// Complexity: O(d²).
func (b *BoolMatrix) Raw() [][]bool {
	rows := make([][]bool, b.d)
	for i := 0; i < b.d; i++ {
		rows[i] = make([]bool, b.d)
		copy(rows[i], b.data[i*b.d:(i+1)*b.d])
	}
	return rows
}

// newBoolMatrix allocates an all-false d×d BoolMatrix.
func newBoolMatrix(d int) *BoolMatrix {
	return &BoolMatrix{d: d, data: make([]bool, d*d)}
}
