// SPDX-License-Identifier: MIT
// Package rvine: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the rvine
// package. All entry points MUST return these sentinels and tests MUST check
// them via errors.Is. No routine panics on user-triggered error conditions;
// panics are reserved for programmer errors in private helpers.

package rvine

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "rvine: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the call site — callers still match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil/shape -> dimension mismatch -> upper region -> diagonal permutation
// -> entry range/structure -> label lookup.

var (
	// ErrNilMatrix indicates that a nil *Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("rvine: nil matrix")

	// ErrBadShape is returned when the requested dimension is invalid (d <= 0)
	// or an input slice is empty where a matrix is required.
	ErrBadShape = errors.New("rvine: invalid shape")

	// ErrNonSquare signals that the input rows do not form a square matrix
	// (including ragged rows).
	ErrNonSquare = errors.New("rvine: matrix is not square")

	// ErrDimensionMismatch indicates label sequences or sub-blocks whose sizes
	// disagree with the matrix dimension.
	ErrDimensionMismatch = errors.New("rvine: dimension mismatch")

	// ErrNonZeroUpper signals a non-zero entry outside the structural region
	// (cells with i+j > d-1 must be zero by convention).
	ErrNonZeroUpper = errors.New("rvine: non-zero entry above the anti-diagonal")

	// ErrNotPermutation signals that the structural diagonal is not a
	// permutation of 1..d.
	ErrNotPermutation = errors.New("rvine: diagonal is not a permutation of 1..d")

	// ErrStructure signals that the below-diagonal entries violate the R-vine
	// structure: an entry out of label range, a duplicate within a column, or
	// a conditioned set that does not reappear as an edge one tree below
	// (running-maximum / proximity condition).
	ErrStructure = errors.New("rvine: entries violate the R-vine structure")

	// ErrUnknownLabel indicates that relabeling encountered a matrix entry
	// absent from the declared old-label set. Failing loudly here is
	// deliberate: a silently substituted sentinel corrupts every derived
	// matrix downstream without signaling.
	ErrUnknownLabel = errors.New("rvine: label not present in old-label set")

	// ErrLabelMismatch indicates that the supplied old-label sequence does not
	// match the structural diagonal of the matrix being relabeled.
	ErrLabelMismatch = errors.New("rvine: old labels do not match matrix diagonal")

	// ErrOutOfRange indicates that an index (row or column) is outside valid
	// bounds. Public indexers MUST return this, not panic.
	ErrOutOfRange = errors.New("rvine: index out of range")
)
