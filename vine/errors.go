// SPDX-License-Identifier: MIT
// Package vine: sentinel error set.
// Construction and evaluation errors only; pseudo-observation value errors
// surface from the bicop package (bicop.ErrPseudoObs) unchanged.

package vine

import "errors"

var (
	// ErrNilStructure indicates a nil *rvine.Matrix was supplied.
	ErrNilStructure = errors.New("vine: nil structure matrix")

	// ErrPairCopulaShape indicates a pair-copula grid whose shape does not
	// match the structure: len(pcs) must be d−1, len(pcs[t]) must be d−1−t,
	// and no entry may be nil.
	ErrPairCopulaShape = errors.New("vine: pair-copula grid shape mismatch")

	// ErrSampleShape indicates a sample whose column count differs from the
	// structure dimension, or an empty sample.
	ErrSampleShape = errors.New("vine: sample shape mismatch")
)
