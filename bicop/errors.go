// Package bicop: sentinel error set. All entry points return these
// sentinels (optionally wrapped with call-site context) and tests match
// them via errors.Is.

package bicop

import "errors"

var (
	// ErrFamily indicates an unknown family tag.
	ErrFamily = errors.New("bicop: unknown copula family")

	// ErrRotation indicates a rotation that is not one of 0/90/180/270
	// degrees, or a rotation applied to a family that models negative
	// dependence through its parameter instead.
	ErrRotation = errors.New("bicop: invalid rotation for family")

	// ErrParameter indicates a parameter vector of the wrong length or with
	// values outside the family's admissible range.
	ErrParameter = errors.New("bicop: parameter out of range")

	// ErrPseudoObs indicates pseudo-observations outside [0,1], NaN/Inf
	// values, or input slices of unequal length.
	ErrPseudoObs = errors.New("bicop: invalid pseudo-observations")

	// ErrTau indicates a Kendall's tau value the family cannot represent
	// (for example a negative tau for an unrotated Clayton).
	ErrTau = errors.New("bicop: tau not representable by family")
)
