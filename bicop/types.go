// Package bicop: family and rotation tags.
package bicop

// Family identifies a pair-copula family. The set is closed: adding a
// family means adding a tag here and a kernel in its own file — there is
// no open-ended subclassing.
type Family int

const (
	// Indep is the independence copula: pdf ≡ 1, identity h-functions.
	Indep Family = iota

	// Gaussian is the bivariate normal copula with correlation ρ ∈ (−1, 1).
	Gaussian

	// Clayton is the Archimedean copula with lower tail dependence, θ > 0.
	Clayton

	// Gumbel is the Archimedean copula with upper tail dependence, θ ≥ 1.
	Gumbel

	// Frank is the radially symmetric Archimedean copula, θ ∈ ℝ \ {0}.
	Frank
)

// String returns the family name used in diagnostics.
func (f Family) String() string {
	switch f {
	case Indep:
		return "Indep"
	case Gaussian:
		return "Gaussian"
	case Clayton:
		return "Clayton"
	case Gumbel:
		return "Gumbel"
	case Frank:
		return "Frank"
	default:
		return "Unknown"
	}
}

// Rotation is a counter-clockwise rotation of the copula's mass in degrees.
// Rotations 90 and 270 turn positive-dependence families into models of
// negative dependence; 180 is the survival copula.
type Rotation int

const (
	R0   Rotation = 0
	R90  Rotation = 90
	R180 Rotation = 180
	R270 Rotation = 270
)
