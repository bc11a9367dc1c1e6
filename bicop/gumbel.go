// Package bicop: the Gumbel family.
//
// Parameter: θ ∈ [1, 50], upper tail dependence; θ = 1 is independence.
// Negative dependence is modeled by the 90°/270° rotations. The h-function
// inverse has no closed form and is solved by bisection on the monotone
// map v ↦ F(v|u).
package bicop

import (
	"fmt"
	"math"
)

const (
	gumbelThetaMin = 1
	gumbelThetaMax = 50
)

// gumbelH1 is F(v|u) = C(u,v)·s^{1/θ−1}·(−ln u)^{θ−1}/u with
// s = (−ln u)^θ + (−ln v)^θ.
func gumbelH1(t, u, v float64) float64 {
	x := -math.Log(u)
	y := -math.Log(v)
	s := math.Pow(x, t) + math.Pow(y, t)
	return math.Exp(-math.Pow(s, 1/t)) * math.Pow(s, 1/t-1) * math.Pow(x, t-1) / u
}

var gumbelKernel = kernel{
	nParams:   1,
	rotatable: true,
	checkParams: func(p []float64) error {
		if !(p[0] >= gumbelThetaMin && p[0] <= gumbelThetaMax) {
			return fmt.Errorf("gumbel: theta %v: %w", p[0], ErrParameter)
		}
		return nil
	},
	pdf: func(p []float64, u, v float64) float64 {
		t := p[0]
		x := -math.Log(u)
		y := -math.Log(v)
		s := math.Pow(x, t) + math.Pow(y, t)
		s1t := math.Pow(s, 1/t)
		return math.Exp(-s1t) / (u * v) *
			math.Pow(x*y, t-1) * math.Pow(s, 1/t-2) * (s1t + t - 1)
	},
	hfunc1: func(p []float64, u, v float64) float64 {
		return gumbelH1(p[0], u, v)
	},
	hinv1: func(p []float64, u, q float64) float64 {
		t := p[0]
		return bisect(func(v float64) float64 {
			return gumbelH1(t, u, v) - q
		}, UEps, 1-UEps)
	},
	tau: func(p []float64) float64 {
		return 1 - 1/p[0]
	},
	tauInv: func(tau float64) ([]float64, error) {
		if tau < 0 || tau >= 1 {
			return nil, fmt.Errorf("gumbel: tau %v: %w", tau, ErrTau)
		}
		theta := 1 / (1 - tau)
		if theta > gumbelThetaMax {
			return nil, fmt.Errorf("gumbel: tau %v: %w", tau, ErrTau)
		}
		return []float64{theta}, nil
	},
	start: func(tau float64) []float64 {
		tau = math.Abs(tau)
		if tau >= 1-1/gumbelThetaMax {
			return []float64{gumbelThetaMax}
		}
		return []float64{1 / (1 - tau)}
	},
}
