// Package bicop: the Gaussian (bivariate normal) family.
//
// Parameter: correlation ρ ∈ (−1, 1). Negative dependence goes through the
// sign of ρ, so rotations are rejected for this family. The normal CDF and
// quantile come from gonum's distuv.
package bicop

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// gaussianRhoMax bounds |ρ| away from 1 so the density stays finite.
const gaussianRhoMax = 1 - 1e-10

var gaussianKernel = kernel{
	nParams:   1,
	rotatable: false,
	checkParams: func(p []float64) error {
		if math.IsNaN(p[0]) || math.Abs(p[0]) >= 1 {
			return fmt.Errorf("gaussian: rho %v: %w", p[0], ErrParameter)
		}
		return nil
	},
	pdf: func(p []float64, u, v float64) float64 {
		r := p[0]
		x := distuv.UnitNormal.Quantile(u)
		y := distuv.UnitNormal.Quantile(v)
		s := 1 - r*r
		return math.Exp(-(r*r*(x*x+y*y)-2*r*x*y)/(2*s)) / math.Sqrt(s)
	},
	hfunc1: func(p []float64, u, v float64) float64 {
		r := p[0]
		x := distuv.UnitNormal.Quantile(u)
		y := distuv.UnitNormal.Quantile(v)
		return distuv.UnitNormal.CDF((y - r*x) / math.Sqrt(1-r*r))
	},
	hinv1: func(p []float64, u, q float64) float64 {
		r := p[0]
		x := distuv.UnitNormal.Quantile(u)
		z := distuv.UnitNormal.Quantile(q)
		return distuv.UnitNormal.CDF(z*math.Sqrt(1-r*r) + r*x)
	},
	tau: func(p []float64) float64 {
		return 2 * math.Asin(p[0]) / math.Pi
	},
	tauInv: func(tau float64) ([]float64, error) {
		if math.Abs(tau) >= 1 {
			return nil, fmt.Errorf("gaussian: tau %v: %w", tau, ErrTau)
		}
		return []float64{math.Sin(tau * math.Pi / 2)}, nil
	},
	start: func(tau float64) []float64 {
		r := math.Sin(clampAbs(tau, gaussianRhoMax) * math.Pi / 2)
		return []float64{r}
	},
}

// clampAbs trims x into [−bound, bound].
func clampAbs(x, bound float64) float64 {
	if x > bound {
		return bound
	}
	if x < -bound {
		return -bound
	}
	return x
}
