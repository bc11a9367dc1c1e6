// Package bicop: the Clayton family.
//
// Parameter: θ ∈ (0, 28], lower tail dependence. Negative dependence is
// modeled by the 90°/270° rotations. Every capability is closed form,
// including the h-function inverse.
package bicop

import (
	"fmt"
	"math"
)

const (
	claytonThetaMin = 1e-10
	claytonThetaMax = 28
)

var claytonKernel = kernel{
	nParams:   1,
	rotatable: true,
	checkParams: func(p []float64) error {
		if !(p[0] >= claytonThetaMin && p[0] <= claytonThetaMax) {
			return fmt.Errorf("clayton: theta %v: %w", p[0], ErrParameter)
		}
		return nil
	},
	pdf: func(p []float64, u, v float64) float64 {
		t := p[0]
		a := math.Pow(u, -t) + math.Pow(v, -t) - 1
		return (1 + t) * math.Pow(u*v, -1-t) * math.Pow(a, -1/t-2)
	},
	hfunc1: func(p []float64, u, v float64) float64 {
		t := p[0]
		a := math.Pow(u, -t) + math.Pow(v, -t) - 1
		return math.Pow(u, -1-t) * math.Pow(a, -(1+t)/t)
	},
	hinv1: func(p []float64, u, q float64) float64 {
		t := p[0]
		a := math.Pow(q*math.Pow(u, 1+t), -t/(1+t))
		return math.Pow(a+1-math.Pow(u, -t), -1/t)
	},
	tau: func(p []float64) float64 {
		return p[0] / (p[0] + 2)
	},
	tauInv: func(tau float64) ([]float64, error) {
		if tau <= 0 || tau >= 1 {
			return nil, fmt.Errorf("clayton: tau %v: %w", tau, ErrTau)
		}
		theta := 2 * tau / (1 - tau)
		if theta > claytonThetaMax {
			return nil, fmt.Errorf("clayton: tau %v: %w", tau, ErrTau)
		}
		return []float64{theta}, nil
	},
	start: func(tau float64) []float64 {
		tau = math.Abs(tau)
		if tau >= claytonThetaMax/(claytonThetaMax+2) {
			return []float64{claytonThetaMax}
		}
		theta := 2 * tau / (1 - tau)
		if theta < claytonThetaMin {
			theta = claytonThetaMin
		}
		return []float64{theta}
	},
}
