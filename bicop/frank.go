// Package bicop: the Frank family.
//
// Parameter: θ ∈ [−35, 35] \ {0}, radially symmetric, no tail dependence;
// negative dependence goes through the sign of θ, so rotations are
// rejected. The tau relation involves the Debye function D₁, evaluated by
// Gauss–Legendre quadrature (gonum integrate/quad); its inverse has no
// closed form and is solved by bisection on the monotone map θ ↦ τ(θ).
package bicop

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/integrate/quad"
)

const (
	frankThetaMax  = 35
	frankDebyeNode = 30 // quadrature nodes; integrand is smooth on (0, θ)
)

// frankDebye1 evaluates the first Debye function
// D₁(x) = (1/x)·∫₀ˣ t/(eᵗ−1) dt for x > 0.
func frankDebye1(x float64) float64 {
	integral := quad.Fixed(func(t float64) float64 {
		if t < 1e-12 {
			return 1 // removable singularity: t/(eᵗ−1) → 1
		}
		return t / math.Expm1(t)
	}, 0, x, frankDebyeNode, nil, 1)
	return integral / x
}

// frankTau evaluates τ(θ) = 1 − (4/θ)·(1 − D₁(θ)); the relation is odd
// in θ and strictly increasing.
func frankTau(theta float64) float64 {
	if theta == 0 {
		return 0
	}
	t := math.Abs(theta)
	tau := 1 - 4/t*(1-frankDebye1(t))
	if theta < 0 {
		return -tau
	}
	return tau
}

var frankKernel = kernel{
	nParams:   1,
	rotatable: false,
	checkParams: func(p []float64) error {
		if math.IsNaN(p[0]) || p[0] == 0 || math.Abs(p[0]) > frankThetaMax {
			return fmt.Errorf("frank: theta %v: %w", p[0], ErrParameter)
		}
		return nil
	},
	pdf: func(p []float64, u, v float64) float64 {
		t := p[0]
		a := math.Exp(-t * u)
		b := math.Exp(-t * v)
		g := math.Exp(-t)
		den := (1 - g) - (1-a)*(1-b)
		return t * (1 - g) * a * b / (den * den)
	},
	hfunc1: func(p []float64, u, v float64) float64 {
		t := p[0]
		a := math.Exp(-t * u)
		b := math.Exp(-t * v)
		g := math.Exp(-t)
		return a * (b - 1) / ((g - 1) + (a-1)*(b-1))
	},
	hinv1: func(p []float64, u, q float64) float64 {
		t := p[0]
		a := math.Exp(-t * u)
		g := math.Exp(-t)
		w := q * (g - 1) / (a - q*(a-1))
		return -math.Log1p(w) / t
	},
	tau: func(p []float64) float64 {
		return frankTau(p[0])
	},
	tauInv: func(tau float64) ([]float64, error) {
		if tau == 0 || math.Abs(tau) >= frankTau(frankThetaMax) {
			return nil, fmt.Errorf("frank: tau %v: %w", tau, ErrTau)
		}
		mag := math.Abs(tau)
		theta := bisect(func(t float64) float64 {
			return frankTau(t) - mag
		}, 1e-8, frankThetaMax)
		if tau < 0 {
			theta = -theta
		}
		return []float64{theta}, nil
	},
	start: func(tau float64) []float64 {
		// Cheap warm start: τ ≈ θ/9 is accurate for small dependence and a
		// usable bracket elsewhere.
		theta := clampAbs(9*tau, frankThetaMax)
		if theta == 0 {
			theta = 1e-8
		}
		return []float64{theta}
	},
}
