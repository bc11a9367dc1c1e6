// Package bicop: the independence family, in closed form throughout —
// uniform density, identity h-functions and inverses, zero-length
// parameter vector, tau identically zero, no orientation to flip.
package bicop

var indepKernel = kernel{
	nParams:     0,
	rotatable:   false,
	checkParams: func([]float64) error { return nil },
	pdf:         func(_ []float64, _, _ float64) float64 { return 1 },
	hfunc1:      func(_ []float64, _, v float64) float64 { return v },
	hinv1:       func(_ []float64, _, q float64) float64 { return q },
	tau:         func([]float64) float64 { return 0 },
	tauInv:      func(float64) ([]float64, error) { return []float64{}, nil },
	start:       func(float64) []float64 { return []float64{} },
}
