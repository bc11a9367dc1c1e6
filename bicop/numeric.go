// Package bicop: shared numeric policy and scalar root finding.
package bicop

// Numeric policy.
const (
	// UEps is the trimming bound for pseudo-observations: inputs are clamped
	// into [UEps, 1−UEps] before kernel evaluation so that quantile and log
	// transforms stay finite at the boundary.
	UEps = 1e-10

	// bisectIter bounds the bisection loop; 64 halvings of (0,1) exceed
	// float64 resolution, so convergence is limited by the kernel, not the
	// solver.
	bisectIter = 64
)

// clampU trims a pseudo-observation into [UEps, 1−UEps].
func clampU(u float64) float64 {
	if u < UEps {
		return UEps
	}
	if u > 1-UEps {
		return 1 - UEps
	}
	return u
}

// bisect solves f(x) = 0 for a monotone increasing f on [lo, hi] by
// interval halving. The root is assumed bracketed; when it is not (the
// target sits outside f's range) the nearer endpoint is returned, which is
// the correct clamped inverse for h-functions evaluated at trimmed inputs.
func bisect(f func(float64) float64, lo, hi float64) float64 {
	if f(lo) >= 0 {
		return lo
	}
	if f(hi) <= 0 {
		return hi
	}
	for i := 0; i < bisectIter; i++ {
		mid := 0.5 * (lo + hi)
		if f(mid) < 0 {
			lo = mid
		} else {
			hi = mid
		}
	}
	return 0.5 * (lo + hi)
}
