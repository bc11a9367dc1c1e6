// Package bicop implements bivariate ("pair") copula families — the
// building blocks a vine copula composes along its tree edges.
//
// 🚀 What is a pair copula?
//
//	A bivariate distribution on [0,1]² with uniform margins, modeling the
//	dependence between two (possibly conditioned) variables. Every family
//	exposes the same capability surface:
//	  • PDF            — density over paired pseudo-observations
//	  • HFunc1/HFunc2  — conditional distribution transforms in each
//	    argument direction, feeding pseudo-observations up a vine
//	  • HInv1/HInv2    — functional inverses of the h-functions
//	  • Tau conversions — Kendall's tau ↔ family parameters
//	  • Flip           — reflect the copula's orientation
//	  • StartParameters — rough estimates from a target tau, for use by
//	    external optimizers
//
// ✨ Families:
//
//   - Indep    — independence: pdf ≡ 1, identity h-functions, no parameters
//   - Gaussian — elliptical, ρ ∈ (−1, 1), via the normal CDF/quantile
//   - Clayton  — Archimedean, lower tail dependence, θ > 0
//   - Gumbel   — Archimedean, upper tail dependence, θ ≥ 1
//   - Frank    — Archimedean, radially symmetric, θ ≠ 0
//
// The set of families is a closed tagged variant: one tag per family,
// dispatched internally to a shared capability record — no open-ended
// subclassing. Clayton and Gumbel cover negative dependence through
// rotations (90°, 180°, 270°); Gaussian and Frank take negative parameters
// instead and reject rotation.
//
// All operations are pure and deterministic; batch evaluation is a plain
// loop over rows with no cross-row dependency.
package bicop
