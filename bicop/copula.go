// Package bicop: the Copula type — a closed tagged variant over the
// family kernels, with rotation algebra applied uniformly on top.
//
// Design:
//   - Each family contributes a kernel: the unrotated capability record
//     (pdf, first h-function and its inverse, tau conversions, parameter
//     bounds). All families here are exchangeable — C(u,v) = C(v,u) — so
//     the second h-function direction is the first with swapped arguments.
//   - Rotation never touches the kernels: the Copula surface maps arguments
//     and results through the rotation identities
//     C₉₀(u,v) = v − C(1−u, v),  C₁₈₀(u,v) = u+v−1+C(1−u, 1−v),
//     C₂₇₀(u,v) = u − C(u, 1−v),
//     whose derivatives give every rotated h-function below.
package bicop

import "fmt"

// kernel is the shared capability record dispatched by family tag.
// hfunc1 is the conditional distribution F(v|u) = ∂C/∂u; hinv1 solves
// hfunc1(u, ·) = q for the second argument.
type kernel struct {
	nParams     int
	rotatable   bool // true if negative dependence needs a rotation
	checkParams func(p []float64) error
	pdf         func(p []float64, u, v float64) float64
	hfunc1      func(p []float64, u, v float64) float64
	hinv1       func(p []float64, u, q float64) float64
	tau         func(p []float64) float64
	tauInv      func(tau float64) ([]float64, error)
	start       func(tau float64) []float64
}

// kernelFor dispatches the family tag to its capability record.
func kernelFor(f Family) (*kernel, error) {
	switch f {
	case Indep:
		return &indepKernel, nil
	case Gaussian:
		return &gaussianKernel, nil
	case Clayton:
		return &claytonKernel, nil
	case Gumbel:
		return &gumbelKernel, nil
	case Frank:
		return &frankKernel, nil
	default:
		return nil, ErrFamily
	}
}

// Copula is one pair copula: a family tag, a rotation, and a parameter
// vector. The zero value is not usable; construct with New.
type Copula struct {
	family   Family
	rotation Rotation
	params   []float64
	k        *kernel
}

// New constructs a pair copula and validates family, rotation and
// parameters at the boundary.
//
// Rotations other than 0° are accepted only for families that need them to
// model negative dependence (Clayton, Gumbel); Gaussian and Frank take
// negative parameters instead, and the independence copula has no
// orientation. Errors: ErrFamily, ErrRotation, ErrParameter.
func New(f Family, rot Rotation, params []float64) (*Copula, error) {
	k, err := kernelFor(f)
	if err != nil {
		return nil, err
	}
	switch rot {
	case R0, R90, R180, R270:
	default:
		return nil, fmt.Errorf("New: %d degrees: %w", rot, ErrRotation)
	}
	if rot != R0 && !k.rotatable {
		return nil, fmt.Errorf("New: %s: %w", f, ErrRotation)
	}
	if len(params) != k.nParams {
		return nil, fmt.Errorf("New: want %d parameters, got %d: %w", k.nParams, len(params), ErrParameter)
	}
	if err := k.checkParams(params); err != nil {
		return nil, err
	}

	own := make([]float64, len(params))
	copy(own, params)
	return &Copula{family: f, rotation: rot, params: own, k: k}, nil
}

// MustNew is New that panics on error; intended for tests and literals
// whose validity is guaranteed by construction.
func MustNew(f Family, rot Rotation, params []float64) *Copula {
	c, err := New(f, rot, params)
	if err != nil {
		panic("bicop: MustNew: " + err.Error())
	}
	return c
}

// NewIndep returns the independence copula.
func NewIndep() *Copula { return MustNew(Indep, R0, nil) }

// Family returns the family tag.
func (c *Copula) Family() Family { return c.family }

// Rotation returns the rotation in degrees.
func (c *Copula) Rotation() Rotation { return c.rotation }

// Parameters returns a copy of the parameter vector; the independence
// copula returns an empty slice.
func (c *Copula) Parameters() []float64 {
	out := make([]float64, len(c.params))
	copy(out, c.params)
	return out
}

// Flip reflects the copula's orientation, accounting for dependence between
// the swapped arguments: C(u,v) becomes C(v,u). All families here are
// exchangeable, so only the asymmetric rotations exchange (90° ↔ 270°);
// everything else is a no-op.
func (c *Copula) Flip() {
	switch c.rotation {
	case R90:
		c.rotation = R270
	case R270:
		c.rotation = R90
	}
}

// ---------- scalar evaluation under rotation ----------

func (c *Copula) pdfOne(u, v float64) float64 {
	switch c.rotation {
	case R90:
		return c.k.pdf(c.params, 1-u, v)
	case R180:
		return c.k.pdf(c.params, 1-u, 1-v)
	case R270:
		return c.k.pdf(c.params, u, 1-v)
	default:
		return c.k.pdf(c.params, u, v)
	}
}

// hfunc1One evaluates F(v|u) = ∂C/∂u under the receiver's rotation.
func (c *Copula) hfunc1One(u, v float64) float64 {
	switch c.rotation {
	case R90:
		return c.k.hfunc1(c.params, 1-u, v)
	case R180:
		return 1 - c.k.hfunc1(c.params, 1-u, 1-v)
	case R270:
		return 1 - c.k.hfunc1(c.params, u, 1-v)
	default:
		return c.k.hfunc1(c.params, u, v)
	}
}

// hfunc2One evaluates F(u|v) = ∂C/∂v; by exchangeability the unrotated
// form is hfunc1 with swapped arguments.
func (c *Copula) hfunc2One(u, v float64) float64 {
	switch c.rotation {
	case R90:
		return 1 - c.k.hfunc1(c.params, v, 1-u)
	case R180:
		return 1 - c.k.hfunc1(c.params, 1-v, 1-u)
	case R270:
		return c.k.hfunc1(c.params, 1-v, u)
	default:
		return c.k.hfunc1(c.params, v, u)
	}
}

// hinv1One solves hfunc1One(u, ·) = q for the second argument.
func (c *Copula) hinv1One(u, q float64) float64 {
	switch c.rotation {
	case R90:
		return c.k.hinv1(c.params, 1-u, q)
	case R180:
		return 1 - c.k.hinv1(c.params, 1-u, 1-q)
	case R270:
		return 1 - c.k.hinv1(c.params, u, 1-q)
	default:
		return c.k.hinv1(c.params, u, q)
	}
}

// hinv2One solves hfunc2One(·, v) = q for the first argument.
func (c *Copula) hinv2One(q, v float64) float64 {
	switch c.rotation {
	case R90:
		return 1 - c.k.hinv1(c.params, v, 1-q)
	case R180:
		return 1 - c.k.hinv1(c.params, 1-v, 1-q)
	case R270:
		return c.k.hinv1(c.params, 1-v, q)
	default:
		return c.k.hinv1(c.params, v, q)
	}
}

// ---------- batch surface ----------

// evalPairs validates a paired sample and applies f row by row. Inputs are
// trimmed into [UEps, 1−UEps]; values outside [0,1] or non-finite are
// rejected with ErrPseudoObs. Rows are independent, so the loop order is
// free of cross-row state.
func evalPairs(u, v []float64, f func(u, v float64) float64) ([]float64, error) {
	if len(u) != len(v) {
		return nil, fmt.Errorf("got %d and %d rows: %w", len(u), len(v), ErrPseudoObs)
	}
	out := make([]float64, len(u))
	for i := range u {
		if !(u[i] >= 0 && u[i] <= 1) || !(v[i] >= 0 && v[i] <= 1) {
			return nil, fmt.Errorf("row %d: %w", i, ErrPseudoObs)
		}
		out[i] = f(clampU(u[i]), clampU(v[i]))
	}
	return out, nil
}

// PDF evaluates the copula density at each paired pseudo-observation.
// Complexity: O(n) with no cross-row dependency.
func (c *Copula) PDF(u, v []float64) ([]float64, error) {
	return evalPairs(u, v, c.pdfOne)
}

// HFunc1 evaluates the first-direction h-function F(v|u) per row: the
// conditional distribution of the second argument given the first.
func (c *Copula) HFunc1(u, v []float64) ([]float64, error) {
	return evalPairs(u, v, c.hfunc1One)
}

// HFunc2 evaluates the second-direction h-function F(u|v) per row.
func (c *Copula) HFunc2(u, v []float64) ([]float64, error) {
	return evalPairs(u, v, c.hfunc2One)
}

// HInv1 inverts HFunc1 in its second argument: HInv1(u, q) returns v with
// F(v|u) = q, row by row.
func (c *Copula) HInv1(u, q []float64) ([]float64, error) {
	return evalPairs(u, q, c.hinv1One)
}

// HInv2 inverts HFunc2 in its first argument: HInv2(q, v) returns u with
// F(u|v) = q, row by row.
func (c *Copula) HInv2(q, v []float64) ([]float64, error) {
	return evalPairs(q, v, c.hinv2One)
}

// ---------- dependence measure ----------

// Tau returns the Kendall's tau implied by the copula's parameters, with
// the sign reflected for the negative-dependence rotations.
func (c *Copula) Tau() float64 {
	t := c.k.tau(c.params)
	if c.rotation == R90 || c.rotation == R270 {
		return -t
	}
	return t
}

// TauToParameters inverts the family's tau relation. For rotated copulas
// the magnitude is matched and the sign is carried by the rotation, so tau
// must be negative for 90°/270° and positive otherwise; Indep accepts only
// an (empty) exact fit for tau of any value.
// Errors: ErrTau when the family cannot represent the requested tau.
func (c *Copula) TauToParameters(tau float64) ([]float64, error) {
	if c.rotation == R90 || c.rotation == R270 {
		tau = -tau
	}
	return c.k.tauInv(tau)
}

// StartParameters returns a rough parameter estimate for a target tau,
// clamped into the family's admissible range — the warm start an external
// optimizer refines. Never fails: unrepresentable taus are clamped.
func (c *Copula) StartParameters(tau float64) []float64 {
	if c.rotation == R90 || c.rotation == R270 {
		tau = -tau
	}
	return c.k.start(tau)
}
