// SPDX-License-Identifier: MIT

// Package vine: Vinecop construction and batch density evaluation.
package vine

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/govine/bicop"
	"github.com/katalvlaran/govine/rvine"
)

// Vinecop is a vine copula model: an R-vine structure plus one pair-copula
// per edge of every tree. Pair-copulas are indexed [tree][edge] with edges
// aligned to the natural-order columns of the structure matrix.
//
// The derived matrices driving evaluation are computed once here and
// cached; the structure itself is cloned so later mutation of the caller's
// matrix cannot desynchronize them.
type Vinecop struct {
	d     int
	m     *rvine.Matrix
	pcs   [][]*bicop.Copula
	order []int
	no    [][]int
	mm    [][]int
	nh1   [][]bool
	nh2   [][]bool
}

// New constructs a vine copula from a validated structure and a pair-copula
// grid. The grid must have d−1 trees with d−1−t edges in tree t (0-based)
// and no nil entries.
// Errors: ErrNilStructure, ErrPairCopulaShape.
func New(m *rvine.Matrix, pcs [][]*bicop.Copula) (*Vinecop, error) {
	if m == nil {
		return nil, ErrNilStructure
	}
	d := m.Dim()
	if len(pcs) != d-1 {
		return nil, fmt.Errorf("New: want %d trees, got %d: %w", d-1, len(pcs), ErrPairCopulaShape)
	}
	own := make([][]*bicop.Copula, d-1)
	for t := range pcs {
		if len(pcs[t]) != d-1-t {
			return nil, fmt.Errorf("New: tree %d: want %d edges, got %d: %w",
				t+1, d-1-t, len(pcs[t]), ErrPairCopulaShape)
		}
		own[t] = make([]*bicop.Copula, d-1-t)
		for e, pc := range pcs[t] {
			if pc == nil {
				return nil, fmt.Errorf("New: tree %d edge %d is nil: %w", t+1, e, ErrPairCopulaShape)
			}
			own[t][e] = pc
		}
	}

	return &Vinecop{
		d:     d,
		m:     m.Clone(),
		pcs:   own,
		order: m.Order(),
		no:    m.InNaturalOrder().Raw(),
		mm:    m.MaxMatrix(),
		nh1:   m.NeededHFunc1().Raw(),
		nh2:   m.NeededHFunc2().Raw(),
	}, nil
}

// NewIndep constructs the all-independence vine on the given structure: the
// model whose density is identically one, used as the fitting baseline.
func NewIndep(m *rvine.Matrix) (*Vinecop, error) {
	if m == nil {
		return nil, ErrNilStructure
	}
	d := m.Dim()
	pcs := make([][]*bicop.Copula, d-1)
	for t := range pcs {
		pcs[t] = make([]*bicop.Copula, d-1-t)
		for e := range pcs[t] {
			pcs[t][e] = bicop.NewIndep()
		}
	}
	return New(m, pcs)
}

// Dim returns the number of variables d.
func (vc *Vinecop) Dim() int { return vc.d }

// Structure returns a copy of the underlying structure matrix.
func (vc *Vinecop) Structure() *rvine.Matrix { return vc.m.Clone() }

// PairCopula returns the pair-copula at the given tree and edge (0-based,
// edges aligned with natural-order columns), or nil when out of range.
func (vc *Vinecop) PairCopula(tree, edge int) *bicop.Copula {
	if tree < 0 || tree >= vc.d-1 || edge < 0 || edge >= vc.d-1-tree {
		return nil
	}
	return vc.pcs[tree][edge]
}

// PDF evaluates the vine density at each row of an n×d sample of
// pseudo-observations.
//
// Tree 1 consumes raw data columns permuted into the structure's variable
// order; each subsequent tree consumes the h-function transforms flagged by
// the needed-h masks, with the maximum matrix pointing every edge at the
// sibling column (and transform direction) holding its partner value.
// Errors: ErrSampleShape on a dimension mismatch or empty sample;
// bicop.ErrPseudoObs on values outside [0,1].
// Complexity: O(n·d²) pair-copula evaluations, O(n·d) memory.
func (vc *Vinecop) PDF(u *mat.Dense) ([]float64, error) {
	if u == nil {
		return nil, ErrSampleShape
	}
	n, c := u.Dims()
	if c != vc.d || n == 0 {
		return nil, fmt.Errorf("PDF: got %d×%d sample for dimension %d: %w", n, c, vc.d, ErrSampleShape)
	}
	d := vc.d

	// Working pseudo-observations per natural-order column. Column j starts
	// as the data column of the variable on the structural diagonal, counted
	// from the right.
	hf1 := make([][]float64, d)
	hf2 := make([][]float64, d)
	for j := 0; j < d; j++ {
		col := make([]float64, n)
		mat.Col(col, vc.order[d-1-j]-1, u)
		hf2[j] = col
	}

	dens := make([]float64, n)
	for i := range dens {
		dens[i] = 1
	}

	for t := 0; t < d-1; t++ {
		for e := 0; e < d-1-t; e++ {
			// The partner column is the one owning the running-maximum label;
			// when that label is the matrix entry itself the second-direction
			// transform applies, otherwise the first.
			mx := vc.mm[t][e]
			z1 := hf2[e]
			var z2 []float64
			if mx == vc.no[t][e] {
				z2 = hf2[d-mx]
			} else {
				z2 = hf1[d-mx]
			}

			pc := vc.pcs[t][e]
			p, err := pc.PDF(z1, z2)
			if err != nil {
				return nil, err
			}
			for i := range dens {
				dens[i] *= p[i]
			}

			if t < d-2 {
				if vc.nh1[t+1][e] {
					if hf1[e], err = pc.HFunc1(z1, z2); err != nil {
						return nil, err
					}
				}
				if vc.nh2[t+1][e] {
					if hf2[e], err = pc.HFunc2(z1, z2); err != nil {
						return nil, err
					}
				}
			}
		}
	}
	return dens, nil
}

// LogLik returns the log-likelihood of the sample under the model: the sum
// of log densities over all rows.
// Errors: as for PDF.
func (vc *Vinecop) LogLik(u *mat.Dense) (float64, error) {
	dens, err := vc.PDF(u)
	if err != nil {
		return 0, err
	}
	var ll float64
	for _, p := range dens {
		ll += math.Log(p)
	}
	return ll, nil
}
