// Package vine evaluates the density of a full vine copula: an R-vine
// structure matrix paired with one bivariate copula per edge of every
// tree.
//
// 🚀 How evaluation works:
//
//	Pseudo-observations enter at tree 1 as raw data columns (permuted
//	into the structure's variable order). Each edge multiplies its
//	pair-copula density into the running product and, where the
//	structure's needed-h masks say so, pushes conditional transforms
//	(h-functions) up as the pseudo-observations of the next tree. The
//	maximum matrix locates, for every edge, which sibling column holds
//	the partner value and in which of the two transform directions.
//
// ✨ What the package provides:
//
//   - New / NewIndep — validated construction of a Vinecop from a
//     structure and a [tree][edge] grid of pair-copulas
//   - PDF — batch density over an n×d sample (gonum mat.Dense)
//   - LogLik — the summed log-density of the same sample
//
// All derived matrices (natural order, maximum, needed-h masks) are
// computed once at construction and cached; evaluation never mutates
// the Vinecop or its structure.
//
// Complexity: PDF is O(n·d²) pair-copula evaluations; memory O(n·d).
package vine
