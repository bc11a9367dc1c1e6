// SPDX-License-Identifier: MIT

// Package rvine: the relabeling utility — a pure function mapping matrix
// entries from one integer labeling of the variables to another.
//
// Determinism & Policy:
//   - No side effects; the input rows are never touched.
//   - An entry absent from the old-label set is an explicit error
//     (ErrUnknownLabel), never a silently substituted sentinel: a sentinel
//     would corrupt every derived matrix downstream without signaling.
//   - O(d²) cells scanned against an O(d) label table. A hash table would
//     make the lookup amortized O(1), but d is small to moderate in every
//     realistic vine and the linear scan keeps the per-cell step
//     allocation-free.
package rvine

// Relabel returns a copy of the square rows with every structural entry
// (cells with i+j ≤ d−1) replaced by its image under the
// oldLabels→newLabels correspondence. Positions are aligned: the entry
// oldLabels[k] maps to newLabels[k]. Cells above the anti-diagonal are
// assumed zero and written as zero.
//
// Input constraints:
//   - rows must be square and non-empty, else ErrNonSquare / ErrBadShape;
//   - len(oldLabels) == len(newLabels) == d, else ErrDimensionMismatch;
//   - oldLabels must equal the structural diagonal of rows read column by
//     column (cell (d−1−k, k) at position k), else ErrLabelMismatch;
//   - every structural entry must occur in oldLabels, else ErrUnknownLabel.
//
// Relabeling with oldLabels == newLabels returns rows equal to the input.
// Complexity: O(d³) worst case (O(d) lookup per cell).
func Relabel(rows [][]int, oldLabels, newLabels []int) ([][]int, error) {
	d := len(rows)
	if d == 0 {
		return nil, ErrBadShape
	}
	for i := 0; i < d; i++ {
		if len(rows[i]) != d {
			return nil, ErrNonSquare
		}
	}
	if len(oldLabels) != d || len(newLabels) != d {
		return nil, ErrDimensionMismatch
	}
	for k := 0; k < d; k++ {
		if oldLabels[k] != rows[d-1-k][k] {
			return nil, ErrLabelMismatch
		}
	}

	out := make([][]int, d)
	for i := 0; i < d; i++ {
		out[i] = make([]int, d) // upper region stays zero
		for j := 0; j < d-i; j++ {
			v, err := relabelOne(rows[i][j], oldLabels, newLabels)
			if err != nil {
				return nil, err
			}
			out[i][j] = v
		}
	}
	return out, nil
}

// relabelData performs the substitution on a flat backing store. Lengths are
// the caller's responsibility; unknown labels still fail loudly.
func relabelData(data []int, d int, oldLabels, newLabels []int) ([]int, error) {
	out := make([]int, d*d)
	for i := 0; i < d; i++ {
		for j := 0; j < d-i; j++ {
			v, err := relabelOne(data[i*d+j], oldLabels, newLabels)
			if err != nil {
				return nil, err
			}
			out[i*d+j] = v
		}
	}
	return out, nil
}

// relabelOne translates a single entry from old to new labels.
func relabelOne(x int, oldLabels, newLabels []int) (int, error) {
	for i := range oldLabels {
		if x == oldLabels[i] {
			return newLabels[i], nil
		}
	}
	return 0, ErrUnknownLabel
}
