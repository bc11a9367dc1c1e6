package bicop

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// KendallTau computes the empirical Kendall's tau of a paired sample —
// the rank correlation a family's TauToParameters inverts when fitting.
// Both slices must be the same non-trivial length.
// Errors: ErrPseudoObs on a shape mismatch or fewer than two pairs.
func KendallTau(x, y []float64) (float64, error) {
	if len(x) != len(y) {
		return 0, fmt.Errorf("KendallTau: got %d and %d rows: %w", len(x), len(y), ErrPseudoObs)
	}
	if len(x) < 2 {
		return 0, fmt.Errorf("KendallTau: need at least 2 pairs, got %d: %w", len(x), ErrPseudoObs)
	}
	return stat.Kendall(x, y, nil), nil
}
