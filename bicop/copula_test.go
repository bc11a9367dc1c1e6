package bicop

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RejectsUnknownFamily(t *testing.T) {
	_, err := New(Family(99), R0, nil)
	assert.ErrorIs(t, err, ErrFamily, "family tag outside the closed set must be rejected")
}

func TestNew_RejectsBadRotation(t *testing.T) {
	_, err := New(Clayton, Rotation(45), []float64{2})
	assert.ErrorIs(t, err, ErrRotation, "only 0/90/180/270 degrees are valid")
}

func TestNew_RejectsRotationForSignedFamilies(t *testing.T) {
	// Gaussian and Frank carry negative dependence in the parameter sign;
	// Indep has no orientation at all.
	cases := []struct {
		family Family
		params []float64
	}{
		{Gaussian, []float64{0.5}},
		{Frank, []float64{4}},
		{Indep, nil},
	}
	for _, tc := range cases {
		_, err := New(tc.family, R90, tc.params)
		assert.ErrorIs(t, err, ErrRotation, "rotating %s must fail", tc.family)
	}
}

func TestNew_AcceptsRotationForTailFamilies(t *testing.T) {
	for _, rot := range []Rotation{R0, R90, R180, R270} {
		_, err := New(Clayton, rot, []float64{2})
		assert.NoError(t, err, "Clayton at %d degrees", rot)
		_, err = New(Gumbel, rot, []float64{1.5})
		assert.NoError(t, err, "Gumbel at %d degrees", rot)
	}
}

func TestNew_RejectsBadParameters(t *testing.T) {
	cases := []struct {
		name   string
		family Family
		params []float64
	}{
		{"gaussian rho at 1", Gaussian, []float64{1}},
		{"gaussian rho NaN", Gaussian, []float64{math.NaN()}},
		{"clayton theta zero", Clayton, []float64{0}},
		{"clayton theta too large", Clayton, []float64{29}},
		{"gumbel theta below 1", Gumbel, []float64{0.5}},
		{"frank theta zero", Frank, []float64{0}},
		{"frank theta too large", Frank, []float64{36}},
		{"wrong length", Gaussian, []float64{0.5, 0.1}},
		{"missing", Clayton, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.family, R0, tc.params)
			assert.ErrorIs(t, err, ErrParameter)
		})
	}
}

func TestNew_CopiesParameters(t *testing.T) {
	p := []float64{2}
	c, err := New(Clayton, R0, p)
	require.NoError(t, err)
	p[0] = 99
	assert.Equal(t, []float64{2}, c.Parameters(), "copula must own its parameter vector")
}

func TestFlip_SwapsAsymmetricRotations(t *testing.T) {
	cases := map[Rotation]Rotation{R0: R0, R90: R270, R180: R180, R270: R90}
	for from, want := range cases {
		c := MustNew(Gumbel, from, []float64{2})
		c.Flip()
		assert.Equal(t, want, c.Rotation(), "flip of %d degrees", from)
	}
}

func TestEval_RejectsBadPseudoObs(t *testing.T) {
	c := MustNew(Gaussian, R0, []float64{0.5})

	_, err := c.PDF([]float64{0.5}, []float64{0.5, 0.5})
	assert.ErrorIs(t, err, ErrPseudoObs, "length mismatch")

	_, err = c.PDF([]float64{-0.1}, []float64{0.5})
	assert.ErrorIs(t, err, ErrPseudoObs, "below zero")

	_, err = c.HFunc1([]float64{0.5}, []float64{1.1})
	assert.ErrorIs(t, err, ErrPseudoObs, "above one")

	_, err = c.HFunc2([]float64{math.NaN()}, []float64{0.5})
	assert.ErrorIs(t, err, ErrPseudoObs, "NaN")
}

func TestEval_ClampsBoundaryInputs(t *testing.T) {
	// Exact 0 and 1 are legal inputs; trimming keeps every kernel finite.
	c := MustNew(Gaussian, R0, []float64{0.9})
	out, err := c.HFunc1([]float64{0, 1}, []float64{1, 0})
	require.NoError(t, err)
	for i, h := range out {
		assert.False(t, math.IsNaN(h) || math.IsInf(h, 0), "row %d finite", i)
		assert.GreaterOrEqual(t, h, 0.0, "row %d lower bound", i)
		assert.LessOrEqual(t, h, 1.0, "row %d upper bound", i)
	}
}

func TestTau_RotationFlipsSign(t *testing.T) {
	base := MustNew(Clayton, R0, []float64{2})
	require.InDelta(t, 0.5, base.Tau(), 1e-12, "theta/(theta+2) at theta=2")

	assert.InDelta(t, -0.5, MustNew(Clayton, R90, []float64{2}).Tau(), 1e-12)
	assert.InDelta(t, 0.5, MustNew(Clayton, R180, []float64{2}).Tau(), 1e-12)
	assert.InDelta(t, -0.5, MustNew(Clayton, R270, []float64{2}).Tau(), 1e-12)
}

func TestTauToParameters_RespectsRotationSign(t *testing.T) {
	rotated := MustNew(Clayton, R90, []float64{2})

	p, err := rotated.TauToParameters(-0.5)
	require.NoError(t, err)
	assert.InDelta(t, 2, p[0], 1e-12, "negative tau maps onto the rotated family")

	_, err = rotated.TauToParameters(0.5)
	assert.ErrorIs(t, err, ErrTau, "positive tau is out of reach for a 90-degree Clayton")

	_, err = MustNew(Clayton, R0, []float64{2}).TauToParameters(-0.3)
	assert.ErrorIs(t, err, ErrTau, "negative tau is out of reach for an unrotated Clayton")
}

func TestStartParameters_StayInRange(t *testing.T) {
	for _, tau := range []float64{-0.999, -0.5, 0, 0.5, 0.999} {
		for _, f := range []Family{Gaussian, Frank} {
			c := MustNew(f, R0, map[Family][]float64{Gaussian: {0.1}, Frank: {1}}[f])
			p := c.StartParameters(tau)
			require.Len(t, p, 1)
			assert.NoError(t, c.k.checkParams(p), "%s start for tau=%v must be admissible", f, tau)
		}
		for _, f := range []Family{Clayton, Gumbel} {
			c := MustNew(f, R90, map[Family][]float64{Clayton: {2}, Gumbel: {2}}[f])
			p := c.StartParameters(tau)
			require.Len(t, p, 1)
			assert.NoError(t, c.k.checkParams(p), "%s start for tau=%v must be admissible", f, tau)
		}
	}
}

func TestKendallTau(t *testing.T) {
	tau, err := KendallTau([]float64{1, 2, 3, 4}, []float64{10, 20, 30, 40})
	require.NoError(t, err)
	assert.InDelta(t, 1, tau, 1e-12, "perfect concordance")

	tau, err = KendallTau([]float64{1, 2, 3, 4}, []float64{40, 30, 20, 10})
	require.NoError(t, err)
	assert.InDelta(t, -1, tau, 1e-12, "perfect discordance")

	_, err = KendallTau([]float64{1, 2}, []float64{1})
	assert.ErrorIs(t, err, ErrPseudoObs, "length mismatch")

	_, err = KendallTau([]float64{1}, []float64{1})
	assert.ErrorIs(t, err, ErrPseudoObs, "degenerate sample")
}
