package bicop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// famCase names one family/rotation/parameter combination exercised by the
// cross-family property tests below.
type famCase struct {
	name   string
	family Family
	rot    Rotation
	params []float64
}

func allFamilyCases() []famCase {
	return []famCase{
		{"gaussian positive", Gaussian, R0, []float64{0.5}},
		{"gaussian negative", Gaussian, R0, []float64{-0.7}},
		{"clayton", Clayton, R0, []float64{2}},
		{"clayton 90", Clayton, R90, []float64{2}},
		{"clayton 180", Clayton, R180, []float64{2}},
		{"clayton 270", Clayton, R270, []float64{2}},
		{"gumbel", Gumbel, R0, []float64{1.8}},
		{"gumbel 90", Gumbel, R90, []float64{1.8}},
		{"gumbel 180", Gumbel, R180, []float64{1.8}},
		{"gumbel 270", Gumbel, R270, []float64{1.8}},
		{"frank positive", Frank, R0, []float64{4}},
		{"frank negative", Frank, R0, []float64{-4}},
	}
}

func TestIndep_Identities(t *testing.T) {
	c := NewIndep()
	u := []float64{0.1, 0.4, 0.9}
	v := []float64{0.8, 0.5, 0.2}

	pdf, err := c.PDF(u, v)
	require.NoError(t, err)
	h1, err := c.HFunc1(u, v)
	require.NoError(t, err)
	h2, err := c.HFunc2(u, v)
	require.NoError(t, err)

	for i := range u {
		assert.InDelta(t, 1, pdf[i], 1e-12, "uniform density at row %d", i)
		assert.InDelta(t, v[i], h1[i], 1e-12, "F(v|u)=v at row %d", i)
		assert.InDelta(t, u[i], h2[i], 1e-12, "F(u|v)=u at row %d", i)
	}
	assert.Zero(t, c.Tau())
	assert.Empty(t, c.Parameters())
}

func TestGaussian_ZeroCorrelationIsIndependence(t *testing.T) {
	c := MustNew(Gaussian, R0, []float64{0})
	u := []float64{0.2, 0.5, 0.85}
	v := []float64{0.7, 0.3, 0.6}

	pdf, err := c.PDF(u, v)
	require.NoError(t, err)
	h1, err := c.HFunc1(u, v)
	require.NoError(t, err)
	for i := range u {
		assert.InDelta(t, 1, pdf[i], 1e-9, "row %d", i)
		assert.InDelta(t, v[i], h1[i], 1e-9, "row %d", i)
	}
}

func TestPDF_Exchangeable(t *testing.T) {
	// Every unrotated family here satisfies c(u,v) = c(v,u).
	for _, tc := range allFamilyCases() {
		if tc.rot != R0 {
			continue
		}
		t.Run(tc.name, func(t *testing.T) {
			c := MustNew(tc.family, tc.rot, tc.params)
			a, err := c.PDF([]float64{0.3}, []float64{0.8})
			require.NoError(t, err)
			b, err := c.PDF([]float64{0.8}, []float64{0.3})
			require.NoError(t, err)
			assert.InDelta(t, a[0], b[0], 1e-10)
		})
	}
}

func TestHFunc1_IsConditionalCDF(t *testing.T) {
	// F(v|u) must run from ~0 to ~1 and increase in v.
	for _, tc := range allFamilyCases() {
		t.Run(tc.name, func(t *testing.T) {
			c := MustNew(tc.family, tc.rot, tc.params)
			u := []float64{0.4, 0.4, 0.4, 0.4}
			v := []float64{0, 0.3, 0.7, 1}
			h, err := c.HFunc1(u, v)
			require.NoError(t, err)
			assert.InDelta(t, 0, h[0], 1e-6, "lower boundary")
			assert.InDelta(t, 1, h[3], 1e-6, "upper boundary")
			assert.Less(t, h[1], h[2], "monotone in v")
		})
	}
}

func TestHInv_RoundTrips(t *testing.T) {
	u := []float64{0.15, 0.5, 0.85}
	q := []float64{0.3, 0.6, 0.9}
	for _, tc := range allFamilyCases() {
		t.Run(tc.name, func(t *testing.T) {
			c := MustNew(tc.family, tc.rot, tc.params)

			v, err := c.HInv1(u, q)
			require.NoError(t, err)
			back, err := c.HFunc1(u, v)
			require.NoError(t, err)
			for i := range q {
				assert.InDelta(t, q[i], back[i], 1e-6, "HFunc1(HInv1) row %d", i)
			}

			w, err := c.HInv2(q, u)
			require.NoError(t, err)
			back, err = c.HFunc2(w, u)
			require.NoError(t, err)
			for i := range q {
				assert.InDelta(t, q[i], back[i], 1e-6, "HFunc2(HInv2) row %d", i)
			}
		})
	}
}

func TestTau_ParameterRoundTrips(t *testing.T) {
	for _, tc := range allFamilyCases() {
		t.Run(tc.name, func(t *testing.T) {
			c := MustNew(tc.family, tc.rot, tc.params)
			p, err := c.TauToParameters(c.Tau())
			require.NoError(t, err)
			assert.InDelta(t, tc.params[0], p[0], 1e-4, "theta -> tau -> theta")
		})
	}
}

func TestFrank_TauProperties(t *testing.T) {
	pos := MustNew(Frank, R0, []float64{4})
	neg := MustNew(Frank, R0, []float64{-4})
	assert.InDelta(t, pos.Tau(), -neg.Tau(), 1e-10, "tau is odd in theta")
	assert.Greater(t, pos.Tau(), 0.0)

	// Known value: tau(4) = 1 - (4/4)(1 - D1(4)) = D1(4) ~ 0.38815.
	assert.InDelta(t, 0.38815, pos.Tau(), 5e-4)

	_, err := pos.TauToParameters(0)
	assert.ErrorIs(t, err, ErrTau, "tau=0 means independence, not a Frank fit")
}

func TestGumbel_ThetaOneIsIndependence(t *testing.T) {
	c := MustNew(Gumbel, R0, []float64{1})
	u := []float64{0.25, 0.6}
	v := []float64{0.7, 0.35}
	pdf, err := c.PDF(u, v)
	require.NoError(t, err)
	h1, err := c.HFunc1(u, v)
	require.NoError(t, err)
	for i := range u {
		assert.InDelta(t, 1, pdf[i], 1e-9, "row %d", i)
		assert.InDelta(t, v[i], h1[i], 1e-9, "row %d", i)
	}
	assert.Zero(t, c.Tau())
}

func TestRotated_TailMirrors(t *testing.T) {
	// A 180-degree (survival) copula evaluates the base density at the
	// reflected point: c180(u,v) = c(1-u, 1-v).
	base := MustNew(Clayton, R0, []float64{3})
	surv := MustNew(Clayton, R180, []float64{3})

	a, err := base.PDF([]float64{0.1}, []float64{0.15})
	require.NoError(t, err)
	b, err := surv.PDF([]float64{0.9}, []float64{0.85})
	require.NoError(t, err)
	assert.InDelta(t, a[0], b[0], 1e-10)
}
