package lorentz_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lorentz/lorentz"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

func TestPoincare_KnownPoint(t *testing.T) {
	x, err := lorentz.FromPoincare([]float64{0.5, 0}, 1)
	require.NoError(t, err)
	requireSliceInDelta(t, []float64{5.0 / 3, 4.0 / 3, 0}, x, 1e-15)

	o, _ := lorentz.Origin(3, 1)
	d, err := lorentz.Dist(o, x, 1)
	require.NoError(t, err)
	require.InDelta(t, math.Log(3), d, 1e-14) // 2·atanh(1/2)
}

func TestPoincare_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(31))
	for _, k := range curvatures {
		for i := 0; i < 20; i++ {
			x := randomPoint(t, rng, 5, k, 3)
			p, err := lorentz.ToPoincare(x, k)
			require.NoError(t, err)
			require.Len(t, p, 4)
			require.Less(t, floats.Norm(p, 2), 1.0)

			back, err := lorentz.FromPoincare(p, k)
			require.NoError(t, err)
			requireOnManifold(t, back, k, 1e-10)
			requireSliceInDelta(t, x, back, 1e-10)
		}
	}
}

func TestFromPoincare_OutsideBall(t *testing.T) {
	_, err := lorentz.FromPoincare([]float64{0.6, 0.8}, 1)
	require.ErrorIs(t, err, lorentz.ErrOutsideBall)
	_, err = lorentz.FromPoincare(nil, 1)
	require.ErrorIs(t, err, lorentz.ErrDimensionMismatch)
}

func TestEGrad2RGrad(t *testing.T) {
	g, err := lorentz.EGrad2RGrad([]float64{1, 0, 0}, []float64{2, 3, 4}, 1)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 3, 4}, g)

	// For f(x) = c·x the Riemannian gradient r satisfies ⟨r,v⟩_L = c·v on T_x.
	rng := rand.New(rand.NewSource(12))
	for _, k := range curvatures {
		x := randomPoint(t, rng, 6, k, 2)
		c := []float64{0.3, -1, 2, 0.5, 0, 1.5}
		r, err := lorentz.EGrad2RGrad(x, c, k)
		require.NoError(t, err)
		require.NoError(t, lorentz.CheckTangent(x, r, k))
		v := randomTangent(t, rng, x, k)
		got, _ := lorentz.Inner(r, v)
		require.InDelta(t, floats.Dot(c, v), got, 1e-10)
	}
}
