// SPDX-License-Identifier: MIT

package lorentz_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lorentz/lorentz"
	"github.com/stretchr/testify/require"
)

func TestParallelTransport_PreservesInner(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(13))
	for _, k := range curvatures {
		for i := 0; i < 100; i++ {
			a := randomPoint(t, rng, 10, k, 2)
			b := randomPoint(t, rng, 10, k, 2)
			v0 := randomTangent(t, rng, a, k)
			u0 := randomTangent(t, rng, a, k)

			v1, err := lorentz.ParallelTransport(a, b, v0, k)
			require.NoError(t, err)
			u1, err := lorentz.ParallelTransport(a, b, u0, k)
			require.NoError(t, err)

			before, _ := lorentz.Inner(v0, u0)
			after, _ := lorentz.Inner(v1, u1)
			require.InDelta(t, before, after, 1e-9)

			require.NoError(t, lorentz.CheckTangent(b, v1, k))
		}
	}
}

func TestParallelTransport_RoundTrip(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(8))
	for _, k := range curvatures {
		a := randomPoint(t, rng, 5, k, 2)
		b := randomPoint(t, rng, 5, k, 2)
		v := randomTangent(t, rng, a, k)
		there, err := lorentz.ParallelTransport(a, b, v, k)
		require.NoError(t, err)
		back, err := lorentz.ParallelTransport(b, a, there, k)
		require.NoError(t, err)
		requireSliceInDelta(t, v, back, 1e-10)
	}
}

func TestParallelTransport_LogmapDirection(t *testing.T) {
	t.Parallel()
	// Transporting log_a(b) to b yields -log_b(a).
	rng := rand.New(rand.NewSource(17))
	for _, k := range curvatures {
		a := randomPoint(t, rng, 4, k, 2)
		b := randomPoint(t, rng, 4, k, 2)
		ab, err := lorentz.Logmap(a, b, k)
		require.NoError(t, err)
		ba, err := lorentz.Logmap(b, a, k)
		require.NoError(t, err)
		moved, err := lorentz.ParallelTransport(a, b, ab, k)
		require.NoError(t, err)
		for i := range ba {
			ba[i] = -ba[i]
		}
		requireSliceInDelta(t, ba, moved, 1e-9)
	}
}

func TestParallelTransport0_AndBack(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(2))
	k := 1.5
	y := randomPoint(t, rng, 4, k, 1)
	v := []float64{0, 0.5, -0.25, 1}
	moved, err := lorentz.ParallelTransport0(y, v, k)
	require.NoError(t, err)
	require.NoError(t, lorentz.CheckTangent(y, moved, k))
	back, err := lorentz.ParallelTransport0Back(y, moved, k)
	require.NoError(t, err)
	requireSliceInDelta(t, v, back, 1e-12)
}

func TestParallelTransport_DimensionErrors(t *testing.T) {
	t.Parallel()
	_, err := lorentz.ParallelTransport([]float64{1, 0}, []float64{1, 0}, []float64{0, 1, 0}, 1)
	require.ErrorIs(t, err, lorentz.ErrDimensionMismatch)
}
