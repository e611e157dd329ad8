// SPDX-License-Identifier: MIT
// Package lorentz_test contains test helpers
//
// Purpose:
//   • Deterministic random points/tangents without depending on the sampler
//     package, so the engine is tested in isolation.

package lorentz_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lorentz/lorentz"
	"github.com/katalvlaran/lorentz/matrix"
	"github.com/stretchr/testify/require"
)

// curvatures exercised by table-driven tests.
var curvatures = []float64{0.25, 1, 2.5}

// randomPoint draws a spatial part with Euclidean norm ≤ radius/√k and projects it.
func randomPoint(t testing.TB, rng *rand.Rand, dim int, k, radius float64) []float64 {
	t.Helper()
	x := make([]float64, dim)
	var sq float64
	for i := 1; i < dim; i++ {
		x[i] = rng.NormFloat64()
		sq += x[i] * x[i]
	}
	scale := radius * rng.Float64() / math.Sqrt(k*sq)
	for i := 1; i < dim; i++ {
		x[i] *= scale
	}
	p, err := lorentz.Project(x, k)
	require.NoError(t, err)

	return p
}

// randomTangent draws U[0,1) coordinates and projects them onto T_x.
func randomTangent(t testing.TB, rng *rand.Rand, x []float64, k float64) []float64 {
	t.Helper()
	v := make([]float64, len(x))
	for i := range v {
		v[i] = rng.Float64()
	}
	u, err := lorentz.ProjectU(x, v, k)
	require.NoError(t, err)

	return u
}

// requireOnManifold asserts k⟨x,x⟩ = -1 within tol and x0 > 0.
func requireOnManifold(t testing.TB, x []float64, k, tol float64) {
	t.Helper()
	ip, err := lorentz.Inner(x, x)
	require.NoError(t, err)
	require.InDelta(t, -1, k*ip, tol)
	require.Greater(t, x[0], 0.0)
}

// requireSliceInDelta compares two vectors element-wise.
func requireSliceInDelta(t testing.TB, want, got []float64, delta float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		require.InDelta(t, want[i], got[i], delta, "index %d", i)
	}
}

// stackRows builds a batch from vectors or fails the test.
func stackRows(t testing.TB, rows ...[]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

// mustScalar builds a scalar Curvature or fails the test.
func mustScalar(t testing.TB, k float64) lorentz.Curvature {
	t.Helper()
	c, err := lorentz.Scalar(k)
	require.NoError(t, err)

	return c
}
