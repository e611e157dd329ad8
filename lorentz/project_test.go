// SPDX-License-Identifier: MIT

package lorentz_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lorentz/lorentz"
	"github.com/stretchr/testify/require"
)

func TestProject_SatisfiesConstraint(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(13))
	for _, k := range curvatures {
		for i := 0; i < 20; i++ {
			x := make([]float64, 10)
			for j := range x {
				x[j] = rng.NormFloat64() * 3
			}
			p, err := lorentz.Project(x, k)
			require.NoError(t, err)
			requireOnManifold(t, p, k, 1e-12)
			require.Equal(t, x[1:], p[1:], "spatial part is kept")
			require.NoError(t, lorentz.Check(p, k))
		}
	}
}

func TestProject_DoesNotMutateInput(t *testing.T) {
	t.Parallel()
	x := []float64{-7, 1, 2}
	_, err := lorentz.Project(x, 1)
	require.NoError(t, err)
	require.Equal(t, []float64{-7, 1, 2}, x)
}

func TestProjectU_IsTangent(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(21))
	for _, k := range curvatures {
		for i := 0; i < 20; i++ {
			x := randomPoint(t, rng, 8, k, 2)
			v := randomTangent(t, rng, x, k)
			ip, err := lorentz.Inner(x, v)
			require.NoError(t, err)
			require.InDelta(t, 0, ip, 1e-12)
			require.NoError(t, lorentz.CheckTangent(x, v, k))

			// projecting a tangent vector again is a no-op
			again, err := lorentz.ProjectU(x, v, k)
			require.NoError(t, err)
			requireSliceInDelta(t, v, again, 1e-12)
		}
	}
}

func TestOrigin(t *testing.T) {
	t.Parallel()
	o, err := lorentz.Origin(4, 4)
	require.NoError(t, err)
	require.Equal(t, []float64{0.5, 0, 0, 0}, o)
	requireOnManifold(t, o, 4, 1e-15)

	_, err = lorentz.Origin(1, 1)
	require.ErrorIs(t, err, lorentz.ErrDimensionMismatch)
}

func TestCheck_Violations(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		x    []float64
		k    float64
	}{
		{"lower-sheet", []float64{-1, 0}, 1},
		{"off-surface", []float64{2, 0}, 1},
		{"wrong-curvature", []float64{1, 0}, 2},
		{"nan", []float64{math.NaN(), 0}, 1},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.ErrorIs(t, lorentz.Check(tc.x, tc.k), lorentz.ErrNotOnManifold)
		})
	}

	// a loose tolerance accepts the near miss
	require.NoError(t, lorentz.Check([]float64{1.01, 0}, 1, lorentz.WithCheckTolerance(0.05)))
}

func TestCheckTangent_Violation(t *testing.T) {
	t.Parallel()
	x := []float64{1, 0, 0}
	require.NoError(t, lorentz.CheckTangent(x, []float64{0, 1, 1}, 1))
	require.ErrorIs(t, lorentz.CheckTangent(x, []float64{1, 1, 1}, 1), lorentz.ErrNotTangent)
}

func TestCheckTangent_ScaleAwareBound(t *testing.T) {
	t.Parallel()
	x := []float64{1, 0, 0}
	cases := []struct {
		name string
		v    []float64
		ok   bool
	}{
		// |⟨x,v⟩| ≤ 1e-5·max(1, ‖x‖₂‖v‖₂)
		{"large within scaled bound", []float64{5e-3, 1000, 0}, true},
		{"large beyond scaled bound", []float64{2e-2, 1000, 0}, false},
		{"small within unit bound", []float64{5e-6, 1e-3, 0}, true},
		{"small beyond unit bound", []float64{2e-5, 1e-3, 0}, false},
	}
	for _, tc := range cases {
		err := lorentz.CheckTangent(x, tc.v, 1)
		if tc.ok {
			require.NoError(t, err, tc.name)
		} else {
			require.ErrorIs(t, err, lorentz.ErrNotTangent, tc.name)
		}
	}
}
