// SPDX-License-Identifier: MIT

package lorentz

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Project maps an ambient vector onto H^n_k by keeping its spatial part and
// recomputing the time coordinate: x0 = √(1/k + Σ_{i≥1} xi²).
// The result always satisfies ⟨x,x⟩_L = -1/k and x0 > 0.
// Complexity: O(n), allocates the result.
func Project(x []float64, k float64) ([]float64, error) {
	if len(x) < 2 {
		return nil, lorentzErrorf("Project", ErrDimensionMismatch)
	}
	if err := validateK(k); err != nil {
		return nil, lorentzErrorf("Project", err)
	}
	out := make([]float64, len(x))
	projectInto(out, x, k)

	return out, nil
}

// ProjectU projects an ambient vector v onto the tangent space at x:
//
//	v' = v + k·⟨x,v⟩_L·x,  so that ⟨x,v'⟩_L = 0 for x on H^n_k.
//
// Complexity: O(n), allocates the result.
func ProjectU(x, v []float64, k float64) ([]float64, error) {
	if err := validatePair(x, v); err != nil {
		return nil, lorentzErrorf("ProjectU", err)
	}
	if err := validateK(k); err != nil {
		return nil, lorentzErrorf("ProjectU", err)
	}
	out := make([]float64, len(x))
	projectUInto(out, x, v, k)

	return out, nil
}

// Origin returns the base point (1/√k, 0, …, 0) of H^n_k in R^{dim}.
// dim counts the time coordinate, so dim must be ≥ 2.
func Origin(dim int, k float64) ([]float64, error) {
	if dim < 2 {
		return nil, lorentzErrorf("Origin", ErrDimensionMismatch)
	}
	if err := validateK(k); err != nil {
		return nil, lorentzErrorf("Origin", err)
	}
	out := make([]float64, dim)
	out[0] = 1 / math.Sqrt(k)

	return out, nil
}

// Check verifies that x lies on the upper sheet of H^n_k:
// x0 > 0 and |k⟨x,x⟩_L + 1| ≤ tol (see WithCheckTolerance).
// Returns ErrNotOnManifold on violation.
func Check(x []float64, k float64, opts ...Option) error {
	if len(x) < 2 {
		return lorentzErrorf("Check", ErrDimensionMismatch)
	}
	if err := validateK(k); err != nil {
		return lorentzErrorf("Check", err)
	}
	o := gatherOptions(opts...)
	if !(x[0] > 0) || math.Abs(k*inner(x, x)+1) > o.checkTol {
		return lorentzErrorf("Check", ErrNotOnManifold)
	}

	return nil
}

// CheckTangent verifies ⟨x,v⟩_L ≈ 0 with a scale-aware bound:
// |⟨x,v⟩_L| ≤ tol·max(1, ‖x‖₂·‖v‖₂). Returns ErrNotTangent on violation.
func CheckTangent(x, v []float64, k float64, opts ...Option) error {
	if err := validatePair(x, v); err != nil {
		return lorentzErrorf("CheckTangent", err)
	}
	if err := validateK(k); err != nil {
		return lorentzErrorf("CheckTangent", err)
	}
	o := gatherOptions(opts...)
	scale := math.Max(1, floats.Norm(x, 2)*floats.Norm(v, 2))
	if ip := inner(x, v); math.IsNaN(ip) || math.Abs(ip) > o.checkTol*scale {
		return lorentzErrorf("CheckTangent", ErrNotTangent)
	}

	return nil
}

// projectInto writes Project(x) into dst. dst may alias x.
func projectInto(dst, x []float64, k float64) {
	spatial := floats.Dot(x[1:], x[1:])
	copy(dst[1:], x[1:])
	dst[0] = math.Sqrt(1/k + spatial)
}

// projectUInto writes ProjectU(x, v) into dst. dst may alias v.
func projectUInto(dst, x, v []float64, k float64) {
	floats.AddScaledTo(dst, v, k*inner(x, v), x)
}
