// SPDX-License-Identifier: MIT

package lorentz

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Inner returns the Lorentzian inner product ⟨u,v⟩_L = -u0·v0 + Σ_{i≥1} ui·vi.
// Returns ErrDimensionMismatch when len(u) != len(v) or len(u) < 2.
// Complexity: O(n).
func Inner(u, v []float64) (float64, error) {
	if err := validatePair(u, v); err != nil {
		return 0, lorentzErrorf("Inner", err)
	}

	return inner(u, v), nil
}

// Norm returns √max(⟨u,u⟩_L, eps), the Lorentzian norm of a tangent vector.
// Timelike inputs (⟨u,u⟩ < 0) are clamped to √eps, never NaN.
// Complexity: O(n).
func Norm(u []float64, opts ...Option) (float64, error) {
	if len(u) < 2 {
		return 0, lorentzErrorf("Norm", ErrDimensionMismatch)
	}
	o := gatherOptions(opts...)

	return norm(u, o.eps), nil
}

// Dist returns the geodesic distance between points x and y on H^n_k.
//
// Implementation:
//   - Stage 1: c² = ⟨x-y, x-y⟩_L (the squared chord, ≥ 0 on one sheet).
//   - Stage 2: d = (2/√k)·asinh(√k·c/2).
//
// This equals (1/√k)·arcosh(-k⟨x,y⟩) on the manifold but keeps full relative
// precision for nearby points, where arcosh(1+δ) loses half the digits.
// Complexity: O(n).
func Dist(x, y []float64, k float64) (float64, error) {
	if err := validatePair(x, y); err != nil {
		return 0, lorentzErrorf("Dist", err)
	}
	if err := validateK(k); err != nil {
		return 0, lorentzErrorf("Dist", err)
	}

	return dist(x, y, k), nil
}

// inner is the unchecked kernel behind Inner.
func inner(u, v []float64) float64 {
	return floats.Dot(u[1:], v[1:]) - u[0]*v[0]
}

// norm is the unchecked kernel behind Norm.
func norm(u []float64, eps float64) float64 {
	return math.Sqrt(math.Max(inner(u, u), eps))
}

// dist is the unchecked kernel behind Dist.
func dist(x, y []float64, k float64) float64 {
	var (
		d0  = x[0] - y[0]
		acc = -d0 * d0
	)
	for i := 1; i < len(x); i++ {
		di := x[i] - y[i]
		acc += di * di
	}
	if acc <= 0 {
		return 0
	}
	sk := math.Sqrt(k)

	return 2 / sk * math.Asinh(sk*math.Sqrt(acc)/2)
}

// validatePair checks that u and v are usable as Minkowski vectors together.
func validatePair(u, v []float64) error {
	if len(u) < 2 || len(u) != len(v) {
		return ErrDimensionMismatch
	}

	return nil
}
