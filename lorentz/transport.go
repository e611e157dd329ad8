// SPDX-License-Identifier: MIT

package lorentz

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// ParallelTransport moves the tangent vector v at x along the geodesic to y:
//
//	PT(v) = v + ⟨y,v⟩_L / (1/k - ⟨x,y⟩_L) · (x + y).
//
// The result is tangent at y and PT preserves Lorentzian inner products
// between transported vectors. The denominator is ≥ 2/k on the manifold;
// it is clamped to eps regardless.
// Complexity: O(n), allocates the result.
func ParallelTransport(x, y, v []float64, k float64, opts ...Option) ([]float64, error) {
	if err := validatePair(x, y); err != nil {
		return nil, lorentzErrorf("ParallelTransport", err)
	}
	if err := validatePair(x, v); err != nil {
		return nil, lorentzErrorf("ParallelTransport", err)
	}
	if err := validateK(k); err != nil {
		return nil, lorentzErrorf("ParallelTransport", err)
	}
	o := gatherOptions(opts...)
	out := make([]float64, len(v))
	transportInto(out, x, y, v, k, o)

	return out, nil
}

// ParallelTransport0 transports v from the origin to y.
func ParallelTransport0(y, v []float64, k float64, opts ...Option) ([]float64, error) {
	origin, err := Origin(len(y), k)
	if err != nil {
		return nil, lorentzErrorf("ParallelTransport0", err)
	}

	return ParallelTransport(origin, y, v, k, opts...)
}

// ParallelTransport0Back transports v from x back to the origin.
func ParallelTransport0Back(x, v []float64, k float64, opts ...Option) ([]float64, error) {
	origin, err := Origin(len(x), k)
	if err != nil {
		return nil, lorentzErrorf("ParallelTransport0Back", err)
	}

	return ParallelTransport(x, origin, v, k, opts...)
}

// transportInto is the unchecked kernel behind ParallelTransport.
// dst may alias v but not x or y.
func transportInto(dst, x, y, v []float64, k float64, o Options) {
	coef := inner(y, v) / math.Max(1/k-inner(x, y), o.eps)
	copy(dst, v)
	floats.AddScaled(dst, coef, x)
	floats.AddScaled(dst, coef, y)
}
