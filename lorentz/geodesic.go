// SPDX-License-Identifier: MIT

package lorentz

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Geodesic returns γ(t) for the constant-speed geodesic with γ(0) = x and
// γ'(0) = u, i.e. Expmap(x, t·u). Its speed is ‖u‖_L.
func Geodesic(t float64, x, u []float64, k float64, opts ...Option) ([]float64, error) {
	if err := validatePair(x, u); err != nil {
		return nil, lorentzErrorf("Geodesic", err)
	}
	if err := validateK(k); err != nil {
		return nil, lorentzErrorf("Geodesic", err)
	}
	if math.IsNaN(t) || math.IsInf(t, 0) {
		return nil, lorentzErrorf("Geodesic", ErrInvalidParameter)
	}
	o := gatherOptions(opts...)
	tu := make([]float64, len(u))
	floats.ScaleTo(tu, t, u)
	out := make([]float64, len(x))
	expmapInto(out, x, tu, k, o)

	return out, nil
}

// GeodesicUnit returns γ(t) for the unit-speed geodesic leaving x in the
// direction of the tangent vector u:
//
//	û = u/‖u‖_L,   γ(t) = cosh(√k·t)·x + sinh(√k·t)/√k·û.
//
// Dist(x, γ(t)) = |t|: the parameter is arc length.
// Returns ErrZeroTangent when ‖u‖_L² ≤ eps.
func GeodesicUnit(t float64, x, u []float64, k float64, opts ...Option) ([]float64, error) {
	if err := validatePair(x, u); err != nil {
		return nil, lorentzErrorf("GeodesicUnit", err)
	}
	if err := validateK(k); err != nil {
		return nil, lorentzErrorf("GeodesicUnit", err)
	}
	o := gatherOptions(opts...)
	out := make([]float64, len(x))
	if err := geodesicUnitInto(out, t, x, u, k, o); err != nil {
		return nil, lorentzErrorf("GeodesicUnit", err)
	}

	return out, nil
}

// geodesicUnitInto is the kernel behind GeodesicUnit. dst must not alias x or u.
func geodesicUnitInto(dst []float64, t float64, x, u []float64, k float64, o Options) error {
	if math.IsNaN(t) || math.IsInf(t, 0) {
		return ErrInvalidParameter
	}
	sq := inner(u, u)
	if !(sq > o.eps) {
		return ErrZeroTangent
	}
	sk := math.Sqrt(k)
	a := sk * t

	floats.ScaleTo(dst, math.Cosh(a), x)
	floats.AddScaled(dst, math.Sinh(a)/(sk*math.Sqrt(sq)), u)

	return nil
}
