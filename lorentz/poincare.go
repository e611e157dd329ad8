package lorentz

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// ToPoincare maps x ∈ H^n_k to the open unit Poincaré ball B^n:
//
//	p = x_{1:} / (x0 + 1/√k).
//
// The result has length len(x)-1 and ‖p‖₂ < 1.
func ToPoincare(x []float64, k float64) ([]float64, error) {
	if len(x) < 2 {
		return nil, lorentzErrorf("ToPoincare", ErrDimensionMismatch)
	}
	if err := validateK(k); err != nil {
		return nil, lorentzErrorf("ToPoincare", err)
	}
	out := make([]float64, len(x)-1)
	floats.ScaleTo(out, 1/(x[0]+1/math.Sqrt(k)), x[1:])

	return out, nil
}

// FromPoincare is the inverse of ToPoincare:
//
//	s = ‖p‖₂²,   x = (1/√k)·(1+s, 2p) / (1-s).
//
// Returns ErrOutsideBall when s ≥ 1.
func FromPoincare(p []float64, k float64) ([]float64, error) {
	if len(p) < 1 {
		return nil, lorentzErrorf("FromPoincare", ErrDimensionMismatch)
	}
	if err := validateK(k); err != nil {
		return nil, lorentzErrorf("FromPoincare", err)
	}
	s := floats.Dot(p, p)
	if !(s < 1) {
		return nil, lorentzErrorf("FromPoincare", ErrOutsideBall)
	}
	scale := 1 / (math.Sqrt(k) * (1 - s))
	out := make([]float64, len(p)+1)
	out[0] = scale * (1 + s)
	floats.ScaleTo(out[1:], 2*scale, p)

	return out, nil
}
