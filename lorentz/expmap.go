// SPDX-License-Identifier: MIT

package lorentz

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Expmap follows the geodesic leaving x with initial velocity u for unit time.
//
// Implementation:
//   - Stage 1: n = ‖u‖_L; only an exactly zero (or timelike) tangent returns a copy of x.
//   - Stage 2: a = min(√k·n, maxNorm).
//   - Stage 3: y = cosh(a)·x + sinh(a)/(√k·n)·u, then Project(y) to remove drift.
//     Unclamped, the coefficient is sinh(a)/a, evaluated by series for tiny a,
//     so tangents of any positive length move the point.
//
// u is expected to be tangent at x (use ProjectU otherwise).
// Complexity: O(n), allocates the result.
func Expmap(x, u []float64, k float64, opts ...Option) ([]float64, error) {
	if err := validatePair(x, u); err != nil {
		return nil, lorentzErrorf("Expmap", err)
	}
	if err := validateK(k); err != nil {
		return nil, lorentzErrorf("Expmap", err)
	}
	o := gatherOptions(opts...)
	out := make([]float64, len(x))
	expmapInto(out, x, u, k, o)

	return out, nil
}

// Logmap returns the tangent vector at x whose Expmap reaches y:
//
//	w = y + k⟨x,y⟩_L·x,   Logmap(x,y) = Dist(x,y)·w/‖w‖_L.
//
// On the manifold ‖w‖_L = sinh(√k·d)/√k with d = Dist(x,y), so the scale is
// taken as √k·d/sinh(√k·d) instead of the cancellation-prone ‖w‖_L.
// Logmap(x,y) is the zero vector exactly when Dist(x,y) = 0.
// Complexity: O(n), allocates the result.
func Logmap(x, y []float64, k float64, opts ...Option) ([]float64, error) {
	if err := validatePair(x, y); err != nil {
		return nil, lorentzErrorf("Logmap", err)
	}
	if err := validateK(k); err != nil {
		return nil, lorentzErrorf("Logmap", err)
	}
	o := gatherOptions(opts...)
	out := make([]float64, len(x))
	logmapInto(out, x, y, k, o)

	return out, nil
}

// Expmap0 is Expmap at the origin (1/√k, 0, …, 0).
func Expmap0(u []float64, k float64, opts ...Option) ([]float64, error) {
	origin, err := Origin(len(u), k)
	if err != nil {
		return nil, lorentzErrorf("Expmap0", err)
	}

	return Expmap(origin, u, k, opts...)
}

// Logmap0 is Logmap at the origin (1/√k, 0, …, 0).
func Logmap0(y []float64, k float64, opts ...Option) ([]float64, error) {
	origin, err := Origin(len(y), k)
	if err != nil {
		return nil, lorentzErrorf("Logmap0", err)
	}

	return Logmap(origin, y, k, opts...)
}

// expmapInto is the unchecked kernel behind Expmap. dst must not alias x or u.
func expmapInto(dst, x, u []float64, k float64, o Options) {
	sq := inner(u, u)
	if !(sq > 0) {
		copy(dst, x)
		return
	}
	sk := math.Sqrt(k)
	a := sk * math.Sqrt(sq)
	coef := sinhc(a)
	if a > o.maxNorm {
		coef = math.Sinh(o.maxNorm) / a
		a = o.maxNorm
	}

	floats.ScaleTo(dst, math.Cosh(a), x)
	floats.AddScaled(dst, coef, u)
	projectInto(dst, dst, k)
}

// logmapInto is the unchecked kernel behind Logmap. dst must not alias x or y.
func logmapInto(dst, x, y []float64, k float64, _ Options) {
	d := dist(x, y, k)
	if d == 0 {
		for i := range dst {
			dst[i] = 0
		}
		return
	}
	floats.AddScaledTo(dst, y, k*inner(x, y), x)
	floats.Scale(1/sinhc(math.Sqrt(k)*d), dst)
}

// sinhcSeriesCutoff is where sinh(a)/a switches to its Taylor series.
const sinhcSeriesCutoff = 1e-4

// sinhc returns sinh(a)/a, with sinhc(0) = 1.
func sinhc(a float64) float64 {
	if math.Abs(a) < sinhcSeriesCutoff {
		a2 := a * a
		return 1 + a2/6*(1+a2/20)
	}

	return math.Sinh(a) / a
}
