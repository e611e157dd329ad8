// SPDX-License-Identifier: MIT

// Package lorentz: functional configuration of the numeric policy.
//   - Option / Options (functional options with unexported state),
//   - documented defaults (constants),
//   - WithX constructors that panic on nonsensical values (programmer error),
//   - gatherOptions resolving setters on top of the defaults.
package lorentz

import "math"

// Numeric policy defaults.
const (
	// DefaultEpsilon clamps the squared norm in Norm and the Transport
	// denominator from below, and is the zero-tangent threshold of
	// GeodesicUnit. Expmap and Logmap never round small inputs to zero.
	DefaultEpsilon = 1e-15

	// DefaultMaxNorm bounds the scaled geodesic length √k·‖u‖ fed into
	// cosh/sinh in Expmap. cosh(50) ≈ 2.6e21, far from float64 overflow.
	DefaultMaxNorm = 50.0

	// DefaultCheckTolerance bounds |k⟨x,x⟩_L + 1| in Check and
	// |⟨x,v⟩_L| ≤ tol·max(1, ‖x‖₂‖v‖₂) in CheckTangent.
	DefaultCheckTolerance = 1e-5
)

const (
	panicEpsilonInvalid   = "lorentz: WithEpsilon: eps must be finite, non-negative"
	panicMaxNormInvalid   = "lorentz: WithMaxNorm: max norm must be finite, > 0"
	panicToleranceInvalid = "lorentz: WithCheckTolerance: tol must be finite, non-negative"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective numeric policy after applying Option setters.
type Options struct {
	eps      float64 // >= 0; DefaultEpsilon
	maxNorm  float64 // > 0; DefaultMaxNorm
	checkTol float64 // >= 0; DefaultCheckTolerance
}

// WithEpsilon sets the lower clamp for squared norms and denominators.
// Panics when eps is NaN, ±Inf or negative.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithMaxNorm bounds √k·‖u‖ in Expmap. Longer tangent vectors are shortened
// to that geodesic length (direction kept).
// Panics when m is NaN, ±Inf or not > 0.
func WithMaxNorm(m float64) Option {
	if math.IsNaN(m) || math.IsInf(m, 0) || m <= 0 {
		panic(panicMaxNormInvalid)
	}

	return func(o *Options) { o.maxNorm = m }
}

// WithCheckTolerance sets the tolerance used by Check and CheckTangent.
// Panics when tol is NaN, ±Inf or negative.
func WithCheckTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.checkTol = tol }
}

// NewOptions resolves option setters against the documented defaults.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// Epsilon returns the effective clamp.
func (o Options) Epsilon() float64 { return o.eps }

// MaxNorm returns the effective Expmap length bound.
func (o Options) MaxNorm() float64 { return o.maxNorm }

// CheckTolerance returns the effective constraint tolerance.
func (o Options) CheckTolerance() float64 { return o.checkTol }

// gatherOptions applies setters in order (last-writer-wins) on top of defaults.
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:      DefaultEpsilon,
		maxNorm:  DefaultMaxNorm,
		checkTol: DefaultCheckTolerance,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
