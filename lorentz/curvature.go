// SPDX-License-Identifier: MIT

package lorentz

import "math"

// Curvature holds the curvature magnitude k for a batch: either one scalar
// shared by every row, or one value per row (the (N,1) broadcast shape).
// The zero value is invalid; build it with Scalar or PerSample.
type Curvature struct {
	values []float64
}

// Scalar returns a Curvature that broadcasts k to every row.
// Returns ErrInvalidCurvature unless k is finite and > 0.
func Scalar(k float64) (Curvature, error) {
	if err := validateK(k); err != nil {
		return Curvature{}, lorentzErrorf("Scalar", err)
	}

	return Curvature{values: []float64{k}}, nil
}

// PerSample returns a Curvature with one value per batch row.
// The slice is copied. Every entry must be finite and > 0.
func PerSample(ks []float64) (Curvature, error) {
	if len(ks) == 0 {
		return Curvature{}, lorentzErrorf("PerSample", ErrInvalidCurvature)
	}
	vals := make([]float64, len(ks))
	for i, k := range ks {
		if err := validateK(k); err != nil {
			return Curvature{}, rowErrorf("PerSample", i, err)
		}
		vals[i] = k
	}

	return Curvature{values: vals}, nil
}

// IsScalar reports whether c broadcasts a single value.
func (c Curvature) IsScalar() bool { return len(c.values) == 1 }

// Len returns 1 for scalar curvature, N for per-sample curvature, 0 for the zero value.
func (c Curvature) Len() int { return len(c.values) }

// At returns the curvature for row i, broadcasting scalars.
// Callers must have checked c against the batch size via broadcastTo.
func (c Curvature) At(i int) float64 {
	if len(c.values) == 1 {
		return c.values[0]
	}

	return c.values[i]
}

// Values returns a copy of the stored values.
func (c Curvature) Values() []float64 {
	out := make([]float64, len(c.values))
	copy(out, c.values)

	return out
}

// broadcastTo checks that c can be applied to n rows.
func (c Curvature) broadcastTo(n int) error {
	switch len(c.values) {
	case 0:
		return ErrInvalidCurvature
	case 1, n:
		return nil
	default:
		return ErrInvalidCurvature
	}
}

// validateK enforces finite k > 0.
func validateK(k float64) error {
	if math.IsNaN(k) || math.IsInf(k, 0) || k <= 0 {
		return ErrInvalidCurvature
	}

	return nil
}
