// SPDX-License-Identifier: MIT
// Package lorentz: sentinel error set.
// Exported functions return these (wrapped with an operation tag); callers
// match them via errors.Is.

package lorentz

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCurvature is returned when k is NaN, ±Inf or not strictly positive,
	// or when a per-sample Curvature does not broadcast to the batch size.
	ErrInvalidCurvature = errors.New("lorentz: curvature must be finite and > 0")

	// ErrDimensionMismatch indicates vectors of different lengths, vectors
	// shorter than 2 (no spatial part), or batches of different shapes.
	ErrDimensionMismatch = errors.New("lorentz: dimension mismatch")

	// ErrNilBatch indicates a nil *matrix.Dense batch argument.
	ErrNilBatch = errors.New("lorentz: nil batch")

	// ErrNotOnManifold indicates a point violating ⟨x,x⟩_L = -1/k or x0 > 0.
	ErrNotOnManifold = errors.New("lorentz: point is not on the hyperboloid")

	// ErrNotTangent indicates a vector v with ⟨x,v⟩_L ≠ 0 at the given point.
	ErrNotTangent = errors.New("lorentz: vector is not in the tangent space")

	// ErrZeroTangent indicates an operation that needs a direction received
	// a tangent vector of (numerically) zero Lorentzian norm.
	ErrZeroTangent = errors.New("lorentz: tangent vector has zero norm")

	// ErrInvalidParameter indicates a NaN or ±Inf geodesic parameter t.
	ErrInvalidParameter = errors.New("lorentz: parameter must be finite")

	// ErrOutsideBall indicates a Poincaré-ball point with norm ≥ 1.
	ErrOutsideBall = errors.New("lorentz: point is outside the Poincaré ball")
)

// lorentzErrorf wraps err with an operation tag.
func lorentzErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// rowErrorf wraps err with an operation tag and the failing batch row.
func rowErrorf(tag string, row int, err error) error {
	return fmt.Errorf("%s: row %d: %w", tag, row, err)
}
