// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Tolerance comparisons used by the property checks and by tests.
//   - Semantics follow numpy.testing.assert_allclose: |a-b| ≤ atol + rtol·|b|,
//     with b the reference ("desired") operand. NaN never compares close.
//
// Determinism & Performance:
//   - Dense fast-path over the flat buffers; generic fallback via At.

package matrix

import "math"

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// NaN != anything; +Inf equals +Inf; -Inf equals -Inf.
// Time: O(r*c). Space: O(1).
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol|; NaN/Inf tolerances yield ErrNaNInf.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if isNonFinite(rtol) || isNonFinite(atol) {
		return false, matrixErrorf("AllClose", ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	ok := true
	err := eachPair("AllClose", a, b, func(av, bv float64) bool {
		if !closeScalar(av, bv, rtol, atol) {
			ok = false
			return false // early exit on first violation
		}
		return true
	})
	if err != nil {
		return false, err
	}

	return ok, nil
}

// MaxAbsDiff returns max |a-b| over all elements. NaN anywhere yields NaN.
// Time: O(r*c). Space: O(1).
func MaxAbsDiff(a, b Matrix) (float64, error) {
	var worst float64
	err := eachPair("MaxAbsDiff", a, b, func(av, bv float64) bool {
		d := math.Abs(av - bv)
		if math.IsNaN(d) {
			worst = d
			return false
		}
		if d > worst {
			worst = d
		}
		return true
	})
	if err != nil {
		return 0, err
	}

	return worst, nil
}

// MaxRelDiff returns max |a-b|/|b| over elements with b != 0.
// Elements where b == 0 are skipped (relative error is undefined there).
// Time: O(r*c). Space: O(1).
func MaxRelDiff(a, b Matrix) (float64, error) {
	var worst float64
	err := eachPair("MaxRelDiff", a, b, func(av, bv float64) bool {
		if bv == 0 {
			return true
		}
		d := math.Abs(av-bv) / math.Abs(bv)
		if math.IsNaN(d) {
			worst = d
			return false
		}
		if d > worst {
			worst = d
		}
		return true
	})
	if err != nil {
		return 0, err
	}

	return worst, nil
}

// closeScalar is the scalar kernel behind AllClose.
func closeScalar(a, b, rtol, atol float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return false
	}
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return a == b
	}

	return math.Abs(a-b) <= atol+rtol*math.Abs(b)
}

// eachPair validates a and b, then visits aligned elements in row-major order
// until fn returns false.
func eachPair(tag string, a, b Matrix, fn func(av, bv float64) bool) error {
	if err := ValidateNotNil(a); err != nil {
		return matrixErrorf(tag, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return matrixErrorf(tag, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return matrixErrorf(tag, err)
	}

	// Dense fast-path: operate over flat slices when both are *Dense.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range da.data {
				if !fn(da.data[idx], db.data[idx]) {
					return nil
				}
			}
			return nil
		}
	}

	// Generic fallback via At (bounds-safe; still deterministic).
	var i, j int
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			av, err := a.At(i, j)
			if err != nil {
				return matrixErrorf(tag, err)
			}
			bv, err := b.At(i, j)
			if err != nil {
				return matrixErrorf(tag, err)
			}
			if !fn(av, bv) {
				return nil
			}
		}
	}

	return nil
}
