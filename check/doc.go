// Package check turns the correctness properties of the lorentz package into
// reusable, reportable checks over batches of points.
//
// Three properties are covered:
//
//	ExpLogInverse      Expmap(a, Logmap(a, b)) ≈ b
//	TransportIsometry  ⟨PT(v), PT(u)⟩_L ≈ ⟨v, u⟩_L for tangents v, u at a
//	GeodesicUnitSpeed  Dist(γ(0), γ(t)) ≈ t at segments+1 evenly spaced t ∈ [0, 1]
//
// Every check returns a Report (maximum absolute and relative error, number of
// compared values, pass/fail against a Tolerance). A failed Report is not an
// error; Report.Err converts it into one wrapping ErrToleranceExceeded.
// Invalid inputs (shapes, curvature, zero directions) are returned as errors.
//
// Points are re-projected onto the hyperboloid in float64 before evaluation,
// so float32 fixtures are judged on their stored coordinates, not on the
// rounding of their time component.
//
// Suite draws fixtures with the sampler package and runs all three checks.
package check
