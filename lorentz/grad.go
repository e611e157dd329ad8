package lorentz

// EGrad2RGrad converts a Euclidean gradient g of a function on R^{n+1},
// evaluated at x ∈ H^n_k, into the Riemannian gradient on the hyperboloid:
// raise the index with the Minkowski metric (negate g0), then project onto
// the tangent space at x with ProjectU.
func EGrad2RGrad(x, g []float64, k float64) ([]float64, error) {
	if err := validatePair(x, g); err != nil {
		return nil, lorentzErrorf("EGrad2RGrad", err)
	}
	if err := validateK(k); err != nil {
		return nil, lorentzErrorf("EGrad2RGrad", err)
	}
	out := make([]float64, len(g))
	copy(out, g)
	out[0] = -out[0]
	projectUInto(out, x, out, k)

	return out, nil
}
