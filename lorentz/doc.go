// Package lorentz implements Riemannian primitives on the Lorentz (hyperboloid)
// model of hyperbolic space with curvature magnitude k > 0.
//
// 🚀 What is the hyperboloid model?
//
//	Points live in Minkowski space R^{n+1} on the upper sheet
//
//	    H^n_k = { x : ⟨x,x⟩_L = -1/k, x0 > 0 },
//	    ⟨u,v⟩_L = -u0·v0 + u1·v1 + … + un·vn.
//
//	The radius of the hyperboloid is R = 1/√k; k = 1 gives the unit model.
//	Tangent vectors at x are the v with ⟨x,v⟩_L = 0.
//
// ✨ Key operations:
//   - Inner, Norm, Dist           — Lorentzian geometry
//   - Project, ProjectU, Origin   — getting onto the manifold / tangent space
//   - Expmap, Logmap (and …0)     — mutually inverse maps point ↔ tangent vector
//   - ParallelTransport (and …0)  — isometric transport between tangent spaces
//   - Geodesic, GeodesicUnit      — constant- and unit-speed geodesics
//   - EGrad2RGrad                 — Euclidean → Riemannian gradient
//   - ToPoincare, FromPoincare    — conversion to/from the Poincaré ball
//
// Every operation exists for a single vector ([]float64, scalar k) and, for
// the hot ones, for a batch (*matrix.Dense, one sample per row) with a
// broadcast Curvature (one value, or one value per row).
//
// ⚙️ Usage:
//
//	k := 1.0
//	a, _ := lorentz.Project([]float64{0, 0.3, -0.2}, k)
//	b, _ := lorentz.Project([]float64{0, -0.1, 0.4}, k)
//	u, _ := lorentz.Logmap(a, b, k)  // tangent vector at a pointing to b
//	bh, _ := lorentz.Expmap(a, u, k) // ≈ b
//
// Numeric policy is configured with functional options (WithEpsilon,
// WithMaxNorm, WithCheckTolerance). Nothing in this package logs or panics on
// user input; invalid inputs return the sentinel errors in errors.go.
//
// Performance:
//
//   - Vector ops: O(n) time, one output allocation.
//   - Batch ops:  O(N·n) time, one output Dense.
package lorentz
