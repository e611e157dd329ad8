// Package lorentz is a small toolkit for hyperbolic geometry on the Lorentz
// (hyperboloid) model, plus a numerical test bench that keeps it honest.
//
// 🚀 What is in the box?
//
//		• Manifold operations: Project, ProjectU, Inner, Dist, Expmap, Logmap
//		• Transport & geodesics: ParallelTransport, Geodesic, GeodesicUnit
//		• Poincaré ball conversions and Riemannian gradients
//		• Batched variants over row-major matrices with per-row curvature
//		• Seeded fixture generation and reportable property checks
//
// Under the hood, everything is organized under these subpackages:
//
//	lorentz/   — hyperboloid math for curvature k > 0 (vectors and batches)
//	matrix/    — row-major Dense container, validators, tolerance comparisons
//	sampler/   — deterministic random points, tangents and curvatures
//	check/     — exp/log inverse, transport isometry, geodesic unit speed
//	cmd/lorentzcheck — CLI running the checks from flags or a YAML scenario
//	examples/  — runnable walkthroughs
//
// The hyperboloid of curvature k is
//
//	H^n_k = { x ∈ R^{n+1} : ⟨x,x⟩_L = -1/k, x0 > 0 },
//	⟨u,v⟩_L = -u0·v0 + Σ_{i≥1} ui·vi.
//
//	go get github.com/katalvlaran/lorentz/lorentz
package lorentz
