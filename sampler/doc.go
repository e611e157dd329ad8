// Package sampler generates deterministic random fixtures on the hyperboloid:
// batches of points on H^n_k, tangent vectors at those points, and
// (optionally per-sample) curvatures.
//
// Sampling modes:
//
//	Bounded           — one N(-1,1) vector per row, normalised, shrunk by
//	                    Shrink (1.3) and scaled by R·√U(0,1) with a single U
//	                    for the whole batch, then projected onto H^n_k.
//	BoundedPerSample  — as Bounded, but U is drawn per row.
//	Unbounded         — standard normal rows projected onto H^n_k.
//
// Dtype rounds every stored coordinate to float32, float16 (IEEE 754 half)
// or bfloat16 after projection, mimicking fixtures kept in lower precision.
//
// R = 1/√k is the hyperboloid radius, so bounded samples keep their spatial
// part inside R/Shrink. Points that far apart stay clear of the regions where
// Expmap∘Logmap loses precision; Unbounded deliberately does not.
//
// Determinism:
//   - Same Options (including Seed) ⇒ identical fixtures on every platform.
//   - Seed 0 selects DefaultSeed; Stream derives independent generators.
//   - A Sampler is NOT goroutine-safe; derive one Stream per goroutine.
//
// Usage:
//
//	opt := sampler.DefaultOptions()
//	opt.Mode = sampler.BoundedPerSample
//	s, _ := sampler.New(opt)
//	k, _ := s.Curvature(100)
//	a, _ := s.Points(100, 10, k)
//	v, _ := s.Tangents(a, k)
package sampler
