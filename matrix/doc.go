// Package matrix provides the dense row-major container used to hold batches
// of hyperboloid points and tangent vectors.
//
// The matrix package provides:
//
//   - Dense: a row-major float64 matrix backed by one flat slice, where each
//     row is one sample of a batch (N × (n+1) for points in R^{n+1}).
//   - Row access helpers (Row, RowView, SetRow) so per-sample kernels can
//     work on plain []float64 without copying when they do not need to.
//   - Validators and sentinel errors shared by every package in the module.
//   - Tolerance comparisons (AllClose, MaxAbsDiff, MaxRelDiff) mirroring the
//     numpy.testing semantics |a-b| ≤ atol + rtol·|b|.
//   - gonum interop (ToGonum, FromGonum) for callers that continue with
//     gonum.org/v1/gonum/mat linear algebra.
//
// Public indexers never panic on bad input; they return ErrOutOfRange.
package matrix
