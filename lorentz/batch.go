// SPDX-License-Identifier: MIT
// Package: lorentz
//
// Purpose:
//   - Batched counterparts of the vector operations: one sample per row of a
//     *matrix.Dense, curvature broadcast from a Curvature (scalar or per-row).
//   - Validation happens once per call; rows then go through the same
//     unchecked kernels as the vector API, so both paths agree bit-for-bit.
//
// Determinism & Performance:
//   - Fixed row order, no goroutines, one output allocation per call.

package lorentz

import (
	"math"

	"github.com/katalvlaran/lorentz/matrix"
)

// ProjectBatch applies Project to every row of x.
func ProjectBatch(x *matrix.Dense, k Curvature) (*matrix.Dense, error) {
	out, err := prepareBatch("ProjectBatch", k, x)
	if err != nil {
		return nil, err
	}
	c := x.Cols()
	xs, dst := x.RawData(), out.RawData()
	for i := 0; i < x.Rows(); i++ {
		projectInto(rowOf(dst, c, i), rowOf(xs, c, i), k.At(i))
	}

	return out, nil
}

// ProjectUBatch applies ProjectU row-wise: row i of v onto the tangent space at row i of x.
func ProjectUBatch(x, v *matrix.Dense, k Curvature) (*matrix.Dense, error) {
	out, err := prepareBatch("ProjectUBatch", k, x, v)
	if err != nil {
		return nil, err
	}
	c := x.Cols()
	xs, vs, dst := x.RawData(), v.RawData(), out.RawData()
	for i := 0; i < x.Rows(); i++ {
		projectUInto(rowOf(dst, c, i), rowOf(xs, c, i), rowOf(vs, c, i), k.At(i))
	}

	return out, nil
}

// InnerBatch returns ⟨u_i, v_i⟩_L for every row i (the keepdim column, flattened).
func InnerBatch(u, v *matrix.Dense) ([]float64, error) {
	if err := validateBatches(u, v); err != nil {
		return nil, lorentzErrorf("InnerBatch", err)
	}
	c := u.Cols()
	us, vs := u.RawData(), v.RawData()
	out := make([]float64, u.Rows())
	for i := range out {
		out[i] = inner(rowOf(us, c, i), rowOf(vs, c, i))
	}

	return out, nil
}

// DistBatch returns Dist(x_i, y_i) for every row i.
func DistBatch(x, y *matrix.Dense, k Curvature) ([]float64, error) {
	if err := validateBatches(x, y); err != nil {
		return nil, lorentzErrorf("DistBatch", err)
	}
	if err := k.broadcastTo(x.Rows()); err != nil {
		return nil, lorentzErrorf("DistBatch", err)
	}
	c := x.Cols()
	xs, ys := x.RawData(), y.RawData()
	out := make([]float64, x.Rows())
	for i := range out {
		out[i] = dist(rowOf(xs, c, i), rowOf(ys, c, i), k.At(i))
	}

	return out, nil
}

// ExpmapBatch applies Expmap row-wise.
func ExpmapBatch(x, u *matrix.Dense, k Curvature, opts ...Option) (*matrix.Dense, error) {
	out, err := prepareBatch("ExpmapBatch", k, x, u)
	if err != nil {
		return nil, err
	}
	o := gatherOptions(opts...)
	c := x.Cols()
	xs, us, dst := x.RawData(), u.RawData(), out.RawData()
	for i := 0; i < x.Rows(); i++ {
		expmapInto(rowOf(dst, c, i), rowOf(xs, c, i), rowOf(us, c, i), k.At(i), o)
	}

	return out, nil
}

// LogmapBatch applies Logmap row-wise.
func LogmapBatch(x, y *matrix.Dense, k Curvature, opts ...Option) (*matrix.Dense, error) {
	out, err := prepareBatch("LogmapBatch", k, x, y)
	if err != nil {
		return nil, err
	}
	o := gatherOptions(opts...)
	c := x.Cols()
	xs, ys, dst := x.RawData(), y.RawData(), out.RawData()
	for i := 0; i < x.Rows(); i++ {
		logmapInto(rowOf(dst, c, i), rowOf(xs, c, i), rowOf(ys, c, i), k.At(i), o)
	}

	return out, nil
}

// ParallelTransportBatch transports row i of v from row i of x to row i of y.
func ParallelTransportBatch(x, y, v *matrix.Dense, k Curvature, opts ...Option) (*matrix.Dense, error) {
	out, err := prepareBatch("ParallelTransportBatch", k, x, y, v)
	if err != nil {
		return nil, err
	}
	o := gatherOptions(opts...)
	c := x.Cols()
	xs, ys, vs, dst := x.RawData(), y.RawData(), v.RawData(), out.RawData()
	for i := 0; i < x.Rows(); i++ {
		transportInto(rowOf(dst, c, i), rowOf(xs, c, i), rowOf(ys, c, i), rowOf(vs, c, i), k.At(i), o)
	}

	return out, nil
}

// GeodesicUnitBatch evaluates GeodesicUnit at every parameter in ts for every
// row, returning one batch per parameter: result[j] row i is γ_i(ts[j]).
// This is the (T, N, n+1) layout of a parameter column broadcast over a batch.
func GeodesicUnitBatch(ts []float64, x, u *matrix.Dense, k Curvature, opts ...Option) ([]*matrix.Dense, error) {
	if len(ts) == 0 {
		return nil, lorentzErrorf("GeodesicUnitBatch", ErrDimensionMismatch)
	}
	if err := validateBatches(x, u); err != nil {
		return nil, lorentzErrorf("GeodesicUnitBatch", err)
	}
	if err := k.broadcastTo(x.Rows()); err != nil {
		return nil, lorentzErrorf("GeodesicUnitBatch", err)
	}
	for _, t := range ts {
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return nil, lorentzErrorf("GeodesicUnitBatch", ErrInvalidParameter)
		}
	}
	o := gatherOptions(opts...)
	r, c := x.Rows(), x.Cols()
	xs, us := x.RawData(), u.RawData()
	out := make([]*matrix.Dense, len(ts))
	for j, t := range ts {
		step, err := matrix.NewDense(r, c)
		if err != nil {
			return nil, lorentzErrorf("GeodesicUnitBatch", err)
		}
		dst := step.RawData()
		for i := 0; i < r; i++ {
			if err = geodesicUnitInto(rowOf(dst, c, i), t, rowOf(xs, c, i), rowOf(us, c, i), k.At(i), o); err != nil {
				return nil, rowErrorf("GeodesicUnitBatch", i, err)
			}
		}
		out[j] = step
	}

	return out, nil
}

// CheckBatch runs Check on every row and reports the first violation.
func CheckBatch(x *matrix.Dense, k Curvature, opts ...Option) error {
	if err := validateBatches(x); err != nil {
		return lorentzErrorf("CheckBatch", err)
	}
	if err := k.broadcastTo(x.Rows()); err != nil {
		return lorentzErrorf("CheckBatch", err)
	}
	c := x.Cols()
	xs := x.RawData()
	for i := 0; i < x.Rows(); i++ {
		if err := Check(rowOf(xs, c, i), k.At(i), opts...); err != nil {
			return rowErrorf("CheckBatch", i, err)
		}
	}

	return nil
}

// prepareBatch validates the operands and curvature and allocates the output
// with the shape of the first operand.
func prepareBatch(tag string, k Curvature, ms ...*matrix.Dense) (*matrix.Dense, error) {
	if err := validateBatches(ms...); err != nil {
		return nil, lorentzErrorf(tag, err)
	}
	if err := k.broadcastTo(ms[0].Rows()); err != nil {
		return nil, lorentzErrorf(tag, err)
	}
	out, err := matrix.NewDense(ms[0].Rows(), ms[0].Cols())
	if err != nil {
		return nil, lorentzErrorf(tag, err)
	}

	return out, nil
}

// validateBatches checks non-nil operands of one shape with at least two columns.
func validateBatches(ms ...*matrix.Dense) error {
	for _, m := range ms {
		if m == nil {
			return ErrNilBatch
		}
	}
	if ms[0].Cols() < 2 {
		return ErrDimensionMismatch
	}
	for _, m := range ms[1:] {
		if m.Rows() != ms[0].Rows() || m.Cols() != ms[0].Cols() {
			return ErrDimensionMismatch
		}
	}

	return nil
}

// rowOf slices row i out of a flat row-major buffer with c columns.
func rowOf(data []float64, c, i int) []float64 {
	return data[i*c : (i+1)*c : (i+1)*c]
}
