// SPDX-License-Identifier: MIT

package check

import (
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lorentz/lorentz"
	"github.com/katalvlaran/lorentz/matrix"
)

// ExpLogInverse checks Expmap(a, Logmap(a, b)) ≈ b row by row.
// a and b are N×(n+1) batches of points; k broadcasts over the rows.
func ExpLogInverse(a, b *matrix.Dense, k lorentz.Curvature, tol Tolerance, opts ...lorentz.Option) (Report, error) {
	a, b, err := reproject(NameExpLog, k, a, b)
	if err != nil {
		return Report{}, err
	}
	u, err := lorentz.LogmapBatch(a, b, k, opts...)
	if err != nil {
		return Report{}, checkErrorf(NameExpLog, err)
	}
	bh, err := lorentz.ExpmapBatch(a, u, k, opts...)
	if err != nil {
		return Report{}, checkErrorf(NameExpLog, err)
	}

	return compare(NameExpLog, bh, b, tol)
}

// TransportIsometry checks that parallel transport from a to b preserves the
// Lorentzian inner product of v and u. v and u are ambient vectors; they are
// projected onto the tangent spaces at a first.
func TransportIsometry(a, b, v, u *matrix.Dense, k lorentz.Curvature, tol Tolerance, opts ...lorentz.Option) (Report, error) {
	a, b, err := reproject(NameTransport, k, a, b)
	if err != nil {
		return Report{}, err
	}
	v0, err := lorentz.ProjectUBatch(a, v, k)
	if err != nil {
		return Report{}, checkErrorf(NameTransport, err)
	}
	u0, err := lorentz.ProjectUBatch(a, u, k)
	if err != nil {
		return Report{}, checkErrorf(NameTransport, err)
	}
	v1, err := lorentz.ParallelTransportBatch(a, b, v0, k, opts...)
	if err != nil {
		return Report{}, checkErrorf(NameTransport, err)
	}
	u1, err := lorentz.ParallelTransportBatch(a, b, u0, k, opts...)
	if err != nil {
		return Report{}, checkErrorf(NameTransport, err)
	}

	before, err := lorentz.InnerBatch(v0, u0)
	if err != nil {
		return Report{}, checkErrorf(NameTransport, err)
	}
	after, err := lorentz.InnerBatch(v1, u1)
	if err != nil {
		return Report{}, checkErrorf(NameTransport, err)
	}
	want, err := column(before)
	if err != nil {
		return Report{}, checkErrorf(NameTransport, err)
	}
	got, err := column(after)
	if err != nil {
		return Report{}, checkErrorf(NameTransport, err)
	}

	return compare(NameTransport, got, want, tol)
}

// GeodesicUnitSpeed walks the unit-speed geodesic leaving a in the direction
// of b (projected onto T_a) and checks Dist(γ(0), γ(t)) ≈ t at segments+1
// evenly spaced t in [0, 1]. segments ≤ 0 selects DefaultSegments.
func GeodesicUnitSpeed(a, b *matrix.Dense, k lorentz.Curvature, segments int, tol Tolerance, opts ...lorentz.Option) (Report, error) {
	if segments <= 0 {
		segments = DefaultSegments
	}
	a, b, err := reproject(NameGeodesic, k, a, b)
	if err != nil {
		return Report{}, err
	}
	dir, err := lorentz.ProjectUBatch(a, b, k)
	if err != nil {
		return Report{}, checkErrorf(NameGeodesic, err)
	}

	ts := floats.Span(make([]float64, segments+1), 0, 1)
	path, err := lorentz.GeodesicUnitBatch(ts, a, dir, k, opts...)
	if err != nil {
		return Report{}, checkErrorf(NameGeodesic, err)
	}

	n := a.Rows()
	got, err := matrix.NewDense(len(ts), n)
	if err != nil {
		return Report{}, checkErrorf(NameGeodesic, err)
	}
	want, err := matrix.NewDense(len(ts), n)
	if err != nil {
		return Report{}, checkErrorf(NameGeodesic, err)
	}
	for j, t := range ts {
		d, err := lorentz.DistBatch(path[0], path[j], k)
		if err != nil {
			return Report{}, checkErrorf(NameGeodesic, err)
		}
		if err = got.SetRow(j, d); err != nil {
			return Report{}, checkErrorf(NameGeodesic, err)
		}
		for i := 0; i < n; i++ {
			if err = want.Set(j, i, t); err != nil {
				return Report{}, checkErrorf(NameGeodesic, err)
			}
		}
	}

	return compare(NameGeodesic, got, want, tol)
}

// reproject returns copies of a and b with their time coordinate
// recomputed in float64.
func reproject(tag string, k lorentz.Curvature, a, b *matrix.Dense) (*matrix.Dense, *matrix.Dense, error) {
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, nil, checkErrorf(tag, err)
	}
	if err := matrix.ValidateNotNil(b); err != nil {
		return nil, nil, checkErrorf(tag, err)
	}
	pa, err := lorentz.ProjectBatch(a, k)
	if err != nil {
		return nil, nil, checkErrorf(tag, err)
	}
	pb, err := lorentz.ProjectBatch(b, k)
	if err != nil {
		return nil, nil, checkErrorf(tag, err)
	}

	return pa, pb, nil
}

// column wraps vals as a len(vals)×1 batch.
func column(vals []float64) (*matrix.Dense, error) {
	return matrix.NewFilled(len(vals), 1, vals)
}
