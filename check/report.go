// SPDX-License-Identifier: MIT

package check

import (
	"fmt"

	"github.com/katalvlaran/lorentz/matrix"
)

// Report is the outcome of one check over one batch.
type Report struct {
	Name      string    // one of the Name* constants
	Samples   int       // number of compared scalar values
	MaxAbsErr float64   // max |got - want|
	MaxRelErr float64   // max |got - want| / |want| over want != 0
	Tolerance Tolerance // bound the values were judged against
	Passed    bool      // every value satisfied Tolerance
}

// Err returns nil for a passed report, otherwise an error wrapping
// ErrToleranceExceeded that names the check and its worst drift.
func (r Report) Err() error {
	if r.Passed {
		return nil
	}

	return fmt.Errorf("%s: max abs %.3g, max rel %.3g (%s): %w",
		r.Name, r.MaxAbsErr, r.MaxRelErr, r.Tolerance, ErrToleranceExceeded)
}

// compare builds a Report from computed values got and reference values want.
func compare(name string, got, want *matrix.Dense, tol Tolerance) (Report, error) {
	passed, err := matrix.AllClose(got, want, tol.RTol, tol.ATol)
	if err != nil {
		return Report{}, checkErrorf(name, err)
	}
	abs, err := matrix.MaxAbsDiff(got, want)
	if err != nil {
		return Report{}, checkErrorf(name, err)
	}
	rel, err := matrix.MaxRelDiff(got, want)
	if err != nil {
		return Report{}, checkErrorf(name, err)
	}

	return Report{
		Name:      name,
		Samples:   got.Rows() * got.Cols(),
		MaxAbsErr: abs,
		MaxRelErr: rel,
		Tolerance: tol,
		Passed:    passed,
	}, nil
}

// Failed returns the reports that did not pass.
func Failed(reports []Report) []Report {
	var out []Report
	for _, r := range reports {
		if !r.Passed {
			out = append(out, r)
		}
	}

	return out
}
