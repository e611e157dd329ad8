// SPDX-License-Identifier: MIT

package check

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lorentz/sampler"
)

// Check names, used in Reports and as Config.Checks entries.
const (
	NameExpLog    = "expmap-logmap"
	NameTransport = "parallel-transport"
	NameGeodesic  = "geodesic-unit-speed"
)

// DefaultSegments is the number of geodesic segments (13 samples of t).
const DefaultSegments = 12

// Tolerance is the allowed drift |got - want| ≤ ATol + RTol·|want|.
type Tolerance struct {
	RTol float64 `yaml:"rtol"`
	ATol float64 `yaml:"atol"`
}

// String renders the tolerance as "rtol=…, atol=…".
func (t Tolerance) String() string {
	return fmt.Sprintf("rtol=%g, atol=%g", t.RTol, t.ATol)
}

// Validate rejects negative, NaN or infinite bounds.
func (t Tolerance) Validate() error {
	for _, v := range []float64{t.RTol, t.ATol} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return fmt.Errorf("tolerance %s: %w", t, ErrInvalidConfig)
		}
	}

	return nil
}

type presetKey struct {
	name  string
	dtype sampler.Dtype
}

// presets holds the tolerance per check and fixture dtype.
var presets = map[presetKey]Tolerance{
	{NameExpLog, sampler.Float32}:    {RTol: 1e-5, ATol: 1e-6},
	{NameExpLog, sampler.Float64}:    {RTol: 1e-7, ATol: 1e-12},
	{NameTransport, sampler.Float32}: {RTol: 1e-6, ATol: 1e-6},
	{NameTransport, sampler.Float64}: {RTol: 1e-6, ATol: 1e-6},
	{NameGeodesic, sampler.Float32}:  {RTol: 1e-5, ATol: 1e-6},
	{NameGeodesic, sampler.Float64}:  {RTol: 1e-7, ATol: 1e-10},

	// Half-precision fixtures share the float32 bounds: checks re-project and
	// evaluate in float64, so storage rounding only moves the inputs.
	{NameExpLog, sampler.Float16}:     {RTol: 1e-5, ATol: 1e-6},
	{NameExpLog, sampler.BFloat16}:    {RTol: 1e-5, ATol: 1e-6},
	{NameTransport, sampler.Float16}:  {RTol: 1e-6, ATol: 1e-6},
	{NameTransport, sampler.BFloat16}: {RTol: 1e-6, ATol: 1e-6},
	{NameGeodesic, sampler.Float16}:   {RTol: 1e-5, ATol: 1e-6},
	{NameGeodesic, sampler.BFloat16}:  {RTol: 1e-5, ATol: 1e-6},
}

// Preset returns the tolerance for the named check at dtype d.
func Preset(name string, d sampler.Dtype) (Tolerance, error) {
	t, ok := presets[presetKey{name, d}]
	if !ok {
		return Tolerance{}, fmt.Errorf("Preset(%q, %s): %w", name, d, ErrUnknownCheck)
	}

	return t, nil
}

// ExpLogTolerance is Preset(NameExpLog, d).
func ExpLogTolerance(d sampler.Dtype) Tolerance { return mustPreset(NameExpLog, d) }

// TransportTolerance is Preset(NameTransport, d).
func TransportTolerance(d sampler.Dtype) Tolerance { return mustPreset(NameTransport, d) }

// GeodesicTolerance is Preset(NameGeodesic, d).
func GeodesicTolerance(d sampler.Dtype) Tolerance { return mustPreset(NameGeodesic, d) }

func mustPreset(name string, d sampler.Dtype) Tolerance {
	t, err := Preset(name, d)
	if err != nil {
		panic(err)
	}

	return t
}
