// SPDX-License-Identifier: MIT

package sampler

import (
	"errors"
	"fmt"
	"math"

	bfloat16 "github.com/d4l3k/go-bfloat16"
	"github.com/x448/float16"
)

// Mode selects how raw ambient vectors are drawn before projection.
type Mode int

const (
	// Bounded draws every row inside R/Shrink with one radius factor per batch.
	Bounded Mode = iota

	// BoundedPerSample draws every row inside R/Shrink with its own radius factor.
	BoundedPerSample

	// Unbounded projects standard normal rows; may reach unstable regions.
	Unbounded
)

// String returns the lower-case mode name used in config files.
func (m Mode) String() string {
	switch m {
	case Bounded:
		return "bounded"
	case BoundedPerSample:
		return "bounded-per-sample"
	case Unbounded:
		return "unbounded"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ParseMode is the inverse of Mode.String.
func ParseMode(s string) (Mode, error) {
	for _, m := range []Mode{Bounded, BoundedPerSample, Unbounded} {
		if m.String() == s {
			return m, nil
		}
	}

	return 0, fmt.Errorf("ParseMode(%q): %w", s, ErrInvalidOptions)
}

// Dtype is the storage precision of generated fixtures.
type Dtype int

const (
	// Float64 keeps generated values as computed.
	Float64 Dtype = iota

	// Float32 rounds every stored coordinate through float32.
	Float32

	// Float16 rounds every stored coordinate through IEEE 754 half precision.
	Float16

	// BFloat16 truncates every stored coordinate to bfloat16.
	BFloat16
)

var dtypeNames = map[Dtype]string{
	Float64:  "float64",
	Float32:  "float32",
	Float16:  "float16",
	BFloat16: "bfloat16",
}

// String returns the lower-case dtype name used in config files.
func (d Dtype) String() string {
	if name, ok := dtypeNames[d]; ok {
		return name
	}

	return fmt.Sprintf("dtype(%d)", int(d))
}

// ParseDtype is the inverse of Dtype.String. The empty string is Float64.
func ParseDtype(s string) (Dtype, error) {
	if s == "" {
		return Float64, nil
	}
	for d, name := range dtypeNames {
		if name == s {
			return d, nil
		}
	}

	return 0, fmt.Errorf("ParseDtype(%q): %w", s, ErrInvalidOptions)
}

// roundAll applies the storage precision to vals in place.
func (d Dtype) roundAll(vals []float64) {
	switch d {
	case Float32:
		for i, v := range vals {
			vals[i] = float64(float32(v))
		}
	case Float16:
		for i, v := range vals {
			vals[i] = float64(float16.Fromfloat32(float32(v)).Float32())
		}
	case BFloat16:
		f32s := make([]float32, len(vals))
		for i, v := range vals {
			f32s[i] = float32(v)
		}
		for i, v := range bfloat16.DecodeFloat32(bfloat16.EncodeFloat32(f32s)) {
			vals[i] = float64(v)
		}
	}
}

// Defaults.
const (
	// DefaultSeed replaces Seed == 0.
	DefaultSeed int64 = 13

	// DefaultShrink divides normalised rows in the bounded modes.
	DefaultShrink = 1.3

	// DefaultCurvature is the scalar k used unless PerSampleCurvature is set.
	DefaultCurvature = 1.0
)

var (
	// ErrInvalidOptions indicates nonsensical Options (Shrink ≤ 0, bad K range, unknown mode).
	ErrInvalidOptions = errors.New("sampler: invalid options")

	// ErrInvalidShape indicates n ≤ 0 rows or dim < 2 coordinates.
	ErrInvalidShape = errors.New("sampler: invalid shape")
)

// Options configures a Sampler.
//
// Fields:
//   - Seed               — RNG seed; 0 selects DefaultSeed.
//   - Mode               — Bounded, BoundedPerSample or Unbounded.
//   - Dtype              — storage precision of generated values.
//   - Shrink             — divisor applied to normalised rows (bounded modes).
//   - K                  — scalar curvature returned by Curvature.
//   - PerSampleCurvature — draw k_i ~ U[KMin, KMax) per row instead of K.
type Options struct {
	Seed               int64
	Mode               Mode
	Dtype              Dtype
	Shrink             float64
	K                  float64
	PerSampleCurvature bool
	KMin, KMax         float64
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Seed:   DefaultSeed,
		Mode:   Bounded,
		Dtype:  Float64,
		Shrink: DefaultShrink,
		K:      DefaultCurvature,
		KMin:   0.5,
		KMax:   2,
	}
}

// Validate checks Options for nonsensical values.
func (o Options) Validate() error {
	if o.Mode < Bounded || o.Mode > Unbounded {
		return fmt.Errorf("Mode: %w", ErrInvalidOptions)
	}
	if _, ok := dtypeNames[o.Dtype]; !ok {
		return fmt.Errorf("Dtype: %w", ErrInvalidOptions)
	}
	if !(o.Shrink > 0) || math.IsInf(o.Shrink, 0) {
		return fmt.Errorf("Shrink: %w", ErrInvalidOptions)
	}
	if !(o.K > 0) || math.IsInf(o.K, 0) {
		return fmt.Errorf("K: %w", ErrInvalidOptions)
	}
	if o.PerSampleCurvature && (!(o.KMin > 0) || !(o.KMax >= o.KMin) || math.IsInf(o.KMax, 0)) {
		return fmt.Errorf("KMin/KMax: %w", ErrInvalidOptions)
	}

	return nil
}
