// SPDX-License-Identifier: MIT

package sampler

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/lorentz/lorentz"
	"github.com/katalvlaran/lorentz/matrix"
	"gonum.org/v1/gonum/floats"
)

// Sampler draws fixtures from one deterministic RNG stream.
type Sampler struct {
	opts Options
	rng  *rand.Rand
}

// New validates opts and seeds a Sampler.
func New(opts Options) (*Sampler, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("sampler.New: %w", err)
	}

	return &Sampler{opts: opts, rng: rngFromSeed(opts.Seed)}, nil
}

// Options returns the configuration the Sampler was built with.
func (s *Sampler) Options() Options { return s.opts }

// Stream returns a child Sampler with an independent RNG derived from s and id.
// The parent advances by one draw.
func (s *Sampler) Stream(id uint64) *Sampler {
	return &Sampler{opts: s.opts, rng: deriveRNG(s.rng, id)}
}

// Curvature returns the curvature for an n-row batch: Scalar(K), or one
// k_i ~ U[KMin, KMax) per row when PerSampleCurvature is set.
func (s *Sampler) Curvature(n int) (lorentz.Curvature, error) {
	if n <= 0 {
		return lorentz.Curvature{}, fmt.Errorf("Curvature: %w", ErrInvalidShape)
	}
	if !s.opts.PerSampleCurvature {
		return lorentz.Scalar(s.opts.K)
	}

	ks := make([]float64, n)
	span := s.opts.KMax - s.opts.KMin
	for i := range ks {
		ks[i] = s.opts.KMin + span*s.rng.Float64()
	}

	return lorentz.PerSample(ks)
}

// Points returns an n×dim batch of points on the hyperboloid of curvature k.
// k must be scalar or carry exactly n values.
func (s *Sampler) Points(n, dim int, k lorentz.Curvature) (*matrix.Dense, error) {
	if n <= 0 || dim < 2 {
		return nil, fmt.Errorf("Points(%d, %d): %w", n, dim, ErrInvalidShape)
	}
	if k.Len() != 1 && k.Len() != n {
		return nil, fmt.Errorf("Points: %w", lorentz.ErrInvalidCurvature)
	}

	raw, err := matrix.NewDense(n, dim)
	if err != nil {
		return nil, fmt.Errorf("Points: %w", err)
	}
	data := raw.RawData()

	switch s.opts.Mode {
	case Unbounded:
		for i := range data {
			data[i] = s.rng.NormFloat64()
		}
	case Bounded, BoundedPerSample:
		u := s.rng.Float64()
		for i := 0; i < n; i++ {
			if s.opts.Mode == BoundedPerSample && i > 0 {
				u = s.rng.Float64()
			}
			row := data[i*dim : (i+1)*dim]
			s.fillBounded(row, u, k.At(i))
		}
	}

	x, err := lorentz.ProjectBatch(raw, k)
	if err != nil {
		return nil, fmt.Errorf("Points: %w", err)
	}
	s.roundAll(x)

	return x, nil
}

// fillBounded draws row ~ N(-1, 1), normalises it and rescales it to
// radius R·√u/Shrink where R = 1/√k.
func (s *Sampler) fillBounded(row []float64, u, k float64) {
	for {
		for j := range row {
			row[j] = s.rng.NormFloat64() - 1
		}
		if n := floats.Norm(row, 2); n > 0 {
			floats.Scale(math.Sqrt(u/k)/(n*s.opts.Shrink), row)

			return
		}
	}
}

// Tangents returns one tangent vector per row of x: U[0,1) ambient noise
// projected onto T_x H^n_k.
func (s *Sampler) Tangents(x *matrix.Dense, k lorentz.Curvature) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(x); err != nil {
		return nil, fmt.Errorf("Tangents: %w", err)
	}

	raw, err := matrix.NewDense(x.Rows(), x.Cols())
	if err != nil {
		return nil, fmt.Errorf("Tangents: %w", err)
	}
	data := raw.RawData()
	for i := range data {
		data[i] = s.rng.Float64()
	}

	v, err := lorentz.ProjectUBatch(x, raw, k)
	if err != nil {
		return nil, fmt.Errorf("Tangents: %w", err)
	}
	s.roundAll(v)

	return v, nil
}

// roundAll applies the storage dtype in place.
func (s *Sampler) roundAll(m *matrix.Dense) {
	s.opts.Dtype.roundAll(m.RawData())
}
