// SPDX-License-Identifier: MIT

package check

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lorentz/lorentz"
	"github.com/katalvlaran/lorentz/matrix"
	"github.com/katalvlaran/lorentz/sampler"
)

// Suite defaults.
const (
	DefaultBatch = 100
	DefaultDim   = 10
)

// Config describes one suite run: fixture shape, sampler settings, geodesic
// segments, which checks to run and optional tolerance overrides.
type Config struct {
	Batch    int
	Dim      int
	Segments int
	Sampler  sampler.Options

	// Checks lists the checks to run, in order. Empty runs all three.
	Checks []string

	// Overrides replaces the dtype preset for the named checks.
	Overrides map[string]Tolerance

	// MaxNorm, when positive, replaces lorentz.DefaultMaxNorm in Expmap.
	MaxNorm float64
}

// DefaultConfig returns a 100×10 float64 bounded run of every check.
func DefaultConfig() Config {
	return Config{
		Batch:    DefaultBatch,
		Dim:      DefaultDim,
		Segments: DefaultSegments,
		Sampler:  sampler.DefaultOptions(),
	}
}

// Validate checks sizes, check names, override tolerances, max norm and sampler options.
func (c Config) Validate() error {
	if c.Batch <= 0 || c.Dim < 2 || c.Segments <= 0 {
		return fmt.Errorf("batch=%d dim=%d segments=%d: %w", c.Batch, c.Dim, c.Segments, ErrInvalidConfig)
	}
	for _, name := range c.checks() {
		if _, err := Preset(name, sampler.Float64); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}
	for name, tol := range c.Overrides {
		if _, err := Preset(name, sampler.Float64); err != nil {
			return fmt.Errorf("override: %w: %w", ErrInvalidConfig, err)
		}
		if err := tol.Validate(); err != nil {
			return fmt.Errorf("override %s: %w", name, err)
		}
	}
	if math.IsNaN(c.MaxNorm) || math.IsInf(c.MaxNorm, 0) || c.MaxNorm < 0 {
		return fmt.Errorf("max norm %g: %w", c.MaxNorm, ErrInvalidConfig)
	}
	if err := c.Sampler.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// Tolerance returns the override for name, or its preset for the sampler dtype.
func (c Config) Tolerance(name string) (Tolerance, error) {
	if t, ok := c.Overrides[name]; ok {
		return t, nil
	}

	return Preset(name, c.Sampler.Dtype)
}

func (c Config) checks() []string {
	if len(c.Checks) == 0 {
		return []string{NameExpLog, NameTransport, NameGeodesic}
	}

	return c.Checks
}

// Fixtures are the batches one suite run evaluates.
type Fixtures struct {
	K    lorentz.Curvature
	A, B *matrix.Dense // points
	V, U *matrix.Dense // ambient noise for the transport check
}

// NewFixtures draws fixtures for cfg. Equal configs give equal fixtures.
func NewFixtures(cfg Config) (*Fixtures, error) {
	s, err := sampler.New(cfg.Sampler)
	if err != nil {
		return nil, checkErrorf("NewFixtures", err)
	}

	f := &Fixtures{}
	if f.K, err = s.Curvature(cfg.Batch); err != nil {
		return nil, checkErrorf("NewFixtures", err)
	}
	if f.A, err = s.Points(cfg.Batch, cfg.Dim, f.K); err != nil {
		return nil, checkErrorf("NewFixtures", err)
	}
	if f.B, err = s.Points(cfg.Batch, cfg.Dim, f.K); err != nil {
		return nil, checkErrorf("NewFixtures", err)
	}
	if f.V, err = s.Tangents(f.A, f.K); err != nil {
		return nil, checkErrorf("NewFixtures", err)
	}
	if f.U, err = s.Tangents(f.A, f.K); err != nil {
		return nil, checkErrorf("NewFixtures", err)
	}

	return f, nil
}

// Suite runs the configured checks over one set of fixtures.
type Suite struct {
	cfg      Config
	fixtures *Fixtures
}

// NewSuite validates cfg and draws its fixtures.
func NewSuite(cfg Config) (*Suite, error) {
	if err := cfg.Validate(); err != nil {
		return nil, checkErrorf("NewSuite", err)
	}
	f, err := NewFixtures(cfg)
	if err != nil {
		return nil, checkErrorf("NewSuite", err)
	}

	return &Suite{cfg: cfg, fixtures: f}, nil
}

// Config returns the suite configuration.
func (s *Suite) Config() Config { return s.cfg }

// Fixtures returns the batches the suite evaluates.
func (s *Suite) Fixtures() *Fixtures { return s.fixtures }

// Run executes the configured checks concurrently and returns their reports
// in configuration order. A failing check yields a Report with
// Passed == false, not an error. Checks not yet started when ctx is done
// are skipped and ctx.Err() is returned.
func (s *Suite) Run(ctx context.Context, opts ...lorentz.Option) ([]Report, error) {
	names := s.cfg.checks()
	reports := make([]Report, len(names))
	if s.cfg.MaxNorm > 0 {
		opts = append([]lorentz.Option{lorentz.WithMaxNorm(s.cfg.MaxNorm)}, opts...)
	}

	g, gctx := errgroup.WithContext(ctx)
	for i, name := range names {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r, err := s.runOne(name, opts...)
			if err != nil {
				return err
			}
			reports[i] = r

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return reports, nil
}

func (s *Suite) runOne(name string, opts ...lorentz.Option) (Report, error) {
	tol, err := s.cfg.Tolerance(name)
	if err != nil {
		return Report{}, err
	}
	f := s.fixtures
	switch name {
	case NameExpLog:
		return ExpLogInverse(f.A, f.B, f.K, tol, opts...)
	case NameTransport:
		return TransportIsometry(f.A, f.B, f.V, f.U, f.K, tol, opts...)
	case NameGeodesic:
		return GeodesicUnitSpeed(f.A, f.B, f.K, s.cfg.Segments, tol, opts...)
	default:
		return Report{}, fmt.Errorf("%q: %w", name, ErrUnknownCheck)
	}
}
