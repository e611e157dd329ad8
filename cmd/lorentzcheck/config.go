package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lorentz/check"
	"github.com/katalvlaran/lorentz/sampler"
)

// fileConfig is the YAML scenario file layout. Zero values keep the defaults.
type fileConfig struct {
	Seed               int64                      `yaml:"seed"`
	Batch              int                        `yaml:"batch"`
	Dim                int                        `yaml:"dim"`
	Segments           int                        `yaml:"segments"`
	Mode               string                     `yaml:"mode"`
	Dtype              string                     `yaml:"dtype"`
	Curvature          float64                    `yaml:"curvature"`
	PerSampleCurvature bool                       `yaml:"per_sample_curvature"`
	CurvatureRange     []float64                  `yaml:"curvature_range"`
	Shrink             float64                    `yaml:"shrink"`
	Checks             []string                   `yaml:"checks"`
	Tolerances         map[string]check.Tolerance `yaml:"tolerances"`
	MaxNorm            float64                    `yaml:"max_norm"`
}

// loadConfig reads a YAML scenario from path on top of check.DefaultConfig.
// An empty path returns the defaults.
func loadConfig(path string) (check.Config, error) {
	cfg := check.DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := fc.apply(&cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// apply overlays the non-zero fields of fc onto cfg.
func (fc fileConfig) apply(cfg *check.Config) error {
	if fc.Seed != 0 {
		cfg.Sampler.Seed = fc.Seed
	}
	if fc.Batch != 0 {
		cfg.Batch = fc.Batch
	}
	if fc.Dim != 0 {
		cfg.Dim = fc.Dim
	}
	if fc.Segments != 0 {
		cfg.Segments = fc.Segments
	}
	if fc.Mode != "" {
		m, err := sampler.ParseMode(fc.Mode)
		if err != nil {
			return err
		}
		cfg.Sampler.Mode = m
	}
	if fc.Dtype != "" {
		d, err := sampler.ParseDtype(fc.Dtype)
		if err != nil {
			return err
		}
		cfg.Sampler.Dtype = d
	}
	if fc.Curvature != 0 {
		cfg.Sampler.K = fc.Curvature
	}
	if fc.PerSampleCurvature {
		cfg.Sampler.PerSampleCurvature = true
	}
	switch len(fc.CurvatureRange) {
	case 0:
	case 2:
		cfg.Sampler.KMin, cfg.Sampler.KMax = fc.CurvatureRange[0], fc.CurvatureRange[1]
	default:
		return errors.New("curvature_range needs exactly two values")
	}
	if fc.Shrink != 0 {
		cfg.Sampler.Shrink = fc.Shrink
	}
	if len(fc.Checks) > 0 {
		cfg.Checks = fc.Checks
	}
	if len(fc.Tolerances) > 0 {
		cfg.Overrides = fc.Tolerances
	}
	if fc.MaxNorm != 0 {
		cfg.MaxNorm = fc.MaxNorm
	}

	return nil
}
