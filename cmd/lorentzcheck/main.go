// Command lorentzcheck draws seeded hyperboloid fixtures and runs the
// exp/log inverse, parallel transport isometry and geodesic unit-speed checks,
// printing one table row per check. It exits non-zero when any check fails.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lorentz/check"
	"github.com/katalvlaran/lorentz/lorentz"
	"github.com/katalvlaran/lorentz/sampler"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

// errChecksFailed is returned by run when at least one report failed.
var errChecksFailed = errors.New("one or more checks failed")

type runFlags struct {
	config    string
	seed      int64
	batch     int
	dim       int
	segments  int
	curvature float64
	perSample bool
	mode      string
	dtype     string
	maxNorm   float64
	verbose   bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var f runFlags

	rootCmd := &cobra.Command{
		Use:   "lorentzcheck",
		Short: "Numerical checks for the Lorentz hyperboloid model",
		Long: `lorentzcheck samples points on the hyperboloid of curvature k and verifies
that Expmap inverts Logmap, that parallel transport preserves the Lorentzian
inner product, and that unit-speed geodesics travel distance t in time t.

Settings come from an optional YAML scenario (--config) overlaid by flags.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Sample fixtures and run the checks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChecks(cmd, f, stdout, stderr)
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(stdout, "lorentzcheck %s\n", version)
			fmt.Fprintf(stdout, "Go version: %s\n", runtime.Version())

			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&f.config, "config", "c", "", "YAML scenario file")
	flags.Int64Var(&f.seed, "seed", sampler.DefaultSeed, "RNG seed (0 selects the default)")
	flags.IntVar(&f.batch, "batch", check.DefaultBatch, "points per batch")
	flags.IntVar(&f.dim, "dim", check.DefaultDim, "ambient dimension n+1")
	flags.IntVar(&f.segments, "segments", check.DefaultSegments, "geodesic segments")
	flags.Float64Var(&f.curvature, "curvature", sampler.DefaultCurvature, "scalar curvature k > 0")
	flags.BoolVar(&f.perSample, "per-sample", false, "draw one curvature per row")
	flags.StringVar(&f.mode, "mode", sampler.Bounded.String(), "sampling mode: bounded, bounded-per-sample, unbounded")
	flags.StringVar(&f.dtype, "dtype", sampler.Float64.String(), "fixture precision: float64, float32, float16, bfloat16")
	flags.Float64Var(&f.maxNorm, "max-norm", lorentz.DefaultMaxNorm, "clamp on the scaled geodesic length in Expmap")
	flags.BoolVarP(&f.verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(runCmd, versionCmd)

	// If no command is specified, default to run
	rootCmd.RunE = runCmd.RunE

	return rootCmd
}

// resolveConfig loads the scenario file and applies explicitly set flags.
func resolveConfig(cmd *cobra.Command, f runFlags) (check.Config, error) {
	cfg, err := loadConfig(f.config)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Sampler.Seed = f.seed
	}
	if flags.Changed("batch") {
		cfg.Batch = f.batch
	}
	if flags.Changed("dim") {
		cfg.Dim = f.dim
	}
	if flags.Changed("segments") {
		cfg.Segments = f.segments
	}
	if flags.Changed("curvature") {
		cfg.Sampler.K = f.curvature
	}
	if flags.Changed("per-sample") {
		cfg.Sampler.PerSampleCurvature = f.perSample
	}
	if flags.Changed("max-norm") {
		cfg.MaxNorm = f.maxNorm
	}
	if flags.Changed("mode") {
		if cfg.Sampler.Mode, err = sampler.ParseMode(f.mode); err != nil {
			return cfg, err
		}
	}
	if flags.Changed("dtype") {
		if cfg.Sampler.Dtype, err = sampler.ParseDtype(f.dtype); err != nil {
			return cfg, err
		}
	}

	return cfg, cfg.Validate()
}

func runChecks(cmd *cobra.Command, f runFlags, stdout, stderr io.Writer) error {
	logger := newLogger(stderr, f.verbose)

	cfg, err := resolveConfig(cmd, f)
	if err != nil {
		return err
	}
	logger.Debug("configuration resolved",
		"seed", cfg.Sampler.Seed,
		"batch", cfg.Batch,
		"dim", cfg.Dim,
		"segments", cfg.Segments,
		"mode", cfg.Sampler.Mode.String(),
		"dtype", cfg.Sampler.Dtype.String(),
		"per_sample_curvature", cfg.Sampler.PerSampleCurvature,
		"max_norm", cfg.MaxNorm)

	suite, err := check.NewSuite(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reports, err := suite.Run(ctx)
	if err != nil {
		return err
	}
	renderReports(stdout, reports)

	failed := check.Failed(reports)
	for _, r := range failed {
		logger.Error("check failed", "check", r.Name, "error", r.Err())
	}
	if len(failed) > 0 {
		return fmt.Errorf("%d of %d: %w", len(failed), len(reports), errChecksFailed)
	}
	logger.Info("all checks passed", "checks", len(reports))

	return nil
}

// newLogger returns a text slog.Logger at info level, or debug when verbose.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func main() {
	rootCmd := newRootCmd(os.Stdout, os.Stderr)
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
