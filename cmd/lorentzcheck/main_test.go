package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lorentz/check"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func TestRun_DefaultPasses(t *testing.T) {
	out, logs, err := execute(t, "run", "--batch", "20")
	require.NoError(t, err)
	for _, name := range []string{"expmap-logmap", "parallel-transport", "geodesic-unit-speed"} {
		assert.Contains(t, out, name)
	}
	assert.NotContains(t, out, "FAIL")
	assert.Contains(t, logs, "all checks passed")
}

func TestRoot_DefaultsToRun(t *testing.T) {
	out, _, err := execute(t, "--dtype", "float32", "--mode", "bounded-per-sample", "--per-sample")
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(out, "PASS"))
}

func TestRun_FailureExitsWithError(t *testing.T) {
	// A geodesic clamp far below the sampled distances stops Expmap short of b.
	path := writeConfig(t, `
checks: [expmap-logmap]
max_norm: 1.0e-9
`)
	out, logs, err := execute(t, "run", "--config", path, "--batch", "10")
	require.ErrorIs(t, err, errChecksFailed)
	assert.Contains(t, out, "FAIL")
	assert.Contains(t, logs, "check failed")

	out, _, err = execute(t, "run", "--batch", "10", "--max-norm", "1e-9")
	require.ErrorIs(t, err, errChecksFailed)
	assert.Contains(t, out, "FAIL")
}

func TestRun_RejectsInvalidTolerance(t *testing.T) {
	path := writeConfig(t, `
tolerances:
  expmap-logmap: {rtol: 0, atol: -1.0e-300}
`)
	_, _, err := execute(t, "run", "--config", path)
	require.ErrorIs(t, err, check.ErrInvalidConfig)

	_, _, err = execute(t, "run", "--max-norm=-1")
	require.ErrorIs(t, err, check.ErrInvalidConfig)
}

func TestRun_VerboseLogsConfig(t *testing.T) {
	_, logs, err := execute(t, "run", "-v", "--batch", "5", "--seed", "7")
	require.NoError(t, err)
	assert.Contains(t, logs, "configuration resolved")
	assert.Contains(t, logs, "seed=7")
}

func TestRun_InvalidFlags(t *testing.T) {
	_, _, err := execute(t, "run", "--mode", "sideways")
	require.Error(t, err)

	_, _, err = execute(t, "run", "--batch", "0")
	require.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "lorentzcheck dev")
}
