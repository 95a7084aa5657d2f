package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanmayjayanthi2005-droid/Graph-Algorithm-Visualizer/internal/config"
)

func TestDefault_IsValid(t *testing.T) {
	require.NoError(t, config.Default().Validate())
}

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "viz.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
log:
  level: debug
  format: json
playback:
  speed: fast
  step_limit: 500
algorithm:
  heuristic: manhattan
archive:
  path: runs.db
`), 0o600))
	t.Setenv("VIZ_HEURISTIC", "octile")
	t.Setenv("VIZ_TRACING", "1")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "fast", cfg.Playback.Speed)
	assert.Equal(t, 500, cfg.Playback.StepLimit)
	assert.Equal(t, "octile", cfg.Algorithm.Heuristic, "env wins over file")
	assert.Equal(t, "runs.db", cfg.Archive.Path)
	assert.True(t, cfg.Telemetry.Tracing)
	assert.Equal(t, "graphviz", cfg.Telemetry.Namespace, "untouched keys keep defaults")
}

func TestParse_Invalid(t *testing.T) {
	for name, doc := range map[string]string{
		"level":     "log: {level: loud}",
		"format":    "log: {format: xml}",
		"speed":     "playback: {speed: warp}",
		"limit":     "playback: {step_limit: -1}",
		"heuristic": "algorithm: {heuristic: chebyshev}",
		"namespace": `telemetry: {namespace: ""}`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := config.Parse([]byte(doc))
			assert.ErrorIs(t, err, config.ErrInvalid)
		})
	}

	_, err := config.Parse([]byte("log: [unclosed"))
	assert.Error(t, err)
}

func TestLoad_MalformedEnv(t *testing.T) {
	for name, env := range map[string][2]string{
		"step limit": {"VIZ_STEP_LIMIT", "ten"},
		"tracing":    {"VIZ_TRACING", "yes"},
	} {
		t.Run(name, func(t *testing.T) {
			t.Setenv(env[0], env[1])
			_, err := config.Load("")
			require.ErrorIs(t, err, config.ErrInvalid)
			assert.Contains(t, err.Error(), env[0])
		})
	}
}

func TestLoad_TracingAcceptsBoolSpellings(t *testing.T) {
	t.Setenv("VIZ_TRACING", "TRUE")
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.True(t, cfg.Telemetry.Tracing)

	t.Setenv("VIZ_TRACING", "0")
	cfg, err = config.Load("")
	require.NoError(t, err)
	assert.False(t, cfg.Telemetry.Tracing)
}
