// Package config loads the visualizer's YAML configuration. Values come
// from Default, then the file (if present), then VIZ_* environment
// variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tanmayjayanthi2005-droid/Graph-Algorithm-Visualizer/heuristic"
	"github.com/tanmayjayanthi2005-droid/Graph-Algorithm-Visualizer/stepper"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the full configuration.
type Config struct {
	Log       LogConfig       `yaml:"log"`
	Playback  PlaybackConfig  `yaml:"playback"`
	Algorithm AlgorithmConfig `yaml:"algorithm"`
	Archive   ArchiveConfig   `yaml:"archive"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// LogConfig configures internal/logging.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// PlaybackConfig configures the stepper and recorder.
type PlaybackConfig struct {
	Speed string `yaml:"speed"`
	// StepLimit aborts a recorded run after this many steps; 0 disables.
	StepLimit int `yaml:"step_limit"`
}

// AlgorithmConfig holds algorithm defaults.
type AlgorithmConfig struct {
	Heuristic string `yaml:"heuristic"`
}

// ArchiveConfig locates the SQLite run archive. An empty path disables it.
type ArchiveConfig struct {
	Path string `yaml:"path"`
}

// TelemetryConfig configures Prometheus and tracing.
type TelemetryConfig struct {
	Namespace string `yaml:"namespace"`
	Tracing   bool   `yaml:"tracing"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Log:       LogConfig{Level: "info", Format: "text"},
		Playback:  PlaybackConfig{Speed: stepper.SpeedMedium, StepLimit: 1_000_000},
		Algorithm: AlgorithmConfig{Heuristic: heuristic.Default},
		Telemetry: TelemetryConfig{Namespace: "graphviz"},
	}
}

// Load reads path over Default, applies environment overrides and
// validates the result. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return cfg, fmt.Errorf("Load: %s: %w", path, err)
		}
	}
	if err := cfg.loadEnv(); err != nil {
		return cfg, fmt.Errorf("Load: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("Load: %w", err)
	}

	return cfg, nil
}

// Parse decodes YAML over Default without touching the environment.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("Parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("Parse: %w", err)
	}

	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}

	return yaml.Unmarshal(data, c)
}

// loadEnv applies VIZ_* overrides. Values that do not parse are rejected
// rather than ignored.
func (c *Config) loadEnv() error {
	if v := os.Getenv("VIZ_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("VIZ_LOG_FORMAT"); v != "" {
		c.Log.Format = v
	}
	if v := os.Getenv("VIZ_PLAYBACK_SPEED"); v != "" {
		c.Playback.Speed = v
	}
	if v := os.Getenv("VIZ_STEP_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: VIZ_STEP_LIMIT %q", ErrInvalid, v)
		}
		c.Playback.StepLimit = n
	}
	if v := os.Getenv("VIZ_HEURISTIC"); v != "" {
		c.Algorithm.Heuristic = v
	}
	if v := os.Getenv("VIZ_ARCHIVE_PATH"); v != "" {
		c.Archive.Path = v
	}
	if v := os.Getenv("VIZ_TRACING"); v != "" {
		on, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: VIZ_TRACING %q", ErrInvalid, v)
		}
		c.Telemetry.Tracing = on
	}

	return nil
}

// Validate checks every field.
func (c Config) Validate() error {
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("%w: log.level %q", ErrInvalid, c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log.format %q", ErrInvalid, c.Log.Format)
	}
	if _, ok := stepper.Preset(c.Playback.Speed); !ok {
		return fmt.Errorf("%w: playback.speed %q", ErrInvalid, c.Playback.Speed)
	}
	if c.Playback.StepLimit < 0 {
		return fmt.Errorf("%w: playback.step_limit must be >= 0", ErrInvalid)
	}
	if _, ok := heuristic.Lookup(c.Algorithm.Heuristic); !ok {
		return fmt.Errorf("%w: algorithm.heuristic %q", ErrInvalid, c.Algorithm.Heuristic)
	}
	if c.Telemetry.Namespace == "" {
		return fmt.Errorf("%w: telemetry.namespace is empty", ErrInvalid)
	}

	return nil
}
