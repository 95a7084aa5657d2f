package stepper

import (
	"errors"
	"log/slog"
	"time"

	"github.com/tanmayjayanthi2005-droid/Graph-Algorithm-Visualizer/step"
)

var (
	// ErrNotStarted is returned by navigation and playback before Start.
	ErrNotStarted = errors.New("stepper: not started")

	// ErrNilGenerator is returned by Start when given no generator.
	ErrNilGenerator = errors.New("stepper: nil generator")

	// ErrUnknownPreset is returned by SetSpeed for an unknown preset name.
	ErrUnknownPreset = errors.New("stepper: unknown speed preset")
)

// State is the playback status.
type State int

const (
	// Idle means no generator is attached.
	Idle State = iota

	// Paused means a run is attached and waits for navigation or Play.
	Paused

	// Playing means Tick advances one step per interval.
	Playing

	// Finished means an advance found the generator exhausted.
	Finished
)

// String returns the lower-case state name.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Paused:
		return "paused"
	case Playing:
		return "playing"
	case Finished:
		return "finished"
	default:
		return "unknown"
	}
}

// Speed preset names.
const (
	SpeedSlow   = "slow"
	SpeedMedium = "medium"
	SpeedFast   = "fast"
	SpeedTurbo  = "turbo"
)

const (
	// DefaultInterval is the medium preset.
	DefaultInterval = 400 * time.Millisecond

	// MinInterval floors SetInterval so Tick cannot spin.
	MinInterval = 20 * time.Millisecond
)

var presets = map[string]time.Duration{
	SpeedSlow:   time.Second,
	SpeedMedium: DefaultInterval,
	SpeedFast:   150 * time.Millisecond,
	SpeedTurbo:  50 * time.Millisecond,
}

// Preset returns the interval of a named speed preset.
func Preset(name string) (time.Duration, bool) {
	d, ok := presets[name]

	return d, ok
}

// Config holds Stepper settings.
type Config struct {
	Interval time.Duration
	OnStep   func(*step.Step)
	Clock    func() time.Time
	Logger   *slog.Logger
}

// DefaultConfig returns a medium-speed stepper on the wall clock with a
// discarding logger.
func DefaultConfig() Config {
	return Config{
		Interval: DefaultInterval,
		Clock:    time.Now,
		Logger:   slog.New(slog.DiscardHandler),
	}
}

// Option configures a Stepper.
type Option func(*Config)

// WithOnStep registers a callback fired on every cursor change with the
// now-current step, and with nil on Reset.
func WithOnStep(fn func(*step.Step)) Option {
	return func(c *Config) { c.OnStep = fn }
}

// WithClock replaces time.Now for Tick scheduling.
func WithClock(now func() time.Time) Option {
	return func(c *Config) {
		if now != nil {
			c.Clock = now
		}
	}
}

// WithInterval sets the auto-play interval, floored at MinInterval.
func WithInterval(d time.Duration) Option {
	return func(c *Config) { c.Interval = max(d, MinInterval) }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Config) {
		if l != nil {
			c.Logger = l
		}
	}
}
