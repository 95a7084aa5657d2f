package recorder

import (
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/tanmayjayanthi2005-droid/Graph-Algorithm-Visualizer/emit"
	"github.com/tanmayjayanthi2005-droid/Graph-Algorithm-Visualizer/registry"
	"github.com/tanmayjayanthi2005-droid/Graph-Algorithm-Visualizer/telemetry"
)

var (
	// ErrUnknownAlgorithm is returned by Start for a key the registry
	// does not know.
	ErrUnknownAlgorithm = errors.New("recorder: unknown algorithm")

	// ErrNilGraph is returned by Start without a graph.
	ErrNilGraph = errors.New("recorder: nil graph")

	// ErrNotStarted is returned before Start.
	ErrNotStarted = errors.New("recorder: not started")

	// ErrNotCompleted is returned by Export before RunToCompletion.
	ErrNotCompleted = errors.New("recorder: run not completed")

	// ErrStepLimit is returned when a run exceeds the configured limit.
	ErrStepLimit = errors.New("recorder: step limit exceeded")

	// ErrSnapshotVersion is returned by DecodeSnapshot for an unknown
	// document version.
	ErrSnapshotVersion = errors.New("recorder: unsupported snapshot version")
)

// RunMetrics summarises one completed run. It is derived once from the
// buffered steps and never changes afterwards.
type RunMetrics struct {
	RunID     string `json:"run_id"`
	AlgoKey   string `json:"algo_key"`
	AlgoLabel string `json:"algo_label"`
	Source    string `json:"source"`
	Target    string `json:"target"`

	NodesVisited int     `json:"nodes_visited"`
	EdgesRelaxed int     `json:"edges_relaxed"`
	PathLength   int     `json:"path_length"`
	PathCost     float64 `json:"path_cost"`
	TotalSteps   int     `json:"total_steps"`

	WallTime    time.Duration `json:"wall_time_ns"`
	MemoryBytes int64         `json:"memory_bytes"`

	PathFound     bool   `json:"path_found"`
	NegativeCycle bool   `json:"negative_cycle"`
	Heuristic     string `json:"heuristic,omitempty"`
}

func (m RunMetrics) telemetry() telemetry.Run {
	return telemetry.Run{
		Algo:          m.AlgoKey,
		Steps:         m.TotalSteps,
		NodesVisited:  m.NodesVisited,
		EdgesRelaxed:  m.EdgesRelaxed,
		PathFound:     m.PathFound,
		NegativeCycle: m.NegativeCycle,
		PathCost:      m.PathCost,
		WallTime:      m.WallTime,
	}
}

// Config holds Recorder settings.
type Config struct {
	Registry  *registry.Registry
	Logger    *slog.Logger
	Emitter   emit.Emitter
	Collector telemetry.Collector
	// StepLimit aborts RunToCompletion after this many steps; 0 disables.
	StepLimit int
	Clock     func() time.Time
	NewID     func() string
}

// DefaultConfig uses the built-in registry and drops all telemetry.
func DefaultConfig() Config {
	return Config{
		Registry:  registry.Default(),
		Logger:    slog.New(slog.DiscardHandler),
		Emitter:   emit.NewNullEmitter(),
		Collector: telemetry.NopCollector{},
		Clock:     time.Now,
		NewID:     uuid.NewString,
	}
}

// Option configures a Recorder.
type Option func(*Config)

// WithRegistry replaces the built-in registry.
func WithRegistry(r *registry.Registry) Option {
	return func(c *Config) {
		if r != nil {
			c.Registry = r
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Config) {
		if l != nil {
			c.Logger = l
		}
	}
}

// WithEmitter publishes run and step events to e.
func WithEmitter(e emit.Emitter) Option {
	return func(c *Config) {
		if e != nil {
			c.Emitter = e
		}
	}
}

// WithCollector reports completed runs to col.
func WithCollector(col telemetry.Collector) Option {
	return func(c *Config) {
		if col != nil {
			c.Collector = col
		}
	}
}

// WithStepLimit caps the number of steps a run may produce. It panics on
// a negative limit.
func WithStepLimit(n int) Option {
	if n < 0 {
		panic("recorder: WithStepLimit(negative)")
	}

	return func(c *Config) { c.StepLimit = n }
}

// WithClock replaces time.Now for wall-time measurement.
func WithClock(now func() time.Time) Option {
	return func(c *Config) {
		if now != nil {
			c.Clock = now
		}
	}
}

// WithIDGenerator replaces uuid.NewString for run IDs.
func WithIDGenerator(fn func() string) Option {
	return func(c *Config) {
		if fn != nil {
			c.NewID = fn
		}
	}
}
