// Package recorder drives complete runs. A Recorder resolves an algorithm
// through the registry, plays its trace through a stepper to the end,
// derives RunMetrics, and exports a self-contained Snapshot that can be
// replayed later without re-running the algorithm.
//
//	rec := recorder.New()
//	if err := rec.Start("dijkstra", "A", "F", g, ""); err != nil { ... }
//	m, err := rec.RunToCompletion()
package recorder

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/tanmayjayanthi2005-droid/Graph-Algorithm-Visualizer/core"
	"github.com/tanmayjayanthi2005-droid/Graph-Algorithm-Visualizer/emit"
	"github.com/tanmayjayanthi2005-droid/Graph-Algorithm-Visualizer/heuristic"
	"github.com/tanmayjayanthi2005-droid/Graph-Algorithm-Visualizer/registry"
	"github.com/tanmayjayanthi2005-droid/Graph-Algorithm-Visualizer/step"
	"github.com/tanmayjayanthi2005-droid/Graph-Algorithm-Visualizer/stepper"
)

// Recorder records one run at a time. It is not safe for concurrent use;
// use one Recorder per run.
type Recorder struct {
	cfg Config
	log *slog.Logger

	info      registry.AlgoInfo
	runID     string
	source    string
	target    string
	heuristic string
	g         *core.Graph

	st      *stepper.Stepper
	steps   []step.Step
	metrics *RunMetrics
}

// New returns a Recorder.
func New(opts ...Option) *Recorder {
	cfg := DefaultConfig()
	for _, o := range opts {
		o(&cfg)
	}

	return &Recorder{cfg: cfg, log: cfg.Logger}
}

// Start prepares a run of algoKey on g. heuristic is used only by
// algorithms that declare one; an empty or unknown name selects
// heuristic.Default. Any previous run is discarded.
func (r *Recorder) Start(algoKey, source, target string, g *core.Graph, heuristicName string) error {
	info, ok := r.cfg.Registry.Lookup(algoKey)
	if !ok {
		return fmt.Errorf("Start: %q: %w", algoKey, ErrUnknownAlgorithm)
	}
	if g == nil {
		return fmt.Errorf("Start: %w", ErrNilGraph)
	}
	if !g.HasNode(source) {
		return fmt.Errorf("Start: source %q: %w", source, core.ErrNodeNotFound)
	}
	if !g.HasNode(target) {
		return fmt.Errorf("Start: target %q: %w", target, core.ErrNodeNotFound)
	}

	used := ""
	if info.HasHeuristic {
		used, _ = heuristic.Resolve(heuristicName)
	}

	r.info = info
	r.runID = r.cfg.NewID()
	r.source, r.target, r.heuristic = source, target, used
	r.g = g
	r.steps = nil
	r.metrics = nil
	r.log = r.cfg.Logger.With("run_id", r.runID, "algo", info.Key)

	r.cfg.Emitter.Emit(emit.Event{
		RunID: r.runID,
		Algo:  info.Key,
		Step:  -1,
		Msg:   emit.MsgRunStart,
		Meta: map[string]any{
			"source":    source,
			"target":    target,
			"heuristic": used,
			"nodes":     g.NodeCount(),
			"edges":     g.EdgeCount(),
		},
	})

	seq := info.New(registry.Request{Graph: g, Source: source, Target: target, Heuristic: used})
	r.st = stepper.New(
		stepper.WithLogger(r.log),
		stepper.WithOnStep(r.publish),
	)
	if err := r.st.Start(step.Pull(seq)); err != nil {
		return fmt.Errorf("Start: %w", err)
	}
	r.log.Debug("run started", "source", source, "target", target, "heuristic", used)

	return nil
}

// publish forwards every cursor change to the emitter.
func (r *Recorder) publish(s *step.Step) {
	if s == nil {
		return
	}
	r.cfg.Emitter.Emit(emit.StepEvent(r.runID, r.info.Key, *s))
}

// RunToCompletion advances the stepper until the generator is exhausted
// and computes the run's metrics. Calling it again returns the cached
// metrics.
func (r *Recorder) RunToCompletion() (RunMetrics, error) {
	if r.st == nil {
		return RunMetrics{}, fmt.Errorf("RunToCompletion: %w", ErrNotStarted)
	}
	if r.metrics != nil {
		return *r.metrics, nil
	}

	start := r.cfg.Clock()
	for {
		ok, err := r.st.NextStep()
		if err != nil {
			return RunMetrics{}, fmt.Errorf("RunToCompletion: %w", err)
		}
		if !ok {
			break
		}
		if r.cfg.StepLimit > 0 && r.st.Fetched() > r.cfg.StepLimit {
			r.st.Reset()
			r.log.Warn("run aborted", "limit", r.cfg.StepLimit)
			return RunMetrics{}, fmt.Errorf("RunToCompletion: %d steps: %w", r.cfg.StepLimit, ErrStepLimit)
		}
	}
	wall := r.cfg.Clock().Sub(start)

	r.steps = r.st.Steps()
	m := r.compute()
	m.WallTime = wall
	r.metrics = &m

	r.cfg.Emitter.Emit(emit.Event{
		RunID: r.runID,
		Algo:  r.info.Key,
		Step:  -1,
		Msg:   emit.MsgRunEnd,
		Meta: map[string]any{
			"total_steps":    m.TotalSteps,
			"path_found":     m.PathFound,
			"path_cost":      m.PathCost,
			"negative_cycle": m.NegativeCycle,
			"wall_time":      m.WallTime.String(),
		},
	})
	r.cfg.Collector.ObserveRun(m.telemetry())
	r.log.Info("run complete",
		"steps", m.TotalSteps,
		"visited", m.NodesVisited,
		"relaxed", m.EdgesRelaxed,
		"path_found", m.PathFound,
		"path_cost", m.PathCost,
		"wall_time", m.WallTime,
	)

	return m, nil
}

// compute derives metrics from the buffer. The path cost is recomputed
// against the live graph rather than read from the trace.
func (r *Recorder) compute() RunMetrics {
	m := RunMetrics{
		RunID:       r.runID,
		AlgoKey:     r.info.Key,
		AlgoLabel:   r.info.Label,
		Source:      r.source,
		Target:      r.target,
		TotalSteps:  len(r.steps),
		MemoryBytes: estimateBytes(r.steps),
		Heuristic:   r.heuristic,
	}
	last, ok := step.Last(r.steps)
	if !ok {
		return m
	}
	m.NodesVisited = last.Metrics.NodesVisited
	m.EdgesRelaxed = last.Metrics.EdgesRelaxed
	m.NegativeCycle = last.NegativeCycle()
	m.PathFound = len(last.Path) > 0
	if m.PathFound {
		m.PathLength = len(last.Path) - 1
		m.PathCost, _ = r.g.PathCost(last.Path)
	}

	return m
}

// Metrics returns the metrics of a completed run.
func (r *Recorder) Metrics() (RunMetrics, bool) {
	if r.metrics == nil {
		return RunMetrics{}, false
	}

	return *r.metrics, true
}

// Steps returns a copy of the recorded steps; empty before completion.
func (r *Recorder) Steps() []step.Step {
	return slices.Clone(r.steps)
}

// Stepper exposes the underlying stepper for interactive playback, or
// nil before Start.
func (r *Recorder) Stepper() *stepper.Stepper { return r.st }

// RunID returns the ID of the current run.
func (r *Recorder) RunID() string { return r.runID }

// Algorithm returns the registry entry of the current run.
func (r *Recorder) Algorithm() registry.AlgoInfo { return r.info }
