package recorder

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/tanmayjayanthi2005-droid/Graph-Algorithm-Visualizer/core"
	"github.com/tanmayjayanthi2005-droid/Graph-Algorithm-Visualizer/step"
	"github.com/tanmayjayanthi2005-droid/Graph-Algorithm-Visualizer/stepper"
)

// SnapshotVersion is the current document version.
const SnapshotVersion = 1

// Snapshot is a self-describing record of a completed run: the graph it
// ran on, every step, and the derived metrics.
type Snapshot struct {
	Version   int         `json:"version"`
	RunID     string      `json:"run_id"`
	AlgoKey   string      `json:"algo_key"`
	Source    string      `json:"source"`
	Target    string      `json:"target"`
	Heuristic string      `json:"heuristic,omitempty"`
	Graph     *core.Graph `json:"graph"`
	Metrics   RunMetrics  `json:"metrics"`
	Steps     []step.Step `json:"steps"`
	CreatedAt time.Time   `json:"created_at"`
}

// Export snapshots the completed run. The graph is cloned, so later edits
// to the live graph do not leak into the snapshot.
func (r *Recorder) Export() (Snapshot, error) {
	if r.st == nil {
		return Snapshot{}, fmt.Errorf("Export: %w", ErrNotStarted)
	}
	if r.metrics == nil {
		return Snapshot{}, fmt.Errorf("Export: %w", ErrNotCompleted)
	}

	return Snapshot{
		Version:   SnapshotVersion,
		RunID:     r.runID,
		AlgoKey:   r.info.Key,
		Source:    r.source,
		Target:    r.target,
		Heuristic: r.heuristic,
		Graph:     r.g.Clone(),
		Metrics:   *r.metrics,
		Steps:     slices.Clone(r.steps),
		CreatedAt: r.cfg.Clock().UTC(),
	}, nil
}

// Encode writes s as indented JSON.
func (s Snapshot) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("Encode: %w", err)
	}

	return nil
}

// DecodeSnapshot reads a snapshot written by Encode.
func DecodeSnapshot(r io.Reader) (Snapshot, error) {
	var s Snapshot
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return Snapshot{}, fmt.Errorf("DecodeSnapshot: %w", err)
	}
	if s.Version != SnapshotVersion {
		return Snapshot{}, fmt.Errorf("DecodeSnapshot: version %d: %w", s.Version, ErrSnapshotVersion)
	}

	return s, nil
}

// Replay returns a Paused stepper positioned on the first stored step.
// The algorithm is not re-run.
func Replay(s Snapshot, opts ...stepper.Option) (*stepper.Stepper, error) {
	st := stepper.New(opts...)
	if err := st.Start(step.FromSteps(s.Steps)); err != nil {
		return nil, fmt.Errorf("Replay: %w", err)
	}

	return st, nil
}
