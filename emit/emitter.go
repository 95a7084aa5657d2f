// Package emit publishes step events to observability backends. A Recorder
// emits one event when a run starts, one per step, and one when the run
// ends; emitters decide what to do with them (log, buffer, trace, drop).
package emit

import (
	"github.com/tanmayjayanthi2005-droid/Graph-Algorithm-Visualizer/step"
)

// Event messages.
const (
	MsgRunStart = "run_start"
	MsgStep     = "step"
	MsgRunEnd   = "run_end"
)

// Emitter receives run events. Implementations must be safe for
// concurrent use and must not block or panic.
type Emitter interface {
	Emit(event Event)
}

// Event is one observability record.
type Event struct {
	// RunID identifies the recorded run.
	RunID string

	// Algo is the registry key of the algorithm.
	Algo string

	// Step is the step number, or -1 for run-level events.
	Step int

	// NodeID is the step's current node, if any.
	NodeID string

	Msg  string
	Meta map[string]any
}

// StepEvent converts s into a MsgStep event.
func StepEvent(runID, algo string, s step.Step) Event {
	meta := map[string]any{
		"line":          s.PseudocodeLine,
		"explanation":   s.Explanation,
		"nodes_visited": s.Metrics.NodesVisited,
		"edges_relaxed": s.Metrics.EdgesRelaxed,
		"path_length":   s.Metrics.PathLength,
		"final":         s.Final,
	}
	if s.CurrentEdge != "" {
		meta["edge_id"] = s.CurrentEdge
	}
	if s.Overlay != nil {
		meta["overlay"] = string(s.Overlay.Kind())
	}
	if s.NegativeCycle() {
		meta["negative_cycle"] = true
	}

	return Event{
		RunID:  runID,
		Algo:   algo,
		Step:   s.Number,
		NodeID: s.CurrentNode,
		Msg:    MsgStep,
		Meta:   meta,
	}
}

type multi []Emitter

// Multi fans every event out to each of emitters in order. Nil entries
// are skipped.
func Multi(emitters ...Emitter) Emitter {
	var m multi
	for _, e := range emitters {
		if e != nil {
			m = append(m, e)
		}
	}

	return m
}

func (m multi) Emit(event Event) {
	for _, e := range m {
		e.Emit(event)
	}
}
