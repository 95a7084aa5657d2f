package step

import (
	"fmt"
	"maps"
	"math"
	"slices"

	"github.com/tanmayjayanthi2005-droid/Graph-Algorithm-Visualizer/core"
)

// Builder is the mutable scratch area a generator fills for one step.
// Build freezes it into an immutable Step; Trace resets it afterwards.
//
// Builder is not safe for concurrent use.
type Builder struct {
	current     string
	currentEdge string
	nodeStates  map[string]core.NodeState
	edgeStates  map[string]core.EdgeState
	visited     []string
	frontier    []string
	path        []string
	distances   map[string]float64
	line        int
	explanation string
	overlay     Overlay
	relaxed     int
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	b := &Builder{}
	b.Reset()

	return b
}

// Reset discards everything recorded since the last Build.
func (b *Builder) Reset() {
	b.current, b.currentEdge = "", ""
	b.nodeStates = make(map[string]core.NodeState)
	b.edgeStates = make(map[string]core.EdgeState)
	b.visited, b.frontier, b.path = nil, nil, nil
	b.distances = nil
	b.line = 0
	b.explanation = ""
	b.overlay = nil
	b.relaxed = 0
}

// SetCurrent makes id the node of interest and marks it current.
func (b *Builder) SetCurrent(id string) {
	b.current = id
	b.nodeStates[id] = core.NodeCurrent
}

// MarkNode records a visual state change for id.
func (b *Builder) MarkNode(id string, st core.NodeState) {
	b.nodeStates[id] = st
}

// Visit marks id visited and appends it to the visited snapshot if absent.
func (b *Builder) Visit(id string) {
	b.nodeStates[id] = core.NodeVisited
	if !slices.Contains(b.visited, id) {
		b.visited = append(b.visited, id)
	}
}

// SetVisited replaces the visited snapshot with a copy of ids.
func (b *Builder) SetVisited(ids []string) {
	b.visited = slices.Clone(ids)
}

// SetFrontier replaces the frontier snapshot with a copy of ids. Nodes
// without a recorded state in this step are marked frontier.
func (b *Builder) SetFrontier(ids []string) {
	b.frontier = slices.Clone(ids)
	for _, id := range ids {
		if _, ok := b.nodeStates[id]; !ok {
			b.nodeStates[id] = core.NodeFrontier
		}
	}
}

// RelaxEdge makes id the edge of interest, marks it relaxed and counts one
// relaxation towards the running tally.
func (b *Builder) RelaxEdge(id string) {
	b.currentEdge = id
	b.edgeStates[id] = core.EdgeRelaxed
	b.relaxed++
}

// IgnoreEdge marks id ignored. The relaxation tally is unchanged, so an
// examined-then-rejected edge still counts once when RelaxEdge preceded it.
func (b *Builder) IgnoreEdge(id string) {
	b.currentEdge = id
	b.edgeStates[id] = core.EdgeIgnored
}

// ChooseEdge marks id as part of the result.
func (b *Builder) ChooseEdge(id string) {
	b.edgeStates[id] = core.EdgeChosen
}

// MarkEdge records a visual state change for edge id without touching the
// relaxation tally or the current edge.
func (b *Builder) MarkEdge(id string, st core.EdgeState) {
	b.edgeStates[id] = st
}

// SetPath records the result path and marks every node on it.
func (b *Builder) SetPath(path []string) {
	b.path = slices.Clone(path)
	for _, id := range path {
		b.nodeStates[id] = core.NodePath
	}
}

// SetDistances snapshots the finite entries of dist.
func (b *Builder) SetDistances(dist map[string]float64) {
	b.distances = Finite(dist)
}

// SetLine records the highlighted pseudocode line (0-based).
func (b *Builder) SetLine(n int) { b.line = n }

// Explain sets the human-readable narration.
func (b *Builder) Explain(format string, args ...any) {
	b.explanation = fmt.Sprintf(format, args...)
}

// SetOverlay attaches o. The builder takes ownership of o's containers.
func (b *Builder) SetOverlay(o Overlay) { b.overlay = o }

// Relaxed returns the number of relaxations recorded since the last Reset.
func (b *Builder) Relaxed() int { return b.relaxed }

// Build freezes the builder into a Step with the given number and tallies.
// Every container is copied; later builder mutations do not leak.
func (b *Builder) Build(number int, m Metrics, final bool) Step {
	s := Step{
		Number:         number,
		CurrentNode:    b.current,
		CurrentEdge:    b.currentEdge,
		NodeStates:     maps.Clone(b.nodeStates),
		EdgeStates:     maps.Clone(b.edgeStates),
		Visited:        nonNil(b.visited),
		Frontier:       nonNil(b.frontier),
		Path:           nonNil(b.path),
		Distances:      maps.Clone(b.distances),
		PseudocodeLine: b.line,
		Explanation:    b.explanation,
		Overlay:        b.overlay,
		Metrics:        m,
		Final:          final,
	}
	if s.Distances == nil {
		s.Distances = map[string]float64{}
	}

	return s
}

// Finite copies dist without infinite or NaN entries.
func Finite(dist map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(dist))
	for id, d := range dist {
		if math.IsInf(d, 0) || math.IsNaN(d) {
			continue
		}
		out[id] = d
	}

	return out
}

func nonNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}

	return slices.Clone(ids)
}
