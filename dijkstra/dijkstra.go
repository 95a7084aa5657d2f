package dijkstra

import (
	"iter"
	"math"

	"github.com/tanmayjayanthi2005-droid/Graph-Algorithm-Visualizer/core"
	"github.com/tanmayjayanthi2005-droid/Graph-Algorithm-Visualizer/internal/pq"
	"github.com/tanmayjayanthi2005-droid/Graph-Algorithm-Visualizer/step"
)

// runner holds the mutable state of one traced run.
type runner struct {
	g      *core.Graph
	opts   Options
	source string
	target string

	tr *step.Trace
	b  *step.Builder

	dist    map[string]float64 // absent means +Inf
	parent  map[string]string
	visited map[string]bool
	order   []string // finalisation order
	pq      *pq.Queue
}

// Steps returns the traced Dijkstra search from source to target.
func Steps(g *core.Graph, source, target string, opts ...Option) iter.Seq[step.Step] {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return func(yield func(step.Step) bool) {
		r := &runner{
			g:       g,
			opts:    o,
			source:  source,
			target:  target,
			tr:      step.NewTrace(yield),
			b:       step.NewBuilder(),
			dist:    make(map[string]float64),
			parent:  make(map[string]string),
			visited: make(map[string]bool),
			pq:      pq.New(),
		}
		r.run()
	}
}

func (r *runner) run() {
	if reason := step.CheckEndpoints(r.g, r.source, r.target); reason != "" {
		r.b.SetLine(LineNotFound)
		r.b.Explain("Cannot start: %s. '%s' is not reachable.", reason, r.target)
		r.b.SetOverlay(step.PriorityOverlay{Queue: []step.Entry{}, Distances: map[string]float64{}})
		r.tr.Finish(r.b)
		return
	}

	r.dist[r.source] = 0
	r.pq.Push(r.source, 0)
	r.b.SetCurrent(r.source)
	r.b.SetDistances(r.dist)
	r.b.SetLine(LineInit)
	r.b.Explain("Initialise: all distances = ∞ except source '%s' = 0. Push source into the priority queue.", r.source)
	r.b.SetOverlay(r.overlay())
	if !r.tr.Emit(r.b) {
		return
	}

	for r.pq.Len() > 0 {
		e, _ := r.pq.Pop()
		node, d := e.Node, e.Priority

		if r.visited[node] || d > r.distance(node) {
			r.b.SetVisited(r.order)
			r.b.SetDistances(r.dist)
			r.b.SetFrontier(r.frontier())
			r.b.SetLine(LineStale)
			r.b.Explain("Pop (dist=%g, '%s'); stale entry (current best = %g). Skip.", d, node, r.distance(node))
			r.b.SetOverlay(r.overlay())
			if !r.tr.Emit(r.b) {
				return
			}
			continue
		}

		r.visited[node] = true
		r.order = append(r.order, node)
		r.b.SetCurrent(node)
		r.b.Visit(node)
		r.b.SetVisited(r.order)
		r.b.SetFrontier(r.frontier())
		r.b.SetDistances(r.dist)
		r.b.SetLine(LinePop)
		r.b.Explain("Pop '%s' with distance %g; smallest in the priority queue. This distance is now FINAL.", node, d)
		r.b.SetOverlay(r.overlay())
		if !r.tr.Emit(r.b) {
			return
		}

		if node == r.target {
			r.found()
			return
		}
		if !r.relax(node) {
			return
		}
	}

	r.b.SetVisited(r.order)
	r.b.SetDistances(r.dist)
	r.b.SetLine(LineNotFound)
	r.b.Explain("Priority queue empty. '%s' is not reachable.", r.target)
	r.b.SetOverlay(step.PriorityOverlay{Queue: []step.Entry{}, Distances: step.Finite(r.dist)})
	r.tr.Finish(r.b)
}

// relax emits one step per traversable neighbour of u: ignored when the
// neighbour is already final, relaxed (and possibly updated) otherwise.
func (r *runner) relax(u string) bool {
	for _, nb := range r.g.Neighbors(u) {
		if r.g.IsBlocked(nb.ID) || nb.Edge.Weight >= r.opts.InfEdgeThreshold {
			continue
		}
		w := nb.Edge.Weight

		if r.visited[nb.ID] {
			r.b.SetVisited(r.order)
			r.b.SetCurrent(u)
			r.b.SetDistances(r.dist)
			r.b.IgnoreEdge(nb.Edge.ID)
			r.b.SetLine(LineFinalized)
			r.b.Explain("Edge %s→%s (w=%g): '%s' already finalised; skip.", u, nb.ID, w, nb.ID)
			r.b.SetOverlay(r.overlay())
			if !r.tr.Emit(r.b) {
				return false
			}
			continue
		}

		old := r.distance(nb.ID)
		nd := r.dist[u] + w
		r.b.SetVisited(r.order)
		r.b.SetCurrent(u)
		r.b.RelaxEdge(nb.Edge.ID)
		r.b.SetLine(LineRelax)
		switch {
		case nd < old && nd <= r.opts.MaxDistance:
			r.dist[nb.ID] = nd
			r.parent[nb.ID] = u
			r.pq.Push(nb.ID, nd)
			r.b.MarkNode(nb.ID, core.NodeFrontier)
			r.b.Explain("Relax %s→%s: %g + %g = %g < current %g → UPDATE!", u, nb.ID, r.dist[u], w, nd, old)
		case nd < old:
			r.b.IgnoreEdge(nb.Edge.ID)
			r.b.Explain("Edge %s→%s: %g exceeds the distance cap %g; not queued.", u, nb.ID, nd, r.opts.MaxDistance)
		default:
			r.b.IgnoreEdge(nb.Edge.ID)
			r.b.Explain("Edge %s→%s: %g + %g = %g ≥ current %g → no improvement.", u, nb.ID, r.dist[u], w, nd, old)
		}
		r.b.SetFrontier(r.frontier())
		r.b.SetDistances(r.dist)
		r.b.SetOverlay(r.overlay())
		if !r.tr.Emit(r.b) {
			return false
		}
	}

	return true
}

func (r *runner) found() {
	path := step.Reconstruct(r.parent, r.source, r.target)
	r.b.SetVisited(r.order)
	r.b.SetDistances(r.dist)
	r.b.SetPath(path)
	step.ChoosePath(r.b, r.g, path)
	r.b.SetLine(LineTarget)
	r.b.Explain("Target '%s' popped! Shortest distance = %g. Path: %s", r.target, r.dist[r.target], step.Arrow(path))
	r.b.SetOverlay(r.overlay())
	r.tr.Finish(r.b)
}

func (r *runner) distance(id string) float64 {
	if d, ok := r.dist[id]; ok {
		return d
	}

	return math.Inf(1)
}

func (r *runner) frontier() []string {
	return r.pq.Nodes(func(n string) bool { return r.visited[n] })
}

func (r *runner) overlay() step.PriorityOverlay {
	return step.PriorityOverlay{Queue: r.pq.Entries(nil), Distances: step.Finite(r.dist)}
}
