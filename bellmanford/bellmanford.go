// Package bellmanford traces the Bellman–Ford single-source shortest-path
// algorithm, the one search in this module that accepts negative weights.
//
// Every round relaxes every arc (an undirected edge contributes one arc per
// orientation). Rounds stop early once a full pass changes nothing. A
// detector pass always follows; if it can still improve a distance the
// trace ends with a negative-cycle step instead of a path.
//
// Complexity: O(V·E) time, O(V + E) memory.
package bellmanford

import (
	"iter"
	"math"

	"github.com/tanmayjayanthi2005-droid/Graph-Algorithm-Visualizer/core"
	"github.com/tanmayjayanthi2005-droid/Graph-Algorithm-Visualizer/step"
)

// arc is one relaxation candidate u→v.
type arc struct {
	u, v   string
	w      float64
	edgeID string
}

type runner struct {
	g      *core.Graph
	source string
	target string

	tr *step.Trace
	b  *step.Builder

	arcs    []arc
	rounds  int // |V|-1
	dist    map[string]float64
	parent  map[string]string
	reached []string
}

// Steps returns the traced Bellman–Ford run from source, reporting the path
// to target at the end.
func Steps(g *core.Graph, source, target string) iter.Seq[step.Step] {
	return func(yield func(step.Step) bool) {
		r := &runner{
			g:      g,
			source: source,
			target: target,
			tr:     step.NewTrace(yield),
			b:      step.NewBuilder(),
			dist:   make(map[string]float64),
			parent: make(map[string]string),
		}
		r.run()
	}
}

func (r *runner) run() {
	if reason := step.CheckEndpoints(r.g, r.source, r.target); reason != "" {
		r.b.SetLine(LineDone)
		r.b.Explain("Cannot start: %s. '%s' is unreachable.", reason, r.target)
		r.b.SetOverlay(step.RoundOverlay{Distances: map[string]float64{}})
		r.tr.Finish(r.b)
		return
	}

	r.arcs = collectArcs(r.g)
	r.rounds = r.g.NodeCount() - 1
	r.dist[r.source] = 0
	r.reached = []string{r.source}

	r.b.SetCurrent(r.source)
	r.frame(0)
	r.b.SetLine(LineInit)
	r.b.Explain("Bellman-Ford init: dist['%s'] = 0, all others = ∞. Will run %d relaxation rounds over all %d directed edges.",
		r.source, r.rounds, len(r.arcs))
	if !r.tr.Emit(r.b) {
		return
	}

	for round := 1; round <= r.rounds; round++ {
		r.frame(round)
		r.b.SetLine(LineRound)
		r.b.Explain("Round %d of %d: scan all edges.", round, r.rounds)
		if !r.tr.Emit(r.b) {
			return
		}

		changed := false
		for _, a := range r.arcs {
			du, ok := r.dist[a.u]
			if !ok {
				continue
			}
			nd := du + a.w
			old := r.distance(a.v)

			r.b.SetCurrent(a.u)
			r.b.RelaxEdge(a.edgeID)
			r.b.SetLine(LineRelax)
			if nd < old {
				r.improve(a.v, a.u, nd)
				changed = true
				r.b.MarkNode(a.v, core.NodeFrontier)
				r.b.Explain("Relax %s→%s (w=%g): %g + %g = %g < old %g → UPDATE dist[%s] = %g",
					a.u, a.v, a.w, du, a.w, nd, old, a.v, nd)
			} else {
				r.b.IgnoreEdge(a.edgeID)
				r.b.Explain("Edge %s→%s (w=%g): %g + %g = %g ≥ %g; no change.", a.u, a.v, a.w, du, a.w, nd, old)
			}
			r.frame(round)
			if !r.tr.Emit(r.b) {
				return
			}
		}

		r.frame(round)
		r.b.SetLine(LineRound)
		if !changed {
			r.b.Explain("Round %d: no relaxation occurred → distances converged early! Remaining rounds can be skipped.", round)
			if !r.tr.Emit(r.b) {
				return
			}
			break
		}
		r.b.Explain("Round %d complete.", round)
		if !r.tr.Emit(r.b) {
			return
		}
	}

	r.detect()
}

// detect runs the extra pass. A still-relaxable arc proves a negative
// cycle reachable from the source.
func (r *runner) detect() {
	r.frame(r.rounds + 1)
	r.b.SetLine(LineDetector)
	r.b.Explain("Negative-cycle detector round: one more pass over all edges…")
	if !r.tr.Emit(r.b) {
		return
	}

	for _, a := range r.arcs {
		du, ok := r.dist[a.u]
		if !ok || du+a.w >= r.distance(a.v) {
			continue
		}
		cycle := r.cycleThrough(a)
		r.b.SetVisited(r.reached)
		r.b.SetDistances(r.dist)
		r.b.SetCurrent(a.v)
		for i := 0; i+1 < len(cycle); i++ {
			if e, ok := r.g.EdgeBetween(cycle[i], cycle[i+1]); ok {
				r.b.MarkEdge(e.ID, core.EdgeActive)
			}
		}
		r.b.MarkEdge(a.edgeID, core.EdgeActive)
		r.b.SetLine(LineNegativeCycle)
		r.b.Explain("NEGATIVE CYCLE detected via edge %s→%s (w=%g): dist[%s]+%g = %g < dist[%s]=%g. Shortest paths are undefined!",
			a.u, a.v, a.w, a.u, a.w, du+a.w, a.v, r.dist[a.v])
		r.b.SetOverlay(step.RoundOverlay{Round: r.rounds + 1, Distances: step.Finite(r.dist), NegativeCycle: true})
		r.tr.Finish(r.b)
		return
	}

	r.frame(r.rounds + 1)
	r.b.SetLine(LineDone)
	d, ok := r.dist[r.target]
	if !ok {
		r.b.Explain("No negative cycle, but '%s' is unreachable (dist = ∞).", r.target)
		r.tr.Finish(r.b)
		return
	}
	path := step.Reconstruct(r.parent, r.source, r.target)
	r.b.SetPath(path)
	step.ChoosePath(r.b, r.g, path)
	r.b.Explain("No negative cycle. Shortest path to '%s': %s, cost = %g.", r.target, step.Arrow(path), d)
	r.tr.Finish(r.b)
}

// cycleThrough recovers the cycle responsible for the relaxable arc a by
// stepping |V| parents back from a.v, which must land inside the cycle.
// It returns the cycle in edge order, or nil if the parent chain breaks.
func (r *runner) cycleThrough(a arc) []string {
	parent := make(map[string]string, len(r.parent)+1)
	for k, v := range r.parent {
		parent[k] = v
	}
	parent[a.v] = a.u

	x := a.v
	for i := 0; i <= r.rounds; i++ {
		p, ok := parent[x]
		if !ok {
			return nil
		}
		x = p
	}
	cycle := []string{x}
	for cur := parent[x]; cur != x; cur = parent[cur] {
		cycle = append(cycle, cur)
		if len(cycle) > len(parent)+1 {
			return nil
		}
	}
	cycle = append(cycle, x)
	// parent links run backwards; flip to follow edge direction
	for i, j := 0, len(cycle)-1; i < j; i, j = i+1, j-1 {
		cycle[i], cycle[j] = cycle[j], cycle[i]
	}

	return cycle
}

func (r *runner) improve(v, u string, d float64) {
	if _, seen := r.dist[v]; !seen {
		r.reached = append(r.reached, v)
	}
	r.dist[v] = d
	r.parent[v] = u
}

// frame fills the fields every step shares.
func (r *runner) frame(round int) {
	r.b.SetVisited(r.reached)
	r.b.SetDistances(r.dist)
	r.b.SetOverlay(step.RoundOverlay{Round: round, Distances: step.Finite(r.dist)})
}

func (r *runner) distance(id string) float64 {
	if d, ok := r.dist[id]; ok {
		return d
	}

	return math.Inf(1)
}

// collectArcs lists relaxation candidates in edge creation order. Arcs
// touching a blocked node and arcs with infinite weight are left out.
func collectArcs(g *core.Graph) []arc {
	var arcs []arc
	for _, e := range g.Edges() {
		if math.IsInf(e.Weight, 1) || g.IsBlocked(e.From) || g.IsBlocked(e.To) {
			continue
		}
		arcs = append(arcs, arc{u: e.From, v: e.To, w: e.Weight, edgeID: e.ID})
		if !e.Directed && e.From != e.To {
			arcs = append(arcs, arc{u: e.To, v: e.From, w: e.Weight, edgeID: e.ID})
		}
	}

	return arcs
}
