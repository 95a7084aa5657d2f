// Package greedy traces greedy best-first search: the open set is ordered
// by the heuristic alone and the cost incurred so far is never consulted.
// The search is complete on finite graphs but its path is not guaranteed to
// be optimal.
package greedy

import (
	"iter"
	"slices"

	"github.com/tanmayjayanthi2005-droid/Graph-Algorithm-Visualizer/core"
	"github.com/tanmayjayanthi2005-droid/Graph-Algorithm-Visualizer/heuristic"
	"github.com/tanmayjayanthi2005-droid/Graph-Algorithm-Visualizer/internal/pq"
	"github.com/tanmayjayanthi2005-droid/Graph-Algorithm-Visualizer/step"
)

type search struct {
	g      *core.Graph
	source string
	target string
	name   string
	h      *heuristic.Cache

	tr *step.Trace
	b  *step.Builder

	visited map[string]bool
	order   []string
	parent  map[string]string
	seen    []string // nodes with an h estimate, in first-seen order
	open    *pq.Queue
}

// Steps returns the traced greedy best-first search from source to target.
// A node's parent is the first node that pushed it.
func Steps(g *core.Graph, source, target string, opts ...Option) iter.Seq[step.Step] {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	name, fn := heuristic.Resolve(o.Heuristic)

	return func(yield func(step.Step) bool) {
		s := &search{
			g:       g,
			source:  source,
			target:  target,
			name:    name,
			h:       heuristic.NewCache(g, fn, target),
			tr:      step.NewTrace(yield),
			b:       step.NewBuilder(),
			visited: make(map[string]bool),
			parent:  make(map[string]string),
			open:    pq.New(),
		}
		s.run()
	}
}

func (s *search) run() {
	if reason := step.CheckEndpoints(s.g, s.source, s.target); reason != "" {
		s.b.SetLine(LineNotFound)
		s.b.Explain("Cannot start: %s. Target not reachable.", reason)
		s.b.SetOverlay(step.ScoreOverlay{Heuristic: s.name, Open: []step.Entry{}, Scores: []step.Score{}})
		s.tr.Finish(s.b)
		return
	}

	s.push(s.source)
	s.b.SetCurrent(s.source)
	s.b.SetLine(LineInit)
	s.b.Explain("Greedy Best-First: only h matters, no g cost at all! h('%s') = %.2f using %s.",
		s.source, s.h.H(s.source), s.name)
	s.b.SetOverlay(s.overlay())
	if !s.tr.Emit(s.b) {
		return
	}

	for s.open.Len() > 0 {
		e, _ := s.open.Pop()
		node := e.Node
		if s.visited[node] {
			continue
		}
		s.visited[node] = true
		s.order = append(s.order, node)

		s.b.SetCurrent(node)
		s.b.Visit(node)
		s.b.SetVisited(s.order)
		s.b.SetFrontier(s.frontier())
		s.b.SetLine(LinePop)
		s.b.Explain("Pop '%s' (h=%.2f). Greedy chose this purely because h is smallest; actual path cost is IGNORED.",
			node, s.h.H(node))
		s.b.SetOverlay(s.overlay())
		if !s.tr.Emit(s.b) {
			return
		}

		if node == s.target {
			s.found()
			return
		}
		if !s.expand(node) {
			return
		}
	}

	s.b.SetVisited(s.order)
	s.b.SetLine(LineNotFound)
	s.b.Explain("Open set empty; target not reachable.")
	ov := s.overlay()
	ov.Open = []step.Entry{}
	s.b.SetOverlay(ov)
	s.tr.Finish(s.b)
}

func (s *search) expand(node string) bool {
	for _, nb := range s.g.Neighbors(node) {
		if s.g.IsBlocked(nb.ID) || s.visited[nb.ID] {
			continue
		}
		s.push(nb.ID)
		if _, ok := s.parent[nb.ID]; !ok && nb.ID != s.source {
			s.parent[nb.ID] = node
		}

		s.b.SetVisited(s.order)
		s.b.SetCurrent(node)
		s.b.RelaxEdge(nb.Edge.ID)
		s.b.MarkNode(nb.ID, core.NodeFrontier)
		s.b.SetFrontier(s.frontier())
		s.b.SetLine(LinePush)
		s.b.Explain("Push '%s' (h=%.2f). Greedy will pick whichever neighbour has lowest h next; edge weight %g is irrelevant here.",
			nb.ID, s.h.H(nb.ID), nb.Edge.Weight)
		s.b.SetOverlay(s.overlay())
		if !s.tr.Emit(s.b) {
			return false
		}
	}

	return true
}

func (s *search) found() {
	path := step.Reconstruct(s.parent, s.source, s.target)
	s.b.SetVisited(s.order)
	s.b.SetPath(path)
	step.ChoosePath(s.b, s.g, path)
	s.b.SetLine(LineTarget)
	s.b.Explain("Target found! Path: %s (%d edges). Note: this path may NOT be optimal; greedy ignores edge costs.",
		step.Arrow(path), len(path)-1)
	s.b.SetOverlay(s.overlay())
	s.tr.Finish(s.b)
}

func (s *search) push(id string) {
	if !s.h.Known(id) {
		s.seen = append(s.seen, id)
	}
	s.open.Push(id, s.h.H(id))
}

func (s *search) frontier() []string {
	return s.open.Nodes(func(n string) bool { return s.visited[n] })
}

// overlay lists one row per estimated node sorted by ID; F equals H.
func (s *search) overlay() step.ScoreOverlay {
	ids := slices.Sorted(slices.Values(s.seen))
	scores := make([]step.Score, 0, len(ids))
	for _, id := range ids {
		h := s.h.H(id)
		scores = append(scores, step.Score{Node: id, H: h, F: h})
	}

	return step.ScoreOverlay{
		Heuristic: s.name,
		Open:      s.open.Entries(func(n string) bool { return s.visited[n] }),
		Scores:    scores,
	}
}
