package astar

import (
	"iter"
	"math"
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
	name   string // resolved heuristic name
	h      *heuristic.Cache

	tr *step.Trace
	b  *step.Builder

	gScore map[string]float64 // absent means +Inf
	parent map[string]string
	closed map[string]bool
	order  []string
	open   *pq.Queue
}

// Steps returns the traced A* search from source to target. The
// heuristic is evaluated at most once per node.
func Steps(g *core.Graph, source, target string, opts ...Option) iter.Seq[step.Step] {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	name, fn := heuristic.Resolve(o.Heuristic)

	return func(yield func(step.Step) bool) {
		s := &search{
			g:      g,
			source: source,
			target: target,
			name:   name,
			h:      heuristic.NewCache(g, fn, target),
			tr:     step.NewTrace(yield),
			b:      step.NewBuilder(),
			gScore: make(map[string]float64),
			parent: make(map[string]string),
			closed: make(map[string]bool),
			open:   pq.New(),
		}
		s.run()
	}
}

func (s *search) run() {
	if reason := step.CheckEndpoints(s.g, s.source, s.target); reason != "" {
		s.b.SetLine(LineNotFound)
		s.b.Explain("Cannot start: %s. '%s' not reachable.", reason, s.target)
		s.b.SetOverlay(step.ScoreOverlay{Heuristic: s.name, Open: []step.Entry{}, Scores: []step.Score{}})
		s.tr.Finish(s.b)
		return
	}

	h0 := s.h.H(s.source)
	s.gScore[s.source] = 0
	s.open.Push(s.source, h0)
	s.b.SetCurrent(s.source)
	s.b.SetDistances(s.gScore)
	s.b.SetLine(LineInit)
	s.b.Explain("A* init: g(source)=0, h(source)=%.2f (using %s), f(source)=%.2f. Push into open set.", h0, s.name, h0)
	s.b.SetOverlay(s.overlay())
	if !s.tr.Emit(s.b) {
		return
	}

	for s.open.Len() > 0 {
		e, _ := s.open.Pop()
		node := e.Node
		if s.closed[node] {
			continue
		}
		s.closed[node] = true
		s.order = append(s.order, node)

		gn, hn := s.gScore[node], s.h.H(node)
		s.b.SetCurrent(node)
		s.b.Visit(node)
		s.b.SetVisited(s.order)
		s.b.SetFrontier(s.frontier())
		s.b.SetDistances(s.gScore)
		s.b.SetLine(LinePop)
		s.b.Explain("Pop '%s': g=%.2f, h=%.2f, f=%.2f. Expand neighbours.", node, gn, hn, gn+hn)
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
	s.b.SetDistances(s.gScore)
	s.b.SetLine(LineNotFound)
	s.b.Explain("Open set empty. '%s' not reachable.", s.target)
	ov := s.overlay()
	ov.Open = []step.Entry{}
	s.b.SetOverlay(ov)
	s.tr.Finish(s.b)
}

func (s *search) expand(node string) bool {
	for _, nb := range s.g.Neighbors(node) {
		if s.g.IsBlocked(nb.ID) || s.closed[nb.ID] {
			continue
		}
		tentative := s.gScore[node] + nb.Edge.Weight
		h := s.h.H(nb.ID)

		s.b.SetVisited(s.order)
		s.b.SetCurrent(node)
		s.b.RelaxEdge(nb.Edge.ID)
		s.b.SetLine(LineRelax)
		if cur := s.gOf(nb.ID); tentative < cur {
			s.gScore[nb.ID] = tentative
			s.parent[nb.ID] = node
			s.open.Push(nb.ID, tentative+h)
			s.b.MarkNode(nb.ID, core.NodeFrontier)
			s.b.Explain("Relax %s→%s: g=%.2f, h=%.2f, f=%.2f; UPDATE!", node, nb.ID, tentative, h, tentative+h)
		} else {
			s.b.IgnoreEdge(nb.Edge.ID)
			s.b.Explain("Edge %s→%s: tentative g=%.2f ≥ current g=%.2f; no improvement.", node, nb.ID, tentative, cur)
		}
		s.b.SetFrontier(s.frontier())
		s.b.SetDistances(s.gScore)
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
	s.b.SetDistances(s.gScore)
	s.b.SetPath(path)
	step.ChoosePath(s.b, s.g, path)
	s.b.SetLine(LineTarget)
	s.b.Explain("Target '%s' reached! Optimal cost = %.2f. Path: %s", s.target, s.gScore[s.target], step.Arrow(path))
	s.b.SetOverlay(s.overlay())
	s.tr.Finish(s.b)
}

// gOf reads the current g-score, +Inf when unknown.
func (s *search) gOf(id string) float64 {
	if v, ok := s.gScore[id]; ok {
		return v
	}

	return math.Inf(1)
}

func (s *search) frontier() []string {
	return s.open.Nodes(func(n string) bool { return s.closed[n] })
}

// overlay snapshots the open set and one g/h/f row per node with a finite
// g-score, sorted by node ID.
func (s *search) overlay() step.ScoreOverlay {
	ids := make([]string, 0, len(s.gScore))
	for id := range s.gScore {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	scores := make([]step.Score, 0, len(ids))
	for _, id := range ids {
		g, h := s.gScore[id], s.h.H(id)
		scores = append(scores, step.Score{Node: id, G: g, H: h, F: g + h})
	}

	return step.ScoreOverlay{
		Heuristic: s.name,
		Open:      s.open.Entries(func(n string) bool { return s.closed[n] }),
		Scores:    scores,
	}
}
