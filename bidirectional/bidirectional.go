// Package bidirectional traces a bidirectional breadth-first search: one
// frontier grows from the source along edges, the other from the target
// against them, one full layer at a time, until a newly discovered node is
// already known to the opposite side.
//
// Backward-frontier nodes carry core.NodeFrontierB so a renderer can colour
// the two waves apart. The BidirectionalOverlay lists both queues.
package bidirectional

import (
	"iter"

	"github.com/tanmayjayanthi2005-droid/Graph-Algorithm-Visualizer/core"
	"github.com/tanmayjayanthi2005-droid/Graph-Algorithm-Visualizer/step"
)

// side is the state of one search direction.
type side struct {
	queue   []string
	visited map[string]bool
	parent  map[string]string
}

func newSide(root string) *side {
	return &side{
		queue:   []string{root},
		visited: map[string]bool{root: true},
		parent:  make(map[string]string),
	}
}

type search struct {
	g      *core.Graph
	source string
	target string

	tr *step.Trace
	b  *step.Builder

	fwd, bwd *side
	incoming map[string][]core.Neighbor // reverse adjacency for the backward wave
	order    []string                   // union of both visited sets, discovery order
	known    map[string]bool            // membership index for order
}

// Steps returns the traced bidirectional BFS from source to target.
func Steps(g *core.Graph, source, target string) iter.Seq[step.Step] {
	return func(yield func(step.Step) bool) {
		s := &search{
			g:      g,
			source: source,
			target: target,
			tr:     step.NewTrace(yield),
			b:      step.NewBuilder(),
			known:  make(map[string]bool),
		}
		s.run()
	}
}

func (s *search) run() {
	if reason := step.CheckEndpoints(s.g, s.source, s.target); reason != "" {
		s.b.SetLine(LineNotFound)
		s.b.Explain("Cannot start: %s. Target not reachable.", reason)
		s.b.SetOverlay(step.BidirectionalOverlay{Forward: []string{}, Backward: []string{}})
		s.tr.Finish(s.b)
		return
	}

	s.fwd, s.bwd = newSide(s.source), newSide(s.target)
	s.incoming = reverseAdjacency(s.g)
	s.record(s.source)
	s.record(s.target)

	s.b.SetVisited(s.order)
	s.b.MarkNode(s.source, core.NodeSource)
	s.b.MarkNode(s.target, core.NodeTarget)
	s.b.SetLine(LineInit)
	s.b.Explain("Bidirectional BFS: launch two frontiers; forward from '%s' and backward from '%s'.", s.source, s.target)
	s.b.SetOverlay(s.overlay())
	if !s.tr.Emit(s.b) {
		return
	}

	if s.source == s.target {
		s.finish([]string{s.source}, LineForwardMeet, s.source)
		return
	}

	for len(s.fwd.queue) > 0 || len(s.bwd.queue) > 0 {
		if len(s.fwd.queue) > 0 {
			meet, ok := s.expandLayer(true)
			if !ok {
				return
			}
			if meet != "" {
				s.finish(s.join(meet), LineForwardMeet, meet)
				return
			}
		}
		if len(s.bwd.queue) > 0 {
			meet, ok := s.expandLayer(false)
			if !ok {
				return
			}
			if meet != "" {
				s.finish(s.join(meet), LineBackwardMeet, meet)
				return
			}
		}
	}

	s.b.SetVisited(s.order)
	s.b.SetLine(LineNotFound)
	s.b.Explain("Both frontiers exhausted; target not reachable.")
	s.b.SetOverlay(step.BidirectionalOverlay{Forward: []string{}, Backward: []string{}})
	s.tr.Finish(s.b)
}

// expandLayer drains the current layer of one side, emitting an expand step
// per dequeued node and an examine step per traversable edge. It returns
// the meeting node (first newly discovered node already visited by the
// other side) or "", and false once the consumer has stopped.
func (s *search) expandLayer(forward bool) (string, bool) {
	me, other := s.fwd, s.bwd
	line, tag := LineForward, "Fwd"
	if !forward {
		me, other = s.bwd, s.fwd
		line, tag = LineBackward, "Bwd"
	}

	var discovered []string
	for n := len(me.queue); n > 0; n-- {
		node := me.queue[0]
		me.queue = me.queue[1:]

		s.snapshot(node)
		s.b.SetLine(line)
		if forward {
			s.b.Explain("[Forward] Expand '%s'.", node)
		} else {
			s.b.Explain("[Backward] Expand '%s'.", node)
		}
		if !s.tr.Emit(s.b) {
			return "", false
		}

		for _, nb := range s.next(node, forward) {
			if s.g.IsBlocked(nb.ID) {
				continue
			}
			fresh := !me.visited[nb.ID]
			if fresh {
				me.visited[nb.ID] = true
				me.parent[nb.ID] = node
				me.queue = append(me.queue, nb.ID)
				discovered = append(discovered, nb.ID)
				s.record(nb.ID)
			}

			s.snapshot(node)
			s.b.RelaxEdge(nb.Edge.ID)
			s.b.SetLine(line)
			if fresh {
				if forward {
					s.b.MarkNode(nb.ID, core.NodeFrontier)
				} else {
					s.b.MarkNode(nb.ID, core.NodeFrontierB)
				}
				s.b.Explain("[%s] Edge %s→%s: enqueue '%s'.", tag, node, nb.ID, nb.ID)
			} else {
				s.b.IgnoreEdge(nb.Edge.ID)
				s.b.Explain("[%s] Edge %s→%s: already visited.", tag, node, nb.ID)
			}
			if !s.tr.Emit(s.b) {
				return "", false
			}
		}
	}

	for _, id := range discovered {
		if other.visited[id] {
			return id, true
		}
	}

	return "", true
}

// next lists the edges one wave may follow out of node: outgoing edges for
// the forward wave, incoming edges for the backward wave.
func (s *search) next(node string, forward bool) []core.Neighbor {
	if forward {
		return s.g.Neighbors(node)
	}

	return s.incoming[node]
}

// join concatenates the forward chain source→meet with the backward chain
// meet→target.
func (s *search) join(meet string) []string {
	path := step.Reconstruct(s.fwd.parent, s.source, meet)
	for cur := meet; cur != s.target; {
		p, ok := s.bwd.parent[cur]
		if !ok {
			return nil
		}
		path = append(path, p)
		cur = p
	}

	return path
}

func (s *search) finish(path []string, line int, meet string) {
	s.b.SetVisited(s.order)
	s.b.SetPath(path)
	step.ChoosePath(s.b, s.g, path)
	s.b.SetCurrent(meet)
	s.b.MarkNode(meet, core.NodePath)
	s.b.SetLine(line)
	s.b.Explain("Frontiers met at '%s'! Path: %s (%d edges). Total nodes explored: %d.",
		meet, step.Arrow(path), len(path)-1, len(s.order))
	s.b.SetOverlay(s.overlay())
	s.tr.Finish(s.b)
}

func (s *search) record(id string) {
	if s.known[id] {
		return
	}
	s.known[id] = true
	s.order = append(s.order, id)
}

// snapshot fills the shared fields: union visited set, both frontiers
// (backward nodes tagged frontier_b) and the current node.
func (s *search) snapshot(current string) {
	s.b.SetVisited(s.order)
	s.b.SetCurrent(current)
	for _, id := range s.bwd.queue {
		if id != current && !s.fwd.visited[id] {
			s.b.MarkNode(id, core.NodeFrontierB)
		}
	}
	frontier := append([]string{}, s.fwd.queue...)
	for _, id := range s.bwd.queue {
		if !s.fwd.visited[id] {
			frontier = append(frontier, id)
		}
	}
	s.b.SetFrontier(frontier)
	s.b.SetOverlay(s.overlay())
}

func (s *search) overlay() step.BidirectionalOverlay {
	return step.BidirectionalOverlay{
		Forward:  append([]string{}, s.fwd.queue...),
		Backward: append([]string{}, s.bwd.queue...),
	}
}

// reverseAdjacency indexes, for every node, the edges that lead into it.
// Undirected edges appear under both endpoints. Order follows edge
// creation, matching Graph.Neighbors on undirected graphs.
func reverseAdjacency(g *core.Graph) map[string][]core.Neighbor {
	in := make(map[string][]core.Neighbor)
	for _, e := range g.Edges() {
		in[e.To] = append(in[e.To], core.Neighbor{ID: e.From, Edge: e})
		if !e.Directed && e.From != e.To {
			in[e.From] = append(in[e.From], core.Neighbor{ID: e.To, Edge: e})
		}
	}

	return in
}
