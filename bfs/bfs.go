package bfs

import (
	"iter"

	"github.com/tanmayjayanthi2005-droid/Graph-Algorithm-Visualizer/core"
	"github.com/tanmayjayanthi2005-droid/Graph-Algorithm-Visualizer/step"
)

// walker encapsulates mutable BFS state for one traced run.
type walker struct {
	g      *core.Graph
	opts   Options
	source string
	target string

	tr *step.Trace
	b  *step.Builder

	queue  []string
	order  []string // discovery order; doubles as the visited snapshot
	seen   map[string]bool
	parent map[string]string
	depth  map[string]int
}

// Steps returns the traced breadth-first search from source to target.
// Each range over the result replays the search from scratch.
func Steps(g *core.Graph, source, target string, opts ...Option) iter.Seq[step.Step] {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return func(yield func(step.Step) bool) {
		w := &walker{
			g:      g,
			opts:   o,
			source: source,
			target: target,
			tr:     step.NewTrace(yield),
			b:      step.NewBuilder(),
			seen:   make(map[string]bool),
			parent: make(map[string]string),
			depth:  make(map[string]int),
		}
		w.run()
	}
}

func (w *walker) run() {
	if reason := step.CheckEndpoints(w.g, w.source, w.target); reason != "" {
		w.b.SetLine(LineNotFound)
		w.b.Explain("Cannot start: %s. Target '%s' is NOT reachable.", reason, w.target)
		w.b.SetOverlay(step.QueueOverlay{Queue: []string{}})
		w.tr.Finish(w.b)
		return
	}

	w.discover(w.source, "", 0)
	w.b.SetVisited(w.order)
	w.b.SetCurrent(w.source)
	w.b.SetFrontier(w.queue)
	w.b.SetLine(LineInit)
	w.b.Explain("Initialise: source node '%s' is placed into the queue and marked as visited. "+
		"BFS explores layer by layer from here.", w.source)
	w.b.SetOverlay(w.overlay())
	if !w.tr.Emit(w.b) {
		return
	}

	for len(w.queue) > 0 {
		node := w.queue[0]
		w.queue = w.queue[1:]

		w.snapshot(node)
		w.b.SetLine(LineDequeue)
		w.b.Explain("Dequeue node '%s'; it is now the CURRENT node being expanded. "+
			"BFS always dequeues the node that was discovered earliest (FIFO).", node)
		if !w.tr.Emit(w.b) {
			return
		}

		if node == w.target {
			w.found()
			return
		}
		if !w.expand(node) {
			return
		}
	}

	w.b.SetVisited(w.order)
	w.b.SetLine(LineNotFound)
	w.b.Explain("Queue is empty. Target '%s' is NOT reachable from '%s'.", w.target, w.source)
	w.b.SetOverlay(step.QueueOverlay{Queue: []string{}})
	w.tr.Finish(w.b)
}

// expand emits one examine step per traversable neighbour and one enqueue
// step per newly discovered neighbour. It reports false once the consumer
// has stopped.
func (w *walker) expand(node string) bool {
	for _, nb := range w.g.Neighbors(node) {
		if w.g.IsBlocked(nb.ID) || !w.opts.FilterNeighbor(node, nb.ID) {
			continue
		}
		d := w.depth[node] + 1
		if w.opts.MaxDepth > 0 && d > w.opts.MaxDepth {
			continue
		}

		w.snapshot(node)
		w.b.RelaxEdge(nb.Edge.ID)
		w.b.SetLine(LineExamine)
		fresh := !w.seen[nb.ID]
		if fresh {
			w.b.Explain("Examine edge %s→%s: neighbour '%s' is NEW; enqueue it and mark visited.", node, nb.ID, nb.ID)
		} else {
			w.b.IgnoreEdge(nb.Edge.ID)
			w.b.Explain("Examine edge %s→%s: neighbour '%s' already visited; skip.", node, nb.ID, nb.ID)
		}
		if !w.tr.Emit(w.b) {
			return false
		}
		if !fresh {
			continue
		}

		w.discover(nb.ID, node, d)
		w.snapshot(node)
		w.b.MarkNode(nb.ID, core.NodeFrontier)
		w.b.SetLine(LineEnqueue)
		w.b.Explain("Enqueue '%s' (parent = '%s'). It will be expanded after all nodes at the current depth.", nb.ID, node)
		if !w.tr.Emit(w.b) {
			return false
		}
	}

	return true
}

func (w *walker) found() {
	path := step.Reconstruct(w.parent, w.source, w.target)
	w.b.SetVisited(w.order)
	w.b.SetPath(path)
	step.ChoosePath(w.b, w.g, path)
	w.b.SetLine(LineTarget)
	w.b.Explain("Target '%s' reached! The shortest path (by hop count) has %d edge(s): %s",
		w.target, len(path)-1, step.Arrow(path))
	w.b.SetOverlay(w.overlay())
	w.tr.Finish(w.b)
}

// discover marks id seen at depth d and appends it to the queue.
func (w *walker) discover(id, parent string, d int) {
	w.seen[id] = true
	w.order = append(w.order, id)
	w.depth[id] = d
	if parent != "" {
		w.parent[id] = parent
	}
	w.queue = append(w.queue, id)
}

// snapshot fills the fields shared by every in-loop step.
func (w *walker) snapshot(current string) {
	w.b.SetVisited(w.order)
	w.b.SetCurrent(current)
	w.b.SetFrontier(w.queue)
	w.b.SetOverlay(w.overlay())
}

func (w *walker) overlay() step.QueueOverlay {
	return step.QueueOverlay{Queue: append([]string{}, w.queue...)}
}
