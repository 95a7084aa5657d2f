package dfs

import (
	"iter"

	"github.com/tanmayjayanthi2005-droid/Graph-Algorithm-Visualizer/core"
	"github.com/tanmayjayanthi2005-droid/Graph-Algorithm-Visualizer/step"
)

// dfsWalker encapsulates state during one traced DFS.
type dfsWalker struct {
	g      *core.Graph
	opts   Options
	source string
	target string

	tr *step.Trace
	b  *step.Builder

	stack   []string
	order   []string // pop order of visited nodes
	visited map[string]bool
	parent  map[string]string
	depth   map[string]int
}

// Steps returns the traced iterative depth-first search from source to
// target. Nodes are marked visited when popped, so a node may sit on the
// stack several times; the push nearest the top decides its parent.
func Steps(g *core.Graph, source, target string, opts ...Option) iter.Seq[step.Step] {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return func(yield func(step.Step) bool) {
		w := &dfsWalker{
			g:       g,
			opts:    o,
			source:  source,
			target:  target,
			tr:      step.NewTrace(yield),
			b:       step.NewBuilder(),
			visited: make(map[string]bool),
			parent:  make(map[string]string),
			depth:   make(map[string]int),
		}
		w.run()
	}
}

func (w *dfsWalker) run() {
	if reason := step.CheckEndpoints(w.g, w.source, w.target); reason != "" {
		w.b.SetLine(LineNotFound)
		w.b.Explain("Cannot start: %s. Target '%s' is NOT reachable.", reason, w.target)
		w.b.SetOverlay(step.StackOverlay{Stack: []string{}})
		w.tr.Finish(w.b)
		return
	}

	w.stack = append(w.stack, w.source)
	w.b.SetCurrent(w.source)
	w.b.SetFrontier(w.stack)
	w.b.SetLine(LineInit)
	w.b.Explain("Initialise: push source '%s' onto the stack. DFS dives as deep as possible before backtracking.", w.source)
	w.b.SetOverlay(w.overlay())
	if !w.tr.Emit(w.b) {
		return
	}

	for len(w.stack) > 0 {
		node := w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]

		if w.visited[node] {
			w.b.SetVisited(w.order)
			w.b.SetFrontier(w.pending())
			w.b.SetLine(LineSkip)
			w.b.Explain("Pop '%s'; already visited, skip.", node)
			w.b.SetOverlay(w.overlay())
			if !w.tr.Emit(w.b) {
				return
			}
			continue
		}

		w.visited[node] = true
		w.order = append(w.order, node)
		w.b.SetCurrent(node)
		w.b.Visit(node)
		w.b.SetVisited(w.order)
		w.b.SetFrontier(w.pending())
		w.b.SetLine(LineVisit)
		w.b.Explain("Pop '%s' from stack and mark VISITED. DFS will now explore its neighbours before returning here.", node)
		w.b.SetOverlay(w.overlay())
		if !w.tr.Emit(w.b) {
			return
		}

		if node == w.target {
			w.found()
			return
		}
		if !w.explore(node) {
			return
		}
	}

	w.b.SetVisited(w.order)
	w.b.SetLine(LineNotFound)
	w.b.Explain("Stack empty. '%s' not reachable from '%s'.", w.target, w.source)
	w.b.SetOverlay(step.StackOverlay{Stack: []string{}})
	w.tr.Finish(w.b)
}

// explore examines each traversable neighbour of node and pushes the
// unvisited ones.
func (w *dfsWalker) explore(node string) bool {
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
		if w.visited[nb.ID] {
			w.b.IgnoreEdge(nb.Edge.ID)
			w.b.Explain("Edge %s→%s: '%s' already visited; ignore.", node, nb.ID, nb.ID)
			if !w.tr.Emit(w.b) {
				return false
			}
			continue
		}
		w.b.Explain("Edge %s→%s: '%s' unseen; push onto stack.", node, nb.ID, nb.ID)
		if !w.tr.Emit(w.b) {
			return false
		}

		w.parent[nb.ID] = node
		w.depth[nb.ID] = d
		w.stack = append(w.stack, nb.ID)
		w.snapshot(node)
		w.b.MarkNode(nb.ID, core.NodeFrontier)
		w.b.SetLine(LinePush)
		w.b.Explain("Push '%s' onto stack (parent = '%s').", nb.ID, node)
		if !w.tr.Emit(w.b) {
			return false
		}
	}

	return true
}

func (w *dfsWalker) found() {
	path := step.Reconstruct(w.parent, w.source, w.target)
	w.b.SetVisited(w.order)
	w.b.SetPath(path)
	step.ChoosePath(w.b, w.g, path)
	w.b.SetLine(LineTarget)
	w.b.Explain("Target '%s' found! Path: %s (%d edge(s)).", w.target, step.Arrow(path), len(path)-1)
	w.b.SetOverlay(w.overlay())
	w.tr.Finish(w.b)
}

func (w *dfsWalker) snapshot(current string) {
	w.b.SetVisited(w.order)
	w.b.SetCurrent(current)
	w.b.SetFrontier(w.pending())
	w.b.SetOverlay(w.overlay())
}

// pending lists unvisited stack entries top first, without duplicates.
func (w *dfsWalker) pending() []string {
	seen := make(map[string]bool, len(w.stack))
	out := make([]string, 0, len(w.stack))
	for i := len(w.stack) - 1; i >= 0; i-- {
		id := w.stack[i]
		if w.visited[id] || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}

	return out
}

func (w *dfsWalker) overlay() step.StackOverlay {
	return step.StackOverlay{Stack: append([]string{}, w.stack...)}
}
