// Package floydwarshall traces the Floyd–Warshall all-pairs shortest-path
// algorithm over a dense distance matrix with a parallel next-hop matrix.
//
// The k → i → j loop order is fixed and ties never update, so the trace is
// deterministic. Only cells that actually change become steps, plus one
// step at the start and end of every k round; an O(V³) scan therefore
// yields O(updates + V) steps.
//
// Nodes are indexed in sorted ID order. Edges touching a blocked node are
// left out of the initial matrix, so a blocked node keeps only its zero
// diagonal. Source and target are consulted only when the final path is
// extracted.
//
// Complexity: O(V³) time, O(V²) memory.
package floydwarshall

import (
	"iter"
	"math"
	"slices"
	"strconv"

	"github.com/tanmayjayanthi2005-droid/Graph-Algorithm-Visualizer/core"
	"github.com/tanmayjayanthi2005-droid/Graph-Algorithm-Visualizer/step"
)

const noHop = -1

type solver struct {
	g      *core.Graph
	source string
	target string

	tr *step.Trace
	b  *step.Builder

	nodes []string
	index map[string]int
	dist  [][]float64
	next  [][]int
	done  []string // completed intermediates
}

// Steps returns the traced all-pairs computation followed by the
// extraction of the source → target path.
func Steps(g *core.Graph, source, target string) iter.Seq[step.Step] {
	return func(yield func(step.Step) bool) {
		s := &solver{
			g:      g,
			source: source,
			target: target,
			tr:     step.NewTrace(yield),
			b:      step.NewBuilder(),
		}
		s.run()
	}
}

func (s *solver) run() {
	if s.g == nil {
		s.b.SetLine(LineExtract)
		s.b.Explain("Cannot start: there is no graph to search.")
		s.b.SetOverlay(step.MatrixOverlay{Nodes: []string{}, Dist: [][]float64{}})
		s.tr.Finish(s.b)
		return
	}

	s.init()
	n := len(s.nodes)
	s.frame("", nil)
	s.b.SetLine(LineInit)
	s.b.Explain("Floyd-Warshall: initialise %d×%d distance matrix from adjacency. Diagonal = 0, direct edges = weight, rest = ∞.", n, n)
	if !s.tr.Emit(s.b) {
		return
	}

	for k := 0; k < n; k++ {
		kid := s.nodes[k]
		s.b.SetCurrent(kid)
		s.frame(kid, nil)
		s.b.SetLine(LineRound)
		s.b.Explain("── k = %s ── Allow paths through '%s' as intermediate.", kid, kid)
		if !s.tr.Emit(s.b) {
			return
		}

		updates := 0
		for i := 0; i < n; i++ {
			ik := s.dist[i][k]
			if math.IsInf(ik, 1) {
				continue
			}
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				kj := s.dist[k][j]
				if math.IsInf(kj, 1) {
					continue
				}
				cand := ik + kj
				old := s.dist[i][j]
				if cand >= old {
					continue
				}
				s.dist[i][j] = cand
				s.next[i][j] = s.next[i][k]
				updates++
				if !s.emitUpdate(i, j, k, old) {
					return
				}
			}
		}

		s.done = append(s.done, kid)
		s.frame(kid, nil)
		s.b.SetLine(LineRound)
		s.b.Explain("Round k=%s complete: %d update(s).", kid, updates)
		if !s.tr.Emit(s.b) {
			return
		}
	}

	s.extract()
}

func (s *solver) emitUpdate(i, j, k int, old float64) bool {
	ni, nj, nk := s.nodes[i], s.nodes[j], s.nodes[k]
	if e, ok := s.g.EdgeBetween(ni, nk); ok {
		s.b.RelaxEdge(e.ID)
	}
	if e, ok := s.g.EdgeBetween(nk, nj); ok {
		s.b.RelaxEdge(e.ID)
	}
	s.b.MarkNode(ni, core.NodeFrontier)
	s.b.MarkNode(nj, core.NodeFrontier)
	s.b.SetCurrent(nk)
	s.frame(nk, &step.Cell{Row: ni, Col: nj})
	s.b.SetLine(LineUpdate)
	s.b.Explain("Update dist[%s][%s]: via %s: %g + %g = %g < %s",
		ni, nj, nk, s.dist[i][k], s.dist[k][j], s.dist[i][j], infText(old))

	return s.tr.Emit(s.b)
}

func (s *solver) extract() {
	s.frame("", nil)
	s.b.SetLine(LineExtract)

	if reason := step.CheckEndpoints(s.g, s.source, s.target); reason != "" {
		s.b.Explain("All pairs computed, but %s. '%s' not reachable.", reason, s.target)
		s.tr.Finish(s.b)
		return
	}
	si, ti := s.index[s.source], s.index[s.target]
	if math.IsInf(s.dist[si][ti], 1) {
		s.b.Explain("All pairs computed. '%s' not reachable from '%s'.", s.target, s.source)
		s.tr.Finish(s.b)
		return
	}
	path := s.path(si, ti)
	if path == nil {
		s.b.Explain("All pairs computed, but the next-hop chain from '%s' to '%s' is broken by a negative cycle.", s.source, s.target)
		s.tr.Finish(s.b)
		return
	}
	s.b.SetPath(path)
	step.ChoosePath(s.b, s.g, path)
	s.b.Explain("All-pairs done. Shortest %s→%s: %s, cost = %g.", s.source, s.target, step.Arrow(path), s.dist[si][ti])
	s.tr.Finish(s.b)
}

// init fills the distance and next-hop matrices from the edge list.
func (s *solver) init() {
	s.nodes = s.g.NodeIDs()
	n := len(s.nodes)
	s.index = make(map[string]int, n)
	for i, id := range s.nodes {
		s.index[id] = i
	}
	s.dist = make([][]float64, n)
	s.next = make([][]int, n)
	for i := range n {
		s.dist[i] = make([]float64, n)
		s.next[i] = make([]int, n)
		for j := range n {
			s.dist[i][j] = math.Inf(1)
			s.next[i][j] = noHop
		}
		s.dist[i][i] = 0
		s.next[i][i] = i
	}

	for _, e := range s.g.Edges() {
		u, okU := s.index[e.From]
		v, okV := s.index[e.To]
		if !okU || !okV || s.g.IsBlocked(e.From) || s.g.IsBlocked(e.To) {
			continue
		}
		s.offer(u, v, e.Weight)
		if !e.Directed {
			s.offer(v, u, e.Weight)
		}
	}
}

// offer keeps the lightest of parallel edges.
func (s *solver) offer(u, v int, w float64) {
	if w < s.dist[u][v] {
		s.dist[u][v] = w
		s.next[u][v] = v
	}
}

// path walks the next-hop matrix; it gives up after n hops.
func (s *solver) path(si, ti int) []string {
	if s.next[si][ti] == noHop {
		return nil
	}
	path := []string{s.nodes[si]}
	for cur := si; cur != ti; {
		cur = s.next[cur][ti]
		if cur == noHop || len(path) > len(s.nodes) {
			return nil
		}
		path = append(path, s.nodes[cur])
	}

	return path
}

// frame fills the fields every step shares: the visited list of completed
// intermediates, the source row as distances, and the matrix overlay.
func (s *solver) frame(k string, highlight *step.Cell) {
	s.b.SetVisited(s.done)
	if si, ok := s.index[s.source]; ok {
		row := make(map[string]float64, len(s.nodes))
		for j, id := range s.nodes {
			row[id] = s.dist[si][j]
		}
		s.b.SetDistances(row)
	}
	s.b.SetOverlay(step.MatrixOverlay{
		K:         k,
		Nodes:     slices.Clone(s.nodes),
		Dist:      s.snapshot(),
		Highlight: highlight,
	})
}

func (s *solver) snapshot() [][]float64 {
	out := make([][]float64, len(s.dist))
	for i, row := range s.dist {
		out[i] = slices.Clone(row)
	}

	return out
}

func infText(v float64) string {
	if math.IsInf(v, 1) {
		return "∞"
	}

	return strconv.FormatFloat(v, 'g', -1, 64)
}
