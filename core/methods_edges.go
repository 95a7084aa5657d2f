// File: methods_edges.go
// Role: edge lifecycle and edge queries.
// Determinism:
//   - Generated IDs are "e1", "e2", ... in creation order.
//   - Edges() returns edges in creation order.
// Invariant:
//   - Every mutation rewrites the adjacency entries of both endpoints under
//     the same write lock, so adjacency always mirrors the edge set.

package core

import (
	"fmt"
	"sort"
	"strconv"
)

const edgeIDPrefix = "e"

// AddEdge connects from and to with weight w and returns the edge ID.
// Missing endpoints are created on the fly (label = ID, position origin).
// The edge inherits the graph's default direction unless overridden.
//
// Errors:
//   - ErrEmptyNodeID if either endpoint is "".
//   - ErrDuplicateEdge if WithEdgeID names an existing edge.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, w float64, opts ...EdgeOption) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyNodeID
	}

	g.muNodes.Lock()
	defer g.muNodes.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	e := &Edge{From: from, To: to, Weight: w, Directed: g.directed, State: EdgeDefault}
	for _, opt := range opts {
		opt(e)
	}

	g.nextEdgeID++
	seq := g.nextEdgeID
	if e.ID == "" {
		e.ID = edgeIDPrefix + strconv.FormatUint(seq, 10)
		// An imported "eN" may already occupy the generated slot.
		for g.edges[e.ID] != nil {
			g.nextEdgeID++
			seq = g.nextEdgeID
			e.ID = edgeIDPrefix + strconv.FormatUint(seq, 10)
		}
	} else if _, dup := g.edges[e.ID]; dup {
		return "", fmt.Errorf("AddEdge(%s): %w", e.ID, ErrDuplicateEdge)
	}
	e.seq = seq

	g.ensureNode(from)
	g.ensureNode(to)
	g.edges[e.ID] = e
	g.adj[from] = append(g.adj[from], adjacency{neighbor: to, edgeID: e.ID})
	if !e.Directed && from != to {
		g.adj[to] = append(g.adj[to], adjacency{neighbor: from, edgeID: e.ID})
	}

	return e.ID, nil
}

// RemoveEdge deletes the edge id and its adjacency entries.
func (g *Graph) RemoveEdge(id string) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	e, ok := g.edges[id]
	if !ok {
		return fmt.Errorf("RemoveEdge(%s): %w", id, ErrEdgeNotFound)
	}
	g.unlinkEdge(e)
	delete(g.edges, id)

	return nil
}

// unlinkEdge drops e from both endpoints' adjacency. Caller holds muEdgeAdj.
func (g *Graph) unlinkEdge(e *Edge) {
	g.adj[e.From] = dropEdge(g.adj[e.From], e.ID)
	if !e.Directed {
		g.adj[e.To] = dropEdge(g.adj[e.To], e.ID)
	}
}

func dropEdge(list []adjacency, edgeID string) []adjacency {
	out := list[:0]
	for _, a := range list {
		if a.edgeID != edgeID {
			out = append(out, a)
		}
	}

	return out
}

// Edge returns the live edge for id.
func (g *Graph) Edge(id string) (*Edge, bool) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	e, ok := g.edges[id]

	return e, ok
}

// Edges returns all edges in creation order.
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].seq < out[j].seq })

	return out
}

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}
