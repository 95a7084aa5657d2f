// File: methods_clone.go
// Role: cloning and between-run maintenance.

package core

import "maps"

// Clone returns a deep copy: flags, nodes (including Meta), edges and
// adjacency order. The edge ID counter is carried so new edges on the clone
// never collide with copied ones.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	c := NewGraph(WithDirected(g.directed), WithWeighted(g.weighted))
	c.nextEdgeID = g.nextEdgeID
	for id, n := range g.nodes {
		cp := *n
		cp.Meta = maps.Clone(n.Meta)
		if cp.Meta == nil {
			cp.Meta = make(map[string]any)
		}
		c.nodes[id] = &cp
	}
	for id, e := range g.edges {
		cp := *e
		c.edges[id] = &cp
	}
	for id, list := range g.adj {
		c.adj[id] = append([]adjacency(nil), list...)
	}

	return c
}

// ResetAlgoState clears node metadata and edge visual state between runs.
// Topology and obstacles are preserved.
func (g *Graph) ResetAlgoState() {
	g.muNodes.Lock()
	defer g.muNodes.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	for _, n := range g.nodes {
		n.ResetAlgoState()
	}
	for _, e := range g.edges {
		e.State = EdgeDefault
	}
}

// Reset is ResetAlgoState plus clearing every obstacle.
func (g *Graph) Reset() {
	g.ResetAlgoState()

	g.muNodes.Lock()
	defer g.muNodes.Unlock()
	for _, n := range g.nodes {
		n.Blocked = false
	}
}

// Clear drops every node and edge; flags are preserved and edge IDs restart at "e1".
func (g *Graph) Clear() {
	g.muNodes.Lock()
	defer g.muNodes.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	g.nodes = make(map[string]*Node)
	g.edges = make(map[string]*Edge)
	g.adj = make(map[string][]adjacency)
	g.nextEdgeID = 0
}
