// File: methods_adjacent.go
// Role: neighbourhood queries used by every generator.
// Determinism:
//   - Neighbors() follows adjacency insertion order, which is edge creation
//     order per endpoint. Generators inherit their sibling order from here.

package core

// Neighbors returns every (neighbor, edge) pair traversable from id, in
// adjacency order. Entries whose edge vanished are skipped rather than
// reported, so a slightly inconsistent graph degrades instead of failing.
// An unknown id yields nil.
//
// Complexity: O(deg(id)).
func (g *Graph) Neighbors(id string) []Neighbor {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	list := g.adj[id]
	if len(list) == 0 {
		return nil
	}
	out := make([]Neighbor, 0, len(list))
	for _, a := range list {
		e, ok := g.edges[a.edgeID]
		if !ok {
			continue
		}
		out = append(out, Neighbor{ID: a.neighbor, Edge: e})
	}

	return out
}

// EdgeBetween returns the first edge in a's adjacency that leads to b.
// Direction is honoured: for a directed edge only a == From matches.
func (g *Graph) EdgeBetween(a, b string) (*Edge, bool) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	for _, adj := range g.adj[a] {
		if adj.neighbor != b {
			continue
		}
		if e, ok := g.edges[adj.edgeID]; ok {
			return e, true
		}
	}

	return nil, false
}

// Degree returns the number of adjacency entries of id (out-degree for
// directed edges, incident count for undirected ones).
func (g *Graph) Degree(id string) int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adj[id])
}

// AdjacencyList returns a copy of the index as nodeID -> neighbor IDs.
func (g *Graph) AdjacencyList() map[string][]string {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make(map[string][]string, len(g.adj))
	for id, list := range g.adj {
		ids := make([]string, len(list))
		for i, a := range list {
			ids[i] = a.neighbor
		}
		out[id] = ids
	}

	return out
}

// PathCost sums edge weights along path using EdgeBetween for each hop.
// The boolean is false if some hop has no connecting edge.
func (g *Graph) PathCost(path []string) (float64, bool) {
	var total float64
	ok := true
	for i := 0; i+1 < len(path); i++ {
		e, found := g.EdgeBetween(path[i], path[i+1])
		if !found {
			ok = false
			continue
		}
		total += e.Weight
	}

	return total, ok
}
