// File: methods_nodes.go
// Role: node lifecycle (add, create, remove) and node queries.
// Determinism:
//   - Nodes() and NodeIDs() are sorted by ID asc.
// Concurrency:
//   - Mutators take muNodes then muEdgeAdj write locks; readers take read locks.

package core

import (
	"fmt"
	"sort"
)

// AddNode inserts n, or replaces the attributes of an existing node with the
// same ID while keeping its adjacency. The graph stores a copy.
//
// Errors: ErrEmptyNodeID if n.ID == "".
// Complexity: O(1) amortized.
func (g *Graph) AddNode(n Node) error {
	if n.ID == "" {
		return ErrEmptyNodeID
	}
	if n.Label == "" {
		n.Label = n.ID
	}
	if n.Meta == nil {
		n.Meta = make(map[string]any)
	}

	g.muNodes.Lock()
	defer g.muNodes.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	stored := n
	g.nodes[n.ID] = &stored
	if _, ok := g.adj[n.ID]; !ok {
		g.adj[n.ID] = nil
	}

	return nil
}

// CreateNode is a convenience wrapper adding a node at (x, y) labelled by id.
func (g *Graph) CreateNode(id string, x, y float64) error {
	return g.AddNode(Node{ID: id, Label: id, X: x, Y: y})
}

// ensureNode adds a bare node if id is unknown. Caller holds both write locks.
func (g *Graph) ensureNode(id string) {
	if _, ok := g.nodes[id]; ok {
		return
	}
	g.nodes[id] = &Node{ID: id, Label: id, Meta: make(map[string]any)}
	g.adj[id] = nil
}

// HasNode reports whether id exists.
func (g *Graph) HasNode(id string) bool {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()
	_, ok := g.nodes[id]

	return ok
}

// Node returns the live node for id. Treat it as read-only while a run is
// in progress.
func (g *Graph) Node(id string) (*Node, bool) {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()
	n, ok := g.nodes[id]

	return n, ok
}

// Nodes returns all nodes sorted by ID.
func (g *Graph) Nodes() []*Node {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()

	out := make([]*Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// NodeIDs returns all node IDs sorted ascending.
func (g *Graph) NodeIDs() []string {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()

	ids := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// NodeCount returns |V|.
func (g *Graph) NodeCount() int {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()

	return len(g.nodes)
}

// RemoveNode deletes id and every edge touching it. Removing an unknown
// node returns ErrNodeNotFound.
//
// Complexity: O(E) to find incident edges, plus O(deg) per adjacency rewrite.
func (g *Graph) RemoveNode(id string) error {
	if id == "" {
		return ErrEmptyNodeID
	}

	g.muNodes.Lock()
	defer g.muNodes.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, ok := g.nodes[id]; !ok {
		return fmt.Errorf("RemoveNode(%s): %w", id, ErrNodeNotFound)
	}

	// Edges are dropped first so neighbouring adjacency lists stay exact.
	for eid, e := range g.edges {
		if e.From == id || e.To == id {
			g.unlinkEdge(e)
			delete(g.edges, eid)
		}
	}
	delete(g.adj, id)
	delete(g.nodes, id)

	return nil
}

// SetBlocked sets the obstacle flag of id.
func (g *Graph) SetBlocked(id string, blocked bool) error {
	g.muNodes.Lock()
	defer g.muNodes.Unlock()

	n, ok := g.nodes[id]
	if !ok {
		return fmt.Errorf("SetBlocked(%s): %w", id, ErrNodeNotFound)
	}
	n.Blocked = blocked

	return nil
}

// ToggleBlocked flips the obstacle flag of id and returns the new value.
func (g *Graph) ToggleBlocked(id string) (bool, error) {
	g.muNodes.Lock()
	defer g.muNodes.Unlock()

	n, ok := g.nodes[id]
	if !ok {
		return false, fmt.Errorf("ToggleBlocked(%s): %w", id, ErrNodeNotFound)
	}
	n.Blocked = !n.Blocked

	return n.Blocked, nil
}

// IsBlocked reports whether id exists and is an obstacle.
func (g *Graph) IsBlocked(id string) bool {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()
	n, ok := g.nodes[id]

	return ok && n.Blocked
}
