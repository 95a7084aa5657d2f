// Package core provides the in-memory graph every step generator reads.
//
// The Graph G = (V, E) stores:
//
//   - Nodes keyed by ID, each with a label, an (X, Y) layout position that
//     doubles as input to distance heuristics, a Blocked obstacle flag, and a
//     free-form Meta map for per-run annotations.
//   - Edges keyed by ID ("e1", "e2", ... unless given explicitly). Edges refer
//     to endpoints by ID only, never by pointer, which keeps them trivially
//     serializable. Weights are float64 and may be negative.
//   - An adjacency index nodeID -> [(neighbor, edgeID)] in insertion order.
//     Undirected edges appear in both endpoints' lists.
//
// Graph-level flags:
//
//	– WithDirected(bool)  default direction copied onto each new edge;
//	                      WithEdgeDirected overrides per edge.
//	– WithWeighted(bool)  advisory; generators always read Edge.Weight.
//
// Core methods:
//
//	AddNode(Node) error                       // O(1)
//	CreateNode(id, x, y) error                // O(1)
//	RemoveNode(id) error                      // O(E), drops incident edges
//	AddEdge(from, to, w, opts...) (id, error) // O(1), creates missing endpoints
//	RemoveEdge(id) error                      // O(deg)
//	Neighbors(id) []Neighbor                  // O(deg), adjacency order
//	EdgeBetween(a, b) (*Edge, bool)           // O(deg), first match, direction-aware
//	Nodes(), NodeIDs(), Edges()               // sorted / creation order
//	Clone(), ResetAlgoState(), Reset(), Clear()
//	MarshalJSON / UnmarshalJSON               // {directed, weighted, nodes, edges}
//
// Invariant: after every mutation the adjacency index reflects exactly the
// current edge set. Both endpoints are rewritten under one write lock.
//
// Concurrency: all methods are safe for concurrent use. Generators treat the
// graph as read-only for the duration of a run; topology edits belong
// between runs.
package core
