// Package core defines the graph model shared by every step generator:
// nodes with layout coordinates and an obstacle flag, edges that refer to
// their endpoints by ID, and an adjacency index that is kept in lock-step
// with the edge set.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors returned by Graph mutators and lookups.
var (
	// ErrEmptyNodeID indicates that an empty string was used as a node ID.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrNodeNotFound indicates that a referenced node does not exist.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates that a referenced edge does not exist.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrDuplicateEdge indicates that an explicit edge ID is already in use.
	ErrDuplicateEdge = errors.New("core: duplicate edge ID")

	// ErrBadFormat indicates malformed serialized graph input.
	ErrBadFormat = errors.New("core: malformed graph document")
)

// Meta keys conventionally written by callers that mirror algorithm state
// back onto nodes between runs. ResetAlgoState clears all of them.
const (
	MetaDist   = "dist"
	MetaParent = "parent"
	MetaG      = "g"
	MetaH      = "h"
	MetaF      = "f"
	MetaOrder  = "order"
)

// Node is a vertex with a display label, a 2-D position used for layout and
// distance heuristics, an obstacle flag, and free-form per-run metadata.
type Node struct {
	ID      string
	Label   string
	X, Y    float64
	Blocked bool
	Meta    map[string]any
}

// ResetAlgoState clears per-run metadata; Blocked survives.
func (n *Node) ResetAlgoState() {
	n.Meta = make(map[string]any)
}

// Reset clears per-run metadata and the obstacle flag.
func (n *Node) Reset() {
	n.ResetAlgoState()
	n.Blocked = false
}

// Edge connects two nodes by ID. Directed is copied from the graph default
// at creation so a serialized edge is self-describing. State is transient
// visual state owned by the presentation layer.
type Edge struct {
	ID       string
	From     string
	To       string
	Weight   float64
	Directed bool
	State    EdgeState

	seq uint64 // creation order
}

// Other returns the endpoint reached by traversing e from id, honouring
// direction. The boolean is false when e cannot be traversed from id.
func (e *Edge) Other(id string) (string, bool) {
	switch {
	case id == e.From:
		return e.To, true
	case id == e.To && !e.Directed:
		return e.From, true
	default:
		return "", false
	}
}

// Connects reports whether e links a to b (direction-aware).
func (e *Edge) Connects(a, b string) bool {
	if e.Directed {
		return e.From == a && e.To == b
	}

	return (e.From == a && e.To == b) || (e.From == b && e.To == a)
}

// Neighbor is one traversable adjacency entry: the node reached and the edge used.
type Neighbor struct {
	ID   string
	Edge *Edge
}

// adjacency is the stored form of a Neighbor (IDs only, no pointers).
type adjacency struct {
	neighbor string
	edgeID   string
}

// GraphOption configures a Graph at construction.
type GraphOption func(g *Graph)

// WithDirected sets whether new edges are directed by default.
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithWeighted declares whether weights are meaningful. It is advisory:
// algorithms always read Edge.Weight.
func WithWeighted(weighted bool) GraphOption {
	return func(g *Graph) { g.weighted = weighted }
}

// EdgeOption customizes a single AddEdge call.
type EdgeOption func(*Edge)

// WithEdgeDirected overrides the graph default direction for one edge.
func WithEdgeDirected(directed bool) EdgeOption {
	return func(e *Edge) { e.Directed = directed }
}

// WithEdgeID assigns an explicit edge ID instead of the generated "eN".
func WithEdgeID(id string) EdgeOption {
	return func(e *Edge) { e.ID = id }
}

// Graph owns nodes and edges and maintains the adjacency index
// nodeID -> [(neighbor, edgeID)] in insertion order.
//
// Locks are always acquired muNodes before muEdgeAdj.
type Graph struct {
	muNodes   sync.RWMutex // guards nodes
	muEdgeAdj sync.RWMutex // guards edges, adjacency, nextEdgeID

	directed bool
	weighted bool

	nextEdgeID uint64
	nodes      map[string]*Node
	edges      map[string]*Edge
	adj        map[string][]adjacency
}

// NewGraph returns an empty undirected, weighted graph customized by opts.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		weighted: true,
		nodes:    make(map[string]*Node),
		edges:    make(map[string]*Edge),
		adj:      make(map[string][]adjacency),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Directed reports the default edge direction.
func (g *Graph) Directed() bool { return g.directed }

// Weighted reports whether weights are declared meaningful.
func (g *Graph) Weighted() bool { return g.weighted }
