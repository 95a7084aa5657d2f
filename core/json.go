package core

import (
	"encoding/json"
	"fmt"
)

// graphDoc is the self-describing wire form of a Graph.
type graphDoc struct {
	Directed bool      `json:"directed"`
	Weighted bool      `json:"weighted"`
	Nodes    []nodeDoc `json:"nodes"`
	Edges    []edgeDoc `json:"edges"`
}

type nodeDoc struct {
	ID      string  `json:"id"`
	Label   string  `json:"label,omitempty"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Blocked bool    `json:"blocked,omitempty"`
}

type edgeDoc struct {
	ID       string  `json:"id"`
	Source   string  `json:"source"`
	Target   string  `json:"target"`
	Weight   float64 `json:"weight"`
	Directed bool    `json:"directed"`
}

// MarshalJSON encodes topology, layout and obstacles. Per-run metadata and
// visual state are not part of the document.
func (g *Graph) MarshalJSON() ([]byte, error) {
	doc := graphDoc{Directed: g.directed, Weighted: g.weighted}
	for _, n := range g.Nodes() {
		doc.Nodes = append(doc.Nodes, nodeDoc{ID: n.ID, Label: n.Label, X: n.X, Y: n.Y, Blocked: n.Blocked})
	}
	for _, e := range g.Edges() {
		doc.Edges = append(doc.Edges, edgeDoc{ID: e.ID, Source: e.From, Target: e.To, Weight: e.Weight, Directed: e.Directed})
	}

	return json.Marshal(doc)
}

// UnmarshalJSON replaces g's contents with the decoded document. Edges that
// reference undeclared nodes are dropped.
func (g *Graph) UnmarshalJSON(data []byte) error {
	var doc graphDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%w: %v", ErrBadFormat, err)
	}

	fresh := NewGraph(WithDirected(doc.Directed), WithWeighted(doc.Weighted))
	for _, nd := range doc.Nodes {
		if err := fresh.AddNode(Node{ID: nd.ID, Label: nd.Label, X: nd.X, Y: nd.Y, Blocked: nd.Blocked}); err != nil {
			return fmt.Errorf("%w: node %q: %v", ErrBadFormat, nd.ID, err)
		}
	}
	for _, ed := range doc.Edges {
		if !fresh.HasNode(ed.Source) || !fresh.HasNode(ed.Target) {
			continue
		}
		if _, err := fresh.AddEdge(ed.Source, ed.Target, ed.Weight,
			WithEdgeID(ed.ID), WithEdgeDirected(ed.Directed)); err != nil {
			return fmt.Errorf("%w: edge %q: %v", ErrBadFormat, ed.ID, err)
		}
	}

	g.muNodes.Lock()
	defer g.muNodes.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	g.directed, g.weighted = fresh.directed, fresh.weighted
	g.nodes, g.edges, g.adj = fresh.nodes, fresh.edges, fresh.adj
	g.nextEdgeID = fresh.nextEdgeID

	return nil
}
