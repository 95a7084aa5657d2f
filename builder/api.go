package builder

import (
	"fmt"

	"github.com/tanmayjayanthi2005-droid/Graph-Algorithm-Visualizer/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate their parameters before touching g
// and return sentinel errors; they never panic.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with "BuildGraph: %w" and returned
// immediately; the partially built graph is discarded.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Apply runs cons against an existing graph, e.g. to add a topology next
// to nodes the caller already placed.
func Apply(g *core.Graph, bopts []BuilderOption, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("Apply: nil graph: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("Apply: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return fmt.Errorf("Apply: %w", err)
		}
	}

	return nil
}

// ParseAdjacencyList builds a graph from adjacency-list text with the
// default canvas. See AdjacencyList for the accepted syntax.
func ParseAdjacencyList(text string, gopts ...core.GraphOption) (*core.Graph, error) {
	return BuildGraph(gopts, nil, AdjacencyList(text))
}

// ParseAdjacencyMatrix builds a graph from adjacency-matrix text with the
// default canvas. See AdjacencyMatrix for the accepted syntax.
func ParseAdjacencyMatrix(text string, gopts ...core.GraphOption) (*core.Graph, error) {
	return BuildGraph(gopts, nil, AdjacencyMatrix(text))
}
