// Package builder constructs graphs for the step generators to run on.
//
// Every topology is a Constructor: a closure that mutates a *core.Graph
// using a resolved, immutable configuration. BuildGraph creates the graph,
// resolves the BuilderOptions and applies the constructors in order, so
// several topologies can be composed into one fixture:
//
//	g, err := builder.BuildGraph(
//		[]core.GraphOption{core.WithDirected(false)},
//		[]builder.BuilderOption{builder.WithSeed(7), builder.WithWallProbability(0.25)},
//		builder.Grid(6, 8),
//	)
//
// Constructors:
//
//   - Grid(rows, cols): 4-connected grid with ids "r_c"; optional random walls
//     on interior cells turn it into a maze.
//   - RandomConnected(n, p): Erdős–Rényi edges plus a shuffled spanning
//     backbone, so every node is reachable.
//   - ScaleFree(n, m): preferential attachment seeded with a small clique.
//   - Path(n), Cycle(n): the simplest fixtures.
//   - AdjacencyList(text), AdjacencyMatrix(text): text import.
//
// Every node receives a layout position inside the configured Canvas; the
// informed searches read those positions through their heuristics.
//
// Determinism: for the same options, seed and constructor order the
// resulting graph (ids, positions, edge order, weights) is identical.
//
// Errors are sentinels (ErrTooFewVertices, ErrInvalidProbability,
// ErrNeedRandSource, ErrBadAdjacency, ...) wrapped with the constructor
// name; match them with errors.Is. Option constructors panic on
// meaningless input; constructors never panic.
package builder
