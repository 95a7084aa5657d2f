package registry

import (
	"iter"
	"sync"

	"github.com/tanmayjayanthi2005-droid/Graph-Algorithm-Visualizer/astar"
	"github.com/tanmayjayanthi2005-droid/Graph-Algorithm-Visualizer/bellmanford"
	"github.com/tanmayjayanthi2005-droid/Graph-Algorithm-Visualizer/bfs"
	"github.com/tanmayjayanthi2005-droid/Graph-Algorithm-Visualizer/bidirectional"
	"github.com/tanmayjayanthi2005-droid/Graph-Algorithm-Visualizer/dfs"
	"github.com/tanmayjayanthi2005-droid/Graph-Algorithm-Visualizer/dijkstra"
	"github.com/tanmayjayanthi2005-droid/Graph-Algorithm-Visualizer/floydwarshall"
	"github.com/tanmayjayanthi2005-droid/Graph-Algorithm-Visualizer/greedy"
	"github.com/tanmayjayanthi2005-droid/Graph-Algorithm-Visualizer/step"
)

// Built-in algorithm keys.
const (
	KeyBFS           = "bfs"
	KeyDFS           = "dfs"
	KeyDijkstra      = "dijkstra"
	KeyAStar         = "astar"
	KeyBidirectional = "bidirectional_bfs"
	KeyBellmanFord   = "bellman_ford"
	KeyFloydWarshall = "floyd_warshall"
	KeyGreedy        = "greedy_bfs"
)

// Tags used by the built-in entries.
const (
	TagUnweighted    = "unweighted"
	TagWeighted      = "weighted"
	TagShortestPath  = "shortest-path"
	TagTraversal     = "traversal"
	TagHeuristic     = "heuristic"
	TagBidirectional = "bidirectional"
	TagNegativeEdges = "negative-edges"
	TagAllPairs      = "all-pairs"
	TagSuboptimal    = "suboptimal"
)

// Default returns the process-wide registry of the eight built-in
// algorithms. The table is built on first use.
var Default = sync.OnceValue(func() *Registry {
	r, err := New(builtins()...)
	if err != nil {
		// the table below is static; a failure here is a programming error
		panic(err)
	}

	return r
})

func builtins() []AlgoInfo {
	return []AlgoInfo{
		{
			Key: KeyBFS, Label: "Breadth-First Search",
			New: func(q Request) iter.Seq[step.Step] {
				return bfs.Steps(q.Graph, q.Source, q.Target)
			},
			Pseudocode:     bfs.Pseudocode(),
			Tags:           []string{TagUnweighted, TagShortestPath, TagTraversal},
			TimeComplexity: "O(V + E)", SpaceComplexity: "O(V)",
			Description: "Explores layer-by-layer. Finds shortest path by hop count.",
		},
		{
			Key: KeyDFS, Label: "Depth-First Search",
			New: func(q Request) iter.Seq[step.Step] {
				return dfs.Steps(q.Graph, q.Source, q.Target)
			},
			Pseudocode:     dfs.Pseudocode(),
			Tags:           []string{TagUnweighted, TagTraversal},
			TimeComplexity: "O(V + E)", SpaceComplexity: "O(V)",
			Description: "Dives deep before backtracking. Does NOT guarantee shortest path.",
		},
		{
			Key: KeyDijkstra, Label: "Dijkstra's Algorithm",
			New: func(q Request) iter.Seq[step.Step] {
				return dijkstra.Steps(q.Graph, q.Source, q.Target)
			},
			Pseudocode:     dijkstra.Pseudocode(),
			Tags:           []string{TagWeighted, TagShortestPath},
			TimeComplexity: "O((V + E) log V)", SpaceComplexity: "O(V)",
			Description: "Greedily expands the closest node. Optimal for non-negative weights.",
		},
		{
			Key: KeyAStar, Label: "A* Search",
			New: func(q Request) iter.Seq[step.Step] {
				return astar.Steps(q.Graph, q.Source, q.Target, astar.WithHeuristic(q.Heuristic))
			},
			Pseudocode:     astar.Pseudocode(),
			Tags:           []string{TagWeighted, TagShortestPath, TagHeuristic},
			HasHeuristic:   true,
			TimeComplexity: "O((V + E) log V)", SpaceComplexity: "O(V)",
			Description: "Dijkstra + heuristic guidance. Optimal when h is admissible.",
		},
		{
			Key: KeyBidirectional, Label: "Bidirectional BFS",
			New: func(q Request) iter.Seq[step.Step] {
				return bidirectional.Steps(q.Graph, q.Source, q.Target)
			},
			Pseudocode:     bidirectional.Pseudocode(),
			Tags:           []string{TagUnweighted, TagShortestPath, TagBidirectional},
			TimeComplexity: "O(b^(d/2))", SpaceComplexity: "O(b^(d/2))",
			Description: "Two frontiers from source and target meet in the middle, exploring far fewer nodes.",
		},
		{
			Key: KeyBellmanFord, Label: "Bellman–Ford",
			New: func(q Request) iter.Seq[step.Step] {
				return bellmanford.Steps(q.Graph, q.Source, q.Target)
			},
			Pseudocode:       bellmanford.Pseudocode(),
			Tags:             []string{TagWeighted, TagShortestPath, TagNegativeEdges},
			SupportsNegative: true,
			TimeComplexity:   "O(V · E)", SpaceComplexity: "O(V)",
			Description: "Handles negative edges. Detects negative cycles. Slower than Dijkstra.",
		},
		{
			Key: KeyFloydWarshall, Label: "Floyd–Warshall",
			New: func(q Request) iter.Seq[step.Step] {
				return floydwarshall.Steps(q.Graph, q.Source, q.Target)
			},
			Pseudocode:       floydwarshall.Pseudocode(),
			Tags:             []string{TagWeighted, TagAllPairs, TagNegativeEdges},
			SupportsNegative: true,
			AllPairs:         true,
			TimeComplexity:   "O(V³)", SpaceComplexity: "O(V²)",
			Description: "All-pairs shortest paths via dynamic programming. Watch the matrix evolve.",
		},
		{
			Key: KeyGreedy, Label: "Greedy Best-First",
			New: func(q Request) iter.Seq[step.Step] {
				return greedy.Steps(q.Graph, q.Source, q.Target, greedy.WithHeuristic(q.Heuristic))
			},
			Pseudocode:     greedy.Pseudocode(),
			Tags:           []string{TagHeuristic, TagSuboptimal},
			HasHeuristic:   true,
			TimeComplexity: "O((V + E) log V)", SpaceComplexity: "O(V)",
			Description: "Pure heuristic: fast but NOT optimal. Compare with A* to see the difference.",
		},
	}
}
