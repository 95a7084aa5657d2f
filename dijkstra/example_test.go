package dijkstra_test

import (
	"fmt"

	"github.com/tanmayjayanthi2005-droid/Graph-Algorithm-Visualizer/core"
	"github.com/tanmayjayanthi2005-droid/Graph-Algorithm-Visualizer/dijkstra"
	"github.com/tanmayjayanthi2005-droid/Graph-Algorithm-Visualizer/step"
)

// ExampleSteps prints only the distance updates and the final answer.
func ExampleSteps() {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 4)
	_, _ = g.AddEdge("A", "C", 1)
	_, _ = g.AddEdge("C", "B", 2)

	steps := step.Collect(dijkstra.Steps(g, "A", "B"))
	for _, s := range steps {
		if s.PseudocodeLine == dijkstra.LineRelax || s.Final {
			fmt.Println(s.Explanation)
		}
	}
	// Output:
	// Relax A→B: 0 + 4 = 4 < current +Inf → UPDATE!
	// Relax A→C: 0 + 1 = 1 < current +Inf → UPDATE!
	// Relax C→B: 1 + 2 = 3 < current 4 → UPDATE!
	// Target 'B' popped! Shortest distance = 3. Path: A → C → B
}
