package builder_test

import (
	"fmt"

	"github.com/tanmayjayanthi2005-droid/Graph-Algorithm-Visualizer/builder"
)

func ExampleParseAdjacencyList() {
	g, err := builder.ParseAdjacencyList(`
A: B(4) C(1)
C: B(2)
B -> D`)
	if err != nil {
		panic(err)
	}
	cost, _ := g.PathCost([]string{"A", "C", "B", "D"})
	fmt.Println(g.NodeIDs(), g.EdgeCount(), cost)
	// Output:
	// [A B C D] 4 4
}

func ExampleGrid() {
	g, err := builder.BuildGraph(nil, nil, builder.Grid(2, 3))
	if err != nil {
		panic(err)
	}
	fmt.Println(g.NodeIDs(), g.EdgeCount())
	// Output:
	// [0_0 0_1 0_2 1_0 1_1 1_2] 7
}
