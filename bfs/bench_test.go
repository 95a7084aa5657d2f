package bfs_test

import (
	"fmt"
	"testing"

	"github.com/tanmayjayanthi2005-droid/Graph-Algorithm-Visualizer/bfs"
	"github.com/tanmayjayanthi2005-droid/Graph-Algorithm-Visualizer/core"
)

// BenchmarkSteps_Chain measures a full trace over a chain of N nodes.
func BenchmarkSteps_Chain(b *testing.B) {
	const N = 500
	g := core.NewGraph()
	for i := 0; i < N; i++ {
		_, _ = g.AddEdge(fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", i+1), 1)
	}
	target := fmt.Sprintf("v%d", N)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for range bfs.Steps(g, "v0", target) {
		}
	}
}
