package dijkstra_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanmayjayanthi2005-droid/Graph-Algorithm-Visualizer/core"
	"github.com/tanmayjayanthi2005-droid/Graph-Algorithm-Visualizer/dijkstra"
	"github.com/tanmayjayanthi2005-droid/Graph-Algorithm-Visualizer/step"
)

// detour builds a graph where the direct edge A–B (4) loses to A–C–B (3).
func detour(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range []struct {
		u, v string
		w    float64
	}{{"A", "B", 4}, {"A", "C", 1}, {"C", "B", 2}, {"B", "D", 1}, {"C", "D", 5}} {
		_, err := g.AddEdge(e.u, e.v, e.w)
		require.NoError(t, err)
	}

	return g
}

func lines(steps []step.Step) []int {
	out := make([]int, len(steps))
	for i, s := range steps {
		out[i] = s.PseudocodeLine
	}

	return out
}

func TestSteps_EventSequence(t *testing.T) {
	steps := step.Collect(dijkstra.Steps(detour(t), "A", "D"))
	assert.Equal(t, []int{2, 6, 10, 10, 6, 9, 10, 10, 6, 9, 9, 10, 7, 6, 8}, lines(steps))

	last := steps[len(steps)-1]
	require.True(t, last.Found())
	assert.Equal(t, []string{"A", "C", "B", "D"}, last.Path)
	assert.Equal(t, 4.0, last.Distances["D"])
	assert.Equal(t, 5, last.Metrics.EdgesRelaxed)
	assert.Equal(t, []string{"A", "C", "B", "D"}, last.Visited)
}

func TestSteps_PriorityOverlay(t *testing.T) {
	steps := step.Collect(dijkstra.Steps(detour(t), "A", "D"))

	init, ok := steps[0].Overlay.(step.PriorityOverlay)
	require.True(t, ok)
	assert.Equal(t, []step.Entry{{Node: "A", Priority: 0}}, init.Queue)
	assert.Equal(t, map[string]float64{"A": 0}, init.Distances)

	// after relaxing A→B and A→C the queue is ordered by tentative distance
	afterRelax := steps[3].Overlay.(step.PriorityOverlay)
	assert.Equal(t, []step.Entry{{Node: "C", Priority: 1}, {Node: "B", Priority: 4}}, afterRelax.Queue)
	assert.Equal(t, []string{"C", "B"}, steps[3].Frontier)
	assert.Equal(t, core.NodeFrontier, steps[3].NodeStates["C"])
}

func TestSteps_DistancesAreFiniteOnly(t *testing.T) {
	for _, s := range step.Collect(dijkstra.Steps(detour(t), "A", "D")) {
		for id, d := range s.Distances {
			assert.False(t, math.IsInf(d, 0), "step %d: %s", s.Number, id)
		}
	}
}

func TestSteps_Unreachable(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("C", "B", 1)

	steps := step.Collect(dijkstra.Steps(g, "A", "C"))
	last := steps[len(steps)-1]
	assert.True(t, last.Final)
	assert.False(t, last.Found())
	assert.Equal(t, dijkstra.LineNotFound, last.PseudocodeLine)
	assert.Equal(t, map[string]float64{"A": 0, "B": 1}, last.Distances)

	steps = step.Collect(dijkstra.Steps(g, "A", "missing"))
	require.Len(t, steps, 1)
	assert.Equal(t, dijkstra.LineNotFound, steps[0].PseudocodeLine)
}

func TestSteps_Options(t *testing.T) {
	g := detour(t)

	steps := step.Collect(dijkstra.Steps(g, "A", "D", dijkstra.WithInfEdgeThreshold(2)))
	assert.False(t, steps[len(steps)-1].Found(), "only the weight-1 edges A–C and B–D remain")

	steps = step.Collect(dijkstra.Steps(g, "A", "D", dijkstra.WithMaxDistance(3.5)))
	assert.False(t, steps[len(steps)-1].Found())

	steps = step.Collect(dijkstra.Steps(g, "A", "D", dijkstra.WithMaxDistance(4)))
	assert.True(t, steps[len(steps)-1].Found())

	assert.Panics(t, func() { dijkstra.WithMaxDistance(-1) })
	assert.Panics(t, func() { dijkstra.WithInfEdgeThreshold(0) })
}

func TestSteps_Replay(t *testing.T) {
	seq := dijkstra.Steps(detour(t), "A", "D")
	if diff := cmp.Diff(step.Collect(seq), step.Collect(seq)); diff != "" {
		t.Fatalf("replay differs:\n%s", diff)
	}
	assert.Len(t, dijkstra.Pseudocode(), 16)
}

func TestSteps_BlockedNodeOnOnlyPath(t *testing.T) {
	for _, directed := range []bool{false, true} {
		t.Run(fmt.Sprintf("directed=%v", directed), func(t *testing.T) {
			g := core.NewGraph(core.WithDirected(directed))
			_, _ = g.AddEdge("A", "B", 1)
			_, _ = g.AddEdge("B", "C", 1)
			_, _ = g.AddEdge("C", "D", 1)
			require.NoError(t, g.SetBlocked("B", true))

			steps := step.Collect(dijkstra.Steps(g, "A", "D"))
			last, ok := step.Last(steps)
			require.True(t, ok)
			assert.True(t, last.Final)
			assert.False(t, last.Found())
			assert.Equal(t, dijkstra.LineNotFound, last.PseudocodeLine)
			assert.Equal(t, map[string]float64{"A": 0}, last.Distances)
			for _, s := range steps {
				assert.NotEqual(t, "B", s.CurrentNode, "step %d expands the obstacle", s.Number)
			}
		})
	}
}

func TestSteps_BlockedTarget(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("S", "X", 1)
	_, _ = g.AddEdge("X", "T", 1)
	require.NoError(t, g.SetBlocked("T", true))

	steps := step.Collect(dijkstra.Steps(g, "S", "T"))
	require.Len(t, steps, 1)
	assert.True(t, steps[0].Final)
	assert.False(t, steps[0].Found())
	assert.Equal(t, dijkstra.LineNotFound, steps[0].PseudocodeLine)
	assert.Contains(t, steps[0].Explanation, "target 'T' is blocked")
}
