package step_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanmayjayanthi2005-droid/Graph-Algorithm-Visualizer/core"
	"github.com/tanmayjayanthi2005-droid/Graph-Algorithm-Visualizer/step"
)

func TestBuilder_BuildCopiesContainers(t *testing.T) {
	b := step.NewBuilder()
	frontier := []string{"B", "C"}
	b.SetCurrent("A")
	b.Visit("A")
	b.Visit("A")
	b.SetFrontier(frontier)
	b.SetDistances(map[string]float64{"A": 0, "B": 1, "Z": math.Inf(1)})
	b.SetLine(5)
	b.Explain("Dequeue %s", "A")

	s := b.Build(3, step.Metrics{}, false)
	frontier[0] = "X"
	b.MarkNode("A", core.NodeBlocked)

	assert.Equal(t, 3, s.Number)
	assert.Equal(t, "A", s.CurrentNode)
	assert.Equal(t, []string{"A"}, s.Visited)
	assert.Equal(t, []string{"B", "C"}, s.Frontier)
	assert.Equal(t, core.NodeVisited, s.NodeStates["A"], "Visit overrides current")
	assert.Equal(t, core.NodeFrontier, s.NodeStates["B"])
	assert.Equal(t, map[string]float64{"A": 0, "B": 1}, s.Distances, "infinite entries dropped")
	assert.Equal(t, "Dequeue A", s.Explanation)
	assert.NotNil(t, s.Path)
}

func TestTrace_RunningTallies(t *testing.T) {
	var got []step.Step
	tr := step.NewTrace(func(s step.Step) bool {
		got = append(got, s)
		return true
	})
	b := step.NewBuilder()

	b.RelaxEdge("e1")
	b.RelaxEdge("e2")
	b.IgnoreEdge("e2")
	b.Visit("A")
	require.True(t, tr.Emit(b))

	b.RelaxEdge("e3")
	b.SetVisited([]string{"A", "B"})
	require.True(t, tr.Emit(b))

	b.SetPath([]string{"A", "B", "C"})
	b.SetVisited([]string{"A", "B", "C"})
	require.True(t, tr.Finish(b))

	require.Len(t, got, 3)
	assert.Equal(t, []int{0, 1, 2}, []int{got[0].Number, got[1].Number, got[2].Number})
	assert.Equal(t, 2, got[0].Metrics.EdgesRelaxed)
	assert.Equal(t, core.EdgeIgnored, got[0].EdgeStates["e2"])
	assert.Equal(t, 3, got[1].Metrics.EdgesRelaxed, "tally carries forward")
	assert.Equal(t, 2, got[1].Metrics.NodesVisited)
	assert.Empty(t, got[1].EdgeStates, "builder was reset between steps")
	assert.Equal(t, 2, got[2].Metrics.PathLength)
	assert.True(t, got[2].Found())
	assert.Equal(t, 3, tr.Count())
}

func TestTrace_StopsWhenConsumerStops(t *testing.T) {
	calls := 0
	tr := step.NewTrace(func(step.Step) bool {
		calls++
		return false
	})
	b := step.NewBuilder()
	assert.False(t, tr.Emit(b))
	assert.False(t, tr.Emit(b))
	assert.Equal(t, 1, calls)
}

func countTo(n int) func(func(step.Step) bool) {
	return func(yield func(step.Step) bool) {
		tr := step.NewTrace(yield)
		b := step.NewBuilder()
		for i := 0; i < n; i++ {
			b.Visit(string(rune('A' + i)))
			if i == n-1 {
				tr.Finish(b)
				return
			}
			if !tr.Emit(b) {
				return
			}
		}
	}
}

func TestPull_NextAndStop(t *testing.T) {
	gen := step.Pull(countTo(4))
	s, ok := gen.Next()
	require.True(t, ok)
	assert.Equal(t, 0, s.Number)
	s, ok = gen.Next()
	require.True(t, ok)
	assert.Equal(t, 1, s.Number)

	gen.Stop()
	gen.Stop()
	_, ok = gen.Next()
	assert.False(t, ok)
}

func TestFromSteps_Replays(t *testing.T) {
	steps := step.Collect(countTo(3))
	require.Len(t, steps, 3)
	assert.True(t, steps[2].Final)

	gen := step.FromSteps(steps)
	n := 0
	for _, ok := gen.Next(); ok; _, ok = gen.Next() {
		n++
	}
	assert.Equal(t, 3, n)

	last, ok := step.Last(steps)
	require.True(t, ok)
	assert.Equal(t, 2, last.Number)
	_, ok = step.Last(nil)
	assert.False(t, ok)
}

func TestStepJSON_OverlayEnvelope(t *testing.T) {
	overlays := []step.Overlay{
		step.QueueOverlay{Queue: []string{"B", "C"}},
		step.PriorityOverlay{Queue: []step.Entry{{Node: "B", Priority: 2}}, Distances: map[string]float64{"A": 0}},
		step.StackOverlay{Stack: []string{"C"}},
		step.ScoreOverlay{Heuristic: "manhattan", Open: []step.Entry{{Node: "B", Priority: 3}},
			Scores: []step.Score{{Node: "B", G: 1, H: 2, F: 3}}},
		step.BidirectionalOverlay{Forward: []string{"B"}, Backward: []string{"Y"}},
		step.RoundOverlay{Round: 2, Distances: map[string]float64{"A": 0}, NegativeCycle: true},
	}
	for _, o := range overlays {
		t.Run(string(o.Kind()), func(t *testing.T) {
			b := step.NewBuilder()
			b.SetOverlay(o)
			s := b.Build(0, step.Metrics{}, false)

			data, err := json.Marshal(s)
			require.NoError(t, err)
			assert.Contains(t, string(data), `"kind":"`+string(o.Kind())+`"`)

			var back step.Step
			require.NoError(t, json.Unmarshal(data, &back))
			assert.Equal(t, o, back.Overlay)
		})
	}
}

func TestStepJSON_NoOverlay(t *testing.T) {
	data, err := json.Marshal(step.NewBuilder().Build(0, step.Metrics{}, true))
	require.NoError(t, err)
	assert.NotContains(t, string(data), `"overlay"`)

	var back step.Step
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Nil(t, back.Overlay)
	assert.True(t, back.Final)
}

func TestStepJSON_UnknownOverlay(t *testing.T) {
	var s step.Step
	err := json.Unmarshal([]byte(`{"step_number":1,"overlay":{"kind":"hologram","data":{}}}`), &s)
	assert.ErrorIs(t, err, step.ErrUnknownOverlay)
}

func TestMatrixOverlay_InfinityAsNull(t *testing.T) {
	inf := math.Inf(1)
	m := step.MatrixOverlay{
		K:         "B",
		Nodes:     []string{"A", "B"},
		Dist:      [][]float64{{0, 3}, {inf, 0}},
		Highlight: &step.Cell{Row: "A", Col: "B"},
	}
	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `{"k":"B","nodes":["A","B"],"dist":[[0,3],[null,0]],"highlight":{"row":"A","col":"B"}}`, string(data))

	var back step.MatrixOverlay
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, math.IsInf(back.Dist[1][0], 1))
	v, ok := back.At("A", "B")
	assert.True(t, ok)
	assert.Equal(t, 3.0, v)
	_, ok = back.At("A", "Q")
	assert.False(t, ok)
}

func TestStep_NegativeCycle(t *testing.T) {
	s := step.Step{Overlay: step.RoundOverlay{NegativeCycle: true}}
	assert.True(t, s.NegativeCycle())
	assert.False(t, step.Step{Overlay: step.QueueOverlay{}}.NegativeCycle())
	assert.False(t, step.Step{}.NegativeCycle())
}

func TestReconstruct(t *testing.T) {
	parent := map[string]string{"B": "A", "C": "B", "D": "A"}
	assert.Equal(t, []string{"A", "B", "C"}, step.Reconstruct(parent, "A", "C"))
	assert.Equal(t, []string{"A"}, step.Reconstruct(parent, "A", "A"))
	assert.Nil(t, step.Reconstruct(parent, "A", "Z"))

	loop := map[string]string{"X": "Y", "Y": "X"}
	assert.Nil(t, step.Reconstruct(loop, "A", "X"))
	assert.Equal(t, "A → B → C", step.Arrow([]string{"A", "B", "C"}))
}

func TestCheckEndpoints(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 1)
	assert.Empty(t, step.CheckEndpoints(g, "A", "B"))
	assert.NotEmpty(t, step.CheckEndpoints(nil, "A", "B"))
	assert.Contains(t, step.CheckEndpoints(g, "Q", "B"), "source")
	assert.Contains(t, step.CheckEndpoints(g, "A", "Q"), "target")
	require.NoError(t, g.SetBlocked("A", true))
	assert.Contains(t, step.CheckEndpoints(g, "A", "B"), "source 'A' is blocked")

	require.NoError(t, g.SetBlocked("A", false))
	require.NoError(t, g.SetBlocked("B", true))
	assert.Equal(t, "target 'B' is blocked", step.CheckEndpoints(g, "A", "B"))
}
