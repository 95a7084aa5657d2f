package recorder_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanmayjayanthi2005-droid/Graph-Algorithm-Visualizer/core"
	"github.com/tanmayjayanthi2005-droid/Graph-Algorithm-Visualizer/emit"
	"github.com/tanmayjayanthi2005-droid/Graph-Algorithm-Visualizer/recorder"
	"github.com/tanmayjayanthi2005-droid/Graph-Algorithm-Visualizer/registry"
	"github.com/tanmayjayanthi2005-droid/Graph-Algorithm-Visualizer/stepper"
	"github.com/tanmayjayanthi2005-droid/Graph-Algorithm-Visualizer/telemetry"
)

// shortcut is A→B(1), B→C(1), A→C(5) plus an unconnected D.
func shortcut(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithDirected(true))
	for _, e := range []struct {
		u, v string
		w    float64
	}{{"A", "B", 1}, {"B", "C", 1}, {"A", "C", 5}} {
		_, err := g.AddEdge(e.u, e.v, e.w)
		require.NoError(t, err)
	}
	require.NoError(t, g.CreateNode("D", 10, 10))

	return g
}

func fixedIDs() recorder.Option {
	n := 0
	return recorder.WithIDGenerator(func() string {
		n++
		return "run-" + string(rune('0'+n))
	})
}

func TestStart_Errors(t *testing.T) {
	g := shortcut(t)
	rec := recorder.New()

	assert.ErrorIs(t, rec.Start("quicksort", "A", "C", g, ""), recorder.ErrUnknownAlgorithm)
	assert.ErrorIs(t, rec.Start("bfs", "A", "C", nil, ""), recorder.ErrNilGraph)
	assert.ErrorIs(t, rec.Start("bfs", "Q", "C", g, ""), core.ErrNodeNotFound)
	assert.ErrorIs(t, rec.Start("bfs", "A", "Q", g, ""), core.ErrNodeNotFound)

	_, err := rec.RunToCompletion()
	assert.ErrorIs(t, err, recorder.ErrNotStarted)
	_, err = rec.Export()
	assert.ErrorIs(t, err, recorder.ErrNotStarted)
}

func TestRunToCompletion_Dijkstra(t *testing.T) {
	rec := recorder.New(fixedIDs())
	require.NoError(t, rec.Start(registry.KeyDijkstra, "A", "C", shortcut(t), "manhattan"))
	assert.Equal(t, "run-1", rec.RunID())

	m, err := rec.RunToCompletion()
	require.NoError(t, err)
	assert.True(t, m.PathFound)
	assert.Equal(t, 2.0, m.PathCost, "not the direct edge of weight 5")
	assert.Equal(t, 2, m.PathLength)
	assert.Equal(t, "Dijkstra's Algorithm", m.AlgoLabel)
	assert.Empty(t, m.Heuristic, "dijkstra takes no heuristic")
	assert.Equal(t, len(rec.Steps()), m.TotalSteps)
	assert.Positive(t, m.MemoryBytes)

	last := rec.Steps()[m.TotalSteps-1]
	assert.Equal(t, last.Metrics.NodesVisited, m.NodesVisited)
	assert.Equal(t, last.Metrics.EdgesRelaxed, m.EdgesRelaxed)

	again, err := rec.RunToCompletion()
	require.NoError(t, err)
	assert.Equal(t, m, again)
	got, ok := rec.Metrics()
	assert.True(t, ok)
	assert.Equal(t, m, got)
	assert.True(t, rec.Stepper().IsFinished())
}

func TestRunToCompletion_BFSCountsHops(t *testing.T) {
	rec := recorder.New()
	require.NoError(t, rec.Start(registry.KeyBFS, "A", "C", shortcut(t), ""))
	m, err := rec.RunToCompletion()
	require.NoError(t, err)
	assert.Equal(t, 1, m.PathLength)
	assert.Equal(t, 5.0, m.PathCost)
}

func TestRunToCompletion_PathCostMatchesGraphForEveryAlgorithm(t *testing.T) {
	g := core.NewGraph()
	for _, e := range []struct {
		u, v string
		w    float64
	}{{"A", "B", 4}, {"A", "C", 1}, {"C", "B", 2}, {"B", "D", 1}, {"C", "D", 5}, {"D", "E", 3}} {
		_, err := g.AddEdge(e.u, e.v, e.w)
		require.NoError(t, err)
	}

	optimal := map[string]bool{
		registry.KeyDijkstra: true, registry.KeyAStar: true,
		registry.KeyBellmanFord: true, registry.KeyFloydWarshall: true,
	}
	for _, key := range registry.Default().Keys() {
		t.Run(key, func(t *testing.T) {
			rec := recorder.New()
			require.NoError(t, rec.Start(key, "A", "E", g, "zero"))
			m, err := rec.RunToCompletion()
			require.NoError(t, err)
			require.True(t, m.PathFound)

			last := rec.Steps()[m.TotalSteps-1]
			want, ok := g.PathCost(last.Path)
			require.True(t, ok)
			assert.Equal(t, want, m.PathCost)
			if optimal[key] {
				assert.Equal(t, 7.0, m.PathCost)
			}
		})
	}
}

func TestRunToCompletion_HeuristicRecorded(t *testing.T) {
	rec := recorder.New()
	require.NoError(t, rec.Start(registry.KeyAStar, "A", "C", shortcut(t), "no-such"))
	m, err := rec.RunToCompletion()
	require.NoError(t, err)
	assert.Equal(t, "euclidean", m.Heuristic, "unknown names fall back to the default")
}

func TestRunToCompletion_NegativeCycle(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "C", -2)
	_, _ = g.AddEdge("C", "B", 1)

	rec := recorder.New()
	require.NoError(t, rec.Start(registry.KeyBellmanFord, "A", "C", g, ""))
	m, err := rec.RunToCompletion()
	require.NoError(t, err)
	assert.True(t, m.NegativeCycle)
	assert.False(t, m.PathFound)
	assert.Zero(t, m.PathCost)
}

func TestRunToCompletion_StepLimit(t *testing.T) {
	rec := recorder.New(recorder.WithStepLimit(3))
	require.NoError(t, rec.Start(registry.KeyBFS, "A", "C", shortcut(t), ""))
	_, err := rec.RunToCompletion()
	assert.ErrorIs(t, err, recorder.ErrStepLimit)
	_, ok := rec.Metrics()
	assert.False(t, ok)

	assert.Panics(t, func() { recorder.WithStepLimit(-1) })
}

func TestRunToCompletion_WallTimeFromClock(t *testing.T) {
	now := time.Unix(100, 0)
	clock := func() time.Time {
		now = now.Add(time.Millisecond)
		return now
	}
	rec := recorder.New(recorder.WithClock(clock))
	require.NoError(t, rec.Start(registry.KeyBFS, "A", "C", shortcut(t), ""))
	m, err := rec.RunToCompletion()
	require.NoError(t, err)
	assert.Equal(t, time.Millisecond, m.WallTime)
}

func TestEmitterAndCollector(t *testing.T) {
	buf := emit.NewBufferedEmitter()
	reg := prometheus.NewRegistry()
	col := telemetry.NewPrometheusCollector(reg, "test")

	rec := recorder.New(recorder.WithEmitter(buf), recorder.WithCollector(col), fixedIDs())
	require.NoError(t, rec.Start(registry.KeyBFS, "A", "C", shortcut(t), ""))
	m, err := rec.RunToCompletion()
	require.NoError(t, err)

	events := buf.History(rec.RunID())
	require.Len(t, events, m.TotalSteps+2)
	assert.Equal(t, emit.MsgRunStart, events[0].Msg)
	assert.Equal(t, emit.MsgRunEnd, events[len(events)-1].Msg)
	for i, e := range events[1 : len(events)-1] {
		assert.Equal(t, emit.MsgStep, e.Msg)
		assert.Equal(t, i, e.Step)
	}

	expected := `
# HELP test_runs_total Completed algorithm runs by outcome
# TYPE test_runs_total counter
test_runs_total{algo="bfs",outcome="found"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "test_runs_total"))
}

func TestExport_RoundTripAndReplay(t *testing.T) {
	rec := recorder.New()
	require.NoError(t, rec.Start(registry.KeyFloydWarshall, "A", "C", shortcut(t), ""))
	_, err := rec.Export()
	assert.ErrorIs(t, err, recorder.ErrNotCompleted)

	m, err := rec.RunToCompletion()
	require.NoError(t, err)
	snap, err := rec.Export()
	require.NoError(t, err)
	assert.Equal(t, recorder.SnapshotVersion, snap.Version)
	assert.Equal(t, m, snap.Metrics)

	var buf bytes.Buffer
	require.NoError(t, snap.Encode(&buf))
	back, err := recorder.DecodeSnapshot(&buf)
	require.NoError(t, err)

	assert.Equal(t, snap.RunID, back.RunID)
	assert.Equal(t, snap.Metrics, back.Metrics)
	assert.Equal(t, snap.Graph.NodeIDs(), back.Graph.NodeIDs())
	assert.Equal(t, snap.Graph.EdgeCount(), back.Graph.EdgeCount())
	assert.Empty(t, cmp.Diff(snap.Steps, back.Steps, cmpopts.EquateEmpty()))

	st, err := recorder.Replay(back)
	require.NoError(t, err)
	require.NoError(t, st.JumpToEnd())
	assert.Empty(t, cmp.Diff(rec.Steps(), st.Steps(), cmpopts.EquateEmpty()))
	assert.Equal(t, stepper.Finished, st.State())
}

func TestExport_GraphIsDetached(t *testing.T) {
	g := shortcut(t)
	rec := recorder.New()
	require.NoError(t, rec.Start(registry.KeyBFS, "A", "C", g, ""))
	_, err := rec.RunToCompletion()
	require.NoError(t, err)
	snap, err := rec.Export()
	require.NoError(t, err)

	require.NoError(t, g.CreateNode("Z", 0, 0))
	assert.False(t, snap.Graph.HasNode("Z"))
}

func TestDecodeSnapshot_Errors(t *testing.T) {
	_, err := recorder.DecodeSnapshot(strings.NewReader(`{"version": 99}`))
	assert.ErrorIs(t, err, recorder.ErrSnapshotVersion)

	_, err = recorder.DecodeSnapshot(strings.NewReader(`{`))
	require.Error(t, err)
	assert.False(t, errors.Is(err, recorder.ErrSnapshotVersion))
}

func TestCompare(t *testing.T) {
	a := recorder.RunMetrics{AlgoLabel: "A*", NodesVisited: 5, EdgesRelaxed: 9, TotalSteps: 20, PathFound: true, PathCost: 10}
	b := recorder.RunMetrics{AlgoLabel: "Greedy", NodesVisited: 3, EdgesRelaxed: 9, TotalSteps: 30, PathFound: true, PathCost: 14}

	res := recorder.Compare(a, b)
	assert.Equal(t, "Greedy", res.WinnerNodes)
	assert.Equal(t, recorder.Tie, res.WinnerEdges)
	assert.Equal(t, "A*", res.WinnerPath)
	assert.Equal(t, "A*", res.WinnerSteps)

	b.PathFound, b.PathCost = false, 0
	assert.Equal(t, "A*", recorder.Compare(a, b).WinnerPath, "finding a path beats a cheaper nothing")

	a.PathFound = false
	assert.Equal(t, recorder.Tie, recorder.Compare(a, b).WinnerPath)

	same := recorder.Compare(recorder.RunMetrics{AlgoLabel: "BFS", NodesVisited: 1}, recorder.RunMetrics{AlgoLabel: "BFS", NodesVisited: 2})
	assert.Equal(t, "BFS (left)", same.WinnerNodes)
}

func TestCompare_BFSAgainstBidirectional(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 6; i++ {
		from := string(rune('A' + i))
		to := string(rune('A' + i + 1))
		_, _ = g.AddEdge(from, to, 1)
		_, _ = g.AddEdge(from, from+"x", 1)
		_, _ = g.AddEdge(from, from+"y", 1)
	}

	run := func(key string) recorder.RunMetrics {
		rec := recorder.New()
		require.NoError(t, rec.Start(key, "A", "G", g, ""))
		m, err := rec.RunToCompletion()
		require.NoError(t, err)
		return m
	}
	bfsM, biM := run(registry.KeyBFS), run(registry.KeyBidirectional)

	assert.Equal(t, bfsM.PathLength, biM.PathLength)
	assert.LessOrEqual(t, biM.NodesVisited, bfsM.NodesVisited)
	res := recorder.Compare(bfsM, biM)
	assert.Equal(t, recorder.Tie, res.WinnerPath)
}
