package telemetry_test

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanmayjayanthi2005-droid/Graph-Algorithm-Visualizer/telemetry"
)

func TestRun_Outcome(t *testing.T) {
	assert.Equal(t, telemetry.OutcomeFound, telemetry.Run{PathFound: true}.Outcome())
	assert.Equal(t, telemetry.OutcomeUnreachable, telemetry.Run{}.Outcome())
	assert.Equal(t, telemetry.OutcomeNegativeCycle, telemetry.Run{PathFound: true, NegativeCycle: true}.Outcome())
}

func TestPrometheusCollector_ObserveRun(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := telemetry.NewPrometheusCollector(reg, "viz")

	c.ObserveRun(telemetry.Run{Algo: "bfs", Steps: 14, NodesVisited: 4, EdgesRelaxed: 5, PathFound: true, PathCost: 2, WallTime: time.Millisecond})
	c.ObserveRun(telemetry.Run{Algo: "bfs", Steps: 3})
	c.ObserveRun(telemetry.Run{Algo: "bellman_ford", NegativeCycle: true})

	expected := `
# HELP viz_runs_total Completed algorithm runs by outcome
# TYPE viz_runs_total counter
viz_runs_total{algo="bellman_ford",outcome="negative_cycle"} 1
viz_runs_total{algo="bfs",outcome="found"} 1
viz_runs_total{algo="bfs",outcome="unreachable"} 1
# HELP viz_last_path_cost Path cost of the most recent run that found a path
# TYPE viz_last_path_cost gauge
viz_last_path_cost{algo="bfs"} 2
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "viz_runs_total", "viz_last_path_cost"))

	n, err := testutil.GatherAndCount(reg, "viz_steps_per_run")
	require.NoError(t, err)
	assert.Equal(t, 2, n, "one histogram series per algorithm")
}

func TestPrometheusCollector_Disable(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := telemetry.NewPrometheusCollector(reg, "")

	c.Disable()
	c.ObserveRun(telemetry.Run{Algo: "dfs"})
	n, err := testutil.GatherAndCount(reg, "graphviz_runs_total")
	require.NoError(t, err)
	assert.Zero(t, n)

	c.Enable()
	c.ObserveRun(telemetry.Run{Algo: "dfs"})
	n, err = testutil.GatherAndCount(reg, "graphviz_runs_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	c.Reset()
	n, _ = testutil.GatherAndCount(reg, "graphviz_runs_total")
	assert.Zero(t, n)
}

func TestNopCollector(t *testing.T) {
	var c telemetry.Collector = telemetry.NopCollector{}
	c.ObserveRun(telemetry.Run{Algo: "x"})
}

func TestWriteText(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := telemetry.NewPrometheusCollector(reg, "viz")
	c.ObserveRun(telemetry.Run{Algo: "dijkstra", Steps: 9, PathFound: true, PathCost: 7})

	var sb strings.Builder
	require.NoError(t, telemetry.WriteText(&sb, reg))
	out := sb.String()
	assert.Contains(t, out, "# TYPE viz_runs_total counter")
	assert.Contains(t, out, `viz_runs_total{algo="dijkstra",outcome="found"} 1`)
	assert.Contains(t, out, `viz_last_path_cost{algo="dijkstra"} 7`)
}
