package emit_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/tanmayjayanthi2005-droid/Graph-Algorithm-Visualizer/bfs"
	"github.com/tanmayjayanthi2005-droid/Graph-Algorithm-Visualizer/core"
	"github.com/tanmayjayanthi2005-droid/Graph-Algorithm-Visualizer/emit"
	"github.com/tanmayjayanthi2005-droid/Graph-Algorithm-Visualizer/step"
)

func bfsSteps(t *testing.T) []step.Step {
	t.Helper()
	g := core.NewGraph()
	_, err := g.AddEdge("A", "B", 1)
	require.NoError(t, err)
	_, err = g.AddEdge("B", "C", 1)
	require.NoError(t, err)

	return step.Collect(bfs.Steps(g, "A", "C"))
}

func TestStepEvent(t *testing.T) {
	steps := bfsSteps(t)
	last := steps[len(steps)-1]

	ev := emit.StepEvent("run-1", "bfs", last)
	assert.Equal(t, emit.MsgStep, ev.Msg)
	assert.Equal(t, last.Number, ev.Step)
	assert.Equal(t, "run-1", ev.RunID)
	assert.Equal(t, true, ev.Meta["final"])
	assert.Equal(t, 2, ev.Meta["path_length"])
	assert.Equal(t, "queue", ev.Meta["overlay"])
	assert.NotContains(t, ev.Meta, "negative_cycle")
}

func TestBufferedEmitter_HistoryAndFilter(t *testing.T) {
	b := emit.NewBufferedEmitter()
	for _, s := range bfsSteps(t) {
		b.Emit(emit.StepEvent("r1", "bfs", s))
	}
	b.Emit(emit.Event{RunID: "r2", Step: -1, Msg: emit.MsgRunStart})

	all := b.History("r1")
	require.NotEmpty(t, all)
	assert.Equal(t, 0, all[0].Step)
	assert.Empty(t, b.History("missing"))
	assert.NotNil(t, b.History("missing"))

	lo, hi := 1, 2
	window := b.Filter("r1", emit.HistoryFilter{MinStep: &lo, MaxStep: &hi})
	require.Len(t, window, 2)
	assert.Equal(t, 1, window[0].Step)

	atB := b.Filter("r1", emit.HistoryFilter{NodeID: "B"})
	for _, e := range atB {
		assert.Equal(t, "B", e.NodeID)
	}
	assert.Equal(t, []string{"r1", "r2"}, b.Runs())

	b.Clear("r1")
	assert.Equal(t, []string{"r2"}, b.Runs())
	b.Clear("")
	assert.Empty(t, b.Runs())
}

func TestBufferedEmitter_Concurrent(t *testing.T) {
	b := emit.NewBufferedEmitter()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				b.Emit(emit.Event{RunID: "r", Step: i*100 + j, Msg: emit.MsgStep})
				_ = b.History("r")
			}
		}(i)
	}
	wg.Wait()
	assert.Len(t, b.History("r"), 400)
}

func TestLogEmitter(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	l := emit.NewLogEmitter(logger, slog.LevelDebug)

	l.Emit(emit.Event{RunID: "r1", Algo: "bfs", Step: -1, Msg: emit.MsgRunStart})
	l.Emit(emit.StepEvent("r1", "bfs", bfsSteps(t)[0]))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"msg":"run_start"`)
	assert.NotContains(t, lines[0], `"step"`)
	assert.Contains(t, lines[1], `"level":"DEBUG"`)
	assert.Contains(t, lines[1], `"step":0`)
	assert.Contains(t, lines[1], `"node":"A"`)
}

func TestLogEmitter_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	emit.NewLogEmitter(logger, slog.LevelDebug).Emit(emit.StepEvent("r", "bfs", bfsSteps(t)[0]))
	assert.Empty(t, buf.String())
}

func TestOTelEmitter_Spans(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	defer func() { _ = tp.Shutdown(context.Background()) }()

	o := emit.NewOTelEmitter(tp.Tracer("test"))
	o.Emit(emit.StepEvent("r1", "bfs", bfsSteps(t)[0]))
	o.Emit(emit.Event{RunID: "r1", Step: -1, Msg: emit.MsgRunEnd, Meta: map[string]any{"error": "boom"}})

	spans := exporter.GetSpans()
	require.Len(t, spans, 2)
	assert.Equal(t, emit.MsgStep, spans[0].Name)

	attrs := map[attribute.Key]attribute.Value{}
	for _, kv := range spans[0].Attributes {
		attrs[kv.Key] = kv.Value
	}
	assert.Equal(t, "r1", attrs["visualizer.run_id"].AsString())
	assert.Equal(t, int64(0), attrs["visualizer.step"].AsInt64())
	assert.Equal(t, "A", attrs["visualizer.node_id"].AsString())
	assert.False(t, attrs["visualizer.final"].AsBool())

	assert.Equal(t, codes.Error, spans[1].Status.Code)
	assert.Equal(t, "boom", spans[1].Status.Description)
	assert.NoError(t, o.Flush(context.Background()))
}

func TestMulti(t *testing.T) {
	a, b := emit.NewBufferedEmitter(), emit.NewBufferedEmitter()
	m := emit.Multi(a, nil, emit.NewNullEmitter(), b)
	m.Emit(emit.Event{RunID: "x", Msg: emit.MsgRunStart})
	assert.Len(t, a.History("x"), 1)
	assert.Len(t, b.History("x"), 1)
}
