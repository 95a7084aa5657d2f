package stepper_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanmayjayanthi2005-droid/Graph-Algorithm-Visualizer/bfs"
	"github.com/tanmayjayanthi2005-droid/Graph-Algorithm-Visualizer/core"
	"github.com/tanmayjayanthi2005-droid/Graph-Algorithm-Visualizer/step"
	"github.com/tanmayjayanthi2005-droid/Graph-Algorithm-Visualizer/stepper"
)

func chain(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}} {
		_, err := g.AddEdge(e[0], e[1], 1)
		require.NoError(t, err)
	}

	return g
}

func trace(t *testing.T) []step.Step {
	t.Helper()

	return step.Collect(bfs.Steps(chain(t), "A", "D"))
}

// fakeClock is advanced by hand.
type fakeClock struct{ t time.Time }

func newClock() *fakeClock { return &fakeClock{t: time.Unix(0, 0)} }

func (c *fakeClock) now() time.Time      { return c.t }
func (c *fakeClock) add(d time.Duration) { c.t = c.t.Add(d) }

func TestStart_LoadsFirstStep(t *testing.T) {
	var seen []*step.Step
	s := stepper.New(stepper.WithOnStep(func(st *step.Step) { seen = append(seen, st) }))
	assert.Equal(t, stepper.Idle, s.State())

	require.NoError(t, s.Start(step.Pull(bfs.Steps(chain(t), "A", "D"))))
	assert.Equal(t, stepper.Paused, s.State())
	assert.Equal(t, 0, s.Index())
	assert.Equal(t, 1, s.Fetched())
	cur, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, 0, cur.Number)
	require.Len(t, seen, 1)
	assert.Equal(t, 0, seen[0].Number)
}

func TestStart_Errors(t *testing.T) {
	s := stepper.New()
	assert.ErrorIs(t, s.Start(nil), stepper.ErrNilGenerator)

	_, err := s.NextStep()
	assert.ErrorIs(t, err, stepper.ErrNotStarted)
	_, err = s.PrevStep()
	assert.ErrorIs(t, err, stepper.ErrNotStarted)
	_, err = s.GotoStep(0)
	assert.ErrorIs(t, err, stepper.ErrNotStarted)
	assert.ErrorIs(t, s.JumpToEnd(), stepper.ErrNotStarted)
	assert.ErrorIs(t, s.Play(), stepper.ErrNotStarted)
	assert.ErrorIs(t, s.Pause(), stepper.ErrNotStarted)
	_, err = s.Tick()
	assert.ErrorIs(t, err, stepper.ErrNotStarted)
}

func TestStart_EmptyGenerator(t *testing.T) {
	s := stepper.New()
	require.NoError(t, s.Start(step.FromSteps(nil)))
	assert.Equal(t, stepper.Finished, s.State())
	_, ok := s.Current()
	assert.False(t, ok)
	assert.Equal(t, -1, s.Index())
}

func TestNavigation_ForwardThenBackward(t *testing.T) {
	want := trace(t)
	s := stepper.New()
	require.NoError(t, s.Start(step.Pull(bfs.Steps(chain(t), "A", "D"))))

	for i := 1; i < len(want); i++ {
		ok, err := s.NextStep()
		require.NoError(t, err)
		require.True(t, ok)
	}
	assert.Equal(t, stepper.Paused, s.State(), "reaching the final step is not yet exhaustion")

	ok, err := s.NextStep()
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, stepper.Finished, s.State())
	assert.Equal(t, len(want)-1, s.Index())

	var back []step.Step
	for {
		cur, _ := s.Current()
		back = append(back, cur)
		ok, err := s.PrevStep()
		require.NoError(t, err)
		if !ok {
			break
		}
	}
	assert.Len(t, back, len(want))
	for i, st := range back {
		assert.Empty(t, cmp.Diff(want[len(want)-1-i], st), "index %d", i)
	}
}

func TestJumpToEnd_ThenReplayBackward(t *testing.T) {
	want := trace(t)
	s := stepper.New()
	require.NoError(t, s.Start(step.Pull(bfs.Steps(chain(t), "A", "D"))))
	require.NoError(t, s.JumpToEnd())

	assert.Equal(t, stepper.Finished, s.State())
	assert.Equal(t, len(want), s.Fetched())
	cur, ok := s.Current()
	require.True(t, ok)
	assert.True(t, cur.Final)

	for i := len(want) - 2; i >= 0; i-- {
		ok, err := s.PrevStep()
		require.NoError(t, err)
		require.True(t, ok)
		cur, _ := s.Current()
		assert.Empty(t, cmp.Diff(want[i], cur))
	}
	ok, err := s.PrevStep()
	require.NoError(t, err)
	assert.False(t, ok, "prev from 0 is a no-op")
	assert.Empty(t, cmp.Diff(want, s.Steps()))
}

func TestGotoStep(t *testing.T) {
	want := trace(t)
	s := stepper.New()
	require.NoError(t, s.Start(step.Pull(bfs.Steps(chain(t), "A", "D"))))

	ok, err := s.GotoStep(3)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 4, s.Fetched(), "pulled only as far as needed")
	assert.Equal(t, 3, s.Index())

	ok, _ = s.GotoStep(1)
	assert.True(t, ok)
	assert.Equal(t, 4, s.Fetched())

	ok, _ = s.GotoStep(len(want) + 10)
	assert.False(t, ok)
	assert.Equal(t, 1, s.Index(), "cursor unchanged")
	assert.Equal(t, len(want), s.Fetched())

	ok, _ = s.GotoStep(-1)
	assert.False(t, ok)

	require.NoError(t, s.Rewind())
	assert.Equal(t, 0, s.Index())
}

func TestPlayback_TickHonoursInterval(t *testing.T) {
	clk := newClock()
	s := stepper.New(stepper.WithClock(clk.now), stepper.WithInterval(100*time.Millisecond))
	require.NoError(t, s.Start(step.Pull(bfs.Steps(chain(t), "A", "D"))))

	ok, err := s.Tick()
	require.NoError(t, err)
	assert.False(t, ok, "paused")

	require.NoError(t, s.Play())
	assert.True(t, s.IsPlaying())
	clk.add(50 * time.Millisecond)
	ok, _ = s.Tick()
	assert.False(t, ok, "not due")
	clk.add(50 * time.Millisecond)
	ok, _ = s.Tick()
	assert.True(t, ok)
	assert.Equal(t, 1, s.Index())

	require.NoError(t, s.TogglePlay())
	assert.Equal(t, stepper.Paused, s.State())
	clk.add(time.Second)
	ok, _ = s.Tick()
	assert.False(t, ok)
	require.NoError(t, s.TogglePlay())
	assert.True(t, s.IsPlaying())

	total := len(trace(t))
	for i := 0; i < total+2; i++ {
		clk.add(100 * time.Millisecond)
		_, err := s.Tick()
		require.NoError(t, err)
	}
	assert.True(t, s.IsFinished())
	assert.Equal(t, total-1, s.Index())

	require.NoError(t, s.Play())
	assert.Equal(t, stepper.Finished, s.State(), "play after finish is a no-op")
}

func TestSpeed(t *testing.T) {
	s := stepper.New()
	assert.Equal(t, stepper.DefaultInterval, s.Interval())

	require.NoError(t, s.SetSpeed(stepper.SpeedTurbo))
	assert.Equal(t, 50*time.Millisecond, s.Interval())
	assert.ErrorIs(t, s.SetSpeed("ludicrous"), stepper.ErrUnknownPreset)

	s.SetInterval(time.Millisecond)
	assert.Equal(t, stepper.MinInterval, s.Interval())
	s.SetInterval(2 * time.Second)
	assert.Equal(t, 2*time.Second, s.Interval())

	d, ok := stepper.Preset(stepper.SpeedSlow)
	assert.True(t, ok)
	assert.Equal(t, time.Second, d)
}

func TestReset_NotifiesNil(t *testing.T) {
	var last *step.Step
	calls := 0
	s := stepper.New(stepper.WithOnStep(func(st *step.Step) {
		calls++
		last = st
	}))
	require.NoError(t, s.Start(step.Pull(bfs.Steps(chain(t), "A", "D"))))
	_, _ = s.NextStep()
	require.NotNil(t, last)

	s.Reset()
	assert.Nil(t, last)
	assert.Equal(t, 3, calls)
	assert.Equal(t, stepper.Idle, s.State())
	assert.Zero(t, s.Fetched())
}

func TestStart_ReplacesPreviousRun(t *testing.T) {
	s := stepper.New()
	require.NoError(t, s.Start(step.Pull(bfs.Steps(chain(t), "A", "D"))))
	_, _ = s.NextStep()

	require.NoError(t, s.Start(step.FromSteps(trace(t)[:2])))
	assert.Equal(t, 0, s.Index())
	assert.Equal(t, 1, s.Fetched())
	assert.Equal(t, stepper.Paused, s.State())
}

func TestCallbackMayReenter(t *testing.T) {
	var s *stepper.Stepper
	var fetched []int
	s = stepper.New(stepper.WithOnStep(func(st *step.Step) {
		if st != nil {
			fetched = append(fetched, s.Fetched())
		}
	}))
	require.NoError(t, s.Start(step.Pull(bfs.Steps(chain(t), "A", "D"))))
	_, _ = s.NextStep()
	assert.Equal(t, []int{1, 2}, fetched)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "idle", stepper.Idle.String())
	assert.Equal(t, "finished", stepper.Finished.String())
	assert.Equal(t, "unknown", stepper.State(42).String())
}
