// Package stepper plays back a step trace. A Stepper owns one pull-style
// generator, appends every step it pulls to a buffer, and moves a cursor
// over that buffer. Seeking backwards replays buffered steps; the
// algorithm is never re-run.
//
// State machine:
//
//	Idle    --Start-->          Paused
//	Paused  --Play-->           Playing
//	Playing --Pause-->          Paused
//	Paused/Playing --exhausted--> Finished
//	any     --Reset-->          Idle
//
// Auto-play is cooperative: an external loop calls Tick and the Stepper
// advances when the configured interval has elapsed. There is no timer
// goroutine.
package stepper

import (
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/tanmayjayanthi2005-droid/Graph-Algorithm-Visualizer/step"
)

// Stepper is safe for concurrent use. The OnStep callback runs after the
// internal lock is released, so it may call back into the Stepper.
type Stepper struct {
	mu sync.Mutex

	gen       step.Generator
	exhausted bool
	steps     []step.Step
	idx       int
	state     State
	interval  time.Duration
	lastTick  time.Time

	onStep func(*step.Step)
	now    func() time.Time
	log    *slog.Logger
}

// New returns an Idle Stepper.
func New(opts ...Option) *Stepper {
	cfg := DefaultConfig()
	for _, o := range opts {
		o(&cfg)
	}

	return &Stepper{
		idx:      -1,
		interval: cfg.Interval,
		onStep:   cfg.OnStep,
		now:      cfg.Clock,
		log:      cfg.Logger,
	}
}

// Start attaches gen, discarding any previous run, and eagerly pulls the
// first step so the initial state is observable. A generator that yields
// nothing leaves the Stepper Finished with no current step.
func (s *Stepper) Start(gen step.Generator) error {
	if gen == nil {
		return ErrNilGenerator
	}

	s.mu.Lock()
	s.release()
	s.gen = gen
	s.exhausted = false
	s.steps = nil
	s.idx = -1
	s.state = Paused
	var cur *step.Step
	if s.fetch() {
		cur = s.moveTo(0)
	} else {
		s.state = Finished
	}
	s.mu.Unlock()

	s.log.Debug("stepper started", "first_step", cur != nil)
	s.notify(cur)

	return nil
}

// Reset discards the generator and buffer and returns to Idle.
func (s *Stepper) Reset() {
	s.mu.Lock()
	s.release()
	s.gen = nil
	s.steps = nil
	s.idx = -1
	s.state = Idle
	s.mu.Unlock()

	s.log.Debug("stepper reset")
	if s.onStep != nil {
		s.onStep(nil)
	}
}

// NextStep moves the cursor forward by one, pulling from the generator
// only when the buffer does not hold the step yet. It returns false and
// enters Finished when there is nothing left.
func (s *Stepper) NextStep() (bool, error) {
	s.mu.Lock()
	if s.state == Idle {
		s.mu.Unlock()
		return false, ErrNotStarted
	}
	cur, ok := s.advance()
	s.mu.Unlock()

	s.notify(cur)

	return ok, nil
}

// PrevStep moves the cursor back by one within the buffer.
func (s *Stepper) PrevStep() (bool, error) {
	s.mu.Lock()
	if s.state == Idle {
		s.mu.Unlock()
		return false, ErrNotStarted
	}
	if s.idx <= 0 {
		s.mu.Unlock()
		return false, nil
	}
	cur := s.moveTo(s.idx - 1)
	s.mu.Unlock()

	s.notify(cur)

	return true, nil
}

// GotoStep positions the cursor at i, pulling forward as needed. It
// returns false when i is negative or beyond what the generator produces.
func (s *Stepper) GotoStep(i int) (bool, error) {
	s.mu.Lock()
	if s.state == Idle {
		s.mu.Unlock()
		return false, ErrNotStarted
	}
	for i >= len(s.steps) && s.fetch() {
	}
	if i < 0 || i >= len(s.steps) {
		s.mu.Unlock()
		return false, nil
	}
	cur := s.moveTo(i)
	s.mu.Unlock()

	s.notify(cur)

	return true, nil
}

// Rewind positions the cursor at the first step.
func (s *Stepper) Rewind() error {
	_, err := s.GotoStep(0)

	return err
}

// JumpToEnd exhausts the generator, positions the cursor at the last step
// and enters Finished.
func (s *Stepper) JumpToEnd() error {
	s.mu.Lock()
	if s.state == Idle {
		s.mu.Unlock()
		return ErrNotStarted
	}
	for s.fetch() {
	}
	var cur *step.Step
	if len(s.steps) > 0 {
		cur = s.moveTo(len(s.steps) - 1)
	}
	s.state = Finished
	s.mu.Unlock()

	s.notify(cur)

	return nil
}

// Play starts auto-play. It is a no-op once Finished.
func (s *Stepper) Play() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case Idle:
		return ErrNotStarted
	case Finished:
		return nil
	}
	s.state = Playing
	s.lastTick = s.now()

	return nil
}

// Pause stops auto-play.
func (s *Stepper) Pause() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == Idle {
		return ErrNotStarted
	}
	if s.state == Playing {
		s.state = Paused
	}

	return nil
}

// TogglePlay switches between Playing and Paused.
func (s *Stepper) TogglePlay() error {
	if s.State() == Playing {
		return s.Pause()
	}

	return s.Play()
}

// Tick advances one step when Playing and at least one interval has
// passed since the last advance. It reports whether a step was taken.
func (s *Stepper) Tick() (bool, error) {
	s.mu.Lock()
	switch s.state {
	case Idle:
		s.mu.Unlock()
		return false, ErrNotStarted
	case Playing:
	default:
		s.mu.Unlock()
		return false, nil
	}
	now := s.now()
	if now.Sub(s.lastTick) < s.interval {
		s.mu.Unlock()
		return false, nil
	}
	s.lastTick = now
	cur, ok := s.advance()
	s.mu.Unlock()

	s.notify(cur)

	return ok, nil
}

// SetSpeed selects a named preset.
func (s *Stepper) SetSpeed(preset string) error {
	d, ok := presets[preset]
	if !ok {
		return ErrUnknownPreset
	}
	s.mu.Lock()
	s.interval = d
	s.mu.Unlock()

	return nil
}

// SetInterval sets a custom auto-play interval, floored at MinInterval.
func (s *Stepper) SetInterval(d time.Duration) {
	s.mu.Lock()
	s.interval = max(d, MinInterval)
	s.mu.Unlock()
}

// Interval returns the auto-play interval.
func (s *Stepper) Interval() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.interval
}

// State returns the playback status.
func (s *Stepper) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}

// Current returns the step under the cursor.
func (s *Stepper) Current() (step.Step, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.idx < 0 || s.idx >= len(s.steps) {
		return step.Step{}, false
	}

	return s.steps[s.idx], true
}

// Index returns the cursor position, or -1 with no current step.
func (s *Stepper) Index() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.idx
}

// Fetched returns the number of buffered steps.
func (s *Stepper) Fetched() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.steps)
}

// Steps returns a copy of the buffer.
func (s *Stepper) Steps() []step.Step {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.steps)
}

// IsFinished reports State() == Finished.
func (s *Stepper) IsFinished() bool { return s.State() == Finished }

// IsPlaying reports State() == Playing.
func (s *Stepper) IsPlaying() bool { return s.State() == Playing }

// advance must be called with mu held.
func (s *Stepper) advance() (*step.Step, bool) {
	target := s.idx + 1
	if target >= len(s.steps) && !s.fetch() {
		if s.state != Finished {
			s.log.Debug("stepper finished", "steps", len(s.steps))
		}
		s.state = Finished
		return nil, false
	}

	return s.moveTo(target), true
}

// fetch pulls one step into the buffer. It must be called with mu held.
func (s *Stepper) fetch() bool {
	if s.gen == nil || s.exhausted {
		return false
	}
	st, ok := s.gen.Next()
	if !ok {
		s.exhausted = true
		s.gen.Stop()
		return false
	}
	s.steps = append(s.steps, st)

	return true
}

// moveTo must be called with mu held. It returns a copy of the new
// current step for notify.
func (s *Stepper) moveTo(i int) *step.Step {
	s.idx = i
	cur := s.steps[i]

	return &cur
}

func (s *Stepper) release() {
	if s.gen != nil && !s.exhausted {
		s.gen.Stop()
	}
}

func (s *Stepper) notify(cur *step.Step) {
	if s.onStep != nil && cur != nil {
		s.onStep(cur)
	}
}
