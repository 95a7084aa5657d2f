package step

import (
	"iter"
	"slices"
)

// Trace is held by a generator for the lifetime of one run. It stamps step
// numbers, carries the running tallies forward and hands each frozen step
// to the consumer.
type Trace struct {
	yield   func(Step) bool
	next    int
	relaxed int
	stopped bool
}

// NewTrace wraps the yield function of an iter.Seq.
func NewTrace(yield func(Step) bool) *Trace {
	return &Trace{yield: yield}
}

// Emit freezes b into the next non-final step and resets b. It returns
// false once the consumer has stopped; the generator must then return.
func (t *Trace) Emit(b *Builder) bool { return t.emit(b, false) }

// Finish is Emit for the terminal step.
func (t *Trace) Finish(b *Builder) bool { return t.emit(b, true) }

// Count returns the number of steps emitted so far.
func (t *Trace) Count() int { return t.next }

func (t *Trace) emit(b *Builder, final bool) bool {
	if t.stopped {
		return false
	}
	t.relaxed += b.relaxed
	m := Metrics{
		NodesVisited: len(b.visited),
		EdgesRelaxed: t.relaxed,
		PathLength:   max(len(b.path)-1, 0),
	}
	s := b.Build(t.next, m, final)
	t.next++
	b.Reset()
	if !t.yield(s) {
		t.stopped = true
		return false
	}

	return true
}

// Generator is a pull-style step source. Next returns false once the trace
// is exhausted. Stop releases the producer early and is idempotent; callers
// that abandon a generator must call it.
type Generator interface {
	Next() (Step, bool)
	Stop()
}

type pulled struct {
	next func() (Step, bool)
	stop func()
}

// Pull adapts a push-style trace into a Generator.
func Pull(seq iter.Seq[Step]) Generator {
	next, stop := iter.Pull(seq)

	return &pulled{next: next, stop: stop}
}

func (p *pulled) Next() (Step, bool) { return p.next() }
func (p *pulled) Stop()              { p.stop() }

type replay struct {
	steps []Step
	pos   int
}

// FromSteps returns a Generator that replays an already recorded trace.
func FromSteps(steps []Step) Generator {
	return &replay{steps: slices.Clone(steps)}
}

func (r *replay) Next() (Step, bool) {
	if r.pos >= len(r.steps) {
		return Step{}, false
	}
	s := r.steps[r.pos]
	r.pos++

	return s, true
}

func (r *replay) Stop() { r.pos = len(r.steps) }

// Collect drains seq into a slice.
func Collect(seq iter.Seq[Step]) []Step {
	return slices.Collect(seq)
}

// Last returns the final element of steps, if any.
func Last(steps []Step) (Step, bool) {
	if len(steps) == 0 {
		return Step{}, false
	}

	return steps[len(steps)-1], true
}
