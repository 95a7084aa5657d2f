package emit

import (
	"maps"
	"slices"
	"sync"
)

// BufferedEmitter keeps every event in memory, grouped by run, for later
// inspection. Safe for concurrent use.
type BufferedEmitter struct {
	mu     sync.RWMutex
	events map[string][]Event // runID -> events
}

// HistoryFilter selects events. Zero fields do not filter; set fields are
// combined with AND.
type HistoryFilter struct {
	NodeID  string
	Msg     string
	MinStep *int
	MaxStep *int
}

// NewBufferedEmitter returns an empty BufferedEmitter.
func NewBufferedEmitter() *BufferedEmitter {
	return &BufferedEmitter{events: make(map[string][]Event)}
}

// Emit stores event under its RunID.
func (b *BufferedEmitter) Emit(event Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.events[event.RunID] = append(b.events[event.RunID], event)
}

// History returns a copy of the events of runID in emission order.
func (b *BufferedEmitter) History(runID string) []Event {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := slices.Clone(b.events[runID])
	if out == nil {
		return []Event{}
	}

	return out
}

// Filter returns the events of runID that match f.
func (b *BufferedEmitter) Filter(runID string, f HistoryFilter) []Event {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := []Event{}
	for _, e := range b.events[runID] {
		if f.match(e) {
			out = append(out, e)
		}
	}

	return out
}

// Runs lists the run IDs with buffered events, sorted.
func (b *BufferedEmitter) Runs() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return slices.Sorted(maps.Keys(b.events))
}

// Clear drops the events of runID, or of every run when runID is empty.
func (b *BufferedEmitter) Clear(runID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if runID == "" {
		b.events = make(map[string][]Event)
		return
	}
	delete(b.events, runID)
}

func (f HistoryFilter) match(e Event) bool {
	switch {
	case f.NodeID != "" && e.NodeID != f.NodeID:
		return false
	case f.Msg != "" && e.Msg != f.Msg:
		return false
	case f.MinStep != nil && e.Step < *f.MinStep:
		return false
	case f.MaxStep != nil && e.Step > *f.MaxStep:
		return false
	}

	return true
}

func sortedKeys(m map[string]any) []string {
	return slices.Sorted(maps.Keys(m))
}
