package store

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/tanmayjayanthi2005-droid/Graph-Algorithm-Visualizer/recorder"
)

// MemoryArchive keeps encoded snapshots in memory. Snapshots are stored
// as JSON, so a loaded snapshot never aliases the saved one. Safe for
// concurrent use.
type MemoryArchive struct {
	mu     sync.RWMutex
	runs   map[string][]byte
	meta   map[string]Summary
	closed bool
}

// NewMemoryArchive returns an empty MemoryArchive.
func NewMemoryArchive() *MemoryArchive {
	return &MemoryArchive{
		runs: make(map[string][]byte),
		meta: make(map[string]Summary),
	}
}

// Save implements Archive.
func (m *MemoryArchive) Save(_ context.Context, snap recorder.Snapshot) error {
	if snap.RunID == "" {
		return ErrEmptyRunID
	}
	var buf bytes.Buffer
	if err := snap.Encode(&buf); err != nil {
		return fmt.Errorf("Save(%s): %w", snap.RunID, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClosed
	}
	m.runs[snap.RunID] = buf.Bytes()
	m.meta[snap.RunID] = summarize(snap)

	return nil
}

// Load implements Archive.
func (m *MemoryArchive) Load(_ context.Context, runID string) (recorder.Snapshot, error) {
	m.mu.RLock()
	data, ok := m.runs[runID]
	closed := m.closed
	m.mu.RUnlock()

	if closed {
		return recorder.Snapshot{}, ErrClosed
	}
	if !ok {
		return recorder.Snapshot{}, fmt.Errorf("Load(%s): %w", runID, ErrNotFound)
	}

	return recorder.DecodeSnapshot(bytes.NewReader(data))
}

// List implements Archive. Rows are newest first, ties broken by run ID.
func (m *MemoryArchive) List(_ context.Context, f Filter) ([]Summary, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return nil, ErrClosed
	}

	out := []Summary{}
	for _, s := range m.meta {
		if f.AlgoKey != "" && s.AlgoKey != f.AlgoKey {
			continue
		}
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].RunID < out[j].RunID
	})
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}

	return out, nil
}

// Delete implements Archive.
func (m *MemoryArchive) Delete(_ context.Context, runID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClosed
	}
	if _, ok := m.runs[runID]; !ok {
		return fmt.Errorf("Delete(%s): %w", runID, ErrNotFound)
	}
	delete(m.runs, runID)
	delete(m.meta, runID)

	return nil
}

// Close implements Archive. Closing twice is a no-op.
func (m *MemoryArchive) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true

	return nil
}
