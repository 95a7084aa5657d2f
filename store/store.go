// Package store archives completed runs so they can be listed, replayed
// and compared later without re-running the algorithm.
//
// Two implementations share the Archive contract: MemoryArchive for tests
// and throwaway sessions, and SQLiteArchive, a single-file database
// suitable for the CLI.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/tanmayjayanthi2005-droid/Graph-Algorithm-Visualizer/recorder"
)

var (
	// ErrNotFound is returned when a run ID is not archived.
	ErrNotFound = errors.New("store: run not found")

	// ErrClosed is returned by every operation after Close.
	ErrClosed = errors.New("store: archive is closed")

	// ErrEmptyRunID is returned by Save for a snapshot without a run ID.
	ErrEmptyRunID = errors.New("store: empty run ID")
)

// Archive persists run snapshots keyed by run ID. Saving an existing run
// ID replaces it.
type Archive interface {
	Save(ctx context.Context, snap recorder.Snapshot) error
	Load(ctx context.Context, runID string) (recorder.Snapshot, error)
	List(ctx context.Context, f Filter) ([]Summary, error)
	Delete(ctx context.Context, runID string) error
	Close() error
}

// Summary is the listing row of one archived run.
type Summary struct {
	RunID      string    `json:"run_id"`
	AlgoKey    string    `json:"algo_key"`
	Source     string    `json:"source"`
	Target     string    `json:"target"`
	PathFound  bool      `json:"path_found"`
	PathCost   float64   `json:"path_cost"`
	TotalSteps int       `json:"total_steps"`
	CreatedAt  time.Time `json:"created_at"`
}

// Filter narrows List. Zero fields do not filter.
type Filter struct {
	AlgoKey string
	// Limit caps the number of rows; 0 means no cap.
	Limit int
}

func summarize(s recorder.Snapshot) Summary {
	return Summary{
		RunID:      s.RunID,
		AlgoKey:    s.AlgoKey,
		Source:     s.Source,
		Target:     s.Target,
		PathFound:  s.Metrics.PathFound,
		PathCost:   s.Metrics.PathCost,
		TotalSteps: s.Metrics.TotalSteps,
		CreatedAt:  s.CreatedAt,
	}
}
