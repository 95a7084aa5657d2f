package store

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/tanmayjayanthi2005-droid/Graph-Algorithm-Visualizer/recorder"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	run_id      TEXT PRIMARY KEY,
	algo_key    TEXT NOT NULL,
	source      TEXT NOT NULL,
	target      TEXT NOT NULL,
	path_found  INTEGER NOT NULL,
	path_cost   REAL NOT NULL,
	total_steps INTEGER NOT NULL,
	created_at  TEXT NOT NULL,
	snapshot    TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_runs_algo ON runs(algo_key);
CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at);
`

// SQLiteArchive stores snapshots in a single-file SQLite database using the
// pure-Go modernc.org/sqlite driver. Each run is one row: listing columns
// plus the JSON-encoded snapshot.
type SQLiteArchive struct {
	db     *sql.DB
	mu     sync.RWMutex
	closed bool
	path   string
}

// OpenSQLite opens (creating if needed) the archive at path. Use
// ":memory:" for a throwaway database.
func OpenSQLite(ctx context.Context, path string) (*SQLiteArchive, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("OpenSQLite(%s): %w", path, err)
	}
	// SQLite has a single writer; one connection also keeps :memory: alive.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	pragmas := []string{"PRAGMA journal_mode=WAL", "PRAGMA busy_timeout=5000"}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("OpenSQLite(%s): %s: %w", path, p, err)
		}
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("OpenSQLite(%s): create schema: %w", path, err)
	}

	return &SQLiteArchive{db: db, path: path}, nil
}

// Path returns the database location.
func (a *SQLiteArchive) Path() string { return a.path }

func (a *SQLiteArchive) checkOpen() error {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.closed {
		return ErrClosed
	}

	return nil
}

// Save implements Archive.
func (a *SQLiteArchive) Save(ctx context.Context, snap recorder.Snapshot) error {
	if err := a.checkOpen(); err != nil {
		return err
	}
	if snap.RunID == "" {
		return ErrEmptyRunID
	}
	var buf bytes.Buffer
	if err := snap.Encode(&buf); err != nil {
		return fmt.Errorf("Save(%s): %w", snap.RunID, err)
	}

	const q = `
		INSERT INTO runs (run_id, algo_key, source, target, path_found, path_cost, total_steps, created_at, snapshot)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(run_id) DO UPDATE SET
			algo_key = excluded.algo_key,
			source = excluded.source,
			target = excluded.target,
			path_found = excluded.path_found,
			path_cost = excluded.path_cost,
			total_steps = excluded.total_steps,
			created_at = excluded.created_at,
			snapshot = excluded.snapshot
	`
	s := summarize(snap)
	_, err := a.db.ExecContext(ctx, q,
		s.RunID, s.AlgoKey, s.Source, s.Target, s.PathFound, s.PathCost, s.TotalSteps,
		formatTime(s.CreatedAt), buf.String())
	if err != nil {
		return fmt.Errorf("Save(%s): %w", snap.RunID, err)
	}

	return nil
}

// Load implements Archive.
func (a *SQLiteArchive) Load(ctx context.Context, runID string) (recorder.Snapshot, error) {
	if err := a.checkOpen(); err != nil {
		return recorder.Snapshot{}, err
	}

	var doc string
	err := a.db.QueryRowContext(ctx, `SELECT snapshot FROM runs WHERE run_id = ?`, runID).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return recorder.Snapshot{}, fmt.Errorf("Load(%s): %w", runID, ErrNotFound)
	}
	if err != nil {
		return recorder.Snapshot{}, fmt.Errorf("Load(%s): %w", runID, err)
	}

	snap, err := recorder.DecodeSnapshot(strings.NewReader(doc))
	if err != nil {
		return recorder.Snapshot{}, fmt.Errorf("Load(%s): %w", runID, err)
	}

	return snap, nil
}

// List implements Archive. Rows are newest first, ties broken by run ID.
func (a *SQLiteArchive) List(ctx context.Context, f Filter) ([]Summary, error) {
	if err := a.checkOpen(); err != nil {
		return nil, err
	}

	var (
		q    strings.Builder
		args []any
	)
	q.WriteString(`SELECT run_id, algo_key, source, target, path_found, path_cost, total_steps, created_at FROM runs`)
	if f.AlgoKey != "" {
		q.WriteString(` WHERE algo_key = ?`)
		args = append(args, f.AlgoKey)
	}
	q.WriteString(` ORDER BY created_at DESC, run_id ASC`)
	if f.Limit > 0 {
		q.WriteString(` LIMIT ?`)
		args = append(args, f.Limit)
	}

	rows, err := a.db.QueryContext(ctx, q.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer rows.Close()

	out := []Summary{}
	for rows.Next() {
		var (
			s       Summary
			created string
		)
		if err := rows.Scan(&s.RunID, &s.AlgoKey, &s.Source, &s.Target, &s.PathFound, &s.PathCost, &s.TotalSteps, &created); err != nil {
			return nil, fmt.Errorf("List: scan: %w", err)
		}
		if s.CreatedAt, err = time.Parse(time.RFC3339Nano, created); err != nil {
			return nil, fmt.Errorf("List: run %s: created_at: %w", s.RunID, err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}

	return out, nil
}

// Delete implements Archive.
func (a *SQLiteArchive) Delete(ctx context.Context, runID string) error {
	if err := a.checkOpen(); err != nil {
		return err
	}

	res, err := a.db.ExecContext(ctx, `DELETE FROM runs WHERE run_id = ?`, runID)
	if err != nil {
		return fmt.Errorf("Delete(%s): %w", runID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("Delete(%s): %w", runID, err)
	}
	if n == 0 {
		return fmt.Errorf("Delete(%s): %w", runID, ErrNotFound)
	}

	return nil
}

// Close implements Archive. Closing twice is a no-op.
func (a *SQLiteArchive) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closed {
		return nil
	}
	a.closed = true

	return a.db.Close()
}

// formatTime uses a fixed-width UTC layout so that text ordering in
// SQLite matches chronological ordering.
func formatTime(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000000000Z07:00")
}
