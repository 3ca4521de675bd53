// Package storage provides SQLite-based persistence for probe runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// ErrRunNotFound is returned when a run ID does not exist.
var ErrRunNotFound = errors.New("storage: run not found")

func init() {
	// modernc registers as "sqlite", which sqlx does not know for named queries
	sqlx.BindDriver("sqlite", sqlx.QUESTION)
}

// Store manages the SQLite database connection for run history.
type Store struct {
	db *sqlx.DB
	// now is replaced in tests.
	now func() time.Time
}

// RunKey identifies what a run evaluated.
type RunKey struct {
	SceneID string
	// SceneHash is the scene's fingerprint at the time of the run.
	SceneHash string
	ProbeID   string
}

// Run is one probe evaluated against one scene.
type Run struct {
	ID          string `db:"id"`
	SceneID     string `db:"scene_id"`
	SceneHash   string `db:"scene_hash"`
	ProbeID     string `db:"probe_id"`
	Hits        int    `db:"hits"`
	Total       int    `db:"total"`
	CreatedUnix int64  `db:"created_at"`
}

// CreatedAt returns when the run was recorded.
func (r Run) CreatedAt() time.Time {
	return time.Unix(0, r.CreatedUnix)
}

// ResultRow is a single stored probe result. Side and Kind are empty when
// the probe did not report them; the coordinates are then zero.
type ResultRow struct {
	RunID   string  `db:"run_id"`
	Subject string  `db:"subject"`
	Target  string  `db:"target"`
	Hit     bool    `db:"hit"`
	Side    string  `db:"side"`
	Kind    string  `db:"kind"`
	X1      float64 `db:"x1"`
	Y1      float64 `db:"y1"`
	X2      float64 `db:"x2"`
	Y2      float64 `db:"y2"`
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sqlx.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db, now: time.Now}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			scene_id TEXT NOT NULL,
			scene_hash TEXT NOT NULL DEFAULT '',
			probe_id TEXT NOT NULL,
			hits INTEGER NOT NULL DEFAULT 0,
			total INTEGER NOT NULL DEFAULT 0,
			created_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_runs_scene ON runs(scene_id, created_at DESC);

		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
			subject TEXT NOT NULL,
			target TEXT NOT NULL,
			hit INTEGER NOT NULL,
			side TEXT NOT NULL DEFAULT '',
			kind TEXT NOT NULL DEFAULT '',
			x1 REAL NOT NULL DEFAULT 0,
			y1 REAL NOT NULL DEFAULT 0,
			x2 REAL NOT NULL DEFAULT 0,
			y2 REAL NOT NULL DEFAULT 0
		);
		CREATE INDEX IF NOT EXISTS idx_results_run ON results(run_id);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a run and its results in one transaction.
func (s *Store) SaveRun(key RunKey, rows []ResultRow) (Run, error) {
	run := Run{
		ID:          uuid.NewString(),
		SceneID:     key.SceneID,
		SceneHash:   key.SceneHash,
		ProbeID:     key.ProbeID,
		Total:       len(rows),
		CreatedUnix: s.now().UnixNano(),
	}
	for _, r := range rows {
		if r.Hit {
			run.Hits++
		}
	}

	tx, err := s.db.Beginx()
	if err != nil {
		return Run{}, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // No-op after Commit

	if _, err := tx.NamedExec(
		`INSERT INTO runs (id, scene_id, scene_hash, probe_id, hits, total, created_at)
		 VALUES (:id, :scene_id, :scene_hash, :probe_id, :hits, :total, :created_at)`,
		run,
	); err != nil {
		return Run{}, fmt.Errorf("storage: cannot save run: %w", err)
	}

	for _, r := range rows {
		r.RunID = run.ID
		if _, err := tx.NamedExec(
			`INSERT INTO results (run_id, subject, target, hit, side, kind, x1, y1, x2, y2)
			 VALUES (:run_id, :subject, :target, :hit, :side, :kind, :x1, :y1, :x2, :y2)`,
			r,
		); err != nil {
			return Run{}, fmt.Errorf("storage: cannot save result: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return Run{}, fmt.Errorf("storage: cannot commit run: %w", err)
	}
	return run, nil
}

// RecentRuns retrieves the most recent runs, optionally limited to one scene.
func (s *Store) RecentRuns(sceneID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	var runs []Run
	var err error
	if sceneID == "" {
		err = s.db.Select(&runs,
			`SELECT id, scene_id, scene_hash, probe_id, hits, total, created_at
			 FROM runs
			 ORDER BY created_at DESC
			 LIMIT ?`,
			limit,
		)
	} else {
		err = s.db.Select(&runs,
			`SELECT id, scene_id, scene_hash, probe_id, hits, total, created_at
			 FROM runs
			 WHERE scene_id = ?
			 ORDER BY created_at DESC
			 LIMIT ?`,
			sceneID, limit,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	return runs, nil
}

// RunByID retrieves a single run.
func (s *Store) RunByID(id string) (Run, error) {
	var run Run
	err := s.db.Get(&run,
		`SELECT id, scene_id, scene_hash, probe_id, hits, total, created_at FROM runs WHERE id = ?`,
		id,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}
	if err != nil {
		return Run{}, fmt.Errorf("storage: cannot query run: %w", err)
	}
	return run, nil
}

// RunResults retrieves the stored results of a run in insertion order.
func (s *Store) RunResults(runID string) ([]ResultRow, error) {
	var rows []ResultRow
	err := s.db.Select(&rows,
		`SELECT run_id, subject, target, hit, side, kind, x1, y1, x2, y2
		 FROM results
		 WHERE run_id = ?
		 ORDER BY id`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	return rows, nil
}

// ClearRuns deletes the runs of a scene, or every run if sceneID is empty.
// Returns the number of runs removed.
func (s *Store) ClearRuns(sceneID string) (int64, error) {
	tx, err := s.db.Beginx()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // No-op after Commit

	where, args := "", []any{}
	if sceneID != "" {
		where, args = " WHERE scene_id = ?", []any{sceneID}
	}

	if _, err := tx.Exec(
		`DELETE FROM results WHERE run_id IN (SELECT id FROM runs`+where+`)`, args...,
	); err != nil {
		return 0, fmt.Errorf("storage: cannot clear results: %w", err)
	}
	res, err := tx.Exec(`DELETE FROM runs`+where, args...)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count cleared runs: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit clear: %w", err)
	}
	return n, nil
}
