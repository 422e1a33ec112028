package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"topoconvert/internal/repository"

	_ "modernc.org/sqlite"
)

// Repository implements repository.Repository using SQLite
type Repository struct {
	db *sql.DB
}

// New creates a new SQLite run history repository
func New(dbPath string) (*Repository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	repo := &Repository{db: db}
	if err := repo.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return repo, nil
}

func (r *Repository) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		source TEXT NOT NULL,
		name TEXT NOT NULL,
		nodes INTEGER NOT NULL DEFAULT 0,
		links INTEGER NOT NULL DEFAULT 0,
		warnings JSON NOT NULL DEFAULT '[]',
		created_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at);
	`

	_, err := r.db.Exec(schema)
	return err
}

// RecordRun persists a completed conversion run
func (r *Repository) RecordRun(ctx context.Context, run *repository.Run) error {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}

	warnings, err := json.Marshal(run.Warnings)
	if err != nil {
		return fmt.Errorf("failed to marshal warnings: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO runs (id, source, name, nodes, links, warnings, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.Source, run.Name, run.Nodes, run.Links, string(warnings), run.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}

	return nil
}

// GetRun fetches a single run by id
func (r *Repository) GetRun(ctx context.Context, id string) (*repository.Run, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, source, name, nodes, links, warnings, created_at
		FROM runs WHERE id = ?`, id)

	run, err := scanRun(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("run not found: %s", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}

	return run, nil
}

// ListRuns returns the most recent runs, newest first
func (r *Repository) ListRuns(ctx context.Context, limit int) ([]*repository.Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, source, name, nodes, links, warnings, created_at
		FROM runs ORDER BY created_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []*repository.Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, run)
	}

	return runs, rows.Err()
}

// Close releases database resources
func (r *Repository) Close() error {
	return r.db.Close()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (*repository.Run, error) {
	var run repository.Run
	var warnings string

	if err := row.Scan(&run.ID, &run.Source, &run.Name, &run.Nodes, &run.Links, &warnings, &run.CreatedAt); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(warnings), &run.Warnings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal warnings: %w", err)
	}

	return &run, nil
}
