package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/vislab-robotics/boxed-cli/internal/core/domain"
	"github.com/vislab-robotics/boxed-cli/internal/core/ports/driven"
)

// importStateStore implements driven.ImportStateStore.
type importStateStore struct {
	store *Store
}

var _ driven.ImportStateStore = (*importStateStore)(nil)

// SaveRun stores or updates an import run.
func (s *importStateStore) SaveRun(ctx context.Context, run domain.ImportRun) error {
	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO import_runs (id, root, started_at, completed_at, scenes, objects, errors)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			completed_at = excluded.completed_at,
			scenes = excluded.scenes,
			objects = excluded.objects,
			errors = excluded.errors
	`, run.ID, run.Root, run.StartedAt, nullTime(run.CompletedAt),
		run.Scenes, run.Objects, run.Errors)
	if err != nil {
		return fmt.Errorf("saving import run: %w", err)
	}
	return nil
}

// LatestRun returns the most recently started run.
func (s *importStateStore) LatestRun(ctx context.Context) (*domain.ImportRun, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, root, started_at, completed_at, scenes, objects, errors
		FROM import_runs ORDER BY started_at DESC LIMIT 1
	`)

	run, err := scanRun(row)
	if err != nil {
		return nil, err
	}
	return run, nil
}

// ListRuns returns all runs, most recent first.
func (s *importStateStore) ListRuns(ctx context.Context) ([]domain.ImportRun, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, root, started_at, completed_at, scenes, objects, errors
		FROM import_runs ORDER BY started_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("querying import runs: %w", err)
	}
	defer rows.Close()

	var runs []domain.ImportRun //nolint:prealloc // size unknown from query
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, *run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating import runs: %w", err)
	}
	return runs, nil
}

func scanRun(row rowScanner) (*domain.ImportRun, error) {
	var run domain.ImportRun
	var completedAt sql.NullTime
	err := row.Scan(&run.ID, &run.Root, &run.StartedAt, &completedAt,
		&run.Scenes, &run.Objects, &run.Errors)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning import run: %w", err)
	}
	if completedAt.Valid {
		run.CompletedAt = completedAt.Time
	}
	return &run, nil
}

// nullTime maps the zero time to SQL NULL.
func nullTime(t time.Time) sql.NullTime {
	if t.IsZero() {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t, Valid: true}
}
