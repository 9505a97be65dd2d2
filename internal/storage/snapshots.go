package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Veraticus/slate/internal/model"
	"github.com/google/uuid"
)

// SaveRun stores a run with its buckets in one transaction.
// An empty run ID is filled with a new UUID and a zero CreatedAt with the current time.
func (s *SQLiteStorage) SaveRun(ctx context.Context, run *model.Run, buckets []model.Bucket) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateRun(run); err != nil {
		return err
	}
	if err := validateBuckets(buckets); err != nil {
		return err
	}

	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `
		INSERT INTO runs (id, guess, input_path, created_at, total, patterns, subtrees)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, run.ID, run.Guess, run.InputPath, run.CreatedAt, run.Total, run.Patterns, run.Subtrees); err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO buckets (run_id, kind, key, count, example)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare bucket insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, b := range buckets {
		if _, err = stmt.ExecContext(ctx, run.ID, string(b.Kind), b.Key, b.Count, b.Example); err != nil {
			return fmt.Errorf("failed to insert %s bucket %s: %w", b.Kind, b.Key, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit run: %w", err)
	}
	return nil
}

// ListRuns returns every saved run, newest first.
func (s *SQLiteStorage) ListRuns(ctx context.Context) ([]model.Run, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, guess, input_path, created_at, total, patterns, subtrees
		FROM runs
		ORDER BY created_at DESC, id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var runs []model.Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, *run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate runs: %w", err)
	}
	return runs, nil
}

// GetRun returns one run by id, or ErrRunNotFound.
func (s *SQLiteStorage) GetRun(ctx context.Context, id string) (*model.Run, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT id, guess, input_path, created_at, total, patterns, subtrees
		FROM runs
		WHERE id = ?
	`, id)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}
	return run, err
}

// GetBuckets returns the buckets of kind saved with a run, ordered by key.
func (s *SQLiteStorage) GetBuckets(ctx context.Context, runID string, kind model.BucketKind) ([]model.Bucket, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(runID, "runID"); err != nil {
		return nil, err
	}
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: kind %q", ErrInvalidBucket, kind)
	}

	return s.getBucketsTx(ctx, s.db, runID, kind)
}

func (s *SQLiteStorage) getBucketsTx(ctx context.Context, q queryable, runID string, kind model.BucketKind) ([]model.Bucket, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT run_id, kind, key, count, example
		FROM buckets
		WHERE run_id = ? AND kind = ?
		ORDER BY key
	`, runID, string(kind))
	if err != nil {
		return nil, fmt.Errorf("failed to query buckets: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var buckets []model.Bucket
	for rows.Next() {
		var (
			b    model.Bucket
			kind string
		)
		if err := rows.Scan(&b.RunID, &kind, &b.Key, &b.Count, &b.Example); err != nil {
			return nil, fmt.Errorf("failed to scan bucket: %w", err)
		}
		b.Kind = model.BucketKind(kind)
		buckets = append(buckets, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate buckets: %w", err)
	}
	return buckets, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (*model.Run, error) {
	var run model.Run
	err := row.Scan(
		&run.ID,
		&run.Guess,
		&run.InputPath,
		&run.CreatedAt,
		&run.Total,
		&run.Patterns,
		&run.Subtrees,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan run: %w", err)
	}
	return &run, nil
}
