// Package storage persists the audit log of dispatch runs.
package storage

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/sevigo/slash-dispatch/internal/core"
)

const defaultListLimit = 50

// Store defines the interface for all database operations.
type Store interface {
	RecordRun(ctx context.Context, run *core.DispatchRun) error
	ListRuns(ctx context.Context, limit int) ([]*core.DispatchRun, error)
}

type postgresStore struct {
	db *sqlx.DB
}

// NewStore creates a Store backed by Postgres.
func NewStore(db *sqlx.DB) Store {
	return &postgresStore{db: db}
}

// RecordRun inserts a finished run and sets its ID.
func (s *postgresStore) RecordRun(ctx context.Context, run *core.DispatchRun) error {
	query := `
		INSERT INTO dispatch_runs
			(request_id, command, target_repository, source_repository, actor, dispatch_type, target, ref, state, error, started_at, finished_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`

	err := s.db.QueryRowxContext(ctx, query,
		run.RequestID, run.Command, run.TargetRepository, run.SourceRepository, run.Actor, run.DispatchType,
		run.Target, run.Ref, string(run.State), run.Error, run.StartedAt, run.FinishedAt,
	).Scan(&run.ID)
	if err != nil {
		return fmt.Errorf("failed to record dispatch run: %w", err)
	}
	return nil
}

// ListRuns returns the most recent runs, newest first.
func (s *postgresStore) ListRuns(ctx context.Context, limit int) ([]*core.DispatchRun, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	query := `
		SELECT id, request_id, command, target_repository, source_repository, actor, dispatch_type, target, ref, state, error, started_at, finished_at
		FROM dispatch_runs
		ORDER BY started_at DESC
		LIMIT $1`

	var runs []*core.DispatchRun
	if err := s.db.SelectContext(ctx, &runs, query, limit); err != nil {
		return nil, fmt.Errorf("failed to list dispatch runs: %w", err)
	}
	return runs, nil
}

// NopStore discards runs. It is used when no database is configured.
type NopStore struct{}

// RecordRun implements Store.
func (NopStore) RecordRun(context.Context, *core.DispatchRun) error { return nil }

// ListRuns implements Store.
func (NopStore) ListRuns(context.Context, int) ([]*core.DispatchRun, error) { return nil, nil }
