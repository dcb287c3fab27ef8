package repository

import (
	"context"
	"errors"
	"fmt"

	"backoffice/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SnapshotRepository persists dashboard snapshot records.
type SnapshotRepository interface {
	Create(ctx context.Context, s *model.Snapshot) error
	// GetByID returns nil, nil when no snapshot has the given ID.
	GetByID(ctx context.Context, id string) (*model.Snapshot, error)
	MarkCompleted(ctx context.Context, id string) error
	MarkFailed(ctx context.Context, id string, reason string) error
}

type snapshotRepo struct {
	pool *pgxpool.Pool
}

// NewSnapshotRepo creates a new SnapshotRepository.
func NewSnapshotRepo(pool *pgxpool.Pool) SnapshotRepository {
	return &snapshotRepo{pool: pool}
}

func (r *snapshotRepo) Create(ctx context.Context, s *model.Snapshot) error {
	const q = `
		INSERT INTO dashboard_snapshots (id, status, requested_by, storage_key)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`
	if err := r.pool.QueryRow(ctx, q, s.ID, s.Status, s.RequestedBy, s.StorageKey).Scan(&s.CreatedAt); err != nil {
		return fmt.Errorf("creating snapshot %s: %w", s.ID, err)
	}
	return nil
}

func (r *snapshotRepo) GetByID(ctx context.Context, id string) (*model.Snapshot, error) {
	const q = `
		SELECT id::text, status, requested_by, storage_key, error, created_at, completed_at
		FROM dashboard_snapshots
		WHERE id = $1
	`
	var s model.Snapshot
	err := r.pool.QueryRow(ctx, q, id).Scan(
		&s.ID,
		&s.Status,
		&s.RequestedBy,
		&s.StorageKey,
		&s.Error,
		&s.CreatedAt,
		&s.CompletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("getting snapshot %s: %w", id, err)
	}
	return &s, nil
}

func (r *snapshotRepo) MarkCompleted(ctx context.Context, id string) error {
	const q = `
		UPDATE dashboard_snapshots
		SET status = $2, error = NULL, completed_at = now()
		WHERE id = $1
	`
	if _, err := r.pool.Exec(ctx, q, id, model.SnapshotCompleted); err != nil {
		return fmt.Errorf("completing snapshot %s: %w", id, err)
	}
	return nil
}

func (r *snapshotRepo) MarkFailed(ctx context.Context, id string, reason string) error {
	const q = `
		UPDATE dashboard_snapshots
		SET status = $2, error = $3, completed_at = now()
		WHERE id = $1
	`
	if _, err := r.pool.Exec(ctx, q, id, model.SnapshotFailed, reason); err != nil {
		return fmt.Errorf("failing snapshot %s: %w", id, err)
	}
	return nil
}
