package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"backoffice/internal/api/v1/dto"
	"backoffice/internal/model"
	"backoffice/internal/pgmq"
	"backoffice/internal/pubsub"
	"backoffice/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var (
	ErrSnapshotNotFound  = errors.New("snapshot not found")
	ErrSnapshotsDisabled = errors.New("snapshot export is not configured")
)

// snapshotEventPrefix prefixes the event attribute of snapshot notifications,
// e.g. "dashboard.snapshot.completed".
const snapshotEventPrefix = "dashboard.snapshot."

// SnapshotOptions configures snapshot export.
type SnapshotOptions struct {
	QueueName string
	Topic     string
	URLExpiry time.Duration
}

// SnapshotService requests, builds, and serves dashboard snapshots.
type SnapshotService interface {
	// Request records a queued snapshot and enqueues the build job.
	Request(ctx context.Context, requestedBy string) (*model.Snapshot, error)
	// Get returns the snapshot and, when it is completed, a presigned download URL.
	Get(ctx context.Context, id string) (*model.Snapshot, string, error)
	// Process builds the dashboard for a queued snapshot and stores it.
	Process(ctx context.Context, job model.SnapshotJob) error
}

type snapshotService struct {
	repo      repository.SnapshotRepository
	dashboard DashboardService
	queue     pgmq.Queue
	store     ObjectStore
	publisher pubsub.Publisher
	opts      SnapshotOptions
	now       func() time.Time
	logger    zerolog.Logger
}

// NewSnapshotService creates a new SnapshotService. publisher may be nil, in
// which case no completion events are sent.
func NewSnapshotService(
	repo repository.SnapshotRepository,
	dashboard DashboardService,
	queue pgmq.Queue,
	store ObjectStore,
	publisher pubsub.Publisher,
	opts SnapshotOptions,
	logger zerolog.Logger,
) SnapshotService {
	if opts.URLExpiry <= 0 {
		opts.URLExpiry = 15 * time.Minute
	}
	return &snapshotService{
		repo:      repo,
		dashboard: dashboard,
		queue:     queue,
		store:     store,
		publisher: publisher,
		opts:      opts,
		now:       time.Now,
		logger:    logger.With().Str("service", "SnapshotService").Logger(),
	}
}

func snapshotKey(id string) string {
	return "snapshots/" + id + ".json"
}

func (s *snapshotService) Request(ctx context.Context, requestedBy string) (*model.Snapshot, error) {
	if s.store == nil || s.queue == nil {
		return nil, ErrSnapshotsDisabled
	}

	id := uuid.NewString()
	snap := &model.Snapshot{
		ID:          id,
		Status:      model.SnapshotQueued,
		RequestedBy: requestedBy,
		StorageKey:  snapshotKey(id),
	}
	if err := s.repo.Create(ctx, snap); err != nil {
		return nil, err
	}

	payload, err := json.Marshal(model.SnapshotJob{SnapshotID: id})
	if err != nil {
		return nil, fmt.Errorf("encoding snapshot job: %w", err)
	}
	msgID, err := s.queue.Send(ctx, s.opts.QueueName, payload)
	if err != nil {
		if markErr := s.repo.MarkFailed(ctx, id, "enqueue failed"); markErr != nil {
			s.logger.Error().Err(markErr).Str("snapshot_id", id).Msg("Failed to mark snapshot failed after enqueue error")
		}
		return nil, fmt.Errorf("enqueueing snapshot %s: %w", id, err)
	}

	s.logger.Info().Str("snapshot_id", id).Int64("msg_id", msgID).Str("requested_by", requestedBy).Msg("Snapshot queued")
	return snap, nil
}

func (s *snapshotService) Get(ctx context.Context, id string) (*model.Snapshot, string, error) {
	snap, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, "", err
	}
	if snap == nil {
		return nil, "", ErrSnapshotNotFound
	}
	if snap.Status != model.SnapshotCompleted || s.store == nil {
		return snap, "", nil
	}

	url, err := s.store.PresignGet(ctx, snap.StorageKey, s.opts.URLExpiry)
	if err != nil {
		return nil, "", err
	}
	return snap, url, nil
}

func (s *snapshotService) Process(ctx context.Context, job model.SnapshotJob) error {
	if s.store == nil {
		return ErrSnapshotsDisabled
	}
	snap, err := s.repo.GetByID(ctx, job.SnapshotID)
	if err != nil {
		return err
	}
	if snap == nil {
		return fmt.Errorf("processing snapshot %s: %w", job.SnapshotID, ErrSnapshotNotFound)
	}
	if snap.Status != model.SnapshotQueued {
		s.logger.Info().Str("snapshot_id", snap.ID).Str("status", snap.Status).Msg("Snapshot already processed, skipping")
		return nil
	}

	if err := s.export(ctx, snap); err != nil {
		if markErr := s.repo.MarkFailed(ctx, snap.ID, err.Error()); markErr != nil {
			s.logger.Error().Err(markErr).Str("snapshot_id", snap.ID).Msg("Failed to mark snapshot failed")
		}
		s.notify(ctx, snap, model.SnapshotFailed)
		return err
	}

	if err := s.repo.MarkCompleted(ctx, snap.ID); err != nil {
		return err
	}
	s.notify(ctx, snap, model.SnapshotCompleted)
	s.logger.Info().Str("snapshot_id", snap.ID).Str("storage_key", snap.StorageKey).Msg("Snapshot completed")
	return nil
}

func (s *snapshotService) export(ctx context.Context, snap *model.Snapshot) error {
	dashboard, err := s.dashboard.Build(ctx)
	if err != nil {
		return err
	}
	body, err := json.Marshal(dto.NewDashboardDTO(dashboard, s.now()))
	if err != nil {
		return fmt.Errorf("encoding snapshot %s: %w", snap.ID, err)
	}
	return s.store.Put(ctx, snap.StorageKey, body, "application/json")
}

// notify publishes a terminal-status event. Publishing is best effort: the
// snapshot row is already the source of truth.
func (s *snapshotService) notify(ctx context.Context, snap *model.Snapshot, status string) {
	if s.publisher == nil || s.opts.Topic == "" {
		return
	}
	payload, err := json.Marshal(model.SnapshotEvent{SnapshotID: snap.ID, Status: status, StorageKey: snap.StorageKey})
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to encode snapshot event")
		return
	}
	attrs := map[string]string{"event": snapshotEventPrefix + status, "status": status}
	if _, err := s.publisher.Publish(ctx, s.opts.Topic, payload, attrs); err != nil {
		s.logger.Error().Err(err).Str("snapshot_id", snap.ID).Msg("Failed to publish snapshot event")
	}
}
