package main

import (
	"context"
	"fmt"
	"time"

	"backoffice/internal/config"
	"backoffice/internal/orchestrator/snapshot"
	"backoffice/internal/pgmq"
	"backoffice/internal/pubsub"
	"backoffice/internal/repository"
	"backoffice/internal/service"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

func runSnapshot(ctx context.Context, cfg *config.Config, pool *pgxpool.Pool, queue *pgmq.Client, logger zerolog.Logger) error {
	if !cfg.SnapshotsEnabled() {
		return fmt.Errorf("snapshot mode requires S3_URL, S3_ACCESS_KEY and S3_SECRET_KEY")
	}

	dashOpts, err := service.DashboardOptionsFromConfig(cfg)
	if err != nil {
		return err
	}
	store, err := service.NewS3ObjectStoreFromConfig(ctx, cfg)
	if err != nil {
		return err
	}

	var publisher pubsub.Publisher
	if cfg.GCPProjectID != "" {
		p, err := pubsub.NewPublisher(ctx, cfg)
		if err != nil {
			logger.Warn().Err(err).Msg("Pub/Sub publisher unavailable; snapshot events will not be published")
		} else {
			defer p.Close()
			publisher = p
		}
	}

	dashboardSvc := service.NewDashboardService(
		repository.NewDashboardRepo(pool),
		repository.NewCategoryRepo(pool),
		dashOpts,
		logger,
	)
	snapshotSvc := service.NewSnapshotService(
		repository.NewSnapshotRepo(pool),
		dashboardSvc,
		queue,
		store,
		publisher,
		service.SnapshotOptions{
			QueueName: cfg.SnapshotQueueName,
			Topic:     cfg.SnapshotTopic,
			URLExpiry: time.Duration(cfg.SnapshotURLExpiryMin) * time.Minute,
		},
		logger,
	)

	return snapshot.Run(ctx, logger, queue, snapshotSvc, snapshot.Options{
		QueueName:      cfg.SnapshotQueueName,
		PollTimeoutSec: cfg.SnapshotPollTimeoutSec,
		MaxMessages:    cfg.SnapshotPollMaxMsg,
	})
}
