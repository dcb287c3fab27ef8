package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"backoffice/internal/model"
	"backoffice/internal/pgmq"
	"backoffice/internal/service"

	"github.com/rs/zerolog"
)

// Options configures the snapshot queue consumer.
type Options struct {
	QueueName      string
	PollTimeoutSec int
	MaxMessages    int
	// RetryDelay is the pause after a failed queue read.
	RetryDelay time.Duration
}

// Run consumes snapshot jobs until ctx is cancelled. Every received message is
// deleted once handled: Process records failures on the snapshot row, so a
// redelivery would only be skipped.
func Run(ctx context.Context, logger zerolog.Logger, queue pgmq.Queue, snapshots service.SnapshotService, opts Options) error {
	if opts.MaxMessages < 1 {
		opts.MaxMessages = 1
	}
	if opts.RetryDelay <= 0 {
		opts.RetryDelay = time.Second
	}
	logger = logger.With().Str("orchestrator", "snapshot").Str("queue", opts.QueueName).Logger()
	logger.Info().Msg("Starting snapshot orchestrator")

	for {
		select {
		case <-ctx.Done():
			logger.Info().Msg("Shutting down snapshot orchestrator")
			return nil
		default:
		}

		msgs, err := queue.ReadWithPoll(ctx, opts.QueueName, opts.PollTimeoutSec, opts.MaxMessages)
		if err != nil {
			if ctx.Err() != nil {
				continue
			}
			logger.Error().Err(err).Msg("Error reading snapshot queue")
			select {
			case <-ctx.Done():
			case <-time.After(opts.RetryDelay):
			}
			continue
		}

		for _, msg := range msgs {
			handle(ctx, logger, snapshots, msg)
			if ctx.Err() != nil {
				// Leave the message for redelivery after the visibility timeout.
				break
			}
			if err := queue.Delete(ctx, opts.QueueName, []int64{msg.ID}); err != nil {
				logger.Error().Err(err).Int64("msg_id", msg.ID).Msg("Error deleting snapshot message")
			}
		}
	}
}

func handle(ctx context.Context, logger zerolog.Logger, snapshots service.SnapshotService, msg *pgmq.Message) {
	var job model.SnapshotJob
	if err := json.Unmarshal(msg.Data, &job); err != nil || job.SnapshotID == "" {
		logger.Error().Err(err).Int64("msg_id", msg.ID).Str("payload", string(msg.Data)).Msg("Discarding malformed snapshot job")
		return
	}

	logger.Info().Int64("msg_id", msg.ID).Int("read_ct", msg.ReadCt).Str("snapshot_id", job.SnapshotID).Msg("Received snapshot job")
	if err := snapshots.Process(ctx, job); err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		logger.Error().Err(err).Str("snapshot_id", job.SnapshotID).Msg("Snapshot job failed")
	}
}
