package outbox

import (
	"context"
	"log/slog"
	"time"

	"studio-booking/internal/infra/db"
	"studio-booking/internal/infra/repository"
	"studio-booking/internal/pkg/config"
	"studio-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// EventStore is the slice of the outbox repository the relay needs.
type EventStore interface {
	FetchPending(ctx context.Context, tx db.DBTX, limit int) ([]repository.OutboxEvent, error)
	MarkPublished(ctx context.Context, tx db.DBTX, id uuid.UUID) error
	MarkFailed(ctx context.Context, tx db.DBTX, id uuid.UUID, maxAttempts int32) error
}

type EventPublisher interface {
	Publish(ctx context.Context, topic string, payload []byte) error
}

// Relay drains pending outbox rows to the broker on a fixed interval. Each
// tick claims a batch with SKIP LOCKED, publishes row by row, and records
// the outcome inside the same transaction.
type Relay struct {
	store     EventStore
	publisher EventPublisher
	pool      *pgxpool.Pool
	cfg       config.BookingConfig
	done      chan struct{}
	stopped   chan struct{}
}

func NewRelay(store EventStore, publisher EventPublisher, pool *pgxpool.Pool, cfg config.BookingConfig) *Relay {
	return &Relay{
		store:     store,
		publisher: publisher,
		pool:      pool,
		cfg:       cfg,
		done:      make(chan struct{}),
		stopped:   make(chan struct{}),
	}
}

func (r *Relay) Start(ctx context.Context) {
	go r.run(ctx)
}

func (r *Relay) Stop(ctx context.Context) error {
	close(r.done)
	select {
	case <-r.stopped:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *Relay) run(ctx context.Context) {
	defer close(r.stopped)

	ticker := time.NewTicker(r.cfg.OutboxPoll)
	defer ticker.Stop()

	for {
		select {
		case <-r.done:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := r.drainOnce(ctx); err != nil {
				slog.Error("outbox relay tick failed", slog.String("error", err.Error()))
			}
		}
	}
}

func (r *Relay) drainOnce(ctx context.Context) error {
	published, err := shared.RunInTx(ctx, r.pool, r.cfg.LockTimeout, func(tx db.DBTX) (int, error) {
		events, err := r.store.FetchPending(ctx, tx, r.cfg.OutboxBatch)
		if err != nil {
			return 0, err
		}

		count := 0
		for _, evt := range events {
			if err := r.publisher.Publish(ctx, evt.Topic, evt.Payload); err != nil {
				slog.Warn("failed to publish outbox event",
					slog.String("event_id", evt.ID.String()),
					slog.String("topic", evt.Topic),
					slog.Int("attempts", int(evt.Attempts)),
					slog.String("error", err.Error()),
				)
				if err := r.store.MarkFailed(ctx, tx, evt.ID, r.cfg.OutboxRetries); err != nil {
					return count, err
				}
				continue
			}
			if err := r.store.MarkPublished(ctx, tx, evt.ID); err != nil {
				return count, err
			}
			count++
		}
		return count, nil
	})
	if err != nil {
		return err
	}
	if published > 0 {
		slog.Debug("outbox relay published events", slog.Int("count", published))
	}
	return nil
}
