package repository

import (
	"context"
	"encoding/json"

	"studio-booking/internal/domain/booking"
	"studio-booking/internal/infra"
	"studio-booking/internal/infra/db"

	"github.com/google/uuid"
)

// OutboxEvent is a pending notification row awaiting relay to the broker.
type OutboxEvent struct {
	ID       uuid.UUID
	Topic    string
	Payload  []byte
	Attempts int32
}

// OutboxRepository implements the transactional outbox: events are written
// in the same transaction as the booking mutation, so the notification
// collaborator sees exactly the committed state and nothing else.
type OutboxRepository struct {
	db db.DBTX
}

func NewOutboxRepository(pool db.DBTX) *OutboxRepository {
	return &OutboxRepository{db: pool}
}

func (r *OutboxRepository) Enqueue(ctx context.Context, tx db.DBTX, evt booking.Event) error {
	payload, err := json.Marshal(evt)
	if err != nil {
		return infra.WrapRepoErr("failed to marshal outbox payload", err, infra.KindDBFailure)
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO outbox_events (id, topic, payload, status, attempts, created_at)
		 VALUES ($1, $2, $3, 'pending', 0, $4)`,
		uuid.New(), evt.Topic, payload, evt.OccurredAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to enqueue outbox event", err)
	}
	return nil
}

// FetchPending claims a batch for the relay worker. SKIP LOCKED keeps
// multiple relay instances from publishing the same row twice.
func (r *OutboxRepository) FetchPending(ctx context.Context, tx db.DBTX, limit int) ([]OutboxEvent, error) {
	rows, err := tx.Query(ctx,
		`SELECT id, topic, payload, attempts FROM outbox_events
		 WHERE status = 'pending'
		 ORDER BY created_at
		 LIMIT $1
		 FOR UPDATE SKIP LOCKED`,
		limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to fetch pending outbox events", err)
	}
	defer rows.Close()

	var events []OutboxEvent
	for rows.Next() {
		var evt OutboxEvent
		if err := rows.Scan(&evt.ID, &evt.Topic, &evt.Payload, &evt.Attempts); err != nil {
			return nil, infra.WrapRepoErr("failed to scan outbox event", err)
		}
		events = append(events, evt)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate outbox events", err)
	}
	return events, nil
}

func (r *OutboxRepository) MarkPublished(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	_, err := tx.Exec(ctx,
		`UPDATE outbox_events SET status = 'published', published_at = now() WHERE id = $1`,
		id,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to mark outbox event published", err)
	}
	return nil
}

// MarkFailed bumps the attempt counter; rows past maxAttempts are parked as
// failed so a poison message cannot wedge the relay.
func (r *OutboxRepository) MarkFailed(ctx context.Context, tx db.DBTX, id uuid.UUID, maxAttempts int32) error {
	_, err := tx.Exec(ctx,
		`UPDATE outbox_events
		 SET attempts = attempts + 1,
		     status = CASE WHEN attempts + 1 >= $2 THEN 'failed' ELSE 'pending' END
		 WHERE id = $1`,
		id, maxAttempts,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to mark outbox event failed", err)
	}
	return nil
}
