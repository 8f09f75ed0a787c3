package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"studio-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "session:snapshot:"

// SessionSnapshotCache decorates the pg snapshot source with a short-TTL
// redis layer. Only catalog reads go through here; the booking transaction
// always loads and locks catalog rows itself.
type SessionSnapshotCache struct {
	source queries.SessionSnapshotSource
	client *redis.Client
	ttl    time.Duration
}

func NewSessionSnapshotCache(source queries.SessionSnapshotSource, client *redis.Client, ttl time.Duration) *SessionSnapshotCache {
	return &SessionSnapshotCache{
		source: source,
		client: client,
		ttl:    ttl,
	}
}

func (c *SessionSnapshotCache) SnapshotByID(ctx context.Context, sessionID uuid.UUID) (*queries.SessionSnapshot, error) {
	key := sessionKeyPrefix + sessionID.String()

	cached, err := c.client.Get(ctx, key).Bytes()
	if err == nil {
		var snap queries.SessionSnapshot
		if err := json.Unmarshal(cached, &snap); err == nil {
			return &snap, nil
		}
		// Corrupt entry: fall through and refresh from the source.
		c.client.Del(ctx, key)
	} else if err != redis.Nil {
		slog.Warn("session cache read failed, falling back to store",
			slog.String("session_id", sessionID.String()),
			slog.String("error", err.Error()),
		)
	}

	snap, err := c.source.SnapshotByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(snap); err == nil {
		if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
			slog.Warn("session cache write failed",
				slog.String("session_id", sessionID.String()),
				slog.String("error", err.Error()),
			)
		}
	}
	return snap, nil
}

// Invalidate drops a session's cached snapshot. Catalog writers call this
// after changing session or class type rows.
func (c *SessionSnapshotCache) Invalidate(ctx context.Context, sessionID uuid.UUID) error {
	return c.client.Del(ctx, sessionKeyPrefix+sessionID.String()).Err()
}
