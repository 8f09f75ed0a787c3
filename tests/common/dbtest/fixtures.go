//go:build unit || e2e

package dbtest

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ResetDB truncates all mutable state between subtests. Order does not
// matter with CASCADE.
func ResetDB(pool *pgxpool.Pool) error {
	_, err := pool.Exec(context.Background(),
		`TRUNCATE bookings, course_registrations, outbox_events,
		          sessions, class_types, courses, memberships CASCADE`)
	return err
}

func InsertClassType(pool *pgxpool.Pool, id uuid.UUID, name string, cutoffHours int32, allowWaitlist bool) error {
	_, err := pool.Exec(context.Background(),
		`INSERT INTO class_types (id, name, cancellation_cutoff_hours, allow_waitlist)
		 VALUES ($1, $2, $3, $4)`,
		id, name, cutoffHours, allowWaitlist)
	return err
}

func InsertSession(pool *pgxpool.Pool, id, classTypeID uuid.UUID, startsAt time.Time, capacity int32, status string) error {
	_, err := pool.Exec(context.Background(),
		`INSERT INTO sessions (id, class_type_id, starts_at, ends_at, capacity, status)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		id, classTypeID, startsAt, startsAt.Add(time.Hour), capacity, status)
	return err
}

func InsertMembership(pool *pgxpool.Pool, memberID uuid.UUID, status string) error {
	_, err := pool.Exec(context.Background(),
		`INSERT INTO memberships (member_id, status) VALUES ($1, $2)
		 ON CONFLICT (member_id) DO UPDATE SET status = EXCLUDED.status`,
		memberID, status)
	return err
}

func InsertCourse(pool *pgxpool.Pool, id uuid.UUID, name string, startsOn, endsOn time.Time, active bool) error {
	_, err := pool.Exec(context.Background(),
		`INSERT INTO courses (id, name, starts_on, ends_on, active)
		 VALUES ($1, $2, $3, $4, $5)`,
		id, name, startsOn, endsOn, active)
	return err
}

func CountOutboxEvents(pool *pgxpool.Pool, topic string) (int, error) {
	var count int
	err := pool.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM outbox_events WHERE topic = $1`, topic).Scan(&count)
	return count, err
}
