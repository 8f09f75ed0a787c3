package readstore

import (
	"context"
	"time"

	"studio-booking/internal/domain/booking"
	"studio-booking/internal/infra"
	"studio-booking/internal/infra/db"
	"studio-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(pool db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: pool}
}

func (s *BookingReadStore) ListByMember(ctx context.Context, memberID uuid.UUID) ([]*queries.BookingView, error) {
	rows, err := s.db.Query(ctx,
		`SELECT b.id, b.session_id, ct.name, se.starts_at, se.ends_at, b.status, b.position, b.booked_at, b.cancelled_at
		 FROM bookings b
		 JOIN sessions se ON se.id = b.session_id
		 JOIN class_types ct ON ct.id = se.class_type_id
		 WHERE b.member_id = $1
		 ORDER BY b.booked_at DESC`,
		memberID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by member", err)
	}
	defer rows.Close()

	var views []*queries.BookingView
	for rows.Next() {
		var v queries.BookingView
		if err := rows.Scan(&v.ID, &v.SessionID, &v.ClassName, &v.StartsAt, &v.EndsAt, &v.Status, &v.Position, &v.BookedAt, &v.CancelledAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking view", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking views", err)
	}
	return views, nil
}

func (s *BookingReadStore) CountBySession(ctx context.Context, sessionID uuid.UUID) (int32, int32, error) {
	var confirmed, waitlisted int32
	err := s.db.QueryRow(ctx,
		`SELECT
			COUNT(*) FILTER (WHERE status = $2),
			COUNT(*) FILTER (WHERE status = $3)
		 FROM bookings WHERE session_id = $1`,
		sessionID, booking.StatusConfirmed.String(), booking.StatusWaitlisted.String(),
	).Scan(&confirmed, &waitlisted)
	if err != nil {
		return 0, 0, infra.WrapRepoErr("failed to count bookings by session", err)
	}
	return confirmed, waitlisted, nil
}

// ListRoster returns active claims for instructors: confirmed first, then
// the waitlist in promotion order.
func (s *BookingReadStore) ListRoster(ctx context.Context, sessionID uuid.UUID) ([]*queries.RosterEntry, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, member_id, status, position, booked_at
		 FROM bookings
		 WHERE session_id = $1 AND status <> $2
		 ORDER BY status, position NULLS FIRST, booked_at`,
		sessionID, booking.StatusCancelled.String(),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list session roster", err)
	}
	defer rows.Close()

	var entries []*queries.RosterEntry
	for rows.Next() {
		var e queries.RosterEntry
		if err := rows.Scan(&e.BookingID, &e.MemberID, &e.Status, &e.Position, &e.BookedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan roster entry", err)
		}
		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate roster entries", err)
	}
	return entries, nil
}

type SessionSnapshotStore struct {
	db db.DBTX
}

func NewSessionSnapshotStore(pool db.DBTX) *SessionSnapshotStore {
	return &SessionSnapshotStore{db: pool}
}

func (s *SessionSnapshotStore) SnapshotByID(ctx context.Context, sessionID uuid.UUID) (*queries.SessionSnapshot, error) {
	var (
		snap              queries.SessionSnapshot
		opensAt, closesAt *time.Time
	)
	err := s.db.QueryRow(ctx,
		`SELECT se.id, se.class_type_id, ct.name, se.starts_at, se.ends_at, se.capacity, se.status,
		        se.registration_opens_at, se.registration_closes_at, ct.cancellation_cutoff_hours, ct.allow_waitlist
		 FROM sessions se
		 JOIN class_types ct ON ct.id = se.class_type_id
		 WHERE se.id = $1`,
		sessionID,
	).Scan(
		&snap.ID, &snap.ClassTypeID, &snap.ClassName, &snap.StartsAt, &snap.EndsAt,
		&snap.Capacity, &snap.Status, &opensAt, &closesAt, &snap.CutoffHours, &snap.AllowWaitlist,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load session snapshot", err)
	}

	snap.RegistrationOpensAt = opensAt
	snap.RegistrationClosesAt = closesAt
	return &snap, nil
}
