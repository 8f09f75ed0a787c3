package repository

import (
	"context"
	"time"

	"studio-booking/internal/domain/session"
	"studio-booking/internal/infra"
	"studio-booking/internal/infra/db"

	"github.com/google/uuid"
)

const sessionColumns = `id, class_type_id, starts_at, ends_at, capacity, status, registration_opens_at, registration_closes_at`

// SessionRepository reads catalog rows owned by the admin collaborator.
// FindByIDForUpdate is the serialization point of the capacity ledger: every
// seat mutation for a session happens while holding its row lock.
type SessionRepository struct {
	db db.DBTX
}

func NewSessionRepository(pool db.DBTX) *SessionRepository {
	return &SessionRepository{db: pool}
}

func (r *SessionRepository) FindByID(ctx context.Context, id uuid.UUID) (*session.Session, error) {
	return r.scanSession(ctx, r.db, `SELECT `+sessionColumns+` FROM sessions WHERE id = $1`, id)
}

func (r *SessionRepository) FindByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*session.Session, error) {
	return r.scanSession(ctx, tx, `SELECT `+sessionColumns+` FROM sessions WHERE id = $1 FOR UPDATE`, id)
}

func (r *SessionRepository) FindClassType(ctx context.Context, q db.DBTX, id uuid.UUID) (*session.ClassType, error) {
	var (
		ctID          uuid.UUID
		name          string
		cutoffHours   int32
		allowWaitlist bool
	)
	err := q.QueryRow(ctx,
		`SELECT id, name, cancellation_cutoff_hours, allow_waitlist FROM class_types WHERE id = $1`,
		id,
	).Scan(&ctID, &name, &cutoffHours, &allowWaitlist)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find class type", err)
	}

	ct, err := session.NewClassType(ctID, name, cutoffHours, allowWaitlist)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid class type row", err, infra.KindDBFailure)
	}
	return ct, nil
}

func (r *SessionRepository) scanSession(ctx context.Context, q db.DBTX, query string, id uuid.UUID) (*session.Session, error) {
	var (
		sID, classTypeID  uuid.UUID
		startsAt, endsAt  time.Time
		capacity          int32
		status            string
		opensAt, closesAt *time.Time
	)
	err := q.QueryRow(ctx, query, id).Scan(
		&sID, &classTypeID, &startsAt, &endsAt, &capacity, &status, &opensAt, &closesAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find session", err)
	}

	s, err := session.NewSession(sID, classTypeID, startsAt, endsAt, capacity, session.Status(status), opensAt, closesAt)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid session row", err, infra.KindDBFailure)
	}
	return s, nil
}
