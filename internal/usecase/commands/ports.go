package commands

import (
	"context"

	"studio-booking/internal/domain/booking"
	"studio-booking/internal/domain/course"
	"studio-booking/internal/domain/session"
	"studio-booking/internal/infra/db"

	"github.com/google/uuid"
)

// Catalog rows are owned by the admin collaborator; the core only reads
// them. FindByIDForUpdate is the per-session serialization point.
type SessionRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*session.Session, error)
	FindByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*session.Session, error)
	FindClassType(ctx context.Context, q db.DBTX, id uuid.UUID) (*session.ClassType, error)
}

type BookingRepository interface {
	FindByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*booking.Booking, error)
	FindActiveByMemberAndSession(ctx context.Context, q db.DBTX, memberID, sessionID uuid.UUID) (*booking.Booking, error)
	CountConfirmed(ctx context.Context, q db.DBTX, sessionID uuid.UUID) (int32, error)
	NextWaitlistPosition(ctx context.Context, q db.DBTX, sessionID uuid.UUID) (int32, error)
	FindOldestWaitlisted(ctx context.Context, tx db.DBTX, sessionID uuid.UUID) (*booking.Booking, error)
	Insert(ctx context.Context, tx db.DBTX, b *booking.Booking) error
	Update(ctx context.Context, tx db.DBTX, b *booking.Booking) error
}

type CourseRepository interface {
	FindByID(ctx context.Context, q db.DBTX, id uuid.UUID) (*course.Course, error)
	FindRegistrationByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*course.Registration, error)
	FindActiveRegistration(ctx context.Context, q db.DBTX, memberID, courseID uuid.UUID) (*course.Registration, error)
	InsertRegistration(ctx context.Context, tx db.DBTX, reg *course.Registration) error
	UpdateRegistration(ctx context.Context, tx db.DBTX, reg *course.Registration) error
}

// EligibilityChecker fronts the billing collaborator's membership state.
type EligibilityChecker interface {
	IsEligible(ctx context.Context, memberID uuid.UUID) (bool, error)
}

type OutboxRepository interface {
	Enqueue(ctx context.Context, tx db.DBTX, evt booking.Event) error
}
