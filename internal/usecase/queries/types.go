package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type BookingView struct {
	ID          uuid.UUID  `json:"id"`
	SessionID   uuid.UUID  `json:"session_id"`
	ClassName   string     `json:"class_name"`
	StartsAt    time.Time  `json:"starts_at"`
	EndsAt      time.Time  `json:"ends_at"`
	Status      string     `json:"status"`
	Position    *int32     `json:"position,omitempty"`
	BookedAt    time.Time  `json:"booked_at"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
}

type AvailabilityView struct {
	SessionID        uuid.UUID `json:"session_id"`
	Capacity         int32     `json:"capacity"`
	ConfirmedCount   int32     `json:"confirmed_count"`
	WaitlistCount    int32     `json:"waitlist_count"`
	RegistrationOpen bool      `json:"registration_open"`
	CloseReason      string    `json:"close_reason,omitempty"`
}

type RosterEntry struct {
	BookingID uuid.UUID `json:"booking_id"`
	MemberID  uuid.UUID `json:"member_id"`
	Status    string    `json:"status"`
	Position  *int32    `json:"position,omitempty"`
	BookedAt  time.Time `json:"booked_at"`
}

type CourseRegistrationView struct {
	ID           uuid.UUID  `json:"id"`
	CourseID     uuid.UUID  `json:"course_id"`
	CourseName   string     `json:"course_name"`
	Status       string     `json:"status"`
	RegisteredAt time.Time  `json:"registered_at"`
	CancelledAt  *time.Time `json:"cancelled_at,omitempty"`
}

// SessionSnapshot is the cacheable catalog projection of a session and its
// class type. Mutating paths never read through this: they load and lock
// catalog rows inside their transaction.
type SessionSnapshot struct {
	ID                   uuid.UUID  `json:"id"`
	ClassTypeID          uuid.UUID  `json:"class_type_id"`
	ClassName            string     `json:"class_name"`
	StartsAt             time.Time  `json:"starts_at"`
	EndsAt               time.Time  `json:"ends_at"`
	Capacity             int32      `json:"capacity"`
	Status               string     `json:"status"`
	RegistrationOpensAt  *time.Time `json:"registration_opens_at,omitempty"`
	RegistrationClosesAt *time.Time `json:"registration_closes_at,omitempty"`
	CutoffHours          int32      `json:"cutoff_hours"`
	AllowWaitlist        bool       `json:"allow_waitlist"`
}

type BookingReadStore interface {
	ListByMember(ctx context.Context, memberID uuid.UUID) ([]*BookingView, error)
	CountBySession(ctx context.Context, sessionID uuid.UUID) (confirmed, waitlisted int32, err error)
	ListRoster(ctx context.Context, sessionID uuid.UUID) ([]*RosterEntry, error)
}

// SessionSnapshotSource is implemented by the pg read store and decorated by
// the redis catalog cache.
type SessionSnapshotSource interface {
	SnapshotByID(ctx context.Context, sessionID uuid.UUID) (*SessionSnapshot, error)
}

type CourseReadStore interface {
	ListRegistrationsByMember(ctx context.Context, memberID uuid.UUID) ([]*CourseRegistrationView, error)
}
