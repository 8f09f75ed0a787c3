package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrAlreadyCancelled   = errors.New("booking is already cancelled")
	ErrNotWaitlisted      = errors.New("only waitlisted bookings can be promoted")
	ErrInvalidTransition  = errors.New("invalid booking status transition")
	ErrMissingPosition    = errors.New("waitlisted booking requires a position")
	ErrUnexpectedPosition = errors.New("position is only meaningful when waitlisted")
)

// Booking is a member's claim on a session seat. Records are never deleted;
// cancellation is a status transition preserving the audit trail.
type Booking struct {
	id          uuid.UUID
	memberID    uuid.UUID
	sessionID   uuid.UUID
	status      Status
	position    *int32
	bookedAt    time.Time
	cancelledAt *time.Time
}

func NewConfirmed(memberID, sessionID uuid.UUID, now time.Time) *Booking {
	return &Booking{
		id:        uuid.New(),
		memberID:  memberID,
		sessionID: sessionID,
		status:    StatusConfirmed,
		bookedAt:  now,
	}
}

func NewWaitlisted(memberID, sessionID uuid.UUID, position int32, now time.Time) *Booking {
	return &Booking{
		id:        uuid.New(),
		memberID:  memberID,
		sessionID: sessionID,
		status:    StatusWaitlisted,
		position:  &position,
		bookedAt:  now,
	}
}

func Reconstruct(
	id, memberID, sessionID uuid.UUID,
	status Status,
	position *int32,
	bookedAt time.Time,
	cancelledAt *time.Time,
) (*Booking, error) {
	if !status.IsValid() {
		return nil, ErrInvalidTransition
	}
	if status == StatusWaitlisted && position == nil {
		return nil, ErrMissingPosition
	}
	return &Booking{
		id:          id,
		memberID:    memberID,
		sessionID:   sessionID,
		status:      status,
		position:    position,
		bookedAt:    bookedAt,
		cancelledAt: cancelledAt,
	}, nil
}

// Cancel transitions the cycle to CANCELLED. The waitlist position of the
// record is retained for audit; survivors are never renumbered.
func (b *Booking) Cancel(now time.Time) error {
	if b.status == StatusCancelled {
		return ErrAlreadyCancelled
	}
	if !b.status.CanTransitionTo(StatusCancelled) {
		return ErrInvalidTransition
	}
	b.status = StatusCancelled
	b.cancelledAt = &now
	return nil
}

// Promote moves a waitlisted booking into the vacated confirmed seat.
func (b *Booking) Promote() error {
	if b.status != StatusWaitlisted {
		return ErrNotWaitlisted
	}
	b.status = StatusConfirmed
	b.position = nil
	return nil
}

func (b *Booking) IsOwnedBy(memberID uuid.UUID) bool {
	return b.memberID == memberID
}

func (b *Booking) IsActive() bool {
	return b.status.IsActive()
}

func (b *Booking) ID() uuid.UUID          { return b.id }
func (b *Booking) MemberID() uuid.UUID    { return b.memberID }
func (b *Booking) SessionID() uuid.UUID   { return b.sessionID }
func (b *Booking) Status() Status         { return b.status }
func (b *Booking) Position() *int32       { return b.position }
func (b *Booking) BookedAt() time.Time    { return b.bookedAt }
func (b *Booking) CancelledAt() *time.Time { return b.cancelledAt }
