package course

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrAlreadyCancelled = errors.New("course registration is already cancelled")

// Registration mirrors the CONFIRMED/CANCELLED subset of the booking state
// machine: unique per (member, course) while registered, never deleted.
type Registration struct {
	id           uuid.UUID
	memberID     uuid.UUID
	courseID     uuid.UUID
	status       RegistrationStatus
	registeredAt time.Time
	cancelledAt  *time.Time
}

func NewRegistration(memberID, courseID uuid.UUID, now time.Time) *Registration {
	return &Registration{
		id:           uuid.New(),
		memberID:     memberID,
		courseID:     courseID,
		status:       StatusRegistered,
		registeredAt: now,
	}
}

func ReconstructRegistration(
	id, memberID, courseID uuid.UUID,
	status RegistrationStatus,
	registeredAt time.Time,
	cancelledAt *time.Time,
) *Registration {
	return &Registration{
		id:           id,
		memberID:     memberID,
		courseID:     courseID,
		status:       status,
		registeredAt: registeredAt,
		cancelledAt:  cancelledAt,
	}
}

func (r *Registration) Cancel(now time.Time) error {
	if r.status == StatusCancelled {
		return ErrAlreadyCancelled
	}
	r.status = StatusCancelled
	r.cancelledAt = &now
	return nil
}

func (r *Registration) IsOwnedBy(memberID uuid.UUID) bool {
	return r.memberID == memberID
}

func (r *Registration) IsRegistered() bool {
	return r.status == StatusRegistered
}

func (r *Registration) ID() uuid.UUID           { return r.id }
func (r *Registration) MemberID() uuid.UUID     { return r.memberID }
func (r *Registration) CourseID() uuid.UUID     { return r.courseID }
func (r *Registration) Status() RegistrationStatus { return r.status }
func (r *Registration) RegisteredAt() time.Time { return r.registeredAt }
func (r *Registration) CancelledAt() *time.Time { return r.cancelledAt }
