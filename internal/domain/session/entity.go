package session

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidCapacity = errors.New("capacity must be at least 1")
	ErrInvalidTimeSlot = errors.New("end time must be after start time")
	ErrInvalidStatus   = errors.New("invalid session status")
)

// Session is one scheduled occurrence of a class. The catalog collaborator
// owns these rows; the booking core only reads them.
type Session struct {
	id                   uuid.UUID
	classTypeID          uuid.UUID
	startsAt             time.Time
	endsAt               time.Time
	capacity             int32
	status               Status
	registrationOpensAt  *time.Time
	registrationClosesAt *time.Time
}

func NewSession(
	id, classTypeID uuid.UUID,
	startsAt, endsAt time.Time,
	capacity int32,
	status Status,
	registrationOpensAt, registrationClosesAt *time.Time,
) (*Session, error) {
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}
	if !endsAt.After(startsAt) {
		return nil, ErrInvalidTimeSlot
	}
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}

	return &Session{
		id:                   id,
		classTypeID:          classTypeID,
		startsAt:             startsAt,
		endsAt:               endsAt,
		capacity:             capacity,
		status:               status,
		registrationOpensAt:  registrationOpensAt,
		registrationClosesAt: registrationClosesAt,
	}, nil
}

func (s *Session) ID() uuid.UUID                    { return s.id }
func (s *Session) ClassTypeID() uuid.UUID           { return s.classTypeID }
func (s *Session) StartsAt() time.Time              { return s.startsAt }
func (s *Session) EndsAt() time.Time                { return s.endsAt }
func (s *Session) Capacity() int32                  { return s.capacity }
func (s *Session) Status() Status                   { return s.status }
func (s *Session) RegistrationOpensAt() *time.Time  { return s.registrationOpensAt }
func (s *Session) RegistrationClosesAt() *time.Time { return s.registrationClosesAt }

func (s *Session) IsScheduled() bool {
	return s.status == StatusScheduled
}

func (s *Session) HasStarted(now time.Time) bool {
	return !now.Before(s.startsAt)
}
