//go:build unit || e2e

package builder

import (
	"time"

	"studio-booking/internal/domain/session"

	"github.com/google/uuid"
)

// SessionBuilder produces a valid scheduled session one week out with ten
// seats unless a test overrides it.
type SessionBuilder struct {
	id                   uuid.UUID
	classTypeID          uuid.UUID
	startsAt             time.Time
	endsAt               time.Time
	capacity             int32
	status               session.Status
	registrationOpensAt  *time.Time
	registrationClosesAt *time.Time
}

func NewSessionBuilder() *SessionBuilder {
	startsAt := time.Date(2026, 6, 1, 18, 0, 0, 0, time.UTC)
	return &SessionBuilder{
		id:          uuid.New(),
		classTypeID: uuid.New(),
		startsAt:    startsAt,
		endsAt:      startsAt.Add(time.Hour),
		capacity:    10,
		status:      session.StatusScheduled,
	}
}

func (b *SessionBuilder) WithID(id uuid.UUID) *SessionBuilder {
	b.id = id
	return b
}

func (b *SessionBuilder) WithClassTypeID(id uuid.UUID) *SessionBuilder {
	b.classTypeID = id
	return b
}

func (b *SessionBuilder) WithStartsAt(t time.Time) *SessionBuilder {
	b.startsAt = t
	b.endsAt = t.Add(time.Hour)
	return b
}

func (b *SessionBuilder) WithCapacity(capacity int32) *SessionBuilder {
	b.capacity = capacity
	return b
}

func (b *SessionBuilder) WithStatus(status session.Status) *SessionBuilder {
	b.status = status
	return b
}

func (b *SessionBuilder) WithRegistrationOpensAt(t time.Time) *SessionBuilder {
	b.registrationOpensAt = &t
	return b
}

func (b *SessionBuilder) WithRegistrationClosesAt(t time.Time) *SessionBuilder {
	b.registrationClosesAt = &t
	return b
}

func (b *SessionBuilder) BuildDomain() (*session.Session, error) {
	return session.NewSession(
		b.id, b.classTypeID, b.startsAt, b.endsAt,
		b.capacity, b.status,
		b.registrationOpensAt, b.registrationClosesAt,
	)
}

func (b *SessionBuilder) MustBuild() *session.Session {
	s, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return s
}

type ClassTypeBuilder struct {
	id            uuid.UUID
	name          string
	cutoffHours   int32
	allowWaitlist bool
}

func NewClassTypeBuilder() *ClassTypeBuilder {
	return &ClassTypeBuilder{
		id:            uuid.New(),
		name:          "Vinyasa Yoga",
		cutoffHours:   24,
		allowWaitlist: true,
	}
}

func (b *ClassTypeBuilder) WithCutoffHours(h int32) *ClassTypeBuilder {
	b.cutoffHours = h
	return b
}

func (b *ClassTypeBuilder) WithAllowWaitlist(allow bool) *ClassTypeBuilder {
	b.allowWaitlist = allow
	return b
}

func (b *ClassTypeBuilder) BuildDomain() (*session.ClassType, error) {
	return session.NewClassType(b.id, b.name, b.cutoffHours, b.allowWaitlist)
}

func (b *ClassTypeBuilder) MustBuild() *session.ClassType {
	ct, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return ct
}
