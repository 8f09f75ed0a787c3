//go:build unit || e2e

package builder

import (
	"time"

	"studio-booking/internal/domain/booking"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	id          uuid.UUID
	memberID    uuid.UUID
	sessionID   uuid.UUID
	status      booking.Status
	position    *int32
	bookedAt    time.Time
	cancelledAt *time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		id:        uuid.New(),
		memberID:  uuid.New(),
		sessionID: uuid.New(),
		status:    booking.StatusConfirmed,
		bookedAt:  time.Date(2026, 5, 20, 9, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) WithID(id uuid.UUID) *BookingBuilder {
	b.id = id
	return b
}

func (b *BookingBuilder) WithMemberID(id uuid.UUID) *BookingBuilder {
	b.memberID = id
	return b
}

func (b *BookingBuilder) WithSessionID(id uuid.UUID) *BookingBuilder {
	b.sessionID = id
	return b
}

func (b *BookingBuilder) WithStatus(status booking.Status) *BookingBuilder {
	b.status = status
	return b
}

func (b *BookingBuilder) WithPosition(position int32) *BookingBuilder {
	b.position = &position
	return b
}

func (b *BookingBuilder) Waitlisted(position int32) *BookingBuilder {
	b.status = booking.StatusWaitlisted
	b.position = &position
	return b
}

func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	return booking.Reconstruct(
		b.id, b.memberID, b.sessionID,
		b.status, b.position, b.bookedAt, b.cancelledAt,
	)
}

func (b *BookingBuilder) MustBuild() *booking.Booking {
	bk, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return bk
}
