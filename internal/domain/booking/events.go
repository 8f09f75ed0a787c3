package booking

import (
	"time"

	"github.com/google/uuid"
)

// Topics consumed by the notification collaborator. Events are written to
// the outbox inside the booking transaction and delivered asynchronously;
// delivery failure never rolls the booking back.
const (
	TopicConfirmed  = "booking.confirmed"
	TopicWaitlisted = "booking.waitlisted"
	TopicCancelled  = "booking.cancelled"
	TopicPromoted   = "booking.promoted"
)

type Event struct {
	Topic      string    `json:"topic"`
	BookingID  uuid.UUID `json:"booking_id"`
	MemberID   uuid.UUID `json:"member_id"`
	SessionID  uuid.UUID `json:"session_id"`
	Position   *int32    `json:"position,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

func NewConfirmedEvent(b *Booking, now time.Time) Event {
	return newEvent(TopicConfirmed, b, now)
}

func NewWaitlistedEvent(b *Booking, now time.Time) Event {
	return newEvent(TopicWaitlisted, b, now)
}

func NewCancelledEvent(b *Booking, now time.Time) Event {
	return newEvent(TopicCancelled, b, now)
}

func NewPromotedEvent(b *Booking, now time.Time) Event {
	return newEvent(TopicPromoted, b, now)
}

func newEvent(topic string, b *Booking, now time.Time) Event {
	return Event{
		Topic:      topic,
		BookingID:  b.id,
		MemberID:   b.memberID,
		SessionID:  b.sessionID,
		Position:   b.position,
		OccurredAt: now,
	}
}
