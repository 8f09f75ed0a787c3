package response

import (
	"time"

	"studio-booking/internal/usecase/commands"
	"studio-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID        uuid.UUID `json:"id"`
	SessionID uuid.UUID `json:"sessionId"`
	Status    string    `json:"status"`
	Position  *int32    `json:"position,omitempty"`
}

type BookingListResponse struct {
	ID          uuid.UUID  `json:"id"`
	SessionID   uuid.UUID  `json:"sessionId"`
	ClassName   string     `json:"className"`
	StartsAt    time.Time  `json:"startsAt"`
	EndsAt      time.Time  `json:"endsAt"`
	Status      string     `json:"status"`
	Position    *int32     `json:"position,omitempty"`
	BookedAt    time.Time  `json:"bookedAt"`
	CancelledAt *time.Time `json:"cancelledAt,omitempty"`
}

type AvailabilityResponse struct {
	SessionID        uuid.UUID `json:"sessionId"`
	Capacity         int32     `json:"capacity"`
	ConfirmedCount   int32     `json:"confirmedCount"`
	WaitlistCount    int32     `json:"waitlistCount"`
	RegistrationOpen bool      `json:"registrationOpen"`
	CloseReason      string    `json:"closeReason,omitempty"`
}

type RosterEntryResponse struct {
	BookingID uuid.UUID `json:"bookingId"`
	MemberID  uuid.UUID `json:"memberId"`
	Status    string    `json:"status"`
	Position  *int32    `json:"position,omitempty"`
	BookedAt  time.Time `json:"bookedAt"`
}

func FromBookingResult(r *commands.BookingResult) *BookingResponse {
	return &BookingResponse{
		ID:        r.BookingID,
		SessionID: r.SessionID,
		Status:    r.Status.String(),
		Position:  r.Position,
	}
}

func FromBookingView(v *queries.BookingView) *BookingListResponse {
	return &BookingListResponse{
		ID:          v.ID,
		SessionID:   v.SessionID,
		ClassName:   v.ClassName,
		StartsAt:    v.StartsAt,
		EndsAt:      v.EndsAt,
		Status:      v.Status,
		Position:    v.Position,
		BookedAt:    v.BookedAt,
		CancelledAt: v.CancelledAt,
	}
}

func FromAvailabilityView(v *queries.AvailabilityView) *AvailabilityResponse {
	return &AvailabilityResponse{
		SessionID:        v.SessionID,
		Capacity:         v.Capacity,
		ConfirmedCount:   v.ConfirmedCount,
		WaitlistCount:    v.WaitlistCount,
		RegistrationOpen: v.RegistrationOpen,
		CloseReason:      v.CloseReason,
	}
}

func FromRosterEntry(e *queries.RosterEntry) *RosterEntryResponse {
	return &RosterEntryResponse{
		BookingID: e.BookingID,
		MemberID:  e.MemberID,
		Status:    e.Status,
		Position:  e.Position,
		BookedAt:  e.BookedAt,
	}
}
