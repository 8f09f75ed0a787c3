package queries

import (
	"context"

	"studio-booking/internal/domain/session"
	"studio-booking/internal/infra"
	"studio-booking/internal/pkg/clock"
	"studio-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrSessionNotFound = errs.New("session not found")

type BookingQueries interface {
	ListMyBookings(ctx context.Context, memberID uuid.UUID) ([]*BookingView, error)
	GetSessionAvailability(ctx context.Context, sessionID uuid.UUID) (*AvailabilityView, error)
	GetRoster(ctx context.Context, sessionID uuid.UUID) ([]*RosterEntry, error)
}

type bookingQueriesImpl struct {
	bookings  BookingReadStore
	snapshots SessionSnapshotSource
	clock     clock.Clock
}

func NewBookingQueries(bookings BookingReadStore, snapshots SessionSnapshotSource, clk clock.Clock) BookingQueries {
	return &bookingQueriesImpl{
		bookings:  bookings,
		snapshots: snapshots,
		clock:     clk,
	}
}

func (q *bookingQueriesImpl) ListMyBookings(ctx context.Context, memberID uuid.UUID) ([]*BookingView, error) {
	return q.bookings.ListByMember(ctx, memberID)
}

// GetSessionAvailability surfaces the same verdict the registration gate
// computes: window evaluation is re-run fresh against the clock, and the
// capacity dimension comes straight from the ledger counts.
func (q *bookingQueriesImpl) GetSessionAvailability(ctx context.Context, sessionID uuid.UUID) (*AvailabilityView, error) {
	snap, err := q.snapshots.SnapshotByID(ctx, sessionID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	confirmed, waitlisted, err := q.bookings.CountBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	sess, err := session.NewSession(
		snap.ID, snap.ClassTypeID, snap.StartsAt, snap.EndsAt,
		snap.Capacity, session.Status(snap.Status),
		snap.RegistrationOpensAt, snap.RegistrationClosesAt,
	)
	if err != nil {
		return nil, errs.Wrap(err, "invalid session snapshot")
	}

	window := session.EvaluateRegistration(q.clock.Now(), sess)

	view := &AvailabilityView{
		SessionID:        sessionID,
		Capacity:         snap.Capacity,
		ConfirmedCount:   confirmed,
		WaitlistCount:    waitlisted,
		RegistrationOpen: window.Open,
		CloseReason:      string(window.Reason),
	}

	// The window may be open while every seat is taken; without a waitlist
	// that still means registration cannot succeed.
	if window.Open && confirmed >= snap.Capacity && !snap.AllowWaitlist {
		view.RegistrationOpen = false
		view.CloseReason = "SESSION_FULL"
	}

	return view, nil
}

func (q *bookingQueriesImpl) GetRoster(ctx context.Context, sessionID uuid.UUID) ([]*RosterEntry, error) {
	if _, err := q.snapshots.SnapshotByID(ctx, sessionID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return q.bookings.ListRoster(ctx, sessionID)
}
