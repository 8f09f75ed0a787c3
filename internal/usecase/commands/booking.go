package commands

import (
	"context"
	"errors"
	"time"

	"studio-booking/internal/domain/booking"
	"studio-booking/internal/domain/session"
	"studio-booking/internal/infra"
	"studio-booking/internal/infra/db"
	"studio-booking/internal/pkg/clock"
	"studio-booking/internal/pkg/config"
	"studio-booking/internal/pkg/errs"
	"studio-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrSessionNotFound          = errs.New("session not found")
	ErrSessionNotActive         = errs.New("session is not active")
	ErrMembershipInactive       = errs.New("membership is not active")
	ErrAlreadyRegistered        = errs.New("member already registered for session")
	ErrSessionFull              = errs.New("session is full")
	ErrRegistrationClosed       = errs.New("registration window is closed")
	ErrBookingNotFound          = errs.New("booking not found")
	ErrForbidden                = errs.New("booking belongs to another member")
	ErrAlreadyCancelled         = errs.New("booking is already cancelled")
	ErrCancellationWindowClosed = errs.New("cancellation window is closed")
	ErrTransientConflict        = errs.New("transient conflict, retry the request")
	ErrEligibilityCheckFailed   = errs.New("eligibility check failed")
	ErrDatabaseOperationFailed  = errs.New("database operation failed")
)

// BookingResult is what a mutation leaves behind: the record's new state.
type BookingResult struct {
	BookingID uuid.UUID
	SessionID uuid.UUID
	Status    booking.Status
	Position  *int32
}

type BookingCommands interface {
	Register(ctx context.Context, memberID, sessionID uuid.UUID) (*BookingResult, error)
	Cancel(ctx context.Context, memberID, bookingID uuid.UUID) (*BookingResult, error)
}

type bookingCommandsImpl struct {
	sessions    SessionRepository
	bookings    BookingRepository
	eligibility EligibilityChecker
	outbox      OutboxRepository
	db          *pgxpool.Pool
	clock       clock.Clock
	cfg         config.BookingConfig
}

func NewBookingCommands(
	sessions SessionRepository,
	bookings BookingRepository,
	eligibility EligibilityChecker,
	outbox OutboxRepository,
	pool *pgxpool.Pool,
	clk clock.Clock,
	cfg config.BookingConfig,
) BookingCommands {
	return &bookingCommandsImpl{
		sessions:    sessions,
		bookings:    bookings,
		eligibility: eligibility,
		outbox:      outbox,
		db:          pool,
		clock:       clk,
		cfg:         cfg,
	}
}

// Register reserves the next seat or waitlist slot for the member. The
// capacity decision happens while the session row lock is held, so two
// racing calls for the last seat serialize: exactly one wins CONFIRMED.
// Retrying after a transient conflict is idempotent in effect; a retried
// call either finds ALREADY_REGISTERED or succeeds once.
func (c *bookingCommandsImpl) Register(ctx context.Context, memberID, sessionID uuid.UUID) (*BookingResult, error) {
	eligible, err := c.eligibility.IsEligible(ctx, memberID)
	if err != nil {
		return nil, errs.Mark(err, ErrEligibilityCheckFailed)
	}
	if !eligible {
		return nil, ErrMembershipInactive
	}

	// Fail fast before entering the transaction; the gate is re-evaluated
	// on the locked row below.
	sess, err := c.sessions.FindByID(ctx, sessionID)
	if err != nil {
		return nil, mapSessionErr(err)
	}
	if err := c.checkRegistrationWindow(sess); err != nil {
		return nil, err
	}

	result, err := shared.RunInTxWithRetry(ctx, c.db, c.cfg.LockTimeout, c.cfg.MaxTxRetries, func(tx db.DBTX) (*BookingResult, error) {
		return c.reserveSeat(ctx, tx, memberID, sessionID)
	})
	if err != nil {
		return nil, mapTransientErr(err)
	}
	return result, nil
}

func (c *bookingCommandsImpl) reserveSeat(ctx context.Context, tx db.DBTX, memberID, sessionID uuid.UUID) (*BookingResult, error) {
	sess, err := c.sessions.FindByIDForUpdate(ctx, tx, sessionID)
	if err != nil {
		return nil, mapSessionErr(err)
	}
	if err := c.checkRegistrationWindow(sess); err != nil {
		return nil, err
	}

	if existing, err := c.bookings.FindActiveByMemberAndSession(ctx, tx, memberID, sessionID); err != nil {
		if !infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
	} else if existing != nil {
		return nil, ErrAlreadyRegistered
	}

	classType, err := c.sessions.FindClassType(ctx, tx, sess.ClassTypeID())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	now := c.clock.Now()
	confirmed, err := c.bookings.CountConfirmed(ctx, tx, sessionID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	var (
		b   *booking.Booking
		evt booking.Event
	)
	switch {
	case confirmed < sess.Capacity():
		b = booking.NewConfirmed(memberID, sessionID, now)
		evt = booking.NewConfirmedEvent(b, now)
	case classType.AllowWaitlist():
		position, posErr := c.bookings.NextWaitlistPosition(ctx, tx, sessionID)
		if posErr != nil {
			return nil, errs.Mark(posErr, ErrDatabaseOperationFailed)
		}
		b = booking.NewWaitlisted(memberID, sessionID, position, now)
		evt = booking.NewWaitlistedEvent(b, now)
	default:
		return nil, ErrSessionFull
	}

	if err := c.bookings.Insert(ctx, tx, b); err != nil {
		// The partial unique index closes the double-register race the
		// earlier read could not see.
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrAlreadyRegistered
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := c.outbox.Enqueue(ctx, tx, evt); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &BookingResult{
		BookingID: b.ID(),
		SessionID: sessionID,
		Status:    b.Status(),
		Position:  b.Position(),
	}, nil
}

// Cancel releases the member's claim. Releasing a CONFIRMED seat cascades a
// FIFO promotion of the waitlist head inside the same transaction; either
// the whole transition is visible or none of it.
func (c *bookingCommandsImpl) Cancel(ctx context.Context, memberID, bookingID uuid.UUID) (*BookingResult, error) {
	result, err := shared.RunInTxWithRetry(ctx, c.db, c.cfg.LockTimeout, c.cfg.MaxTxRetries, func(tx db.DBTX) (*BookingResult, error) {
		return c.releaseSeat(ctx, tx, memberID, bookingID)
	})
	if err != nil {
		return nil, mapTransientErr(err)
	}
	return result, nil
}

func (c *bookingCommandsImpl) releaseSeat(ctx context.Context, tx db.DBTX, memberID, bookingID uuid.UUID) (*BookingResult, error) {
	b, err := c.bookings.FindByIDForUpdate(ctx, tx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if !b.IsOwnedBy(memberID) {
		return nil, ErrForbidden
	}
	if b.Status() == booking.StatusCancelled {
		return nil, ErrAlreadyCancelled
	}

	// Locking booking first and session second can deadlock against a
	// concurrent cancel whose promotion already holds the session lock
	// and is waiting on a waitlist row. Postgres reports 40P01 and the
	// surrounding retry loop replays the transaction.
	sess, err := c.sessions.FindByIDForUpdate(ctx, tx, b.SessionID())
	if err != nil {
		return nil, mapSessionErr(err)
	}
	classType, err := c.sessions.FindClassType(ctx, tx, sess.ClassTypeID())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	now := c.clock.Now()
	if !session.CanCancelAt(now, sess, classType) {
		if !sess.IsScheduled() {
			return nil, ErrSessionNotActive
		}
		return nil, ErrCancellationWindowClosed
	}

	wasConfirmed := b.Status() == booking.StatusConfirmed

	if err := b.Cancel(now); err != nil {
		if errors.Is(err, booking.ErrAlreadyCancelled) {
			return nil, ErrAlreadyCancelled
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if err := c.bookings.Update(ctx, tx, b); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if err := c.outbox.Enqueue(ctx, tx, booking.NewCancelledEvent(b, now)); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if wasConfirmed && session.CanPromoteAt(now, sess) {
		if err := c.promoteNext(ctx, tx, sess.ID(), now); err != nil {
			return nil, err
		}
	}

	return &BookingResult{
		BookingID: b.ID(),
		SessionID: b.SessionID(),
		Status:    b.Status(),
		Position:  b.Position(),
	}, nil
}

// promoteNext moves the waitlist head (smallest position) into the vacated
// seat. An empty waitlist is not an error; the seat simply stays open.
func (c *bookingCommandsImpl) promoteNext(ctx context.Context, tx db.DBTX, sessionID uuid.UUID, now time.Time) error {
	next, err := c.bookings.FindOldestWaitlisted(ctx, tx, sessionID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := next.Promote(); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if err := c.bookings.Update(ctx, tx, next); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return c.outbox.Enqueue(ctx, tx, booking.NewPromotedEvent(next, now))
}

func (c *bookingCommandsImpl) checkRegistrationWindow(sess *session.Session) error {
	window := session.EvaluateRegistration(c.clock.Now(), sess)
	if window.Open {
		return nil
	}
	if window.Reason == session.ReasonNotScheduled {
		return ErrSessionNotActive
	}
	return ErrRegistrationClosed
}

func mapSessionErr(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return ErrSessionNotFound
	}
	return errs.Mark(err, ErrDatabaseOperationFailed)
}

func mapTransientErr(err error) error {
	if errors.Is(err, shared.ErrMaxRetriesExceeded) {
		return errs.Mark(err, ErrTransientConflict)
	}
	return err
}
