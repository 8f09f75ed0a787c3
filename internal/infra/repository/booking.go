package repository

import (
	"context"
	"time"

	"studio-booking/internal/domain/booking"
	"studio-booking/internal/infra"
	"studio-booking/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const bookingColumns = `id, member_id, session_id, status, position, booked_at, cancelled_at`

// BookingRepository is the write side of the capacity ledger. Counting and
// inserting always happen inside the caller's transaction while the session
// row lock is held, so two racing reserves for the last seat serialize; the
// partial unique index on (member_id, session_id) for non-cancelled rows
// backstops double-register races with a DUPLICATE_KEY error.
type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(pool db.DBTX) *BookingRepository {
	return &BookingRepository{db: pool}
}

func (r *BookingRepository) FindByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*booking.Booking, error) {
	row := tx.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1 FOR UPDATE`, id)
	return scanBooking(row, "failed to find booking")
}

func (r *BookingRepository) FindActiveByMemberAndSession(ctx context.Context, q db.DBTX, memberID, sessionID uuid.UUID) (*booking.Booking, error) {
	row := q.QueryRow(ctx,
		`SELECT `+bookingColumns+` FROM bookings WHERE member_id = $1 AND session_id = $2 AND status <> $3`,
		memberID, sessionID, booking.StatusCancelled.String(),
	)
	return scanBooking(row, "failed to find active booking")
}

func (r *BookingRepository) CountConfirmed(ctx context.Context, q db.DBTX, sessionID uuid.UUID) (int32, error) {
	var count int32
	err := q.QueryRow(ctx,
		`SELECT COUNT(*) FROM bookings WHERE session_id = $1 AND status = $2`,
		sessionID, booking.StatusConfirmed.String(),
	).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count confirmed bookings", err)
	}
	return count, nil
}

// NextWaitlistPosition spans all rows ever given a position, cancelled ones
// included, so a position is never reused within a session.
func (r *BookingRepository) NextWaitlistPosition(ctx context.Context, q db.DBTX, sessionID uuid.UUID) (int32, error) {
	var next int32
	err := q.QueryRow(ctx,
		`SELECT COALESCE(MAX(position), 0) + 1 FROM bookings WHERE session_id = $1 AND position IS NOT NULL`,
		sessionID,
	).Scan(&next)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to compute next waitlist position", err)
	}
	return next, nil
}

// FindOldestWaitlisted returns the FIFO head of the session's waitlist.
func (r *BookingRepository) FindOldestWaitlisted(ctx context.Context, tx db.DBTX, sessionID uuid.UUID) (*booking.Booking, error) {
	row := tx.QueryRow(ctx,
		`SELECT `+bookingColumns+` FROM bookings
		 WHERE session_id = $1 AND status = $2
		 ORDER BY position ASC
		 LIMIT 1
		 FOR UPDATE`,
		sessionID, booking.StatusWaitlisted.String(),
	)
	return scanBooking(row, "failed to find oldest waitlisted booking")
}

func (r *BookingRepository) Insert(ctx context.Context, tx db.DBTX, b *booking.Booking) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO bookings (`+bookingColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		b.ID(), b.MemberID(), b.SessionID(), b.Status().String(), b.Position(), b.BookedAt(), b.CancelledAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert booking", err)
	}
	return nil
}

func (r *BookingRepository) Update(ctx context.Context, tx db.DBTX, b *booking.Booking) error {
	tag, err := tx.Exec(ctx,
		`UPDATE bookings SET status = $2, position = $3, cancelled_at = $4 WHERE id = $1`,
		b.ID(), b.Status().String(), b.Position(), b.CancelledAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found on update", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func scanBooking(row pgx.Row, msg string) (*booking.Booking, error) {
	var (
		id, memberID, sessionID uuid.UUID
		status                  string
		position                *int32
		bookedAt                time.Time
		cancelledAt             *time.Time
	)
	if err := row.Scan(&id, &memberID, &sessionID, &status, &position, &bookedAt, &cancelledAt); err != nil {
		return nil, infra.WrapRepoErr(msg, err)
	}

	b, err := booking.Reconstruct(id, memberID, sessionID, booking.Status(status), position, bookedAt, cancelledAt)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid booking row", err, infra.KindDBFailure)
	}
	return b, nil
}
