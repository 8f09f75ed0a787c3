package commands

import (
	"context"
	"errors"

	"studio-booking/internal/domain/course"
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
	ErrCourseNotFound       = errs.New("course not found")
	ErrCourseNotActive      = errs.New("course is not active")
	ErrRegistrationNotFound = errs.New("course registration not found")
)

type CourseRegistrationResult struct {
	RegistrationID uuid.UUID
	CourseID       uuid.UUID
	Status         course.RegistrationStatus
}

type CourseCommands interface {
	Register(ctx context.Context, memberID, courseID uuid.UUID) (*CourseRegistrationResult, error)
	Unregister(ctx context.Context, memberID, registrationID uuid.UUID) (*CourseRegistrationResult, error)
}

type courseCommandsImpl struct {
	courses     CourseRepository
	eligibility EligibilityChecker
	db          *pgxpool.Pool
	clock       clock.Clock
	cfg         config.BookingConfig
}

func NewCourseCommands(
	courses CourseRepository,
	eligibility EligibilityChecker,
	pool *pgxpool.Pool,
	clk clock.Clock,
	cfg config.BookingConfig,
) CourseCommands {
	return &courseCommandsImpl{
		courses:     courses,
		eligibility: eligibility,
		db:          pool,
		clock:       clk,
		cfg:         cfg,
	}
}

// Register is the capacity-free sibling of the session path: existence,
// active flag and duplicate checks only. Any number of members may register
// for the same course.
func (c *courseCommandsImpl) Register(ctx context.Context, memberID, courseID uuid.UUID) (*CourseRegistrationResult, error) {
	eligible, err := c.eligibility.IsEligible(ctx, memberID)
	if err != nil {
		return nil, errs.Mark(err, ErrEligibilityCheckFailed)
	}
	if !eligible {
		return nil, ErrMembershipInactive
	}

	result, err := shared.RunInTxWithRetry(ctx, c.db, c.cfg.LockTimeout, c.cfg.MaxTxRetries, func(tx db.DBTX) (*CourseRegistrationResult, error) {
		crs, err := c.courses.FindByID(ctx, tx, courseID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, ErrCourseNotFound
			}
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}

		now := c.clock.Now()
		if !crs.IsActive() || crs.HasEnded(now) {
			return nil, ErrCourseNotActive
		}

		if existing, err := c.courses.FindActiveRegistration(ctx, tx, memberID, courseID); err != nil {
			if !infra.IsKind(err, infra.KindNotFound) {
				return nil, errs.Mark(err, ErrDatabaseOperationFailed)
			}
		} else if existing != nil {
			return nil, ErrAlreadyRegistered
		}

		reg := course.NewRegistration(memberID, courseID, now)
		if err := c.courses.InsertRegistration(ctx, tx, reg); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return nil, ErrAlreadyRegistered
			}
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}

		return &CourseRegistrationResult{
			RegistrationID: reg.ID(),
			CourseID:       courseID,
			Status:         reg.Status(),
		}, nil
	})
	if err != nil {
		return nil, mapTransientErr(err)
	}
	return result, nil
}

func (c *courseCommandsImpl) Unregister(ctx context.Context, memberID, registrationID uuid.UUID) (*CourseRegistrationResult, error) {
	result, err := shared.RunInTxWithRetry(ctx, c.db, c.cfg.LockTimeout, c.cfg.MaxTxRetries, func(tx db.DBTX) (*CourseRegistrationResult, error) {
		reg, err := c.courses.FindRegistrationByIDForUpdate(ctx, tx, registrationID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, ErrRegistrationNotFound
			}
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if !reg.IsOwnedBy(memberID) {
			return nil, ErrForbidden
		}

		if err := reg.Cancel(c.clock.Now()); err != nil {
			if errors.Is(err, course.ErrAlreadyCancelled) {
				return nil, ErrAlreadyCancelled
			}
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if err := c.courses.UpdateRegistration(ctx, tx, reg); err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}

		return &CourseRegistrationResult{
			RegistrationID: reg.ID(),
			CourseID:       reg.CourseID(),
			Status:         reg.Status(),
		}, nil
	})
	if err != nil {
		return nil, mapTransientErr(err)
	}
	return result, nil
}
