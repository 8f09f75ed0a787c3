package repository

import (
	"context"
	"time"

	"studio-booking/internal/domain/course"
	"studio-booking/internal/infra"
	"studio-booking/internal/infra/db"

	"github.com/jackc/pgx/v5"
	"github.com/google/uuid"
)

const registrationColumns = `id, member_id, course_id, status, registered_at, cancelled_at`

type CourseRepository struct {
	db db.DBTX
}

func NewCourseRepository(pool db.DBTX) *CourseRepository {
	return &CourseRepository{db: pool}
}

func (r *CourseRepository) FindByID(ctx context.Context, q db.DBTX, id uuid.UUID) (*course.Course, error) {
	var (
		cID              uuid.UUID
		name             string
		startsOn, endsOn time.Time
		active           bool
	)
	err := q.QueryRow(ctx,
		`SELECT id, name, starts_on, ends_on, active FROM courses WHERE id = $1`,
		id,
	).Scan(&cID, &name, &startsOn, &endsOn, &active)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find course", err)
	}

	c, err := course.NewCourse(cID, name, startsOn, endsOn, active)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid course row", err, infra.KindDBFailure)
	}
	return c, nil
}

func (r *CourseRepository) FindRegistrationByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*course.Registration, error) {
	row := tx.QueryRow(ctx,
		`SELECT `+registrationColumns+` FROM course_registrations WHERE id = $1 FOR UPDATE`, id)
	return scanRegistration(row, "failed to find course registration")
}

func (r *CourseRepository) FindActiveRegistration(ctx context.Context, q db.DBTX, memberID, courseID uuid.UUID) (*course.Registration, error) {
	row := q.QueryRow(ctx,
		`SELECT `+registrationColumns+` FROM course_registrations
		 WHERE member_id = $1 AND course_id = $2 AND status = $3`,
		memberID, courseID, course.StatusRegistered.String(),
	)
	return scanRegistration(row, "failed to find active course registration")
}

func (r *CourseRepository) InsertRegistration(ctx context.Context, tx db.DBTX, reg *course.Registration) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO course_registrations (`+registrationColumns+`) VALUES ($1, $2, $3, $4, $5, $6)`,
		reg.ID(), reg.MemberID(), reg.CourseID(), reg.Status().String(), reg.RegisteredAt(), reg.CancelledAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert course registration", err)
	}
	return nil
}

func (r *CourseRepository) UpdateRegistration(ctx context.Context, tx db.DBTX, reg *course.Registration) error {
	tag, err := tx.Exec(ctx,
		`UPDATE course_registrations SET status = $2, cancelled_at = $3 WHERE id = $1`,
		reg.ID(), reg.Status().String(), reg.CancelledAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update course registration", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("course registration not found on update", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func scanRegistration(row pgx.Row, msg string) (*course.Registration, error) {
	var (
		id, memberID, courseID uuid.UUID
		status                 string
		registeredAt           time.Time
		cancelledAt            *time.Time
	)
	if err := row.Scan(&id, &memberID, &courseID, &status, &registeredAt, &cancelledAt); err != nil {
		return nil, infra.WrapRepoErr(msg, err)
	}
	return course.ReconstructRegistration(id, memberID, courseID, course.RegistrationStatus(status), registeredAt, cancelledAt), nil
}
