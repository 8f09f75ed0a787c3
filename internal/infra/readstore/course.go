package readstore

import (
	"context"

	"studio-booking/internal/infra"
	"studio-booking/internal/infra/db"
	"studio-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type CourseReadStore struct {
	db db.DBTX
}

func NewCourseReadStore(pool db.DBTX) *CourseReadStore {
	return &CourseReadStore{db: pool}
}

func (s *CourseReadStore) ListRegistrationsByMember(ctx context.Context, memberID uuid.UUID) ([]*queries.CourseRegistrationView, error) {
	rows, err := s.db.Query(ctx,
		`SELECT r.id, r.course_id, c.name, r.status, r.registered_at, r.cancelled_at
		 FROM course_registrations r
		 JOIN courses c ON c.id = r.course_id
		 WHERE r.member_id = $1
		 ORDER BY r.registered_at DESC`,
		memberID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list course registrations", err)
	}
	defer rows.Close()

	var views []*queries.CourseRegistrationView
	for rows.Next() {
		var v queries.CourseRegistrationView
		if err := rows.Scan(&v.ID, &v.CourseID, &v.CourseName, &v.Status, &v.RegisteredAt, &v.CancelledAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan course registration view", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate course registration views", err)
	}
	return views, nil
}
