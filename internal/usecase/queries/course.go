package queries

import (
	"context"

	"github.com/google/uuid"
)

type CourseQueries interface {
	ListMyRegistrations(ctx context.Context, memberID uuid.UUID) ([]*CourseRegistrationView, error)
}

type courseQueriesImpl struct {
	courses CourseReadStore
}

func NewCourseQueries(courses CourseReadStore) CourseQueries {
	return &courseQueriesImpl{courses: courses}
}

func (q *courseQueriesImpl) ListMyRegistrations(ctx context.Context, memberID uuid.UUID) ([]*CourseRegistrationView, error) {
	return q.courses.ListRegistrationsByMember(ctx, memberID)
}
