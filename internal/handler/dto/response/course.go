package response

import (
	"time"

	"studio-booking/internal/usecase/commands"
	"studio-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type CourseRegistrationResponse struct {
	ID       uuid.UUID `json:"id"`
	CourseID uuid.UUID `json:"courseId"`
	Status   string    `json:"status"`
}

type CourseRegistrationListResponse struct {
	ID           uuid.UUID  `json:"id"`
	CourseID     uuid.UUID  `json:"courseId"`
	CourseName   string     `json:"courseName"`
	Status       string     `json:"status"`
	RegisteredAt time.Time  `json:"registeredAt"`
	CancelledAt  *time.Time `json:"cancelledAt,omitempty"`
}

func FromCourseRegistrationResult(r *commands.CourseRegistrationResult) *CourseRegistrationResponse {
	return &CourseRegistrationResponse{
		ID:       r.RegistrationID,
		CourseID: r.CourseID,
		Status:   r.Status.String(),
	}
}

func FromCourseRegistrationView(v *queries.CourseRegistrationView) *CourseRegistrationListResponse {
	return &CourseRegistrationListResponse{
		ID:           v.ID,
		CourseID:     v.CourseID,
		CourseName:   v.CourseName,
		Status:       v.Status,
		RegisteredAt: v.RegisteredAt,
		CancelledAt:  v.CancelledAt,
	}
}
