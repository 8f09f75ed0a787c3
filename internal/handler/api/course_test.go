//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"studio-booking/internal/domain/course"
	"studio-booking/internal/domain/member"
	"studio-booking/internal/handler/api"
	"studio-booking/internal/usecase/commands"
	"studio-booking/internal/usecase/queries"
	"studio-booking/tests/common/httptest"
	commandsmock "studio-booking/tests/mock/commands"
	queriesmock "studio-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CourseHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCourseCommands
	mockQueries  *queriesmock.MockCourseQueries
	handler      *api.CourseHandler
	memberID     uuid.UUID
}

func (s *CourseHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCourseCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCourseQueries(s.mockCtrl)
	s.handler = api.NewCourseHandler(s.mockCommands, s.mockQueries)
	s.memberID = uuid.New()

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("member_id", s.memberID)
		c.Set("member_role", member.RoleMember)
		c.Next()
	}

	s.router.POST("/courses/:id/registrations", authMiddleware, s.handler.Register)
	s.router.DELETE("/courses/registrations/:id", authMiddleware, s.handler.Unregister)
	s.router.GET("/courses/registrations", authMiddleware, s.handler.ListMyRegistrations)
}

func (s *CourseHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCourseHandlerSuite(t *testing.T) {
	suite.Run(t, new(CourseHandlerTestSuite))
}

func (s *CourseHandlerTestSuite) TestRegister() {
	courseID := uuid.New()
	url := "/courses/" + courseID.String() + "/registrations"

	s.Run("success: returns 201 Created", func() {
		result := &commands.CourseRegistrationResult{
			RegistrationID: uuid.New(),
			CourseID:       courseID,
			Status:         course.StatusRegistered,
		}
		s.mockCommands.EXPECT().Register(gomock.Any(), s.memberID, courseID).
			Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		s.Equal(http.StatusCreated, rec.Code)
		s.Contains(rec.Body.String(), "REGISTERED")
	})

	errorCases := []struct {
		name       string
		err        error
		expectCode int
	}{
		{"course not found", commands.ErrCourseNotFound, http.StatusNotFound},
		{"membership inactive", commands.ErrMembershipInactive, http.StatusUnprocessableEntity},
		{"course not active", commands.ErrCourseNotActive, http.StatusUnprocessableEntity},
		{"already registered", commands.ErrAlreadyRegistered, http.StatusConflict},
	}

	for _, tc := range errorCases {
		s.Run("error: "+tc.name, func() {
			s.mockCommands.EXPECT().Register(gomock.Any(), s.memberID, courseID).
				Return(nil, tc.err).Times(1)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
			s.Equal(tc.expectCode, rec.Code)
		})
	}
}

func (s *CourseHandlerTestSuite) TestUnregister() {
	registrationID := uuid.New()
	url := "/courses/registrations/" + registrationID.String()

	s.Run("success: returns 200 OK", func() {
		result := &commands.CourseRegistrationResult{
			RegistrationID: registrationID,
			CourseID:       uuid.New(),
			Status:         course.StatusCancelled,
		}
		s.mockCommands.EXPECT().Unregister(gomock.Any(), s.memberID, registrationID).
			Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")

		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), "CANCELLED")
	})

	errorCases := []struct {
		name       string
		err        error
		expectCode int
	}{
		{"registration not found", commands.ErrRegistrationNotFound, http.StatusNotFound},
		{"not the owner", commands.ErrForbidden, http.StatusForbidden},
		{"already cancelled", commands.ErrAlreadyCancelled, http.StatusConflict},
	}

	for _, tc := range errorCases {
		s.Run("error: "+tc.name, func() {
			s.mockCommands.EXPECT().Unregister(gomock.Any(), s.memberID, registrationID).
				Return(nil, tc.err).Times(1)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
			s.Equal(tc.expectCode, rec.Code)
		})
	}
}

func (s *CourseHandlerTestSuite) TestListMyRegistrations() {
	s.Run("success: returns the member's registrations", func() {
		views := []*queries.CourseRegistrationView{
			{
				ID:           uuid.New(),
				CourseID:     uuid.New(),
				CourseName:   "Beginner Pilates",
				Status:       "REGISTERED",
				RegisteredAt: time.Date(2026, 5, 20, 9, 0, 0, 0, time.UTC),
			},
		}
		s.mockQueries.EXPECT().ListMyRegistrations(gomock.Any(), s.memberID).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/courses/registrations", nil, "bearer-token")

		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), "Beginner Pilates")
	})
}
