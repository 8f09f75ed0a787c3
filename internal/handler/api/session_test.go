//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"studio-booking/internal/domain/member"
	"studio-booking/internal/handler/api"
	"studio-booking/internal/usecase/queries"
	"studio-booking/tests/common/httptest"
	queriesmock "studio-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SessionHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockBookingQueries
	handler     *api.SessionHandler
}

func (s *SessionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewSessionHandler(s.mockQueries)

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("member_id", uuid.New())
		c.Set("member_role", member.RoleInstructor)
		c.Next()
	}

	s.router.GET("/sessions/:id/availability", authMiddleware, s.handler.GetAvailability)
	s.router.GET("/sessions/:id/roster", authMiddleware, s.handler.GetRoster)
}

func (s *SessionHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSessionHandlerSuite(t *testing.T) {
	suite.Run(t, new(SessionHandlerTestSuite))
}

func (s *SessionHandlerTestSuite) TestGetAvailability() {
	sessionID := uuid.New()
	url := "/sessions/" + sessionID.String() + "/availability"

	s.Run("success: returns counts and verdict", func() {
		view := &queries.AvailabilityView{
			SessionID:        sessionID,
			Capacity:         10,
			ConfirmedCount:   7,
			WaitlistCount:    2,
			RegistrationOpen: true,
		}
		s.mockQueries.EXPECT().GetSessionAvailability(gomock.Any(), sessionID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), `"confirmedCount":7`)
		s.Contains(rec.Body.String(), `"registrationOpen":true`)
	})

	s.Run("error: returns 404 for unknown session", func() {
		s.mockQueries.EXPECT().GetSessionAvailability(gomock.Any(), sessionID).
			Return(nil, queries.ErrSessionNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("error: returns 400 for malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/sessions/nope/availability", nil, "bearer-token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *SessionHandlerTestSuite) TestGetRoster() {
	sessionID := uuid.New()
	url := "/sessions/" + sessionID.String() + "/roster"

	s.Run("success: confirmed entries precede waitlist", func() {
		position := int32(1)
		entries := []*queries.RosterEntry{
			{BookingID: uuid.New(), MemberID: uuid.New(), Status: "CONFIRMED", BookedAt: time.Now().UTC()},
			{BookingID: uuid.New(), MemberID: uuid.New(), Status: "WAITLISTED", Position: &position, BookedAt: time.Now().UTC()},
		}
		s.mockQueries.EXPECT().GetRoster(gomock.Any(), sessionID).
			Return(entries, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), "CONFIRMED")
		s.Contains(rec.Body.String(), "WAITLISTED")
	})

	s.Run("error: returns 404 for unknown session", func() {
		s.mockQueries.EXPECT().GetRoster(gomock.Any(), sessionID).
			Return(nil, queries.ErrSessionNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		s.Equal(http.StatusNotFound, rec.Code)
	})
}
