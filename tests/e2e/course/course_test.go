//go:build e2e

package course_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"studio-booking/internal/domain/member"
	"studio-booking/internal/handler/dto/response"
	"studio-booking/tests/common/dbtest"
	"studio-booking/tests/common/httptest"
	"studio-booking/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	courseRegisterURL = "/api/courses/%s/registrations"
	unregisterURL     = "/api/courses/registrations/%s"
	listURL           = "/api/courses/registrations"
)

var base = time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)

type CourseSuite struct {
	e2e.SharedSuite
}

func (s *CourseSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
	s.Stack.Clock.Set(base)
}

func TestCourseSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(CourseSuite))
}

func (s *CourseSuite) seedCourse(name string, active bool) uuid.UUID {
	t := s.T()
	courseID := uuid.New()
	require.NoError(t, dbtest.InsertCourse(s.Stack.Pool, courseID, name,
		base.AddDate(0, 0, -7), base.AddDate(0, 0, 30), active))
	return courseID
}

func (s *CourseSuite) activeMember() (uuid.UUID, string) {
	t := s.T()
	memberID := uuid.New()
	require.NoError(t, dbtest.InsertMembership(s.Stack.Pool, memberID, "ACTIVE"))
	return memberID, s.Stack.TokenFor(t, memberID, member.RoleMember)
}

func (s *CourseSuite) register(token string, courseID uuid.UUID) (*response.CourseRegistrationResponse, int) {
	t := s.T()
	rec := httptest.PerformRequest(t, s.Stack.Router, http.MethodPost, fmt.Sprintf(courseRegisterURL, courseID), nil, token)
	if rec.Code != http.StatusCreated {
		return nil, rec.Code
	}
	var resp response.CourseRegistrationResponse
	httptest.DecodeResponseBody(t, rec.Body, &resp)
	return &resp, rec.Code
}

// =============================================================================
// TestRegister
// =============================================================================

func (s *CourseSuite) TestRegister() {
	s.Run("Normal case: any number of members may join a course", func() {
		t := s.T()
		courseID := s.seedCourse("Beginner Pilates", true)

		for range 100 {
			_, token := s.activeMember()
			resp, code := s.register(token, courseID)
			require.Equal(t, http.StatusCreated, code)
			require.Equal(t, "REGISTERED", resp.Status)
		}

		var count int
		err := s.Stack.Pool.QueryRow(context.Background(),
			`SELECT COUNT(*) FROM course_registrations WHERE course_id = $1 AND status = 'REGISTERED'`,
			courseID,
		).Scan(&count)
		require.NoError(t, err)
		require.Equal(t, 100, count)
	})

	s.Run("Error case: double registration returns 409", func() {
		t := s.T()
		courseID := s.seedCourse("Beginner Pilates", true)
		_, token := s.activeMember()

		_, code := s.register(token, courseID)
		require.Equal(t, http.StatusCreated, code)

		_, code = s.register(token, courseID)
		require.Equal(t, http.StatusConflict, code)
	})

	s.Run("Error case: inactive course returns 422", func() {
		t := s.T()
		courseID := s.seedCourse("Retired Course", false)
		_, token := s.activeMember()

		_, code := s.register(token, courseID)
		require.Equal(t, http.StatusUnprocessableEntity, code)
	})

	s.Run("Error case: ended course returns 422", func() {
		t := s.T()
		courseID := s.seedCourse("Spring Series", true)
		_, token := s.activeMember()

		s.Stack.Clock.Set(base.AddDate(0, 0, 31))

		_, code := s.register(token, courseID)
		require.Equal(t, http.StatusUnprocessableEntity, code)
	})

	s.Run("Error case: expired membership returns 422", func() {
		t := s.T()
		courseID := s.seedCourse("Beginner Pilates", true)

		memberID := uuid.New()
		require.NoError(t, dbtest.InsertMembership(s.Stack.Pool, memberID, "EXPIRED"))
		token := s.Stack.TokenFor(t, memberID, member.RoleMember)

		_, code := s.register(token, courseID)
		require.Equal(t, http.StatusUnprocessableEntity, code)
	})

	s.Run("Error case: unknown course returns 404", func() {
		t := s.T()
		_, token := s.activeMember()

		_, code := s.register(token, uuid.New())
		require.Equal(t, http.StatusNotFound, code)
	})
}

// =============================================================================
// TestUnregister
// =============================================================================

func (s *CourseSuite) TestUnregister() {
	s.Run("Normal case: member leaves a course and can rejoin", func() {
		t := s.T()
		courseID := s.seedCourse("Beginner Pilates", true)
		_, token := s.activeMember()

		reg, _ := s.register(token, courseID)

		rec := httptest.PerformRequest(t, s.Stack.Router, http.MethodDelete,
			fmt.Sprintf(unregisterURL, reg.ID), nil, token)
		require.Equal(t, http.StatusOK, rec.Code)

		var cancelled response.CourseRegistrationResponse
		httptest.DecodeResponseBody(t, rec.Body, &cancelled)
		require.Equal(t, "CANCELLED", cancelled.Status)

		second, code := s.register(token, courseID)
		require.Equal(t, http.StatusCreated, code)
		require.NotEqual(t, reg.ID, second.ID)
	})

	s.Run("Error case: unregistering twice returns 409", func() {
		t := s.T()
		courseID := s.seedCourse("Beginner Pilates", true)
		_, token := s.activeMember()

		reg, _ := s.register(token, courseID)

		rec := httptest.PerformRequest(t, s.Stack.Router, http.MethodDelete,
			fmt.Sprintf(unregisterURL, reg.ID), nil, token)
		require.Equal(t, http.StatusOK, rec.Code)

		rec = httptest.PerformRequest(t, s.Stack.Router, http.MethodDelete,
			fmt.Sprintf(unregisterURL, reg.ID), nil, token)
		require.Equal(t, http.StatusConflict, rec.Code)
	})

	s.Run("Error case: another member's registration returns 403", func() {
		t := s.T()
		courseID := s.seedCourse("Beginner Pilates", true)
		_, ownerToken := s.activeMember()
		_, otherToken := s.activeMember()

		reg, _ := s.register(ownerToken, courseID)

		rec := httptest.PerformRequest(t, s.Stack.Router, http.MethodDelete,
			fmt.Sprintf(unregisterURL, reg.ID), nil, otherToken)
		require.Equal(t, http.StatusForbidden, rec.Code)
	})

	s.Run("Error case: unknown registration returns 404", func() {
		t := s.T()
		_, token := s.activeMember()

		rec := httptest.PerformRequest(t, s.Stack.Router, http.MethodDelete,
			fmt.Sprintf(unregisterURL, uuid.New()), nil, token)
		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

// =============================================================================
// TestListMyRegistrations
// =============================================================================

func (s *CourseSuite) TestListMyRegistrations() {
	s.Run("Normal case: only the caller's registrations are listed", func() {
		t := s.T()
		pilates := s.seedCourse("Beginner Pilates", true)
		strength := s.seedCourse("Strength Basics", true)

		_, mine := s.activeMember()
		_, other := s.activeMember()

		s.register(mine, pilates)
		s.register(mine, strength)
		s.register(other, pilates)

		rec := httptest.PerformRequest(t, s.Stack.Router, http.MethodGet, listURL, nil, mine)
		require.Equal(t, http.StatusOK, rec.Code)

		var list []response.CourseRegistrationListResponse
		httptest.DecodeResponseBody(t, rec.Body, &list)
		require.Len(t, list, 2)
	})

	s.Run("Normal case: empty history returns an empty array", func() {
		t := s.T()
		_, token := s.activeMember()

		rec := httptest.PerformRequest(t, s.Stack.Router, http.MethodGet, listURL, nil, token)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "[]", rec.Body.String())
	})
}
