//go:build e2e

package booking_test

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"studio-booking/internal/domain/member"
	"studio-booking/internal/handler/dto/response"
	"studio-booking/internal/usecase/commands"
	"studio-booking/tests/common/dbtest"
	"studio-booking/tests/common/httptest"
	"studio-booking/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	registerURL = "/api/sessions/%s/bookings"
	cancelURL   = "/api/bookings/%s"
)

var base = time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)

type BookingSuite struct {
	e2e.SharedSuite
}

func (s *BookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
	s.Stack.Clock.Set(base)
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

// seedSession inserts a class type and one scheduled session starting 48h
// after the frozen clock.
func (s *BookingSuite) seedSession(capacity int32, cutoffHours int32, allowWaitlist bool) uuid.UUID {
	t := s.T()
	classTypeID := uuid.New()
	sessionID := uuid.New()

	require.NoError(t, dbtest.InsertClassType(s.Stack.Pool, classTypeID, "Vinyasa Yoga", cutoffHours, allowWaitlist))
	require.NoError(t, dbtest.InsertSession(s.Stack.Pool, sessionID, classTypeID, base.Add(48*time.Hour), capacity, "SCHEDULED"))
	return sessionID
}

func (s *BookingSuite) activeMember() (uuid.UUID, string) {
	t := s.T()
	memberID := uuid.New()
	require.NoError(t, dbtest.InsertMembership(s.Stack.Pool, memberID, "ACTIVE"))
	return memberID, s.Stack.TokenFor(t, memberID, member.RoleMember)
}

func (s *BookingSuite) register(token string, sessionID uuid.UUID) (*response.BookingResponse, int) {
	t := s.T()
	rec := httptest.PerformRequest(t, s.Stack.Router, http.MethodPost, fmt.Sprintf(registerURL, sessionID), nil, token)
	if rec.Code != http.StatusCreated {
		return nil, rec.Code
	}
	var resp response.BookingResponse
	httptest.DecodeResponseBody(t, rec.Body, &resp)
	return &resp, rec.Code
}

// =============================================================================
// TestRegister
// =============================================================================

func (s *BookingSuite) TestRegister() {
	s.Run("Normal case: member gets a confirmed seat", func() {
		t := s.T()
		sessionID := s.seedSession(10, 24, true)
		_, token := s.activeMember()

		resp, code := s.register(token, sessionID)

		require.Equal(t, http.StatusCreated, code)
		require.Equal(t, "CONFIRMED", resp.Status)
		require.Nil(t, resp.Position)

		count, err := dbtest.CountOutboxEvents(s.Stack.Pool, "booking.confirmed")
		require.NoError(t, err)
		require.Equal(t, 1, count)
	})

	s.Run("Normal case: full session appends to the waitlist in order", func() {
		t := s.T()
		sessionID := s.seedSession(1, 24, true)

		_, first := s.activeMember()
		_, second := s.activeMember()
		_, third := s.activeMember()

		resp, _ := s.register(first, sessionID)
		require.Equal(t, "CONFIRMED", resp.Status)

		resp, _ = s.register(second, sessionID)
		require.Equal(t, "WAITLISTED", resp.Status)
		require.NotNil(t, resp.Position)
		require.Equal(t, int32(1), *resp.Position)

		resp, _ = s.register(third, sessionID)
		require.Equal(t, "WAITLISTED", resp.Status)
		require.Equal(t, int32(2), *resp.Position)
	})

	s.Run("Error case: full session without waitlist returns 409", func() {
		t := s.T()
		sessionID := s.seedSession(1, 24, false)

		_, first := s.activeMember()
		_, second := s.activeMember()

		_, code := s.register(first, sessionID)
		require.Equal(t, http.StatusCreated, code)

		_, code = s.register(second, sessionID)
		require.Equal(t, http.StatusConflict, code)
	})

	s.Run("Error case: double registration returns 409", func() {
		t := s.T()
		sessionID := s.seedSession(10, 24, true)
		_, token := s.activeMember()

		_, code := s.register(token, sessionID)
		require.Equal(t, http.StatusCreated, code)

		_, code = s.register(token, sessionID)
		require.Equal(t, http.StatusConflict, code)
	})

	s.Run("Error case: expired membership returns 422", func() {
		t := s.T()
		sessionID := s.seedSession(10, 24, true)

		memberID := uuid.New()
		require.NoError(t, dbtest.InsertMembership(s.Stack.Pool, memberID, "EXPIRED"))
		token := s.Stack.TokenFor(t, memberID, member.RoleMember)

		_, code := s.register(token, sessionID)
		require.Equal(t, http.StatusUnprocessableEntity, code)
	})

	s.Run("Error case: started session returns 422", func() {
		t := s.T()
		sessionID := s.seedSession(10, 24, true)
		_, token := s.activeMember()

		s.Stack.Clock.Set(base.Add(49 * time.Hour))

		_, code := s.register(token, sessionID)
		require.Equal(t, http.StatusUnprocessableEntity, code)
	})

	s.Run("Error case: unknown session returns 404", func() {
		t := s.T()
		_, token := s.activeMember()

		_, code := s.register(token, uuid.New())
		require.Equal(t, http.StatusNotFound, code)
	})
}

// =============================================================================
// TestCancel
// =============================================================================

func (s *BookingSuite) TestCancel() {
	s.Run("Normal case: cancelling a seat promotes the waitlist head", func() {
		t := s.T()
		sessionID := s.seedSession(1, 24, true)

		waitlistedID, _ := s.activeMember()
		_, seatedToken := s.activeMember()

		seated, _ := s.register(seatedToken, sessionID)
		require.Equal(t, "CONFIRMED", seated.Status)

		waitlistedToken := s.Stack.TokenFor(t, waitlistedID, member.RoleMember)
		waiting, _ := s.register(waitlistedToken, sessionID)
		require.Equal(t, "WAITLISTED", waiting.Status)

		rec := httptest.PerformRequest(t, s.Stack.Router, http.MethodDelete,
			fmt.Sprintf(cancelURL, seated.ID), nil, seatedToken)
		require.Equal(t, http.StatusOK, rec.Code)

		var status string
		var position *int32
		err := s.Stack.Pool.QueryRow(context.Background(),
			`SELECT status, position FROM bookings WHERE id = $1`, waiting.ID).Scan(&status, &position)
		require.NoError(t, err)
		require.Equal(t, "CONFIRMED", status)
		require.Nil(t, position)

		promoted, err := dbtest.CountOutboxEvents(s.Stack.Pool, "booking.promoted")
		require.NoError(t, err)
		require.Equal(t, 1, promoted)
	})

	s.Run("Error case: cancellation at the cutoff returns 422", func() {
		t := s.T()
		sessionID := s.seedSession(10, 24, true)
		_, token := s.activeMember()

		resp, _ := s.register(token, sessionID)

		// Session starts at base+48h with a 24h cutoff; the deadline is
		// base+24h exactly.
		s.Stack.Clock.Set(base.Add(24 * time.Hour))

		rec := httptest.PerformRequest(t, s.Stack.Router, http.MethodDelete,
			fmt.Sprintf(cancelURL, resp.ID), nil, token)
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	s.Run("Normal case: cancellation one minute before the cutoff succeeds", func() {
		t := s.T()
		sessionID := s.seedSession(10, 24, true)
		_, token := s.activeMember()

		resp, _ := s.register(token, sessionID)

		s.Stack.Clock.Set(base.Add(24*time.Hour - time.Minute))

		rec := httptest.PerformRequest(t, s.Stack.Router, http.MethodDelete,
			fmt.Sprintf(cancelURL, resp.ID), nil, token)
		require.Equal(t, http.StatusOK, rec.Code)
	})

	s.Run("Error case: cancelling another member's booking returns 403", func() {
		t := s.T()
		sessionID := s.seedSession(10, 24, true)
		_, ownerToken := s.activeMember()
		_, otherToken := s.activeMember()

		resp, _ := s.register(ownerToken, sessionID)

		rec := httptest.PerformRequest(t, s.Stack.Router, http.MethodDelete,
			fmt.Sprintf(cancelURL, resp.ID), nil, otherToken)
		require.Equal(t, http.StatusForbidden, rec.Code)
	})

	s.Run("Normal case: re-registration after cancellation starts a fresh cycle", func() {
		t := s.T()
		sessionID := s.seedSession(10, 24, true)
		_, token := s.activeMember()

		first, _ := s.register(token, sessionID)

		rec := httptest.PerformRequest(t, s.Stack.Router, http.MethodDelete,
			fmt.Sprintf(cancelURL, first.ID), nil, token)
		require.Equal(t, http.StatusOK, rec.Code)

		second, code := s.register(token, sessionID)
		require.Equal(t, http.StatusCreated, code)
		require.NotEqual(t, first.ID, second.ID)

		var total int
		err := s.Stack.Pool.QueryRow(context.Background(),
			`SELECT COUNT(*) FROM bookings WHERE session_id = $1`, sessionID).Scan(&total)
		require.NoError(t, err)
		require.Equal(t, 2, total)
	})
}

// =============================================================================
// TestConcurrentRegistration - no oversell under contention
// =============================================================================

func (s *BookingSuite) TestConcurrentRegistration() {
	s.Run("Property: capacity is never oversold by racing registrations", func() {
		t := s.T()

		const capacity = 5
		const contenders = 20

		sessionID := s.seedSession(capacity, 24, true)

		memberIDs := make([]uuid.UUID, contenders)
		for i := range memberIDs {
			memberIDs[i] = uuid.New()
			require.NoError(t, dbtest.InsertMembership(s.Stack.Pool, memberIDs[i], "ACTIVE"))
		}

		var wg sync.WaitGroup
		results := make([]*commands.BookingResult, contenders)
		errs := make([]error, contenders)

		for i, memberID := range memberIDs {
			wg.Add(1)
			go func(i int, memberID uuid.UUID) {
				defer wg.Done()
				results[i], errs[i] = s.Stack.Commands.Register(context.Background(), memberID, sessionID)
			}(i, memberID)
		}
		wg.Wait()

		confirmed := 0
		positions := map[int32]bool{}
		for i := range results {
			require.NoError(t, errs[i], "registration %d failed", i)
			switch results[i].Status {
			case "CONFIRMED":
				confirmed++
			case "WAITLISTED":
				require.NotNil(t, results[i].Position)
				require.False(t, positions[*results[i].Position], "duplicate waitlist position %d", *results[i].Position)
				positions[*results[i].Position] = true
			}
		}

		require.Equal(t, capacity, confirmed, "confirmed count must equal capacity")
		require.Len(t, positions, contenders-capacity)

		var dbConfirmed int
		err := s.Stack.Pool.QueryRow(context.Background(),
			`SELECT COUNT(*) FROM bookings WHERE session_id = $1 AND status = 'CONFIRMED'`, sessionID).Scan(&dbConfirmed)
		require.NoError(t, err)
		require.Equal(t, capacity, dbConfirmed)
	})
}
