package api

import (
	"errors"
	"net/http"

	resdto "studio-booking/internal/handler/dto/response"
	"studio-booking/internal/handler/httperr"
	"studio-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SessionHandler struct {
	bookingQueries queries.BookingQueries
}

func NewSessionHandler(bookingQueries queries.BookingQueries) *SessionHandler {
	return &SessionHandler{
		bookingQueries: bookingQueries,
	}
}

// @Summary Get session availability
// @Description Seat counts and the current registration verdict for a session
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /sessions/{id}/availability [get]
func (h *SessionHandler) GetAvailability(c *gin.Context) {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid session ID format", nil)
		return
	}

	view, err := h.bookingQueries.GetSessionAvailability(c.Request.Context(), sessionID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrSessionNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Session not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromAvailabilityView(view))
}

// @Summary Get session roster
// @Description Active bookings for a session, confirmed first then waitlist order
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Success 200 {array} resdto.RosterEntryResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /sessions/{id}/roster [get]
func (h *SessionHandler) GetRoster(c *gin.Context) {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid session ID format", nil)
		return
	}

	entries, err := h.bookingQueries.GetRoster(c.Request.Context(), sessionID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrSessionNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Session not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	response := make([]*resdto.RosterEntryResponse, len(entries))
	for i, e := range entries {
		response[i] = resdto.FromRosterEntry(e)
	}

	c.JSON(http.StatusOK, response)
}
