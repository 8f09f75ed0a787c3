package api

import (
	"errors"
	"net/http"

	resdto "studio-booking/internal/handler/dto/response"
	"studio-booking/internal/handler/httperr"
	"studio-booking/internal/handler/middleware"
	"studio-booking/internal/usecase/commands"
	"studio-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Register for session
// @Description Register the current member for a class session; waitlists when full
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /sessions/{id}/bookings [post]
func (h *BookingHandler) Register(c *gin.Context) {
	memberID, ok := middleware.GetMemberID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error", nil)
		return
	}

	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid session ID format", nil)
		return
	}

	result, err := h.bookingCommands.Register(c.Request.Context(), memberID, sessionID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrSessionNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Session not found", nil)
		case errors.Is(err, commands.ErrMembershipInactive):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Membership is not active", nil)
		case errors.Is(err, commands.ErrSessionNotActive):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Session is not open for registration", nil)
		case errors.Is(err, commands.ErrRegistrationClosed):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Registration window is closed", nil)
		case errors.Is(err, commands.ErrAlreadyRegistered):
			httperr.AbortWithError(c, http.StatusConflict, err, "Already registered for this session", nil)
		case errors.Is(err, commands.ErrSessionFull):
			httperr.AbortWithError(c, http.StatusConflict, err, "Session is full", nil)
		case errors.Is(err, commands.ErrTransientConflict):
			c.Header("Retry-After", "1")
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Temporary conflict, please retry", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookingResult(result))
}

// @Summary Cancel booking
// @Description Cancel the current member's booking; a freed seat promotes the waitlist head
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /bookings/{id} [delete]
func (h *BookingHandler) Cancel(c *gin.Context) {
	memberID, ok := middleware.GetMemberID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error", nil)
		return
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format", nil)
		return
	}

	result, err := h.bookingCommands.Cancel(c.Request.Context(), memberID, bookingID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
		case errors.Is(err, commands.ErrForbidden):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Booking belongs to another member", nil)
		case errors.Is(err, commands.ErrAlreadyCancelled):
			httperr.AbortWithError(c, http.StatusConflict, err, "Booking is already cancelled", nil)
		case errors.Is(err, commands.ErrSessionNotActive):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Session is no longer active", nil)
		case errors.Is(err, commands.ErrCancellationWindowClosed):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Cancellation window is closed", nil)
		case errors.Is(err, commands.ErrTransientConflict):
			c.Header("Retry-After", "1")
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Temporary conflict, please retry", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingResult(result))
}

// @Summary List my bookings
// @Description List all bookings of the current member, newest first
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BookingListResponse
// @Failure 401 {object} httperr.Response
// @Router /bookings [get]
func (h *BookingHandler) ListMyBookings(c *gin.Context) {
	memberID, ok := middleware.GetMemberID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error", nil)
		return
	}

	views, err := h.bookingQueries.ListMyBookings(c.Request.Context(), memberID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	response := make([]*resdto.BookingListResponse, len(views))
	for i, v := range views {
		response[i] = resdto.FromBookingView(v)
	}

	c.JSON(http.StatusOK, response)
}
