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

type CourseHandler struct {
	courseCommands commands.CourseCommands
	courseQueries  queries.CourseQueries
}

func NewCourseHandler(courseCommands commands.CourseCommands, courseQueries queries.CourseQueries) *CourseHandler {
	return &CourseHandler{
		courseCommands: courseCommands,
		courseQueries:  courseQueries,
	}
}

// @Summary Register for course
// @Description Register the current member for a course; courses have no capacity limit
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course ID"
// @Success 201 {object} resdto.CourseRegistrationResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /courses/{id}/registrations [post]
func (h *CourseHandler) Register(c *gin.Context) {
	memberID, ok := middleware.GetMemberID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error", nil)
		return
	}

	courseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid course ID format", nil)
		return
	}

	result, err := h.courseCommands.Register(c.Request.Context(), memberID, courseID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrCourseNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Course not found", nil)
		case errors.Is(err, commands.ErrMembershipInactive):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Membership is not active", nil)
		case errors.Is(err, commands.ErrCourseNotActive):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Course is not open for registration", nil)
		case errors.Is(err, commands.ErrAlreadyRegistered):
			httperr.AbortWithError(c, http.StatusConflict, err, "Already registered for this course", nil)
		case errors.Is(err, commands.ErrTransientConflict):
			c.Header("Retry-After", "1")
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Temporary conflict, please retry", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCourseRegistrationResult(result))
}

// @Summary Cancel course registration
// @Description Cancel the current member's course registration
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param id path string true "Registration ID"
// @Success 200 {object} resdto.CourseRegistrationResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /courses/registrations/{id} [delete]
func (h *CourseHandler) Unregister(c *gin.Context) {
	memberID, ok := middleware.GetMemberID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error", nil)
		return
	}

	registrationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid registration ID format", nil)
		return
	}

	result, err := h.courseCommands.Unregister(c.Request.Context(), memberID, registrationID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrRegistrationNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Registration not found", nil)
		case errors.Is(err, commands.ErrForbidden):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Registration belongs to another member", nil)
		case errors.Is(err, commands.ErrAlreadyCancelled):
			httperr.AbortWithError(c, http.StatusConflict, err, "Registration is already cancelled", nil)
		case errors.Is(err, commands.ErrTransientConflict):
			c.Header("Retry-After", "1")
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Temporary conflict, please retry", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromCourseRegistrationResult(result))
}

// @Summary List my course registrations
// @Description List all course registrations of the current member, newest first
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.CourseRegistrationListResponse
// @Failure 401 {object} httperr.Response
// @Router /courses/registrations [get]
func (h *CourseHandler) ListMyRegistrations(c *gin.Context) {
	memberID, ok := middleware.GetMemberID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error", nil)
		return
	}

	views, err := h.courseQueries.ListMyRegistrations(c.Request.Context(), memberID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	response := make([]*resdto.CourseRegistrationListResponse, len(views))
	for i, v := range views {
		response[i] = resdto.FromCourseRegistrationView(v)
	}

	c.JSON(http.StatusOK, response)
}
