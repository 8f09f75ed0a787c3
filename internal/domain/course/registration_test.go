//go:build unit

package course_test

import (
	"testing"
	"time"

	"studio-booking/internal/domain/course"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 5, 25, 12, 0, 0, 0, time.UTC)

func TestNewCourse(t *testing.T) {
	t.Run("end before start is invalid", func(t *testing.T) {
		_, err := course.NewCourse(uuid.New(), "Beginner Pilates", now, now.Add(-24*time.Hour), true)
		assert.ErrorIs(t, err, course.ErrInvalidDates)
	})

	t.Run("single-day course is valid", func(t *testing.T) {
		c, err := course.NewCourse(uuid.New(), "Workshop", now, now, true)
		require.NoError(t, err)
		assert.False(t, c.HasEnded(now))
		assert.True(t, c.HasEnded(now.Add(time.Hour)))
	})
}

func TestRegistrationCancel(t *testing.T) {
	t.Run("registered cancels once", func(t *testing.T) {
		reg := course.NewRegistration(uuid.New(), uuid.New(), now)
		require.True(t, reg.IsRegistered())

		require.NoError(t, reg.Cancel(now.Add(time.Hour)))

		assert.Equal(t, course.StatusCancelled, reg.Status())
		assert.False(t, reg.IsRegistered())
		require.NotNil(t, reg.CancelledAt())

		assert.ErrorIs(t, reg.Cancel(now.Add(2*time.Hour)), course.ErrAlreadyCancelled)
	})
}

func TestRegistrationOwnership(t *testing.T) {
	memberID := uuid.New()
	reg := course.NewRegistration(memberID, uuid.New(), now)

	assert.True(t, reg.IsOwnedBy(memberID))
	assert.False(t, reg.IsOwnedBy(uuid.New()))
}
