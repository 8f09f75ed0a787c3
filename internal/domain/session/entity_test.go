//go:build unit

package session_test

import (
	"testing"
	"time"

	"studio-booking/internal/domain/session"
	"studio-booking/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSession(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		sess, err := builder.NewSessionBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, sess)

		assert.True(t, sess.IsScheduled())
		assert.Equal(t, int32(10), sess.Capacity())
	})

	t.Run("capacity below one", func(t *testing.T) {
		_, err := builder.NewSessionBuilder().WithCapacity(0).BuildDomain()
		assert.ErrorIs(t, err, session.ErrInvalidCapacity)
	})

	t.Run("invalid status", func(t *testing.T) {
		_, err := builder.NewSessionBuilder().WithStatus("BOGUS").BuildDomain()
		assert.ErrorIs(t, err, session.ErrInvalidStatus)
	})
}

func TestNewClassType(t *testing.T) {
	t.Run("negative cutoff rejected", func(t *testing.T) {
		_, err := builder.NewClassTypeBuilder().WithCutoffHours(-1).BuildDomain()
		assert.ErrorIs(t, err, session.ErrNegativeCutoff)
	})

	t.Run("zero cutoff accepted", func(t *testing.T) {
		ct, err := builder.NewClassTypeBuilder().WithCutoffHours(0).BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, int32(0), ct.CancellationCutoffHours())
	})
}

func TestHasStarted(t *testing.T) {
	startsAt := time.Date(2026, 6, 1, 18, 0, 0, 0, time.UTC)
	sess := builder.NewSessionBuilder().WithStartsAt(startsAt).MustBuild()

	assert.False(t, sess.HasStarted(startsAt.Add(-time.Second)))
	assert.True(t, sess.HasStarted(startsAt))
	assert.True(t, sess.HasStarted(startsAt.Add(time.Second)))
}
