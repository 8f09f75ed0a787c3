//go:build unit

package session_test

import (
	"testing"
	"time"

	"studio-booking/internal/domain/session"
	"studio-booking/tests/common/builder"

	"github.com/stretchr/testify/assert"
)

var startsAt = time.Date(2026, 6, 1, 18, 0, 0, 0, time.UTC)

func TestEvaluateRegistration(t *testing.T) {
	cases := []struct {
		name       string
		build      func() *builder.SessionBuilder
		now        time.Time
		wantOpen   bool
		wantReason session.ClosedReason
	}{
		{
			name:     "open when scheduled and before start",
			build:    func() *builder.SessionBuilder { return builder.NewSessionBuilder().WithStartsAt(startsAt) },
			now:      startsAt.Add(-2 * time.Hour),
			wantOpen: true,
		},
		{
			name: "closed when session is cancelled",
			build: func() *builder.SessionBuilder {
				return builder.NewSessionBuilder().WithStartsAt(startsAt).WithStatus(session.StatusCancelled)
			},
			now:        startsAt.Add(-2 * time.Hour),
			wantReason: session.ReasonNotScheduled,
		},
		{
			name: "closed when session is completed",
			build: func() *builder.SessionBuilder {
				return builder.NewSessionBuilder().WithStartsAt(startsAt).WithStatus(session.StatusCompleted)
			},
			now:        startsAt.Add(-2 * time.Hour),
			wantReason: session.ReasonNotScheduled,
		},
		{
			name:       "closed at the exact start instant",
			build:      func() *builder.SessionBuilder { return builder.NewSessionBuilder().WithStartsAt(startsAt) },
			now:        startsAt,
			wantReason: session.ReasonStarted,
		},
		{
			name:       "closed after start",
			build:      func() *builder.SessionBuilder { return builder.NewSessionBuilder().WithStartsAt(startsAt) },
			now:        startsAt.Add(time.Minute),
			wantReason: session.ReasonStarted,
		},
		{
			name: "closed before the registration window opens",
			build: func() *builder.SessionBuilder {
				return builder.NewSessionBuilder().WithStartsAt(startsAt).
					WithRegistrationOpensAt(startsAt.Add(-48 * time.Hour))
			},
			now:        startsAt.Add(-72 * time.Hour),
			wantReason: session.ReasonNotYetOpen,
		},
		{
			name: "open at the exact window-open instant",
			build: func() *builder.SessionBuilder {
				return builder.NewSessionBuilder().WithStartsAt(startsAt).
					WithRegistrationOpensAt(startsAt.Add(-48 * time.Hour))
			},
			now:      startsAt.Add(-48 * time.Hour),
			wantOpen: true,
		},
		{
			name: "closed after the registration window closes",
			build: func() *builder.SessionBuilder {
				return builder.NewSessionBuilder().WithStartsAt(startsAt).
					WithRegistrationClosesAt(startsAt.Add(-time.Hour))
			},
			now:        startsAt.Add(-30 * time.Minute),
			wantReason: session.ReasonClosed,
		},
		{
			name: "open at the exact window-close instant",
			build: func() *builder.SessionBuilder {
				return builder.NewSessionBuilder().WithStartsAt(startsAt).
					WithRegistrationClosesAt(startsAt.Add(-time.Hour))
			},
			now:      startsAt.Add(-time.Hour),
			wantOpen: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sess := tc.build().MustBuild()
			window := session.EvaluateRegistration(tc.now, sess)

			assert.Equal(t, tc.wantOpen, window.Open)
			if !tc.wantOpen {
				assert.Equal(t, tc.wantReason, window.Reason)
			}
		})
	}
}

func TestCanCancelAt(t *testing.T) {
	sess := builder.NewSessionBuilder().WithStartsAt(startsAt).MustBuild()
	ct := builder.NewClassTypeBuilder().WithCutoffHours(24).MustBuild()

	cases := []struct {
		name string
		now  time.Time
		want bool
	}{
		{"well before the cutoff", startsAt.Add(-48 * time.Hour), true},
		{"one minute before the cutoff", startsAt.Add(-24*time.Hour - time.Minute), true},
		{"exactly at the cutoff", startsAt.Add(-24 * time.Hour), false},
		{"one minute after the cutoff", startsAt.Add(-23*time.Hour - 59*time.Minute), false},
		{"after the session started", startsAt.Add(time.Hour), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, session.CanCancelAt(tc.now, sess, ct))
		})
	}

	t.Run("zero cutoff allows cancellation up to the start", func(t *testing.T) {
		zeroCutoff := builder.NewClassTypeBuilder().WithCutoffHours(0).MustBuild()

		assert.True(t, session.CanCancelAt(startsAt.Add(-time.Second), sess, zeroCutoff))
		assert.False(t, session.CanCancelAt(startsAt, sess, zeroCutoff))
	})

	t.Run("cancelled session rejects regardless of timing", func(t *testing.T) {
		cancelled := builder.NewSessionBuilder().WithStartsAt(startsAt).
			WithStatus(session.StatusCancelled).MustBuild()

		assert.False(t, session.CanCancelAt(startsAt.Add(-48*time.Hour), cancelled, ct))
	})
}

func TestCanPromoteAt(t *testing.T) {
	t.Run("promotion allowed after the registration window closed", func(t *testing.T) {
		sess := builder.NewSessionBuilder().WithStartsAt(startsAt).
			WithRegistrationClosesAt(startsAt.Add(-2 * time.Hour)).MustBuild()

		// Registration would be rejected here, promotion is not.
		now := startsAt.Add(-time.Hour)
		assert.False(t, session.EvaluateRegistration(now, sess).Open)
		assert.True(t, session.CanPromoteAt(now, sess))
	})

	t.Run("no promotion once the session started", func(t *testing.T) {
		sess := builder.NewSessionBuilder().WithStartsAt(startsAt).MustBuild()
		assert.False(t, session.CanPromoteAt(startsAt, sess))
	})

	t.Run("no promotion on a cancelled session", func(t *testing.T) {
		sess := builder.NewSessionBuilder().WithStartsAt(startsAt).
			WithStatus(session.StatusCancelled).MustBuild()
		assert.False(t, session.CanPromoteAt(startsAt.Add(-time.Hour), sess))
	})
}

func TestCancellationDeadline(t *testing.T) {
	sess := builder.NewSessionBuilder().WithStartsAt(startsAt).MustBuild()
	ct := builder.NewClassTypeBuilder().WithCutoffHours(24).MustBuild()

	assert.Equal(t, startsAt.Add(-24*time.Hour), session.CancellationDeadline(sess, ct))
}
