package course

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidDates = errors.New("course end date must not precede start date")

// Course is a multi-week program. Unlike sessions, courses carry no capacity
// or waitlist dimension: any eligible member may register while it is active.
type Course struct {
	id       uuid.UUID
	name     string
	startsOn time.Time
	endsOn   time.Time
	active   bool
}

func NewCourse(id uuid.UUID, name string, startsOn, endsOn time.Time, active bool) (*Course, error) {
	if endsOn.Before(startsOn) {
		return nil, ErrInvalidDates
	}
	return &Course{
		id:       id,
		name:     name,
		startsOn: startsOn,
		endsOn:   endsOn,
		active:   active,
	}, nil
}

func (c *Course) ID() uuid.UUID       { return c.id }
func (c *Course) Name() string        { return c.name }
func (c *Course) StartsOn() time.Time { return c.startsOn }
func (c *Course) EndsOn() time.Time   { return c.endsOn }
func (c *Course) IsActive() bool      { return c.active }

// HasEnded reports whether the program is already over; registration for a
// finished course is pointless even if the active flag was left on.
func (c *Course) HasEnded(now time.Time) bool {
	return now.After(c.endsOn)
}
