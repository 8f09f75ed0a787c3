package session

import (
	"errors"

	"github.com/google/uuid"
)

var ErrNegativeCutoff = errors.New("cancellation cutoff hours cannot be negative")

// ClassType is template metadata shared by all sessions of a class.
// A cutoff of 0 hours means cancellation is allowed right up to the start.
type ClassType struct {
	id                      uuid.UUID
	name                    string
	cancellationCutoffHours int32
	allowWaitlist           bool
}

func NewClassType(id uuid.UUID, name string, cancellationCutoffHours int32, allowWaitlist bool) (*ClassType, error) {
	if cancellationCutoffHours < 0 {
		return nil, ErrNegativeCutoff
	}
	return &ClassType{
		id:                      id,
		name:                    name,
		cancellationCutoffHours: cancellationCutoffHours,
		allowWaitlist:           allowWaitlist,
	}, nil
}

func (ct *ClassType) ID() uuid.UUID                  { return ct.id }
func (ct *ClassType) Name() string                   { return ct.name }
func (ct *ClassType) CancellationCutoffHours() int32 { return ct.cancellationCutoffHours }
func (ct *ClassType) AllowWaitlist() bool            { return ct.allowWaitlist }
