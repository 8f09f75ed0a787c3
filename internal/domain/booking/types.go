package booking

type Status string

const (
	StatusConfirmed  Status = "CONFIRMED"
	StatusWaitlisted Status = "WAITLISTED"
	StatusCancelled  Status = "CANCELLED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusConfirmed, StatusWaitlisted, StatusCancelled:
		return true
	default:
		return false
	}
}

func (s Status) IsActive() bool {
	return s == StatusConfirmed || s == StatusWaitlisted
}

// CanTransitionTo encodes the lifecycle of a single booking cycle.
// CANCELLED is terminal for the cycle; re-registration after cancellation
// starts a fresh cycle as a new record, never a transition of this one.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusConfirmed:
		return next == StatusCancelled
	case StatusWaitlisted:
		return next == StatusCancelled || next == StatusConfirmed
	case StatusCancelled:
		return false
	default:
		return false
	}
}
