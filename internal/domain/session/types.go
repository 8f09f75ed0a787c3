package session

type Status string

const (
	StatusScheduled Status = "SCHEDULED"
	StatusCancelled Status = "CANCELLED"
	StatusCompleted Status = "COMPLETED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusScheduled, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

// ClosedReason explains why registration is not currently possible.
type ClosedReason string

const (
	ReasonNone         ClosedReason = ""
	ReasonNotScheduled ClosedReason = "SESSION_NOT_ACTIVE"
	ReasonStarted      ClosedReason = "SESSION_STARTED"
	ReasonNotYetOpen   ClosedReason = "REGISTRATION_NOT_OPEN"
	ReasonClosed       ClosedReason = "REGISTRATION_CLOSED"
)
