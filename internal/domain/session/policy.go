package session

import "time"

// RegistrationWindow is the evaluator's verdict on whether registration is
// currently possible. Capacity is deliberately not part of the verdict; the
// capacity ledger decides seat vs waitlist vs full inside its transaction.
type RegistrationWindow struct {
	Open   bool
	Reason ClosedReason
}

// EvaluateRegistration is a pure function of (now, session). Safe to call
// repeatedly; it gates mutating operations and feeds the read-only
// availability view.
func EvaluateRegistration(now time.Time, s *Session) RegistrationWindow {
	if s.status != StatusScheduled {
		return RegistrationWindow{Open: false, Reason: ReasonNotScheduled}
	}
	if !now.Before(s.startsAt) {
		return RegistrationWindow{Open: false, Reason: ReasonStarted}
	}
	if s.registrationOpensAt != nil && now.Before(*s.registrationOpensAt) {
		return RegistrationWindow{Open: false, Reason: ReasonNotYetOpen}
	}
	if s.registrationClosesAt != nil && now.After(*s.registrationClosesAt) {
		return RegistrationWindow{Open: false, Reason: ReasonClosed}
	}
	return RegistrationWindow{Open: true, Reason: ReasonNone}
}

// CancellationDeadline is startsAt minus the class type's whole-hour cutoff.
func CancellationDeadline(s *Session, ct *ClassType) time.Time {
	return s.startsAt.Add(-time.Duration(ct.cancellationCutoffHours) * time.Hour)
}

// CanCancelAt requires now strictly before the deadline: an attempt at the
// exact cutoff instant is rejected. A cancelled session rejects regardless
// of timing.
func CanCancelAt(now time.Time, s *Session, ct *ClassType) bool {
	if s.status == StatusCancelled {
		return false
	}
	return now.Before(CancellationDeadline(s, ct))
}

// CanPromoteAt gates waitlist promotion. Promotion ignores the
// registration-close deadline: a member who queued while the window was open
// keeps their claim. The session must still be scheduled and in the future.
func CanPromoteAt(now time.Time, s *Session) bool {
	return s.status == StatusScheduled && now.Before(s.startsAt)
}
