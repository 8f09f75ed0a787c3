package member

import "github.com/google/uuid"

// Role is supplied by the identity collaborator via JWT claims. The core
// trusts it and performs no authentication of its own.
type Role string

const (
	RoleMember     Role = "member"
	RoleInstructor Role = "instructor"
	RoleAdmin      Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleMember, RoleInstructor, RoleAdmin:
		return true
	default:
		return false
	}
}

// MembershipStatus is owned and mutated by the external billing collaborator;
// the booking core only reads it to decide eligibility.
type MembershipStatus string

const (
	MembershipActive    MembershipStatus = "ACTIVE"
	MembershipExpired   MembershipStatus = "EXPIRED"
	MembershipCancelled MembershipStatus = "CANCELLED"
)

func (s MembershipStatus) IsEligible() bool {
	return s == MembershipActive
}

type Membership struct {
	MemberID uuid.UUID
	Status   MembershipStatus
}
