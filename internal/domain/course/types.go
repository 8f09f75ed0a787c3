package course

type RegistrationStatus string

const (
	StatusRegistered RegistrationStatus = "REGISTERED"
	StatusCancelled  RegistrationStatus = "CANCELLED"
)

func (s RegistrationStatus) String() string {
	return string(s)
}

func (s RegistrationStatus) IsValid() bool {
	switch s {
	case StatusRegistered, StatusCancelled:
		return true
	default:
		return false
	}
}
