// Package entity contains the core business objects of the project.
package entity

// Status represents the lifecycle state of an account.
type Status string

const (
	// StatusActive indicates the account can log in and transact.
	StatusActive Status = "Active"
	// StatusInactive indicates the account is disabled.
	StatusInactive Status = "Inactive"
)

// String returns the string representation of the Status.
func (s Status) String() string {
	return string(s)
}

// IsValid checks if the Status is a valid value.
func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusInactive:
		return true
	default:
		return false
	}
}

// ParseStatus converts a raw string into a Status. The empty string maps to
// StatusActive so callers get the registration default; anything else that is
// not a member of the enum is rejected.
func ParseStatus(raw string) (Status, bool) {
	if raw == "" {
		return StatusActive, true
	}

	status := Status(raw)
	if !status.IsValid() {
		return "", false
	}

	return status, true
}
