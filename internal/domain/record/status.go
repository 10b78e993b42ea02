package record

import "fmt"

// Status is a record's approval status.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
	StatusOnHold   Status = "on_hold"
)

// ParseStatus converts a stored string to a Status.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusApproved, StatusRejected, StatusOnHold:
		return Status(s), nil
	}
	return "", fmt.Errorf("unknown approval status %q", s)
}

func (s Status) String() string {
	return string(s)
}

// IsValid reports whether s is one of the four approval statuses.
func (s Status) IsValid() bool {
	_, err := ParseStatus(string(s))
	return err == nil
}
