package license

import (
	"fmt"
	"time"
)

// Contact is a cover contact attached to a fictitious license.
type Contact struct {
	ID           uint
	LicenseID    uint
	Name         string
	Phone        string
	Relationship string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewContact validates and builds a contact for a fictitious license.
func NewContact(license *DriverLicense, name, phone, relationship string) (*Contact, error) {
	if license == nil || license.ID() == 0 {
		return nil, fmt.Errorf("contact requires a persisted license")
	}
	if !license.SupportsContacts() {
		return nil, fmt.Errorf("contacts are only supported on fictitious licenses")
	}
	if name == "" {
		return nil, fmt.Errorf("contact name is required")
	}

	now := time.Now()
	return &Contact{
		LicenseID:    license.ID(),
		Name:         name,
		Phone:        phone,
		Relationship: relationship,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}
