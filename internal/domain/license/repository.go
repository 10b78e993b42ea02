package license

import (
	"context"

	"lerms/internal/domain/record"
	"lerms/internal/shared/query"
)

// Filter narrows license listings. IncludeSuppressed lifts the default
// suppression exclusion.
type Filter struct {
	query.BaseFilter
	Variant           Variant
	LicenseNumber     string
	HolderName        string
	ApprovalStatus    record.Status
	AgencyID          *uint
	IncludeSuppressed bool
	IncludeInactive   bool
}

// Repository persists driver licenses and their contacts.
type Repository interface {
	Create(ctx context.Context, license *DriverLicense) error
	// GetByID returns nil when absent.
	GetByID(ctx context.Context, id uint) (*DriverLicense, error)
	// GetByNumber matches the exact license number within a variant; returns
	// nil when absent.
	GetByNumber(ctx context.Context, variant Variant, licenseNumber string) (*DriverLicense, error)
	Update(ctx context.Context, license *DriverLicense) error
	List(ctx context.Context, filter Filter) ([]*DriverLicense, int64, error)
	AddContact(ctx context.Context, contact *Contact) error
	ListContacts(ctx context.Context, licenseID uint) ([]*Contact, error)
}
