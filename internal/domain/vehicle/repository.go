package vehicle

import (
	"context"

	"lerms/internal/domain/record"
	"lerms/internal/shared/query"
)

// Filter narrows registration listings. IncludeSuppressed lifts the default
// suppression exclusion; only callers with the suppression read grant set it.
type Filter struct {
	query.BaseFilter
	Variant           Variant
	PlateNumber       string
	VIN               string
	ApprovalStatus    record.Status
	AgencyID          *uint
	IncludeSuppressed bool
	IncludeInactive   bool
}

// Repository persists vehicle registrations.
type Repository interface {
	Create(ctx context.Context, registration *Registration) error
	// GetByID returns nil when absent.
	GetByID(ctx context.Context, id uint) (*Registration, error)
	// GetByPlate matches the exact plate within a variant; returns nil when
	// absent.
	GetByPlate(ctx context.Context, variant Variant, plateNumber string) (*Registration, error)
	Update(ctx context.Context, registration *Registration) error
	List(ctx context.Context, filter Filter) ([]*Registration, int64, error)
}
