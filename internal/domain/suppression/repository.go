package suppression

import (
	"context"

	"lerms/internal/domain/record"
	"lerms/internal/shared/query"
)

// Filter narrows suppression listings.
type Filter struct {
	query.BaseFilter
	RecordKind string
	Status     string
	CreatedBy  string
}

// Repository persists suppressions and their detail collections.
type Repository interface {
	Create(ctx context.Context, s *Suppression) error
	// GetByID returns the suppression, or nil when the id does not resolve.
	GetByID(ctx context.Context, id uint) (*Suppression, error)
	Update(ctx context.Context, s *Suppression) error
	List(ctx context.Context, filter Filter) ([]*Suppression, int64, error)

	// ActiveIDsForRecord returns the ids of suppressions matching
	// (kind, recordID) with is_active = true AND status = 'active'.
	// The is_suppressed predicate is len(ids) > 0.
	ActiveIDsForRecord(ctx context.Context, kind record.Kind, recordID uint) ([]uint, error)

	AddAccessRequest(ctx context.Context, detail *AccessRequestDetail) error
	AddIdentityAlias(ctx context.Context, detail *IdentityAliasDetail) error
	ListAccessRequests(ctx context.Context, suppressionID uint, filter query.PageFilter) ([]*AccessRequestDetail, int64, error)
	ListIdentityAliases(ctx context.Context, suppressionID uint, filter query.PageFilter) ([]*IdentityAliasDetail, int64, error)
}
