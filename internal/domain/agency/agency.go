// Package agency models the issuing agencies referenced by registrations
// and licenses.
package agency

import (
	"context"
	"fmt"
	"strings"
	"time"

	"lerms/internal/shared/query"
)

// Agency identifies an issuing law enforcement agency.
type Agency struct {
	ID           uint
	Name         string
	Code         string
	Jurisdiction string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewAgency validates and builds an agency. Code is upper-cased.
func NewAgency(name, code, jurisdiction string) (*Agency, error) {
	if name == "" {
		return nil, fmt.Errorf("agency name is required")
	}
	if code == "" {
		return nil, fmt.Errorf("agency code is required")
	}

	now := time.Now()
	return &Agency{
		Name:         name,
		Code:         strings.ToUpper(code),
		Jurisdiction: jurisdiction,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// Repository persists agencies.
type Repository interface {
	Create(ctx context.Context, agency *Agency) error
	// GetByID returns nil when absent.
	GetByID(ctx context.Context, id uint) (*Agency, error)
	// GetByCode returns nil when absent.
	GetByCode(ctx context.Context, code string) (*Agency, error)
	List(ctx context.Context, filter query.BaseFilter) ([]*Agency, int64, error)
}
