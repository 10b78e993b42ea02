package identity

import (
	"fmt"
	"strings"
	"time"
)

// Role groups permissions. Slug "admin" is the documented superuser bypass:
// permission checks succeed for admins regardless of explicit grants.
type Role struct {
	id          uint
	name        string
	slug        string
	description string
	isSystem    bool
	permissions []*Permission
	createdAt   time.Time
	updatedAt   time.Time
}

// NewRole creates a role. Slug defaults to the lower-cased name.
func NewRole(name, slug, description string, isSystem bool) (*Role, error) {
	if name == "" {
		return nil, fmt.Errorf("role name is required")
	}
	if slug == "" {
		slug = strings.ToLower(name)
	}

	now := time.Now()
	return &Role{
		name:        name,
		slug:        slug,
		description: description,
		isSystem:    isSystem,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructRole rebuilds a role from persistence.
func ReconstructRole(id uint, name, slug, description string, isSystem bool, permissions []*Permission, createdAt, updatedAt time.Time) (*Role, error) {
	if id == 0 {
		return nil, fmt.Errorf("role ID cannot be zero")
	}

	return &Role{
		id:          id,
		name:        name,
		slug:        slug,
		description: description,
		isSystem:    isSystem,
		permissions: permissions,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (r *Role) ID() uint                    { return r.id }
func (r *Role) Name() string                { return r.name }
func (r *Role) Slug() string                { return r.slug }
func (r *Role) Description() string         { return r.description }
func (r *Role) IsSystem() bool              { return r.isSystem }
func (r *Role) Permissions() []*Permission  { return r.permissions }
func (r *Role) CreatedAt() time.Time        { return r.createdAt }
func (r *Role) UpdatedAt() time.Time        { return r.updatedAt }

// SetID assigns the persistence-generated ID after the first save.
func (r *Role) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("role ID already set")
	}
	if id == 0 {
		return fmt.Errorf("role ID cannot be zero")
	}
	r.id = id
	return nil
}

// HasPermission reports whether the role carries a permission slug.
func (r *Role) HasPermission(slug string) bool {
	for _, p := range r.permissions {
		if p.Slug() == slug {
			return true
		}
	}
	return false
}

// Permission names a grantable capability, e.g. "vehicle:write" or
// "suppression:read".
type Permission struct {
	id          uint
	slug        string
	description string
	createdAt   time.Time
}

// NewPermission creates a permission.
func NewPermission(slug, description string) (*Permission, error) {
	if slug == "" {
		return nil, fmt.Errorf("permission slug is required")
	}
	return &Permission{
		slug:        slug,
		description: description,
		createdAt:   time.Now(),
	}, nil
}

// ReconstructPermission rebuilds a permission from persistence.
func ReconstructPermission(id uint, slug, description string, createdAt time.Time) (*Permission, error) {
	if id == 0 {
		return nil, fmt.Errorf("permission ID cannot be zero")
	}
	return &Permission{
		id:          id,
		slug:        slug,
		description: description,
		createdAt:   createdAt,
	}, nil
}

func (p *Permission) ID() uint            { return p.id }
func (p *Permission) Slug() string        { return p.slug }
func (p *Permission) Description() string { return p.description }
func (p *Permission) CreatedAt() time.Time { return p.createdAt }

// SetID assigns the persistence-generated ID after the first save.
func (p *Permission) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("permission ID already set")
	}
	if id == 0 {
		return fmt.Errorf("permission ID cannot be zero")
	}
	p.id = id
	return nil
}
