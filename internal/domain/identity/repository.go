package identity

import (
	"context"

	"lerms/internal/shared/query"
)

// UserFilter narrows user listings.
type UserFilter struct {
	query.BaseFilter
	Email    string
	IsActive *bool
}

// UserRepository persists principals. Create must surface duplicate-key
// conflicts distinguishably so the resolver can re-fetch instead of failing
// (two concurrent first-contact requests from the same new email).
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	// GetByEmail matches case-insensitively; returns nil when absent.
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id uint) (*User, error)
	Update(ctx context.Context, user *User) error
	List(ctx context.Context, filter UserFilter) ([]*User, int64, error)
	AssignRoles(ctx context.Context, userID uint, roleIDs []uint) error
}

// RoleRepository persists roles and their permission grants.
type RoleRepository interface {
	Create(ctx context.Context, role *Role) error
	GetByID(ctx context.Context, id uint) (*Role, error)
	// GetBySlug returns nil when absent.
	GetBySlug(ctx context.Context, slug string) (*Role, error)
	List(ctx context.Context, filter query.BaseFilter) ([]*Role, int64, error)
	GrantPermission(ctx context.Context, roleID, permissionID uint) error
}

// PermissionRepository persists the grantable capability vocabulary.
type PermissionRepository interface {
	Create(ctx context.Context, permission *Permission) error
	GetBySlug(ctx context.Context, slug string) (*Permission, error)
	List(ctx context.Context) ([]*Permission, error)
}

// EmailRoleMappingRepository persists email-pattern role mappings.
type EmailRoleMappingRepository interface {
	Create(ctx context.Context, mapping *EmailRoleMapping) error
	List(ctx context.Context) ([]*EmailRoleMapping, error)
	Delete(ctx context.Context, id uint) error
}
