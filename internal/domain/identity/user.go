// Package identity models principals, roles, permissions, and the
// email-pattern role mappings used to resolve not-yet-persisted callers.
package identity

import (
	"fmt"
	"strings"
	"time"
)

// User is the principal aggregate. A transient user (id 0) exists only for
// the duration of a request; the resolver persists it before any operation
// that needs audit linkage.
type User struct {
	id           uint
	email        string
	name         string
	passwordHash *string
	isActive     bool
	roles        []*Role
	createdAt    time.Time
	updatedAt    time.Time
}

// NewUser creates a transient user for the given email. Email is normalized
// to lower case; matching throughout the system is case-insensitive.
func NewUser(email, name string) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if !strings.Contains(email, "@") {
		return nil, fmt.Errorf("invalid email %q", email)
	}
	if name == "" {
		name = email[:strings.Index(email, "@")]
	}

	now := time.Now()
	return &User{
		email:     email,
		name:      name,
		isActive:  true,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// NewGuestUser synthesizes a placeholder identity for requests that supply
// no email. It carries only the default role and is never persisted.
func NewGuestUser(defaultRole *Role) *User {
	u := &User{
		email:    "guest@local",
		name:     "Guest",
		isActive: true,
	}
	if defaultRole != nil {
		u.roles = []*Role{defaultRole}
	}
	return u
}

// ReconstructUser rebuilds a user from persistence.
func ReconstructUser(id uint, email, name string, passwordHash *string, isActive bool, roles []*Role, createdAt, updatedAt time.Time) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}

	return &User{
		id:           id,
		email:        strings.ToLower(email),
		name:         name,
		passwordHash: passwordHash,
		isActive:     isActive,
		roles:        roles,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (u *User) ID() uint              { return u.id }
func (u *User) Email() string        { return u.email }
func (u *User) Name() string         { return u.name }
func (u *User) PasswordHash() *string { return u.passwordHash }
func (u *User) IsActive() bool       { return u.isActive }
func (u *User) Roles() []*Role       { return u.roles }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }

// IsTransient reports whether the user has not been persisted yet.
func (u *User) IsTransient() bool {
	return u.id == 0
}

// SetID assigns the persistence-generated ID after the first save.
func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

// GrantRole adds a role, ignoring duplicates by slug.
func (u *User) GrantRole(role *Role) {
	if role == nil {
		return
	}
	for _, r := range u.roles {
		if r.Slug() == role.Slug() {
			return
		}
	}
	u.roles = append(u.roles, role)
}

// HasRole reports whether the user carries a role with the given slug.
func (u *User) HasRole(slug string) bool {
	for _, r := range u.roles {
		if r.Slug() == slug {
			return true
		}
	}
	return false
}

// Deactivate disables the principal.
func (u *User) Deactivate() {
	u.isActive = false
	u.updatedAt = time.Now()
}

// SetPasswordHash stores a bcrypt hash. The domain never sees plaintext.
func (u *User) SetPasswordHash(hash string) {
	u.passwordHash = &hash
	u.updatedAt = time.Now()
}
