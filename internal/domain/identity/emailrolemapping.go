package identity

import (
	"fmt"
	"strings"
	"time"
)

// EmailRoleMapping assigns a role to emails matching a pattern. A pattern is
// either an exact address or a %-prefixed suffix wildcard ("%@agency.gov").
// Every mapping is evaluated at resolution time; a user matching several
// patterns receives all of the mapped roles, not just the first.
type EmailRoleMapping struct {
	ID        uint
	Pattern   string
	RoleID    uint
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewEmailRoleMapping validates and builds a mapping.
func NewEmailRoleMapping(pattern string, roleID uint) (*EmailRoleMapping, error) {
	pattern = strings.ToLower(strings.TrimSpace(pattern))
	if pattern == "" {
		return nil, fmt.Errorf("pattern is required")
	}
	if roleID == 0 {
		return nil, fmt.Errorf("role ID is required")
	}
	if pattern == "%" {
		return nil, fmt.Errorf("pattern %q matches everything", pattern)
	}

	now := time.Now()
	return &EmailRoleMapping{
		Pattern:   pattern,
		RoleID:    roleID,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Matches reports whether the email satisfies the pattern. Comparison is
// case-insensitive. "%suffix" matches any email ending in suffix; any other
// pattern requires an exact match.
func (m *EmailRoleMapping) Matches(email string) bool {
	email = strings.ToLower(strings.TrimSpace(email))
	pattern := strings.ToLower(m.Pattern)
	if email == "" {
		return false
	}

	if strings.HasPrefix(pattern, "%") {
		return strings.HasSuffix(email, pattern[1:])
	}
	return email == pattern
}
