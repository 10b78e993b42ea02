package services

import (
	"lerms/internal/domain/identity"
	"lerms/internal/shared/constants"
)

// PermissionService answers capability questions about a resolved user.
type PermissionService struct{}

func NewPermissionService() *PermissionService {
	return &PermissionService{}
}

// HasPermission reports whether the user may exercise a permission slug.
// Admins bypass explicit grants; this check runs before any role scan.
func (s *PermissionService) HasPermission(user *identity.User, permissionSlug string) bool {
	if user == nil {
		return false
	}
	if user.HasRole(constants.RoleSlugAdmin) {
		return true
	}
	for _, role := range user.Roles() {
		if role.HasPermission(permissionSlug) {
			return true
		}
	}
	return false
}

// CanSeeSuppressed reports whether suppressed records are visible to the
// user in listings and lookups.
func (s *PermissionService) CanSeeSuppressed(user *identity.User) bool {
	return s.HasPermission(user, constants.PermissionSuppressionRead)
}
