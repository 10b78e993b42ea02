package permission

import (
	"fmt"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"lerms/internal/infrastructure/persistence/models"
	"lerms/internal/shared/constants"
	"lerms/internal/shared/logger"
)

// PermissionSync mirrors the role/permission tables into casbin policy.
// Permission slugs are "resource:action" pairs; the sync splits them so the
// enforcer can match on object and action separately.
type PermissionSync struct {
	db       *gorm.DB
	enforcer *Enforcer
	logger   logger.Interface
}

// NewPermissionSync creates a new permission sync
func NewPermissionSync(db *gorm.DB, enforcer *Enforcer, logger logger.Interface) *PermissionSync {
	return &PermissionSync{
		db:       db,
		enforcer: enforcer,
		logger:   logger,
	}
}

// SyncToCasbin rebuilds casbin policy from the role grants and user role
// assignments. Safe to run repeatedly; casbin ignores duplicate rules.
func (s *PermissionSync) SyncToCasbin() error {
	s.logger.Info("syncing permissions to casbin")

	if err := s.syncRolePermissions(); err != nil {
		return fmt.Errorf("failed to sync role permissions: %w", err)
	}

	if err := s.syncUserRoles(); err != nil {
		return fmt.Errorf("failed to sync user roles: %w", err)
	}

	s.logger.Info("permissions synced to casbin")
	return nil
}

func (s *PermissionSync) syncRolePermissions() error {
	var roles []models.RoleModel
	if err := s.db.Preload("Permissions").Find(&roles).Error; err != nil {
		return fmt.Errorf("failed to load roles: %w", err)
	}

	count := 0
	for _, role := range roles {
		for _, perm := range role.Permissions {
			resource, action, ok := splitSlug(perm.Slug)
			if !ok {
				s.logger.Warnw("skipping malformed permission slug", "slug", perm.Slug)
				continue
			}
			if err := s.enforcer.AddPolicy(role.Slug, resource, action); err != nil {
				return err
			}
			count++
		}
	}

	if count > 0 {
		s.logger.Infow("synced role permissions to casbin", "count", count)
	}
	return nil
}

func (s *PermissionSync) syncUserRoles() error {
	type userRole struct {
		UserID uint
		RoleID uint
	}

	var rows []userRole
	err := s.db.Table(constants.TableUserRoles).
		Select("user_id", "role_id").
		Scan(&rows).Error
	if err != nil {
		return fmt.Errorf("failed to load user roles: %w", err)
	}

	roleSlugs := make(map[uint]string)
	var roles []models.RoleModel
	if err := s.db.Find(&roles).Error; err != nil {
		return fmt.Errorf("failed to load roles: %w", err)
	}
	for _, role := range roles {
		roleSlugs[role.ID] = role.Slug
	}

	count := 0
	for _, row := range rows {
		slug, ok := roleSlugs[row.RoleID]
		if !ok {
			continue
		}
		if err := s.enforcer.AddRoleForUser(strconv.FormatUint(uint64(row.UserID), 10), slug); err != nil {
			return err
		}
		count++
	}

	if count > 0 {
		s.logger.Infow("synced user roles to casbin", "count", count)
	}
	return nil
}

// splitSlug splits "vehicle:read" into ("vehicle", "read")
func splitSlug(slug string) (string, string, bool) {
	parts := strings.SplitN(slug, ":", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}
