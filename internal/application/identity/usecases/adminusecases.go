// Package usecases holds the admin-facing identity management operations:
// roles, email-role mappings, and user accounts.
package usecases

import (
	"context"
	"strconv"

	"lerms/internal/domain/identity"
	apperrors "lerms/internal/shared/errors"
	"lerms/internal/shared/logger"
	"lerms/internal/shared/query"
)

type CreateRoleCommand struct {
	Name        string
	Slug        string
	Description string
}

type CreateMappingCommand struct {
	Pattern string
	RoleID  uint
}

// AdminUseCase is the admin surface over the identity tables. Everything
// here sits behind the admin:manage permission.
type AdminUseCase struct {
	userRepo    identity.UserRepository
	roleRepo    identity.RoleRepository
	permRepo    identity.PermissionRepository
	mappingRepo identity.EmailRoleMappingRepository
	logger      logger.Interface
}

func NewAdminUseCase(
	userRepo identity.UserRepository,
	roleRepo identity.RoleRepository,
	permRepo identity.PermissionRepository,
	mappingRepo identity.EmailRoleMappingRepository,
	logger logger.Interface,
) *AdminUseCase {
	return &AdminUseCase{
		userRepo:    userRepo,
		roleRepo:    roleRepo,
		permRepo:    permRepo,
		mappingRepo: mappingRepo,
		logger:      logger,
	}
}

func (uc *AdminUseCase) CreateRole(ctx context.Context, cmd CreateRoleCommand) (*identity.Role, error) {
	role, err := identity.NewRole(cmd.Name, cmd.Slug, cmd.Description, false)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	existing, err := uc.roleRepo.GetBySlug(ctx, role.Slug())
	if err != nil {
		return nil, apperrors.NewStorageError("get role", err)
	}
	if existing != nil {
		return nil, apperrors.NewConflictError("role slug already exists", role.Slug())
	}

	if err := uc.roleRepo.Create(ctx, role); err != nil {
		uc.logger.Errorw("failed to create role", "error", err, "slug", role.Slug())
		return nil, apperrors.NewStorageError("create role", err)
	}

	uc.logger.Infow("role created", "role_id", role.ID(), "slug", role.Slug())
	return role, nil
}

func (uc *AdminUseCase) ListRoles(ctx context.Context, page, pageSize int) ([]*identity.Role, int64, error) {
	var filter query.BaseFilter
	filter.Page = page
	filter.PageSize = pageSize

	roles, total, err := uc.roleRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list roles", "error", err)
		return nil, 0, apperrors.NewStorageError("list roles", err)
	}
	return roles, total, nil
}

func (uc *AdminUseCase) GrantPermission(ctx context.Context, roleID uint, permissionSlug string) error {
	role, err := uc.roleRepo.GetByID(ctx, roleID)
	if err != nil {
		return apperrors.NewStorageError("get role", err)
	}
	if role == nil {
		return apperrors.NewNotFoundError("role not found", strconv.FormatUint(uint64(roleID), 10))
	}

	perm, err := uc.permRepo.GetBySlug(ctx, permissionSlug)
	if err != nil {
		return apperrors.NewStorageError("get permission", err)
	}
	if perm == nil {
		return apperrors.NewNotFoundError("permission not found", permissionSlug)
	}

	if err := uc.roleRepo.GrantPermission(ctx, roleID, perm.ID()); err != nil {
		uc.logger.Errorw("failed to grant permission", "error", err, "role_id", roleID, "permission", permissionSlug)
		return apperrors.NewStorageError("grant permission", err)
	}

	uc.logger.Infow("permission granted", "role_id", roleID, "permission", permissionSlug)
	return nil
}

func (uc *AdminUseCase) ListPermissions(ctx context.Context) ([]*identity.Permission, error) {
	perms, err := uc.permRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list permissions", "error", err)
		return nil, apperrors.NewStorageError("list permissions", err)
	}
	return perms, nil
}

func (uc *AdminUseCase) CreateMapping(ctx context.Context, cmd CreateMappingCommand) (*identity.EmailRoleMapping, error) {
	role, err := uc.roleRepo.GetByID(ctx, cmd.RoleID)
	if err != nil {
		return nil, apperrors.NewStorageError("get role", err)
	}
	if role == nil {
		return nil, apperrors.NewNotFoundError("role not found", strconv.FormatUint(uint64(cmd.RoleID), 10))
	}

	mapping, err := identity.NewEmailRoleMapping(cmd.Pattern, cmd.RoleID)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.mappingRepo.Create(ctx, mapping); err != nil {
		uc.logger.Errorw("failed to create mapping", "error", err, "pattern", mapping.Pattern)
		return nil, apperrors.NewStorageError("create email role mapping", err)
	}

	uc.logger.Infow("email role mapping created", "mapping_id", mapping.ID, "pattern", mapping.Pattern, "role_id", mapping.RoleID)
	return mapping, nil
}

func (uc *AdminUseCase) ListMappings(ctx context.Context) ([]*identity.EmailRoleMapping, error) {
	mappings, err := uc.mappingRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list mappings", "error", err)
		return nil, apperrors.NewStorageError("list email role mappings", err)
	}
	return mappings, nil
}

func (uc *AdminUseCase) DeleteMapping(ctx context.Context, mappingID uint) error {
	if err := uc.mappingRepo.Delete(ctx, mappingID); err != nil {
		uc.logger.Errorw("failed to delete mapping", "error", err, "mapping_id", mappingID)
		return apperrors.NewStorageError("delete email role mapping", err)
	}
	uc.logger.Infow("email role mapping deleted", "mapping_id", mappingID)
	return nil
}

func (uc *AdminUseCase) ListUsers(ctx context.Context, email string, page, pageSize int) ([]*identity.User, int64, error) {
	filter := identity.UserFilter{Email: email}
	filter.Page = page
	filter.PageSize = pageSize

	users, total, err := uc.userRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list users", "error", err)
		return nil, 0, apperrors.NewStorageError("list users", err)
	}
	return users, total, nil
}

func (uc *AdminUseCase) DeactivateUser(ctx context.Context, userID uint) error {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return apperrors.NewStorageError("get user", err)
	}
	if user == nil {
		return apperrors.NewNotFoundError("user not found", strconv.FormatUint(uint64(userID), 10))
	}

	user.Deactivate()
	if err := uc.userRepo.Update(ctx, user); err != nil {
		uc.logger.Errorw("failed to deactivate user", "error", err, "user_id", userID)
		return apperrors.NewStorageError("update user", err)
	}

	uc.logger.Infow("user deactivated", "user_id", userID)
	return nil
}
