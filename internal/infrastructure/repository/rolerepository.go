package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"lerms/internal/domain/identity"
	"lerms/internal/infrastructure/persistence/mappers"
	"lerms/internal/infrastructure/persistence/models"
	"lerms/internal/shared/db"
	"lerms/internal/shared/logger"
	"lerms/internal/shared/query"
)

// RoleRepository implements the identity role repository interface
type RoleRepository struct {
	db     *gorm.DB
	mapper mappers.IdentityMapper
	logger logger.Interface
}

// NewRoleRepository creates a new role repository
func NewRoleRepository(gormDB *gorm.DB, logger logger.Interface) identity.RoleRepository {
	return &RoleRepository{
		db:     gormDB,
		mapper: mappers.NewIdentityMapper(),
		logger: logger,
	}
}

// Create creates a new role
func (r *RoleRepository) Create(ctx context.Context, role *identity.Role) error {
	model, err := r.mapper.RoleToModel(role)
	if err != nil {
		r.logger.Errorw("failed to map role to model", "error", err)
		return fmt.Errorf("failed to map role: %w", err)
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create role", "slug", model.Slug, "error", err)
		return fmt.Errorf("failed to create role: %w", err)
	}

	if err := role.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set role ID: %w", err)
	}

	r.logger.Infow("role created", "id", model.ID, "slug", model.Slug)
	return nil
}

// GetByID retrieves a role by ID with permissions preloaded, returning nil
// when absent
func (r *RoleRepository) GetByID(ctx context.Context, id uint) (*identity.Role, error) {
	var model models.RoleModel

	err := db.GetTxFromContext(ctx, r.db).
		Preload("Permissions").
		First(&model, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get role by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get role: %w", err)
	}

	return r.mapper.RoleToEntity(&model)
}

// GetBySlug retrieves a role by slug with permissions preloaded, returning
// nil when absent
func (r *RoleRepository) GetBySlug(ctx context.Context, slug string) (*identity.Role, error) {
	var model models.RoleModel

	err := db.GetTxFromContext(ctx, r.db).
		Preload("Permissions").
		Where("slug = ?", slug).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get role by slug", "slug", slug, "error", err)
		return nil, fmt.Errorf("failed to get role: %w", err)
	}

	return r.mapper.RoleToEntity(&model)
}

// List retrieves a paginated list of roles
func (r *RoleRepository) List(ctx context.Context, filter query.BaseFilter) ([]*identity.Role, int64, error) {
	var roleModels []*models.RoleModel
	var total int64

	q := db.GetTxFromContext(ctx, r.db).Model(&models.RoleModel{})

	if err := q.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count roles", "error", err)
		return nil, 0, fmt.Errorf("failed to count roles: %w", err)
	}

	err := q.Preload("Permissions").
		Order("id ASC").
		Offset(filter.Offset()).
		Limit(filter.Limit()).
		Find(&roleModels).Error
	if err != nil {
		r.logger.Errorw("failed to list roles", "error", err)
		return nil, 0, fmt.Errorf("failed to list roles: %w", err)
	}

	entities, err := r.mapper.RolesToEntities(roleModels)
	if err != nil {
		r.logger.Errorw("failed to map role models", "error", err)
		return nil, 0, fmt.Errorf("failed to map roles: %w", err)
	}

	return entities, total, nil
}

// GrantPermission attaches a permission to a role, ignoring duplicates
func (r *RoleRepository) GrantPermission(ctx context.Context, roleID, permissionID uint) error {
	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.RoleModel{ID: roleID}).
		Association("Permissions").
		Append(&models.PermissionModel{ID: permissionID})
	if err != nil {
		r.logger.Errorw("failed to grant permission", "role_id", roleID, "permission_id", permissionID, "error", err)
		return fmt.Errorf("failed to grant permission: %w", err)
	}

	r.logger.Infow("permission granted", "role_id", roleID, "permission_id", permissionID)
	return nil
}
