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
)

// PermissionRepository implements the identity permission repository interface
type PermissionRepository struct {
	db     *gorm.DB
	mapper mappers.IdentityMapper
	logger logger.Interface
}

// NewPermissionRepository creates a new permission repository
func NewPermissionRepository(gormDB *gorm.DB, logger logger.Interface) identity.PermissionRepository {
	return &PermissionRepository{
		db:     gormDB,
		mapper: mappers.NewIdentityMapper(),
		logger: logger,
	}
}

// Create creates a new permission
func (r *PermissionRepository) Create(ctx context.Context, permission *identity.Permission) error {
	model := r.mapper.PermissionToModel(permission)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create permission", "slug", model.Slug, "error", err)
		return fmt.Errorf("failed to create permission: %w", err)
	}

	if err := permission.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set permission ID: %w", err)
	}

	r.logger.Infow("permission created", "id", model.ID, "slug", model.Slug)
	return nil
}

// GetBySlug retrieves a permission by slug, returning nil when absent
func (r *PermissionRepository) GetBySlug(ctx context.Context, slug string) (*identity.Permission, error) {
	var model models.PermissionModel

	err := db.GetTxFromContext(ctx, r.db).
		Where("slug = ?", slug).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get permission by slug", "slug", slug, "error", err)
		return nil, fmt.Errorf("failed to get permission: %w", err)
	}

	return r.mapper.PermissionToEntity(&model)
}

// List returns the whole permission vocabulary
func (r *PermissionRepository) List(ctx context.Context) ([]*identity.Permission, error) {
	var permissionModels []*models.PermissionModel

	err := db.GetTxFromContext(ctx, r.db).
		Order("slug ASC").
		Find(&permissionModels).Error
	if err != nil {
		r.logger.Errorw("failed to list permissions", "error", err)
		return nil, fmt.Errorf("failed to list permissions: %w", err)
	}

	permissions := make([]*identity.Permission, 0, len(permissionModels))
	for _, model := range permissionModels {
		entity, err := r.mapper.PermissionToEntity(model)
		if err != nil {
			return nil, err
		}
		permissions = append(permissions, entity)
	}

	return permissions, nil
}
