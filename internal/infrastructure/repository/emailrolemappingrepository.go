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

// EmailRoleMappingRepository implements the email-role mapping repository interface
type EmailRoleMappingRepository struct {
	db     *gorm.DB
	mapper mappers.IdentityMapper
	logger logger.Interface
}

// NewEmailRoleMappingRepository creates a new email-role mapping repository
func NewEmailRoleMappingRepository(gormDB *gorm.DB, logger logger.Interface) identity.EmailRoleMappingRepository {
	return &EmailRoleMappingRepository{
		db:     gormDB,
		mapper: mappers.NewIdentityMapper(),
		logger: logger,
	}
}

// Create creates a new mapping
func (r *EmailRoleMappingRepository) Create(ctx context.Context, mapping *identity.EmailRoleMapping) error {
	model := r.mapper.MappingToModel(mapping)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create email role mapping", "pattern", model.Pattern, "error", err)
		return fmt.Errorf("failed to create mapping: %w", err)
	}

	mapping.ID = model.ID

	r.logger.Infow("email role mapping created", "id", model.ID, "pattern", model.Pattern, "role_id", model.RoleID)
	return nil
}

// List returns every mapping. The resolver evaluates all of them per
// resolution, so the set is expected to stay small.
func (r *EmailRoleMappingRepository) List(ctx context.Context) ([]*identity.EmailRoleMapping, error) {
	var mappingModels []*models.EmailRoleMappingModel

	err := db.GetTxFromContext(ctx, r.db).
		Order("id ASC").
		Find(&mappingModels).Error
	if err != nil {
		r.logger.Errorw("failed to list email role mappings", "error", err)
		return nil, fmt.Errorf("failed to list mappings: %w", err)
	}

	mappings := make([]*identity.EmailRoleMapping, 0, len(mappingModels))
	for _, model := range mappingModels {
		mappings = append(mappings, r.mapper.MappingToEntity(model))
	}

	return mappings, nil
}

// Delete removes a mapping
func (r *EmailRoleMappingRepository) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.EmailRoleMappingModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete email role mapping", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete mapping: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("mapping not found")
	}

	r.logger.Infow("email role mapping deleted", "id", id)
	return nil
}
