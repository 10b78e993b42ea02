package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"lerms/internal/domain/agency"
	"lerms/internal/infrastructure/persistence/mappers"
	"lerms/internal/infrastructure/persistence/models"
	"lerms/internal/shared/db"
	"lerms/internal/shared/logger"
	"lerms/internal/shared/query"
)

// AgencyRepository implements the agency repository interface
type AgencyRepository struct {
	db     *gorm.DB
	mapper mappers.AgencyMapper
	logger logger.Interface
}

// NewAgencyRepository creates a new agency repository
func NewAgencyRepository(gormDB *gorm.DB, logger logger.Interface) agency.Repository {
	return &AgencyRepository{
		db:     gormDB,
		mapper: mappers.NewAgencyMapper(),
		logger: logger,
	}
}

// Create creates a new agency
func (r *AgencyRepository) Create(ctx context.Context, agencyEntity *agency.Agency) error {
	model := r.mapper.ToModel(agencyEntity)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create agency", "code", model.Code, "error", err)
		return fmt.Errorf("failed to create agency: %w", err)
	}

	agencyEntity.ID = model.ID

	r.logger.Infow("agency created", "id", model.ID, "code", model.Code)
	return nil
}

// GetByID retrieves an agency by ID, returning nil when absent
func (r *AgencyRepository) GetByID(ctx context.Context, id uint) (*agency.Agency, error) {
	var model models.AgencyModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get agency by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get agency: %w", err)
	}

	return r.mapper.ToEntity(&model), nil
}

// GetByCode retrieves an agency by code, returning nil when absent.
// Codes are stored upper-cased; lookup is case-insensitive.
func (r *AgencyRepository) GetByCode(ctx context.Context, code string) (*agency.Agency, error) {
	var model models.AgencyModel

	err := db.GetTxFromContext(ctx, r.db).
		Where("code = ?", strings.ToUpper(code)).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get agency by code", "code", code, "error", err)
		return nil, fmt.Errorf("failed to get agency: %w", err)
	}

	return r.mapper.ToEntity(&model), nil
}

// List retrieves a paginated list of agencies
func (r *AgencyRepository) List(ctx context.Context, filter query.BaseFilter) ([]*agency.Agency, int64, error) {
	var agencyModels []*models.AgencyModel
	var total int64

	q := db.GetTxFromContext(ctx, r.db).Model(&models.AgencyModel{})

	if err := q.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count agencies", "error", err)
		return nil, 0, fmt.Errorf("failed to count agencies: %w", err)
	}

	q = q.Order("name ASC").Offset(filter.Offset()).Limit(filter.Limit())

	if err := q.Find(&agencyModels).Error; err != nil {
		r.logger.Errorw("failed to list agencies", "error", err)
		return nil, 0, fmt.Errorf("failed to list agencies: %w", err)
	}

	return r.mapper.ToEntities(agencyModels), total, nil
}
