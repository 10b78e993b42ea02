package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"lerms/internal/domain/action"
	"lerms/internal/domain/record"
	"lerms/internal/infrastructure/persistence/mappers"
	"lerms/internal/infrastructure/persistence/models"
	"lerms/internal/shared/db"
	"lerms/internal/shared/logger"
	"lerms/internal/shared/query"
)

// ActionTypeRepository reads the seeded action vocabulary
type ActionTypeRepository struct {
	db     *gorm.DB
	mapper mappers.ActionMapper
	logger logger.Interface
}

// NewActionTypeRepository creates a new action type repository
func NewActionTypeRepository(gormDB *gorm.DB, logger logger.Interface) action.TypeRepository {
	return &ActionTypeRepository{
		db:     gormDB,
		mapper: mappers.NewActionMapper(),
		logger: logger,
	}
}

// GetByName retrieves an action type by name, returning nil when unknown
func (r *ActionTypeRepository) GetByName(ctx context.Context, name string) (*action.Type, error) {
	var model models.ActionTypeModel

	err := db.GetTxFromContext(ctx, r.db).
		Where("name = ?", name).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get action type by name", "name", name, "error", err)
		return nil, fmt.Errorf("failed to get action type: %w", err)
	}

	return r.mapper.TypeToEntity(&model), nil
}

// List returns the whole action vocabulary
func (r *ActionTypeRepository) List(ctx context.Context) ([]*action.Type, error) {
	var typeModels []*models.ActionTypeModel

	err := db.GetTxFromContext(ctx, r.db).
		Order("id ASC").
		Find(&typeModels).Error
	if err != nil {
		r.logger.Errorw("failed to list action types", "error", err)
		return nil, fmt.Errorf("failed to list action types: %w", err)
	}

	return r.mapper.TypesToEntities(typeModels), nil
}

// ActionLogRepository persists append-only audit entries
type ActionLogRepository struct {
	db     *gorm.DB
	mapper mappers.ActionMapper
	logger logger.Interface
}

// NewActionLogRepository creates a new action log repository
func NewActionLogRepository(gormDB *gorm.DB, logger logger.Interface) action.LogRepository {
	return &ActionLogRepository{
		db:     gormDB,
		mapper: mappers.NewActionMapper(),
		logger: logger,
	}
}

// Create writes one audit entry. It joins the caller's transaction when one
// is in the context, so a status write and its audit row commit together.
func (r *ActionLogRepository) Create(ctx context.Context, logEntry *action.Log) error {
	model := r.mapper.LogToModel(logEntry)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create action log",
			"record_kind", model.RecordKind,
			"record_id", model.RecordID,
			"action", model.ActionName,
			"error", err)
		return fmt.Errorf("failed to create action log: %w", err)
	}

	logEntry.ID = model.ID
	return nil
}

// ListByRecord returns entries for one record ordered created_at DESC
func (r *ActionLogRepository) ListByRecord(ctx context.Context, kind record.Kind, recordID uint, filter query.PageFilter) ([]*action.Log, int64, error) {
	var logModels []*models.ActionLogModel
	var total int64

	q := db.GetTxFromContext(ctx, r.db).Model(&models.ActionLogModel{}).
		Where("record_kind = ? AND record_id = ?", kind.String(), recordID)

	if err := q.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count action logs", "record_kind", kind, "record_id", recordID, "error", err)
		return nil, 0, fmt.Errorf("failed to count action logs: %w", err)
	}

	err := q.Order("created_at DESC, id DESC").
		Offset(filter.Offset()).
		Limit(filter.Limit()).
		Find(&logModels).Error
	if err != nil {
		r.logger.Errorw("failed to list action logs", "record_kind", kind, "record_id", recordID, "error", err)
		return nil, 0, fmt.Errorf("failed to list action logs: %w", err)
	}

	entities, err := r.mapper.LogsToEntities(logModels)
	if err != nil {
		r.logger.Errorw("failed to map action log models", "error", err)
		return nil, 0, fmt.Errorf("failed to map action logs: %w", err)
	}

	return entities, total, nil
}
