package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"lerms/internal/domain/record"
	"lerms/internal/domain/suppression"
	"lerms/internal/infrastructure/persistence/mappers"
	"lerms/internal/infrastructure/persistence/models"
	"lerms/internal/shared/constants"
	"lerms/internal/shared/db"
	"lerms/internal/shared/logger"
	"lerms/internal/shared/query"
)

// allowedSuppressionOrderByFields defines the whitelist of allowed ORDER BY
// fields to prevent SQL injection attacks.
var allowedSuppressionOrderByFields = map[string]bool{
	"id":              true,
	"record_kind":     true,
	"reason":          true,
	"effective_date":  true,
	"expiration_date": true,
	"status":          true,
	"created_at":      true,
	"updated_at":      true,
}

// SuppressionRepository implements the suppression repository interface
type SuppressionRepository struct {
	db     *gorm.DB
	mapper mappers.SuppressionMapper
	logger logger.Interface
}

// NewSuppressionRepository creates a new suppression repository
func NewSuppressionRepository(gormDB *gorm.DB, logger logger.Interface) suppression.Repository {
	return &SuppressionRepository{
		db:     gormDB,
		mapper: mappers.NewSuppressionMapper(),
		logger: logger,
	}
}

// Create creates a new suppression
func (r *SuppressionRepository) Create(ctx context.Context, s *suppression.Suppression) error {
	model, err := r.mapper.ToModel(s)
	if err != nil {
		r.logger.Errorw("failed to map suppression to model", "error", err)
		return fmt.Errorf("failed to map suppression: %w", err)
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create suppression", "record_kind", model.RecordKind, "error", err)
		return fmt.Errorf("failed to create suppression: %w", err)
	}

	if err := s.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set suppression ID: %w", err)
	}

	r.logger.Infow("suppression created", "id", model.ID, "record_kind", model.RecordKind)
	return nil
}

// GetByID retrieves a suppression by ID, returning nil when absent
func (r *SuppressionRepository) GetByID(ctx context.Context, id uint) (*suppression.Suppression, error) {
	var model models.SuppressionModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get suppression by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get suppression: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// Update persists the full current state of a suppression
func (r *SuppressionRepository) Update(ctx context.Context, s *suppression.Suppression) error {
	model, err := r.mapper.ToModel(s)
	if err != nil {
		r.logger.Errorw("failed to map suppression to model", "id", s.ID(), "error", err)
		return fmt.Errorf("failed to map suppression: %w", err)
	}

	result := db.GetTxFromContext(ctx, r.db).Model(&models.SuppressionModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"reason":             model.Reason,
			"reason_description": model.ReasonDescription,
			"effective_date":     model.EffectiveDate,
			"expiration_date":    model.ExpirationDate,
			"status":             model.Status,
			"is_active":          model.IsActive,
			"updated_at":         model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update suppression", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update suppression: %w", result.Error)
	}

	r.logger.Infow("suppression updated", "id", model.ID, "status", model.Status)
	return nil
}

// List retrieves a paginated list of suppressions
func (r *SuppressionRepository) List(ctx context.Context, filter suppression.Filter) ([]*suppression.Suppression, int64, error) {
	var suppressionModels []*models.SuppressionModel
	var total int64

	q := db.GetTxFromContext(ctx, r.db).Model(&models.SuppressionModel{})

	if filter.RecordKind != "" {
		q = q.Where("record_kind = ?", filter.RecordKind)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.CreatedBy != "" {
		q = q.Where("created_by = ?", filter.CreatedBy)
	}

	if err := q.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count suppressions", "error", err)
		return nil, 0, fmt.Errorf("failed to count suppressions: %w", err)
	}

	orderBy := filter.SortBy
	if orderBy == "" || !allowedSuppressionOrderByFields[orderBy] {
		q = q.Order("created_at DESC")
	} else {
		order := "ASC"
		if strings.EqualFold(filter.SortOrder, "desc") {
			order = "DESC"
		}
		q = q.Order(fmt.Sprintf("%s %s", orderBy, order))
	}

	q = q.Offset(filter.Offset()).Limit(filter.Limit())

	if err := q.Find(&suppressionModels).Error; err != nil {
		r.logger.Errorw("failed to list suppressions", "error", err)
		return nil, 0, fmt.Errorf("failed to list suppressions: %w", err)
	}

	entities, err := r.mapper.ToEntities(suppressionModels)
	if err != nil {
		r.logger.Errorw("failed to map suppression models", "error", err)
		return nil, 0, fmt.Errorf("failed to map suppressions: %w", err)
	}

	return entities, total, nil
}

// ActiveIDsForRecord returns the ids of active suppressions for one record.
// The is_suppressed predicate is len(ids) > 0.
func (r *SuppressionRepository) ActiveIDsForRecord(ctx context.Context, kind record.Kind, recordID uint) ([]uint, error) {
	var ids []uint

	err := db.GetTxFromContext(ctx, r.db).Model(&models.SuppressionModel{}).
		Where("record_kind = ? AND record_id = ?", kind.String(), recordID).
		Where("is_active = ?", true).
		Where("status = ?", constants.SuppressionStatusActive).
		Order("id ASC").
		Pluck("id", &ids).Error
	if err != nil {
		r.logger.Errorw("failed to query active suppressions", "record_kind", kind, "record_id", recordID, "error", err)
		return nil, fmt.Errorf("failed to query active suppressions: %w", err)
	}

	return ids, nil
}

// AddAccessRequest persists an access-request detail row
func (r *SuppressionRepository) AddAccessRequest(ctx context.Context, detail *suppression.AccessRequestDetail) error {
	model := r.mapper.AccessRequestToModel(detail)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create access request", "suppression_id", model.SuppressionID, "error", err)
		return fmt.Errorf("failed to create access request: %w", err)
	}

	detail.ID = model.ID
	return nil
}

// AddIdentityAlias persists an identity-alias detail row
func (r *SuppressionRepository) AddIdentityAlias(ctx context.Context, detail *suppression.IdentityAliasDetail) error {
	model := r.mapper.IdentityAliasToModel(detail)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create identity alias", "suppression_id", model.SuppressionID, "error", err)
		return fmt.Errorf("failed to create identity alias: %w", err)
	}

	detail.ID = model.ID
	return nil
}

// ListAccessRequests returns access-request rows for one suppression
func (r *SuppressionRepository) ListAccessRequests(ctx context.Context, suppressionID uint, filter query.PageFilter) ([]*suppression.AccessRequestDetail, int64, error) {
	var detailModels []*models.AccessRequestDetailModel
	var total int64

	q := db.GetTxFromContext(ctx, r.db).Model(&models.AccessRequestDetailModel{}).
		Where("suppression_id = ?", suppressionID)

	if err := q.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count access requests", "suppression_id", suppressionID, "error", err)
		return nil, 0, fmt.Errorf("failed to count access requests: %w", err)
	}

	err := q.Order("date_requested DESC, id DESC").
		Offset(filter.Offset()).
		Limit(filter.Limit()).
		Find(&detailModels).Error
	if err != nil {
		r.logger.Errorw("failed to list access requests", "suppression_id", suppressionID, "error", err)
		return nil, 0, fmt.Errorf("failed to list access requests: %w", err)
	}

	details := make([]*suppression.AccessRequestDetail, 0, len(detailModels))
	for _, model := range detailModels {
		details = append(details, r.mapper.AccessRequestToEntity(model))
	}

	return details, total, nil
}

// ListIdentityAliases returns identity-alias rows for one suppression
func (r *SuppressionRepository) ListIdentityAliases(ctx context.Context, suppressionID uint, filter query.PageFilter) ([]*suppression.IdentityAliasDetail, int64, error) {
	var detailModels []*models.IdentityAliasDetailModel
	var total int64

	q := db.GetTxFromContext(ctx, r.db).Model(&models.IdentityAliasDetailModel{}).
		Where("suppression_id = ?", suppressionID)

	if err := q.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count identity aliases", "suppression_id", suppressionID, "error", err)
		return nil, 0, fmt.Errorf("failed to count identity aliases: %w", err)
	}

	err := q.Order("created_at DESC, id DESC").
		Offset(filter.Offset()).
		Limit(filter.Limit()).
		Find(&detailModels).Error
	if err != nil {
		r.logger.Errorw("failed to list identity aliases", "suppression_id", suppressionID, "error", err)
		return nil, 0, fmt.Errorf("failed to list identity aliases: %w", err)
	}

	details := make([]*suppression.IdentityAliasDetail, 0, len(detailModels))
	for _, model := range detailModels {
		details = append(details, r.mapper.IdentityAliasToEntity(model))
	}

	return details, total, nil
}
