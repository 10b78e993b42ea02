package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"lerms/internal/domain/document"
	"lerms/internal/domain/record"
	"lerms/internal/infrastructure/persistence/mappers"
	"lerms/internal/infrastructure/persistence/models"
	"lerms/internal/shared/db"
	"lerms/internal/shared/logger"
)

// allowedDocumentOrderByFields defines the whitelist of allowed ORDER BY fields
// to prevent SQL injection attacks.
var allowedDocumentOrderByFields = map[string]bool{
	"id":              true,
	"file_name":       true,
	"size_bytes":      true,
	"approval_status": true,
	"created_at":      true,
	"updated_at":      true,
}

// DocumentRepository implements the document repository interface
type DocumentRepository struct {
	db     *gorm.DB
	mapper mappers.DocumentMapper
	logger logger.Interface
}

// NewDocumentRepository creates a new document repository
func NewDocumentRepository(gormDB *gorm.DB, logger logger.Interface) document.Repository {
	return &DocumentRepository{
		db:     gormDB,
		mapper: mappers.NewDocumentMapper(),
		logger: logger,
	}
}

// Create creates a new document
func (r *DocumentRepository) Create(ctx context.Context, documentEntity *document.Document) error {
	model, err := r.mapper.ToModel(documentEntity)
	if err != nil {
		r.logger.Errorw("failed to map document to model", "error", err)
		return fmt.Errorf("failed to map document: %w", err)
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create document", "file_name", model.FileName, "error", err)
		return fmt.Errorf("failed to create document: %w", err)
	}

	if err := documentEntity.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set document ID: %w", err)
	}

	r.logger.Infow("document created", "id", model.ID, "file_name", model.FileName)
	return nil
}

// GetByID retrieves a document by ID, returning nil when absent
func (r *DocumentRepository) GetByID(ctx context.Context, id uint) (*document.Document, error) {
	var model models.DocumentModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get document by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get document: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// Update persists the full current state of a document
func (r *DocumentRepository) Update(ctx context.Context, documentEntity *document.Document) error {
	model, err := r.mapper.ToModel(documentEntity)
	if err != nil {
		r.logger.Errorw("failed to map document to model", "id", documentEntity.ID(), "error", err)
		return fmt.Errorf("failed to map document: %w", err)
	}

	result := db.GetTxFromContext(ctx, r.db).Model(&models.DocumentModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"file_name":       model.FileName,
			"content_type":    model.ContentType,
			"size_bytes":      model.SizeBytes,
			"linked_kind":     model.LinkedKind,
			"linked_id":       model.LinkedID,
			"approval_status": model.ApprovalStatus,
			"ocr_fields":      model.OCRFields,
			"is_active":       model.IsActive,
			"updated_at":      model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update document", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update document: %w", result.Error)
	}

	r.logger.Infow("document updated", "id", model.ID)
	return nil
}

// List retrieves a paginated list of documents
func (r *DocumentRepository) List(ctx context.Context, filter document.Filter) ([]*document.Document, int64, error) {
	var documentModels []*models.DocumentModel
	var total int64

	query := db.GetTxFromContext(ctx, r.db).Model(&models.DocumentModel{})

	if filter.UploaderID != nil {
		query = query.Where("uploader_id = ?", *filter.UploaderID)
	}
	if filter.LinkedKind != "" {
		query = query.Where("linked_kind = ?", filter.LinkedKind.String())
	}
	if filter.LinkedID != nil {
		query = query.Where("linked_id = ?", *filter.LinkedID)
	}
	if filter.ApprovalStatus != "" {
		query = query.Where("approval_status = ?", filter.ApprovalStatus.String())
	}
	if !filter.IncludeInactive {
		query = query.Scopes(db.Active())
	}
	if !filter.IncludeSuppressed {
		query = query.Scopes(db.NotSuppressed(record.KindDocument.String()))
	}

	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count documents", "error", err)
		return nil, 0, fmt.Errorf("failed to count documents: %w", err)
	}

	orderBy := filter.SortBy
	if orderBy == "" || !allowedDocumentOrderByFields[orderBy] {
		query = query.Order("created_at DESC")
	} else {
		order := "ASC"
		if strings.EqualFold(filter.SortOrder, "desc") {
			order = "DESC"
		}
		query = query.Order(fmt.Sprintf("%s %s", orderBy, order))
	}

	query = query.Offset(filter.Offset()).Limit(filter.Limit())

	if err := query.Find(&documentModels).Error; err != nil {
		r.logger.Errorw("failed to list documents", "error", err)
		return nil, 0, fmt.Errorf("failed to list documents: %w", err)
	}

	entities, err := r.mapper.ToEntities(documentModels)
	if err != nil {
		r.logger.Errorw("failed to map document models", "error", err)
		return nil, 0, fmt.Errorf("failed to map documents: %w", err)
	}

	return entities, total, nil
}

// DocumentStore adapts documents to the approval workflow.
type DocumentStore struct {
	db     *gorm.DB
	logger logger.Interface
}

// NewDocumentStore creates an approval-workflow store for documents
func NewDocumentStore(gormDB *gorm.DB, logger logger.Interface) record.Store {
	return &DocumentStore{
		db:     gormDB,
		logger: logger,
	}
}

// GetMeta returns the document's approval meta, or nil when absent
func (s *DocumentStore) GetMeta(ctx context.Context, id uint) (*record.Meta, error) {
	var model models.DocumentModel

	err := db.GetTxFromContext(ctx, s.db).
		Select("id", "approval_status", "updated_at").
		Where("id = ?", id).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		s.logger.Errorw("failed to get document meta", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get document meta: %w", err)
	}

	status, err := record.ParseStatus(model.ApprovalStatus)
	if err != nil {
		return nil, fmt.Errorf("failed to parse approval status: %w", err)
	}

	return &record.Meta{
		Kind:           record.KindDocument,
		ID:             model.ID,
		ApprovalStatus: status,
		UpdatedAt:      model.UpdatedAt,
	}, nil
}

// UpdateApprovalStatus performs the compare-and-swap status write
func (s *DocumentStore) UpdateApprovalStatus(ctx context.Context, id uint, from, to record.Status) (bool, error) {
	result := db.GetTxFromContext(ctx, s.db).Model(&models.DocumentModel{}).
		Where("id = ? AND approval_status = ?", id, from.String()).
		Update("approval_status", to.String())
	if result.Error != nil {
		s.logger.Errorw("failed to update approval status", "id", id, "error", result.Error)
		return false, fmt.Errorf("failed to update approval status: %w", result.Error)
	}

	return result.RowsAffected > 0, nil
}
