package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"lerms/internal/domain/document"
	"lerms/internal/domain/record"
	"lerms/internal/infrastructure/persistence/models"
)

// DocumentMapper handles the conversion between domain entities and persistence models
type DocumentMapper interface {
	ToEntity(model *models.DocumentModel) (*document.Document, error)
	ToModel(entity *document.Document) (*models.DocumentModel, error)
	ToEntities(models []*models.DocumentModel) ([]*document.Document, error)
}

type DocumentMapperImpl struct{}

// NewDocumentMapper creates a new document mapper
func NewDocumentMapper() DocumentMapper {
	return &DocumentMapperImpl{}
}

// ToEntity converts a persistence model to a domain entity
func (m *DocumentMapperImpl) ToEntity(model *models.DocumentModel) (*document.Document, error) {
	if model == nil {
		return nil, nil
	}

	status, err := record.ParseStatus(model.ApprovalStatus)
	if err != nil {
		return nil, fmt.Errorf("failed to parse approval status: %w", err)
	}

	var linkedKind *record.Kind
	if model.LinkedKind != nil {
		kind, err := record.ParseKind(*model.LinkedKind)
		if err != nil {
			return nil, fmt.Errorf("failed to parse linked record kind: %w", err)
		}
		linkedKind = &kind
	}

	var ocrFields map[string]string
	if len(model.OCRFields) > 0 {
		if err := json.Unmarshal(model.OCRFields, &ocrFields); err != nil {
			return nil, fmt.Errorf("failed to unmarshal OCR fields: %w", err)
		}
	}

	entity, err := document.ReconstructDocument(
		model.ID,
		model.FileName,
		model.ContentType,
		model.SizeBytes,
		model.UploaderID,
		linkedKind,
		model.LinkedID,
		status,
		ocrFields,
		model.IsActive,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct document: %w", err)
	}

	return entity, nil
}

// ToModel converts a domain entity to a persistence model
func (m *DocumentMapperImpl) ToModel(entity *document.Document) (*models.DocumentModel, error) {
	if entity == nil {
		return nil, nil
	}

	var linkedKind *string
	if entity.LinkedKind() != nil {
		s := entity.LinkedKind().String()
		linkedKind = &s
	}

	var ocrFields datatypes.JSON
	if entity.OCRFields() != nil {
		raw, err := json.Marshal(entity.OCRFields())
		if err != nil {
			return nil, fmt.Errorf("failed to marshal OCR fields: %w", err)
		}
		ocrFields = datatypes.JSON(raw)
	}

	return &models.DocumentModel{
		ID:             entity.ID(),
		FileName:       entity.FileName(),
		ContentType:    entity.ContentType(),
		SizeBytes:      entity.SizeBytes(),
		UploaderID:     entity.UploaderID(),
		LinkedKind:     linkedKind,
		LinkedID:       entity.LinkedID(),
		ApprovalStatus: entity.ApprovalStatus().String(),
		OCRFields:      ocrFields,
		IsActive:       entity.IsActive(),
		CreatedAt:      entity.CreatedAt(),
		UpdatedAt:      entity.UpdatedAt(),
	}, nil
}

// ToEntities converts multiple persistence models to domain entities
func (m *DocumentMapperImpl) ToEntities(documentModels []*models.DocumentModel) ([]*document.Document, error) {
	entities := make([]*document.Document, 0, len(documentModels))
	for _, model := range documentModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
