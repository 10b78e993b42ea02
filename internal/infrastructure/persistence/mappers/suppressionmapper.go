package mappers

import (
	"fmt"

	"lerms/internal/domain/record"
	"lerms/internal/domain/suppression"
	"lerms/internal/infrastructure/persistence/models"
)

// SuppressionMapper handles the conversion between domain entities and persistence models
type SuppressionMapper interface {
	ToEntity(model *models.SuppressionModel) (*suppression.Suppression, error)
	ToModel(entity *suppression.Suppression) (*models.SuppressionModel, error)
	ToEntities(models []*models.SuppressionModel) ([]*suppression.Suppression, error)

	AccessRequestToEntity(model *models.AccessRequestDetailModel) *suppression.AccessRequestDetail
	AccessRequestToModel(entity *suppression.AccessRequestDetail) *models.AccessRequestDetailModel
	IdentityAliasToEntity(model *models.IdentityAliasDetailModel) *suppression.IdentityAliasDetail
	IdentityAliasToModel(entity *suppression.IdentityAliasDetail) *models.IdentityAliasDetailModel
}

type SuppressionMapperImpl struct{}

// NewSuppressionMapper creates a new suppression mapper
func NewSuppressionMapper() SuppressionMapper {
	return &SuppressionMapperImpl{}
}

// ToEntity converts a persistence model to a domain entity
func (m *SuppressionMapperImpl) ToEntity(model *models.SuppressionModel) (*suppression.Suppression, error) {
	if model == nil {
		return nil, nil
	}

	kind, err := record.ParseKind(model.RecordKind)
	if err != nil {
		return nil, fmt.Errorf("failed to parse record kind: %w", err)
	}

	entity, err := suppression.ReconstructSuppression(
		model.ID,
		kind,
		model.RecordID,
		model.Reason,
		model.ReasonDescription,
		model.EffectiveDate,
		model.ExpirationDate,
		suppression.Status(model.Status),
		model.IsActive,
		model.CreatedBy,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct suppression: %w", err)
	}

	return entity, nil
}

// ToModel converts a domain entity to a persistence model
func (m *SuppressionMapperImpl) ToModel(entity *suppression.Suppression) (*models.SuppressionModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.SuppressionModel{
		ID:                entity.ID(),
		RecordKind:        entity.RecordKind().String(),
		RecordID:          entity.RecordID(),
		Reason:            entity.Reason(),
		ReasonDescription: entity.ReasonDescription(),
		EffectiveDate:     entity.EffectiveDate(),
		ExpirationDate:    entity.ExpirationDate(),
		Status:            string(entity.Status()),
		IsActive:          entity.IsActive(),
		CreatedBy:         entity.CreatedBy(),
		CreatedAt:         entity.CreatedAt(),
		UpdatedAt:         entity.UpdatedAt(),
	}, nil
}

// ToEntities converts multiple persistence models to domain entities
func (m *SuppressionMapperImpl) ToEntities(suppressionModels []*models.SuppressionModel) ([]*suppression.Suppression, error) {
	entities := make([]*suppression.Suppression, 0, len(suppressionModels))
	for _, model := range suppressionModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

func (m *SuppressionMapperImpl) AccessRequestToEntity(model *models.AccessRequestDetailModel) *suppression.AccessRequestDetail {
	if model == nil {
		return nil
	}
	return &suppression.AccessRequestDetail{
		ID:                    model.ID,
		SuppressionID:         model.SuppressionID,
		DateRequested:         model.DateRequested,
		SubjectPlateOrLicense: model.SubjectPlateOrLicense,
		Requester:             model.Requester,
		Reason:                model.Reason,
		Duration:              model.Duration,
		Initials:              model.Initials,
		CreatedAt:             model.CreatedAt,
	}
}

func (m *SuppressionMapperImpl) AccessRequestToModel(entity *suppression.AccessRequestDetail) *models.AccessRequestDetailModel {
	if entity == nil {
		return nil
	}
	return &models.AccessRequestDetailModel{
		ID:                    entity.ID,
		SuppressionID:         entity.SuppressionID,
		DateRequested:         entity.DateRequested,
		SubjectPlateOrLicense: entity.SubjectPlateOrLicense,
		Requester:             entity.Requester,
		Reason:                entity.Reason,
		Duration:              entity.Duration,
		Initials:              entity.Initials,
		CreatedAt:             entity.CreatedAt,
	}
}

func (m *SuppressionMapperImpl) IdentityAliasToEntity(model *models.IdentityAliasDetailModel) *suppression.IdentityAliasDetail {
	if model == nil {
		return nil
	}
	return &suppression.IdentityAliasDetail{
		ID:                model.ID,
		SuppressionID:     model.SuppressionID,
		OldName:           model.OldName,
		OldPlateOrLicense: model.OldPlateOrLicense,
		CreatedAt:         model.CreatedAt,
	}
}

func (m *SuppressionMapperImpl) IdentityAliasToModel(entity *suppression.IdentityAliasDetail) *models.IdentityAliasDetailModel {
	if entity == nil {
		return nil
	}
	return &models.IdentityAliasDetailModel{
		ID:                entity.ID,
		SuppressionID:     entity.SuppressionID,
		OldName:           entity.OldName,
		OldPlateOrLicense: entity.OldPlateOrLicense,
		CreatedAt:         entity.CreatedAt,
	}
}
