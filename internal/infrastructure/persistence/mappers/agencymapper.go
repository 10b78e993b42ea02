package mappers

import (
	"lerms/internal/domain/agency"
	"lerms/internal/infrastructure/persistence/models"
)

// AgencyMapper handles the conversion between domain entities and persistence models
type AgencyMapper interface {
	ToEntity(model *models.AgencyModel) *agency.Agency
	ToModel(entity *agency.Agency) *models.AgencyModel
	ToEntities(models []*models.AgencyModel) []*agency.Agency
}

type AgencyMapperImpl struct{}

// NewAgencyMapper creates a new agency mapper
func NewAgencyMapper() AgencyMapper {
	return &AgencyMapperImpl{}
}

func (m *AgencyMapperImpl) ToEntity(model *models.AgencyModel) *agency.Agency {
	if model == nil {
		return nil
	}
	return &agency.Agency{
		ID:           model.ID,
		Name:         model.Name,
		Code:         model.Code,
		Jurisdiction: model.Jurisdiction,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}
}

func (m *AgencyMapperImpl) ToModel(entity *agency.Agency) *models.AgencyModel {
	if entity == nil {
		return nil
	}
	return &models.AgencyModel{
		ID:           entity.ID,
		Name:         entity.Name,
		Code:         entity.Code,
		Jurisdiction: entity.Jurisdiction,
		CreatedAt:    entity.CreatedAt,
		UpdatedAt:    entity.UpdatedAt,
	}
}

func (m *AgencyMapperImpl) ToEntities(agencyModels []*models.AgencyModel) []*agency.Agency {
	entities := make([]*agency.Agency, 0, len(agencyModels))
	for _, model := range agencyModels {
		entities = append(entities, m.ToEntity(model))
	}
	return entities
}
