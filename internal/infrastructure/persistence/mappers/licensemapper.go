package mappers

import (
	"fmt"

	"lerms/internal/domain/license"
	"lerms/internal/domain/record"
	"lerms/internal/infrastructure/persistence/models"
)

// LicenseMapper handles the conversion between domain entities and persistence models
type LicenseMapper interface {
	ToEntity(model *models.DriverLicenseModel) (*license.DriverLicense, error)
	ToModel(entity *license.DriverLicense) (*models.DriverLicenseModel, error)
	ToEntities(models []*models.DriverLicenseModel) ([]*license.DriverLicense, error)

	ContactToEntity(model *models.LicenseContactModel) *license.Contact
	ContactToModel(entity *license.Contact) *models.LicenseContactModel
}

type LicenseMapperImpl struct{}

// NewLicenseMapper creates a new license mapper
func NewLicenseMapper() LicenseMapper {
	return &LicenseMapperImpl{}
}

// ToEntity converts a persistence model to a domain entity
func (m *LicenseMapperImpl) ToEntity(model *models.DriverLicenseModel) (*license.DriverLicense, error) {
	if model == nil {
		return nil, nil
	}

	variant, err := license.ParseVariant(model.Variant)
	if err != nil {
		return nil, fmt.Errorf("failed to parse license variant: %w", err)
	}

	status, err := record.ParseStatus(model.ApprovalStatus)
	if err != nil {
		return nil, fmt.Errorf("failed to parse approval status: %w", err)
	}

	entity, err := license.ReconstructDriverLicense(
		model.ID,
		variant,
		model.LicenseNumber,
		model.HolderName,
		model.DateOfBirth,
		model.Address,
		model.Class,
		model.IssueDate,
		model.ExpirationDate,
		model.AgencyID,
		status,
		model.IsActive,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct license: %w", err)
	}

	return entity, nil
}

// ToModel converts a domain entity to a persistence model
func (m *LicenseMapperImpl) ToModel(entity *license.DriverLicense) (*models.DriverLicenseModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.DriverLicenseModel{
		ID:             entity.ID(),
		Variant:        string(entity.Variant()),
		LicenseNumber:  entity.LicenseNumber(),
		HolderName:     entity.HolderName(),
		DateOfBirth:    entity.DateOfBirth(),
		Address:        entity.Address(),
		Class:          entity.Class(),
		IssueDate:      entity.IssueDate(),
		ExpirationDate: entity.ExpirationDate(),
		AgencyID:       entity.AgencyID(),
		ApprovalStatus: entity.ApprovalStatus().String(),
		IsActive:       entity.IsActive(),
		CreatedAt:      entity.CreatedAt(),
		UpdatedAt:      entity.UpdatedAt(),
	}, nil
}

// ToEntities converts multiple persistence models to domain entities
func (m *LicenseMapperImpl) ToEntities(licenseModels []*models.DriverLicenseModel) ([]*license.DriverLicense, error) {
	entities := make([]*license.DriverLicense, 0, len(licenseModels))
	for _, model := range licenseModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

// ContactToEntity converts a contact model to its domain form
func (m *LicenseMapperImpl) ContactToEntity(model *models.LicenseContactModel) *license.Contact {
	if model == nil {
		return nil
	}
	return &license.Contact{
		ID:           model.ID,
		LicenseID:    model.LicenseID,
		Name:         model.Name,
		Phone:        model.Phone,
		Relationship: model.Relationship,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}
}

// ContactToModel converts a contact to its persistence form
func (m *LicenseMapperImpl) ContactToModel(entity *license.Contact) *models.LicenseContactModel {
	if entity == nil {
		return nil
	}
	return &models.LicenseContactModel{
		ID:           entity.ID,
		LicenseID:    entity.LicenseID,
		Name:         entity.Name,
		Phone:        entity.Phone,
		Relationship: entity.Relationship,
		CreatedAt:    entity.CreatedAt,
		UpdatedAt:    entity.UpdatedAt,
	}
}
