package mappers

import (
	"fmt"

	"lerms/internal/domain/record"
	"lerms/internal/domain/vehicle"
	"lerms/internal/infrastructure/persistence/models"
)

// VehicleMapper handles the conversion between domain entities and persistence models
type VehicleMapper interface {
	ToEntity(model *models.VehicleRegistrationModel) (*vehicle.Registration, error)
	ToModel(entity *vehicle.Registration) (*models.VehicleRegistrationModel, error)
	ToEntities(models []*models.VehicleRegistrationModel) ([]*vehicle.Registration, error)
}

type VehicleMapperImpl struct{}

// NewVehicleMapper creates a new vehicle mapper
func NewVehicleMapper() VehicleMapper {
	return &VehicleMapperImpl{}
}

// ToEntity converts a persistence model to a domain entity
func (m *VehicleMapperImpl) ToEntity(model *models.VehicleRegistrationModel) (*vehicle.Registration, error) {
	if model == nil {
		return nil, nil
	}

	variant, err := vehicle.ParseVariant(model.Variant)
	if err != nil {
		return nil, fmt.Errorf("failed to parse vehicle variant: %w", err)
	}

	status, err := record.ParseStatus(model.ApprovalStatus)
	if err != nil {
		return nil, fmt.Errorf("failed to parse approval status: %w", err)
	}

	entity, err := vehicle.ReconstructRegistration(
		model.ID,
		variant,
		model.PlateNumber,
		model.VIN,
		model.Make,
		model.Model,
		model.Year,
		model.OwnerName,
		model.OwnerAddress,
		model.AgencyID,
		status,
		model.IsActive,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct registration: %w", err)
	}

	return entity, nil
}

// ToModel converts a domain entity to a persistence model
func (m *VehicleMapperImpl) ToModel(entity *vehicle.Registration) (*models.VehicleRegistrationModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.VehicleRegistrationModel{
		ID:             entity.ID(),
		Variant:        string(entity.Variant()),
		PlateNumber:    entity.PlateNumber(),
		VIN:            entity.VIN(),
		Make:           entity.Make(),
		Model:          entity.Model(),
		Year:           entity.Year(),
		OwnerName:      entity.OwnerName(),
		OwnerAddress:   entity.OwnerAddress(),
		AgencyID:       entity.AgencyID(),
		ApprovalStatus: entity.ApprovalStatus().String(),
		IsActive:       entity.IsActive(),
		CreatedAt:      entity.CreatedAt(),
		UpdatedAt:      entity.UpdatedAt(),
	}, nil
}

// ToEntities converts multiple persistence models to domain entities
func (m *VehicleMapperImpl) ToEntities(vehicleModels []*models.VehicleRegistrationModel) ([]*vehicle.Registration, error) {
	entities := make([]*vehicle.Registration, 0, len(vehicleModels))
	for _, model := range vehicleModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
