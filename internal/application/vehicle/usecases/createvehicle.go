package usecases

import (
	"context"

	"lerms/internal/application/vehicle/dto"
	"lerms/internal/domain/agency"
	"lerms/internal/domain/vehicle"
	apperrors "lerms/internal/shared/errors"
	"lerms/internal/shared/logger"
)

type CreateVehicleCommand struct {
	Variant      string
	PlateNumber  string
	VIN          string
	Make         string
	Model        string
	Year         int
	OwnerName    string
	OwnerAddress string
	AgencyID     *uint
}

// CreateVehicleUseCase registers a new vehicle in pending status.
type CreateVehicleUseCase struct {
	repo       vehicle.Repository
	agencyRepo agency.Repository
	logger     logger.Interface
}

func NewCreateVehicleUseCase(repo vehicle.Repository, agencyRepo agency.Repository, logger logger.Interface) *CreateVehicleUseCase {
	return &CreateVehicleUseCase{repo: repo, agencyRepo: agencyRepo, logger: logger}
}

func (uc *CreateVehicleUseCase) Execute(ctx context.Context, cmd CreateVehicleCommand) (*dto.VehicleDTO, error) {
	variant, err := vehicle.ParseVariant(cmd.Variant)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if cmd.AgencyID != nil {
		ag, err := uc.agencyRepo.GetByID(ctx, *cmd.AgencyID)
		if err != nil {
			uc.logger.Errorw("failed to look up agency", "error", err, "agency_id", *cmd.AgencyID)
			return nil, apperrors.NewStorageError("get agency", err)
		}
		if ag == nil {
			return nil, apperrors.NewValidationError("agency does not exist")
		}
	}

	existing, err := uc.repo.GetByPlate(ctx, variant, cmd.PlateNumber)
	if err != nil {
		uc.logger.Errorw("failed to check plate uniqueness", "error", err, "plate", cmd.PlateNumber)
		return nil, apperrors.NewStorageError("get vehicle by plate", err)
	}
	if existing != nil {
		return nil, apperrors.NewConflictError("plate number already registered for this variant", cmd.PlateNumber)
	}

	reg, err := vehicle.NewRegistration(variant, cmd.PlateNumber, cmd.VIN, cmd.Make, cmd.Model, cmd.Year, cmd.OwnerName, cmd.OwnerAddress, cmd.AgencyID)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.repo.Create(ctx, reg); err != nil {
		uc.logger.Errorw("failed to create vehicle registration", "error", err, "plate", cmd.PlateNumber)
		return nil, apperrors.NewStorageError("create vehicle", err)
	}

	uc.logger.Infow("vehicle registration created",
		"vehicle_id", reg.ID(),
		"variant", reg.Variant(),
		"plate", reg.PlateNumber(),
	)
	return dto.VehicleToDTO(reg), nil
}
