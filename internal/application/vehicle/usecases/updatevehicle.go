package usecases

import (
	"context"
	"strconv"

	"lerms/internal/application/vehicle/dto"
	"lerms/internal/domain/vehicle"
	apperrors "lerms/internal/shared/errors"
	"lerms/internal/shared/logger"
)

type UpdateVehicleCommand struct {
	VehicleID    uint
	PlateNumber  *string
	VIN          *string
	Make         *string
	Model        *string
	Year         *int
	OwnerName    *string
	OwnerAddress *string
	AgencyID     *uint
}

// UpdateVehicleUseCase applies a partial update to a registration.
type UpdateVehicleUseCase struct {
	repo   vehicle.Repository
	logger logger.Interface
}

func NewUpdateVehicleUseCase(repo vehicle.Repository, logger logger.Interface) *UpdateVehicleUseCase {
	return &UpdateVehicleUseCase{repo: repo, logger: logger}
}

func (uc *UpdateVehicleUseCase) Execute(ctx context.Context, cmd UpdateVehicleCommand) (*dto.VehicleDTO, error) {
	reg, err := uc.repo.GetByID(ctx, cmd.VehicleID)
	if err != nil {
		uc.logger.Errorw("failed to get vehicle", "error", err, "vehicle_id", cmd.VehicleID)
		return nil, apperrors.NewStorageError("get vehicle", err)
	}
	if reg == nil {
		return nil, apperrors.NewNotFoundError("vehicle not found", strconv.FormatUint(uint64(cmd.VehicleID), 10))
	}

	if cmd.PlateNumber != nil && *cmd.PlateNumber != reg.PlateNumber() {
		dup, err := uc.repo.GetByPlate(ctx, reg.Variant(), *cmd.PlateNumber)
		if err != nil {
			return nil, apperrors.NewStorageError("get vehicle by plate", err)
		}
		if dup != nil {
			return nil, apperrors.NewConflictError("plate number already registered for this variant", *cmd.PlateNumber)
		}
	}

	if err := reg.UpdateDetails(cmd.PlateNumber, cmd.VIN, cmd.Make, cmd.Model, cmd.Year, cmd.OwnerName, cmd.OwnerAddress, cmd.AgencyID); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.repo.Update(ctx, reg); err != nil {
		uc.logger.Errorw("failed to update vehicle", "error", err, "vehicle_id", cmd.VehicleID)
		return nil, apperrors.NewStorageError("update vehicle", err)
	}

	uc.logger.Infow("vehicle registration updated", "vehicle_id", reg.ID())
	return dto.VehicleToDTO(reg), nil
}
