package usecases

import (
	"context"
	"strconv"

	"lerms/internal/domain/vehicle"
	apperrors "lerms/internal/shared/errors"
	"lerms/internal/shared/logger"
)

// DeleteVehicleUseCase soft-deletes a registration. The row survives for
// audit linkage; it just leaves every listing.
type DeleteVehicleUseCase struct {
	repo   vehicle.Repository
	logger logger.Interface
}

func NewDeleteVehicleUseCase(repo vehicle.Repository, logger logger.Interface) *DeleteVehicleUseCase {
	return &DeleteVehicleUseCase{repo: repo, logger: logger}
}

func (uc *DeleteVehicleUseCase) Execute(ctx context.Context, vehicleID uint) error {
	reg, err := uc.repo.GetByID(ctx, vehicleID)
	if err != nil {
		uc.logger.Errorw("failed to get vehicle", "error", err, "vehicle_id", vehicleID)
		return apperrors.NewStorageError("get vehicle", err)
	}
	if reg == nil {
		return apperrors.NewNotFoundError("vehicle not found", strconv.FormatUint(uint64(vehicleID), 10))
	}

	reg.Deactivate()
	if err := uc.repo.Update(ctx, reg); err != nil {
		uc.logger.Errorw("failed to delete vehicle", "error", err, "vehicle_id", vehicleID)
		return apperrors.NewStorageError("delete vehicle", err)
	}

	uc.logger.Infow("vehicle registration deactivated", "vehicle_id", vehicleID)
	return nil
}
