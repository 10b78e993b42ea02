package usecases

import (
	"context"
	"strconv"

	"lerms/internal/application/vehicle/dto"
	"lerms/internal/domain/suppression"
	"lerms/internal/domain/vehicle"
	apperrors "lerms/internal/shared/errors"
	"lerms/internal/shared/logger"
)

type GetVehicleCommand struct {
	VehicleID         uint
	IncludeSuppressed bool
}

// GetVehicleUseCase loads one registration. A suppressed registration is
// indistinguishable from a missing one unless the caller may see suppressed
// records.
type GetVehicleUseCase struct {
	repo            vehicle.Repository
	suppressionRepo suppression.Repository
	logger          logger.Interface
}

func NewGetVehicleUseCase(repo vehicle.Repository, suppressionRepo suppression.Repository, logger logger.Interface) *GetVehicleUseCase {
	return &GetVehicleUseCase{repo: repo, suppressionRepo: suppressionRepo, logger: logger}
}

func (uc *GetVehicleUseCase) Execute(ctx context.Context, cmd GetVehicleCommand) (*dto.VehicleDTO, error) {
	reg, err := uc.repo.GetByID(ctx, cmd.VehicleID)
	if err != nil {
		uc.logger.Errorw("failed to get vehicle", "error", err, "vehicle_id", cmd.VehicleID)
		return nil, apperrors.NewStorageError("get vehicle", err)
	}
	if reg == nil {
		return nil, apperrors.NewNotFoundError("vehicle not found", strconv.FormatUint(uint64(cmd.VehicleID), 10))
	}

	if !cmd.IncludeSuppressed {
		ids, err := uc.suppressionRepo.ActiveIDsForRecord(ctx, reg.Variant().Kind(), reg.ID())
		if err != nil {
			uc.logger.Errorw("failed to check suppression", "error", err, "vehicle_id", cmd.VehicleID)
			return nil, apperrors.NewStorageError("check suppression", err)
		}
		if len(ids) > 0 {
			return nil, apperrors.NewNotFoundError("vehicle not found", strconv.FormatUint(uint64(cmd.VehicleID), 10))
		}
	}

	return dto.VehicleToDTO(reg), nil
}
