package usecases

import (
	"context"

	"lerms/internal/application/vehicle/dto"
	"lerms/internal/domain/record"
	"lerms/internal/domain/vehicle"
	apperrors "lerms/internal/shared/errors"
	"lerms/internal/shared/logger"
)

type ListVehiclesCommand struct {
	Variant           string
	PlateNumber       string
	VIN               string
	ApprovalStatus    string
	AgencyID          *uint
	IncludeSuppressed bool
	IncludeInactive   bool
	Page              int
	PageSize          int
}

// ListVehiclesUseCase pages through registrations. Suppressed records are
// excluded unless the caller may see them and asked to include them.
type ListVehiclesUseCase struct {
	repo   vehicle.Repository
	logger logger.Interface
}

func NewListVehiclesUseCase(repo vehicle.Repository, logger logger.Interface) *ListVehiclesUseCase {
	return &ListVehiclesUseCase{repo: repo, logger: logger}
}

func (uc *ListVehiclesUseCase) Execute(ctx context.Context, cmd ListVehiclesCommand) ([]*dto.VehicleDTO, int64, error) {
	filter := vehicle.Filter{
		PlateNumber:       cmd.PlateNumber,
		VIN:               cmd.VIN,
		AgencyID:          cmd.AgencyID,
		IncludeSuppressed: cmd.IncludeSuppressed,
		IncludeInactive:   cmd.IncludeInactive,
	}
	filter.Page = cmd.Page
	filter.PageSize = cmd.PageSize

	if cmd.Variant != "" {
		variant, err := vehicle.ParseVariant(cmd.Variant)
		if err != nil {
			return nil, 0, apperrors.NewValidationError(err.Error())
		}
		filter.Variant = variant
	}
	if cmd.ApprovalStatus != "" {
		status, err := record.ParseStatus(cmd.ApprovalStatus)
		if err != nil {
			return nil, 0, apperrors.NewValidationError(err.Error())
		}
		filter.ApprovalStatus = status
	}

	regs, total, err := uc.repo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list vehicles", "error", err)
		return nil, 0, apperrors.NewStorageError("list vehicles", err)
	}
	return dto.VehiclesToDTO(regs), total, nil
}
