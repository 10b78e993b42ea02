package usecases

import (
	"context"

	"lerms/internal/application/license/dto"
	"lerms/internal/domain/license"
	"lerms/internal/domain/record"
	apperrors "lerms/internal/shared/errors"
	"lerms/internal/shared/logger"
)

type ListLicensesCommand struct {
	Variant           string
	LicenseNumber     string
	HolderName        string
	ApprovalStatus    string
	AgencyID          *uint
	IncludeSuppressed bool
	IncludeInactive   bool
	Page              int
	PageSize          int
}

// ListLicensesUseCase pages through licenses with the same suppression
// exclusion as vehicles.
type ListLicensesUseCase struct {
	repo   license.Repository
	logger logger.Interface
}

func NewListLicensesUseCase(repo license.Repository, logger logger.Interface) *ListLicensesUseCase {
	return &ListLicensesUseCase{repo: repo, logger: logger}
}

func (uc *ListLicensesUseCase) Execute(ctx context.Context, cmd ListLicensesCommand) ([]*dto.LicenseDTO, int64, error) {
	filter := license.Filter{
		LicenseNumber:     cmd.LicenseNumber,
		HolderName:        cmd.HolderName,
		AgencyID:          cmd.AgencyID,
		IncludeSuppressed: cmd.IncludeSuppressed,
		IncludeInactive:   cmd.IncludeInactive,
	}
	filter.Page = cmd.Page
	filter.PageSize = cmd.PageSize

	if cmd.Variant != "" {
		variant, err := license.ParseVariant(cmd.Variant)
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

	lics, total, err := uc.repo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list licenses", "error", err)
		return nil, 0, apperrors.NewStorageError("list licenses", err)
	}
	return dto.LicensesToDTO(lics), total, nil
}
