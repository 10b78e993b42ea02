package usecases

import (
	"context"
	"strconv"

	"lerms/internal/application/license/dto"
	"lerms/internal/domain/license"
	"lerms/internal/domain/suppression"
	apperrors "lerms/internal/shared/errors"
	"lerms/internal/shared/logger"
)

type GetLicenseCommand struct {
	LicenseID         uint
	IncludeSuppressed bool
}

// GetLicenseUseCase loads one license, hiding suppressed ones from callers
// without the suppression read grant.
type GetLicenseUseCase struct {
	repo            license.Repository
	suppressionRepo suppression.Repository
	logger          logger.Interface
}

func NewGetLicenseUseCase(repo license.Repository, suppressionRepo suppression.Repository, logger logger.Interface) *GetLicenseUseCase {
	return &GetLicenseUseCase{repo: repo, suppressionRepo: suppressionRepo, logger: logger}
}

func (uc *GetLicenseUseCase) Execute(ctx context.Context, cmd GetLicenseCommand) (*dto.LicenseDTO, error) {
	lic, err := uc.repo.GetByID(ctx, cmd.LicenseID)
	if err != nil {
		uc.logger.Errorw("failed to get license", "error", err, "license_id", cmd.LicenseID)
		return nil, apperrors.NewStorageError("get license", err)
	}
	if lic == nil {
		return nil, apperrors.NewNotFoundError("license not found", strconv.FormatUint(uint64(cmd.LicenseID), 10))
	}

	if !cmd.IncludeSuppressed {
		ids, err := uc.suppressionRepo.ActiveIDsForRecord(ctx, lic.Variant().Kind(), lic.ID())
		if err != nil {
			uc.logger.Errorw("failed to check suppression", "error", err, "license_id", cmd.LicenseID)
			return nil, apperrors.NewStorageError("check suppression", err)
		}
		if len(ids) > 0 {
			return nil, apperrors.NewNotFoundError("license not found", strconv.FormatUint(uint64(cmd.LicenseID), 10))
		}
	}

	return dto.LicenseToDTO(lic), nil
}
