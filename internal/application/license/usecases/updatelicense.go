package usecases

import (
	"context"
	"strconv"
	"time"

	"lerms/internal/application/license/dto"
	"lerms/internal/domain/license"
	apperrors "lerms/internal/shared/errors"
	"lerms/internal/shared/logger"
)

type UpdateLicenseCommand struct {
	LicenseID      uint
	LicenseNumber  *string
	HolderName     *string
	Address        *string
	Class          *string
	ExpirationDate *time.Time
	AgencyID       *uint
}

// UpdateLicenseUseCase applies a partial update to a license.
type UpdateLicenseUseCase struct {
	repo   license.Repository
	logger logger.Interface
}

func NewUpdateLicenseUseCase(repo license.Repository, logger logger.Interface) *UpdateLicenseUseCase {
	return &UpdateLicenseUseCase{repo: repo, logger: logger}
}

func (uc *UpdateLicenseUseCase) Execute(ctx context.Context, cmd UpdateLicenseCommand) (*dto.LicenseDTO, error) {
	lic, err := uc.repo.GetByID(ctx, cmd.LicenseID)
	if err != nil {
		uc.logger.Errorw("failed to get license", "error", err, "license_id", cmd.LicenseID)
		return nil, apperrors.NewStorageError("get license", err)
	}
	if lic == nil {
		return nil, apperrors.NewNotFoundError("license not found", strconv.FormatUint(uint64(cmd.LicenseID), 10))
	}

	if cmd.LicenseNumber != nil && *cmd.LicenseNumber != lic.LicenseNumber() {
		dup, err := uc.repo.GetByNumber(ctx, lic.Variant(), *cmd.LicenseNumber)
		if err != nil {
			return nil, apperrors.NewStorageError("get license by number", err)
		}
		if dup != nil {
			return nil, apperrors.NewConflictError("license number already issued for this variant", *cmd.LicenseNumber)
		}
	}

	if err := lic.UpdateDetails(cmd.LicenseNumber, cmd.HolderName, cmd.Address, cmd.Class, cmd.ExpirationDate, cmd.AgencyID); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.repo.Update(ctx, lic); err != nil {
		uc.logger.Errorw("failed to update license", "error", err, "license_id", cmd.LicenseID)
		return nil, apperrors.NewStorageError("update license", err)
	}

	uc.logger.Infow("driver license updated", "license_id", lic.ID())
	return dto.LicenseToDTO(lic), nil
}

// DeleteLicenseUseCase soft-deletes a license.
type DeleteLicenseUseCase struct {
	repo   license.Repository
	logger logger.Interface
}

func NewDeleteLicenseUseCase(repo license.Repository, logger logger.Interface) *DeleteLicenseUseCase {
	return &DeleteLicenseUseCase{repo: repo, logger: logger}
}

func (uc *DeleteLicenseUseCase) Execute(ctx context.Context, licenseID uint) error {
	lic, err := uc.repo.GetByID(ctx, licenseID)
	if err != nil {
		uc.logger.Errorw("failed to get license", "error", err, "license_id", licenseID)
		return apperrors.NewStorageError("get license", err)
	}
	if lic == nil {
		return apperrors.NewNotFoundError("license not found", strconv.FormatUint(uint64(licenseID), 10))
	}

	lic.Deactivate()
	if err := uc.repo.Update(ctx, lic); err != nil {
		uc.logger.Errorw("failed to delete license", "error", err, "license_id", licenseID)
		return apperrors.NewStorageError("delete license", err)
	}

	uc.logger.Infow("driver license deactivated", "license_id", licenseID)
	return nil
}
