package usecases

import (
	"context"
	"time"

	"lerms/internal/application/license/dto"
	"lerms/internal/domain/agency"
	"lerms/internal/domain/license"
	apperrors "lerms/internal/shared/errors"
	"lerms/internal/shared/logger"
)

type CreateLicenseCommand struct {
	Variant        string
	LicenseNumber  string
	HolderName     string
	DateOfBirth    *time.Time
	Address        string
	Class          string
	IssueDate      *time.Time
	ExpirationDate *time.Time
	AgencyID       *uint
}

// CreateLicenseUseCase issues a new driver license record in pending status.
type CreateLicenseUseCase struct {
	repo       license.Repository
	agencyRepo agency.Repository
	logger     logger.Interface
}

func NewCreateLicenseUseCase(repo license.Repository, agencyRepo agency.Repository, logger logger.Interface) *CreateLicenseUseCase {
	return &CreateLicenseUseCase{repo: repo, agencyRepo: agencyRepo, logger: logger}
}

func (uc *CreateLicenseUseCase) Execute(ctx context.Context, cmd CreateLicenseCommand) (*dto.LicenseDTO, error) {
	variant, err := license.ParseVariant(cmd.Variant)
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

	existing, err := uc.repo.GetByNumber(ctx, variant, cmd.LicenseNumber)
	if err != nil {
		uc.logger.Errorw("failed to check license number uniqueness", "error", err, "license_number", cmd.LicenseNumber)
		return nil, apperrors.NewStorageError("get license by number", err)
	}
	if existing != nil {
		return nil, apperrors.NewConflictError("license number already issued for this variant", cmd.LicenseNumber)
	}

	lic, err := license.NewDriverLicense(variant, cmd.LicenseNumber, cmd.HolderName, cmd.DateOfBirth, cmd.Address, cmd.Class, cmd.IssueDate, cmd.ExpirationDate, cmd.AgencyID)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.repo.Create(ctx, lic); err != nil {
		uc.logger.Errorw("failed to create license", "error", err, "license_number", cmd.LicenseNumber)
		return nil, apperrors.NewStorageError("create license", err)
	}

	uc.logger.Infow("driver license created",
		"license_id", lic.ID(),
		"variant", lic.Variant(),
		"license_number", lic.LicenseNumber(),
	)
	return dto.LicenseToDTO(lic), nil
}
