package usecases

import (
	"context"
	"strconv"

	"lerms/internal/application/license/dto"
	"lerms/internal/domain/license"
	apperrors "lerms/internal/shared/errors"
	"lerms/internal/shared/logger"
)

type AddContactCommand struct {
	LicenseID    uint
	Name         string
	Phone        string
	Relationship string
}

// LicenseContactsUseCase manages cover contacts on fictitious licenses.
type LicenseContactsUseCase struct {
	repo   license.Repository
	logger logger.Interface
}

func NewLicenseContactsUseCase(repo license.Repository, logger logger.Interface) *LicenseContactsUseCase {
	return &LicenseContactsUseCase{repo: repo, logger: logger}
}

func (uc *LicenseContactsUseCase) Add(ctx context.Context, cmd AddContactCommand) (*dto.ContactDTO, error) {
	lic, err := uc.repo.GetByID(ctx, cmd.LicenseID)
	if err != nil {
		uc.logger.Errorw("failed to get license", "error", err, "license_id", cmd.LicenseID)
		return nil, apperrors.NewStorageError("get license", err)
	}
	if lic == nil {
		return nil, apperrors.NewNotFoundError("license not found", strconv.FormatUint(uint64(cmd.LicenseID), 10))
	}

	contact, err := license.NewContact(lic, cmd.Name, cmd.Phone, cmd.Relationship)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.repo.AddContact(ctx, contact); err != nil {
		uc.logger.Errorw("failed to add contact", "error", err, "license_id", cmd.LicenseID)
		return nil, apperrors.NewStorageError("add contact", err)
	}

	uc.logger.Infow("license contact added", "license_id", cmd.LicenseID, "contact_id", contact.ID)
	return dto.ContactToDTO(contact), nil
}

func (uc *LicenseContactsUseCase) List(ctx context.Context, licenseID uint) ([]*dto.ContactDTO, error) {
	lic, err := uc.repo.GetByID(ctx, licenseID)
	if err != nil {
		return nil, apperrors.NewStorageError("get license", err)
	}
	if lic == nil {
		return nil, apperrors.NewNotFoundError("license not found", strconv.FormatUint(uint64(licenseID), 10))
	}

	contacts, err := uc.repo.ListContacts(ctx, licenseID)
	if err != nil {
		uc.logger.Errorw("failed to list contacts", "error", err, "license_id", licenseID)
		return nil, apperrors.NewStorageError("list contacts", err)
	}

	dtos := make([]*dto.ContactDTO, 0, len(contacts))
	for _, c := range contacts {
		dtos = append(dtos, dto.ContactToDTO(c))
	}
	return dtos, nil
}
