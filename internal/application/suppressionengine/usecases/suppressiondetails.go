package usecases

import (
	"context"
	"strconv"
	"time"

	"lerms/internal/application/suppressionengine/dto"
	"lerms/internal/domain/suppression"
	apperrors "lerms/internal/shared/errors"
	"lerms/internal/shared/logger"
	"lerms/internal/shared/query"
)

type AddAccessRequestCommand struct {
	SuppressionID         uint
	DateRequested         time.Time
	SubjectPlateOrLicense string
	Requester             string
	Reason                string
	Duration              string
	Initials              string
}

type AddIdentityAliasCommand struct {
	SuppressionID     uint
	OldName           string
	OldPlateOrLicense string
}

// SuppressionDetailsUseCase manages the two detail collections hanging off
// a suppression. Details attach to active suppressions only.
type SuppressionDetailsUseCase struct {
	repo   suppression.Repository
	logger logger.Interface
}

func NewSuppressionDetailsUseCase(repo suppression.Repository, logger logger.Interface) *SuppressionDetailsUseCase {
	return &SuppressionDetailsUseCase{repo: repo, logger: logger}
}

func (uc *SuppressionDetailsUseCase) getActive(ctx context.Context, suppressionID uint) (*suppression.Suppression, error) {
	supp, err := uc.repo.GetByID(ctx, suppressionID)
	if err != nil {
		uc.logger.Errorw("failed to get suppression", "error", err, "suppression_id", suppressionID)
		return nil, apperrors.NewStorageError("get suppression", err)
	}
	if supp == nil {
		return nil, apperrors.NewNotFoundError("suppression not found", strconv.FormatUint(uint64(suppressionID), 10))
	}
	if !supp.IsActive() {
		return nil, apperrors.NewConflictError("suppression is already removed")
	}
	return supp, nil
}

func (uc *SuppressionDetailsUseCase) AddAccessRequest(ctx context.Context, cmd AddAccessRequestCommand) (*dto.AccessRequestDTO, error) {
	if _, err := uc.getActive(ctx, cmd.SuppressionID); err != nil {
		return nil, err
	}

	detail, err := suppression.NewAccessRequestDetail(cmd.SuppressionID, cmd.DateRequested, cmd.SubjectPlateOrLicense, cmd.Requester, cmd.Reason, cmd.Duration, cmd.Initials)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.repo.AddAccessRequest(ctx, detail); err != nil {
		uc.logger.Errorw("failed to add access request", "error", err, "suppression_id", cmd.SuppressionID)
		return nil, apperrors.NewStorageError("add access request", err)
	}

	uc.logger.Infow("access request recorded", "suppression_id", cmd.SuppressionID, "requester", cmd.Requester)
	return dto.AccessRequestToDTO(detail), nil
}

func (uc *SuppressionDetailsUseCase) AddIdentityAlias(ctx context.Context, cmd AddIdentityAliasCommand) (*dto.IdentityAliasDTO, error) {
	if _, err := uc.getActive(ctx, cmd.SuppressionID); err != nil {
		return nil, err
	}

	detail, err := suppression.NewIdentityAliasDetail(cmd.SuppressionID, cmd.OldName, cmd.OldPlateOrLicense)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.repo.AddIdentityAlias(ctx, detail); err != nil {
		uc.logger.Errorw("failed to add identity alias", "error", err, "suppression_id", cmd.SuppressionID)
		return nil, apperrors.NewStorageError("add identity alias", err)
	}

	uc.logger.Infow("identity alias recorded", "suppression_id", cmd.SuppressionID)
	return dto.IdentityAliasToDTO(detail), nil
}

func (uc *SuppressionDetailsUseCase) ListAccessRequests(ctx context.Context, suppressionID uint, page, pageSize int) ([]*dto.AccessRequestDTO, int64, error) {
	details, total, err := uc.repo.ListAccessRequests(ctx, suppressionID, query.PageFilter{Page: page, PageSize: pageSize})
	if err != nil {
		uc.logger.Errorw("failed to list access requests", "error", err, "suppression_id", suppressionID)
		return nil, 0, apperrors.NewStorageError("list access requests", err)
	}

	dtos := make([]*dto.AccessRequestDTO, 0, len(details))
	for _, d := range details {
		dtos = append(dtos, dto.AccessRequestToDTO(d))
	}
	return dtos, total, nil
}

func (uc *SuppressionDetailsUseCase) ListIdentityAliases(ctx context.Context, suppressionID uint, page, pageSize int) ([]*dto.IdentityAliasDTO, int64, error) {
	details, total, err := uc.repo.ListIdentityAliases(ctx, suppressionID, query.PageFilter{Page: page, PageSize: pageSize})
	if err != nil {
		uc.logger.Errorw("failed to list identity aliases", "error", err, "suppression_id", suppressionID)
		return nil, 0, apperrors.NewStorageError("list identity aliases", err)
	}

	dtos := make([]*dto.IdentityAliasDTO, 0, len(details))
	for _, d := range details {
		dtos = append(dtos, dto.IdentityAliasToDTO(d))
	}
	return dtos, total, nil
}
