// Package usecases holds the thin agency reference-data operations.
package usecases

import (
	"context"
	"strconv"

	"lerms/internal/domain/agency"
	apperrors "lerms/internal/shared/errors"
	"lerms/internal/shared/logger"
	"lerms/internal/shared/query"
)

type CreateAgencyCommand struct {
	Name         string
	Code         string
	Jurisdiction string
}

// AgencyUseCase covers the agency reference-data surface: create and read.
// Agencies are never deleted; records keep pointing at them.
type AgencyUseCase struct {
	repo   agency.Repository
	logger logger.Interface
}

func NewAgencyUseCase(repo agency.Repository, logger logger.Interface) *AgencyUseCase {
	return &AgencyUseCase{repo: repo, logger: logger}
}

func (uc *AgencyUseCase) Create(ctx context.Context, cmd CreateAgencyCommand) (*agency.Agency, error) {
	ag, err := agency.NewAgency(cmd.Name, cmd.Code, cmd.Jurisdiction)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	existing, err := uc.repo.GetByCode(ctx, ag.Code)
	if err != nil {
		return nil, apperrors.NewStorageError("get agency by code", err)
	}
	if existing != nil {
		return nil, apperrors.NewConflictError("agency code already exists", ag.Code)
	}

	if err := uc.repo.Create(ctx, ag); err != nil {
		uc.logger.Errorw("failed to create agency", "error", err, "code", ag.Code)
		return nil, apperrors.NewStorageError("create agency", err)
	}

	uc.logger.Infow("agency created", "agency_id", ag.ID, "code", ag.Code)
	return ag, nil
}

func (uc *AgencyUseCase) Get(ctx context.Context, agencyID uint) (*agency.Agency, error) {
	ag, err := uc.repo.GetByID(ctx, agencyID)
	if err != nil {
		uc.logger.Errorw("failed to get agency", "error", err, "agency_id", agencyID)
		return nil, apperrors.NewStorageError("get agency", err)
	}
	if ag == nil {
		return nil, apperrors.NewNotFoundError("agency not found", strconv.FormatUint(uint64(agencyID), 10))
	}
	return ag, nil
}

func (uc *AgencyUseCase) List(ctx context.Context, page, pageSize int) ([]*agency.Agency, int64, error) {
	var filter query.BaseFilter
	filter.Page = page
	filter.PageSize = pageSize

	agencies, total, err := uc.repo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list agencies", "error", err)
		return nil, 0, apperrors.NewStorageError("list agencies", err)
	}
	return agencies, total, nil
}
