package usecases

import (
	"context"
	"strconv"

	"lerms/internal/application/suppressionengine/dto"
	"lerms/internal/domain/suppression"
	apperrors "lerms/internal/shared/errors"
	"lerms/internal/shared/logger"
	"lerms/internal/shared/services/markdown"
)

type ListSuppressionsCommand struct {
	RecordKind string
	Status     string
	CreatedBy  string
	Page       int
	PageSize   int
}

// ListSuppressionsUseCase pages through suppressions. Listing requires the
// suppression read grant; there is no unprivileged view of this data.
type ListSuppressionsUseCase struct {
	repo   suppression.Repository
	logger logger.Interface
}

func NewListSuppressionsUseCase(repo suppression.Repository, logger logger.Interface) *ListSuppressionsUseCase {
	return &ListSuppressionsUseCase{repo: repo, logger: logger}
}

func (uc *ListSuppressionsUseCase) Execute(ctx context.Context, cmd ListSuppressionsCommand) ([]*dto.SuppressionDTO, int64, error) {
	filter := suppression.Filter{
		RecordKind: cmd.RecordKind,
		Status:     cmd.Status,
		CreatedBy:  cmd.CreatedBy,
	}
	filter.Page = cmd.Page
	filter.PageSize = cmd.PageSize

	supps, total, err := uc.repo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list suppressions", "error", err)
		return nil, 0, apperrors.NewStorageError("list suppressions", err)
	}

	dtos := make([]*dto.SuppressionDTO, 0, len(supps))
	for _, s := range supps {
		dtos = append(dtos, dto.SuppressionToDTO(s, ""))
	}
	return dtos, total, nil
}

// GetSuppressionUseCase loads one suppression with its rendered description.
type GetSuppressionUseCase struct {
	repo     suppression.Repository
	markdown markdown.Service
	logger   logger.Interface
}

func NewGetSuppressionUseCase(repo suppression.Repository, markdown markdown.Service, logger logger.Interface) *GetSuppressionUseCase {
	return &GetSuppressionUseCase{repo: repo, markdown: markdown, logger: logger}
}

func (uc *GetSuppressionUseCase) Execute(ctx context.Context, suppressionID uint) (*dto.SuppressionDTO, error) {
	supp, err := uc.repo.GetByID(ctx, suppressionID)
	if err != nil {
		uc.logger.Errorw("failed to get suppression", "error", err, "suppression_id", suppressionID)
		return nil, apperrors.NewStorageError("get suppression", err)
	}
	if supp == nil {
		return nil, apperrors.NewNotFoundError("suppression not found", strconv.FormatUint(uint64(suppressionID), 10))
	}

	descriptionHTML, err := uc.markdown.RenderNotes(supp.ReasonDescription())
	if err != nil {
		uc.logger.Warnw("failed to render suppression description", "error", err, "suppression_id", suppressionID)
		descriptionHTML = ""
	}
	return dto.SuppressionToDTO(supp, descriptionHTML), nil
}
