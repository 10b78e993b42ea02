package usecases

import (
	"context"
	"strconv"
	"time"

	"lerms/internal/application/suppressionengine/dto"
	"lerms/internal/domain/suppression"
	apperrors "lerms/internal/shared/errors"
	"lerms/internal/shared/logger"
	"lerms/internal/shared/services/markdown"
)

type UpdateSuppressionCommand struct {
	SuppressionID     uint
	Reason            *string
	ReasonDescription *string
	ExpirationDate    *time.Time
	ClearExpiration   bool
}

// UpdateSuppressionUseCase edits the mutable fields of an active
// suppression: reason, description, and expiration.
type UpdateSuppressionUseCase struct {
	repo     suppression.Repository
	markdown markdown.Service
	logger   logger.Interface
}

func NewUpdateSuppressionUseCase(repo suppression.Repository, markdown markdown.Service, logger logger.Interface) *UpdateSuppressionUseCase {
	return &UpdateSuppressionUseCase{repo: repo, markdown: markdown, logger: logger}
}

func (uc *UpdateSuppressionUseCase) Execute(ctx context.Context, cmd UpdateSuppressionCommand) (*dto.SuppressionDTO, error) {
	supp, err := uc.repo.GetByID(ctx, cmd.SuppressionID)
	if err != nil {
		uc.logger.Errorw("failed to get suppression", "error", err, "suppression_id", cmd.SuppressionID)
		return nil, apperrors.NewStorageError("get suppression", err)
	}
	if supp == nil {
		return nil, apperrors.NewNotFoundError("suppression not found", strconv.FormatUint(uint64(cmd.SuppressionID), 10))
	}
	if !supp.IsActive() {
		return nil, apperrors.NewConflictError("suppression is already removed")
	}

	if cmd.Reason != nil {
		description := supp.ReasonDescription()
		if cmd.ReasonDescription != nil {
			description = uc.markdown.SanitizeText(*cmd.ReasonDescription)
		}
		if err := supp.UpdateReason(*cmd.Reason, description); err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
	} else if cmd.ReasonDescription != nil {
		if err := supp.UpdateReason(supp.Reason(), uc.markdown.SanitizeText(*cmd.ReasonDescription)); err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
	}

	if cmd.ClearExpiration {
		if err := supp.UpdateExpiration(nil); err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
	} else if cmd.ExpirationDate != nil {
		if err := supp.UpdateExpiration(cmd.ExpirationDate); err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
	}

	if err := uc.repo.Update(ctx, supp); err != nil {
		uc.logger.Errorw("failed to update suppression", "error", err, "suppression_id", cmd.SuppressionID)
		return nil, apperrors.NewStorageError("update suppression", err)
	}

	uc.logger.Infow("suppression updated", "suppression_id", supp.ID())

	descriptionHTML, err := uc.markdown.RenderNotes(supp.ReasonDescription())
	if err != nil {
		descriptionHTML = ""
	}
	return dto.SuppressionToDTO(supp, descriptionHTML), nil
}
