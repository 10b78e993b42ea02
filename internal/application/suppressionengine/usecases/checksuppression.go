package usecases

import (
	"context"

	"lerms/internal/application/suppressionengine/dto"
	"lerms/internal/domain/record"
	"lerms/internal/domain/suppression"
	apperrors "lerms/internal/shared/errors"
	"lerms/internal/shared/logger"
)

type CheckSuppressionCommand struct {
	RecordKind string
	RecordID   uint
}

// CheckSuppressionUseCase answers whether a record is currently suppressed.
// The predicate matches the listing exclusion exactly: at least one
// suppression with is_active = true and status = 'active'.
type CheckSuppressionUseCase struct {
	repo   suppression.Repository
	logger logger.Interface
}

func NewCheckSuppressionUseCase(repo suppression.Repository, logger logger.Interface) *CheckSuppressionUseCase {
	return &CheckSuppressionUseCase{repo: repo, logger: logger}
}

func (uc *CheckSuppressionUseCase) Execute(ctx context.Context, cmd CheckSuppressionCommand) (*dto.SuppressionCheckDTO, error) {
	kind, err := record.ParseKind(cmd.RecordKind)
	if err != nil {
		return nil, apperrors.NewValidationError("unknown record kind", cmd.RecordKind)
	}

	ids, err := uc.repo.ActiveIDsForRecord(ctx, kind, cmd.RecordID)
	if err != nil {
		uc.logger.Errorw("failed to check suppression", "error", err, "record_kind", kind, "record_id", cmd.RecordID)
		return nil, apperrors.NewStorageError("check suppression", err)
	}

	return &dto.SuppressionCheckDTO{
		RecordKind:           string(kind),
		RecordID:             cmd.RecordID,
		IsSuppressed:         len(ids) > 0,
		ActiveSuppressionIDs: ids,
	}, nil
}
