package usecases

import (
	"context"
	"strconv"

	"lerms/internal/application/suppressionengine/dto"
	"lerms/internal/domain/suppression"
	apperrors "lerms/internal/shared/errors"
	"lerms/internal/shared/logger"
)

type RevokeSuppressionCommand struct {
	SuppressionID uint
	RevokedBy     string
}

// RevokeSuppressionUseCase deactivates a suppression, restoring the record
// to default listings. Revoking an already-removed suppression is a
// conflict, not a silent no-op.
type RevokeSuppressionUseCase struct {
	repo     suppression.Repository
	notifier Notifier
	logger   logger.Interface
}

func NewRevokeSuppressionUseCase(repo suppression.Repository, notifier Notifier, logger logger.Interface) *RevokeSuppressionUseCase {
	return &RevokeSuppressionUseCase{repo: repo, notifier: notifier, logger: logger}
}

func (uc *RevokeSuppressionUseCase) Execute(ctx context.Context, cmd RevokeSuppressionCommand) (*dto.SuppressionDTO, error) {
	supp, err := uc.repo.GetByID(ctx, cmd.SuppressionID)
	if err != nil {
		uc.logger.Errorw("failed to get suppression", "error", err, "suppression_id", cmd.SuppressionID)
		return nil, apperrors.NewStorageError("get suppression", err)
	}
	if supp == nil {
		return nil, apperrors.NewNotFoundError("suppression not found", strconv.FormatUint(uint64(cmd.SuppressionID), 10))
	}

	if err := supp.Revoke(); err != nil {
		return nil, apperrors.NewConflictError(err.Error())
	}

	if err := uc.repo.Update(ctx, supp); err != nil {
		uc.logger.Errorw("failed to update suppression", "error", err, "suppression_id", cmd.SuppressionID)
		return nil, apperrors.NewStorageError("update suppression", err)
	}

	if uc.notifier != nil {
		if err := uc.notifier.SendSuppressionRevoked(supp.ID(), string(supp.RecordKind()), cmd.RevokedBy); err != nil {
			uc.logger.Warnw("failed to send revocation notification", "error", err, "suppression_id", supp.ID())
		}
	}

	uc.logger.Infow("suppression revoked",
		"suppression_id", supp.ID(),
		"record_kind", supp.RecordKind(),
		"revoked_by", cmd.RevokedBy,
	)

	return dto.SuppressionToDTO(supp, ""), nil
}
