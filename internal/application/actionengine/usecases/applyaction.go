package usecases

import (
	"context"
	"fmt"
	"strconv"

	"lerms/internal/domain/action"
	"lerms/internal/domain/record"
	"lerms/internal/shared/db"
	apperrors "lerms/internal/shared/errors"
	"lerms/internal/shared/logger"
)

type ApplyActionCommand struct {
	Kind         string
	RecordID     uint
	ActionName   string
	ActingUserID uint
	IPAddress    string
	Notes        string
}

// ApplyActionResult reports the committed transition.
type ApplyActionResult struct {
	RecordKind string `json:"record_kind"`
	RecordID   uint   `json:"record_id"`
	Action     string `json:"action"`
	OldStatus  string `json:"old_status"`
	NewStatus  string `json:"new_status"`
	LogID      uint   `json:"log_id"`
}

// ApplyActionUseCase applies an approval action to a record of any kind.
// The status write and the audit entry commit in one transaction; a failure
// on either side rolls back both.
type ApplyActionUseCase struct {
	typeRepo        action.TypeRepository
	logRepo         action.LogRepository
	registry        *record.Registry
	txManager       *db.TransactionManager
	enableReprocess bool
	logger          logger.Interface
}

func NewApplyActionUseCase(
	typeRepo action.TypeRepository,
	logRepo action.LogRepository,
	registry *record.Registry,
	txManager *db.TransactionManager,
	enableReprocess bool,
	logger logger.Interface,
) *ApplyActionUseCase {
	return &ApplyActionUseCase{
		typeRepo:        typeRepo,
		logRepo:         logRepo,
		registry:        registry,
		txManager:       txManager,
		enableReprocess: enableReprocess,
		logger:          logger,
	}
}

func (uc *ApplyActionUseCase) Execute(ctx context.Context, cmd ApplyActionCommand) (*ApplyActionResult, error) {
	kind, err := record.ParseKind(cmd.Kind)
	if err != nil {
		return nil, apperrors.NewValidationError("unknown record kind", cmd.Kind)
	}

	actionType, err := uc.typeRepo.GetByName(ctx, cmd.ActionName)
	if err != nil {
		uc.logger.Errorw("failed to look up action type", "error", err, "action", cmd.ActionName)
		return nil, apperrors.NewStorageError("get action type", err)
	}
	if actionType == nil {
		return nil, apperrors.NewInvalidActionError(cmd.ActionName)
	}

	if actionType.Name == action.NameReprocess && !uc.enableReprocess {
		return nil, apperrors.NewUnsupportedActionError(actionType.Name)
	}

	targetStatus, ok := action.TargetStatus(actionType.Name)
	if !ok {
		return nil, apperrors.NewUnsupportedActionError(actionType.Name)
	}

	store, err := uc.registry.StoreFor(kind)
	if err != nil {
		uc.logger.Errorw("no store for record kind", "error", err, "record_kind", kind)
		return nil, apperrors.NewInternalError("record kind is not wired")
	}

	meta, err := store.GetMeta(ctx, cmd.RecordID)
	if err != nil {
		uc.logger.Errorw("failed to load record meta", "error", err, "record_kind", kind, "record_id", cmd.RecordID)
		return nil, apperrors.NewStorageError("get record", err)
	}
	if meta == nil {
		return nil, apperrors.NewRecordNotFoundError(string(kind), strconv.FormatUint(uint64(cmd.RecordID), 10))
	}

	if action.HasRedundancyGuard(actionType.Name) && meta.ApprovalStatus == targetStatus {
		return nil, apperrors.NewRedundantActionError(actionType.Name, string(meta.ApprovalStatus))
	}

	logEntry, err := action.NewLog(kind, cmd.RecordID, actionType, meta.ApprovalStatus, targetStatus, cmd.ActingUserID, cmd.IPAddress, cmd.Notes)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		swapped, err := store.UpdateApprovalStatus(txCtx, cmd.RecordID, meta.ApprovalStatus, targetStatus)
		if err != nil {
			return fmt.Errorf("failed to update approval status: %w", err)
		}
		if !swapped {
			// The status read above is stale: a concurrent transition won,
			// or the record was deleted in between.
			return apperrors.NewConflictError(
				"record status changed concurrently, retry with fresh state",
				fmt.Sprintf("expected status %s", meta.ApprovalStatus),
			)
		}

		if err := uc.logRepo.Create(txCtx, logEntry); err != nil {
			return fmt.Errorf("failed to write audit entry: %w", err)
		}
		return nil
	})
	if err != nil {
		if apperrors.IsAppError(err) {
			return nil, err
		}
		uc.logger.Errorw("action transaction failed",
			"error", err,
			"record_kind", kind,
			"record_id", cmd.RecordID,
			"action", actionType.Name,
		)
		return nil, apperrors.NewStorageError("apply action", err)
	}

	uc.logger.Infow("action applied",
		"record_kind", kind,
		"record_id", cmd.RecordID,
		"action", actionType.Name,
		"old_status", meta.ApprovalStatus,
		"new_status", targetStatus,
		"acting_user_id", cmd.ActingUserID,
	)

	return &ApplyActionResult{
		RecordKind: string(kind),
		RecordID:   cmd.RecordID,
		Action:     actionType.Name,
		OldStatus:  string(meta.ApprovalStatus),
		NewStatus:  string(targetStatus),
		LogID:      logEntry.ID,
	}, nil
}
