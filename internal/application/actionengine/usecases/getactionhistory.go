package usecases

import (
	"context"
	"strconv"

	"lerms/internal/application/actionengine/dto"
	"lerms/internal/domain/action"
	"lerms/internal/domain/record"
	apperrors "lerms/internal/shared/errors"
	"lerms/internal/shared/logger"
	"lerms/internal/shared/query"
	"lerms/internal/shared/services/markdown"
)

type GetActionHistoryCommand struct {
	Kind     string
	RecordID uint
	Page     int
	PageSize int
}

// GetActionHistoryUseCase lists the audit trail for one record, newest
// first, with notes rendered to HTML.
type GetActionHistoryUseCase struct {
	logRepo  action.LogRepository
	registry *record.Registry
	markdown markdown.Service
	logger   logger.Interface
}

func NewGetActionHistoryUseCase(
	logRepo action.LogRepository,
	registry *record.Registry,
	markdown markdown.Service,
	logger logger.Interface,
) *GetActionHistoryUseCase {
	return &GetActionHistoryUseCase{
		logRepo:  logRepo,
		registry: registry,
		markdown: markdown,
		logger:   logger,
	}
}

func (uc *GetActionHistoryUseCase) Execute(ctx context.Context, cmd GetActionHistoryCommand) ([]*dto.ActionLogDTO, int64, error) {
	kind, err := record.ParseKind(cmd.Kind)
	if err != nil {
		return nil, 0, apperrors.NewValidationError("unknown record kind", cmd.Kind)
	}

	store, err := uc.registry.StoreFor(kind)
	if err != nil {
		return nil, 0, apperrors.NewInternalError("record kind is not wired")
	}

	meta, err := store.GetMeta(ctx, cmd.RecordID)
	if err != nil {
		uc.logger.Errorw("failed to load record meta", "error", err, "record_kind", kind, "record_id", cmd.RecordID)
		return nil, 0, apperrors.NewStorageError("get record", err)
	}
	if meta == nil {
		return nil, 0, apperrors.NewRecordNotFoundError(string(kind), strconv.FormatUint(uint64(cmd.RecordID), 10))
	}

	filter := query.PageFilter{Page: cmd.Page, PageSize: cmd.PageSize}
	logs, total, err := uc.logRepo.ListByRecord(ctx, kind, cmd.RecordID, filter)
	if err != nil {
		uc.logger.Errorw("failed to list action history", "error", err, "record_kind", kind, "record_id", cmd.RecordID)
		return nil, 0, apperrors.NewStorageError("list action history", err)
	}

	dtos := make([]*dto.ActionLogDTO, 0, len(logs))
	for _, logEntry := range logs {
		notesHTML, err := uc.markdown.RenderNotes(logEntry.Notes)
		if err != nil {
			uc.logger.Warnw("failed to render action notes", "error", err, "log_id", logEntry.ID)
			notesHTML = ""
		}
		dtos = append(dtos, dto.ActionLogToDTO(logEntry, notesHTML))
	}

	return dtos, total, nil
}
