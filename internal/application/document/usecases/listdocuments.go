package usecases

import (
	"context"
	"strconv"

	"lerms/internal/application/document/dto"
	"lerms/internal/domain/document"
	"lerms/internal/domain/record"
	apperrors "lerms/internal/shared/errors"
	"lerms/internal/shared/logger"
)

type ListDocumentsCommand struct {
	UploaderID        *uint
	LinkedKind        string
	LinkedID          *uint
	ApprovalStatus    string
	IncludeSuppressed bool
	Page              int
	PageSize          int
}

// ListDocumentsUseCase pages through document metadata.
type ListDocumentsUseCase struct {
	repo   document.Repository
	logger logger.Interface
}

func NewListDocumentsUseCase(repo document.Repository, logger logger.Interface) *ListDocumentsUseCase {
	return &ListDocumentsUseCase{repo: repo, logger: logger}
}

func (uc *ListDocumentsUseCase) Execute(ctx context.Context, cmd ListDocumentsCommand) ([]*dto.DocumentDTO, int64, error) {
	filter := document.Filter{
		UploaderID:        cmd.UploaderID,
		LinkedID:          cmd.LinkedID,
		IncludeSuppressed: cmd.IncludeSuppressed,
	}
	filter.Page = cmd.Page
	filter.PageSize = cmd.PageSize

	if cmd.LinkedKind != "" {
		kind, err := record.ParseKind(cmd.LinkedKind)
		if err != nil {
			return nil, 0, apperrors.NewValidationError("unknown record kind", cmd.LinkedKind)
		}
		filter.LinkedKind = kind
	}
	if cmd.ApprovalStatus != "" {
		status, err := record.ParseStatus(cmd.ApprovalStatus)
		if err != nil {
			return nil, 0, apperrors.NewValidationError(err.Error())
		}
		filter.ApprovalStatus = status
	}

	docs, total, err := uc.repo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list documents", "error", err)
		return nil, 0, apperrors.NewStorageError("list documents", err)
	}
	return dto.DocumentsToDTO(docs), total, nil
}

// GetDocumentUseCase loads one document's metadata.
type GetDocumentUseCase struct {
	repo   document.Repository
	logger logger.Interface
}

func NewGetDocumentUseCase(repo document.Repository, logger logger.Interface) *GetDocumentUseCase {
	return &GetDocumentUseCase{repo: repo, logger: logger}
}

func (uc *GetDocumentUseCase) Execute(ctx context.Context, documentID uint) (*dto.DocumentDTO, error) {
	doc, err := uc.repo.GetByID(ctx, documentID)
	if err != nil {
		uc.logger.Errorw("failed to get document", "error", err, "document_id", documentID)
		return nil, apperrors.NewStorageError("get document", err)
	}
	if doc == nil {
		return nil, apperrors.NewNotFoundError("document not found", strconv.FormatUint(uint64(documentID), 10))
	}
	return dto.DocumentToDTO(doc), nil
}
