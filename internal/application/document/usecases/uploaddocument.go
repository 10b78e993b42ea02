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

type UploadDocumentCommand struct {
	FileName    string
	ContentType string
	SizeBytes   int64
	UploaderID  uint
	LinkedKind  string
	LinkedID    *uint
}

// UploadDocumentUseCase records upload metadata and runs the OCR extractor
// over it. File bytes are never stored. Extraction failure degrades to a
// document without fields rather than failing the upload.
type UploadDocumentUseCase struct {
	repo      document.Repository
	registry  *record.Registry
	extractor document.Extractor
	logger    logger.Interface
}

func NewUploadDocumentUseCase(
	repo document.Repository,
	registry *record.Registry,
	extractor document.Extractor,
	logger logger.Interface,
) *UploadDocumentUseCase {
	return &UploadDocumentUseCase{repo: repo, registry: registry, extractor: extractor, logger: logger}
}

func (uc *UploadDocumentUseCase) Execute(ctx context.Context, cmd UploadDocumentCommand) (*dto.DocumentDTO, error) {
	var linkedKind *record.Kind
	if cmd.LinkedKind != "" {
		kind, err := record.ParseKind(cmd.LinkedKind)
		if err != nil {
			return nil, apperrors.NewValidationError("unknown record kind", cmd.LinkedKind)
		}
		if cmd.LinkedID == nil {
			return nil, apperrors.NewValidationError("linked record requires both kind and id")
		}

		store, err := uc.registry.StoreFor(kind)
		if err != nil {
			return nil, apperrors.NewInternalError("record kind is not wired")
		}
		meta, err := store.GetMeta(ctx, *cmd.LinkedID)
		if err != nil {
			uc.logger.Errorw("failed to load linked record", "error", err, "record_kind", kind, "record_id", *cmd.LinkedID)
			return nil, apperrors.NewStorageError("get linked record", err)
		}
		if meta == nil {
			return nil, apperrors.NewRecordNotFoundError(string(kind), strconv.FormatUint(uint64(*cmd.LinkedID), 10))
		}
		linkedKind = &kind
	}

	doc, err := document.NewDocument(cmd.FileName, cmd.ContentType, cmd.SizeBytes, cmd.UploaderID, linkedKind, cmd.LinkedID)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	fields, err := uc.extractor.Extract(ctx, cmd.FileName, cmd.ContentType, cmd.SizeBytes)
	if err != nil {
		uc.logger.Warnw("ocr extraction failed", "error", err, "file_name", cmd.FileName)
	} else {
		doc.SetOCRFields(fields)
	}

	if err := uc.repo.Create(ctx, doc); err != nil {
		uc.logger.Errorw("failed to create document", "error", err, "file_name", cmd.FileName)
		return nil, apperrors.NewStorageError("create document", err)
	}

	uc.logger.Infow("document uploaded",
		"document_id", doc.ID(),
		"file_name", doc.FileName(),
		"uploader_id", doc.UploaderID(),
		"ocr_field_count", len(doc.OCRFields()),
	)
	return dto.DocumentToDTO(doc), nil
}
