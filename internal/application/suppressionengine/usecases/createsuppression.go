package usecases

import (
	"context"
	"strconv"
	"time"

	"lerms/internal/application/suppressionengine/dto"
	"lerms/internal/domain/record"
	"lerms/internal/domain/suppression"
	apperrors "lerms/internal/shared/errors"
	"lerms/internal/shared/logger"
	"lerms/internal/shared/services/markdown"
)

// Notifier delivers suppression lifecycle notifications to the configured
// reviewer list. Delivery is best-effort; failures never fail the workflow.
type Notifier interface {
	SendSuppressionCreated(recordKind string, recordID *uint, reason, createdBy string) error
	SendSuppressionRevoked(suppressionID uint, recordKind, revokedBy string) error
}

type CreateSuppressionCommand struct {
	RecordKind        string
	RecordID          *uint
	Reason            string
	ReasonDescription string
	EffectiveDate     time.Time
	ExpirationDate    *time.Time
	CreatedBy         string
}

// CreateSuppressionUseCase activates a suppression over a record, hiding it
// from default listings until the suppression is revoked.
type CreateSuppressionUseCase struct {
	repo     suppression.Repository
	registry *record.Registry
	markdown markdown.Service
	notifier Notifier
	logger   logger.Interface
}

func NewCreateSuppressionUseCase(
	repo suppression.Repository,
	registry *record.Registry,
	markdown markdown.Service,
	notifier Notifier,
	logger logger.Interface,
) *CreateSuppressionUseCase {
	return &CreateSuppressionUseCase{
		repo:     repo,
		registry: registry,
		markdown: markdown,
		notifier: notifier,
		logger:   logger,
	}
}

func (uc *CreateSuppressionUseCase) Execute(ctx context.Context, cmd CreateSuppressionCommand) (*dto.SuppressionDTO, error) {
	kind, err := record.ParseKind(cmd.RecordKind)
	if err != nil {
		return nil, apperrors.NewValidationError("unknown record kind", cmd.RecordKind)
	}

	// A record-bound suppression must point at a record that exists. An
	// unbound one (nil record id) suppresses by identity details alone.
	if cmd.RecordID != nil {
		store, err := uc.registry.StoreFor(kind)
		if err != nil {
			return nil, apperrors.NewInternalError("record kind is not wired")
		}
		meta, err := store.GetMeta(ctx, *cmd.RecordID)
		if err != nil {
			uc.logger.Errorw("failed to load record meta", "error", err, "record_kind", kind, "record_id", *cmd.RecordID)
			return nil, apperrors.NewStorageError("get record", err)
		}
		if meta == nil {
			return nil, apperrors.NewRecordNotFoundError(string(kind), strconv.FormatUint(uint64(*cmd.RecordID), 10))
		}
	}

	description := uc.markdown.SanitizeText(cmd.ReasonDescription)
	supp, err := suppression.NewSuppression(kind, cmd.RecordID, cmd.Reason, description, cmd.EffectiveDate, cmd.ExpirationDate, cmd.CreatedBy)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.repo.Create(ctx, supp); err != nil {
		uc.logger.Errorw("failed to create suppression", "error", err, "record_kind", kind)
		return nil, apperrors.NewStorageError("create suppression", err)
	}

	if uc.notifier != nil {
		if err := uc.notifier.SendSuppressionCreated(string(kind), cmd.RecordID, supp.Reason(), supp.CreatedBy()); err != nil {
			uc.logger.Warnw("failed to send suppression notification", "error", err, "suppression_id", supp.ID())
		}
	}

	uc.logger.Infow("suppression created",
		"suppression_id", supp.ID(),
		"record_kind", kind,
		"record_id", cmd.RecordID,
		"reason", supp.Reason(),
		"created_by", supp.CreatedBy(),
	)

	descriptionHTML, err := uc.markdown.RenderNotes(supp.ReasonDescription())
	if err != nil {
		descriptionHTML = ""
	}
	return dto.SuppressionToDTO(supp, descriptionHTML), nil
}
