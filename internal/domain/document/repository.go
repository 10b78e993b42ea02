package document

import (
	"context"

	"lerms/internal/domain/record"
	"lerms/internal/shared/query"
)

// Filter narrows document listings.
type Filter struct {
	query.BaseFilter
	UploaderID        *uint
	LinkedKind        record.Kind
	LinkedID          *uint
	ApprovalStatus    record.Status
	IncludeSuppressed bool
	IncludeInactive   bool
}

// Repository persists document metadata.
type Repository interface {
	Create(ctx context.Context, document *Document) error
	// GetByID returns nil when absent.
	GetByID(ctx context.Context, id uint) (*Document, error)
	Update(ctx context.Context, document *Document) error
	List(ctx context.Context, filter Filter) ([]*Document, int64, error)
}

// Extractor produces simulated OCR fields from upload metadata. The real
// system forwards files to an OCR service; here extraction is deterministic
// on the metadata so the pipeline stays testable.
type Extractor interface {
	Extract(ctx context.Context, fileName, contentType string, sizeBytes int64) (map[string]string, error)
}
