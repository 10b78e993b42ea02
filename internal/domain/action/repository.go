package action

import (
	"context"

	"lerms/internal/domain/record"
	"lerms/internal/shared/query"
)

// TypeRepository reads the seeded action vocabulary.
type TypeRepository interface {
	// GetByName returns the action type, or nil when the name is unknown.
	GetByName(ctx context.Context, name string) (*Type, error)
	List(ctx context.Context) ([]*Type, error)
}

// LogRepository persists audit entries. Create must participate in the
// caller's transaction so a status write and its audit row commit together.
type LogRepository interface {
	Create(ctx context.Context, log *Log) error
	// ListByRecord returns entries for one record ordered created_at DESC.
	ListByRecord(ctx context.Context, kind record.Kind, recordID uint, filter query.PageFilter) ([]*Log, int64, error)
}
