package usecases

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"lerms/internal/domain/action"
	"lerms/internal/domain/record"
	"lerms/internal/shared/db"
	"lerms/internal/shared/logger"
	"lerms/internal/shared/query"
)

type mockTypeRepository struct {
	GetByNameFunc func(ctx context.Context, name string) (*action.Type, error)
	ListFunc      func(ctx context.Context) ([]*action.Type, error)
}

func (m *mockTypeRepository) GetByName(ctx context.Context, name string) (*action.Type, error) {
	if m.GetByNameFunc != nil {
		return m.GetByNameFunc(ctx, name)
	}
	return nil, nil
}

func (m *mockTypeRepository) List(ctx context.Context) ([]*action.Type, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

type mockLogRepository struct {
	CreateFunc       func(ctx context.Context, log *action.Log) error
	ListByRecordFunc func(ctx context.Context, kind record.Kind, recordID uint, filter query.PageFilter) ([]*action.Log, int64, error)
}

func (m *mockLogRepository) Create(ctx context.Context, log *action.Log) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, log)
	}
	return nil
}

func (m *mockLogRepository) ListByRecord(ctx context.Context, kind record.Kind, recordID uint, filter query.PageFilter) ([]*action.Log, int64, error) {
	if m.ListByRecordFunc != nil {
		return m.ListByRecordFunc(ctx, kind, recordID, filter)
	}
	return nil, 0, nil
}

type mockStore struct {
	GetMetaFunc              func(ctx context.Context, id uint) (*record.Meta, error)
	UpdateApprovalStatusFunc func(ctx context.Context, id uint, from, to record.Status) (bool, error)
}

func (m *mockStore) GetMeta(ctx context.Context, id uint) (*record.Meta, error) {
	if m.GetMetaFunc != nil {
		return m.GetMetaFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockStore) UpdateApprovalStatus(ctx context.Context, id uint, from, to record.Status) (bool, error) {
	if m.UpdateApprovalStatusFunc != nil {
		return m.UpdateApprovalStatusFunc(ctx, id, from, to)
	}
	return true, nil
}

func quietLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func testTxManager(t *testing.T) *db.TransactionManager {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	return db.NewTransactionManager(gdb)
}
