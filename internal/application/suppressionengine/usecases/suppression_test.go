package usecases

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lerms/internal/domain/record"
	"lerms/internal/domain/suppression"
	apperrors "lerms/internal/shared/errors"
	"lerms/internal/shared/logger"
	"lerms/internal/shared/query"
	"lerms/internal/shared/services/markdown"
)

type mockSuppressionRepository struct {
	CreateFunc             func(ctx context.Context, s *suppression.Suppression) error
	GetByIDFunc            func(ctx context.Context, id uint) (*suppression.Suppression, error)
	UpdateFunc             func(ctx context.Context, s *suppression.Suppression) error
	ListFunc               func(ctx context.Context, filter suppression.Filter) ([]*suppression.Suppression, int64, error)
	ActiveIDsForRecordFunc func(ctx context.Context, kind record.Kind, recordID uint) ([]uint, error)
	AddAccessRequestFunc   func(ctx context.Context, detail *suppression.AccessRequestDetail) error
	AddIdentityAliasFunc   func(ctx context.Context, detail *suppression.IdentityAliasDetail) error
}

func (m *mockSuppressionRepository) Create(ctx context.Context, s *suppression.Suppression) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, s)
	}
	return s.SetID(1)
}

func (m *mockSuppressionRepository) GetByID(ctx context.Context, id uint) (*suppression.Suppression, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockSuppressionRepository) Update(ctx context.Context, s *suppression.Suppression) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, s)
	}
	return nil
}

func (m *mockSuppressionRepository) List(ctx context.Context, filter suppression.Filter) ([]*suppression.Suppression, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockSuppressionRepository) ActiveIDsForRecord(ctx context.Context, kind record.Kind, recordID uint) ([]uint, error) {
	if m.ActiveIDsForRecordFunc != nil {
		return m.ActiveIDsForRecordFunc(ctx, kind, recordID)
	}
	return nil, nil
}

func (m *mockSuppressionRepository) AddAccessRequest(ctx context.Context, detail *suppression.AccessRequestDetail) error {
	if m.AddAccessRequestFunc != nil {
		return m.AddAccessRequestFunc(ctx, detail)
	}
	return nil
}

func (m *mockSuppressionRepository) AddIdentityAlias(ctx context.Context, detail *suppression.IdentityAliasDetail) error {
	if m.AddIdentityAliasFunc != nil {
		return m.AddIdentityAliasFunc(ctx, detail)
	}
	return nil
}

func (m *mockSuppressionRepository) ListAccessRequests(ctx context.Context, suppressionID uint, filter query.PageFilter) ([]*suppression.AccessRequestDetail, int64, error) {
	return nil, 0, nil
}

func (m *mockSuppressionRepository) ListIdentityAliases(ctx context.Context, suppressionID uint, filter query.PageFilter) ([]*suppression.IdentityAliasDetail, int64, error) {
	return nil, 0, nil
}

type mockNotifier struct {
	created int
	revoked int
	fail    bool
}

func (m *mockNotifier) SendSuppressionCreated(recordKind string, recordID *uint, reason, createdBy string) error {
	m.created++
	if m.fail {
		return assert.AnError
	}
	return nil
}

func (m *mockNotifier) SendSuppressionRevoked(suppressionID uint, recordKind, revokedBy string) error {
	m.revoked++
	if m.fail {
		return assert.AnError
	}
	return nil
}

type mockMetaStore struct {
	meta *record.Meta
}

func (m *mockMetaStore) GetMeta(ctx context.Context, id uint) (*record.Meta, error) {
	return m.meta, nil
}

func (m *mockMetaStore) UpdateApprovalStatus(ctx context.Context, id uint, from, to record.Status) (bool, error) {
	return true, nil
}

func quietLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func activeSuppression(t *testing.T, id uint) *suppression.Suppression {
	t.Helper()
	recordID := uint(5)
	supp, err := suppression.NewSuppression(record.KindVehicleMaster, &recordID, "officer safety", "", time.Time{}, nil, "admin@agency.gov")
	require.NoError(t, err)
	require.NoError(t, supp.SetID(id))
	return supp
}

func TestCreateSuppression(t *testing.T) {
	recordID := uint(5)
	registry := record.NewRegistry()
	registry.Register(record.KindVehicleMaster, &mockMetaStore{
		meta: &record.Meta{Kind: record.KindVehicleMaster, ID: 5, ApprovalStatus: record.StatusApproved},
	})

	repo := &mockSuppressionRepository{}
	notifier := &mockNotifier{}
	uc := NewCreateSuppressionUseCase(repo, registry, markdown.NewService(), notifier, quietLogger())

	result, err := uc.Execute(context.Background(), CreateSuppressionCommand{
		RecordKind: "vehicle_master",
		RecordID:   &recordID,
		Reason:     "officer safety",
		CreatedBy:  "admin@agency.gov",
	})
	require.NoError(t, err)
	assert.True(t, result.IsActive)
	assert.Equal(t, "active", result.Status)
	assert.Equal(t, 1, notifier.created)
}

func TestCreateSuppression_RecordMissing(t *testing.T) {
	recordID := uint(999)
	registry := record.NewRegistry()
	registry.Register(record.KindVehicleMaster, &mockMetaStore{meta: nil})

	uc := NewCreateSuppressionUseCase(&mockSuppressionRepository{}, registry, markdown.NewService(), &mockNotifier{}, quietLogger())
	_, err := uc.Execute(context.Background(), CreateSuppressionCommand{
		RecordKind: "vehicle_master",
		RecordID:   &recordID,
		Reason:     "officer safety",
		CreatedBy:  "admin@agency.gov",
	})
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))
}

func TestCreateSuppression_NotifierFailureIsNonFatal(t *testing.T) {
	registry := record.NewRegistry()
	notifier := &mockNotifier{fail: true}
	uc := NewCreateSuppressionUseCase(&mockSuppressionRepository{}, registry, markdown.NewService(), notifier, quietLogger())

	// Unbound suppression: no record id, no existence check.
	result, err := uc.Execute(context.Background(), CreateSuppressionCommand{
		RecordKind: "dl_fictitious",
		Reason:     "identity protection",
		CreatedBy:  "admin@agency.gov",
	})
	require.NoError(t, err)
	assert.Nil(t, result.RecordID)
	assert.Equal(t, 1, notifier.created)
}

func TestRevokeSuppression(t *testing.T) {
	supp := activeSuppression(t, 12)
	repo := &mockSuppressionRepository{
		GetByIDFunc: func(_ context.Context, id uint) (*suppression.Suppression, error) {
			if id == 12 {
				return supp, nil
			}
			return nil, nil
		},
	}
	uc := NewRevokeSuppressionUseCase(repo, &mockNotifier{}, quietLogger())

	result, err := uc.Execute(context.Background(), RevokeSuppressionCommand{SuppressionID: 12, RevokedBy: "admin@agency.gov"})
	require.NoError(t, err)
	assert.False(t, result.IsActive)
	assert.Equal(t, "removed", result.Status)

	// Second revoke is a conflict, not a no-op.
	_, err = uc.Execute(context.Background(), RevokeSuppressionCommand{SuppressionID: 12, RevokedBy: "admin@agency.gov"})
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeConflict))

	_, err = uc.Execute(context.Background(), RevokeSuppressionCommand{SuppressionID: 99, RevokedBy: "admin@agency.gov"})
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))
}

func TestCheckSuppression(t *testing.T) {
	repo := &mockSuppressionRepository{
		ActiveIDsForRecordFunc: func(_ context.Context, kind record.Kind, recordID uint) ([]uint, error) {
			if kind == record.KindVehicleMaster && recordID == 5 {
				return []uint{12, 17}, nil
			}
			return nil, nil
		},
	}
	uc := NewCheckSuppressionUseCase(repo, quietLogger())

	result, err := uc.Execute(context.Background(), CheckSuppressionCommand{RecordKind: "vehicle_master", RecordID: 5})
	require.NoError(t, err)
	assert.True(t, result.IsSuppressed)
	assert.Equal(t, []uint{12, 17}, result.ActiveSuppressionIDs)

	result, err = uc.Execute(context.Background(), CheckSuppressionCommand{RecordKind: "vehicle_master", RecordID: 6})
	require.NoError(t, err)
	assert.False(t, result.IsSuppressed)

	_, err = uc.Execute(context.Background(), CheckSuppressionCommand{RecordKind: "asteroid", RecordID: 1})
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))
}

func TestAddIdentityAlias_RequiresActiveSuppression(t *testing.T) {
	supp := activeSuppression(t, 3)
	require.NoError(t, supp.Revoke())

	repo := &mockSuppressionRepository{
		GetByIDFunc: func(_ context.Context, id uint) (*suppression.Suppression, error) {
			return supp, nil
		},
	}
	uc := NewSuppressionDetailsUseCase(repo, quietLogger())

	_, err := uc.AddIdentityAlias(context.Background(), AddIdentityAliasCommand{SuppressionID: 3, OldName: "J. Doe"})
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeConflict))
}
