package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lerms/internal/domain/action"
	"lerms/internal/domain/record"
	apperrors "lerms/internal/shared/errors"
)

func approveType() *action.Type {
	return &action.Type{ID: 1, Name: action.NameApprove}
}

func setupApplyAction(t *testing.T, typeRepo *mockTypeRepository, logRepo *mockLogRepository, store *mockStore, enableReprocess bool) *ApplyActionUseCase {
	t.Helper()
	registry := record.NewRegistry()
	registry.Register(record.KindVehicleMaster, store)
	return NewApplyActionUseCase(typeRepo, logRepo, registry, testTxManager(t), enableReprocess, quietLogger())
}

func TestApplyAction_Success(t *testing.T) {
	var createdLog *action.Log
	typeRepo := &mockTypeRepository{
		GetByNameFunc: func(_ context.Context, name string) (*action.Type, error) {
			require.Equal(t, action.NameApprove, name)
			return approveType(), nil
		},
	}
	logRepo := &mockLogRepository{
		CreateFunc: func(_ context.Context, log *action.Log) error {
			log.ID = 42
			createdLog = log
			return nil
		},
	}
	store := &mockStore{
		GetMetaFunc: func(_ context.Context, id uint) (*record.Meta, error) {
			return &record.Meta{Kind: record.KindVehicleMaster, ID: id, ApprovalStatus: record.StatusPending}, nil
		},
		UpdateApprovalStatusFunc: func(_ context.Context, id uint, from, to record.Status) (bool, error) {
			assert.Equal(t, record.StatusPending, from)
			assert.Equal(t, record.StatusApproved, to)
			return true, nil
		},
	}

	uc := setupApplyAction(t, typeRepo, logRepo, store, false)
	result, err := uc.Execute(context.Background(), ApplyActionCommand{
		Kind:         "vehicle_master",
		RecordID:     7,
		ActionName:   action.NameApprove,
		ActingUserID: 3,
		IPAddress:    "10.0.0.9",
		Notes:        "verified against source docs",
	})

	require.NoError(t, err)
	assert.Equal(t, "pending", result.OldStatus)
	assert.Equal(t, "approved", result.NewStatus)
	assert.Equal(t, uint(42), result.LogID)

	require.NotNil(t, createdLog)
	assert.Equal(t, record.StatusPending, createdLog.OldStatus)
	assert.Equal(t, record.StatusApproved, createdLog.NewStatus)
	assert.Equal(t, uint(3), createdLog.ActingUserID)
	assert.Equal(t, "10.0.0.9", createdLog.IPAddress)
}

func TestApplyAction_UnknownKind(t *testing.T) {
	uc := setupApplyAction(t, &mockTypeRepository{}, &mockLogRepository{}, &mockStore{}, false)
	_, err := uc.Execute(context.Background(), ApplyActionCommand{Kind: "spaceship", RecordID: 1, ActionName: action.NameApprove, ActingUserID: 1})
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))
}

func TestApplyAction_UnknownAction(t *testing.T) {
	typeRepo := &mockTypeRepository{
		GetByNameFunc: func(_ context.Context, _ string) (*action.Type, error) { return nil, nil },
	}
	uc := setupApplyAction(t, typeRepo, &mockLogRepository{}, &mockStore{}, false)
	_, err := uc.Execute(context.Background(), ApplyActionCommand{Kind: "vehicle_master", RecordID: 1, ActionName: "escalate", ActingUserID: 1})
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeInvalidAction))
}

func TestApplyAction_UnsupportedAction(t *testing.T) {
	// Row exists in the vocabulary but no transition is defined for it.
	typeRepo := &mockTypeRepository{
		GetByNameFunc: func(_ context.Context, name string) (*action.Type, error) {
			return &action.Type{ID: 9, Name: name}, nil
		},
	}
	uc := setupApplyAction(t, typeRepo, &mockLogRepository{}, &mockStore{}, false)
	_, err := uc.Execute(context.Background(), ApplyActionCommand{Kind: "vehicle_master", RecordID: 1, ActionName: "archive", ActingUserID: 1})
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeUnsupportedAction))
}

func TestApplyAction_ReprocessDisabled(t *testing.T) {
	typeRepo := &mockTypeRepository{
		GetByNameFunc: func(_ context.Context, _ string) (*action.Type, error) {
			return &action.Type{ID: 4, Name: action.NameReprocess}, nil
		},
	}
	uc := setupApplyAction(t, typeRepo, &mockLogRepository{}, &mockStore{}, false)
	_, err := uc.Execute(context.Background(), ApplyActionCommand{Kind: "vehicle_master", RecordID: 1, ActionName: action.NameReprocess, ActingUserID: 1})
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeUnsupportedAction))
}

func TestApplyAction_ReprocessHasNoRedundancyGuard(t *testing.T) {
	typeRepo := &mockTypeRepository{
		GetByNameFunc: func(_ context.Context, _ string) (*action.Type, error) {
			return &action.Type{ID: 4, Name: action.NameReprocess}, nil
		},
	}
	store := &mockStore{
		GetMetaFunc: func(_ context.Context, id uint) (*record.Meta, error) {
			return &record.Meta{Kind: record.KindVehicleMaster, ID: id, ApprovalStatus: record.StatusPending}, nil
		},
	}
	uc := setupApplyAction(t, typeRepo, &mockLogRepository{}, store, true)

	// Already pending, reprocess still applies and is audited.
	result, err := uc.Execute(context.Background(), ApplyActionCommand{Kind: "vehicle_master", RecordID: 1, ActionName: action.NameReprocess, ActingUserID: 1})
	require.NoError(t, err)
	assert.Equal(t, "pending", result.OldStatus)
	assert.Equal(t, "pending", result.NewStatus)
}

func TestApplyAction_RecordNotFound(t *testing.T) {
	typeRepo := &mockTypeRepository{
		GetByNameFunc: func(_ context.Context, _ string) (*action.Type, error) { return approveType(), nil },
	}
	store := &mockStore{
		GetMetaFunc: func(_ context.Context, _ uint) (*record.Meta, error) { return nil, nil },
	}
	uc := setupApplyAction(t, typeRepo, &mockLogRepository{}, store, false)
	_, err := uc.Execute(context.Background(), ApplyActionCommand{Kind: "vehicle_master", RecordID: 999, ActionName: action.NameApprove, ActingUserID: 1})
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))
}

func TestApplyAction_Redundant(t *testing.T) {
	typeRepo := &mockTypeRepository{
		GetByNameFunc: func(_ context.Context, _ string) (*action.Type, error) { return approveType(), nil },
	}
	store := &mockStore{
		GetMetaFunc: func(_ context.Context, id uint) (*record.Meta, error) {
			return &record.Meta{Kind: record.KindVehicleMaster, ID: id, ApprovalStatus: record.StatusApproved}, nil
		},
	}
	logRepo := &mockLogRepository{
		CreateFunc: func(_ context.Context, _ *action.Log) error {
			t.Fatal("redundant action must not write an audit entry")
			return nil
		},
	}
	uc := setupApplyAction(t, typeRepo, logRepo, store, false)
	_, err := uc.Execute(context.Background(), ApplyActionCommand{Kind: "vehicle_master", RecordID: 1, ActionName: action.NameApprove, ActingUserID: 1})
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeRedundantAction))
}

func TestApplyAction_ConcurrentTransitionLosesRace(t *testing.T) {
	typeRepo := &mockTypeRepository{
		GetByNameFunc: func(_ context.Context, _ string) (*action.Type, error) { return approveType(), nil },
	}
	store := &mockStore{
		GetMetaFunc: func(_ context.Context, id uint) (*record.Meta, error) {
			return &record.Meta{Kind: record.KindVehicleMaster, ID: id, ApprovalStatus: record.StatusPending}, nil
		},
		UpdateApprovalStatusFunc: func(_ context.Context, _ uint, _, _ record.Status) (bool, error) {
			return false, nil
		},
	}
	logRepo := &mockLogRepository{
		CreateFunc: func(_ context.Context, _ *action.Log) error {
			t.Fatal("lost CAS race must not write an audit entry")
			return nil
		},
	}
	uc := setupApplyAction(t, typeRepo, logRepo, store, false)
	_, err := uc.Execute(context.Background(), ApplyActionCommand{Kind: "vehicle_master", RecordID: 1, ActionName: action.NameApprove, ActingUserID: 1})
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeConflict))
}

func TestApplyAction_AuditFailureRollsBack(t *testing.T) {
	typeRepo := &mockTypeRepository{
		GetByNameFunc: func(_ context.Context, _ string) (*action.Type, error) { return approveType(), nil },
	}
	store := &mockStore{
		GetMetaFunc: func(_ context.Context, id uint) (*record.Meta, error) {
			return &record.Meta{Kind: record.KindVehicleMaster, ID: id, ApprovalStatus: record.StatusPending}, nil
		},
	}
	logRepo := &mockLogRepository{
		CreateFunc: func(_ context.Context, _ *action.Log) error {
			return errors.New("disk full")
		},
	}
	uc := setupApplyAction(t, typeRepo, logRepo, store, false)
	_, err := uc.Execute(context.Background(), ApplyActionCommand{Kind: "vehicle_master", RecordID: 1, ActionName: action.NameApprove, ActingUserID: 1})
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeInternal))
}
