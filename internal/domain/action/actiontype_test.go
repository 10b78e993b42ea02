package action

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"lerms/internal/domain/record"
)

func TestTargetStatus(t *testing.T) {
	tests := []struct {
		name       string
		action     string
		wantStatus record.Status
		wantOK     bool
	}{
		{"approve", NameApprove, record.StatusApproved, true},
		{"reject", NameReject, record.StatusRejected, true},
		{"hold", NameHold, record.StatusOnHold, true},
		{"reprocess resets to pending", NameReprocess, record.StatusPending, true},
		{"unknown action", "escalate", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, ok := TargetStatus(tt.action)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantStatus, status)
		})
	}
}

func TestHasRedundancyGuard(t *testing.T) {
	assert.True(t, HasRedundancyGuard(NameApprove))
	assert.True(t, HasRedundancyGuard(NameReject))
	assert.True(t, HasRedundancyGuard(NameHold))
	assert.False(t, HasRedundancyGuard(NameReprocess))
}

func TestNewLog(t *testing.T) {
	at := &Type{ID: 1, Name: NameApprove}

	t.Run("defaults ip to unknown", func(t *testing.T) {
		log, err := NewLog(record.KindVehicleMaster, 42, at, record.StatusPending, record.StatusApproved, 7, "", "ok")
		assert.NoError(t, err)
		assert.Equal(t, "unknown", log.IPAddress)
		assert.Equal(t, record.StatusPending, log.OldStatus)
		assert.Equal(t, record.StatusApproved, log.NewStatus)
	})

	t.Run("rejects missing acting user", func(t *testing.T) {
		_, err := NewLog(record.KindVehicleMaster, 42, at, record.StatusPending, record.StatusApproved, 0, "1.2.3.4", "")
		assert.Error(t, err)
	})

	t.Run("rejects nil action type", func(t *testing.T) {
		_, err := NewLog(record.KindVehicleMaster, 42, nil, record.StatusPending, record.StatusApproved, 7, "1.2.3.4", "")
		assert.Error(t, err)
	})
}
