package suppression

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lerms/internal/domain/record"
)

func TestNewSuppression(t *testing.T) {
	recordID := uint(42)

	t.Run("defaults effective date and active state", func(t *testing.T) {
		s, err := NewSuppression(record.KindDLOriginal, &recordID, "privacy", "witness protection", time.Time{}, nil, "rev1")
		require.NoError(t, err)

		assert.Equal(t, StatusActive, s.Status())
		assert.True(t, s.IsActive())
		assert.False(t, s.EffectiveDate().IsZero())
		assert.Equal(t, "rev1", s.CreatedBy())
	})

	t.Run("requires reason", func(t *testing.T) {
		_, err := NewSuppression(record.KindDLOriginal, &recordID, "", "", time.Time{}, nil, "rev1")
		assert.Error(t, err)
	})

	t.Run("requires creator", func(t *testing.T) {
		_, err := NewSuppression(record.KindDLOriginal, &recordID, "privacy", "", time.Time{}, nil, "")
		assert.Error(t, err)
	})

	t.Run("rejects expiration before effective date", func(t *testing.T) {
		effective := time.Now()
		expiry := effective.Add(-time.Hour)
		_, err := NewSuppression(record.KindDLOriginal, &recordID, "privacy", "", effective, &expiry, "rev1")
		assert.Error(t, err)
	})

	t.Run("allows nil record link", func(t *testing.T) {
		s, err := NewSuppression(record.KindVehicleMaster, nil, "blanket", "", time.Time{}, nil, "rev1")
		require.NoError(t, err)
		assert.Nil(t, s.RecordID())
	})
}

func TestSuppression_Revoke(t *testing.T) {
	recordID := uint(7)
	s, err := NewSuppression(record.KindVehicleMaster, &recordID, "privacy", "", time.Time{}, nil, "rev1")
	require.NoError(t, err)

	err = s.Revoke()
	require.NoError(t, err)
	assert.False(t, s.IsActive())
	assert.Equal(t, StatusRemoved, s.Status())

	// second revoke is rejected
	assert.Error(t, s.Revoke())
}

func TestSuppression_UpdateExpiration(t *testing.T) {
	recordID := uint(7)
	s, err := NewSuppression(record.KindVehicleMaster, &recordID, "privacy", "", time.Time{}, nil, "rev1")
	require.NoError(t, err)

	future := time.Now().Add(24 * time.Hour)
	assert.NoError(t, s.UpdateExpiration(&future))

	past := s.EffectiveDate().Add(-time.Hour)
	assert.Error(t, s.UpdateExpiration(&past))

	assert.NoError(t, s.UpdateExpiration(nil))
	assert.Nil(t, s.ExpirationDate())
}

func TestNewAccessRequestDetail(t *testing.T) {
	d, err := NewAccessRequestDetail(3, time.Time{}, "ABC-123", "Det. Rowe", "court order", "30d", "DR")
	require.NoError(t, err)
	assert.False(t, d.DateRequested.IsZero())
	assert.Equal(t, uint(3), d.SuppressionID)

	_, err = NewAccessRequestDetail(0, time.Time{}, "", "Det. Rowe", "", "", "")
	assert.Error(t, err)

	_, err = NewAccessRequestDetail(3, time.Time{}, "", "", "", "", "")
	assert.Error(t, err)
}

func TestNewIdentityAliasDetail(t *testing.T) {
	_, err := NewIdentityAliasDetail(3, "", "")
	assert.Error(t, err)

	d, err := NewIdentityAliasDetail(3, "Old Name", "")
	require.NoError(t, err)
	assert.Equal(t, "Old Name", d.OldName)
}
