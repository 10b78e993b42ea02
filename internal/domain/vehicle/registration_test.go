package vehicle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lerms/internal/domain/record"
)

func TestVariantKindRoundTrip(t *testing.T) {
	for _, v := range []Variant{VariantMaster, VariantUndercover, VariantFictitious} {
		got, err := VariantForKind(v.Kind())
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}

	_, err := VariantForKind(record.KindDLOriginal)
	assert.Error(t, err)
}

func TestNewRegistration(t *testing.T) {
	r, err := NewRegistration(VariantUndercover, "UC-1042", "1HGCM82633A004352", "Honda", "Accord", 2019, "", "", nil)
	require.NoError(t, err)
	assert.Equal(t, record.StatusPending, r.ApprovalStatus())
	assert.True(t, r.IsActive())
	assert.Equal(t, record.KindVehicleUndercover, r.Variant().Kind())

	_, err = NewRegistration(VariantMaster, "", "", "", "", 0, "", "", nil)
	assert.Error(t, err)

	_, err = NewRegistration(Variant("ghost"), "ABC-123", "", "", "", 0, "", "", nil)
	assert.Error(t, err)

	_, err = NewRegistration(VariantMaster, "ABC-123", "", "", "", 1850, "", "", nil)
	assert.Error(t, err)
}

func TestRegistration_UpdateDetails(t *testing.T) {
	r, err := NewRegistration(VariantMaster, "ABC-123", "", "Ford", "F-150", 2021, "J. Doe", "", nil)
	require.NoError(t, err)

	empty := ""
	err = r.UpdateDetails(&empty, nil, nil, nil, nil, nil, nil, nil)
	assert.Error(t, err)

	plate := "XYZ-987"
	owner := "A. Smith"
	require.NoError(t, r.UpdateDetails(&plate, nil, nil, nil, nil, &owner, nil, nil))
	assert.Equal(t, "XYZ-987", r.PlateNumber())
	assert.Equal(t, "A. Smith", r.OwnerName())
	assert.Equal(t, "Ford", r.Make())
}
