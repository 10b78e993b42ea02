package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateVIN(t *testing.T) {
	tests := []struct {
		name    string
		vin     string
		wantErr bool
	}{
		{"empty vin allowed", "", false},
		{"valid vin", "1HGBH41JXMN109186", false},
		{"lowercase accepted", "1hgbh41jxmn109186", false},
		{"too short", "1HGBH41JX", true},
		{"contains I", "IHGBH41JXMN109186", true},
		{"contains O", "OHGBH41JXMN109186", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateVIN(tt.vin)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePlateNumber(t *testing.T) {
	tests := []struct {
		name    string
		plate   string
		wantErr bool
	}{
		{"standard plate", "ABC-1234", false},
		{"plate with space", "ABC 123", false},
		{"empty plate", "", true},
		{"whitespace only", "   ", true},
		{"too long", "ABCDEFGHIJK", true},
		{"invalid characters", "ABC_123!", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePlateNumber(tt.plate)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateStruct(t *testing.T) {
	type sample struct {
		Email string `json:"email" validate:"required,email"`
		Name  string `json:"name" validate:"required"`
	}

	t.Run("valid struct passes", func(t *testing.T) {
		err := ValidateStruct(sample{Email: "clerk@records.state.gov", Name: "Clerk"})
		assert.NoError(t, err)
	})

	t.Run("errors use json field names", func(t *testing.T) {
		err := ValidateStruct(sample{Email: "not-an-email"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "email")
	})
}
