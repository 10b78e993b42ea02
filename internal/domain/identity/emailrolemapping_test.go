package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmailRoleMapping_Matches(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		email   string
		want    bool
	}{
		{"exact match", "admin@x.com", "admin@x.com", true},
		{"exact match case insensitive", "admin@x.com", "Admin@X.COM", true},
		{"exact mismatch", "admin@x.com", "bob@x.com", false},
		{"suffix wildcard match", "%@y.com", "bob@y.com", true},
		{"suffix wildcard case insensitive", "%@y.com", "BOB@Y.COM", true},
		{"suffix wildcard mismatch", "%@y.com", "bob@z.com", false},
		{"suffix wildcard matches whole domain", "%y.com", "bob@anyy.com", true},
		{"empty email never matches", "%@y.com", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &EmailRoleMapping{Pattern: tt.pattern, RoleID: 1}
			assert.Equal(t, tt.want, m.Matches(tt.email))
		})
	}
}

func TestNewEmailRoleMapping(t *testing.T) {
	t.Run("normalizes pattern", func(t *testing.T) {
		m, err := NewEmailRoleMapping("  %@Agency.GOV ", 2)
		require.NoError(t, err)
		assert.Equal(t, "%@agency.gov", m.Pattern)
	})

	t.Run("rejects empty pattern", func(t *testing.T) {
		_, err := NewEmailRoleMapping("", 2)
		assert.Error(t, err)
	})

	t.Run("rejects catch-all pattern", func(t *testing.T) {
		_, err := NewEmailRoleMapping("%", 2)
		assert.Error(t, err)
	})

	t.Run("rejects zero role", func(t *testing.T) {
		_, err := NewEmailRoleMapping("a@b.com", 0)
		assert.Error(t, err)
	})
}

func TestUser_GrantRole(t *testing.T) {
	u, err := NewUser("officer@agency.gov", "Officer")
	require.NoError(t, err)

	role, err := ReconstructRole(1, "Reviewer", "reviewer", "", false, nil, u.CreatedAt(), u.CreatedAt())
	require.NoError(t, err)

	u.GrantRole(role)
	u.GrantRole(role) // duplicate ignored
	assert.Len(t, u.Roles(), 1)
	assert.True(t, u.HasRole("reviewer"))
	assert.False(t, u.HasRole("admin"))
}

func TestNewUser_Normalization(t *testing.T) {
	u, err := NewUser(" Officer@Agency.GOV ", "")
	require.NoError(t, err)
	assert.Equal(t, "officer@agency.gov", u.Email())
	assert.Equal(t, "officer", u.Name())
	assert.True(t, u.IsTransient())

	_, err = NewUser("not-an-email", "")
	assert.Error(t, err)
}
