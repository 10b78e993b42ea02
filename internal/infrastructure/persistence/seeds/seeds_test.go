package seeds

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"lerms/internal/infrastructure/migration"
	"lerms/internal/infrastructure/persistence/models"
)

func setupSeedTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(migration.AutoMigrateModels()...))
	return db
}

func TestSeedAll(t *testing.T) {
	db := setupSeedTestDB(t)

	require.NoError(t, SeedAll(db))

	var actionTypes int64
	require.NoError(t, db.Model(&models.ActionTypeModel{}).Count(&actionTypes).Error)
	assert.Equal(t, int64(4), actionTypes)

	var permissions int64
	require.NoError(t, db.Model(&models.PermissionModel{}).Count(&permissions).Error)
	assert.Equal(t, int64(10), permissions)

	var roles []models.RoleModel
	require.NoError(t, db.Preload("Permissions").Order("id ASC").Find(&roles).Error)
	require.Len(t, roles, 4)

	bySlug := make(map[string]models.RoleModel, len(roles))
	for _, role := range roles {
		bySlug[role.Slug] = role
	}

	assert.True(t, bySlug["admin"].IsSystem)
	assert.Empty(t, bySlug["admin"].Permissions)
	assert.Len(t, bySlug["user"].Permissions, 3)
	assert.Len(t, bySlug["clerk"].Permissions, 6)
	assert.Len(t, bySlug["reviewer"].Permissions, 6)

	var mappings []models.EmailRoleMappingModel
	require.NoError(t, db.Find(&mappings).Error)
	assert.Len(t, mappings, 2)

	var agencies int64
	require.NoError(t, db.Model(&models.AgencyModel{}).Count(&agencies).Error)
	assert.Equal(t, int64(2), agencies)
}

func TestSeedAllIdempotent(t *testing.T) {
	db := setupSeedTestDB(t)

	require.NoError(t, SeedAll(db))
	require.NoError(t, SeedAll(db))

	var actionTypes int64
	require.NoError(t, db.Model(&models.ActionTypeModel{}).Count(&actionTypes).Error)
	assert.Equal(t, int64(4), actionTypes)

	var roles int64
	require.NoError(t, db.Model(&models.RoleModel{}).Count(&roles).Error)
	assert.Equal(t, int64(4), roles)

	var userRole models.RoleModel
	require.NoError(t, db.Preload("Permissions").Where("slug = ?", "user").First(&userRole).Error)
	assert.Len(t, userRole.Permissions, 3)
}
