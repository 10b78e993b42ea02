package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"lerms/internal/domain/action"
	"lerms/internal/domain/record"
	"lerms/internal/domain/suppression"
	"lerms/internal/domain/vehicle"
	"lerms/internal/infrastructure/migration"
	"lerms/internal/infrastructure/persistence/models"
	"lerms/internal/shared/db"
	"lerms/internal/shared/logger"
	"lerms/internal/shared/query"
)

func setupTestDB(t *testing.T) *gorm.DB {
	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = gormDB.AutoMigrate(migration.AutoMigrateModels()...)
	require.NoError(t, err)

	return gormDB
}

func createTestRegistration(t *testing.T, variant vehicle.Variant, plate string) *vehicle.Registration {
	reg, err := vehicle.NewRegistration(variant, plate, "VIN"+plate, "Ford", "Interceptor", 2022, "J. Doe", "1 Main St", nil)
	require.NoError(t, err)
	return reg
}

func TestVehicleRepository_CreateAndGet(t *testing.T) {
	gormDB := setupTestDB(t)
	repo := NewVehicleRepository(gormDB, logger.NewLogger())
	ctx := context.Background()

	t.Run("create assigns id and round-trips", func(t *testing.T) {
		reg := createTestRegistration(t, vehicle.VariantMaster, "ABC-100")

		err := repo.Create(ctx, reg)
		require.NoError(t, err)
		assert.NotZero(t, reg.ID())

		found, err := repo.GetByID(ctx, reg.ID())
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "ABC-100", found.PlateNumber())
		assert.Equal(t, record.StatusPending, found.ApprovalStatus())
	})

	t.Run("get absent id returns nil without error", func(t *testing.T) {
		found, err := repo.GetByID(ctx, 99999)
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("plate lookup is scoped to variant", func(t *testing.T) {
		reg := createTestRegistration(t, vehicle.VariantUndercover, "UC-200")
		require.NoError(t, repo.Create(ctx, reg))

		found, err := repo.GetByPlate(ctx, vehicle.VariantUndercover, "UC-200")
		require.NoError(t, err)
		require.NotNil(t, found)

		miss, err := repo.GetByPlate(ctx, vehicle.VariantMaster, "UC-200")
		require.NoError(t, err)
		assert.Nil(t, miss)
	})
}

func TestVehicleStore_UpdateApprovalStatus(t *testing.T) {
	gormDB := setupTestDB(t)
	repo := NewVehicleRepository(gormDB, logger.NewLogger())
	store := NewVehicleStore(gormDB, vehicle.VariantMaster, logger.NewLogger())
	ctx := context.Background()

	reg := createTestRegistration(t, vehicle.VariantMaster, "CAS-001")
	require.NoError(t, repo.Create(ctx, reg))

	t.Run("swap succeeds when expected status matches", func(t *testing.T) {
		ok, err := store.UpdateApprovalStatus(ctx, reg.ID(), record.StatusPending, record.StatusApproved)
		require.NoError(t, err)
		assert.True(t, ok)

		meta, err := store.GetMeta(ctx, reg.ID())
		require.NoError(t, err)
		require.NotNil(t, meta)
		assert.Equal(t, record.StatusApproved, meta.ApprovalStatus)
	})

	t.Run("swap reports false on stale expectation", func(t *testing.T) {
		ok, err := store.UpdateApprovalStatus(ctx, reg.ID(), record.StatusPending, record.StatusRejected)
		require.NoError(t, err)
		assert.False(t, ok)

		meta, err := store.GetMeta(ctx, reg.ID())
		require.NoError(t, err)
		assert.Equal(t, record.StatusApproved, meta.ApprovalStatus)
	})

	t.Run("swap reports false for missing record", func(t *testing.T) {
		ok, err := store.UpdateApprovalStatus(ctx, 99999, record.StatusPending, record.StatusApproved)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("store is scoped to its variant", func(t *testing.T) {
		other := createTestRegistration(t, vehicle.VariantFictitious, "CAS-002")
		require.NoError(t, repo.Create(ctx, other))

		meta, err := store.GetMeta(ctx, other.ID())
		require.NoError(t, err)
		assert.Nil(t, meta)
	})
}

func TestActionLogRepository_TransactionAtomicity(t *testing.T) {
	gormDB := setupTestDB(t)
	vehicleRepo := NewVehicleRepository(gormDB, logger.NewLogger())
	store := NewVehicleStore(gormDB, vehicle.VariantMaster, logger.NewLogger())
	logRepo := NewActionLogRepository(gormDB, logger.NewLogger())
	txManager := db.NewTransactionManager(gormDB)
	ctx := context.Background()

	require.NoError(t, gormDB.Create(&models.ActionTypeModel{Name: action.NameApprove, Description: "Approve a record"}).Error)

	var approveType models.ActionTypeModel
	require.NoError(t, gormDB.Where("name = ?", action.NameApprove).First(&approveType).Error)

	newLog := func(recordID uint) *action.Log {
		entry, err := action.NewLog(
			record.KindVehicleMaster,
			recordID,
			&action.Type{ID: approveType.ID, Name: approveType.Name},
			record.StatusPending,
			record.StatusApproved,
			1,
			"127.0.0.1",
			"",
		)
		require.NoError(t, err)
		return entry
	}

	t.Run("status write and audit row commit together", func(t *testing.T) {
		reg := createTestRegistration(t, vehicle.VariantMaster, "TX-001")
		require.NoError(t, vehicleRepo.Create(ctx, reg))

		err := txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
			ok, err := store.UpdateApprovalStatus(txCtx, reg.ID(), record.StatusPending, record.StatusApproved)
			require.NoError(t, err)
			require.True(t, ok)
			return logRepo.Create(txCtx, newLog(reg.ID()))
		})
		require.NoError(t, err)

		meta, err := store.GetMeta(ctx, reg.ID())
		require.NoError(t, err)
		assert.Equal(t, record.StatusApproved, meta.ApprovalStatus)

		entries, total, err := logRepo.ListByRecord(ctx, record.KindVehicleMaster, reg.ID(), query.PageFilter{Page: 1, PageSize: 10})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, entries, 1)
		assert.Equal(t, action.NameApprove, entries[0].ActionName)
	})

	t.Run("failure after the status write rolls both back", func(t *testing.T) {
		reg := createTestRegistration(t, vehicle.VariantMaster, "TX-002")
		require.NoError(t, vehicleRepo.Create(ctx, reg))

		err := txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
			ok, err := store.UpdateApprovalStatus(txCtx, reg.ID(), record.StatusPending, record.StatusApproved)
			require.NoError(t, err)
			require.True(t, ok)
			if err := logRepo.Create(txCtx, newLog(reg.ID())); err != nil {
				return err
			}
			return fmt.Errorf("simulated failure")
		})
		require.Error(t, err)

		meta, err := store.GetMeta(ctx, reg.ID())
		require.NoError(t, err)
		assert.Equal(t, record.StatusPending, meta.ApprovalStatus)

		_, total, err := logRepo.ListByRecord(ctx, record.KindVehicleMaster, reg.ID(), query.PageFilter{Page: 1, PageSize: 10})
		require.NoError(t, err)
		assert.Equal(t, int64(0), total)
	})

	t.Run("history is ordered newest first", func(t *testing.T) {
		reg := createTestRegistration(t, vehicle.VariantMaster, "TX-003")
		require.NoError(t, vehicleRepo.Create(ctx, reg))

		first := newLog(reg.ID())
		first.CreatedAt = time.Now().Add(-time.Hour)
		require.NoError(t, logRepo.Create(ctx, first))

		second := newLog(reg.ID())
		second.Notes = "latest"
		require.NoError(t, logRepo.Create(ctx, second))

		entries, total, err := logRepo.ListByRecord(ctx, record.KindVehicleMaster, reg.ID(), query.PageFilter{Page: 1, PageSize: 10})
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		require.Len(t, entries, 2)
		assert.Equal(t, "latest", entries[0].Notes)
	})
}

func TestSuppressionRepository_Lifecycle(t *testing.T) {
	gormDB := setupTestDB(t)
	vehicleRepo := NewVehicleRepository(gormDB, logger.NewLogger())
	suppRepo := NewSuppressionRepository(gormDB, logger.NewLogger())
	ctx := context.Background()

	reg := createTestRegistration(t, vehicle.VariantMaster, "SUP-001")
	require.NoError(t, vehicleRepo.Create(ctx, reg))

	recordID := reg.ID()
	supp, err := suppression.NewSuppression(record.KindVehicleMaster, &recordID, "officer_safety", "Active investigation", time.Now(), nil, "clerk@records.state.gov")
	require.NoError(t, err)

	t.Run("active suppression hides the record from default listings", func(t *testing.T) {
		require.NoError(t, suppRepo.Create(ctx, supp))
		assert.NotZero(t, supp.ID())

		ids, err := suppRepo.ActiveIDsForRecord(ctx, record.KindVehicleMaster, recordID)
		require.NoError(t, err)
		assert.Len(t, ids, 1)

		regs, total, err := vehicleRepo.List(ctx, vehicle.Filter{
			BaseFilter: query.BaseFilter{PageFilter: query.PageFilter{Page: 1, PageSize: 10}},
			Variant:    vehicle.VariantMaster,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(0), total)
		assert.Empty(t, regs)
	})

	t.Run("include_suppressed lifts the exclusion", func(t *testing.T) {
		regs, total, err := vehicleRepo.List(ctx, vehicle.Filter{
			BaseFilter:        query.BaseFilter{PageFilter: query.PageFilter{Page: 1, PageSize: 10}},
			Variant:           vehicle.VariantMaster,
			IncludeSuppressed: true,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, regs, 1)
		assert.Equal(t, recordID, regs[0].ID())
	})

	t.Run("revoke restores default visibility", func(t *testing.T) {
		require.NoError(t, supp.Revoke())
		require.NoError(t, suppRepo.Update(ctx, supp))

		ids, err := suppRepo.ActiveIDsForRecord(ctx, record.KindVehicleMaster, recordID)
		require.NoError(t, err)
		assert.Empty(t, ids)

		_, total, err := vehicleRepo.List(ctx, vehicle.Filter{
			BaseFilter: query.BaseFilter{PageFilter: query.PageFilter{Page: 1, PageSize: 10}},
			Variant:    vehicle.VariantMaster,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
	})

	t.Run("revoked suppression still appears in suppression listings", func(t *testing.T) {
		supps, total, err := suppRepo.List(ctx, suppression.Filter{
			BaseFilter: query.BaseFilter{PageFilter: query.PageFilter{Page: 1, PageSize: 10}},
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, supps, 1)
		assert.Equal(t, suppression.StatusRemoved, supps[0].Status())
	})
}

func TestSuppressionRepository_Details(t *testing.T) {
	gormDB := setupTestDB(t)
	suppRepo := NewSuppressionRepository(gormDB, logger.NewLogger())
	ctx := context.Background()

	supp, err := suppression.NewSuppression(record.KindDLOriginal, nil, "witness_protection", "", time.Now(), nil, "reviewer@review.state.gov")
	require.NoError(t, err)
	require.NoError(t, suppRepo.Create(ctx, supp))

	t.Run("access requests round-trip under their suppression", func(t *testing.T) {
		detail, err := suppression.NewAccessRequestDetail(supp.ID(), time.Now(), "J. Smith", "Det. Brown", "Court order", "30d", "DB")
		require.NoError(t, err)
		require.NoError(t, suppRepo.AddAccessRequest(ctx, detail))

		details, total, err := suppRepo.ListAccessRequests(ctx, supp.ID(), query.PageFilter{Page: 1, PageSize: 10})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, details, 1)
		assert.Equal(t, "Det. Brown", details[0].Requester)
	})

	t.Run("identity aliases round-trip under their suppression", func(t *testing.T) {
		alias, err := suppression.NewIdentityAliasDetail(supp.ID(), "Old Name", "OLD-PLATE-1")
		require.NoError(t, err)
		require.NoError(t, suppRepo.AddIdentityAlias(ctx, alias))

		aliases, total, err := suppRepo.ListIdentityAliases(ctx, supp.ID(), query.PageFilter{Page: 1, PageSize: 10})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, aliases, 1)
		assert.Equal(t, "Old Name", aliases[0].OldName)
	})

	t.Run("details of another suppression are not returned", func(t *testing.T) {
		details, total, err := suppRepo.ListAccessRequests(ctx, supp.ID()+1, query.PageFilter{Page: 1, PageSize: 10})
		require.NoError(t, err)
		assert.Equal(t, int64(0), total)
		assert.Empty(t, details)
	})
}
