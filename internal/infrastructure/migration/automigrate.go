package migration

import (
	"fmt"

	"gorm.io/gorm"

	"lerms/internal/infrastructure/persistence/models"
	"lerms/internal/shared/logger"
)

// AutoMigrateModels returns every persistence model the schema migration
// must cover. Order matters for foreign keys: referenced tables first.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.AgencyModel{},
		&models.UserModel{},
		&models.RoleModel{},
		&models.PermissionModel{},
		&models.EmailRoleMappingModel{},
		&models.VehicleRegistrationModel{},
		&models.DriverLicenseModel{},
		&models.LicenseContactModel{},
		&models.DocumentModel{},
		&models.ActionTypeModel{},
		&models.ActionLogModel{},
		&models.SuppressionModel{},
		&models.AccessRequestDetailModel{},
		&models.IdentityAliasDetailModel{},
	}
}

// GormAutoMigrateStrategy migrates the schema straight from the model
// structs. Used in development and tests.
type GormAutoMigrateStrategy struct {
	logger logger.Interface
}

// NewGormAutoMigrateStrategy creates a new GORM AutoMigrate strategy
func NewGormAutoMigrateStrategy() Strategy {
	return &GormAutoMigrateStrategy{
		logger: logger.NewLogger().With("component", "migration.auto-migrate"),
	}
}

// Migrate executes GORM AutoMigrate for the given models
func (s *GormAutoMigrateStrategy) Migrate(db *gorm.DB, models ...interface{}) error {
	s.logger.Infow("starting GORM auto migration", "models_count", len(models))

	if err := db.AutoMigrate(models...); err != nil {
		s.logger.Errorw("auto migration failed", "error", err)
		return fmt.Errorf("failed to auto migrate models: %w", err)
	}

	s.logger.Infow("auto migration completed successfully")
	return nil
}

// GetName returns the strategy name
func (s *GormAutoMigrateStrategy) GetName() string {
	return "gorm_auto_migrate"
}
