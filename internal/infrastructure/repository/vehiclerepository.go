package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"lerms/internal/domain/record"
	"lerms/internal/domain/vehicle"
	"lerms/internal/infrastructure/persistence/mappers"
	"lerms/internal/infrastructure/persistence/models"
	"lerms/internal/shared/constants"
	"lerms/internal/shared/db"
	"lerms/internal/shared/logger"
)

// allowedVehicleOrderByFields defines the whitelist of allowed ORDER BY fields
// to prevent SQL injection attacks.
var allowedVehicleOrderByFields = map[string]bool{
	"id":              true,
	"plate_number":    true,
	"vin":             true,
	"make":            true,
	"model":           true,
	"year":            true,
	"owner_name":      true,
	"approval_status": true,
	"created_at":      true,
	"updated_at":      true,
}

// notSuppressedVehicle excludes registrations with at least one active
// suppression. The record kind depends on the row's variant, so the match
// is expressed as a CASE rather than a fixed kind.
func notSuppressedVehicle() func(db *gorm.DB) *gorm.DB {
	cond := fmt.Sprintf(`NOT EXISTS (
SELECT 1 FROM %s s
WHERE s.record_id = %s.id
AND s.is_active = ?
AND s.status = ?
AND s.record_kind = CASE %s.variant
WHEN 'master' THEN 'vehicle_master'
WHEN 'undercover' THEN 'vehicle_undercover'
WHEN 'fictitious' THEN 'vehicle_fictitious'
END)`,
		constants.TableSuppressions,
		constants.TableVehicleRecords,
		constants.TableVehicleRecords,
	)
	return func(tx *gorm.DB) *gorm.DB {
		return tx.Where(cond, true, constants.SuppressionStatusActive)
	}
}

// VehicleRepository implements the vehicle repository interface
type VehicleRepository struct {
	db     *gorm.DB
	mapper mappers.VehicleMapper
	logger logger.Interface
}

// NewVehicleRepository creates a new vehicle repository
func NewVehicleRepository(gormDB *gorm.DB, logger logger.Interface) vehicle.Repository {
	return &VehicleRepository{
		db:     gormDB,
		mapper: mappers.NewVehicleMapper(),
		logger: logger,
	}
}

// Create creates a new vehicle registration
func (r *VehicleRepository) Create(ctx context.Context, registration *vehicle.Registration) error {
	model, err := r.mapper.ToModel(registration)
	if err != nil {
		r.logger.Errorw("failed to map registration to model", "error", err)
		return fmt.Errorf("failed to map registration: %w", err)
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create registration", "plate", model.PlateNumber, "error", err)
		return fmt.Errorf("failed to create registration: %w", err)
	}

	if err := registration.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set registration ID: %w", err)
	}

	r.logger.Infow("vehicle registration created", "id", model.ID, "variant", model.Variant, "plate", model.PlateNumber)
	return nil
}

// GetByID retrieves a registration by ID, returning nil when absent
func (r *VehicleRepository) GetByID(ctx context.Context, id uint) (*vehicle.Registration, error) {
	var model models.VehicleRegistrationModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get registration by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get registration: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// GetByPlate retrieves a registration by exact plate within a variant,
// returning nil when absent
func (r *VehicleRepository) GetByPlate(ctx context.Context, variant vehicle.Variant, plateNumber string) (*vehicle.Registration, error) {
	var model models.VehicleRegistrationModel

	err := db.GetTxFromContext(ctx, r.db).
		Where("variant = ? AND plate_number = ?", string(variant), plateNumber).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get registration by plate", "variant", variant, "plate", plateNumber, "error", err)
		return nil, fmt.Errorf("failed to get registration: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// Update persists the full current state of a registration
func (r *VehicleRepository) Update(ctx context.Context, registration *vehicle.Registration) error {
	model, err := r.mapper.ToModel(registration)
	if err != nil {
		r.logger.Errorw("failed to map registration to model", "id", registration.ID(), "error", err)
		return fmt.Errorf("failed to map registration: %w", err)
	}

	result := db.GetTxFromContext(ctx, r.db).Model(&models.VehicleRegistrationModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"plate_number":    model.PlateNumber,
			"vin":             model.VIN,
			"make":            model.Make,
			"model":           model.Model,
			"year":            model.Year,
			"owner_name":      model.OwnerName,
			"owner_address":   model.OwnerAddress,
			"agency_id":       model.AgencyID,
			"approval_status": model.ApprovalStatus,
			"is_active":       model.IsActive,
			"updated_at":      model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update registration", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update registration: %w", result.Error)
	}

	r.logger.Infow("vehicle registration updated", "id", model.ID)
	return nil
}

// List retrieves a paginated list of registrations
func (r *VehicleRepository) List(ctx context.Context, filter vehicle.Filter) ([]*vehicle.Registration, int64, error) {
	var vehicleModels []*models.VehicleRegistrationModel
	var total int64

	query := db.GetTxFromContext(ctx, r.db).Model(&models.VehicleRegistrationModel{})

	if filter.Variant != "" {
		query = query.Where("variant = ?", string(filter.Variant))
	}
	if filter.PlateNumber != "" {
		query = query.Where("plate_number LIKE ?", "%"+filter.PlateNumber+"%")
	}
	if filter.VIN != "" {
		query = query.Where("vin = ?", filter.VIN)
	}
	if filter.ApprovalStatus != "" {
		query = query.Where("approval_status = ?", filter.ApprovalStatus.String())
	}
	if filter.AgencyID != nil {
		query = query.Where("agency_id = ?", *filter.AgencyID)
	}
	if !filter.IncludeInactive {
		query = query.Scopes(db.Active())
	}
	if !filter.IncludeSuppressed {
		if filter.Variant != "" {
			query = query.Scopes(db.NotSuppressed(filter.Variant.Kind().String()))
		} else {
			query = query.Scopes(notSuppressedVehicle())
		}
	}

	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count registrations", "error", err)
		return nil, 0, fmt.Errorf("failed to count registrations: %w", err)
	}

	orderBy := filter.SortBy
	if orderBy == "" || !allowedVehicleOrderByFields[orderBy] {
		query = query.Order("created_at DESC")
	} else {
		order := "ASC"
		if strings.EqualFold(filter.SortOrder, "desc") {
			order = "DESC"
		}
		query = query.Order(fmt.Sprintf("%s %s", orderBy, order))
	}

	query = query.Offset(filter.Offset()).Limit(filter.Limit())

	if err := query.Find(&vehicleModels).Error; err != nil {
		r.logger.Errorw("failed to list registrations", "error", err)
		return nil, 0, fmt.Errorf("failed to list registrations: %w", err)
	}

	entities, err := r.mapper.ToEntities(vehicleModels)
	if err != nil {
		r.logger.Errorw("failed to map registration models", "error", err)
		return nil, 0, fmt.Errorf("failed to map registrations: %w", err)
	}

	return entities, total, nil
}

// VehicleStore adapts one registration variant to the approval workflow.
// Each variant registers as its own record kind.
type VehicleStore struct {
	db      *gorm.DB
	variant vehicle.Variant
	logger  logger.Interface
}

// NewVehicleStore creates an approval-workflow store for one variant
func NewVehicleStore(gormDB *gorm.DB, variant vehicle.Variant, logger logger.Interface) record.Store {
	return &VehicleStore{
		db:      gormDB,
		variant: variant,
		logger:  logger,
	}
}

// GetMeta returns the registration's approval meta, or nil when absent
func (s *VehicleStore) GetMeta(ctx context.Context, id uint) (*record.Meta, error) {
	var model models.VehicleRegistrationModel

	err := db.GetTxFromContext(ctx, s.db).
		Select("id", "approval_status", "updated_at").
		Where("id = ? AND variant = ?", id, string(s.variant)).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		s.logger.Errorw("failed to get registration meta", "id", id, "variant", s.variant, "error", err)
		return nil, fmt.Errorf("failed to get registration meta: %w", err)
	}

	status, err := record.ParseStatus(model.ApprovalStatus)
	if err != nil {
		return nil, fmt.Errorf("failed to parse approval status: %w", err)
	}

	return &record.Meta{
		Kind:           s.variant.Kind(),
		ID:             model.ID,
		ApprovalStatus: status,
		UpdatedAt:      model.UpdatedAt,
	}, nil
}

// UpdateApprovalStatus performs the compare-and-swap status write. It joins
// the caller's transaction when one is in the context.
func (s *VehicleStore) UpdateApprovalStatus(ctx context.Context, id uint, from, to record.Status) (bool, error) {
	result := db.GetTxFromContext(ctx, s.db).Model(&models.VehicleRegistrationModel{}).
		Where("id = ? AND variant = ? AND approval_status = ?", id, string(s.variant), from.String()).
		Update("approval_status", to.String())
	if result.Error != nil {
		s.logger.Errorw("failed to update approval status", "id", id, "variant", s.variant, "error", result.Error)
		return false, fmt.Errorf("failed to update approval status: %w", result.Error)
	}

	return result.RowsAffected > 0, nil
}
