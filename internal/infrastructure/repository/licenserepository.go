package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"lerms/internal/domain/license"
	"lerms/internal/domain/record"
	"lerms/internal/infrastructure/persistence/mappers"
	"lerms/internal/infrastructure/persistence/models"
	"lerms/internal/shared/constants"
	"lerms/internal/shared/db"
	"lerms/internal/shared/logger"
)

// allowedLicenseOrderByFields defines the whitelist of allowed ORDER BY fields
// to prevent SQL injection attacks.
var allowedLicenseOrderByFields = map[string]bool{
	"id":              true,
	"license_number":  true,
	"holder_name":     true,
	"class":           true,
	"issue_date":      true,
	"expiration_date": true,
	"approval_status": true,
	"created_at":      true,
	"updated_at":      true,
}

// notSuppressedLicense excludes licenses with at least one active
// suppression, matching the record kind to the row's variant.
func notSuppressedLicense() func(db *gorm.DB) *gorm.DB {
	cond := fmt.Sprintf(`NOT EXISTS (
SELECT 1 FROM %s s
WHERE s.record_id = %s.id
AND s.is_active = ?
AND s.status = ?
AND s.record_kind = CASE %s.variant
WHEN 'original' THEN 'dl_original'
WHEN 'fictitious' THEN 'dl_fictitious'
END)`,
		constants.TableSuppressions,
		constants.TableDriverLicenses,
		constants.TableDriverLicenses,
	)
	return func(tx *gorm.DB) *gorm.DB {
		return tx.Where(cond, true, constants.SuppressionStatusActive)
	}
}

// LicenseRepository implements the license repository interface
type LicenseRepository struct {
	db     *gorm.DB
	mapper mappers.LicenseMapper
	logger logger.Interface
}

// NewLicenseRepository creates a new license repository
func NewLicenseRepository(gormDB *gorm.DB, logger logger.Interface) license.Repository {
	return &LicenseRepository{
		db:     gormDB,
		mapper: mappers.NewLicenseMapper(),
		logger: logger,
	}
}

// Create creates a new driver license
func (r *LicenseRepository) Create(ctx context.Context, licenseEntity *license.DriverLicense) error {
	model, err := r.mapper.ToModel(licenseEntity)
	if err != nil {
		r.logger.Errorw("failed to map license to model", "error", err)
		return fmt.Errorf("failed to map license: %w", err)
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create license", "number", model.LicenseNumber, "error", err)
		return fmt.Errorf("failed to create license: %w", err)
	}

	if err := licenseEntity.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set license ID: %w", err)
	}

	r.logger.Infow("driver license created", "id", model.ID, "variant", model.Variant, "number", model.LicenseNumber)
	return nil
}

// GetByID retrieves a license by ID, returning nil when absent
func (r *LicenseRepository) GetByID(ctx context.Context, id uint) (*license.DriverLicense, error) {
	var model models.DriverLicenseModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get license by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get license: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// GetByNumber retrieves a license by exact number within a variant,
// returning nil when absent
func (r *LicenseRepository) GetByNumber(ctx context.Context, variant license.Variant, licenseNumber string) (*license.DriverLicense, error) {
	var model models.DriverLicenseModel

	err := db.GetTxFromContext(ctx, r.db).
		Where("variant = ? AND license_number = ?", string(variant), licenseNumber).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get license by number", "variant", variant, "number", licenseNumber, "error", err)
		return nil, fmt.Errorf("failed to get license: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// Update persists the full current state of a license
func (r *LicenseRepository) Update(ctx context.Context, licenseEntity *license.DriverLicense) error {
	model, err := r.mapper.ToModel(licenseEntity)
	if err != nil {
		r.logger.Errorw("failed to map license to model", "id", licenseEntity.ID(), "error", err)
		return fmt.Errorf("failed to map license: %w", err)
	}

	result := db.GetTxFromContext(ctx, r.db).Model(&models.DriverLicenseModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"license_number":  model.LicenseNumber,
			"holder_name":     model.HolderName,
			"date_of_birth":   model.DateOfBirth,
			"address":         model.Address,
			"class":           model.Class,
			"issue_date":      model.IssueDate,
			"expiration_date": model.ExpirationDate,
			"agency_id":       model.AgencyID,
			"approval_status": model.ApprovalStatus,
			"is_active":       model.IsActive,
			"updated_at":      model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update license", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update license: %w", result.Error)
	}

	r.logger.Infow("driver license updated", "id", model.ID)
	return nil
}

// List retrieves a paginated list of licenses
func (r *LicenseRepository) List(ctx context.Context, filter license.Filter) ([]*license.DriverLicense, int64, error) {
	var licenseModels []*models.DriverLicenseModel
	var total int64

	query := db.GetTxFromContext(ctx, r.db).Model(&models.DriverLicenseModel{})

	if filter.Variant != "" {
		query = query.Where("variant = ?", string(filter.Variant))
	}
	if filter.LicenseNumber != "" {
		query = query.Where("license_number LIKE ?", "%"+filter.LicenseNumber+"%")
	}
	if filter.HolderName != "" {
		query = query.Where("holder_name LIKE ?", "%"+filter.HolderName+"%")
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
			query = query.Scopes(notSuppressedLicense())
		}
	}

	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count licenses", "error", err)
		return nil, 0, fmt.Errorf("failed to count licenses: %w", err)
	}

	orderBy := filter.SortBy
	if orderBy == "" || !allowedLicenseOrderByFields[orderBy] {
		query = query.Order("created_at DESC")
	} else {
		order := "ASC"
		if strings.EqualFold(filter.SortOrder, "desc") {
			order = "DESC"
		}
		query = query.Order(fmt.Sprintf("%s %s", orderBy, order))
	}

	query = query.Offset(filter.Offset()).Limit(filter.Limit())

	if err := query.Find(&licenseModels).Error; err != nil {
		r.logger.Errorw("failed to list licenses", "error", err)
		return nil, 0, fmt.Errorf("failed to list licenses: %w", err)
	}

	entities, err := r.mapper.ToEntities(licenseModels)
	if err != nil {
		r.logger.Errorw("failed to map license models", "error", err)
		return nil, 0, fmt.Errorf("failed to map licenses: %w", err)
	}

	return entities, total, nil
}

// AddContact persists a cover contact for a fictitious license
func (r *LicenseRepository) AddContact(ctx context.Context, contact *license.Contact) error {
	model := r.mapper.ContactToModel(contact)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create license contact", "license_id", model.LicenseID, "error", err)
		return fmt.Errorf("failed to create contact: %w", err)
	}

	contact.ID = model.ID

	r.logger.Infow("license contact created", "id", model.ID, "license_id", model.LicenseID)
	return nil
}

// ListContacts returns all contacts attached to a license
func (r *LicenseRepository) ListContacts(ctx context.Context, licenseID uint) ([]*license.Contact, error) {
	var contactModels []*models.LicenseContactModel

	err := db.GetTxFromContext(ctx, r.db).
		Where("license_id = ?", licenseID).
		Order("created_at ASC").
		Find(&contactModels).Error
	if err != nil {
		r.logger.Errorw("failed to list license contacts", "license_id", licenseID, "error", err)
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}

	contacts := make([]*license.Contact, 0, len(contactModels))
	for _, model := range contactModels {
		contacts = append(contacts, r.mapper.ContactToEntity(model))
	}

	return contacts, nil
}

// LicenseStore adapts one license variant to the approval workflow.
type LicenseStore struct {
	db      *gorm.DB
	variant license.Variant
	logger  logger.Interface
}

// NewLicenseStore creates an approval-workflow store for one variant
func NewLicenseStore(gormDB *gorm.DB, variant license.Variant, logger logger.Interface) record.Store {
	return &LicenseStore{
		db:      gormDB,
		variant: variant,
		logger:  logger,
	}
}

// GetMeta returns the license's approval meta, or nil when absent
func (s *LicenseStore) GetMeta(ctx context.Context, id uint) (*record.Meta, error) {
	var model models.DriverLicenseModel

	err := db.GetTxFromContext(ctx, s.db).
		Select("id", "approval_status", "updated_at").
		Where("id = ? AND variant = ?", id, string(s.variant)).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		s.logger.Errorw("failed to get license meta", "id", id, "variant", s.variant, "error", err)
		return nil, fmt.Errorf("failed to get license meta: %w", err)
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

// UpdateApprovalStatus performs the compare-and-swap status write
func (s *LicenseStore) UpdateApprovalStatus(ctx context.Context, id uint, from, to record.Status) (bool, error) {
	result := db.GetTxFromContext(ctx, s.db).Model(&models.DriverLicenseModel{}).
		Where("id = ? AND variant = ? AND approval_status = ?", id, string(s.variant), from.String()).
		Update("approval_status", to.String())
	if result.Error != nil {
		s.logger.Errorw("failed to update approval status", "id", id, "variant", s.variant, "error", result.Error)
		return false, fmt.Errorf("failed to update approval status: %w", result.Error)
	}

	return result.RowsAffected > 0, nil
}
