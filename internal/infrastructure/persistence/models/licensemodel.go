package models

import (
	"time"

	"lerms/internal/shared/constants"
)

// DriverLicenseModel maps one row of driver_licenses. Original and
// fictitious licenses share the table; variant discriminates.
type DriverLicenseModel struct {
	ID             uint   `gorm:"primarykey"`
	Variant        string `gorm:"not null;size:20;index:idx_license_variant;uniqueIndex:idx_license_variant_number,priority:1"`
	LicenseNumber  string `gorm:"not null;size:30;uniqueIndex:idx_license_variant_number,priority:2"`
	HolderName     string `gorm:"not null;size:100"`
	DateOfBirth    *time.Time
	Address        string `gorm:"size:255"`
	Class          string `gorm:"size:10"`
	IssueDate      *time.Time
	ExpirationDate *time.Time
	AgencyID       *uint  `gorm:"index:idx_license_agency"`
	ApprovalStatus string `gorm:"not null;default:pending;size:20;index:idx_license_approval_status"`
	IsActive       bool   `gorm:"not null;default:true;index:idx_license_is_active"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName specifies the table name for GORM
func (DriverLicenseModel) TableName() string {
	return constants.TableDriverLicenses
}

// LicenseContactModel maps a cover contact row owned by a fictitious
// license. Rows cascade-delete with their parent.
type LicenseContactModel struct {
	ID           uint   `gorm:"primarykey"`
	LicenseID    uint   `gorm:"not null;index:idx_contact_license;constraint:OnDelete:CASCADE"`
	Name         string `gorm:"not null;size:100"`
	Phone        string `gorm:"size:30"`
	Relationship string `gorm:"size:50"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName specifies the table name for GORM
func (LicenseContactModel) TableName() string {
	return constants.TableLicenseContacts
}
