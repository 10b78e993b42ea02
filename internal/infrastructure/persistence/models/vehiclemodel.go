// Package models holds the GORM persistence models. They are the
// anti-corruption layer between domain aggregates and table rows.
package models

import (
	"time"

	"lerms/internal/shared/constants"
)

// VehicleRegistrationModel maps one row of vehicle_registrations. All three
// variants share the table; variant discriminates.
type VehicleRegistrationModel struct {
	ID             uint   `gorm:"primarykey"`
	Variant        string `gorm:"not null;size:20;index:idx_vehicle_variant;uniqueIndex:idx_vehicle_variant_plate,priority:1"`
	PlateNumber    string `gorm:"not null;size:20;uniqueIndex:idx_vehicle_variant_plate,priority:2"`
	VIN            string `gorm:"size:32;index:idx_vehicle_vin"`
	Make           string `gorm:"size:50"`
	Model          string `gorm:"size:50"`
	Year           int
	OwnerName      string `gorm:"size:100"`
	OwnerAddress   string `gorm:"size:255"`
	AgencyID       *uint  `gorm:"index:idx_vehicle_agency"`
	ApprovalStatus string `gorm:"not null;default:pending;size:20;index:idx_vehicle_approval_status"`
	IsActive       bool   `gorm:"not null;default:true;index:idx_vehicle_is_active"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName specifies the table name for GORM
func (VehicleRegistrationModel) TableName() string {
	return constants.TableVehicleRecords
}
