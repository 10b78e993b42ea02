// Package dto carries vehicle registration API shapes.
package dto

import (
	"time"

	"lerms/internal/domain/vehicle"
)

// VehicleDTO is one registration as returned by the API.
type VehicleDTO struct {
	ID             uint   `json:"id"`
	Variant        string `json:"variant"`
	RecordKind     string `json:"record_kind"`
	PlateNumber    string `json:"plate_number"`
	VIN            string `json:"vin,omitempty"`
	Make           string `json:"make,omitempty"`
	Model          string `json:"model,omitempty"`
	Year           int    `json:"year,omitempty"`
	OwnerName      string `json:"owner_name,omitempty"`
	OwnerAddress   string `json:"owner_address,omitempty"`
	AgencyID       *uint  `json:"agency_id,omitempty"`
	ApprovalStatus string `json:"approval_status"`
	IsActive       bool   `json:"is_active"`
	CreatedAt      string `json:"created_at"`
	UpdatedAt      string `json:"updated_at"`
}

// VehicleToDTO converts a domain registration.
func VehicleToDTO(r *vehicle.Registration) *VehicleDTO {
	return &VehicleDTO{
		ID:             r.ID(),
		Variant:        string(r.Variant()),
		RecordKind:     string(r.Variant().Kind()),
		PlateNumber:    r.PlateNumber(),
		VIN:            r.VIN(),
		Make:           r.Make(),
		Model:          r.Model(),
		Year:           r.Year(),
		OwnerName:      r.OwnerName(),
		OwnerAddress:   r.OwnerAddress(),
		AgencyID:       r.AgencyID(),
		ApprovalStatus: string(r.ApprovalStatus()),
		IsActive:       r.IsActive(),
		CreatedAt:      r.CreatedAt().Format(time.RFC3339),
		UpdatedAt:      r.UpdatedAt().Format(time.RFC3339),
	}
}

// VehiclesToDTO converts a listing.
func VehiclesToDTO(rs []*vehicle.Registration) []*VehicleDTO {
	dtos := make([]*VehicleDTO, 0, len(rs))
	for _, r := range rs {
		dtos = append(dtos, VehicleToDTO(r))
	}
	return dtos
}
