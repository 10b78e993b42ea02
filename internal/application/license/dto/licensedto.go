// Package dto carries driver license API shapes.
package dto

import (
	"time"

	"lerms/internal/domain/license"
)

// LicenseDTO is one driver license as returned by the API.
type LicenseDTO struct {
	ID             uint    `json:"id"`
	Variant        string  `json:"variant"`
	RecordKind     string  `json:"record_kind"`
	LicenseNumber  string  `json:"license_number"`
	HolderName     string  `json:"holder_name"`
	DateOfBirth    *string `json:"date_of_birth,omitempty"`
	Address        string  `json:"address,omitempty"`
	Class          string  `json:"class,omitempty"`
	IssueDate      *string `json:"issue_date,omitempty"`
	ExpirationDate *string `json:"expiration_date,omitempty"`
	AgencyID       *uint   `json:"agency_id,omitempty"`
	ApprovalStatus string  `json:"approval_status"`
	IsActive       bool    `json:"is_active"`
	CreatedAt      string  `json:"created_at"`
	UpdatedAt      string  `json:"updated_at"`
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	v := t.Format("2006-01-02")
	return &v
}

// LicenseToDTO converts a domain license.
func LicenseToDTO(l *license.DriverLicense) *LicenseDTO {
	return &LicenseDTO{
		ID:             l.ID(),
		Variant:        string(l.Variant()),
		RecordKind:     string(l.Variant().Kind()),
		LicenseNumber:  l.LicenseNumber(),
		HolderName:     l.HolderName(),
		DateOfBirth:    formatDate(l.DateOfBirth()),
		Address:        l.Address(),
		Class:          l.Class(),
		IssueDate:      formatDate(l.IssueDate()),
		ExpirationDate: formatDate(l.ExpirationDate()),
		AgencyID:       l.AgencyID(),
		ApprovalStatus: string(l.ApprovalStatus()),
		IsActive:       l.IsActive(),
		CreatedAt:      l.CreatedAt().Format(time.RFC3339),
		UpdatedAt:      l.UpdatedAt().Format(time.RFC3339),
	}
}

// LicensesToDTO converts a listing.
func LicensesToDTO(ls []*license.DriverLicense) []*LicenseDTO {
	dtos := make([]*LicenseDTO, 0, len(ls))
	for _, l := range ls {
		dtos = append(dtos, LicenseToDTO(l))
	}
	return dtos
}

// ContactDTO is one cover contact on a fictitious license.
type ContactDTO struct {
	ID           uint   `json:"id"`
	LicenseID    uint   `json:"license_id"`
	Name         string `json:"name"`
	Phone        string `json:"phone,omitempty"`
	Relationship string `json:"relationship,omitempty"`
	CreatedAt    string `json:"created_at"`
}

// ContactToDTO converts a contact row.
func ContactToDTO(c *license.Contact) *ContactDTO {
	return &ContactDTO{
		ID:           c.ID,
		LicenseID:    c.LicenseID,
		Name:         c.Name,
		Phone:        c.Phone,
		Relationship: c.Relationship,
		CreatedAt:    c.CreatedAt.Format(time.RFC3339),
	}
}
