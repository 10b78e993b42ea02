// Package dto carries the suppression workflow's API-facing shapes.
package dto

import (
	"time"

	"lerms/internal/domain/suppression"
)

// SuppressionDTO is one suppression as returned by the API.
type SuppressionDTO struct {
	ID                    uint    `json:"id"`
	RecordKind            string  `json:"record_kind"`
	RecordID              *uint   `json:"record_id,omitempty"`
	Reason                string  `json:"reason"`
	ReasonDescription     string  `json:"reason_description,omitempty"`
	ReasonDescriptionHTML string  `json:"reason_description_html,omitempty"`
	EffectiveDate         string  `json:"effective_date"`
	ExpirationDate        *string `json:"expiration_date,omitempty"`
	Status                string  `json:"status"`
	IsActive              bool    `json:"is_active"`
	CreatedBy             string  `json:"created_by"`
	CreatedAt             string  `json:"created_at"`
	UpdatedAt             string  `json:"updated_at"`
}

// SuppressionToDTO converts a domain suppression. descriptionHTML is the
// rendered markdown; callers pass "" when rendering was skipped.
func SuppressionToDTO(s *suppression.Suppression, descriptionHTML string) *SuppressionDTO {
	d := &SuppressionDTO{
		ID:                    s.ID(),
		RecordKind:            string(s.RecordKind()),
		RecordID:              s.RecordID(),
		Reason:                s.Reason(),
		ReasonDescription:     s.ReasonDescription(),
		ReasonDescriptionHTML: descriptionHTML,
		EffectiveDate:         s.EffectiveDate().Format(time.RFC3339),
		Status:                string(s.Status()),
		IsActive:              s.IsActive(),
		CreatedBy:             s.CreatedBy(),
		CreatedAt:             s.CreatedAt().Format(time.RFC3339),
		UpdatedAt:             s.UpdatedAt().Format(time.RFC3339),
	}
	if exp := s.ExpirationDate(); exp != nil {
		v := exp.Format(time.RFC3339)
		d.ExpirationDate = &v
	}
	return d
}

// AccessRequestDTO is one access-request detail row.
type AccessRequestDTO struct {
	ID                    uint   `json:"id"`
	SuppressionID         uint   `json:"suppression_id"`
	DateRequested         string `json:"date_requested"`
	SubjectPlateOrLicense string `json:"subject_plate_or_license,omitempty"`
	Requester             string `json:"requester"`
	Reason                string `json:"reason,omitempty"`
	Duration              string `json:"duration,omitempty"`
	Initials              string `json:"initials,omitempty"`
	CreatedAt             string `json:"created_at"`
}

// AccessRequestToDTO converts a detail row.
func AccessRequestToDTO(d *suppression.AccessRequestDetail) *AccessRequestDTO {
	return &AccessRequestDTO{
		ID:                    d.ID,
		SuppressionID:         d.SuppressionID,
		DateRequested:         d.DateRequested.Format(time.RFC3339),
		SubjectPlateOrLicense: d.SubjectPlateOrLicense,
		Requester:             d.Requester,
		Reason:                d.Reason,
		Duration:              d.Duration,
		Initials:              d.Initials,
		CreatedAt:             d.CreatedAt.Format(time.RFC3339),
	}
}

// IdentityAliasDTO is one identity-alias detail row.
type IdentityAliasDTO struct {
	ID                uint   `json:"id"`
	SuppressionID     uint   `json:"suppression_id"`
	OldName           string `json:"old_name,omitempty"`
	OldPlateOrLicense string `json:"old_plate_or_license,omitempty"`
	CreatedAt         string `json:"created_at"`
}

// IdentityAliasToDTO converts a detail row.
func IdentityAliasToDTO(d *suppression.IdentityAliasDetail) *IdentityAliasDTO {
	return &IdentityAliasDTO{
		ID:                d.ID,
		SuppressionID:     d.SuppressionID,
		OldName:           d.OldName,
		OldPlateOrLicense: d.OldPlateOrLicense,
		CreatedAt:         d.CreatedAt.Format(time.RFC3339),
	}
}

// SuppressionCheckDTO answers the is_suppressed predicate for one record.
type SuppressionCheckDTO struct {
	RecordKind           string `json:"record_kind"`
	RecordID             uint   `json:"record_id"`
	IsSuppressed         bool   `json:"is_suppressed"`
	ActiveSuppressionIDs []uint `json:"active_suppression_ids,omitempty"`
}
