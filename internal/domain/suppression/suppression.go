// Package suppression models the record-suppression workflow: soft-hiding
// records from default listings with a reason, expiry, and revocation path.
package suppression

import (
	"fmt"
	"time"

	"lerms/internal/domain/record"
)

// Status of a suppression. Soft state only; suppressions created by the
// engine are never hard-deleted.
type Status string

const (
	StatusActive  Status = "active"
	StatusRemoved Status = "removed"
)

// Suppression is the aggregate root. AccessRequestDetail and
// IdentityAliasDetail rows are owned exclusively by their parent and
// cascade-delete with it.
type Suppression struct {
	id                uint
	recordKind        record.Kind
	recordID          *uint
	reason            string
	reasonDescription string
	effectiveDate     time.Time
	expirationDate    *time.Time
	status            Status
	isActive          bool
	createdBy         string
	createdAt         time.Time
	updatedAt         time.Time
}

// NewSuppression creates an active suppression. effectiveDate defaults to
// the current time when zero. Multiple active suppressions for the same
// (kind, record) pair are allowed: distinct reasons and expirations are
// legitimate, and the visibility predicate only asks whether at least one
// is active.
func NewSuppression(kind record.Kind, recordID *uint, reason, reasonDescription string, effectiveDate time.Time, expirationDate *time.Time, createdBy string) (*Suppression, error) {
	if reason == "" {
		return nil, fmt.Errorf("suppression reason is required")
	}
	if createdBy == "" {
		return nil, fmt.Errorf("created_by is required")
	}
	if recordID != nil && *recordID == 0 {
		return nil, fmt.Errorf("record ID cannot be zero when set")
	}

	now := time.Now()
	if effectiveDate.IsZero() {
		effectiveDate = now
	}
	if expirationDate != nil && expirationDate.Before(effectiveDate) {
		return nil, fmt.Errorf("expiration date cannot precede effective date")
	}

	return &Suppression{
		recordKind:        kind,
		recordID:          recordID,
		reason:            reason,
		reasonDescription: reasonDescription,
		effectiveDate:     effectiveDate,
		expirationDate:    expirationDate,
		status:            StatusActive,
		isActive:          true,
		createdBy:         createdBy,
		createdAt:         now,
		updatedAt:         now,
	}, nil
}

// ReconstructSuppression rebuilds a suppression from persistence.
func ReconstructSuppression(id uint, kind record.Kind, recordID *uint, reason, reasonDescription string, effectiveDate time.Time, expirationDate *time.Time, status Status, isActive bool, createdBy string, createdAt, updatedAt time.Time) (*Suppression, error) {
	if id == 0 {
		return nil, fmt.Errorf("suppression ID cannot be zero")
	}

	return &Suppression{
		id:                id,
		recordKind:        kind,
		recordID:          recordID,
		reason:            reason,
		reasonDescription: reasonDescription,
		effectiveDate:     effectiveDate,
		expirationDate:    expirationDate,
		status:            status,
		isActive:          isActive,
		createdBy:         createdBy,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}, nil
}

func (s *Suppression) ID() uint                    { return s.id }
func (s *Suppression) RecordKind() record.Kind     { return s.recordKind }
func (s *Suppression) RecordID() *uint             { return s.recordID }
func (s *Suppression) Reason() string              { return s.reason }
func (s *Suppression) ReasonDescription() string   { return s.reasonDescription }
func (s *Suppression) EffectiveDate() time.Time    { return s.effectiveDate }
func (s *Suppression) ExpirationDate() *time.Time  { return s.expirationDate }
func (s *Suppression) Status() Status              { return s.status }
func (s *Suppression) IsActive() bool              { return s.isActive }
func (s *Suppression) CreatedBy() string           { return s.createdBy }
func (s *Suppression) CreatedAt() time.Time        { return s.createdAt }
func (s *Suppression) UpdatedAt() time.Time        { return s.updatedAt }

// SetID assigns the persistence-generated ID after the first save.
func (s *Suppression) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("suppression ID already set")
	}
	if id == 0 {
		return fmt.Errorf("suppression ID cannot be zero")
	}
	s.id = id
	return nil
}

// Revoke deactivates the suppression. Idempotent revoke is rejected so the
// caller can distinguish a real revocation from a stale request.
func (s *Suppression) Revoke() error {
	if !s.isActive {
		return fmt.Errorf("suppression is already removed")
	}
	s.isActive = false
	s.status = StatusRemoved
	s.updatedAt = time.Now()
	return nil
}

// UpdateReason replaces the reason and description.
func (s *Suppression) UpdateReason(reason, description string) error {
	if reason == "" {
		return fmt.Errorf("suppression reason is required")
	}
	s.reason = reason
	s.reasonDescription = description
	s.updatedAt = time.Now()
	return nil
}

// UpdateExpiration replaces the expiration date. A nil expiration makes the
// suppression open-ended.
func (s *Suppression) UpdateExpiration(expirationDate *time.Time) error {
	if expirationDate != nil && expirationDate.Before(s.effectiveDate) {
		return fmt.Errorf("expiration date cannot precede effective date")
	}
	s.expirationDate = expirationDate
	s.updatedAt = time.Now()
	return nil
}
