// Package license models driver license records in their original and
// fictitious variants.
package license

import (
	"fmt"
	"time"

	"lerms/internal/domain/record"
)

// Variant distinguishes original from fictitious licenses.
type Variant string

const (
	VariantOriginal   Variant = "original"
	VariantFictitious Variant = "fictitious"
)

// ParseVariant converts a stored string to a Variant.
func ParseVariant(s string) (Variant, error) {
	switch Variant(s) {
	case VariantOriginal, VariantFictitious:
		return Variant(s), nil
	}
	return "", fmt.Errorf("unknown license variant %q", s)
}

// Kind maps the variant to its record kind.
func (v Variant) Kind() record.Kind {
	if v == VariantFictitious {
		return record.KindDLFictitious
	}
	return record.KindDLOriginal
}

// VariantForKind is the inverse of Variant.Kind.
func VariantForKind(kind record.Kind) (Variant, error) {
	switch kind {
	case record.KindDLOriginal:
		return VariantOriginal, nil
	case record.KindDLFictitious:
		return VariantFictitious, nil
	}
	return "", fmt.Errorf("record kind %q is not a license variant", kind)
}

// DriverLicense is the driver license aggregate.
type DriverLicense struct {
	id             uint
	variant        Variant
	licenseNumber  string
	holderName     string
	dateOfBirth    *time.Time
	address        string
	class          string
	issueDate      *time.Time
	expirationDate *time.Time
	agencyID       *uint
	approvalStatus record.Status
	isActive       bool
	createdAt      time.Time
	updatedAt      time.Time
}

// NewDriverLicense creates a pending license.
func NewDriverLicense(variant Variant, licenseNumber, holderName string, dateOfBirth *time.Time, address, class string, issueDate, expirationDate *time.Time, agencyID *uint) (*DriverLicense, error) {
	if licenseNumber == "" {
		return nil, fmt.Errorf("license number is required")
	}
	if holderName == "" {
		return nil, fmt.Errorf("holder name is required")
	}
	if _, err := ParseVariant(string(variant)); err != nil {
		return nil, err
	}
	if issueDate != nil && expirationDate != nil && expirationDate.Before(*issueDate) {
		return nil, fmt.Errorf("expiration date cannot precede issue date")
	}

	now := time.Now()
	return &DriverLicense{
		variant:        variant,
		licenseNumber:  licenseNumber,
		holderName:     holderName,
		dateOfBirth:    dateOfBirth,
		address:        address,
		class:          class,
		issueDate:      issueDate,
		expirationDate: expirationDate,
		agencyID:       agencyID,
		approvalStatus: record.StatusPending,
		isActive:       true,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

// ReconstructDriverLicense rebuilds a license from persistence.
func ReconstructDriverLicense(id uint, variant Variant, licenseNumber, holderName string, dateOfBirth *time.Time, address, class string, issueDate, expirationDate *time.Time, agencyID *uint, approvalStatus record.Status, isActive bool, createdAt, updatedAt time.Time) (*DriverLicense, error) {
	if id == 0 {
		return nil, fmt.Errorf("license ID cannot be zero")
	}

	return &DriverLicense{
		id:             id,
		variant:        variant,
		licenseNumber:  licenseNumber,
		holderName:     holderName,
		dateOfBirth:    dateOfBirth,
		address:        address,
		class:          class,
		issueDate:      issueDate,
		expirationDate: expirationDate,
		agencyID:       agencyID,
		approvalStatus: approvalStatus,
		isActive:       isActive,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

func (l *DriverLicense) ID() uint                      { return l.id }
func (l *DriverLicense) Variant() Variant              { return l.variant }
func (l *DriverLicense) LicenseNumber() string         { return l.licenseNumber }
func (l *DriverLicense) HolderName() string            { return l.holderName }
func (l *DriverLicense) DateOfBirth() *time.Time       { return l.dateOfBirth }
func (l *DriverLicense) Address() string               { return l.address }
func (l *DriverLicense) Class() string                 { return l.class }
func (l *DriverLicense) IssueDate() *time.Time         { return l.issueDate }
func (l *DriverLicense) ExpirationDate() *time.Time    { return l.expirationDate }
func (l *DriverLicense) AgencyID() *uint               { return l.agencyID }
func (l *DriverLicense) ApprovalStatus() record.Status { return l.approvalStatus }
func (l *DriverLicense) IsActive() bool                { return l.isActive }
func (l *DriverLicense) CreatedAt() time.Time          { return l.createdAt }
func (l *DriverLicense) UpdatedAt() time.Time          { return l.updatedAt }

// SetID assigns the persistence-generated ID after the first save.
func (l *DriverLicense) SetID(id uint) error {
	if l.id != 0 {
		return fmt.Errorf("license ID already set")
	}
	if id == 0 {
		return fmt.Errorf("license ID cannot be zero")
	}
	l.id = id
	return nil
}

// SupportsContacts reports whether contact sub-records may be attached.
// Only fictitious licenses carry cover contacts.
func (l *DriverLicense) SupportsContacts() bool {
	return l.variant == VariantFictitious
}

// UpdateDetails applies a partial field update. Nil pointers leave the
// current value untouched.
func (l *DriverLicense) UpdateDetails(licenseNumber, holderName, address, class *string, expirationDate *time.Time, agencyID *uint) error {
	if licenseNumber != nil {
		if *licenseNumber == "" {
			return fmt.Errorf("license number cannot be empty")
		}
		l.licenseNumber = *licenseNumber
	}
	if holderName != nil {
		if *holderName == "" {
			return fmt.Errorf("holder name cannot be empty")
		}
		l.holderName = *holderName
	}
	if address != nil {
		l.address = *address
	}
	if class != nil {
		l.class = *class
	}
	if expirationDate != nil {
		if l.issueDate != nil && expirationDate.Before(*l.issueDate) {
			return fmt.Errorf("expiration date cannot precede issue date")
		}
		l.expirationDate = expirationDate
	}
	if agencyID != nil {
		l.agencyID = agencyID
	}
	l.updatedAt = time.Now()
	return nil
}

// Deactivate soft-deletes the license.
func (l *DriverLicense) Deactivate() {
	l.isActive = false
	l.updatedAt = time.Now()
}
