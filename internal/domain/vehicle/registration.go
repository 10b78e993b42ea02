// Package vehicle models vehicle registration records in their master,
// undercover, and fictitious variants.
package vehicle

import (
	"fmt"
	"time"

	"lerms/internal/domain/record"
)

// Variant distinguishes the three registration flavors. All variants share
// one table and one aggregate; the approval workflow sees them as distinct
// record kinds.
type Variant string

const (
	VariantMaster     Variant = "master"
	VariantUndercover Variant = "undercover"
	VariantFictitious Variant = "fictitious"
)

// ParseVariant converts a stored string to a Variant.
func ParseVariant(s string) (Variant, error) {
	switch Variant(s) {
	case VariantMaster, VariantUndercover, VariantFictitious:
		return Variant(s), nil
	}
	return "", fmt.Errorf("unknown vehicle variant %q", s)
}

// Kind maps the variant to its record kind.
func (v Variant) Kind() record.Kind {
	switch v {
	case VariantUndercover:
		return record.KindVehicleUndercover
	case VariantFictitious:
		return record.KindVehicleFictitious
	default:
		return record.KindVehicleMaster
	}
}

// VariantForKind is the inverse of Variant.Kind.
func VariantForKind(kind record.Kind) (Variant, error) {
	switch kind {
	case record.KindVehicleMaster:
		return VariantMaster, nil
	case record.KindVehicleUndercover:
		return VariantUndercover, nil
	case record.KindVehicleFictitious:
		return VariantFictitious, nil
	}
	return "", fmt.Errorf("record kind %q is not a vehicle variant", kind)
}

// Registration is the vehicle registration aggregate.
type Registration struct {
	id             uint
	variant        Variant
	plateNumber    string
	vin            string
	make_          string
	model          string
	year           int
	ownerName      string
	ownerAddress   string
	agencyID       *uint
	approvalStatus record.Status
	isActive       bool
	createdAt      time.Time
	updatedAt      time.Time
}

// NewRegistration creates a pending registration.
func NewRegistration(variant Variant, plateNumber, vin, make_, model string, year int, ownerName, ownerAddress string, agencyID *uint) (*Registration, error) {
	if plateNumber == "" {
		return nil, fmt.Errorf("plate number is required")
	}
	if _, err := ParseVariant(string(variant)); err != nil {
		return nil, err
	}
	if year != 0 && (year < 1900 || year > time.Now().Year()+1) {
		return nil, fmt.Errorf("implausible vehicle year %d", year)
	}

	now := time.Now()
	return &Registration{
		variant:        variant,
		plateNumber:    plateNumber,
		vin:            vin,
		make_:          make_,
		model:          model,
		year:           year,
		ownerName:      ownerName,
		ownerAddress:   ownerAddress,
		agencyID:       agencyID,
		approvalStatus: record.StatusPending,
		isActive:       true,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

// ReconstructRegistration rebuilds a registration from persistence.
func ReconstructRegistration(id uint, variant Variant, plateNumber, vin, make_, model string, year int, ownerName, ownerAddress string, agencyID *uint, approvalStatus record.Status, isActive bool, createdAt, updatedAt time.Time) (*Registration, error) {
	if id == 0 {
		return nil, fmt.Errorf("registration ID cannot be zero")
	}

	return &Registration{
		id:             id,
		variant:        variant,
		plateNumber:    plateNumber,
		vin:            vin,
		make_:          make_,
		model:          model,
		year:           year,
		ownerName:      ownerName,
		ownerAddress:   ownerAddress,
		agencyID:       agencyID,
		approvalStatus: approvalStatus,
		isActive:       isActive,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

func (r *Registration) ID() uint                      { return r.id }
func (r *Registration) Variant() Variant              { return r.variant }
func (r *Registration) PlateNumber() string           { return r.plateNumber }
func (r *Registration) VIN() string                   { return r.vin }
func (r *Registration) Make() string                  { return r.make_ }
func (r *Registration) Model() string                 { return r.model }
func (r *Registration) Year() int                     { return r.year }
func (r *Registration) OwnerName() string             { return r.ownerName }
func (r *Registration) OwnerAddress() string          { return r.ownerAddress }
func (r *Registration) AgencyID() *uint               { return r.agencyID }
func (r *Registration) ApprovalStatus() record.Status { return r.approvalStatus }
func (r *Registration) IsActive() bool                { return r.isActive }
func (r *Registration) CreatedAt() time.Time          { return r.createdAt }
func (r *Registration) UpdatedAt() time.Time          { return r.updatedAt }

// SetID assigns the persistence-generated ID after the first save.
func (r *Registration) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("registration ID already set")
	}
	if id == 0 {
		return fmt.Errorf("registration ID cannot be zero")
	}
	r.id = id
	return nil
}

// UpdateDetails applies a partial field update. Nil pointers leave the
// current value untouched.
func (r *Registration) UpdateDetails(plateNumber, vin, make_, model *string, year *int, ownerName, ownerAddress *string, agencyID *uint) error {
	if plateNumber != nil {
		if *plateNumber == "" {
			return fmt.Errorf("plate number cannot be empty")
		}
		r.plateNumber = *plateNumber
	}
	if vin != nil {
		r.vin = *vin
	}
	if make_ != nil {
		r.make_ = *make_
	}
	if model != nil {
		r.model = *model
	}
	if year != nil {
		r.year = *year
	}
	if ownerName != nil {
		r.ownerName = *ownerName
	}
	if ownerAddress != nil {
		r.ownerAddress = *ownerAddress
	}
	if agencyID != nil {
		r.agencyID = agencyID
	}
	r.updatedAt = time.Now()
	return nil
}

// Deactivate soft-deletes the registration.
func (r *Registration) Deactivate() {
	r.isActive = false
	r.updatedAt = time.Now()
}
