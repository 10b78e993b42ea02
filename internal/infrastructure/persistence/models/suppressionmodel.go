package models

import (
	"time"

	"lerms/internal/shared/constants"
)

// SuppressionModel maps one row of suppressions. record_id is nullable:
// a suppression may mask identity details without pointing at a stored
// record.
type SuppressionModel struct {
	ID                uint       `gorm:"primarykey"`
	RecordKind        string     `gorm:"not null;size:30;index:idx_suppression_record,priority:1"`
	RecordID          *uint      `gorm:"index:idx_suppression_record,priority:2"`
	Reason            string     `gorm:"not null;size:255"`
	ReasonDescription string     `gorm:"type:text"`
	EffectiveDate     time.Time  `gorm:"not null"`
	ExpirationDate    *time.Time
	Status            string     `gorm:"not null;default:active;size:20;index:idx_suppression_status"`
	IsActive          bool       `gorm:"not null;default:true;index:idx_suppression_is_active"`
	CreatedBy         string     `gorm:"not null;size:255"`
	CreatedAt         time.Time
	UpdatedAt         time.Time

	AccessRequests  []AccessRequestDetailModel `gorm:"foreignKey:SuppressionID;constraint:OnDelete:CASCADE"`
	IdentityAliases []IdentityAliasDetailModel `gorm:"foreignKey:SuppressionID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for GORM
func (SuppressionModel) TableName() string {
	return constants.TableSuppressions
}

// AccessRequestDetailModel maps one access-request audit row.
type AccessRequestDetailModel struct {
	ID                    uint      `gorm:"primarykey"`
	SuppressionID         uint      `gorm:"not null;index:idx_access_request_suppression"`
	DateRequested         time.Time `gorm:"not null"`
	SubjectPlateOrLicense string    `gorm:"size:30"`
	Requester             string    `gorm:"not null;size:100"`
	Reason                string    `gorm:"size:255"`
	Duration              string    `gorm:"size:50"`
	Initials              string    `gorm:"size:10"`
	CreatedAt             time.Time
}

// TableName specifies the table name for GORM
func (AccessRequestDetailModel) TableName() string {
	return constants.TableAccessRequests
}

// IdentityAliasDetailModel maps one identity-alias row.
type IdentityAliasDetailModel struct {
	ID                uint   `gorm:"primarykey"`
	SuppressionID     uint   `gorm:"not null;index:idx_identity_alias_suppression"`
	OldName           string `gorm:"size:100"`
	OldPlateOrLicense string `gorm:"size:30"`
	CreatedAt         time.Time
}

// TableName specifies the table name for GORM
func (IdentityAliasDetailModel) TableName() string {
	return constants.TableIdentityAliases
}
