package models

import (
	"time"

	"gorm.io/datatypes"

	"lerms/internal/shared/constants"
)

// DocumentModel maps one row of documents. OCRFields carries the simulated
// extraction output as a JSON column.
type DocumentModel struct {
	ID             uint           `gorm:"primarykey"`
	FileName       string         `gorm:"not null;size:255"`
	ContentType    string         `gorm:"size:100"`
	SizeBytes      int64          `gorm:"not null;default:0"`
	UploaderID     uint           `gorm:"not null;index:idx_document_uploader"`
	LinkedKind     *string        `gorm:"size:30;index:idx_document_linked,priority:1"`
	LinkedID       *uint          `gorm:"index:idx_document_linked,priority:2"`
	ApprovalStatus string         `gorm:"not null;default:pending;size:20;index:idx_document_approval_status"`
	OCRFields      datatypes.JSON
	IsActive       bool           `gorm:"not null;default:true"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName specifies the table name for GORM
func (DocumentModel) TableName() string {
	return constants.TableDocuments
}

// AgencyModel maps one row of agencies.
type AgencyModel struct {
	ID           uint   `gorm:"primarykey"`
	Name         string `gorm:"not null;size:150"`
	Code         string `gorm:"not null;uniqueIndex;size:20"`
	Jurisdiction string `gorm:"size:100"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName specifies the table name for GORM
func (AgencyModel) TableName() string {
	return constants.TableAgencies
}
