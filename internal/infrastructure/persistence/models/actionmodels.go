package models

import (
	"time"

	"lerms/internal/shared/constants"
)

// ActionTypeModel maps the seeded action vocabulary. Rows are reference
// data: inserted by the seeder, never updated.
type ActionTypeModel struct {
	ID          uint   `gorm:"primarykey"`
	Name        string `gorm:"not null;uniqueIndex;size:30"`
	Description string `gorm:"size:255"`
	CreatedAt   time.Time
}

// TableName specifies the table name for GORM
func (ActionTypeModel) TableName() string {
	return constants.TableActionTypes
}

// ActionLogModel maps one append-only audit entry. There is no UpdatedAt
// on purpose; entries are written once.
type ActionLogModel struct {
	ID           uint      `gorm:"primarykey"`
	RecordKind   string    `gorm:"not null;size:30;index:idx_action_log_record,priority:1"`
	RecordID     uint      `gorm:"not null;index:idx_action_log_record,priority:2"`
	ActionTypeID uint      `gorm:"not null;index:idx_action_log_type"`
	ActionName   string    `gorm:"not null;size:30"`
	OldStatus    string    `gorm:"not null;size:20"`
	NewStatus    string    `gorm:"not null;size:20"`
	ActingUserID uint      `gorm:"not null;index:idx_action_log_user"`
	IPAddress    string    `gorm:"not null;size:45"`
	Notes        string    `gorm:"type:text"`
	CreatedAt    time.Time `gorm:"index:idx_action_log_created"`
}

// TableName specifies the table name for GORM
func (ActionLogModel) TableName() string {
	return constants.TableActionLogs
}
