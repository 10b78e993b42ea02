package models

import (
	"time"

	"lerms/internal/shared/constants"
)

// UserModel maps one principal row. Email carries a unique index; the
// resolver's first-contact retry depends on it.
type UserModel struct {
	ID           uint    `gorm:"primarykey"`
	Email        string  `gorm:"uniqueIndex;not null;size:255"`
	Name         string  `gorm:"not null;size:100"`
	PasswordHash *string `gorm:"size:255"`
	IsActive     bool    `gorm:"not null;default:true;index:idx_user_is_active"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Roles []RoleModel `gorm:"many2many:user_roles;"`
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return constants.TableUsers
}

// RoleModel maps one role row.
type RoleModel struct {
	ID          uint   `gorm:"primarykey"`
	Name        string `gorm:"not null;size:100"`
	Slug        string `gorm:"uniqueIndex;not null;size:50"`
	Description string `gorm:"size:255"`
	IsSystem    bool   `gorm:"not null;default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Permissions []PermissionModel `gorm:"many2many:role_permissions;"`
}

// TableName specifies the table name for GORM
func (RoleModel) TableName() string {
	return constants.TableRoles
}

// PermissionModel maps one permission row.
type PermissionModel struct {
	ID          uint   `gorm:"primarykey"`
	Slug        string `gorm:"uniqueIndex;not null;size:100"`
	Description string `gorm:"size:255"`
	CreatedAt   time.Time
}

// TableName specifies the table name for GORM
func (PermissionModel) TableName() string {
	return constants.TablePermissions
}

// EmailRoleMappingModel maps one email-pattern role mapping.
type EmailRoleMappingModel struct {
	ID        uint   `gorm:"primarykey"`
	Pattern   string `gorm:"not null;size:255;uniqueIndex:idx_mapping_pattern_role,priority:1"`
	RoleID    uint   `gorm:"not null;uniqueIndex:idx_mapping_pattern_role,priority:2"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (EmailRoleMappingModel) TableName() string {
	return constants.TableEmailRoleMappings
}
