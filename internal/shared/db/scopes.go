// Package db provides database utilities including transaction management and query scopes.
package db

import (
	"gorm.io/gorm"

	"lerms/internal/shared/constants"
)

// Active is a GORM scope that filters for active records (soft delete via
// is_active=false keeps the row but hides it from default listings).
func Active() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("is_active = ?", true)
	}
}

// ActiveWithAlias filters for active records when joining with a table alias.
func ActiveWithAlias(alias string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(alias + ".is_active = ?", true)
	}
}

// NotSuppressed excludes rows that have at least one active suppression for
// the given record kind. Every default listing query across record
// repositories must apply this scope; suppression visibility is a
// cross-cutting filter, not a column on the record tables.
//
// The subquery matches (record_kind, record_id) pairs with
// is_active = true AND status = 'active'.
func NotSuppressed(kind string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		sub := db.Session(&gorm.Session{NewDB: true}).
			Table(constants.TableSuppressions).
			Select("record_id").
			Where("record_kind = ?", kind).
			Where("record_id IS NOT NULL").
			Where("is_active = ?", true).
			Where("status = ?", constants.SuppressionStatusActive)
		return db.Where("id NOT IN (?)", sub)
	}
}
