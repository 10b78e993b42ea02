// Package action defines the approval workflow vocabulary and audit log.
package action

import (
	"time"

	"lerms/internal/domain/record"
)

// Canonical action names. The action_types table is seeded from these and
// treated as immutable reference data afterwards.
const (
	NameApprove   = "approve"
	NameReject    = "reject"
	NameHold      = "hold"
	NameReprocess = "reprocess"
)

// Type is a row of the action reference vocabulary.
type Type struct {
	ID          uint
	Name        string
	Description string
	CreatedAt   time.Time
}

// TargetStatus returns the approval status an action name transitions a
// record to. The map is closed on purpose: a row added to the reference
// table does not become executable until a transition is defined here, so
// reference-data drift surfaces as UnsupportedAction instead of an
// undefined write.
func TargetStatus(name string) (record.Status, bool) {
	switch name {
	case NameApprove:
		return record.StatusApproved, true
	case NameReject:
		return record.StatusRejected, true
	case NameHold:
		return record.StatusOnHold, true
	case NameReprocess:
		return record.StatusPending, true
	}
	return "", false
}

// HasRedundancyGuard reports whether applying the action to a record that
// already holds the target status is rejected as a no-op. reprocess has no
// guard: it always resets to pending. That asymmetry comes straight from
// the product requirements, which leave reprocess semantics open.
func HasRedundancyGuard(name string) bool {
	return name == NameApprove || name == NameReject || name == NameHold
}
