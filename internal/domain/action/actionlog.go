package action

import (
	"fmt"
	"time"

	"lerms/internal/domain/record"
)

// Log is one append-only audit entry. Entries are created exactly once per
// successful action application and never mutated or deleted. The record
// link is a logical (kind, id) pair rather than a foreign key, since the
// target table depends on the kind.
type Log struct {
	ID           uint
	RecordKind   record.Kind
	RecordID     uint
	ActionTypeID uint
	ActionName   string
	// OldStatus and NewStatus capture the transition explicitly so the
	// audit trail is self-contained without replaying earlier entries.
	OldStatus    record.Status
	NewStatus    record.Status
	ActingUserID uint
	IPAddress    string
	Notes        string
	CreatedAt    time.Time
}

// NewLog builds an audit entry for a transition that is about to be
// committed. ActingUserID must be the resolved identity, never a
// client-supplied value.
func NewLog(kind record.Kind, recordID uint, actionType *Type, oldStatus, newStatus record.Status, actingUserID uint, ipAddress, notes string) (*Log, error) {
	if actionType == nil {
		return nil, fmt.Errorf("action type is required")
	}
	if actingUserID == 0 {
		return nil, fmt.Errorf("acting user is required for audit accountability")
	}
	if ipAddress == "" {
		ipAddress = "unknown"
	}

	return &Log{
		RecordKind:   kind,
		RecordID:     recordID,
		ActionTypeID: actionType.ID,
		ActionName:   actionType.Name,
		OldStatus:    oldStatus,
		NewStatus:    newStatus,
		ActingUserID: actingUserID,
		IPAddress:    ipAddress,
		Notes:        notes,
		CreatedAt:    time.Now(),
	}, nil
}
