// Package dto carries the approval workflow's API-facing shapes.
package dto

import (
	"time"

	"lerms/internal/domain/action"
)

// ActionLogDTO is one audit entry as returned by the history endpoint.
type ActionLogDTO struct {
	ID           uint   `json:"id"`
	RecordKind   string `json:"record_kind"`
	RecordID     uint   `json:"record_id"`
	ActionName   string `json:"action_name"`
	OldStatus    string `json:"old_status"`
	NewStatus    string `json:"new_status"`
	ActingUserID uint   `json:"acting_user_id"`
	IPAddress    string `json:"ip_address"`
	Notes        string `json:"notes,omitempty"`
	NotesHTML    string `json:"notes_html,omitempty"`
	CreatedAt    string `json:"created_at"`
}

// ActionLogToDTO converts a domain log entry. notesHTML is the rendered
// markdown; callers pass "" when rendering failed or was skipped.
func ActionLogToDTO(log *action.Log, notesHTML string) *ActionLogDTO {
	return &ActionLogDTO{
		ID:           log.ID,
		RecordKind:   string(log.RecordKind),
		RecordID:     log.RecordID,
		ActionName:   log.ActionName,
		OldStatus:    string(log.OldStatus),
		NewStatus:    string(log.NewStatus),
		ActingUserID: log.ActingUserID,
		IPAddress:    log.IPAddress,
		Notes:        log.Notes,
		NotesHTML:    notesHTML,
		CreatedAt:    log.CreatedAt.Format(time.RFC3339),
	}
}

// ActionTypeDTO is one row of the action vocabulary.
type ActionTypeDTO struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// ActionTypeToDTO converts a vocabulary row.
func ActionTypeToDTO(t *action.Type) *ActionTypeDTO {
	return &ActionTypeDTO{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
	}
}
