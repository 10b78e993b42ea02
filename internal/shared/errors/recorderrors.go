package errors

import (
	"fmt"
	"net/http"
)

// Record workflow error types
const (
	ErrorTypeInvalidAction     ErrorType = "invalid_action"
	ErrorTypeUnsupportedAction ErrorType = "unsupported_action"
	ErrorTypeRedundantAction   ErrorType = "redundant_action"
	ErrorTypeInactiveUser      ErrorType = "inactive_user"
)

// NewRecordNotFoundError creates an error for a record that does not exist
// in the repository selected by its kind.
func NewRecordNotFoundError(kind string, id string) *AppError {
	return &AppError{
		Type:    ErrorTypeNotFound,
		Message: fmt.Sprintf("%s record %s not found", kind, id),
		Code:    http.StatusNotFound,
	}
}

// NewInvalidActionError creates an error for an action name that is not part
// of the seeded action vocabulary.
func NewInvalidActionError(action string) *AppError {
	return &AppError{
		Type:    ErrorTypeInvalidAction,
		Message: fmt.Sprintf("unknown action %q", action),
		Code:    http.StatusBadRequest,
	}
}

// NewUnsupportedActionError creates an error for an action that exists in the
// reference vocabulary but has no status transition defined. This guards
// against reference-data drift: a row added to action_types does not become
// executable until the engine defines its target status.
func NewUnsupportedActionError(action string) *AppError {
	return &AppError{
		Type:    ErrorTypeUnsupportedAction,
		Message: fmt.Sprintf("action %q is not supported", action),
		Code:    http.StatusUnprocessableEntity,
	}
}

// NewRedundantActionError creates an error for a no-op transition: the record
// is already in the status the action would set. No audit row is written.
func NewRedundantActionError(action, currentStatus string) *AppError {
	return &AppError{
		Type:    ErrorTypeRedundantAction,
		Message: fmt.Sprintf("record is already %s, %s would be a no-op", currentStatus, action),
		Code:    http.StatusConflict,
	}
}

// NewInactiveUserError creates an error for a disabled principal.
func NewInactiveUserError(email string) *AppError {
	return &AppError{
		Type:    ErrorTypeInactiveUser,
		Message: "user account is inactive",
		Code:    http.StatusForbidden,
		Details: email,
	}
}

// NewStorageError wraps an infrastructure failure from the persistence layer.
// The underlying driver error goes to Details for logs; the message stays
// generic so nothing internal crosses the API boundary.
func NewStorageError(op string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeInternal,
		Message: fmt.Sprintf("storage operation failed: %s", op),
		Code:    http.StatusInternalServerError,
		Details: err.Error(),
	}
}
