package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"lerms/internal/shared/constants"
	"lerms/internal/shared/errors"
)

// ParseIDParam parses and validates a numeric ID from a URL path parameter.
// paramName is the Gin route parameter name (e.g., "id", "suppression_id").
// entityName is used in error messages (e.g., "suppression", "vehicle registration").
func ParseIDParam(c *gin.Context, paramName, entityName string) (uint, error) {
	raw := c.Param(paramName)
	if raw == "" {
		return 0, errors.NewValidationError(entityName + " ID is required")
	}

	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid " + entityName + " ID")
	}

	return uint(id), nil
}

// ParseUintQuery parses an optional numeric query parameter. It returns nil
// when the parameter is absent or malformed.
func ParseUintQuery(c *gin.Context, key string) *uint {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}

	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return nil
	}

	value := uint(id)
	return &value
}

// ClientIP returns the caller's IP for audit logging, falling back to
// "unknown" rather than failing the request when it cannot be determined.
func ClientIP(c *gin.Context) string {
	if ip := c.ClientIP(); ip != "" {
		return ip
	}
	return constants.UnknownIPAddress
}
