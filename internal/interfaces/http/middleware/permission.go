package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"lerms/internal/application/identity/services"
	"lerms/internal/domain/identity"
	"lerms/internal/domain/record"
	"lerms/internal/infrastructure/permission"
	"lerms/internal/shared/constants"
	"lerms/internal/shared/logger"
	"lerms/internal/shared/utils"
)

// kindReadPermission maps a record kind to the permission that gates
// reading records of that kind.
var kindReadPermission = map[record.Kind]string{
	record.KindVehicleMaster:     constants.PermissionVehicleRead,
	record.KindVehicleUndercover: constants.PermissionVehicleRead,
	record.KindVehicleFictitious: constants.PermissionVehicleRead,
	record.KindDLOriginal:        constants.PermissionLicenseRead,
	record.KindDLFictitious:      constants.PermissionLicenseRead,
	record.KindDocument:          constants.PermissionDocumentRead,
}

// PermissionMiddleware gates routes on permission slugs. Persisted users go
// through the policy store; the in-memory role check backs it up because
// the policy sync runs at startup and users resolved afterwards are not in
// it yet.
type PermissionMiddleware struct {
	permissionService *services.PermissionService
	enforcer          *permission.Enforcer
	logger            logger.Interface
}

func NewPermissionMiddleware(permissionService *services.PermissionService, enforcer *permission.Enforcer, logger logger.Interface) *PermissionMiddleware {
	return &PermissionMiddleware{
		permissionService: permissionService,
		enforcer:          enforcer,
		logger:            logger,
	}
}

func (m *PermissionMiddleware) RequirePermission(slug string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			utils.ErrorResponse(c, http.StatusUnauthorized, "caller identity not resolved")
			c.Abort()
			return
		}

		if !m.allowed(user, slug) {
			m.logger.Warnw("permission denied",
				"user_id", user.ID(),
				"email", user.Email(),
				"permission", slug,
				"path", c.Request.URL.Path,
			)
			utils.ErrorResponse(c, http.StatusForbidden, "insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequireKindRead gates a route on the read permission of the record kind
// named by the given path parameter.
func (m *PermissionMiddleware) RequireKindRead(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		kind, err := record.ParseKind(c.Param(param))
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "unknown record kind")
			c.Abort()
			return
		}

		slug, ok := kindReadPermission[kind]
		if !ok {
			utils.ErrorResponse(c, http.StatusBadRequest, "unknown record kind")
			c.Abort()
			return
		}

		m.RequirePermission(slug)(c)
	}
}

func (m *PermissionMiddleware) allowed(user *identity.User, slug string) bool {
	if user.HasRole(constants.RoleSlugAdmin) {
		return true
	}

	if !user.IsTransient() && m.enforcer != nil {
		resource, action, ok := splitPermissionSlug(slug)
		if ok {
			granted, err := m.enforcer.Enforce(strconv.FormatUint(uint64(user.ID()), 10), resource, action)
			if err != nil {
				m.logger.Errorw("policy check failed", "error", err, "user_id", user.ID(), "permission", slug)
			} else if granted {
				return true
			}
		}
	}

	return m.permissionService.HasPermission(user, slug)
}

func splitPermissionSlug(slug string) (string, string, bool) {
	parts := strings.SplitN(slug, ":", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}
