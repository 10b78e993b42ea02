package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"lerms/internal/application/identity/services"
	"lerms/internal/domain/identity"
	"lerms/internal/infrastructure/auth"
	"lerms/internal/shared/constants"
	"lerms/internal/shared/logger"
	"lerms/internal/shared/utils"
)

// IdentityMiddleware resolves every request to a principal. A Bearer token
// wins when present; otherwise the X-Requester-Email header names the
// caller. Neither yields a transient guest carrying only the default role.
type IdentityMiddleware struct {
	jwtService *auth.JWTService
	resolver   *services.ResolverService
	logger     logger.Interface
}

func NewIdentityMiddleware(jwtService *auth.JWTService, resolver *services.ResolverService, logger logger.Interface) *IdentityMiddleware {
	return &IdentityMiddleware{
		jwtService: jwtService,
		resolver:   resolver,
		logger:     logger,
	}
}

func (m *IdentityMiddleware) Resolve() gin.HandlerFunc {
	return func(c *gin.Context) {
		var email string

		if authHeader := c.GetHeader(constants.HeaderAuthorization); authHeader != "" {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				utils.ErrorResponse(c, http.StatusUnauthorized, "invalid authorization header format")
				c.Abort()
				return
			}

			claims, err := m.jwtService.Verify(parts[1])
			if err != nil {
				m.logger.Warnw("failed to verify token", "error", err)
				utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
				c.Abort()
				return
			}
			email = claims.Email
		} else {
			email = strings.TrimSpace(c.GetHeader(constants.HeaderRequesterEmail))
		}

		user, err := m.resolver.Resolve(c.Request.Context(), email)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUser, user)
		c.Set(constants.ContextKeyUserID, user.ID())

		c.Next()
	}
}

// CurrentUser returns the principal the identity middleware resolved, or
// nil when resolution never ran for this route.
func CurrentUser(c *gin.Context) *identity.User {
	value, exists := c.Get(constants.ContextKeyUser)
	if !exists {
		return nil
	}
	user, ok := value.(*identity.User)
	if !ok {
		return nil
	}
	return user
}
