package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/domain/user/valueobjects"
	"helpdesk/internal/infrastructure/auth"
	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

// AuthMiddleware verifies the session token and stakes the caller's identity
// into the gin context. Role gates read the claim, not the database, so a
// role change takes effect on the next issued token.
type AuthMiddleware struct {
	jwtService *auth.JWTService
	logger     logger.Interface
}

func NewAuthMiddleware(jwtService *auth.JWTService, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		logger:     logger,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(constants.HeaderAuthorization)
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

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

		c.Set(constants.ContextKeyUserID, claims.UserID)
		c.Set(constants.ContextKeyUserEmail, claims.Email)
		c.Set(constants.ContextKeyUserName, claims.Name)
		c.Set(constants.ContextKeyUserRole, claims.Role.String())

		c.Next()
	}
}

// RequireTeam admits itsm_team and admin. Must run after RequireAuth.
func (m *AuthMiddleware) RequireTeam() gin.HandlerFunc {
	return m.requireRoles(valueobjects.RoleITSMTeam, valueobjects.RoleAdmin)
}

// RequireAdmin admits admin only. Must run after RequireAuth.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return m.requireRoles(valueobjects.RoleAdmin)
}

func (m *AuthMiddleware) requireRoles(roles ...valueobjects.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleValue, exists := c.Get(constants.ContextKeyUserRole)
		if !exists {
			utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
			c.Abort()
			return
		}

		role, _ := roleValue.(string)
		for _, allowed := range roles {
			if role == allowed.String() {
				c.Next()
				return
			}
		}

		m.logger.Warnw("role gate denied request",
			"path", c.Request.URL.Path,
			"role", role)
		utils.ErrorResponse(c, http.StatusForbidden, "insufficient permissions")
		c.Abort()
	}
}

// CurrentUserID reads the authenticated user ID staked by RequireAuth.
func CurrentUserID(c *gin.Context) (uint, bool) {
	value, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}
	id, ok := value.(uint)
	return id, ok
}

// CurrentRole reads the claim-derived role string.
func CurrentRole(c *gin.Context) string {
	value, exists := c.Get(constants.ContextKeyUserRole)
	if !exists {
		return ""
	}
	role, _ := value.(string)
	return role
}

// IsStaff reports whether the caller's role is itsm_team or admin.
func IsStaff(c *gin.Context) bool {
	role := CurrentRole(c)
	return role == valueobjects.RoleITSMTeam.String() || role == valueobjects.RoleAdmin.String()
}

// IsAdmin reports whether the caller's role is admin.
func IsAdmin(c *gin.Context) bool {
	return CurrentRole(c) == valueobjects.RoleAdmin.String()
}
