package middleware

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/salespulse/salespulse-backend/pkg/jwt"
)

// Context keys set by the auth middleware.
const (
	TenantIDKey = "tenant_id"
	UserIDKey   = "user_id"
	ClaimsKey   = "claims"
)

// AuthMiddleware validates bearer tokens and scopes requests to a tenant
type AuthMiddleware struct {
	manager *jwt.Manager
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(manager *jwt.Manager) *AuthMiddleware {
	return &AuthMiddleware{
		manager: manager,
	}
}

// Authenticate validates the JWT and stores the tenant scope on the
// request context. Every handler behind this middleware can assume a
// valid tenant id.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := extractToken(c)
		if token == "" {
			return c.JSON(http.StatusUnauthorized, map[string]interface{}{
				"error":   "unauthorized",
				"message": "missing authorization token",
			})
		}

		claims, err := m.manager.ValidateAccessToken(token)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]interface{}{
				"error":   "unauthorized",
				"message": "invalid or expired token",
			})
		}

		c.Set(TenantIDKey, claims.TenantID)
		c.Set(UserIDKey, claims.UserID)
		c.Set(ClaimsKey, claims)
		return next(c)
	}
}

// TenantID reads the tenant scope a previous Authenticate call stored.
func TenantID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(TenantIDKey).(uuid.UUID)
	return id, ok
}

// extractToken pulls the bearer token from the Authorization header, with
// an access_token cookie as fallback.
func extractToken(c echo.Context) string {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.ToLower(parts[0]) == "bearer" {
			return strings.TrimSpace(parts[1])
		}
	}

	cookie, err := c.Cookie("access_token")
	if err == nil {
		return cookie.Value
	}

	return ""
}
