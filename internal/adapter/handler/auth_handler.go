package handler

import (
	stdErrors "errors"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/salespulse/salespulse-backend/errors"
	authdto "github.com/salespulse/salespulse-backend/internal/adapter/dto/auth"
	"github.com/salespulse/salespulse-backend/pkg/jwt"
)

// AuthHandler exchanges refresh tokens for fresh token pairs
type AuthHandler struct {
	manager *jwt.Manager
	logger  *zap.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(manager *jwt.Manager, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		manager: manager,
		logger:  logger,
	}
}

// RefreshToken handles POST /v1/auth/refresh. The refresh token comes from
// the request body or the refresh_token cookie; both tokens rotate on
// every successful refresh.
func (h *AuthHandler) RefreshToken(c echo.Context) error {
	token := h.extractRefreshToken(c)
	if token == "" {
		return HandleError(h.logger, c, errors.ErrMissingToken())
	}

	claims, err := h.manager.ValidateRefreshToken(token)
	if err != nil {
		if stdErrors.Is(err, jwtlib.ErrTokenExpired) {
			return HandleError(h.logger, c, errors.ErrTokenExpired())
		}
		return HandleError(h.logger, c, errors.ErrInvalidToken(err))
	}

	accessToken, err := h.manager.GenerateAccessToken(claims.UserID, claims.TenantID, claims.Email, claims.Role)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	refreshToken, err := h.manager.GenerateRefreshToken(claims.UserID, claims.TenantID, claims.Email, claims.Role)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, authdto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
	})
}

func (h *AuthHandler) extractRefreshToken(c echo.Context) string {
	var req authdto.RefreshRequest
	if err := c.Bind(&req); err == nil && req.RefreshToken != "" {
		return req.RefreshToken
	}

	cookie, err := c.Cookie("refresh_token")
	if err == nil {
		return cookie.Value
	}
	return ""
}
