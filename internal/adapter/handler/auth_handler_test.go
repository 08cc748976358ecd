package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	authdto "github.com/salespulse/salespulse-backend/internal/adapter/dto/auth"
	"github.com/salespulse/salespulse-backend/pkg/jwt"
	pkgvalidator "github.com/salespulse/salespulse-backend/pkg/validator"
)

func newTestManager() *jwt.Manager {
	return jwt.NewManager("access-secret", "refresh-secret", 15*time.Minute, 168*time.Hour)
}

func newRefreshContext(t *testing.T, body string, cookie string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = pkgvalidator.New()

	req := httptest.NewRequest(http.MethodPost, "/v1/auth/refresh", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: "refresh_token", Value: cookie})
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeTokenPair(t *testing.T, rec *httptest.ResponseRecorder) authdto.TokenResponse {
	t.Helper()
	var body struct {
		Data authdto.TokenResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Data
}

func TestRefreshToken_RotatesTokenPair(t *testing.T) {
	manager := newTestManager()
	h := NewAuthHandler(manager, zap.NewNop())

	userID := uuid.New()
	tenantID := uuid.New()
	refresh, err := manager.GenerateRefreshToken(userID, tenantID, "demo@acme.dev", "owner")
	require.NoError(t, err)

	c, rec := newRefreshContext(t, `{"refresh_token":"`+refresh+`"}`, "")
	require.NoError(t, h.RefreshToken(c))
	require.Equal(t, http.StatusOK, rec.Code)

	pair := decodeTokenPair(t, rec)
	assert.Equal(t, "Bearer", pair.TokenType)
	assert.NotEmpty(t, pair.RefreshToken)

	claims, err := manager.ValidateAccessToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, tenantID, claims.TenantID)
	assert.Equal(t, userID, claims.UserID)

	rotated, err := manager.ValidateRefreshToken(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, tenantID, rotated.TenantID)
}

func TestRefreshToken_FallsBackToCookie(t *testing.T) {
	manager := newTestManager()
	h := NewAuthHandler(manager, zap.NewNop())

	refresh, err := manager.GenerateRefreshToken(uuid.New(), uuid.New(), "demo@acme.dev", "owner")
	require.NoError(t, err)

	c, rec := newRefreshContext(t, `{}`, refresh)
	require.NoError(t, h.RefreshToken(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRefreshToken_MissingTokenIsUnauthorized(t *testing.T) {
	h := NewAuthHandler(newTestManager(), zap.NewNop())

	c, rec := newRefreshContext(t, `{}`, "")
	require.NoError(t, h.RefreshToken(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRefreshToken_GarbageTokenIsUnauthorized(t *testing.T) {
	h := NewAuthHandler(newTestManager(), zap.NewNop())

	c, rec := newRefreshContext(t, `{"refresh_token":"not-a-token"}`, "")
	require.NoError(t, h.RefreshToken(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRefreshToken_AccessTokenIsRejected(t *testing.T) {
	manager := newTestManager()
	h := NewAuthHandler(manager, zap.NewNop())

	access, err := manager.GenerateAccessToken(uuid.New(), uuid.New(), "demo@acme.dev", "owner")
	require.NoError(t, err)

	c, rec := newRefreshContext(t, `{"refresh_token":"`+access+`"}`, "")
	require.NoError(t, h.RefreshToken(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
