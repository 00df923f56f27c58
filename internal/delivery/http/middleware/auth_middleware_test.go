package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"oxylink/config"
	"oxylink/internal/domain/entity"
	"oxylink/internal/infra/auth"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenService(t *testing.T) (accessToken, refreshToken string, userID uuid.UUID, m *AuthMiddleware) {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret"
	cfg.SecretKey.Refresh = "test_refresh_secret"

	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	userID = uuid.New()
	accessToken, refreshToken, err = tokenSvc.GenerateTokens(userID, entity.RoleSeller.String())
	require.NoError(t, err)

	return accessToken, refreshToken, userID, NewAuthMiddleware(tokenSvc)
}

func TestAuthMiddleware_Authenticate_Success(t *testing.T) {
	accessToken, _, userID, m := newTestTokenService(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/seller/orders", nil)
	req.Header.Set("Authorization", "Bearer "+accessToken)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	nextCalled := false
	next := func(c echo.Context) error {
		nextCalled = true
		assert.Equal(t, userID, c.Get(ContextKeyUserID))
		assert.Equal(t, entity.RoleSeller.String(), c.Get(ContextKeyRole))

		return nil
	}

	err := m.Authenticate(next)(c)
	assert.NoError(t, err)
	assert.True(t, nextCalled)
}

func TestAuthMiddleware_Authenticate_RejectsRefreshToken(t *testing.T) {
	_, refreshToken, _, m := newTestTokenService(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/seller/orders", nil)
	req.Header.Set("Authorization", "Bearer "+refreshToken)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := m.Authenticate(func(c echo.Context) error { return nil })(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_MissingHeader(t *testing.T) {
	_, _, _, m := newTestTokenService(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/seller/orders", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := m.Authenticate(func(c echo.Context) error { return nil })(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "MISSING_TOKEN")
}

func TestAuthMiddleware_Authenticate_MalformedToken(t *testing.T) {
	_, _, _, m := newTestTokenService(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/seller/orders", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := m.Authenticate(func(c echo.Context) error { return nil })(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_TOKEN")
}

func TestAuthMiddleware_RequireRole_Mismatch(t *testing.T) {
	accessToken, _, _, m := newTestTokenService(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/admin/stats", nil)
	req.Header.Set("Authorization", "Bearer "+accessToken)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// Token carries the seller role; admin routes must reject it.
	chain := m.Authenticate(m.RequireRole(entity.RoleAdmin.String())(func(c echo.Context) error {
		t.Fatal("handler should not be reached")

		return nil
	}))

	err := chain(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "FORBIDDEN")
}

func TestAuthMiddleware_RequireRole_Match(t *testing.T) {
	accessToken, _, _, m := newTestTokenService(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/seller/orders", nil)
	req.Header.Set("Authorization", "Bearer "+accessToken)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	nextCalled := false
	chain := m.Authenticate(m.RequireRole(entity.RoleSeller.String())(func(c echo.Context) error {
		nextCalled = true

		return nil
	}))

	err := chain(c)
	assert.NoError(t, err)
	assert.True(t, nextCalled)
}
