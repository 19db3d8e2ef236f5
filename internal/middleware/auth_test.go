package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kalitafoto/backend/internal/errs"
	"github.com/kalitafoto/backend/internal/model"
	"github.com/kalitafoto/backend/internal/server"
	"github.com/kalitafoto/backend/internal/service"
)

func testAuthMiddleware(t *testing.T) (*AuthMiddleware, *service.AuthService) {
	t.Helper()
	// ParseToken never touches the repository, so nil is fine here.
	authService := service.NewAuthService(nil, "test-secret")
	return NewAuthMiddleware(&server.Server{}, authService), authService
}

func runAuthRequest(t *testing.T, mw *AuthMiddleware, authHeader string) (echo.Context, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	c := e.NewContext(req, httptest.NewRecorder())

	err := mw.RequireAuth(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})(c)

	return c, err
}

func TestRequireAuth_MissingToken(t *testing.T) {
	mw, _ := testAuthMiddleware(t)

	_, err := runAuthRequest(t, mw, "")

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Status)
}

func TestRequireAuth_NotBearer(t *testing.T) {
	mw, _ := testAuthMiddleware(t)

	_, err := runAuthRequest(t, mw, "Basic dXNlcjpwYXNz")

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Status)
}

func TestRequireAuth_InvalidToken(t *testing.T) {
	mw, _ := testAuthMiddleware(t)

	_, err := runAuthRequest(t, mw, "Bearer not-a-jwt")

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusForbidden, httpErr.Status)
}

func TestRequireAuth_WrongSecret(t *testing.T) {
	mw, _ := testAuthMiddleware(t)

	other := service.NewAuthService(nil, "other-secret")
	token, err := other.GenerateToken(&model.AdminUser{ID: "admin-1", Email: "a@b.com"})
	require.NoError(t, err)

	_, err = runAuthRequest(t, mw, "Bearer "+token)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusForbidden, httpErr.Status)
}

func TestRequireAuth_ValidTokenSetsContext(t *testing.T) {
	mw, authService := testAuthMiddleware(t)

	token, err := authService.GenerateToken(&model.AdminUser{ID: "admin-1", Email: "kalita@example.com"})
	require.NoError(t, err)

	c, err := runAuthRequest(t, mw, "Bearer "+token)
	require.NoError(t, err)

	assert.Equal(t, "admin-1", c.Get(UserIDKey))
	assert.Equal(t, model.RoleAdmin, c.Get(UserRoleKey))
	assert.Equal(t, "kalita@example.com", c.Get(UserEmailKey))
}

func TestRequireAdmin(t *testing.T) {
	mw, _ := testAuthMiddleware(t)

	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }

	e := echo.New()

	// Without the admin role set.
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	err := mw.RequireAdmin(next)(c)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusForbidden, httpErr.Status)

	// With it.
	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	c.Set(UserRoleKey, model.RoleAdmin)
	assert.NoError(t, mw.RequireAdmin(next)(c))
}
