package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/kalitafoto/backend/internal/errs"
	"github.com/kalitafoto/backend/internal/model"
	"github.com/kalitafoto/backend/internal/server"
	"github.com/kalitafoto/backend/internal/service"
)

// AuthMiddleware enforces JWT bearer authentication on admin routes.
type AuthMiddleware struct {
	server *server.Server
	auth   *service.AuthService
}

// NewAuthMiddleware constructs an AuthMiddleware.
func NewAuthMiddleware(s *server.Server, auth *service.AuthService) *AuthMiddleware {
	return &AuthMiddleware{
		server: s,
		auth:   auth,
	}
}

// RequireAuth validates the Authorization bearer token.
//
// A missing token yields 401; a present but invalid or expired token
// yields 403. On success it stores user_id, user_role and user_email in
// the Echo context for handlers and downstream middleware.
func (auth *AuthMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if header == "" {
			return errs.NewUnauthorizedError("Missing authentication token", true)
		}

		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || tokenString == "" {
			return errs.NewUnauthorizedError("Missing authentication token", true)
		}

		claims, err := auth.auth.ParseToken(tokenString)
		if err != nil {
			GetLogger(c).Warn().
				Err(err).
				Str("request_id", GetRequestID(c)).
				Msg("rejected invalid token")

			return errs.NewForbiddenError("Invalid or expired token", true)
		}

		c.Set(UserIDKey, claims.Subject)
		c.Set(UserRoleKey, claims.Role)
		c.Set(UserEmailKey, claims.Email)

		return next(c)
	}
}

// RequireAdmin rejects authenticated requests whose token does not
// carry the admin role. It must run after RequireAuth.
func (auth *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		role, _ := c.Get(UserRoleKey).(string)
		if role != model.RoleAdmin {
			return errs.NewForbiddenError("Admin access required", true)
		}
		return next(c)
	}
}
