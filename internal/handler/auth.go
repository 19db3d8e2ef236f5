package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/kalitafoto/backend/internal/middleware"
	"github.com/kalitafoto/backend/internal/model"
	"github.com/kalitafoto/backend/internal/server"
	"github.com/kalitafoto/backend/internal/service"
	"github.com/kalitafoto/backend/internal/validation"
)

// AuthHandler serves admin authentication endpoints.
type AuthHandler struct {
	Handler
	auth *service.AuthService
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(s *server.Server, auth *service.AuthService) *AuthHandler {
	return &AuthHandler{
		Handler: NewHandler(s),
		auth:    auth,
	}
}

// LoginRequest carries admin credentials.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Validate() error {
	return validation.Struct(r)
}

// CreateAdminRequest registers a new backoffice account.
type CreateAdminRequest struct {
	Name     string `json:"name" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

func (r *CreateAdminRequest) Validate() error {
	return validation.Struct(r)
}

// MeRequest has no inputs; identity comes from the token.
type MeRequest struct{}

func (r *MeRequest) Validate() error {
	return nil
}

// loginData is the login response body: the account plus its token.
type loginData struct {
	User  *model.AdminUser `json:"user"`
	Token string           `json:"token"`
}

// Login exchanges credentials for a signed token.
func (h *AuthHandler) Login(c echo.Context, req *LoginRequest) (Response, error) {
	user, token, err := h.auth.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return Response{}, err
	}

	return OK("Logged in successfully", loginData{User: user, Token: token}), nil
}

// CreateAdmin registers a new admin account.
func (h *AuthHandler) CreateAdmin(c echo.Context, req *CreateAdminRequest) (Response, error) {
	user, err := h.auth.CreateAdmin(c.Request().Context(), req.Name, req.Email, req.Password)
	if err != nil {
		return Response{}, err
	}

	return OK("Admin user created successfully", user), nil
}

// Me returns the account behind the presented token.
func (h *AuthHandler) Me(c echo.Context, req *MeRequest) (Response, error) {
	user, err := h.auth.GetAdminByID(c.Request().Context(), middleware.GetUserID(c))
	if err != nil {
		return Response{}, err
	}

	return OK("Admin user retrieved successfully", user), nil
}
