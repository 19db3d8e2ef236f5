package handler

import (
	"github.com/kalitafoto/backend/internal/server"
	"github.com/kalitafoto/backend/internal/service"
)

// Handlers groups every HTTP handler so router setup receives one
// wired object.
type Handlers struct {
	Form      *FormHandler
	Auth      *AuthHandler
	AdminForm *AdminFormHandler
	Portfolio *PortfolioHandler
	Health    *HealthHandler
	OpenAPI   *OpenAPIHandler
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Form:      NewFormHandler(s, services.Forms),
		Auth:      NewAuthHandler(s, services.Auth),
		AdminForm: NewAdminFormHandler(s, services.Forms),
		Portfolio: NewPortfolioHandler(s, services.Portfolio),
		Health:    NewHealthHandler(s),
		OpenAPI:   NewOpenAPIHandler(s),
	}
}
