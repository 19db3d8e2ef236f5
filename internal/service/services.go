package service

import (
	"github.com/kalitafoto/backend/internal/config"
	"github.com/kalitafoto/backend/internal/repository"
	"github.com/kalitafoto/backend/internal/storage"
)

// Services bundles every service for injection into handlers and
// middleware.
type Services struct {
	Forms     *FormService
	Auth      *AuthService
	Portfolio *PortfolioService
}

// NewServices wires all services onto their dependencies.
func NewServices(cfg *config.Config, repos *repository.Repositories, store storage.Storage) *Services {
	return &Services{
		Forms:     NewFormService(repos.ServiceForms),
		Auth:      NewAuthService(repos.AdminUsers, cfg.Auth.SecretKey),
		Portfolio: NewPortfolioService(store),
	}
}
