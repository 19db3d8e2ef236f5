package middleware

import (
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/kalitafoto/backend/internal/server"
	"github.com/kalitafoto/backend/internal/service"
)

// Middlewares groups every middleware component used by the HTTP
// server, so routing code receives one wired object instead of
// constructing middleware inline.
type Middlewares struct {
	// Global holds CORS, request logging, recovery, secure headers and
	// the global error handler.
	Global *GlobalMiddlewares

	// Auth enforces admin JWT authentication and attaches user context.
	Auth *AuthMiddleware

	// ContextEnhancer enriches each request with a request-scoped
	// logger (request_id, method, path, ip, optional user and trace
	// metadata).
	ContextEnhancer *ContextEnhancer

	// Tracing provides New Relic middleware and attaches custom
	// transaction attributes.
	Tracing *TracingMiddleware
}

// NewMiddlewares constructs all middleware components from the
// application container. When New Relic is not configured the tracing
// middleware degrades into a no-op.
func NewMiddlewares(s *server.Server, services *service.Services) *Middlewares {
	var nrApp *newrelic.Application
	if s.LoggerService != nil {
		nrApp = s.LoggerService.GetApplication()
	}

	return &Middlewares{
		Global:          NewGlobalMiddlewares(s),
		Auth:            NewAuthMiddleware(s, services.Auth),
		ContextEnhancer: NewContextEnhancer(s),
		Tracing:         NewTracingMiddleware(s, nrApp),
	}
}
