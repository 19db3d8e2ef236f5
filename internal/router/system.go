package router

import (
	"github.com/labstack/echo/v4"

	"github.com/kalitafoto/backend/internal/handler"
)

// registerSystemRoutes registers endpoints that are not business
// logic: health status, docs UI, and the static assets backing it.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	// Health status endpoint (used by load balancers/monitors).
	r.GET("/status", h.Health.CheckHealth)

	// Serves openapi.json and openapi.html assets.
	r.Static("/static", "static")

	// Docs UI endpoint.
	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
}
