// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers.
package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kalitafoto/backend/internal/handler"
	"github.com/kalitafoto/backend/internal/middleware"
	"github.com/kalitafoto/backend/internal/server"
	"github.com/kalitafoto/backend/internal/service"
)

// New builds the Echo instance: middleware in order, the global error
// handler, and every route group.
func New(s *server.Server, services *service.Services) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	mws := middleware.NewMiddlewares(s, services)
	handlers := handler.NewHandlers(s, services)

	e.HTTPErrorHandler = mws.Global.GlobalErrorHandler

	// Order matters: tracing opens the transaction, request ID must
	// exist before the context enhancer builds the logger, and the
	// request logger reads what both of them stored.
	e.Use(mws.Tracing.NewRelicMiddleware())
	e.Use(middleware.RequestID())
	e.Use(mws.ContextEnhancer.EnhanceContext())
	e.Use(mws.Tracing.EnhanceTracing())
	e.Use(mws.Global.RequestLogger())
	e.Use(mws.Global.Recover())
	e.Use(mws.Global.Secure())
	e.Use(mws.Global.CORS())

	registerSystemRoutes(e, handlers)
	registerAPIRoutes(e, mws, handlers)

	return e
}

func registerAPIRoutes(e *echo.Echo, mws *middleware.Middlewares, h *handler.Handlers) {
	api := e.Group("/api/v1")

	// Public intake endpoints.
	api.POST("/service-form", handler.Handle(h.Form.Handler, h.Form.CreateServiceForm, http.StatusCreated))
	api.GET("/service-form/email/:email", handler.Handle(h.Form.Handler, h.Form.GetServiceFormsByEmail, http.StatusOK))
	api.GET("/service-form/:id", handler.Handle(h.Form.Handler, h.Form.GetServiceForm, http.StatusOK))

	// Auth endpoints. Login and create-admin are public so the first
	// admin can be bootstrapped; duplicates are rejected either way.
	auth := api.Group("/auth")
	auth.POST("/login", handler.Handle(h.Auth.Handler, h.Auth.Login, http.StatusOK))
	auth.POST("/create-admin", handler.Handle(h.Auth.Handler, h.Auth.CreateAdmin, http.StatusCreated))
	auth.GET("/me", handler.Handle(h.Auth.Handler, h.Auth.Me, http.StatusOK),
		mws.Auth.RequireAuth)

	// Admin form management.
	admin := api.Group("/admin", mws.Auth.RequireAuth, mws.Auth.RequireAdmin)
	admin.GET("/forms", handler.Handle(h.AdminForm.Handler, h.AdminForm.ListForms, http.StatusOK))
	admin.GET("/forms/:id", handler.Handle(h.AdminForm.Handler, h.AdminForm.GetForm, http.StatusOK))
	admin.PATCH("/forms/:id", handler.Handle(h.AdminForm.Handler, h.AdminForm.UpdateForm, http.StatusOK))
	admin.DELETE("/forms/:id", handler.HandleNoContent(h.AdminForm.Handler, h.AdminForm.DeleteForm, http.StatusNoContent))

	// Portfolio media management.
	portfolio := api.Group("/portfolio", mws.Auth.RequireAuth, mws.Auth.RequireAdmin)
	portfolio.POST("/upload-image", h.Portfolio.UploadImage)
	portfolio.POST("/upload-multiple", h.Portfolio.UploadImages)
	portfolio.DELETE("/image", handler.HandleNoContent(h.Portfolio.Handler, h.Portfolio.DeleteImage, http.StatusNoContent))
}
