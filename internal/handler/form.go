package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/kalitafoto/backend/internal/lib/job"
	"github.com/kalitafoto/backend/internal/middleware"
	"github.com/kalitafoto/backend/internal/model"
	"github.com/kalitafoto/backend/internal/server"
	"github.com/kalitafoto/backend/internal/service"
	"github.com/kalitafoto/backend/internal/validation"
)

// FormHandler serves the public service-form endpoints.
type FormHandler struct {
	Handler
	forms *service.FormService
}

// NewFormHandler constructs a FormHandler.
func NewFormHandler(s *server.Server, forms *service.FormService) *FormHandler {
	return &FormHandler{
		Handler: NewHandler(s),
		forms:   forms,
	}
}

// CreateServiceFormRequest is the intake payload. Validation runs the
// accumulate-all-violations schema, not struct tags.
type CreateServiceFormRequest struct {
	model.ServiceFormInput
}

func (r *CreateServiceFormRequest) Validate() error {
	return validation.ServiceForm(&r.ServiceFormInput)
}

// GetServiceFormRequest fetches a single form by its UUID.
type GetServiceFormRequest struct {
	ID string `param:"id" validate:"required,uuid"`
}

func (r *GetServiceFormRequest) Validate() error {
	return validation.Struct(r)
}

// GetServiceFormsByEmailRequest fetches every form submitted with an
// email address.
type GetServiceFormsByEmailRequest struct {
	Email string `param:"email" validate:"required,email"`
}

func (r *GetServiceFormsByEmailRequest) Validate() error {
	return validation.Struct(r)
}

// CreateServiceForm persists a validated submission and notifies the
// studio inbox. The notification is best-effort: an enqueue failure is
// logged and never fails the request.
func (h *FormHandler) CreateServiceForm(c echo.Context, req *CreateServiceFormRequest) (Response, error) {
	form, err := h.forms.CreateServiceForm(c.Request().Context(), &req.ServiceFormInput)
	if err != nil {
		return Response{}, err
	}

	h.enqueueNotification(c, form)

	return OK("Service form created successfully", form), nil
}

// GetServiceForm returns one form by ID.
func (h *FormHandler) GetServiceForm(c echo.Context, req *GetServiceFormRequest) (Response, error) {
	form, err := h.forms.GetFormByID(c.Request().Context(), req.ID)
	if err != nil {
		return Response{}, err
	}
	return OK("Service form retrieved successfully", form), nil
}

// GetServiceFormsByEmail returns every form submitted with the given
// address, newest first. Unknown addresses yield an empty list.
func (h *FormHandler) GetServiceFormsByEmail(c echo.Context, req *GetServiceFormsByEmailRequest) (Response, error) {
	forms, err := h.forms.GetFormsByEmail(c.Request().Context(), req.Email)
	if err != nil {
		return Response{}, err
	}
	return OK("Service forms retrieved successfully", forms), nil
}

func (h *FormHandler) enqueueNotification(c echo.Context, form *model.ServiceForm) {
	cfg := h.server.Config.Integration
	if cfg.ResendAPIKey == "" || cfg.NotificationEmail == "" || h.server.Job == nil {
		return
	}

	task, err := job.NewFormReceivedTask(cfg.NotificationEmail, form.FullName, form.PhotoSessionType, form.Message)
	if err != nil {
		middleware.GetLogger(c).Error().Err(err).Msg("failed to build form notification task")
		return
	}

	if _, err := h.server.Job.Client.EnqueueContext(c.Request().Context(), task); err != nil {
		middleware.GetLogger(c).Error().Err(err).Msg("failed to enqueue form notification task")
	}
}
