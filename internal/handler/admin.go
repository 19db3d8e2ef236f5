package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/kalitafoto/backend/internal/model"
	"github.com/kalitafoto/backend/internal/server"
	"github.com/kalitafoto/backend/internal/service"
	"github.com/kalitafoto/backend/internal/validation"
)

// AdminFormHandler serves the authenticated form-management endpoints.
type AdminFormHandler struct {
	Handler
	forms *service.FormService
}

// NewAdminFormHandler constructs an AdminFormHandler.
func NewAdminFormHandler(s *server.Server, forms *service.FormService) *AdminFormHandler {
	return &AdminFormHandler{
		Handler: NewHandler(s),
		forms:   forms,
	}
}

// ListFormsRequest selects a page of forms, optionally filtered by
// lifecycle status. Zero values fall back to page 1, limit 10.
type ListFormsRequest struct {
	Page   int    `query:"page" validate:"omitempty,min=1"`
	Limit  int    `query:"limit" validate:"omitempty,min=1,max=100"`
	Status string `query:"status" validate:"omitempty,oneof=pending confirmed in_progress completed cancelled"`
}

func (r *ListFormsRequest) Validate() error {
	return validation.Struct(r)
}

// AdminFormRequest targets one form by its UUID.
type AdminFormRequest struct {
	ID string `param:"id" validate:"required,uuid"`
}

func (r *AdminFormRequest) Validate() error {
	return validation.Struct(r)
}

// UpdateFormRequest is a partial update of one form; absent fields are
// left untouched. Status values are checked again in the service layer.
type UpdateFormRequest struct {
	ID string `param:"id" validate:"required,uuid"`
	model.ServiceFormUpdate
}

func (r *UpdateFormRequest) Validate() error {
	return validation.Struct(r)
}

// ListForms returns one page of forms with pagination metadata.
func (h *AdminFormHandler) ListForms(c echo.Context, req *ListFormsRequest) (ListResponse, error) {
	page, err := h.forms.GetAllForms(c.Request().Context(), model.Pagination{
		Page:   req.Page,
		Limit:  req.Limit,
		Status: req.Status,
	})
	if err != nil {
		return ListResponse{}, err
	}

	return ListResponse{
		Success: true,
		Message: "Service forms retrieved successfully",
		Data:    page.Forms,
		Meta: Meta{
			Page:  page.Page,
			Limit: page.Limit,
			Total: page.Total,
			Pages: page.Pages,
		},
	}, nil
}

// GetForm returns one form by ID.
func (h *AdminFormHandler) GetForm(c echo.Context, req *AdminFormRequest) (Response, error) {
	form, err := h.forms.GetFormByID(c.Request().Context(), req.ID)
	if err != nil {
		return Response{}, err
	}
	return OK("Service form retrieved successfully", form), nil
}

// UpdateForm applies a partial update and returns the updated form.
func (h *AdminFormHandler) UpdateForm(c echo.Context, req *UpdateFormRequest) (Response, error) {
	form, err := h.forms.UpdateForm(c.Request().Context(), req.ID, &req.ServiceFormUpdate)
	if err != nil {
		return Response{}, err
	}
	return OK("Service form updated successfully", form), nil
}

// DeleteForm removes a form.
func (h *AdminFormHandler) DeleteForm(c echo.Context, req *AdminFormRequest) error {
	return h.forms.DeleteForm(c.Request().Context(), req.ID)
}
