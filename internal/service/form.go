package service

import (
	"context"
	"errors"
	"math"

	"github.com/kalitafoto/backend/internal/errs"
	"github.com/kalitafoto/backend/internal/model"
	"github.com/kalitafoto/backend/internal/repository"
)

// FormService exposes the service-form use cases.
type FormService struct {
	forms repository.ServiceFormRepository
}

// NewFormService wires the form use cases onto the repository.
func NewFormService(forms repository.ServiceFormRepository) *FormService {
	return &FormService{forms: forms}
}

// FormPage is one page of forms plus the metadata admins paginate with.
type FormPage struct {
	Forms []model.ServiceForm
	Page  int
	Limit int
	Total int64
	Pages int
}

// CreateServiceForm persists an already-validated submission.
func (s *FormService) CreateServiceForm(ctx context.Context, in *model.ServiceFormInput) (*model.ServiceForm, error) {
	return s.forms.Create(ctx, in)
}

// GetFormByID returns the form or a 404 error when it does not exist.
func (s *FormService) GetFormByID(ctx context.Context, id string) (*model.ServiceForm, error) {
	form, err := s.forms.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if form == nil {
		return nil, errs.NewNotFoundError("Service form not found", true, nil)
	}
	return form, nil
}

// GetFormsByEmail returns every form submitted with email, newest
// first. An address with no submissions yields an empty slice, not an
// error.
func (s *FormService) GetFormsByEmail(ctx context.Context, email string) ([]model.ServiceForm, error) {
	forms, err := s.forms.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if forms == nil {
		forms = []model.ServiceForm{}
	}
	return forms, nil
}

// GetAllForms returns one page of forms with pagination metadata,
// optionally filtered by lifecycle status.
func (s *FormService) GetAllForms(ctx context.Context, p model.Pagination) (*FormPage, error) {
	p = p.Normalize()

	if p.Status != "" && !model.IsValidStatus(p.Status) {
		return nil, errs.NewUnprocessableEntityError("Validation failed", []errs.FieldError{
			{Field: "status", Error: "must be one of pending, confirmed, in_progress, completed, cancelled"},
		})
	}

	forms, err := s.forms.FindAll(ctx, p)
	if err != nil {
		return nil, err
	}
	if forms == nil {
		forms = []model.ServiceForm{}
	}

	total, err := s.forms.Count(ctx, p.Status)
	if err != nil {
		return nil, err
	}

	return &FormPage{
		Forms: forms,
		Page:  p.Page,
		Limit: p.Limit,
		Total: total,
		Pages: int(math.Ceil(float64(total) / float64(p.Limit))),
	}, nil
}

// UpdateForm applies a partial update, rejecting unknown lifecycle
// statuses before touching the database.
func (s *FormService) UpdateForm(ctx context.Context, id string, upd *model.ServiceFormUpdate) (*model.ServiceForm, error) {
	if upd.Status != nil && !model.IsValidStatus(*upd.Status) {
		return nil, errs.NewUnprocessableEntityError("Validation failed", []errs.FieldError{
			{Field: "status", Error: "must be one of pending, confirmed, in_progress, completed, cancelled"},
		})
	}

	form, err := s.forms.Update(ctx, id, upd)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, errs.NewNotFoundError("Service form not found", true, nil)
	}
	if err != nil {
		return nil, err
	}
	return form, nil
}

// DeleteForm removes a form, returning a 404 error when it never
// existed.
func (s *FormService) DeleteForm(ctx context.Context, id string) error {
	err := s.forms.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return errs.NewNotFoundError("Service form not found", true, nil)
	}
	return err
}
