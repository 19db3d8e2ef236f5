package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kalitafoto/backend/internal/errs"
	"github.com/kalitafoto/backend/internal/model"
	"github.com/kalitafoto/backend/internal/repository"
)

// fakeFormRepository is an in-memory ServiceFormRepository that mirrors
// the persistence-boundary behavior of the real one: phone
// normalization, status defaulting and created_at DESC ordering.
type fakeFormRepository struct {
	forms []model.ServiceForm
	seq   int
	err   error // when set, every method fails with it
}

func (f *fakeFormRepository) Create(_ context.Context, in *model.ServiceFormInput) (*model.ServiceForm, error) {
	if f.err != nil {
		return nil, f.err
	}
	status := in.Status
	if status == "" {
		status = model.StatusPending
	}
	f.seq++
	form := model.ServiceForm{
		ID:                   fmt.Sprintf("form-%d", f.seq),
		FullName:             in.FullName,
		Email:                in.Email,
		Phone:                repository.NormalizePhone(in.Phone),
		PhotoSessionType:     in.PhotoSessionType,
		Message:              in.Message,
		Status:               status,
		AssignedPhotographer: in.AssignedPhotographer,
		CreatedAt:            time.Now(),
		UpdatedAt:            time.Now(),
	}
	f.forms = append(f.forms, form)
	return &form, nil
}

func (f *fakeFormRepository) FindByID(_ context.Context, id string) (*model.ServiceForm, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.forms {
		if f.forms[i].ID == id {
			form := f.forms[i]
			return &form, nil
		}
	}
	return nil, nil
}

func (f *fakeFormRepository) FindByEmail(_ context.Context, email string) ([]model.ServiceForm, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []model.ServiceForm
	for _, form := range f.forms {
		if form.Email == email {
			out = append(out, form)
		}
	}
	return out, nil
}

func (f *fakeFormRepository) FindAll(_ context.Context, p model.Pagination) ([]model.ServiceForm, error) {
	if f.err != nil {
		return nil, f.err
	}
	p = p.Normalize()
	var filtered []model.ServiceForm
	for _, form := range f.forms {
		if p.Status == "" || form.Status == p.Status {
			filtered = append(filtered, form)
		}
	}
	start := p.Offset()
	if start >= len(filtered) {
		return nil, nil
	}
	end := start + p.Limit
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[start:end], nil
}

func (f *fakeFormRepository) Count(_ context.Context, status string) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	var n int64
	for _, form := range f.forms {
		if status == "" || form.Status == status {
			n++
		}
	}
	return n, nil
}

func (f *fakeFormRepository) Update(_ context.Context, id string, upd *model.ServiceFormUpdate) (*model.ServiceForm, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.forms {
		if f.forms[i].ID != id {
			continue
		}
		if upd.Status != nil {
			f.forms[i].Status = *upd.Status
		}
		if upd.Phone != nil {
			f.forms[i].Phone = repository.NormalizePhone(*upd.Phone)
		}
		if upd.AssignedPhotographer != nil {
			f.forms[i].AssignedPhotographer = upd.AssignedPhotographer
		}
		form := f.forms[i]
		return &form, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeFormRepository) Delete(_ context.Context, id string) error {
	if f.err != nil {
		return f.err
	}
	for i := range f.forms {
		if f.forms[i].ID == id {
			f.forms = append(f.forms[:i], f.forms[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func validInput() *model.ServiceFormInput {
	return &model.ServiceFormInput{
		FullName:         "João Silva Santos",
		Email:            "joao@example.com",
		Phone:            "(11) 91234-5678",
		PhotoSessionType: "Ensaio Externo",
		Message:          "Gostaria de agendar um ensaio.",
	}
}

func TestFormService_CreateServiceForm_Defaults(t *testing.T) {
	svc := NewFormService(&fakeFormRepository{})

	form, err := svc.CreateServiceForm(context.Background(), validInput())
	require.NoError(t, err)

	assert.Equal(t, "11912345678", form.Phone)
	assert.Equal(t, model.StatusPending, form.Status)
	assert.Nil(t, form.AssignedPhotographer)
}

func TestFormService_CreateServiceForm_PropagatesStoreError(t *testing.T) {
	storeErr := errors.New("connection refused")
	svc := NewFormService(&fakeFormRepository{err: storeErr})

	_, err := svc.CreateServiceForm(context.Background(), validInput())
	assert.Equal(t, storeErr, err)
}

func TestFormService_GetFormByID_NotFound(t *testing.T) {
	svc := NewFormService(&fakeFormRepository{})

	_, err := svc.GetFormByID(context.Background(), "missing")

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 404, httpErr.Status)
}

func TestFormService_GetFormsByEmail_EmptyIsNotAnError(t *testing.T) {
	svc := NewFormService(&fakeFormRepository{})

	forms, err := svc.GetFormsByEmail(context.Background(), "nobody@example.com")
	require.NoError(t, err)
	assert.NotNil(t, forms)
	assert.Empty(t, forms)
}

func TestFormService_GetAllForms_PaginationMetadata(t *testing.T) {
	repo := &fakeFormRepository{}
	svc := NewFormService(repo)

	for i := 0; i < 25; i++ {
		_, err := svc.CreateServiceForm(context.Background(), validInput())
		require.NoError(t, err)
	}

	page, err := svc.GetAllForms(context.Background(), model.Pagination{Page: 2, Limit: 10})
	require.NoError(t, err)

	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 10, page.Limit)
	assert.Equal(t, int64(25), page.Total)
	assert.Equal(t, 3, page.Pages)
	assert.Len(t, page.Forms, 10)
}

func TestFormService_GetAllForms_DefaultsApplied(t *testing.T) {
	svc := NewFormService(&fakeFormRepository{})

	page, err := svc.GetAllForms(context.Background(), model.Pagination{})
	require.NoError(t, err)

	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 10, page.Limit)
	assert.Equal(t, 0, page.Pages)
	assert.NotNil(t, page.Forms)
}

func TestFormService_GetAllForms_RejectsUnknownStatus(t *testing.T) {
	svc := NewFormService(&fakeFormRepository{})

	_, err := svc.GetAllForms(context.Background(), model.Pagination{Status: "archived"})

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 422, httpErr.Status)
}

func TestFormService_UpdateForm_StatusTransitions(t *testing.T) {
	repo := &fakeFormRepository{}
	svc := NewFormService(repo)

	created, err := svc.CreateServiceForm(context.Background(), validInput())
	require.NoError(t, err)

	status := model.StatusConfirmed
	photographer := "Ana"
	updated, err := svc.UpdateForm(context.Background(), created.ID, &model.ServiceFormUpdate{
		Status:               &status,
		AssignedPhotographer: &photographer,
	})
	require.NoError(t, err)

	assert.Equal(t, model.StatusConfirmed, updated.Status)
	require.NotNil(t, updated.AssignedPhotographer)
	assert.Equal(t, "Ana", *updated.AssignedPhotographer)
}

func TestFormService_UpdateForm_RejectsUnknownStatus(t *testing.T) {
	svc := NewFormService(&fakeFormRepository{})

	bad := "archived"
	_, err := svc.UpdateForm(context.Background(), "any", &model.ServiceFormUpdate{Status: &bad})

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 422, httpErr.Status)
	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, "status", httpErr.Errors[0].Field)
}

func TestFormService_UpdateForm_NotFound(t *testing.T) {
	svc := NewFormService(&fakeFormRepository{})

	status := model.StatusConfirmed
	_, err := svc.UpdateForm(context.Background(), "missing", &model.ServiceFormUpdate{Status: &status})

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 404, httpErr.Status)
}

func TestFormService_DeleteForm_NotFound(t *testing.T) {
	svc := NewFormService(&fakeFormRepository{})

	err := svc.DeleteForm(context.Background(), "missing")

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 404, httpErr.Status)
}
