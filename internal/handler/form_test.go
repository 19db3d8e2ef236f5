package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kalitafoto/backend/internal/config"
	"github.com/kalitafoto/backend/internal/middleware"
	"github.com/kalitafoto/backend/internal/model"
	"github.com/kalitafoto/backend/internal/repository"
	"github.com/kalitafoto/backend/internal/server"
	"github.com/kalitafoto/backend/internal/service"
)

// memFormRepository is an in-memory ServiceFormRepository mirroring the
// write-path behavior of the real one.
type memFormRepository struct {
	forms []model.ServiceForm
	seq   int
}

func (m *memFormRepository) Create(_ context.Context, in *model.ServiceFormInput) (*model.ServiceForm, error) {
	status := in.Status
	if status == "" {
		status = model.StatusPending
	}
	m.seq++
	form := model.ServiceForm{
		ID:                   fmt.Sprintf("9f0c8f3a-0000-4000-8000-%012d", m.seq),
		FullName:             in.FullName,
		Email:                in.Email,
		Phone:                repository.NormalizePhone(in.Phone),
		PhotoSessionType:     in.PhotoSessionType,
		Message:              in.Message,
		Status:               status,
		AssignedPhotographer: in.AssignedPhotographer,
	}
	m.forms = append(m.forms, form)
	return &form, nil
}

func (m *memFormRepository) FindByID(_ context.Context, id string) (*model.ServiceForm, error) {
	for i := range m.forms {
		if m.forms[i].ID == id {
			form := m.forms[i]
			return &form, nil
		}
	}
	return nil, nil
}

func (m *memFormRepository) FindByEmail(_ context.Context, email string) ([]model.ServiceForm, error) {
	out := []model.ServiceForm{}
	for _, form := range m.forms {
		if form.Email == email {
			out = append(out, form)
		}
	}
	return out, nil
}

func (m *memFormRepository) FindAll(_ context.Context, p model.Pagination) ([]model.ServiceForm, error) {
	p = p.Normalize()
	out := []model.ServiceForm{}
	for _, form := range m.forms {
		if p.Status == "" || form.Status == p.Status {
			out = append(out, form)
		}
	}
	start := p.Offset()
	if start >= len(out) {
		return []model.ServiceForm{}, nil
	}
	end := start + p.Limit
	if end > len(out) {
		end = len(out)
	}
	return out[start:end], nil
}

func (m *memFormRepository) Count(_ context.Context, status string) (int64, error) {
	var n int64
	for _, form := range m.forms {
		if status == "" || form.Status == status {
			n++
		}
	}
	return n, nil
}

func (m *memFormRepository) Update(_ context.Context, id string, upd *model.ServiceFormUpdate) (*model.ServiceForm, error) {
	for i := range m.forms {
		if m.forms[i].ID != id {
			continue
		}
		if upd.Status != nil {
			m.forms[i].Status = *upd.Status
		}
		if upd.AssignedPhotographer != nil {
			m.forms[i].AssignedPhotographer = upd.AssignedPhotographer
		}
		form := m.forms[i]
		return &form, nil
	}
	return nil, repository.ErrNotFound
}

func (m *memFormRepository) Delete(_ context.Context, id string) error {
	for i := range m.forms {
		if m.forms[i].ID == id {
			m.forms = append(m.forms[:i], m.forms[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

// newTestApp wires a real Echo app with the real handler pipeline and
// error handler on top of the in-memory repository.
func newTestApp(t *testing.T) (*echo.Echo, *memFormRepository, *service.AuthService) {
	t.Helper()

	repo := &memFormRepository{}
	srv := &server.Server{Config: &config.Config{}}

	forms := service.NewFormService(repo)
	auth := service.NewAuthService(nil, "test-secret")

	formHandler := NewFormHandler(srv, forms)
	adminHandler := NewAdminFormHandler(srv, forms)
	authMW := middleware.NewAuthMiddleware(srv, auth)
	global := middleware.NewGlobalMiddlewares(srv)

	e := echo.New()
	e.HTTPErrorHandler = global.GlobalErrorHandler

	api := e.Group("/api/v1")
	api.POST("/service-form", Handle(formHandler.Handler, formHandler.CreateServiceForm, http.StatusCreated))
	api.GET("/service-form/email/:email", Handle(formHandler.Handler, formHandler.GetServiceFormsByEmail, http.StatusOK))
	api.GET("/service-form/:id", Handle(formHandler.Handler, formHandler.GetServiceForm, http.StatusOK))

	admin := api.Group("/admin", authMW.RequireAuth, authMW.RequireAdmin)
	admin.GET("/forms", Handle(adminHandler.Handler, adminHandler.ListForms, http.StatusOK))
	admin.PATCH("/forms/:id", Handle(adminHandler.Handler, adminHandler.UpdateForm, http.StatusOK))
	admin.DELETE("/forms/:id", HandleNoContent(adminHandler.Handler, adminHandler.DeleteForm, http.StatusNoContent))

	return e, repo, auth
}

func doJSON(e *echo.Echo, method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

const validFormBody = `{
	"full_name": "João Silva Santos",
	"email": "joao@example.com",
	"phone": "(11) 91234-5678",
	"photo_session_type": "Ensaio Externo",
	"message": "Gostaria de agendar um ensaio externo no parque."
}`

func TestCreateServiceForm_NormalizesAndDefaults(t *testing.T) {
	e, _, _ := newTestApp(t)

	rec := doJSON(e, http.MethodPost, "/api/v1/service-form", validFormBody, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Data    struct {
			ID                   string  `json:"id"`
			Phone                string  `json:"phone"`
			Status               string  `json:"status"`
			AssignedPhotographer *string `json:"assigned_photographer"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.True(t, body.Success)
	assert.Equal(t, "11912345678", body.Data.Phone)
	assert.Equal(t, model.StatusPending, body.Data.Status)
	assert.Nil(t, body.Data.AssignedPhotographer)
	assert.NotEmpty(t, body.Data.ID)
}

func TestCreateServiceForm_AccumulatesViolations(t *testing.T) {
	e, _, _ := newTestApp(t)

	rec := doJSON(e, http.MethodPost, "/api/v1/service-form", `{}`, "")
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body struct {
		Success bool `json:"success"`
		Error   struct {
			Code    string `json:"code"`
			Details []struct {
				Field string `json:"field"`
				Error string `json:"error"`
			} `json:"details"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.False(t, body.Success)
	assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
	require.Len(t, body.Error.Details, 5)

	fields := make([]string, 0, len(body.Error.Details))
	for _, d := range body.Error.Details {
		fields = append(fields, d.Field)
	}
	assert.ElementsMatch(t,
		[]string{"full_name", "email", "phone", "photo_session_type", "message"},
		fields)
}

func TestCreateServiceForm_MalformedBodyIs400(t *testing.T) {
	e, _, _ := newTestApp(t)

	rec := doJSON(e, http.MethodPost, "/api/v1/service-form", `{not json`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetServiceForm_NotFound(t *testing.T) {
	e, _, _ := newTestApp(t)

	rec := doJSON(e, http.MethodGet, "/api/v1/service-form/9f0c8f3a-0000-4000-8000-000000000099", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetServiceForm_InvalidID(t *testing.T) {
	e, _, _ := newTestApp(t)

	rec := doJSON(e, http.MethodGet, "/api/v1/service-form/not-a-uuid", "", "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestGetServiceFormsByEmail_EmptyList(t *testing.T) {
	e, _, _ := newTestApp(t)

	rec := doJSON(e, http.MethodGet, "/api/v1/service-form/email/nobody@example.com", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success bool              `json:"success"`
		Data    []json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.NotNil(t, body.Data)
	assert.Empty(t, body.Data)
}

func adminToken(t *testing.T, auth *service.AuthService) string {
	t.Helper()
	token, err := auth.GenerateToken(&model.AdminUser{ID: "admin-1", Email: "kalita@example.com"})
	require.NoError(t, err)
	return token
}

func TestAdminForms_RequiresAuth(t *testing.T) {
	e, _, _ := newTestApp(t)

	rec := doJSON(e, http.MethodGet, "/api/v1/admin/forms", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(e, http.MethodGet, "/api/v1/admin/forms", "", "garbage-token")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAdminForms_ListWithPagination(t *testing.T) {
	e, _, auth := newTestApp(t)
	token := adminToken(t, auth)

	for i := 0; i < 12; i++ {
		rec := doJSON(e, http.MethodPost, "/api/v1/service-form", validFormBody, "")
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := doJSON(e, http.MethodGet, "/api/v1/admin/forms?page=2&limit=10", "", token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var body struct {
		Success bool              `json:"success"`
		Data    []json.RawMessage `json:"data"`
		Meta    struct {
			Page  int   `json:"page"`
			Limit int   `json:"limit"`
			Total int64 `json:"total"`
			Pages int   `json:"pages"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Len(t, body.Data, 2)
	assert.Equal(t, 2, body.Meta.Page)
	assert.Equal(t, 10, body.Meta.Limit)
	assert.Equal(t, int64(12), body.Meta.Total)
	assert.Equal(t, 2, body.Meta.Pages)
}

func TestAdminForms_ListRejectsUnknownStatus(t *testing.T) {
	e, _, auth := newTestApp(t)

	rec := doJSON(e, http.MethodGet, "/api/v1/admin/forms?status=archived", "", adminToken(t, auth))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestAdminForms_UpdateStatus(t *testing.T) {
	e, repo, auth := newTestApp(t)
	token := adminToken(t, auth)

	rec := doJSON(e, http.MethodPost, "/api/v1/service-form", validFormBody, "")
	require.Equal(t, http.StatusCreated, rec.Code)
	id := repo.forms[0].ID

	rec = doJSON(e, http.MethodPatch, "/api/v1/admin/forms/"+id,
		`{"status":"confirmed","assigned_photographer":"Ana"}`, token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var body struct {
		Data struct {
			Status               string  `json:"status"`
			AssignedPhotographer *string `json:"assigned_photographer"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, model.StatusConfirmed, body.Data.Status)
	require.NotNil(t, body.Data.AssignedPhotographer)
	assert.Equal(t, "Ana", *body.Data.AssignedPhotographer)
}

func TestAdminForms_DeleteThenGone(t *testing.T) {
	e, repo, auth := newTestApp(t)
	token := adminToken(t, auth)

	rec := doJSON(e, http.MethodPost, "/api/v1/service-form", validFormBody, "")
	require.Equal(t, http.StatusCreated, rec.Code)
	id := repo.forms[0].ID

	rec = doJSON(e, http.MethodDelete, "/api/v1/admin/forms/"+id, "", token)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(e, http.MethodDelete, "/api/v1/admin/forms/"+id, "", token)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
