package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/kalitafoto/backend/internal/errs"
	"github.com/kalitafoto/backend/internal/model"
)

type fakeAdminRepository struct {
	users []model.AdminUser
	seq   int
}

func (f *fakeAdminRepository) Create(_ context.Context, name, email, passwordHash string) (*model.AdminUser, error) {
	f.seq++
	user := model.AdminUser{
		ID:           fmt.Sprintf("admin-%d", f.seq),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
	f.users = append(f.users, user)
	return &user, nil
}

func (f *fakeAdminRepository) FindByEmail(_ context.Context, email string) (*model.AdminUser, error) {
	for i := range f.users {
		if f.users[i].Email == email {
			user := f.users[i]
			return &user, nil
		}
	}
	return nil, nil
}

func (f *fakeAdminRepository) FindByID(_ context.Context, id string) (*model.AdminUser, error) {
	for i := range f.users {
		if f.users[i].ID == id {
			user := f.users[i]
			return &user, nil
		}
	}
	return nil, nil
}

const testSecret = "test-secret-key"

func seededAuthService(t *testing.T) (*AuthService, *model.AdminUser) {
	t.Helper()
	repo := &fakeAdminRepository{}
	svc := NewAuthService(repo, testSecret)

	// Low cost keeps the test fast; production uses cost 12.
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.MinCost)
	require.NoError(t, err)

	user, err := repo.Create(context.Background(), "Kalita", "kalita@example.com", string(hash))
	require.NoError(t, err)

	return svc, user
}

func TestAuthService_Login(t *testing.T) {
	svc, user := seededAuthService(t)

	got, token, err := svc.Login(context.Background(), "kalita@example.com", "s3cret-pass")
	require.NoError(t, err)

	assert.Equal(t, user.ID, got.ID)
	assert.NotEmpty(t, token)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, _ := seededAuthService(t)

	_, _, err := svc.Login(context.Background(), "kalita@example.com", "wrong")

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 401, httpErr.Status)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc, _ := seededAuthService(t)

	_, _, err := svc.Login(context.Background(), "nobody@example.com", "s3cret-pass")

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 401, httpErr.Status)
	// Same message as a wrong password so the endpoint does not leak
	// which accounts exist.
	assert.Equal(t, "Invalid email or password", httpErr.Message)
}

func TestAuthService_CreateAdmin_DuplicateEmail(t *testing.T) {
	svc, _ := seededAuthService(t)

	_, err := svc.CreateAdmin(context.Background(), "Other", "kalita@example.com", "whatever")

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 400, httpErr.Status)
	assert.Equal(t, "ADMIN_USER_ALREADY_EXISTS", httpErr.Code)
}

func TestAuthService_TokenRoundTrip(t *testing.T) {
	svc, user := seededAuthService(t)

	token, err := svc.GenerateToken(user)
	require.NoError(t, err)

	claims, err := svc.ParseToken(token)
	require.NoError(t, err)

	assert.Equal(t, user.ID, claims.Subject)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, model.RoleAdmin, claims.Role)

	ttl := time.Until(claims.ExpiresAt.Time)
	assert.InDelta(t, TokenTTL.Seconds(), ttl.Seconds(), 60)
}

func TestAuthService_ParseToken_WrongSecret(t *testing.T) {
	svc, user := seededAuthService(t)
	other := NewAuthService(&fakeAdminRepository{}, "different-secret")

	token, err := svc.GenerateToken(user)
	require.NoError(t, err)

	_, err = other.ParseToken(token)
	assert.Error(t, err)
}
