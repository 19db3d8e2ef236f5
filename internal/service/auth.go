package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/kalitafoto/backend/internal/errs"
	"github.com/kalitafoto/backend/internal/model"
	"github.com/kalitafoto/backend/internal/repository"
)

// TokenTTL is how long an issued admin token stays valid.
const TokenTTL = 24 * time.Hour

// bcryptCost is deliberately above the library default; admin logins
// are rare enough that the extra hashing time does not matter.
const bcryptCost = 12

// AuthService handles admin credentials and JWT issuing.
type AuthService struct {
	admins    repository.AdminUserRepository
	secretKey []byte
}

// NewAuthService wires the auth use cases onto the repository.
func NewAuthService(admins repository.AdminUserRepository, secretKey string) *AuthService {
	return &AuthService{admins: admins, secretKey: []byte(secretKey)}
}

// Claims are the JWT claims carried by admin tokens.
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// Login checks the credentials and returns the account plus a signed
// token. Wrong email and wrong password produce the same 401 so the
// endpoint does not leak which accounts exist.
func (s *AuthService) Login(ctx context.Context, email, password string) (*model.AdminUser, string, error) {
	user, err := s.admins.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", errs.NewUnauthorizedError("Invalid email or password", true)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", errs.NewUnauthorizedError("Invalid email or password", true)
	}

	token, err := s.GenerateToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// CreateAdmin registers a new backoffice account.
func (s *AuthService) CreateAdmin(ctx context.Context, name, email, password string) (*model.AdminUser, error) {
	existing, err := s.admins.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		code := "ADMIN_USER_ALREADY_EXISTS"
		return nil, errs.NewBadRequestError("An admin with this email already exists", true, &code, nil, nil)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, err
	}

	return s.admins.Create(ctx, name, email, string(hash))
}

// GetAdminByID returns the account or a 404 error.
func (s *AuthService) GetAdminByID(ctx context.Context, id string) (*model.AdminUser, error) {
	user, err := s.admins.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errs.NewNotFoundError("Admin user not found", true, nil)
	}
	return user, nil
}

// GenerateToken signs a 24h HS256 token for user.
func (s *AuthService) GenerateToken(user *model.AdminUser) (string, error) {
	now := time.Now()
	claims := Claims{
		Email: user.Email,
		Role:  model.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secretKey)
}

// ParseToken verifies the signature and expiry of a token and returns
// its claims.
func (s *AuthService) ParseToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secretKey, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}
	return claims, nil
}
