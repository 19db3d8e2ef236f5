package repository

import (
	"context"
	"errors"

	"github.com/kalitafoto/backend/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AdminUserRepository persists backoffice accounts.
type AdminUserRepository interface {
	Create(ctx context.Context, name, email, passwordHash string) (*model.AdminUser, error)
	FindByEmail(ctx context.Context, email string) (*model.AdminUser, error)
	FindByID(ctx context.Context, id string) (*model.AdminUser, error)
}

type pgAdminUserRepository struct {
	db *pgxpool.Pool
}

// NewAdminUserRepository returns the PostgreSQL-backed implementation.
func NewAdminUserRepository(db *pgxpool.Pool) AdminUserRepository {
	return &pgAdminUserRepository{db: db}
}

func (r *pgAdminUserRepository) Create(ctx context.Context, name, email, passwordHash string) (*model.AdminUser, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO admin_users (name, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id, name, email, password_hash, created_at`,
		name, email, passwordHash,
	)
	return scanAdminUser(row)
}

// FindByEmail returns (nil, nil) when no account matches email.
func (r *pgAdminUserRepository) FindByEmail(ctx context.Context, email string) (*model.AdminUser, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, name, email, password_hash, created_at
		FROM admin_users WHERE email = $1`, email)

	user, err := scanAdminUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// FindByID returns (nil, nil) when no account matches id.
func (r *pgAdminUserRepository) FindByID(ctx context.Context, id string) (*model.AdminUser, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, name, email, password_hash, created_at
		FROM admin_users WHERE id = $1`, id)

	user, err := scanAdminUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func scanAdminUser(row pgx.Row) (*model.AdminUser, error) {
	var u model.AdminUser
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
