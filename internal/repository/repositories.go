package repository

import "github.com/jackc/pgx/v5/pgxpool"

// Repositories bundles every repository for injection into the service
// layer.
type Repositories struct {
	ServiceForms ServiceFormRepository
	AdminUsers   AdminUserRepository
}

// NewRepositories wires all repositories onto the shared pool.
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		ServiceForms: NewServiceFormRepository(db),
		AdminUsers:   NewAdminUserRepository(db),
	}
}
