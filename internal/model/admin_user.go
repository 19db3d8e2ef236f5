package model

import "time"

// RoleAdmin is the only role the backoffice knows about today.
const RoleAdmin = "admin"

// AdminUser is a backoffice account that can manage service forms and
// the portfolio. PasswordHash is a bcrypt hash and never serialized.
type AdminUser struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}
