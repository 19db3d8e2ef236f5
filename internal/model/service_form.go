// Package model holds the domain entities persisted and served by the
// API.
package model

import "time"

// Service form lifecycle statuses. A form starts as pending and moves
// through the lifecycle as the studio confirms, shoots and delivers the
// session.
const (
	StatusPending    = "pending"
	StatusConfirmed  = "confirmed"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

// Statuses lists every accepted lifecycle value, in order.
var Statuses = []string{
	StatusPending,
	StatusConfirmed,
	StatusInProgress,
	StatusCompleted,
	StatusCancelled,
}

// IsValidStatus reports whether s is one of the accepted lifecycle
// values.
func IsValidStatus(s string) bool {
	for _, v := range Statuses {
		if s == v {
			return true
		}
	}
	return false
}

// ServiceFormInput is a validated session request as submitted by a
// customer, before persistence. Phone still carries whatever mask the
// customer typed; it is normalized at the persistence boundary.
type ServiceFormInput struct {
	FullName             string  `json:"full_name"`
	Email                string  `json:"email"`
	Phone                string  `json:"phone"`
	PhotoSessionType     string  `json:"photo_session_type"`
	Message              string  `json:"message"`
	Status               string  `json:"status,omitempty"`
	AssignedPhotographer *string `json:"assigned_photographer"`
}

// ServiceForm is a persisted session request. Phone is digits-only,
// Status is never empty and AssignedPhotographer is an explicit
// string-or-null.
type ServiceForm struct {
	ID                   string    `json:"id"`
	FullName             string    `json:"full_name"`
	Email                string    `json:"email"`
	Phone                string    `json:"phone"`
	PhotoSessionType     string    `json:"photo_session_type"`
	Message              string    `json:"message"`
	Status               string    `json:"status"`
	AssignedPhotographer *string   `json:"assigned_photographer"`
	CreatedAt            time.Time `json:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt"`
}

// ServiceFormUpdate is a partial update; nil fields are left untouched.
type ServiceFormUpdate struct {
	FullName             *string `json:"full_name,omitempty"`
	Email                *string `json:"email,omitempty"`
	Phone                *string `json:"phone,omitempty"`
	PhotoSessionType     *string `json:"photo_session_type,omitempty"`
	Message              *string `json:"message,omitempty"`
	Status               *string `json:"status,omitempty"`
	AssignedPhotographer *string `json:"assigned_photographer,omitempty"`
}

// Pagination selects a page of results. Page is 1-based.
type Pagination struct {
	Page   int
	Limit  int
	Status string // optional lifecycle filter, empty means all
}

// DefaultPage and DefaultLimit apply when the caller omits pagination.
const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// Normalize fills in defaults for unset pagination values.
func (p Pagination) Normalize() Pagination {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	return p
}

// Offset returns the number of records to skip for this page.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.Limit
}
