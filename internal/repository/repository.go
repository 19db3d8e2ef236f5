// Package repository contains the persistence layer.
//
// Repositories speak pgx to PostgreSQL and expose interfaces so the
// service layer can be tested against in-memory fakes. Write paths own
// data hygiene: phone numbers are normalized to digits and lifecycle
// defaults are applied here, never in handlers or services.
package repository

import "errors"

// ErrNotFound is returned by mutating operations when the target row
// does not exist. Read operations return (nil, nil) on a miss instead.
var ErrNotFound = errors.New("repository: record not found")
