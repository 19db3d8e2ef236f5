// Package sqlerr normalizes database driver errors.
//
// It maps SQLSTATE codes from the Postgres driver into application
// errors with client-safe messages, e.g. a unique violation on
// admin_users.email becomes a 400 "An admin user with this Email
// already exists".
package sqlerr
