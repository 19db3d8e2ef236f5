// Package errs defines the error types the API returns to clients.
//
// Every failure that reaches the HTTP boundary is expressed as an
// *HTTPError carrying a machine-readable code, a human-readable message
// and, for validation failures, per-field details the client can use to
// re-display a form.
package errs
