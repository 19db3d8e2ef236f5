// Package handler is the HTTP entry point after the router.
//
// It parses requests, runs input validation through the validation
// package, calls the service layer and shapes responses into the
// {"success":true,...} envelope.
package handler
