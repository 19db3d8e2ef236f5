// Package service implements the business rules between handlers and
// repositories: not-found translation, lifecycle status checks, admin
// credentials and token issuing, and portfolio folder conventions.
package service
