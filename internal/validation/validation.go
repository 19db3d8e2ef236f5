// Package validation checks request payloads before they reach the
// service layer.
//
// Two mechanisms coexist:
//
//   - struct-tag validation via the validator library, used for simple
//     payloads (login, pagination);
//   - a small rule engine (rules.go) for the service-form schema, where
//     every field is checked independently and all violations are
//     reported at once.
//
// Either way the outcome is a set of field-level errors the client can
// map back onto a form.
package validation
