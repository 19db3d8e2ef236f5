package errs

import "strings"

// FieldError is a single field-level validation failure.
type FieldError struct {
	// Field is the JSON field the error relates to (e.g. "email").
	Field string `json:"field"`

	// Error is the human-readable message for that field.
	Error string `json:"error"`
}

// ActionType names what the client should do after receiving the error.
type ActionType string

const (
	// ActionTypeRedirect tells the client to navigate elsewhere; Value
	// holds the target URL or route.
	ActionTypeRedirect ActionType = "redirect"
)

// Action is an optional client instruction attached to an error.
type Action struct {
	Type    ActionType `json:"type"`
	Message string     `json:"message"`
	Value   string     `json:"value"`
}

// HTTPError is the error type every handler and middleware ultimately
// produces. The global error handler serializes it inside the
// {"success":false,"error":{...}} envelope.
type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`

	// Override lets middleware decide whether the message is safe to
	// show verbatim to end users.
	Override bool `json:"-"`

	// Errors holds field-level validation details, if any.
	Errors []FieldError `json:"details,omitempty"`

	// Action is an optional client instruction (redirect, etc.).
	Action *Action `json:"action,omitempty"`
}

func (e *HTTPError) Error() string {
	return e.Message
}

// Is reports whether target is also an *HTTPError. It matches on type
// only, not on Code or Status.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)
	return ok
}

// WithMessage returns a copy of the error with Message replaced.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	return &HTTPError{
		Code:     e.Code,
		Message:  message,
		Status:   e.Status,
		Override: e.Override,
		Errors:   e.Errors,
		Action:   e.Action,
	}
}

// MakeUpperCaseWithUnderscores converts a status text into a stable
// machine code, e.g. "Bad Request" -> "BAD_REQUEST".
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
