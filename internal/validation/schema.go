package validation

import (
	"github.com/kalitafoto/backend/internal/model"
)

// Phone length bounds apply to the string exactly as submitted, mask
// characters included. Digits are only stripped later, at the
// persistence boundary, so "+55 11 91234-5678" counts 17 characters
// here and 13 digits in the database.
const (
	phoneMinLen = 10
	phoneMaxLen = 15
)

// ServiceForm is the intake schema for a session request. It reports
// every violated field, not just the first, and it never mutates the
// input.
func ServiceForm(in *model.ServiceFormInput) error {
	return NewRuleSet().
		Field("full_name", in.FullName,
			MinLen(3, "full name is required and must be at least 3 characters")).
		Field("email", in.Email,
			Email("invalid email address")).
		Field("phone", in.Phone,
			MinLen(phoneMinLen, "invalid phone number"),
			MaxLen(phoneMaxLen, "invalid phone number")).
		Field("photo_session_type", in.PhotoSessionType,
			MinLen(3, "session type is required and must be at least 3 characters")).
		Field("message", in.Message,
			MinLen(5, "message is required and must be at least 5 characters")).
		Validate()
}
