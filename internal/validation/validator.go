package validation

import "github.com/go-playground/validator/v10"

// validate is the shared validator instance; it caches struct metadata
// so reuse matters.
var validate = validator.New()

// Struct runs tag-based validation on v. Request types whose rules fit
// validator tags call this from their Validate method.
func Struct(v any) error {
	return validate.Struct(v)
}
