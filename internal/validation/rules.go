package validation

import (
	"regexp"
	"unicode/utf8"
)

// Predicate checks a single string value.
type Predicate func(value string) bool

// Rule pairs a predicate with the message reported when it fails.
type Rule struct {
	Check   Predicate
	Message string
}

type fieldRules struct {
	field string
	value string
	rules []Rule
}

// RuleSet is an ordered collection of per-field rules. Fields are
// evaluated independently so a violation in one field never hides a
// violation in another; within a field, rules run in order and the
// first failure wins.
type RuleSet struct {
	fields []fieldRules
}

// NewRuleSet returns an empty RuleSet.
func NewRuleSet() *RuleSet {
	return &RuleSet{}
}

// Field registers rules for a named field value.
func (rs *RuleSet) Field(name, value string, rules ...Rule) *RuleSet {
	rs.fields = append(rs.fields, fieldRules{field: name, value: value, rules: rules})
	return rs
}

// Validate evaluates every field and accumulates failures. It returns
// nil when everything passes, otherwise a CustomValidationErrors with
// one entry per violated field.
func (rs *RuleSet) Validate() error {
	var errs CustomValidationErrors
	for _, f := range rs.fields {
		for _, r := range f.rules {
			if !r.Check(f.value) {
				errs = append(errs, CustomValidationError{Field: f.field, Message: r.Message})
				break
			}
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// MinLen requires at least n characters. Missing fields bind to the
// empty string, so this also covers "required".
func MinLen(n int, message string) Rule {
	return Rule{
		Check:   func(v string) bool { return utf8.RuneCountInString(v) >= n },
		Message: message,
	}
}

// MaxLen allows at most n characters.
func MaxLen(n int, message string) Rule {
	return Rule{
		Check:   func(v string) bool { return utf8.RuneCountInString(v) <= n },
		Message: message,
	}
}

// emailRegex requires a local part, a single @ and a dotted domain.
// Bare hostnames ("user@domain") are rejected on purpose: customers
// typing their email without a TLD is always a typo.
var emailRegex = regexp.MustCompile(`^[A-Za-z0-9!#$%&'*+/=?^_` + "`" + `{|}~.\-]+@[A-Za-z0-9\-]+(\.[A-Za-z0-9\-]+)+$`)

// Email requires a syntactically plausible email address.
func Email(message string) Rule {
	return Rule{
		Check:   func(v string) bool { return emailRegex.MatchString(v) },
		Message: message,
	}
}
