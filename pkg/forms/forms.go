// Package forms implements the declarative form-validation pipeline. Each
// form is a static ordered list of field descriptors; validation evaluates
// them deterministically, stopping at the first failing rule within a field
// while accumulating errors across fields.
package forms

import (
	"context"
	"html"
	"net/url"
	"strings"
)

// FieldError names the field that failed and the message to show.
type FieldError struct {
	Field   string
	Message string
}

// Errors is the ordered list of per-field failures for one submission.
type Errors []FieldError

// Has reports whether any field named field failed.
func (e Errors) Has(field string) bool {
	for _, fe := range e {
		if fe.Field == field {
			return true
		}
	}
	return false
}

// CheckFunc is a custom rule evaluated after the built-in rules. It receives
// the sanitized value and the full submission (for cross-field rules like
// password confirmation) and returns a message, or "" when the value passes.
type CheckFunc func(ctx context.Context, value string, fields url.Values) string

// Field describes the rules for one form field, applied in a fixed order:
// trim, length bounds, character class, escaping, custom check.
type Field struct {
	Name string

	// Trim removes surrounding whitespace before any rule runs.
	Trim bool

	// MinLen/MaxLen bound the (pre-escape) length. MaxLen 0 means unbounded.
	MinLen int
	MaxLen int
	// LengthMessage is reported when the length bounds fail.
	LengthMessage string

	// Alphanumeric restricts the value to ASCII letters and digits.
	Alphanumeric bool
	// AlphanumericMessage is reported when the character class fails.
	AlphanumericMessage string

	// Escape HTML-escapes markup-significant characters in the clean value.
	Escape bool

	// Check runs last and only if the built-in rules passed.
	Check CheckFunc
}

// Form is a static ordered list of field descriptors.
type Form struct {
	Fields []Field
}

// Validate runs the pipeline over a submission. It returns the sanitized
// values for every field (failed fields included, so forms can echo safe
// input) and the accumulated errors in field order. An empty Errors means
// the submission passed and the sanitized values must replace the raw input.
func (f Form) Validate(ctx context.Context, raw url.Values) (map[string]string, Errors) {
	clean := make(map[string]string, len(f.Fields))
	var errs Errors

	for _, field := range f.Fields {
		value := raw.Get(field.Name)
		if field.Trim {
			value = strings.TrimSpace(value)
		}

		message := ""
		switch {
		case field.MinLen > 0 && len(value) < field.MinLen:
			message = field.LengthMessage
		case field.MaxLen > 0 && len(value) > field.MaxLen:
			message = field.LengthMessage
		case field.Alphanumeric && !isAlphanumeric(value):
			message = field.AlphanumericMessage
		}

		if field.Escape {
			value = html.EscapeString(value)
		}

		if message == "" && field.Check != nil {
			message = field.Check(ctx, value, raw)
		}

		clean[field.Name] = value
		if message != "" {
			errs = append(errs, FieldError{Field: field.Name, Message: message})
		}
	}

	return clean, errs
}

func isAlphanumeric(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' {
			continue
		}
		return false
	}
	return true
}
