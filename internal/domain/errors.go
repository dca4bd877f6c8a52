package domain

import (
	"errors"
	"sort"
	"strings"
)

// ErrNotFound is returned by repo and service functions when the requested
// trip or itinerary item does not exist in the stored collection.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing required field, end date before start date).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// FieldErrors maps a form field name to a human-readable error message.
// An empty map means the form is valid. All failing fields are reported at
// once — validation is never fail-fast, so the user can fix every problem in
// a single pass.
type FieldErrors map[string]string

// ValidationError is the error form of a non-empty FieldErrors.
// errors.Is(err, ErrValidation) matches it, so callers can branch on the
// error class, while errors.As extracts the field map for per-field rendering.
type ValidationError struct {
	Fields FieldErrors
}

// NewValidationError wraps a field map in a *ValidationError.
func NewValidationError(fields FieldErrors) *ValidationError {
	return &ValidationError{Fields: fields}
}

// Error joins the field messages in field-name order for a stable string.
func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation error: " + strings.Join(parts, "; ")
}

// Is makes errors.Is(err, ErrValidation) true for any ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
