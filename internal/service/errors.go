package service

import (
	"errors"
	"fmt"
	"strings"
)

// Centralized service layer errors.
// All failures returned by service methods are either one of these sentinels
// or a *ValidationError, so error handling in the HTTP layer stays
// predictable.
var (
	ErrUserNotFound  = errors.New("user not found")
	ErrGroupNotFound = errors.New("study group not found")

	// ErrSubjectOwned is the one non-trivial conflict in the system: a
	// user may own at most one study group per subject.
	ErrSubjectOwned = errors.New("user already owns a study group with this subject")
)

// FieldError reports why a single request field was rejected.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError is returned when a request fails field-level validation.
// It rejects the request before any persistence occurs.
type ValidationError struct {
	Fields []FieldError
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = fmt.Sprintf("%s %s", f.Field, f.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// newFieldError builds a single-field ValidationError.
func newFieldError(field, message string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Message: message}}}
}
