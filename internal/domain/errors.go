package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation error")
	ErrConflict    = errors.New("conflict")
	ErrUnavailable = errors.New("unavailable")
)

// Lifecycle rule violations. These are returned to the caller of the
// project service unchanged and surface as rejected operations.
var (
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrDuplicateMember   = errors.New("duplicate team member")
	ErrMemberNotFound    = errors.New("team member not found")
	ErrMilestoneNotFound = errors.New("milestone not found")
)

// ErrNotificationDelivery marks a failed notification delivery. It is only
// ever logged; it never fails the mutation that produced the notification.
var ErrNotificationDelivery = errors.New("notification delivery failed")

// ValidationError provides programmatic access to field-level validation failures.
// Use errors.Is(err, ErrValidation) for simple checks, or errors.As(err, &verr) to
// access verr.Fields for per-field error details.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		keys = append(keys, field)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, field := range keys {
		parts = append(parts, field+": "+e.Fields[field])
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError returns a *ValidationError for a single field.
func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}
