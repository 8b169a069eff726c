package types

import (
	"errors"
	"fmt"
)

var (
	// ErrSchemaViolation marks flow input that does not match the flow's input schema.
	ErrSchemaViolation = errors.New("schema violation")
	// ErrOutputSchemaViolation marks model output that does not match the flow's output schema.
	ErrOutputSchemaViolation = errors.New("output schema violation")
	// ErrModelInvocation covers transport, quota and protocol failures of the external model.
	ErrModelInvocation = errors.New("model invocation failed")
	// ErrModelTimeout is returned when the model call exceeds the configured deadline.
	ErrModelTimeout = errors.New("model invocation timed out")
	// ErrToolInvocation is reported back to the model when a tool cannot serve a call.
	ErrToolInvocation = errors.New("tool invocation failed")

	ErrFlowNotFound = errors.New("flow not found")
	ErrNotFound     = errors.New("not found")
)

// FieldError identifies the offending field and the constraint it broke.
// Kind is one of ErrSchemaViolation or ErrOutputSchemaViolation.
type FieldError struct {
	Kind       error
	Field      string
	Constraint string
}

func NewFieldError(kind error, field, constraint string) *FieldError {
	return &FieldError{Kind: kind, Field: field, Constraint: constraint}
}

func (e *FieldError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%v: %s", e.Kind, e.Constraint)
	}
	return fmt.Sprintf("%v: field %q %s", e.Kind, e.Field, e.Constraint)
}

func (e *FieldError) Unwrap() error {
	return e.Kind
}
