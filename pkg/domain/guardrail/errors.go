package guardrail

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDefinition  = errors.New("invalid guardrail definition")
	ErrIdentifierRequired = errors.New("guardrail identifier is required")
	ErrEmptyContent       = errors.New("content to evaluate is empty")
	ErrDraftDelete        = errors.New("DRAFT cannot be deleted alone; omit the version to delete the guardrail")
)

type fieldError struct {
	Field  string
	Reason string
}

func (e *fieldError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrInvalidDefinition, e.Field, e.Reason)
}

func (e *fieldError) Unwrap() error {
	return ErrInvalidDefinition
}

func invalid(field, format string, args ...any) error {
	return &fieldError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
