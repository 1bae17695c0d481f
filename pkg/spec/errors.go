package spec

import (
	"fmt"
	"strings"
)

// FieldError describes a single violated validation rule with the field it
// applies to.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("spec: field %q: %s", e.Field, e.Message)
}

// ValidationErrors aggregates every violated rule found in one validation
// pass so callers can fix the configuration in a single round trip.
type ValidationErrors []FieldError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "spec: validation failed"
	}
	messages := make([]string, len(e))
	for i, fieldErr := range e {
		messages[i] = fieldErr.Error()
	}
	return strings.Join(messages, "; ")
}
