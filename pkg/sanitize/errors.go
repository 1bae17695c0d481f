package sanitize

import "fmt"

// RuleError reports a single sanitization rule violation together with the
// offending field. Callers aggregating validation results can unwrap it with
// errors.As to recover the bare rule text.
type RuleError struct {
	Field string
	Rule  string
}

func (e *RuleError) Error() string {
	return fmt.Sprintf("sanitize: field %q: %s", e.Field, e.Rule)
}

func ruleErrorf(field, format string, args ...any) *RuleError {
	return &RuleError{Field: field, Rule: fmt.Sprintf(format, args...)}
}
