package render

import "fmt"

// UnboundPlaceholderError reports a placeholder key with no value binding.
// It indicates a registry or template authoring bug: registration-time
// schema checking should make this unreachable.
type UnboundPlaceholderError struct {
	Key string
}

func (e *UnboundPlaceholderError) Error() string {
	return fmt.Sprintf("render: placeholder %q has no bound value", e.Key)
}

// PredicateError reports a predicate that failed to evaluate. Like an
// unbound placeholder, this is an internal invariant violation and aborts
// rendering with no partial output.
type PredicateError struct {
	Key string
	Err error
}

func (e *PredicateError) Error() string {
	return fmt.Sprintf("render: predicate %q: %v", e.Key, e.Err)
}

func (e *PredicateError) Unwrap() error {
	return e.Err
}
