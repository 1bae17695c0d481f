// Package template models contract templates as trees of typed segments and
// stores them in a process-wide registry. Documents are parsed and verified
// against their input schema once, at registration, so rendering never
// discovers a malformed template.
package template

// Segment is one unit of a template document: literal text, a typed
// placeholder, or a conditional region wrapping nested segments.
type Segment interface {
	segment()
}

// Literal is verbatim template text.
type Literal struct {
	Text string
}

// Placeholder substitutes the sanitized value bound to Key.
type Placeholder struct {
	Key string
}

// Conditional emits Inner only when the predicate named by Key evaluates to
// true against the specification. Inner segments may themselves be
// conditionals, enabling nesting.
type Conditional struct {
	Key   string
	Inner []Segment
}

func (Literal) segment()     {}
func (Placeholder) segment() {}
func (Conditional) segment() {}

// Document is an ordered sequence of top-level segments. Documents are
// immutable once registered.
type Document struct {
	Segments []Segment
}

// Schema declares the placeholder and predicate keys a template may
// reference. Registration verifies every key in the document resolves here.
type Schema struct {
	Values     []string
	Predicates []string
}

func (s Schema) hasValue(key string) bool {
	for _, v := range s.Values {
		if v == key {
			return true
		}
	}
	return false
}

func (s Schema) hasPredicate(key string) bool {
	for _, p := range s.Predicates {
		if p == key {
			return true
		}
	}
	return false
}
