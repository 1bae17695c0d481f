package template

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrNotFound is wrapped by Lookup when no template carries the requested
// name.
var ErrNotFound = errors.New("template not found")

type entry struct {
	doc    Document
	schema Schema
}

// Registry stores templates by name. It is intended to be populated during
// process initialization and treated as read-only afterwards; the mutex only
// guards against racy registration in tests and init-time wiring.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]entry
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]entry),
	}
}

// Register adds a template under name after statically verifying every
// placeholder and predicate key in the document against the schema.
// Duplicate names and unresolvable keys fail registration.
func (r *Registry) Register(name string, doc Document, schema Schema) error {
	if name == "" {
		return fmt.Errorf("template: template name is required")
	}
	if err := verifySegments(doc.Segments, schema); err != nil {
		return fmt.Errorf("template: register %q: %w", name, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[name]; exists {
		return fmt.Errorf("template: template %q already registered", name)
	}
	r.entries[name] = entry{doc: doc, schema: schema}
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(name string, doc Document, schema Schema) {
	if err := r.Register(name, doc, schema); err != nil {
		panic(err)
	}
}

// Lookup retrieves a template by name, wrapping ErrNotFound when missing.
func (r *Registry) Lookup(name string) (Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[name]
	if !ok {
		return Document{}, fmt.Errorf("template: %q: %w", name, ErrNotFound)
	}
	return e.doc, nil
}

// SchemaFor returns the input schema a template was registered with.
func (r *Registry) SchemaFor(name string) (Schema, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[name]
	if !ok {
		return Schema{}, fmt.Errorf("template: %q: %w", name, ErrNotFound)
	}
	return e.schema, nil
}

// List returns a sorted list of registered template names.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether a template is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.entries[name]
	return ok
}

func verifySegments(segments []Segment, schema Schema) error {
	for _, seg := range segments {
		switch s := seg.(type) {
		case Literal:
		case Placeholder:
			if !schema.hasValue(s.Key) {
				return fmt.Errorf("placeholder %q is not declared by the input schema", s.Key)
			}
		case Conditional:
			if !schema.hasPredicate(s.Key) {
				return fmt.Errorf("predicate %q is not declared by the input schema", s.Key)
			}
			if err := verifySegments(s.Inner, schema); err != nil {
				return err
			}
		default:
			return fmt.Errorf("unknown segment type %T", seg)
		}
	}
	return nil
}
