// Package render implements the conditional rendering engine: it walks a
// template document, evaluates predicates against a binding, substitutes
// sanitized values, and emits the final source text. Rendering is pure and
// byte-deterministic; a failing segment aborts with no partial output.
package render

import (
	"fmt"
	"strings"

	"github.com/veverse/contractgen/pkg/template"
)

// Binding resolves the placeholder values and predicates a document refers
// to. Values are expected to be sanitized and emission-ready; the renderer
// substitutes them verbatim.
type Binding interface {
	// Value returns the text bound to a placeholder key. The boolean is
	// false when the key has no binding.
	Value(key string) (string, bool)

	// Predicate evaluates the named boolean predicate. Evaluation errors
	// are fatal and abort rendering.
	Predicate(key string) (bool, error)
}

// Renderer renders template documents.
type Renderer struct{}

// New constructs a Renderer.
func New() *Renderer {
	return &Renderer{}
}

// Render produces the document's output by concatenating its segments in
// order. Literals pass through unchanged, placeholders resolve through the
// binding, and conditional regions render their inner segments atomically
// when their predicate holds and emit nothing otherwise.
//
// Registration-time schema checking makes an unbound placeholder a template
// authoring bug rather than a caller error; it still fails closed here with
// an UnboundPlaceholderError.
func (r *Renderer) Render(doc template.Document, binding Binding) (string, error) {
	if binding == nil {
		return "", fmt.Errorf("render: binding is required")
	}

	var out strings.Builder
	if err := renderSegments(&out, doc.Segments, binding); err != nil {
		return "", err
	}
	return out.String(), nil
}

func renderSegments(out *strings.Builder, segments []template.Segment, binding Binding) error {
	for _, seg := range segments {
		switch s := seg.(type) {
		case template.Literal:
			out.WriteString(s.Text)

		case template.Placeholder:
			value, ok := binding.Value(s.Key)
			if !ok {
				return &UnboundPlaceholderError{Key: s.Key}
			}
			out.WriteString(value)

		case template.Conditional:
			include, err := binding.Predicate(s.Key)
			if err != nil {
				return &PredicateError{Key: s.Key, Err: err}
			}
			if !include {
				continue
			}
			// Render the region into a scratch buffer first so a
			// failing inner segment can never leave a partial block
			// in the output.
			var inner strings.Builder
			if err := renderSegments(&inner, s.Inner, binding); err != nil {
				return err
			}
			out.WriteString(inner.String())

		default:
			return fmt.Errorf("render: unknown segment type %T", seg)
		}
	}
	return nil
}
