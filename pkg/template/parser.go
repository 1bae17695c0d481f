package template

import (
	"fmt"
	"strings"
)

const (
	openDelim  = "{{"
	closeDelim = "}}"
	ifMarker   = "#if"
	endMarker  = "/if"
)

// Parse converts template text into a Document. The text format uses
// {{key}} for placeholders and {{#if key}}...{{/if}} for conditional
// regions; regions nest. Unterminated or unbalanced markers fail parsing
// with the byte offset of the offending marker.
func Parse(text string) (Document, error) {
	p := &parser{input: text}
	segments, err := p.parseSegments(0)
	if err != nil {
		return Document{}, err
	}
	return Document{Segments: segments}, nil
}

// MustParse panics on parse failure. Useful for init-time template wiring.
func MustParse(text string) Document {
	doc, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return doc
}

type parser struct {
	input    string
	pos      int
	lastOpen int
}

// parseSegments consumes segments until EOF or, when depth > 0, a matching
// {{/if}} marker. It returns with p.pos advanced past consumed input.
func (p *parser) parseSegments(depth int) ([]Segment, error) {
	var segments []Segment
	var literal strings.Builder

	flush := func() {
		if literal.Len() > 0 {
			segments = append(segments, Literal{Text: literal.String()})
			literal.Reset()
		}
	}

	for p.pos < len(p.input) {
		next := strings.Index(p.input[p.pos:], openDelim)
		if next < 0 {
			literal.WriteString(p.input[p.pos:])
			p.pos = len(p.input)
			break
		}
		literal.WriteString(p.input[p.pos : p.pos+next])
		markerStart := p.pos + next
		p.pos = markerStart + len(openDelim)

		end := strings.Index(p.input[p.pos:], closeDelim)
		if end < 0 {
			return nil, fmt.Errorf("template: parse: unterminated marker at offset %d", markerStart)
		}
		body := strings.TrimSpace(p.input[p.pos : p.pos+end])
		p.pos += end + len(closeDelim)

		switch {
		case body == endMarker:
			if depth == 0 {
				return nil, fmt.Errorf("template: parse: unmatched {{/if}} at offset %d", markerStart)
			}
			flush()
			return segments, nil

		case strings.HasPrefix(body, ifMarker):
			key := strings.TrimSpace(strings.TrimPrefix(body, ifMarker))
			if err := validKey(key); err != nil {
				return nil, fmt.Errorf("template: parse: conditional at offset %d: %w", markerStart, err)
			}
			flush()
			p.lastOpen = markerStart
			inner, err := p.parseSegments(depth + 1)
			if err != nil {
				return nil, err
			}
			segments = append(segments, Conditional{Key: key, Inner: inner})

		default:
			if err := validKey(body); err != nil {
				return nil, fmt.Errorf("template: parse: placeholder at offset %d: %w", markerStart, err)
			}
			flush()
			segments = append(segments, Placeholder{Key: body})
		}
	}

	if depth > 0 {
		return nil, fmt.Errorf("template: parse: unclosed conditional at offset %d", p.lastOpen)
	}
	flush()
	return segments, nil
}

func validKey(key string) error {
	if key == "" {
		return fmt.Errorf("key is required")
	}
	for _, r := range key {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
		default:
			return fmt.Errorf("key %q contains illegal character %q", key, r)
		}
	}
	return nil
}
