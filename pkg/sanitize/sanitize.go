// Package sanitize validates and escapes individual specification values
// before they are interpolated into contract source. Every function is pure;
// errors always carry the offending field name.
package sanitize

import (
	"html"
	"strings"
	"unicode"

	"github.com/holiman/uint256"
	"github.com/microcosm-cc/bluemonday"
)

// NumericWidthBits is the width of the target numeric type. Values that do
// not fit an unsigned integer of this width are rejected.
const NumericWidthBits = 256

// MaxSymbolLength caps ticker symbols; longer values are almost always a
// pasted name rather than a symbol.
const MaxSymbolLength = 11

var htmlStripper = bluemonday.StrictPolicy()

// Uint256 parses a decimal string into an EVM-width unsigned integer. It
// rejects empty input, signs, non-digit characters, and values wider than
// NumericWidthBits.
func Uint256(field, raw string) (*uint256.Int, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, ruleErrorf(field, "value is required")
	}
	if strings.HasPrefix(trimmed, "-") {
		return nil, ruleErrorf(field, "value must not be negative")
	}
	for _, r := range trimmed {
		if r < '0' || r > '9' {
			return nil, ruleErrorf(field, "value %q is not a non-negative integer", raw)
		}
	}
	value, err := uint256.FromDecimal(trimmed)
	if err != nil {
		return nil, ruleErrorf(field, "value does not fit %d bits: %v", NumericWidthBits, err)
	}
	return value, nil
}

// Identifier validates a contract-language identifier: non-empty, starts
// with a letter or underscore, continues with letters, digits or
// underscores, and is not a reserved word.
func Identifier(field, raw string) (string, error) {
	if raw == "" {
		return "", ruleErrorf(field, "identifier is required")
	}
	for i, r := range raw {
		switch {
		case r == '_', r < 128 && unicode.IsLetter(r):
		case r < 128 && unicode.IsDigit(r):
			if i == 0 {
				return "", ruleErrorf(field, "identifier %q must not start with a digit", raw)
			}
		default:
			return "", ruleErrorf(field, "identifier %q contains illegal character %q", raw, r)
		}
	}
	if IsReservedWord(raw) {
		return "", ruleErrorf(field, "identifier %q is a reserved word", raw)
	}
	return raw, nil
}

// Symbol validates a ticker symbol: non-empty, alphanumeric, at most
// MaxSymbolLength characters.
func Symbol(field, raw string) (string, error) {
	if raw == "" {
		return "", ruleErrorf(field, "symbol is required")
	}
	if len(raw) > MaxSymbolLength {
		return "", ruleErrorf(field, "symbol %q exceeds %d characters", raw, MaxSymbolLength)
	}
	for _, r := range raw {
		if r >= 128 || (!unicode.IsLetter(r) && !unicode.IsDigit(r)) {
			return "", ruleErrorf(field, "symbol %q must be alphanumeric", raw)
		}
	}
	return raw, nil
}

// CommentText normalizes free text for embedding in a single-line comment.
// HTML markup is stripped (descriptions arrive from a web form), runs of
// line breaks and other control characters collapse into a single space, and
// the result is trimmed. The boolean reports whether normalization changed
// the input, so callers can surface a warning.
func CommentText(raw string) (string, bool) {
	stripped := html.UnescapeString(htmlStripper.Sanitize(raw))

	var b strings.Builder
	b.Grow(len(stripped))
	for _, r := range stripped {
		if unicode.IsControl(r) {
			b.WriteRune(' ')
			continue
		}
		b.WriteRune(r)
	}
	clean := strings.Join(strings.Fields(b.String()), " ")
	return clean, clean != raw
}

// StringLiteral validates text destined for a double-quoted string literal:
// no control characters and no template delimiters. Quoting-sensitive
// characters are allowed here and escaped later by EscapeString.
func StringLiteral(field, raw string) (string, error) {
	if raw == "" {
		return "", ruleErrorf(field, "value is required")
	}
	for _, r := range raw {
		if unicode.IsControl(r) {
			return "", ruleErrorf(field, "value must not contain control characters")
		}
	}
	if strings.Contains(raw, "{{") || strings.Contains(raw, "}}") {
		return "", ruleErrorf(field, "value must not contain template delimiters")
	}
	return raw, nil
}

// EscapeString escapes backslashes and double quotes per the target
// language's string-literal rules. Input is assumed to have passed
// StringLiteral validation.
func EscapeString(raw string) string {
	return stringEscaper.Replace(raw)
}

var stringEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)
