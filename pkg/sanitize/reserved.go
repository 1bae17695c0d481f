package sanitize

import "strings"

// reservedWords covers Solidity keywords and reserved future keywords that
// must never be accepted as a contract identifier.
var reservedWords = map[string]struct{}{
	"abstract": {}, "address": {}, "after": {}, "alias": {}, "anonymous": {},
	"apply": {}, "as": {}, "assembly": {}, "auto": {}, "bool": {},
	"break": {}, "byte": {}, "bytes": {}, "calldata": {}, "case": {},
	"catch": {}, "constant": {}, "constructor": {}, "continue": {},
	"contract": {}, "copyof": {}, "default": {}, "define": {}, "delete": {},
	"do": {}, "else": {}, "emit": {}, "enum": {}, "event": {}, "external": {},
	"fallback": {}, "false": {}, "final": {}, "fixed": {}, "for": {},
	"function": {}, "if": {}, "immutable": {}, "implements": {}, "import": {},
	"in": {}, "indexed": {}, "inline": {}, "int": {}, "interface": {},
	"internal": {}, "is": {}, "let": {}, "library": {}, "macro": {},
	"mapping": {}, "match": {}, "memory": {}, "modifier": {}, "mutable": {},
	"new": {}, "null": {}, "of": {}, "override": {}, "partial": {},
	"payable": {}, "pragma": {}, "private": {}, "promise": {}, "public": {},
	"pure": {}, "receive": {}, "reference": {}, "relocatable": {},
	"return": {}, "returns": {}, "revert": {}, "sealed": {}, "sizeof": {},
	"static": {}, "storage": {}, "string": {}, "struct": {}, "supports": {},
	"switch": {}, "throw": {}, "true": {}, "try": {}, "type": {},
	"typedef": {}, "typeof": {}, "ufixed": {}, "uint": {}, "unchecked": {},
	"using": {}, "var": {}, "view": {}, "virtual": {}, "while": {},
}

// IsReservedWord reports whether the word may not be used as an identifier in
// generated source. Sized integer and byte types (uint256, int8, bytes32 and
// friends) count as reserved alongside the keyword list.
func IsReservedWord(word string) bool {
	lower := strings.ToLower(word)
	if _, ok := reservedWords[lower]; ok {
		return true
	}
	for _, prefix := range []string{"uint", "int", "bytes", "fixed", "ufixed"} {
		rest, found := strings.CutPrefix(lower, prefix)
		if !found || rest == "" {
			continue
		}
		if strings.IndexFunc(rest, func(r rune) bool { return r < '0' || r > '9' }) == -1 {
			return true
		}
	}
	return false
}
