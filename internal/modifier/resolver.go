// Package modifier resolves a component's declared modifiers against a
// render-time attribute bag, producing the ordered CSS class tokens that make
// up the component's class string.
package modifier

import (
	"strings"
)

// ClassNameFn transforms a modifier value into a CSS class token.
type ClassNameFn func(string) string

// Identity is the default ClassNameFn: the modifier value is the class token.
func Identity(value string) string { return value }

// Token is one resolved slot in a component's class list. Present is false
// when the modifier contributed no class, which is distinct from contributing
// the empty string.
type Token struct {
	Class   string
	Present bool
}

// Resolve maps the declared modifier names onto class tokens using the
// supplied value bag. The output always has one token per name, in
// declaration order, regardless of the bag's iteration order. A name whose
// bag value is unset or not a string resolves to an absent token; boolean and
// numeric values are deliberately treated the same as unset.
func Resolve(names []string, classNameFn ClassNameFn, values map[string]any) []Token {
	if classNameFn == nil {
		classNameFn = Identity
	}

	tokens := make([]Token, len(names))
	for i, name := range names {
		value, ok := values[name]
		if !ok {
			continue
		}
		s, ok := value.(string)
		if !ok {
			continue
		}
		tokens[i] = Token{Class: classNameFn(s), Present: true}
	}
	return tokens
}

// Join builds the final class string: the base class followed by every
// present token, space separated. Absent tokens are dropped entirely rather
// than rendered as empty entries.
func Join(baseClass string, tokens []Token) string {
	parts := make([]string, 0, len(tokens)+1)
	if baseClass != "" {
		parts = append(parts, baseClass)
	}
	for _, tok := range tokens {
		if tok.Present {
			parts = append(parts, tok.Class)
		}
	}
	return strings.Join(parts, " ")
}
