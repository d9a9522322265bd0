// Package schema turns a component's modifier definitions into the
// accepted-attribute declarations that keep a component's documented surface
// and its class-resolution logic in lockstep: every modifier is declared,
// validated, and documented as a first-class string attribute.
package schema

import (
	"github.com/wovenui/weft/internal/attrs"
)

// Modifier declares one string-valued, class-contributing attribute of a
// component specification.
type Modifier struct {
	// Name is the attribute name callers bind the value under. Unique within
	// a specification.
	Name string
	// Allowed enumerates the accepted values. Empty means unrestricted.
	Allowed []string
	// Default is applied when the caller supplies nothing. Nil means no
	// default.
	Default *string
	// Required makes omission a render-time error. A required modifier
	// carries no default.
	Required bool
	// Doc is carried onto the synthesized declaration for catalog output.
	Doc string
}

// Synthesize emits one string-typed attribute declaration per modifier, in
// declaration order. The declarations carry the enumerated constraint and
// default verbatim; enforcement belongs to the attrs package.
func Synthesize(modifiers []Modifier) []attrs.Declaration {
	decls := make([]attrs.Declaration, len(modifiers))
	for i, m := range modifiers {
		decls[i] = attrs.Declaration{
			Name:     m.Name,
			Type:     attrs.TypeString,
			Allowed:  m.Allowed,
			Default:  m.Default,
			Required: m.Required,
			Doc:      m.Doc,
		}
	}
	return decls
}

// Names returns the modifier names in declaration order, the exact order the
// resolver consumes at render time.
func Names(modifiers []Modifier) []string {
	names := make([]string, len(modifiers))
	for i, m := range modifiers {
		names[i] = m.Name
	}
	return names
}
