// Package component compiles declarative widget specifications into reusable
// render units and keeps the process-wide registry they are looked up from.
package component

import (
	"bytes"
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/wovenui/weft/internal/attrs"
	"github.com/wovenui/weft/internal/modifier"
	"github.com/wovenui/weft/internal/schema"
	wefterrors "github.com/wovenui/weft/pkg/errors"
)

// RenderData is what a template receives for one render call: the caller's
// attribute bag with defaults applied, plus the resolved class information.
type RenderData struct {
	// Component is the specification name the render unit was compiled from.
	Component string
	// BaseClass is the component's root class.
	BaseClass string
	// Class is the final space-joined class string: base class followed by
	// the present modifier classes in declaration order.
	Class string
	// ClassTokens holds the per-modifier resolution result, one entry per
	// declared modifier, gaps included.
	ClassTokens []modifier.Token
	// Attrs is the applied attribute bag. Valid for this call only.
	Attrs map[string]any
}

// String returns the string value bound under name, or empty.
func (d RenderData) String(name string) string {
	s, _ := d.Attrs[name].(string)
	return s
}

// Bool returns the bool value bound under name, or false.
func (d RenderData) Bool(name string) bool {
	b, _ := d.Attrs[name].(bool)
	return b
}

// Template produces the markup for one render call. Markup production is
// delegated entirely to the returned templ component; the compiler never
// inspects or escapes the output.
type Template func(data RenderData) templ.Component

// Specification is the declarative description of one component. Constructed
// once at registration time and immutable afterwards.
type Specification struct {
	// Name uniquely identifies the component in the registry.
	Name string
	// BaseClass is the root CSS class. Derived from Name by kebab-casing
	// when empty.
	BaseClass string
	// Modifiers declare the string-valued, class-contributing attributes in
	// resolution order.
	Modifiers []schema.Modifier
	// Attributes declares the non-modifier attributes and slots the
	// component accepts.
	Attributes []attrs.Declaration
	// ClassNameFn transforms modifier values into class tokens. Identity
	// when nil.
	ClassNameFn modifier.ClassNameFn
	// Template renders the component.
	Template Template
	// Doc is a one-line catalog description.
	Doc string
}

// RenderUnit is the compiled artifact: an accepted-attribute surface and a
// render entry point. Stateless across invocations; safe for concurrent use.
type RenderUnit struct {
	name          string
	baseClass     string
	doc           string
	modifierNames []string
	classNameFn   modifier.ClassNameFn
	accepted      *attrs.Set
	template      Template
}

// Compile builds a render unit from a specification: derives the base class
// when unset, synthesizes modifier attribute declarations and unions them
// with the explicit ones, and closes over everything the render path needs.
// A modifier name colliding with an explicit attribute surfaces as a
// DuplicateAttributeError before any unit is produced.
func Compile(spec Specification) (*RenderUnit, error) {
	if spec.Name == "" {
		return nil, wefterrors.NewValidationError("name", "component name is required", nil)
	}
	if spec.Template == nil {
		return nil, wefterrors.NewValidationError("template", "component template is required", nil)
	}

	baseClass := spec.BaseClass
	if baseClass == "" {
		baseClass = KebabCase(spec.Name)
	}

	accepted := attrs.NewSet(spec.Name)
	if err := accepted.AddAll(spec.Attributes); err != nil {
		return nil, err
	}
	if err := accepted.AddAll(schema.Synthesize(spec.Modifiers)); err != nil {
		return nil, err
	}

	classNameFn := spec.ClassNameFn
	if classNameFn == nil {
		classNameFn = modifier.Identity
	}

	return &RenderUnit{
		name:          spec.Name,
		baseClass:     baseClass,
		doc:           spec.Doc,
		modifierNames: schema.Names(spec.Modifiers),
		classNameFn:   classNameFn,
		accepted:      accepted,
		template:      spec.Template,
	}, nil
}

// Name returns the component name the unit is registered under.
func (u *RenderUnit) Name() string { return u.name }

// BaseClass returns the root class every render of this unit carries.
func (u *RenderUnit) BaseClass() string { return u.baseClass }

// Doc returns the catalog description.
func (u *RenderUnit) Doc() string { return u.doc }

// Accepted returns the unit's accepted-attribute declarations in order:
// explicit attributes first, then one declaration per modifier.
func (u *RenderUnit) Accepted() []attrs.Declaration {
	return u.accepted.Declarations()
}

// Component applies the attribute bag against the accepted declarations,
// resolves the modifier classes, and returns the templ component for the
// caller to render. Constraint violations surface here, before any markup is
// produced.
func (u *RenderUnit) Component(bag map[string]any) (templ.Component, error) {
	applied, err := u.accepted.Apply(bag)
	if err != nil {
		return nil, err
	}

	tokens := modifier.Resolve(u.modifierNames, u.classNameFn, applied)
	data := RenderData{
		Component:   u.name,
		BaseClass:   u.baseClass,
		Class:       modifier.Join(u.baseClass, tokens),
		ClassTokens: tokens,
		Attrs:       applied,
	}
	return u.template(data), nil
}

// Render writes the component's markup for one attribute bag.
func (u *RenderUnit) Render(ctx context.Context, w io.Writer, bag map[string]any) error {
	c, err := u.Component(bag)
	if err != nil {
		return err
	}
	return c.Render(ctx, w)
}

// RenderString renders into a string, for callers embedding markup directly.
func (u *RenderUnit) RenderString(ctx context.Context, bag map[string]any) (string, error) {
	var buf bytes.Buffer
	if err := u.Render(ctx, &buf, bag); err != nil {
		return "", err
	}
	return buf.String(), nil
}
