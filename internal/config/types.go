// Package config loads declarative component definitions from YAML. A
// definition describes a simple, template-less component: a named element
// with a base class and a set of modifiers, rendered by a generic element
// template. Widgets with real markup live in the widgets catalog; this path
// exists for the long tail of purely class-driven components.
package config

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/wovenui/weft/internal/attrs"
	"github.com/wovenui/weft/internal/component"
	"github.com/wovenui/weft/internal/modifier"
	"github.com/wovenui/weft/internal/schema"
)

// File is the root of one definition file.
type File struct {
	Components []Definition `yaml:"components" validate:"required,min=1,dive"`
}

// Definition declares one template-less component.
type Definition struct {
	Name        string        `yaml:"name" validate:"required"`
	BaseClass   string        `yaml:"base_class,omitempty" validate:"omitempty,class_token"`
	Tag         string        `yaml:"tag,omitempty" validate:"omitempty,alphanum"`
	ClassPrefix string        `yaml:"class_prefix,omitempty"`
	Doc         string        `yaml:"doc,omitempty"`
	Modifiers   []ModifierDef `yaml:"modifiers,omitempty" validate:"dive"`
}

// ModifierDef mirrors schema.Modifier in YAML form.
type ModifierDef struct {
	Name     string   `yaml:"name" validate:"required,attr_name"`
	Allowed  []string `yaml:"allowed,omitempty"`
	Default  *string  `yaml:"default,omitempty"`
	Required bool     `yaml:"required,omitempty"`
	Doc      string   `yaml:"doc,omitempty"`
}

// Specification converts the definition into a compilable specification
// backed by the generic element template.
func (d Definition) Specification() component.Specification {
	modifiers := make([]schema.Modifier, len(d.Modifiers))
	for i, m := range d.Modifiers {
		modifiers[i] = schema.Modifier{
			Name:     m.Name,
			Allowed:  m.Allowed,
			Default:  m.Default,
			Required: m.Required,
			Doc:      m.Doc,
		}
	}

	var classNameFn modifier.ClassNameFn
	if d.ClassPrefix != "" {
		prefix := d.ClassPrefix
		classNameFn = func(v string) string { return prefix + v }
	}

	tag := d.Tag
	if tag == "" {
		tag = "div"
	}

	return component.Specification{
		Name:      d.Name,
		BaseClass: d.BaseClass,
		Doc:       d.Doc,
		Modifiers: modifiers,
		Attributes: []attrs.Declaration{
			{Name: "id", Type: attrs.TypeString, Doc: "Optional element identifier."},
			{Name: "text", Type: attrs.TypeString, Doc: "Element text content."},
		},
		ClassNameFn: classNameFn,
		Template:    elementTemplate(tag),
	}
}

// elementTemplate renders <tag id? class="...">text</tag>.
func elementTemplate(tag string) component.Template {
	return func(data component.RenderData) templ.Component {
		return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			if _, err := fmt.Fprintf(w, "<%s", tag); err != nil {
				return err
			}
			if id := data.String("id"); id != "" {
				if _, err := fmt.Fprintf(w, ` id="%s"`, templ.EscapeString(id)); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(w, ` class="%s">`, templ.EscapeString(data.Class)); err != nil {
				return err
			}
			if _, err := io.WriteString(w, templ.EscapeString(data.String("text"))); err != nil {
				return err
			}
			_, err := fmt.Fprintf(w, "</%s>", tag)
			return err
		})
	}
}
