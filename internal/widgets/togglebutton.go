package widgets

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/wovenui/weft/internal/attrs"
	"github.com/wovenui/weft/internal/command"
	"github.com/wovenui/weft/internal/component"
	"github.com/wovenui/weft/internal/schema"
)

// The toggle button flips a pressed/unpressed attribute on a caller-supplied
// target, which need not be the button's own element.
func toggleButtonSpec() component.Specification {
	return component.Specification{
		Name:      "ToggleButton",
		BaseClass: "toggle-button",
		Doc:       "Two-state button toggling a pressed attribute on a target element.",
		Attributes: []attrs.Declaration{
			{Name: "id", Type: attrs.TypeString, Required: true, Doc: "Button element identifier."},
			{Name: "label", Type: attrs.TypeString, Required: true, Doc: "Button text."},
			{Name: "target", Type: attrs.TypeString, Doc: "Identifier the toggle is scoped to; defaults to the button itself."},
			{Name: "attribute", Type: attrs.TypeString, Default: strptr("aria-pressed"), Doc: "Attribute flipped between on and off values."},
			{Name: "pressed", Type: attrs.TypeBool, Doc: "Initial pressed state."},
		},
		Modifiers: []schema.Modifier{
			{Name: "size", Allowed: []string{"small", "medium", "large"}, Doc: "Button sizing."},
			{Name: "variant", Allowed: []string{"default", "primary", "ghost"}, Doc: "Visual treatment."},
		},
		Template: toggleButtonTemplate,
	}
}

func toggleButtonTemplate(data component.RenderData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		id := data.String("id")
		target := data.String("target")
		if target == "" {
			target = id
		}

		seq := command.NewSequence(
			command.ToggleAttribute(target, data.String("attribute"), "true", "false"),
		)

		if _, err := io.WriteString(w, `<button type="button"`); err != nil {
			return err
		}
		if err := writeAttr(w, "id", id); err != nil {
			return err
		}
		if err := writeAttr(w, "class", data.Class); err != nil {
			return err
		}
		if err := writeAttr(w, "aria-pressed", fmt.Sprintf("%t", data.Bool("pressed"))); err != nil {
			return err
		}
		if err := writeCommands(w, seq); err != nil {
			return err
		}
		if _, err := io.WriteString(w, ">"); err != nil {
			return err
		}
		if err := writeText(w, data.String("label")); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</button>")
		return err
	})
}
