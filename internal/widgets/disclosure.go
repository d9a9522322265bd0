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

// The disclosure button toggles only its own expansion attribute. Showing
// and hiding the controlled element is the caller's obligation: wire the
// controlled element's visibility to the button's aria-expanded state, or
// append a class toggle for it to the button's command sequence.
func disclosureSpec() component.Specification {
	return component.Specification{
		Name:      "DisclosureButton",
		BaseClass: "disclosure-button",
		Doc:       "Button that toggles its own expanded/collapsed state.",
		Attributes: []attrs.Declaration{
			{Name: "id", Type: attrs.TypeString, Required: true, Doc: "Button element identifier; the toggle is scoped to it."},
			{Name: "label", Type: attrs.TypeString, Required: true, Doc: "Button text."},
			{Name: "controls", Type: attrs.TypeString, Doc: "Identifier of the element this button discloses."},
			{Name: "expanded", Type: attrs.TypeBool, Doc: "Initial expansion state."},
		},
		Modifiers: []schema.Modifier{
			{Name: "size", Allowed: []string{"small", "medium", "large"}, Doc: "Button sizing."},
			{Name: "variant", Allowed: []string{"default", "ghost"}, Doc: "Visual treatment."},
		},
		Template: disclosureTemplate,
	}
}

func disclosureTemplate(data component.RenderData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		id := data.String("id")

		seq := command.NewSequence(
			command.ToggleAttribute(id, "aria-expanded", "true", "false"),
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
		if err := writeAttr(w, "aria-expanded", fmt.Sprintf("%t", data.Bool("expanded"))); err != nil {
			return err
		}
		if controls := data.String("controls"); controls != "" {
			if err := writeAttr(w, "aria-controls", controls); err != nil {
				return err
			}
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
