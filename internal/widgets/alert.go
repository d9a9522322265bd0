package widgets

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/wovenui/weft/internal/attrs"
	"github.com/wovenui/weft/internal/component"
	"github.com/wovenui/weft/internal/schema"
)

func alertSpec() component.Specification {
	return component.Specification{
		Name: "alert",
		Doc:  "Prominent message block with a tone-driven color scheme.",
		Attributes: []attrs.Declaration{
			{Name: "title", Type: attrs.TypeString, Doc: "Optional heading."},
			{Name: "message", Type: attrs.TypeString, Required: true, Doc: "Alert body text."},
		},
		Modifiers: []schema.Modifier{
			{Name: "tone", Allowed: []string{"info", "success", "warning", "danger"}, Default: strptr("info"), Doc: "Severity of the message."},
		},
		ClassNameFn: func(v string) string { return "alert--" + v },
		Template:    alertTemplate,
	}
}

func alertTemplate(data component.RenderData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "<div"); err != nil {
			return err
		}
		if err := writeAttr(w, "class", data.Class); err != nil {
			return err
		}
		if err := writeAttr(w, "role", "alert"); err != nil {
			return err
		}
		if _, err := io.WriteString(w, ">"); err != nil {
			return err
		}
		if title := data.String("title"); title != "" {
			if _, err := io.WriteString(w, `<p class="alert-title">`); err != nil {
				return err
			}
			if err := writeText(w, title); err != nil {
				return err
			}
			if _, err := io.WriteString(w, "</p>"); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `<p class="alert-message">`); err != nil {
			return err
		}
		if err := writeText(w, data.String("message")); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</p></div>")
		return err
	})
}
