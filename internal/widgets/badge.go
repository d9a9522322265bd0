package widgets

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/wovenui/weft/internal/attrs"
	"github.com/wovenui/weft/internal/component"
	"github.com/wovenui/weft/internal/schema"
)

func badgeSpec() component.Specification {
	return component.Specification{
		Name: "badge",
		Doc:  "Small inline status indicator.",
		Attributes: []attrs.Declaration{
			{Name: "label", Type: attrs.TypeString, Required: true, Doc: "Badge text."},
		},
		Modifiers: []schema.Modifier{
			{Name: "variant", Allowed: []string{"default", "primary", "secondary", "success", "warning", "error", "info"}, Default: strptr("default"), Doc: "Badge color scheme."},
			{Name: "size", Allowed: []string{"small", "medium"}, Doc: "Badge sizing."},
		},
		ClassNameFn: func(v string) string { return "badge--" + v },
		Template:    badgeTemplate,
	}
}

func badgeTemplate(data component.RenderData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "<span"); err != nil {
			return err
		}
		if err := writeAttr(w, "class", data.Class); err != nil {
			return err
		}
		if _, err := io.WriteString(w, ">"); err != nil {
			return err
		}
		if err := writeText(w, data.String("label")); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</span>")
		return err
	})
}
