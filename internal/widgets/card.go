package widgets

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/wovenui/weft/internal/attrs"
	"github.com/wovenui/weft/internal/component"
	"github.com/wovenui/weft/internal/schema"
)

func cardSpec() component.Specification {
	return component.Specification{
		Name: "card",
		Doc:  "Bordered content container with optional title and footer.",
		Attributes: []attrs.Declaration{
			{Name: "title", Type: attrs.TypeString, Doc: "Optional card heading."},
			{Name: "body", Type: attrs.TypeString, Required: true, Doc: "Card content text."},
			{Name: "footer", Type: attrs.TypeString, Doc: "Optional footer text."},
		},
		Modifiers: []schema.Modifier{
			{Name: "size", Allowed: []string{"small", "medium", "large"}, Doc: "Card sizing."},
			{Name: "variant", Allowed: []string{"default", "outlined", "elevated"}, Doc: "Border and shadow treatment."},
		},
		Template: cardTemplate,
	}
}

func cardTemplate(data component.RenderData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "<div"); err != nil {
			return err
		}
		if err := writeAttr(w, "class", data.Class); err != nil {
			return err
		}
		if _, err := io.WriteString(w, ">"); err != nil {
			return err
		}
		if title := data.String("title"); title != "" {
			if _, err := io.WriteString(w, `<h2 class="card-title">`); err != nil {
				return err
			}
			if err := writeText(w, title); err != nil {
				return err
			}
			if _, err := io.WriteString(w, "</h2>"); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `<div class="card-body">`); err != nil {
			return err
		}
		if err := writeText(w, data.String("body")); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "</div>"); err != nil {
			return err
		}
		if footer := data.String("footer"); footer != "" {
			if _, err := io.WriteString(w, `<div class="card-footer">`); err != nil {
				return err
			}
			if err := writeText(w, footer); err != nil {
				return err
			}
			if _, err := io.WriteString(w, "</div>"); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</div>")
		return err
	})
}
