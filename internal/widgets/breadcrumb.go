package widgets

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/wovenui/weft/internal/attrs"
	"github.com/wovenui/weft/internal/component"
	"github.com/wovenui/weft/internal/schema"
	wefterrors "github.com/wovenui/weft/pkg/errors"
)

// BreadcrumbItem is one entry in a navigation trail.
type BreadcrumbItem struct {
	Label string
	Href  string
	// Current marks the distinguished "you are here" entry. Set by
	// MarkCurrent, not by callers.
	Current bool
}

// MarkCurrent tags the last item of a non-empty trail as the current page
// and leaves every other item untouched, order preserved. The transform
// reverses the trail, tags the head, and reverses back.
func MarkCurrent(items []BreadcrumbItem) ([]BreadcrumbItem, error) {
	if len(items) == 0 {
		return nil, wefterrors.NewValidationError("items", "breadcrumb requires at least one item", nil)
	}

	reversed := make([]BreadcrumbItem, len(items))
	for i, item := range items {
		reversed[len(items)-1-i] = item
	}
	reversed[0].Current = true

	out := make([]BreadcrumbItem, len(items))
	for i, item := range reversed {
		out[len(items)-1-i] = item
	}
	return out, nil
}

func breadcrumbSpec() component.Specification {
	return component.Specification{
		Name: "breadcrumb",
		Doc:  "Navigation trail where the last entry is the non-navigable current page.",
		Attributes: []attrs.Declaration{
			{Name: "items", Type: attrs.TypeAny, Required: true, Doc: "Ordered, non-empty []BreadcrumbItem."},
			{Name: "label", Type: attrs.TypeString, Default: strptr("Breadcrumb"), Doc: "Accessible name of the nav landmark."},
		},
		Modifiers: []schema.Modifier{
			{Name: "size", Allowed: []string{"compact", "regular"}, Doc: "Density of the trail."},
		},
		Template: breadcrumbTemplate,
	}
}

func breadcrumbTemplate(data component.RenderData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		items, ok := data.Attrs["items"].([]BreadcrumbItem)
		if !ok {
			return wefterrors.NewValidationError("items", "breadcrumb items must be []BreadcrumbItem", nil)
		}

		tagged, err := MarkCurrent(items)
		if err != nil {
			return err
		}

		if _, err := io.WriteString(w, "<nav"); err != nil {
			return err
		}
		if err := writeAttr(w, "class", data.Class); err != nil {
			return err
		}
		if err := writeAttr(w, "aria-label", data.String("label")); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "><ol>"); err != nil {
			return err
		}

		for _, item := range tagged {
			if _, err := io.WriteString(w, "<li><a"); err != nil {
				return err
			}
			if err := writeAttr(w, "href", item.Href); err != nil {
				return err
			}
			if item.Current {
				if err := writeAttr(w, "aria-current", "page"); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, ">"); err != nil {
				return err
			}
			if err := writeText(w, item.Label); err != nil {
				return err
			}
			if _, err := io.WriteString(w, "</a></li>"); err != nil {
				return err
			}
		}

		_, err = io.WriteString(w, "</ol></nav>")
		return err
	})
}
