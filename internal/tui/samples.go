package tui

import (
	"github.com/wovenui/weft/internal/widgets"
)

// SampleBag returns a representative attribute bag for previewing the named
// component. Catalog widgets get curated samples; anything else gets a
// generic text bag that satisfies the generic element template.
func SampleBag(name string) map[string]any {
	switch name {
	case "accordion":
		return map[string]any{
			"id": "preview-accordion",
			"sections": []widgets.AccordionSection{
				{Title: "Shipping", Body: "Orders ship within two business days."},
				{Title: "Returns", Body: "Returns are accepted for thirty days."},
			},
		}
	case "breadcrumb":
		return map[string]any{
			"items": []widgets.BreadcrumbItem{
				{Label: "Home", Href: "/"},
				{Label: "Widgets", Href: "/widgets"},
				{Label: "Preview", Href: "/widgets/preview"},
			},
		}
	case "badge":
		return map[string]any{"label": "New", "variant": "primary"}
	case "alert":
		return map[string]any{"title": "Heads up", "message": "This is a sample alert.", "tone": "warning"}
	case "card":
		return map[string]any{"title": "Sample card", "body": "Card body copy.", "footer": "Footer"}
	case "DisclosureButton":
		return map[string]any{"id": "preview-disclosure", "label": "Show filters", "controls": "preview-panel"}
	case "ToggleButton":
		return map[string]any{"id": "preview-toggle", "label": "Mute", "pressed": false}
	default:
		return map[string]any{"text": "Sample"}
	}
}
