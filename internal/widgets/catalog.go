package widgets

import (
	"github.com/wovenui/weft/internal/component"
)

func strptr(s string) *string { return &s }

// Specs returns the catalog's specifications in registration order.
func Specs() []component.Specification {
	return []component.Specification{
		accordionSpec(),
		alertSpec(),
		badgeSpec(),
		breadcrumbSpec(),
		cardSpec(),
		disclosureSpec(),
		toggleButtonSpec(),
	}
}

// RegisterAll compiles and registers the whole catalog into reg. Compilation
// happens once per specification; failures abort registration immediately.
func RegisterAll(reg *component.Registry) error {
	for _, spec := range Specs() {
		if _, err := reg.Register(spec); err != nil {
			return err
		}
	}
	return nil
}
