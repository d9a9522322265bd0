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
	wefterrors "github.com/wovenui/weft/pkg/errors"
)

// ExpandMode controls which accordion sections start expanded.
type ExpandMode string

const (
	ExpandAll   ExpandMode = "all"
	ExpandNone  ExpandMode = "none"
	ExpandFirst ExpandMode = "first"
)

// Expanded reports whether the section at the 1-based index starts expanded
// under the given mode. This seeds the initial rendered state only; every
// later change happens client-side through the attached command sequence.
func Expanded(index int, mode ExpandMode) bool {
	switch mode {
	case ExpandAll:
		return true
	case ExpandFirst:
		return index == 1
	default:
		return false
	}
}

// AccordionSection is one trigger/panel pair.
type AccordionSection struct {
	Title string
	Body  string
}

// accordionTriggerID and accordionSectionID build the identifiers a
// section's command sequence is scoped by: the accordion root identifier
// plus the section's 1-based position.
func accordionTriggerID(rootID string, index int) string {
	return fmt.Sprintf("%s-trigger-%d", rootID, index)
}

func accordionSectionID(rootID string, index int) string {
	return fmt.Sprintf("%s-section-%d", rootID, index)
}

// accordionSectionCommands is the sequence a trigger click executes: flip the
// trigger's expansion attribute, flip the panel's hidden class.
func accordionSectionCommands(rootID string, index int) command.Sequence {
	return command.NewSequence(
		command.ToggleAttribute(accordionTriggerID(rootID, index), "aria-expanded", "true", "false"),
		command.ToggleClass(accordionSectionID(rootID, index), hiddenClass),
	)
}

func accordionSpec() component.Specification {
	return component.Specification{
		Name: "accordion",
		Doc:  "Vertically stacked sections with independently collapsible panels.",
		Attributes: []attrs.Declaration{
			{Name: "id", Type: attrs.TypeString, Required: true, Doc: "Root element identifier; section and trigger ids derive from it."},
			{Name: "sections", Type: attrs.TypeAny, Required: true, Doc: "Ordered []AccordionSection."},
			{Name: "expand", Type: attrs.TypeString, Allowed: []string{"all", "none", "first"}, Default: strptr("first"), Doc: "Which sections start expanded."},
		},
		Modifiers: []schema.Modifier{
			{Name: "size", Allowed: []string{"compact", "regular", "spacious"}, Doc: "Density of the rendered sections."},
			{Name: "variant", Allowed: []string{"default", "bordered"}, Doc: "Visual treatment of the root element."},
		},
		Template: accordionTemplate,
	}
}

func accordionTemplate(data component.RenderData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		rootID := data.String("id")
		mode := ExpandMode(data.String("expand"))

		sections, ok := data.Attrs["sections"].([]AccordionSection)
		if !ok {
			return wefterrors.NewValidationError("sections", "accordion sections must be []AccordionSection", nil)
		}

		if _, err := io.WriteString(w, "<div"); err != nil {
			return err
		}
		if err := writeAttr(w, "id", rootID); err != nil {
			return err
		}
		if err := writeAttr(w, "class", data.Class); err != nil {
			return err
		}
		if _, err := io.WriteString(w, ">"); err != nil {
			return err
		}

		for i, section := range sections {
			index := i + 1
			if err := renderAccordionSection(w, rootID, index, section, Expanded(index, mode)); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, "</div>")
		return err
	})
}

func renderAccordionSection(w io.Writer, rootID string, index int, section AccordionSection, expanded bool) error {
	triggerID := accordionTriggerID(rootID, index)
	sectionID := accordionSectionID(rootID, index)

	if _, err := io.WriteString(w, `<h3 class="accordion-header"><button type="button"`); err != nil {
		return err
	}
	if err := writeAttr(w, "id", triggerID); err != nil {
		return err
	}
	if err := writeAttr(w, "class", "accordion-trigger"); err != nil {
		return err
	}
	if err := writeAttr(w, "aria-expanded", fmt.Sprintf("%t", expanded)); err != nil {
		return err
	}
	if err := writeAttr(w, "aria-controls", sectionID); err != nil {
		return err
	}
	if err := writeCommands(w, accordionSectionCommands(rootID, index)); err != nil {
		return err
	}
	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}
	if err := writeText(w, section.Title); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "</button></h3><div"); err != nil {
		return err
	}
	if err := writeAttr(w, "id", sectionID); err != nil {
		return err
	}
	panelClass := "accordion-panel"
	if !expanded {
		panelClass += " " + hiddenClass
	}
	if err := writeAttr(w, "class", panelClass); err != nil {
		return err
	}
	if err := writeAttr(w, "role", "region"); err != nil {
		return err
	}
	if err := writeAttr(w, "aria-labelledby", triggerID); err != nil {
		return err
	}
	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}
	if err := writeText(w, section.Body); err != nil {
		return err
	}
	_, err := io.WriteString(w, "</div>")
	return err
}
