package widgets

import (
	"context"
	"html"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wovenui/weft/internal/command"
	"github.com/wovenui/weft/internal/component"
)

func TestExpandedPolicy(t *testing.T) {
	tests := []struct {
		index int
		mode  ExpandMode
		want  bool
	}{
		{1, ExpandFirst, true},
		{2, ExpandFirst, false},
		{5, ExpandFirst, false},
		{1, ExpandAll, true},
		{2, ExpandAll, true},
		{9, ExpandAll, true},
		{1, ExpandNone, false},
		{2, ExpandNone, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Expanded(tt.index, tt.mode), "index=%d mode=%s", tt.index, tt.mode)
	}
}

func TestAccordionSectionIdentifiers(t *testing.T) {
	assert.Equal(t, "faq-trigger-1", accordionTriggerID("faq", 1))
	assert.Equal(t, "faq-section-3", accordionSectionID("faq", 3))
}

func renderWidget(t *testing.T, name string, bag map[string]any) string {
	t.Helper()

	reg := component.NewRegistry()
	require.NoError(t, RegisterAll(reg))

	unit, ok := reg.Lookup(name)
	require.True(t, ok, "component %q not registered", name)

	out, err := unit.RenderString(context.Background(), bag)
	require.NoError(t, err)
	return out
}

// commandsAttr extracts and decodes the serialized command sequence embedded
// on the element whose id attribute matches elementID.
func commandsAttr(t *testing.T, markup, elementID string) command.Sequence {
	t.Helper()

	re := regexp.MustCompile(`id="` + regexp.QuoteMeta(elementID) + `"[^>]*` + command.DataAttrName + `="([^"]*)"`)
	match := re.FindStringSubmatch(markup)
	require.Len(t, match, 2, "no command attribute on element %q in %s", elementID, markup)

	seq, err := command.ParseSequence(html.UnescapeString(match[1]))
	require.NoError(t, err)
	return seq
}

func TestAccordionRendersSectionsWithDerivedIDs(t *testing.T) {
	out := renderWidget(t, "accordion", map[string]any{
		"id": "faq",
		"sections": []AccordionSection{
			{Title: "Shipping", Body: "Ships in two days."},
			{Title: "Returns", Body: "Thirty day window."},
		},
	})

	assert.Contains(t, out, `id="faq"`)
	assert.Contains(t, out, `class="accordion"`)
	assert.Contains(t, out, `id="faq-trigger-1"`)
	assert.Contains(t, out, `id="faq-section-1"`)
	assert.Contains(t, out, `id="faq-trigger-2"`)
	assert.Contains(t, out, `id="faq-section-2"`)
	assert.Contains(t, out, `aria-controls="faq-section-1"`)
}

func TestAccordionDefaultExpandFirst(t *testing.T) {
	out := renderWidget(t, "accordion", map[string]any{
		"id": "faq",
		"sections": []AccordionSection{
			{Title: "One", Body: "first"},
			{Title: "Two", Body: "second"},
		},
	})

	// Section one starts expanded, section two hidden.
	assert.Regexp(t, `id="faq-trigger-1"[^>]*aria-expanded="true"`, out)
	assert.Regexp(t, `id="faq-trigger-2"[^>]*aria-expanded="false"`, out)
	assert.Regexp(t, `id="faq-section-2" class="accordion-panel weft-hidden"`, out)
	assert.NotRegexp(t, `id="faq-section-1" class="accordion-panel weft-hidden"`, out)
}

func TestAccordionExpandModes(t *testing.T) {
	sections := []AccordionSection{{Title: "One", Body: "a"}, {Title: "Two", Body: "b"}}

	all := renderWidget(t, "accordion", map[string]any{"id": "x", "sections": sections, "expand": "all"})
	assert.NotRegexp(t, `class="accordion-panel weft-hidden"`, all)

	none := renderWidget(t, "accordion", map[string]any{"id": "x", "sections": sections, "expand": "none"})
	assert.Regexp(t, `id="x-section-1" class="accordion-panel weft-hidden"`, none)
	assert.Regexp(t, `id="x-section-2" class="accordion-panel weft-hidden"`, none)
}

func TestAccordionTriggerCommands(t *testing.T) {
	out := renderWidget(t, "accordion", map[string]any{
		"id":       "faq",
		"sections": []AccordionSection{{Title: "One", Body: "a"}},
	})

	seq := commandsAttr(t, out, "faq-trigger-1")
	require.Len(t, seq, 2)
	assert.Equal(t, command.ToggleAttribute("faq-trigger-1", "aria-expanded", "true", "false"), seq[0])
	assert.Equal(t, command.ToggleClass("faq-section-1", "weft-hidden"), seq[1])
}

func TestAccordionModifiersContributeClasses(t *testing.T) {
	out := renderWidget(t, "accordion", map[string]any{
		"id":       "faq",
		"sections": []AccordionSection{{Title: "One", Body: "a"}},
		"size":     "compact",
		"variant":  "bordered",
	})
	assert.Contains(t, out, `class="accordion compact bordered"`)
}

func TestAccordionEscapesSectionText(t *testing.T) {
	out := renderWidget(t, "accordion", map[string]any{
		"id":       "faq",
		"sections": []AccordionSection{{Title: "<b>bold</b>", Body: "a & b"}},
	})
	assert.Contains(t, out, "&lt;b&gt;bold&lt;/b&gt;")
	assert.NotContains(t, out, "<b>bold</b>")
}
