// Package tui implements the interactive catalog preview: a browsable list
// of registered components with their rendered markup alongside.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wovenui/weft/internal/component"
)

type catalogItem struct {
	unit *component.RenderUnit
}

func (i catalogItem) Title() string       { return i.unit.Name() }
func (i catalogItem) Description() string { return i.unit.Doc() }
func (i catalogItem) FilterValue() string { return i.unit.Name() }

// Model is the preview application model.
type Model struct {
	registry *component.Registry
	list     list.Model
	preview  viewport.Model
	ready    bool
	width    int
	height   int
}

// NewModel builds a preview over every component registered in reg.
func NewModel(reg *component.Registry) Model {
	units := reg.List()
	items := make([]list.Item, len(units))
	for i, unit := range units {
		items[i] = catalogItem{unit: unit}
	}

	delegate := list.NewDefaultDelegate()
	l := list.New(items, delegate, 0, 0)
	l.Title = "weft catalog"
	l.SetShowHelp(false)

	return Model{
		registry: reg,
		list:     l,
		preview:  viewport.New(0, 0),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		listWidth := msg.Width / 3
		m.list.SetSize(listWidth, msg.Height-2)
		m.preview.Width = msg.Width - listWidth - 4
		m.preview.Height = msg.Height - 4
		m.ready = true
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	cmds = append(cmds, cmd)

	m.preview.SetContent(m.renderSelected())
	m.preview, cmd = m.preview.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading catalog..."
	}

	left := listStyle.Render(m.list.View())
	right := previewStyle.Render(m.preview.View())
	body := joinHorizontal(left, right)
	return body + "\n" + footerStyle.Render("q quit · / filter · ↑/↓ select")
}

func (m Model) renderSelected() string {
	item, ok := m.list.SelectedItem().(catalogItem)
	if !ok {
		return "No component selected."
	}

	unit := item.unit
	var b strings.Builder
	b.WriteString(headingStyle.Render(unit.Name()))
	b.WriteString("\n")
	b.WriteString(unit.Doc())
	b.WriteString("\n\n")
	b.WriteString(headingStyle.Render("Attributes"))
	b.WriteString("\n")
	for _, decl := range unit.Accepted() {
		line := fmt.Sprintf("  %s (%s)", decl.Name, decl.Type)
		if decl.Required {
			line += " required"
		}
		if len(decl.Allowed) > 0 {
			line += " ∈ {" + strings.Join(decl.Allowed, ", ") + "}"
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(headingStyle.Render("Markup"))
	b.WriteString("\n")
	markup, err := unit.RenderString(context.Background(), SampleBag(unit.Name()))
	if err != nil {
		b.WriteString(errorStyle.Render("render failed: " + err.Error()))
	} else {
		b.WriteString(markup)
	}
	return b.String()
}
