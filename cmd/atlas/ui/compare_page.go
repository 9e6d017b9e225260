package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/milaivanova-cpu/construct-atlas/internal/advisor"
	"github.com/milaivanova-cpu/construct-atlas/internal/kb"
)

// ComparePageModel is the Compare tab: jingle/jangle warnings for the
// current selection, the component coverage chart, and the measures table.
type ComparePageModel struct {
	kbase  *kb.KnowledgeBase
	rules  []advisor.Rule
	styles Styles

	viewport viewport.Model
	width    int
	height   int
}

// NewComparePageModel creates the Compare tab.
func NewComparePageModel(kbase *kb.KnowledgeBase, styles Styles) ComparePageModel {
	return ComparePageModel{
		kbase:    kbase,
		rules:    advisor.DefaultRules(),
		styles:   styles,
		viewport: viewport.New(0, 0),
	}
}

// SetSize updates the viewport dimensions.
func (m *ComparePageModel) SetSize(w, h int) {
	m.width = w
	m.height = h
	m.viewport.Width = w
	m.viewport.Height = h
}

// UpdateContent recomputes the comparison view for the given selection.
// Called when the tab gains focus or the selection changes; every derived
// view is a pure query over the loaded snapshot.
func (m *ComparePageModel) UpdateContent(selected []string) {
	if len(selected) == 0 {
		m.viewport.SetContent(m.styles.Muted.Render(
			"Select one or more constructs on the Constructs tab (space toggles)."))
		return
	}

	var sb strings.Builder

	for _, w := range advisor.Evaluate(m.rules, selected) {
		box := m.styles.WarningBox.Width(m.width - 2).Render(
			m.styles.Warning.Render("⚠ ") + advisor.StripMarkdown(w))
		sb.WriteString(box)
		sb.WriteString("\n")
	}
	if sb.Len() > 0 {
		sb.WriteString("\n")
	}

	sb.WriteString(m.styles.Title.Render("Component coverage"))
	sb.WriteString("\n")
	series := make([]ChartSeries, 0, len(selected))
	for _, key := range selected {
		c := mustConstruct(m.kbase, key)
		vec, err := m.kbase.ComponentVector(key)
		if err != nil {
			panic(err) // key came from the selection, which came from the KB
		}
		series = append(series, ChartSeries{Label: c.Label, Values: vec})
	}
	sb.WriteString(RenderComponentChart(m.styles, m.kbase.Taxonomy(), series))
	sb.WriteString("\n")

	rows, err := m.kbase.MeasureRows(selected)
	if err != nil {
		panic(err)
	}
	if len(rows) == 0 {
		sb.WriteString(m.styles.Muted.Render("No measures recorded for this selection."))
	} else {
		table := NewDataTable("Measures used", "Construct", "Measure", "Type", "Targets", "Notes")
		for _, r := range rows {
			table.AddRow(r.ConstructLabel, r.Measure, r.Type, r.Targets, r.Notes)
		}
		sb.WriteString(table.View(m.styles))
	}

	m.viewport.SetContent(sb.String())
}

// Update handles scrolling.
func (m ComparePageModel) Update(msg tea.Msg) (ComparePageModel, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the page.
func (m ComparePageModel) View() string {
	return m.viewport.View()
}
