package ui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/milaivanova-cpu/construct-atlas/internal/export"
	"github.com/milaivanova-cpu/construct-atlas/internal/kb"
)

// clipboardWriteAll is a package-level variable to allow mocking in tests.
var clipboardWriteAll = clipboard.WriteAll

// ModelPageModel is the Models tab: the comparison-model dimension table
// for the active domain filter, with CSV export and clipboard copy.
type ModelPageModel struct {
	kbase  *kb.KnowledgeBase
	styles Styles

	viewport viewport.Model
	width    int
	height   int

	domains   []string
	domainIdx int

	status string
}

// NewModelPageModel creates the Models tab.
func NewModelPageModel(kbase *kb.KnowledgeBase, styles Styles) ModelPageModel {
	m := ModelPageModel{
		kbase:    kbase,
		styles:   styles,
		viewport: viewport.New(0, 0),
		domains:  kbase.Domains(),
	}
	m.UpdateContent()
	return m
}

// Domain returns the active domain filter.
func (m ModelPageModel) Domain() string {
	if len(m.domains) == 0 {
		return kb.DomainAll
	}
	return m.domains[m.domainIdx]
}

// SetSize updates the viewport dimensions.
func (m *ModelPageModel) SetSize(w, h int) {
	m.width = w
	m.height = h
	m.viewport.Width = w
	m.viewport.Height = h
	m.UpdateContent()
}

// table projects the models of the active domain onto the fixed
// dimension list.
func (m ModelPageModel) table() kb.DimensionTable {
	keys := m.kbase.ModelsByDomain(m.Domain())
	table, err := m.kbase.ModelDimensionTable(keys, kb.ModelDimensions)
	if err != nil {
		panic(err) // keys come straight from ModelsByDomain
	}
	return table
}

// UpdateContent rebuilds the viewport from the active domain filter.
func (m *ModelPageModel) UpdateContent() {
	var sb strings.Builder

	sb.WriteString(m.styles.Title.Render("Comparison models"))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Subtitle.Render(fmt.Sprintf("Domain: %s (d cycles, e exports CSV, c copies CSV)", m.Domain())))
	sb.WriteString("\n\n")

	if len(m.kbase.ModelKeys()) == 0 {
		sb.WriteString(m.styles.Muted.Render("The knowledge base declares no comparison models."))
		m.viewport.SetContent(sb.String())
		return
	}

	table := m.table()
	if len(table.ModelKeys) == 0 {
		sb.WriteString(m.styles.Muted.Render("No models in this domain."))
	} else {
		dt := NewDataTable("", append([]string{"Dimension"}, table.Labels...)...)
		for i, dim := range table.Dimensions {
			dt.AddRow(append([]string{dim}, table.Cells[i]...)...)
		}
		sb.WriteString(dt.View(m.styles))

		sb.WriteString("\n")
		for _, key := range table.ModelKeys {
			model, err := m.kbase.Model(key)
			if err != nil {
				panic(err)
			}
			if len(model.KeyPapers) > 0 {
				sb.WriteString(m.styles.Bold.Render(model.Label) + m.styles.Muted.Render(": "+strings.Join(model.KeyPapers, "; ")))
				sb.WriteString("\n")
			}
		}
	}

	if m.status != "" {
		sb.WriteString("\n")
		sb.WriteString(m.status)
	}

	m.viewport.SetContent(sb.String())
}

// Update handles domain cycling, export, copy, and scrolling.
func (m ModelPageModel) Update(msg tea.Msg) (ModelPageModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "d":
			m.domainIdx = (m.domainIdx + 1) % len(m.domains)
			m.status = ""
			m.UpdateContent()
			return m, nil
		case "e":
			m.status = m.exportCSV()
			m.UpdateContent()
			return m, nil
		case "c":
			m.status = m.copyCSV()
			m.UpdateContent()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// exportCSV writes the current table next to the knowledge-base document.
func (m *ModelPageModel) exportCSV() string {
	path := filepath.Join(filepath.Dir(m.kbase.Source), "model-comparison.csv")
	f, err := os.Create(path)
	if err != nil {
		return m.styles.Error.Render(fmt.Sprintf("Export failed: %v", err))
	}
	defer f.Close()
	if err := export.WriteDimensionTable(f, m.table()); err != nil {
		return m.styles.Error.Render(fmt.Sprintf("Export failed: %v", err))
	}
	return m.styles.Success.Render("Exported " + path)
}

func (m *ModelPageModel) copyCSV() string {
	text, err := export.RenderDimensionTable(m.table())
	if err == nil {
		err = clipboardWriteAll(text)
	}
	if err != nil {
		return m.styles.Error.Render(fmt.Sprintf("Copy failed: %v", err))
	}
	return m.styles.Success.Render("Copied CSV to clipboard")
}

// View renders the page.
func (m ModelPageModel) View() string {
	return m.viewport.View()
}
