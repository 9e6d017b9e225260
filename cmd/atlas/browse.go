// This file implements the interactive browser using bubbletea.
package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/milaivanova-cpu/construct-atlas/cmd/atlas/ui"
	"github.com/milaivanova-cpu/construct-atlas/internal/kb"
)

// Tab indices of the browser.
const (
	tabConstructs = iota
	tabCompare
	tabModels
)

var tabNames = []string{"Constructs", "Compare", "Models"}

// browseModel is the top-level model for the interactive browser. It owns
// the loaded knowledge base and hands it by reference to every page; no
// page mutates it.
type browseModel struct {
	kbase  *kb.KnowledgeBase
	styles ui.Styles

	activeTab int

	constructs ui.ConstructPageModel
	compare    ui.ComparePageModel
	models     ui.ModelPageModel

	width  int
	height int
	ready  bool
}

func newBrowseModel(kbase *kb.KnowledgeBase) browseModel {
	styles := ui.DefaultStyles()
	return browseModel{
		kbase:      kbase,
		styles:     styles,
		constructs: ui.NewConstructPageModel(kbase, styles),
		compare:    ui.NewComparePageModel(kbase, styles),
		models:     ui.NewModelPageModel(kbase, styles),
	}
}

func (m browseModel) Init() tea.Cmd {
	return nil
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		contentHeight := ui.ContentHeight(msg.Height)
		m.constructs.SetSize(msg.Width, contentHeight)
		m.compare.SetSize(msg.Width, contentHeight)
		m.models.SetSize(msg.Width, contentHeight)
		m.compare.UpdateContent(m.constructs.Selection())
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyTab:
			// Tab cycles pages unless the search box is capturing input.
			if !m.searchActive() {
				m.activeTab = (m.activeTab + 1) % len(tabNames)
				if m.activeTab == tabCompare {
					m.compare.UpdateContent(m.constructs.Selection())
				}
				return m, nil
			}
		case tea.KeyEsc:
			if !m.searchActive() {
				return m, tea.Quit
			}
		}
		if !m.searchActive() {
			switch msg.String() {
			case "1":
				m.activeTab = tabConstructs
				return m, nil
			case "2":
				m.activeTab = tabCompare
				m.compare.UpdateContent(m.constructs.Selection())
				return m, nil
			case "3":
				m.activeTab = tabModels
				return m, nil
			case "q":
				return m, tea.Quit
			}
		}
	}

	var cmd tea.Cmd
	switch m.activeTab {
	case tabConstructs:
		m.constructs, cmd = m.constructs.Update(msg)
	case tabCompare:
		m.compare, cmd = m.compare.Update(msg)
	case tabModels:
		m.models, cmd = m.models.Update(msg)
	}
	return m, cmd
}

func (m browseModel) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.width < ui.MinimumTerminalWidth || m.height < ui.MinimumTerminalHeight {
		return m.styles.Error.Render("Terminal too small for the atlas browser.")
	}

	header := m.styles.Header.Width(m.width).Render("Construct Atlas — " + m.kbase.Source)

	tabs := make([]string, len(tabNames))
	for i, name := range tabNames {
		label := fmt.Sprintf("%d %s", i+1, name)
		if i == m.activeTab {
			tabs[i] = m.styles.TabFocus.Render(label)
		} else {
			tabs[i] = m.styles.Tab.Render(label)
		}
	}
	tabBar := m.styles.TabBar.Width(m.width).Render(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))

	var page string
	switch m.activeTab {
	case tabConstructs:
		page = m.constructs.View()
	case tabCompare:
		page = m.compare.View()
	case tabModels:
		page = m.models.View()
	}

	footer := m.styles.Footer.Render("tab/1-3 switch · / search · space select · q quit")

	return lipgloss.JoinVertical(lipgloss.Left, header, tabBar, page, footer)
}

// searchActive reports whether the constructs search box currently owns
// the keyboard, in which case tab-navigation keys pass through to it.
func (m browseModel) searchActive() bool {
	return m.activeTab == tabConstructs && m.constructs.SearchFocused()
}

// runBrowser loads the knowledge base and runs the interactive program.
// Load and schema failures abort before the terminal is taken over, with
// the tried candidate paths in the error.
func runBrowser() error {
	kbase, err := loadKB()
	if err != nil {
		return err
	}
	if kbase.UsedDefaultTaxonomy {
		fmt.Println("Note: document omits components_taxonomy; using the default axes.")
	}

	p := tea.NewProgram(newBrowseModel(kbase), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("browser terminated abnormally: %w", err)
	}
	return nil
}
