package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/milaivanova-cpu/construct-atlas/internal/kb"
)

// ConstructPageModel is the Constructs tab: a search box driving the
// knowledge-base search, the matching construct list, and a card viewport
// for the highlighted construct.
type ConstructPageModel struct {
	kbase    *kb.KnowledgeBase
	styles   Styles
	renderer *glamour.TermRenderer

	search   textinput.Model
	list     list.Model
	viewport viewport.Model

	searchFocused bool
	width         int
	height        int

	// Selection survives search-filter changes. selectedOrder keeps the
	// toggle order, which fixes chart series colors and card order on the
	// compare tab.
	selected      map[string]bool
	selectedOrder []string

	currentKey string
}

// constructItem adapts one construct to list.Item.
type constructItem struct {
	key      string
	label    string
	synonyms string
	selected bool
}

func (i constructItem) Title() string {
	if i.selected {
		return "✓ " + i.label
	}
	return "  " + i.label
}

func (i constructItem) Description() string {
	if i.synonyms == "" {
		return i.key
	}
	return i.synonyms
}

func (i constructItem) FilterValue() string { return i.label + " " + i.synonyms }

// NewConstructPageModel creates the Constructs tab over a loaded
// knowledge base. The initial selection is the canonical compare trio
// when present.
func NewConstructPageModel(kbase *kb.KnowledgeBase, styles Styles) ConstructPageModel {
	ti := textinput.New()
	ti.Placeholder = "Search constructs (name or synonym), / to focus"
	ti.Prompt = "🔎 "
	ti.CharLimit = 64
	ti.PromptStyle = styles.Prompt

	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Constructs"
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	// The knowledge-base search drives filtering; the list's own fuzzy
	// filter stays off so both paths cannot disagree.
	l.SetFilteringEnabled(false)
	l.Styles.Title = styles.Title

	vp := viewport.New(0, 0)

	var renderer *glamour.TermRenderer
	if styles.Theme.IsDark {
		renderer, _ = glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(76))
	} else {
		renderer, _ = glamour.NewTermRenderer(glamour.WithStylePath("light"), glamour.WithWordWrap(76))
	}

	m := ConstructPageModel{
		kbase:    kbase,
		styles:   styles,
		renderer: renderer,
		search:   ti,
		list:     l,
		viewport: vp,
		selected: make(map[string]bool),
	}
	for _, key := range kbase.DefaultCompareSelection() {
		m.selected[key] = true
		m.selectedOrder = append(m.selectedOrder, key)
	}
	m.refreshList()
	return m
}

// SearchFocused reports whether the search box owns the keyboard.
func (m ConstructPageModel) SearchFocused() bool {
	return m.searchFocused
}

// Selection returns the selected construct keys in toggle order.
func (m ConstructPageModel) Selection() []string {
	return m.selectedOrder
}

// SetSize updates pane dimensions.
func (m *ConstructPageModel) SetSize(w, h int) {
	m.width = w
	m.height = h
	listWidth, detailWidth := SplitPaneWidths(w)
	m.search.Width = listWidth - 4
	m.list.SetSize(listWidth, h-SearchBoxHeight)
	m.viewport.Width = detailWidth
	m.viewport.Height = h
	m.renderCard()
}

// Update handles messages for the Constructs tab.
func (m ConstructPageModel) Update(msg tea.Msg) (ConstructPageModel, tea.Cmd) {
	var cmds []tea.Cmd

	if key, ok := msg.(tea.KeyMsg); ok {
		if m.searchFocused {
			switch key.Type {
			case tea.KeyEsc, tea.KeyEnter:
				m.searchFocused = false
				m.search.Blur()
				return m, nil
			default:
				before := m.search.Value()
				var cmd tea.Cmd
				m.search, cmd = m.search.Update(msg)
				if m.search.Value() != before {
					m.refreshList()
				}
				return m, cmd
			}
		}

		switch key.String() {
		case "/":
			m.searchFocused = true
			m.search.Focus()
			return m, textinput.Blink
		case " ":
			m.toggleSelection()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	cmds = append(cmds, cmd)

	// Track highlight changes so the card follows the cursor.
	if item, ok := m.list.SelectedItem().(constructItem); ok && item.key != m.currentKey {
		m.currentKey = item.key
		m.renderCard()
	}

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// View renders the split pane: search + list left, card right.
func (m ConstructPageModel) View() string {
	left := lipgloss.JoinVertical(lipgloss.Left, m.search.View(), "", m.list.View())
	divider := strings.Repeat(" ", PaneDivider)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, divider, m.viewport.View())
}

func (m *ConstructPageModel) toggleSelection() {
	item, ok := m.list.SelectedItem().(constructItem)
	if !ok {
		return
	}
	if m.selected[item.key] {
		delete(m.selected, item.key)
		for i, key := range m.selectedOrder {
			if key == item.key {
				m.selectedOrder = append(m.selectedOrder[:i], m.selectedOrder[i+1:]...)
				break
			}
		}
	} else {
		m.selected[item.key] = true
		m.selectedOrder = append(m.selectedOrder, item.key)
	}
	m.refreshList()
}

// refreshList rebuilds the visible items from the current search query,
// preserving the highlighted construct where possible.
func (m *ConstructPageModel) refreshList() {
	keys := m.kbase.SearchConstructs(m.search.Value())
	items := make([]list.Item, 0, len(keys))
	for _, key := range keys {
		c := mustConstruct(m.kbase, key)
		items = append(items, constructItem{
			key:      key,
			label:    c.Label,
			synonyms: strings.Join(c.Synonyms, ", "),
			selected: m.selected[key],
		})
	}
	m.list.SetItems(items)
	if item, ok := m.list.SelectedItem().(constructItem); ok {
		m.currentKey = item.key
	} else {
		m.currentKey = ""
	}
	m.renderCard()
}

func (m *ConstructPageModel) renderCard() {
	if m.currentKey == "" {
		m.viewport.SetContent(m.styles.Muted.Render("No construct matches the search."))
		return
	}
	c := mustConstruct(m.kbase, m.currentKey)
	md := ConstructCard(c)
	if m.renderer != nil {
		if out, err := m.renderer.Render(md); err == nil {
			m.viewport.SetContent(out)
			return
		}
	}
	m.viewport.SetContent(md)
}

// ConstructCard builds the markdown card for one construct, mirroring the
// card layout of the atlas: definition, components with their authored
// strengths, theories, mechanisms, interventions, outcomes, citations.
func ConstructCard(c kb.Construct) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", c.Label)
	if len(c.Synonyms) > 0 {
		fmt.Fprintf(&sb, "*%s*\n\n", strings.Join(c.Synonyms, ", "))
	}
	if c.Definition != "" {
		fmt.Fprintf(&sb, "**Definition:** %s\n\n", c.Definition)
	}
	if len(c.RawComponents) > 0 {
		var parts []string
		for _, dim := range sortedComponentDims(c) {
			parts = append(parts, fmt.Sprintf("%s (%s)", dim, c.RawComponents[dim]))
		}
		fmt.Fprintf(&sb, "**Key components:** %s\n\n", strings.Join(parts, ", "))
	}
	if len(c.Theories) > 0 {
		fmt.Fprintf(&sb, "**Theories:** %s\n\n", strings.Join(c.Theories, "; "))
	}
	if len(c.Mechanisms) > 0 {
		fmt.Fprintf(&sb, "**Mechanisms:** %s\n\n", strings.Join(c.Mechanisms, "; "))
	}
	if len(c.Interventions) > 0 {
		sb.WriteString("**Interventions:**\n\n")
		for _, iv := range c.Interventions {
			fmt.Fprintf(&sb, "- %s → %s (%s)\n", iv.Name, strings.Join(iv.TargetComponents, ", "), iv.Strength)
		}
		sb.WriteString("\n")
	}
	if len(c.ExemplarOutcomes) > 0 {
		fmt.Fprintf(&sb, "**Outcomes:** %s\n\n", strings.Join(c.ExemplarOutcomes, ", "))
	}
	if len(c.Citations) > 0 {
		sb.WriteString("**Citations:**\n\n")
		for _, cit := range c.Citations {
			fmt.Fprintf(&sb, "- %s\n", cit)
		}
		sb.WriteString("\n")
	}
	if c.Notes != "" {
		fmt.Fprintf(&sb, "> %s\n", c.Notes)
	}
	return sb.String()
}

// sortedComponentDims orders a construct's component dimensions by the
// resolved strength, strongest first, so cards lead with what the
// construct is about. Ties keep alphabetical order for stability.
func sortedComponentDims(c kb.Construct) []string {
	dims := make([]string, 0, len(c.RawComponents))
	for dim := range c.RawComponents {
		dims = append(dims, dim)
	}
	sort.Slice(dims, func(i, j int) bool {
		if c.Components[dims[i]] != c.Components[dims[j]] {
			return c.Components[dims[i]] > c.Components[dims[j]]
		}
		return dims[i] < dims[j]
	})
	return dims
}

// mustConstruct asserts a key sourced from the knowledge base itself still
// resolves. A miss is a programming error, never a user-facing condition.
func mustConstruct(kbase *kb.KnowledgeBase, key string) kb.Construct {
	c, err := kbase.Construct(key)
	if err != nil {
		panic(fmt.Sprintf("construct key %q vanished from an immutable knowledge base: %v", key, err))
	}
	return c
}
