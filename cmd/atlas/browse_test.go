package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/milaivanova-cpu/construct-atlas/internal/kb"
)

const browseTestDoc = `
components_taxonomy: [inhibition, goal-setting]
constructs:
  self-control:
    label: Self-Control
    definition: Overriding impulses.
    components: {inhibition: strong}
  grit:
    label: Grit
    components: {goal-setting: strong}
models:
  dual-systems:
    label: Dual Systems
    domain: general
    dimensions: {conflict: impulse vs control}
`

func testBrowseModel(t *testing.T) browseModel {
	t.Helper()
	kbase, err := kb.Parse([]byte(browseTestDoc))
	if err != nil {
		t.Fatalf("parsing test document: %v", err)
	}
	kbase.Source = filepath.Join(t.TempDir(), "constructs.yaml")
	return newBrowseModel(kbase)
}

func TestBrowseModel_TabSwitching(t *testing.T) {
	m := testBrowseModel(t)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 32})
	model := updated.(browseModel)

	view := model.View()
	if !strings.Contains(view, "Constructs") || !strings.Contains(view, "Compare") || !strings.Contains(view, "Models") {
		t.Fatalf("expected all tab names in view")
	}
	if !strings.Contains(view, "Self-Control") {
		t.Errorf("expected constructs page content on start")
	}

	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyTab})
	model = updated.(browseModel)
	if model.activeTab != tabCompare {
		t.Fatalf("expected compare tab after tab key, got %d", model.activeTab)
	}
	if !strings.Contains(model.View(), "Component coverage") {
		t.Errorf("expected compare page content")
	}

	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("3")})
	model = updated.(browseModel)
	if !strings.Contains(model.View(), "Dual Systems") {
		t.Errorf("expected models page content")
	}
}

func TestBrowseModel_QuitKeys(t *testing.T) {
	m := testBrowseModel(t)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 32})
	model := updated.(browseModel)

	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("expected quit command on ctrl+c")
	}
	_, cmd = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("expected quit command on q")
	}
}

func TestBrowseModel_TooSmallTerminal(t *testing.T) {
	m := testBrowseModel(t)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 30, Height: 8})
	model := updated.(browseModel)
	if !strings.Contains(model.View(), "Terminal too small") {
		t.Errorf("expected minimum-size notice")
	}
}

func TestLoadKB_ExplicitPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "kb.yaml")
	if err := os.WriteFile(path, []byte(browseTestDoc), 0644); err != nil {
		t.Fatal(err)
	}

	kbPath = path
	defer func() { kbPath = "" }()

	kbase, err := loadKB()
	if err != nil {
		t.Fatalf("loadKB failed: %v", err)
	}
	if kbase.Source != path {
		t.Errorf("expected source %s, got %s", path, kbase.Source)
	}
}

func TestLoadKB_MissingDocumentNamesCandidates(t *testing.T) {
	kbPath = filepath.Join(t.TempDir(), "absent.yaml")
	defer func() { kbPath = "" }()

	_, err := loadKB()
	if err == nil {
		t.Fatal("expected load failure")
	}
	if !strings.Contains(err.Error(), "absent.yaml") {
		t.Errorf("error should name the tried path: %v", err)
	}
}
