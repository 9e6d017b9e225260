package kb

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const testDoc = `
schema_version: "0.2"
components_taxonomy:
  - inhibition
  - working-memory
  - cognitive-flexibility
  - goal-setting
  - self-monitoring
  - emotion-regulation
constructs:
  self-control:
    label: Self-Control
    synonyms: [willpower, impulse control]
    definition: Ability to override dominant responses in service of a goal.
    components:
      inhibition: strong
      emotion-regulation: medium
      goal-setting: 1
      hot-cognition: strong
    theories:
      - Strength model
    measures:
      - name: Brief Self-Control Scale
        type: self-report
        targets: [adults, adolescents]
        notes: 13 items
      - name: Delay of gratification task
        type: behavioral
        targets: [children]
  self-regulation:
    label: Self-Regulation
    synonyms: [SRL]
    definition: Cyclical process of planning, monitoring, and reflecting.
    components:
      goal-setting: strong
      self-monitoring: strong
      emotion-regulation: low
    measures:
      - name: MSLQ
        type: self-report
        targets: [students]
  grit:
    label: Grit
    definition: Perseverance and passion for long-term goals.
    components:
      goal-setting: Strong
      self-monitoring: LOW
models:
  dual-systems:
    label: Dual Systems
    domain: general
    dimensions:
      level of analysis: neural systems
      conflict: impulse vs control
    key_papers:
      - Metcalfe & Mischel (1999)
  srl-cycle:
    label: SRL Cycle
    domain: education/SRL
    dimensions:
      level of analysis: learning episode
      cognitive function: metacognition
`

func mustParse(t *testing.T) *KnowledgeBase {
	t.Helper()
	kbase, err := Parse([]byte(testDoc))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return kbase
}

func TestParse_FullDocument(t *testing.T) {
	kbase := mustParse(t)

	if kbase.SchemaVersion != "0.2" {
		t.Errorf("expected schema_version 0.2, got %q", kbase.SchemaVersion)
	}
	if kbase.UsedDefaultTaxonomy {
		t.Error("document provides a taxonomy, default should not be used")
	}
	if got := len(kbase.Taxonomy()); got != 6 {
		t.Errorf("expected 6 taxonomy dimensions, got %d", got)
	}

	c, err := kbase.Construct("self-control")
	if err != nil {
		t.Fatalf("Construct failed: %v", err)
	}
	if c.Label != "Self-Control" {
		t.Errorf("expected label Self-Control, got %q", c.Label)
	}
	if c.Components["inhibition"] != StrengthStrong {
		t.Errorf("expected inhibition=3, got %d", c.Components["inhibition"])
	}
	if c.Components["goal-setting"] != 1 {
		t.Errorf("expected goal-setting=1, got %d", c.Components["goal-setting"])
	}
	// Off-taxonomy dimensions are tolerated and kept.
	if c.Components["hot-cognition"] != StrengthStrong {
		t.Errorf("expected hot-cognition=3, got %d", c.Components["hot-cognition"])
	}
	if len(c.Measures) != 2 || c.Measures[0].Name != "Brief Self-Control Scale" {
		t.Errorf("unexpected measures: %+v", c.Measures)
	}

	m, err := kbase.Model("srl-cycle")
	if err != nil {
		t.Fatalf("Model failed: %v", err)
	}
	if m.Domain != "education/SRL" {
		t.Errorf("expected domain education/SRL, got %q", m.Domain)
	}
}

func TestParse_DocumentOrderPreserved(t *testing.T) {
	kbase := mustParse(t)
	want := []string{"self-control", "self-regulation", "grit"}
	got := kbase.ConstructKeys()
	if len(got) != len(want) {
		t.Fatalf("expected %d keys, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("key[%d]: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestParse_LabelDefaultsToKey(t *testing.T) {
	kbase, err := Parse([]byte("constructs:\n  ego-depletion: {}\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	c, err := kbase.Construct("ego-depletion")
	if err != nil {
		t.Fatalf("Construct failed: %v", err)
	}
	if c.Label != "ego-depletion" {
		t.Errorf("expected label to default to key, got %q", c.Label)
	}
}

func TestParse_MissingTaxonomyUsesDefault(t *testing.T) {
	kbase, err := Parse([]byte("constructs:\n  grit:\n    label: Grit\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if !kbase.UsedDefaultTaxonomy {
		t.Error("expected UsedDefaultTaxonomy=true")
	}
	if len(kbase.Taxonomy()) != len(DefaultTaxonomy) {
		t.Errorf("expected default taxonomy, got %v", kbase.Taxonomy())
	}
}

func TestParse_MissingConstructsIsSchemaInvalid(t *testing.T) {
	_, err := Parse([]byte("models: {}\n"))
	if !errors.Is(err, ErrSchemaInvalid) {
		t.Fatalf("expected ErrSchemaInvalid, got %v", err)
	}
}

func TestParse_NonMappingTopLevel(t *testing.T) {
	_, err := Parse([]byte("- a\n- b\n"))
	if !errors.Is(err, ErrSchemaInvalid) {
		t.Fatalf("expected ErrSchemaInvalid, got %v", err)
	}
}

func TestParse_MalformedYAML(t *testing.T) {
	_, err := Parse([]byte("constructs: [unclosed\n"))
	if !errors.Is(err, ErrParseFailure) {
		t.Fatalf("expected ErrParseFailure, got %v", err)
	}
}

func TestLoad_FirstExistingCandidateWins(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "missing.yaml")
	second := filepath.Join(dir, KBFileName)
	if err := os.WriteFile(second, []byte(testDoc), 0644); err != nil {
		t.Fatal(err)
	}

	kbase, err := Load([]string{first, second})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if kbase.Source != second {
		t.Errorf("expected source %s, got %s", second, kbase.Source)
	}
}

func TestLoad_NoCandidateNamesTriedPaths(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.yaml")
	b := filepath.Join(dir, "b.yaml")
	_, err := Load([]string{a, b})
	if !errors.Is(err, ErrLoadFailure) {
		t.Fatalf("expected ErrLoadFailure, got %v", err)
	}
	for _, p := range []string{a, b} {
		if !strings.Contains(err.Error(), p) {
			t.Errorf("error should name tried path %s: %v", p, err)
		}
	}
}

func TestCandidates_ExplicitPathFirst(t *testing.T) {
	paths := Candidates("/tmp/custom.yaml")
	if paths[0] != "/tmp/custom.yaml" {
		t.Errorf("explicit path should come first, got %v", paths)
	}
	last := paths[len(paths)-1]
	if last != filepath.Join("data", KBFileName) {
		t.Errorf("data/ fallback should come last, got %v", paths)
	}
}

func TestResolveStrength(t *testing.T) {
	cases := []struct {
		in   any
		want int
	}{
		{"low", 1},
		{"Low", 1},
		{"MEDIUM", 2},
		{"strong", 3},
		{"Strong", 3},
		{"overwhelming", 0},
		{"", 0},
		{"2", 2},
		{0, 0},
		{1, 1},
		{3, 3},
		{4, 0},
		{-1, 0},
		{2.5, 0},
		{nil, 0},
	}
	for _, tc := range cases {
		if got := ResolveStrength(tc.in); got != tc.want {
			t.Errorf("ResolveStrength(%v): expected %d, got %d", tc.in, tc.want, got)
		}
	}
}
