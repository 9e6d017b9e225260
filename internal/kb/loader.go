package kb

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Error taxonomy for the load path. Callers discriminate with errors.Is.
var (
	// ErrLoadFailure: no candidate path exists or the file is unreadable.
	ErrLoadFailure = errors.New("knowledge base not found")
	// ErrParseFailure: the file exists but is not well-formed YAML.
	ErrParseFailure = errors.New("knowledge base is not valid YAML")
	// ErrSchemaInvalid: parsed content is not a mapping, or the required
	// constructs section is missing or malformed.
	ErrSchemaInvalid = errors.New("knowledge base schema invalid")
	// ErrNotFound: an accessor was given a key absent from its collection.
	// This indicates a caller bug, not a user-facing condition.
	ErrNotFound = errors.New("not found")
)

// KBFileName is the canonical document name searched at each candidate
// location.
const KBFileName = "constructs.yaml"

// EnvKBPath overrides the candidate search when set.
const EnvKBPath = "ATLAS_KB"

// KnowledgeBase is the immutable in-memory knowledge base. Build one with
// Load and pass it by reference; there is no process-global cache.
type KnowledgeBase struct {
	SchemaVersion string
	Source        string // path the document was read from

	// UsedDefaultTaxonomy reports that the document omitted
	// components_taxonomy and DefaultTaxonomy was substituted.
	UsedDefaultTaxonomy bool

	taxonomy       []string
	constructs     map[string]Construct
	constructOrder []string
	models         map[string]ComparisonModel
	modelOrder     []string
}

// Candidates returns the ordered list of paths tried by Load. An explicit
// path (flag or ATLAS_KB) goes first, then the document next to the
// executable, the working directory, and the data/ subdirectory.
func Candidates(explicit string) []string {
	var paths []string
	if explicit != "" {
		paths = append(paths, explicit)
	} else if env := os.Getenv(EnvKBPath); env != "" {
		paths = append(paths, env)
	}
	if exe, err := os.Executable(); err == nil {
		paths = append(paths, filepath.Join(filepath.Dir(exe), KBFileName))
	}
	paths = append(paths, KBFileName, filepath.Join("data", KBFileName))
	return paths
}

// Load reads the first candidate path that exists and parses it into a
// KnowledgeBase. The file is read exactly once; the returned instance is
// the session's snapshot.
func Load(candidates []string) (*KnowledgeBase, error) {
	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("%w: reading %s: %v", ErrLoadFailure, path, err)
		}
		kbase, err := Parse(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		kbase.Source = path
		return kbase, nil
	}
	return nil, fmt.Errorf("%w: tried %s", ErrLoadFailure, strings.Join(candidates, ", "))
}

// Parse builds a KnowledgeBase from raw document bytes. Split out from
// Load so tests and embedded documents can bypass the filesystem.
func Parse(data []byte) (*KnowledgeBase, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParseFailure, err)
	}
	if len(doc.Content) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrSchemaInvalid)
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: top level is not a mapping", ErrSchemaInvalid)
	}

	kbase := &KnowledgeBase{
		constructs: make(map[string]Construct),
		models:     make(map[string]ComparisonModel),
	}

	constructsNode, modelsNode := (*yaml.Node)(nil), (*yaml.Node)(nil)
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		switch key.Value {
		case "schema_version":
			kbase.SchemaVersion = value.Value
		case "components_taxonomy":
			if err := value.Decode(&kbase.taxonomy); err != nil {
				return nil, fmt.Errorf("%w: components_taxonomy: %v", ErrSchemaInvalid, err)
			}
		case "constructs":
			constructsNode = value
		case "models":
			modelsNode = value
		}
	}

	if len(kbase.taxonomy) == 0 {
		kbase.taxonomy = append([]string(nil), DefaultTaxonomy...)
		kbase.UsedDefaultTaxonomy = true
	}

	if constructsNode == nil {
		return nil, fmt.Errorf("%w: missing constructs section", ErrSchemaInvalid)
	}
	if constructsNode.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: constructs is not a mapping", ErrSchemaInvalid)
	}
	for i := 0; i+1 < len(constructsNode.Content); i += 2 {
		key := constructsNode.Content[i].Value
		c, err := parseConstruct(key, constructsNode.Content[i+1])
		if err != nil {
			return nil, err
		}
		kbase.constructs[key] = c
		kbase.constructOrder = append(kbase.constructOrder, key)
	}

	if modelsNode != nil {
		if modelsNode.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("%w: models is not a mapping", ErrSchemaInvalid)
		}
		for i := 0; i+1 < len(modelsNode.Content); i += 2 {
			key := modelsNode.Content[i].Value
			m, err := parseModel(key, modelsNode.Content[i+1])
			if err != nil {
				return nil, err
			}
			kbase.models[key] = m
			kbase.modelOrder = append(kbase.modelOrder, key)
		}
	}

	return kbase, nil
}

// rawConstruct mirrors the document shape of one construct entry before
// normalization. Component values stay untyped here because the format
// allows both categorical labels and numeric levels.
type rawConstruct struct {
	Label            string            `yaml:"label"`
	Synonyms         []string          `yaml:"synonyms"`
	Definition       string            `yaml:"definition"`
	Components       map[string]any    `yaml:"components"`
	Theories         []string          `yaml:"theories"`
	Mechanisms       []string          `yaml:"mechanisms"`
	ExemplarOutcomes []string          `yaml:"exemplar_outcomes"`
	Interventions    []rawIntervention `yaml:"interventions"`
	Measures         []rawMeasure      `yaml:"measures"`
	Citations        []string          `yaml:"citations"`
	Notes            string            `yaml:"notes"`
}

type rawIntervention struct {
	Name             string   `yaml:"name"`
	TargetComponents []string `yaml:"target_components"`
	Strength         string   `yaml:"strength"`
}

type rawMeasure struct {
	Name    string   `yaml:"name"`
	Type    string   `yaml:"type"`
	Targets []string `yaml:"targets"`
	Notes   string   `yaml:"notes"`
}

type rawModel struct {
	Label      string            `yaml:"label"`
	Domain     string            `yaml:"domain"`
	Dimensions map[string]string `yaml:"dimensions"`
	KeyPapers  []string          `yaml:"key_papers"`
}

func parseConstruct(key string, node *yaml.Node) (Construct, error) {
	var raw rawConstruct
	if err := node.Decode(&raw); err != nil {
		return Construct{}, fmt.Errorf("%w: construct %q: %v", ErrSchemaInvalid, key, err)
	}

	c := Construct{
		Key:              key,
		Label:            raw.Label,
		Synonyms:         raw.Synonyms,
		Definition:       raw.Definition,
		Components:       make(map[string]int, len(raw.Components)),
		RawComponents:    make(map[string]string, len(raw.Components)),
		Theories:         raw.Theories,
		Mechanisms:       raw.Mechanisms,
		ExemplarOutcomes: raw.ExemplarOutcomes,
		Citations:        raw.Citations,
		Notes:            raw.Notes,
	}
	if c.Label == "" {
		c.Label = key
	}
	for dim, v := range raw.Components {
		c.Components[dim] = ResolveStrength(v)
		c.RawComponents[dim] = fmt.Sprintf("%v", v)
	}
	for _, iv := range raw.Interventions {
		c.Interventions = append(c.Interventions, Intervention(iv))
	}
	for _, m := range raw.Measures {
		c.Measures = append(c.Measures, Measure(m))
	}
	return c, nil
}

func parseModel(key string, node *yaml.Node) (ComparisonModel, error) {
	var raw rawModel
	if err := node.Decode(&raw); err != nil {
		return ComparisonModel{}, fmt.Errorf("%w: model %q: %v", ErrSchemaInvalid, key, err)
	}
	m := ComparisonModel{
		Key:        key,
		Label:      raw.Label,
		Domain:     raw.Domain,
		Dimensions: raw.Dimensions,
		KeyPapers:  raw.KeyPapers,
	}
	if m.Label == "" {
		m.Label = key
	}
	if m.Domain == "" {
		m.Domain = "general"
	}
	if m.Dimensions == nil {
		m.Dimensions = map[string]string{}
	}
	return m, nil
}

// ResolveStrength normalizes one component value to an integer level in
// [0,3]. Categorical labels resolve case-insensitively (low=1, medium=2,
// strong=3); numeric values in range pass through; everything else is 0.
func ResolveStrength(v any) int {
	switch val := v.(type) {
	case int:
		if val >= StrengthNone && val <= StrengthStrong {
			return val
		}
	case string:
		switch strings.ToLower(strings.TrimSpace(val)) {
		case "low":
			return StrengthLow
		case "medium":
			return StrengthMedium
		case "strong":
			return StrengthStrong
		default:
			// Authors occasionally quote numeric levels.
			if n, err := strconv.Atoi(strings.TrimSpace(val)); err == nil && n >= StrengthNone && n <= StrengthStrong {
				return n
			}
		}
	}
	return StrengthNone
}
