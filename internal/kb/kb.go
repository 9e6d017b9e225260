package kb

import (
	"fmt"
	"strings"
)

// Taxonomy returns the ordered component dimensions (document-provided or
// DefaultTaxonomy). Callers must not mutate the returned slice.
func (k *KnowledgeBase) Taxonomy() []string {
	return k.taxonomy
}

// ConstructKeys returns every construct key in document order.
func (k *KnowledgeBase) ConstructKeys() []string {
	return k.constructOrder
}

// Construct returns the construct for key, or ErrNotFound.
func (k *KnowledgeBase) Construct(key string) (Construct, error) {
	c, ok := k.constructs[key]
	if !ok {
		return Construct{}, fmt.Errorf("construct %q: %w", key, ErrNotFound)
	}
	return c, nil
}

// ComponentVector derives the comparison vector for one construct: one
// strength level per taxonomy dimension, in taxonomy order. Dimensions the
// construct does not describe resolve to 0.
func (k *KnowledgeBase) ComponentVector(key string) ([]int, error) {
	c, err := k.Construct(key)
	if err != nil {
		return nil, err
	}
	vec := make([]int, len(k.taxonomy))
	for i, dim := range k.taxonomy {
		vec[i] = c.Components[dim]
	}
	return vec, nil
}

// SearchConstructs filters construct keys by a case-insensitive substring
// match over label and synonyms. The empty query returns all keys. Order
// follows ConstructKeys.
func (k *KnowledgeBase) SearchConstructs(query string) []string {
	if query == "" {
		return k.constructOrder
	}
	q := strings.ToLower(query)
	var keys []string
	for _, key := range k.constructOrder {
		c := k.constructs[key]
		if strings.Contains(strings.ToLower(c.Label), q) {
			keys = append(keys, key)
			continue
		}
		for _, syn := range c.Synonyms {
			if strings.Contains(strings.ToLower(syn), q) {
				keys = append(keys, key)
				break
			}
		}
	}
	return keys
}

// MeasureRows flattens the measures of the given constructs into table
// rows: constructs in the given order, measures in document order within
// each construct. An empty key list yields an empty result.
func (k *KnowledgeBase) MeasureRows(keys []string) ([]MeasureRow, error) {
	var rows []MeasureRow
	for _, key := range keys {
		c, err := k.Construct(key)
		if err != nil {
			return nil, err
		}
		for _, m := range c.Measures {
			rows = append(rows, MeasureRow{
				ConstructLabel: c.Label,
				Measure:        m.Name,
				Type:           m.Type,
				Targets:        strings.Join(m.Targets, ", "),
				Notes:          m.Notes,
			})
		}
	}
	return rows, nil
}

// ModelKeys returns every comparison-model key in document order.
func (k *KnowledgeBase) ModelKeys() []string {
	return k.modelOrder
}

// Model returns the comparison model for key, or ErrNotFound.
func (k *KnowledgeBase) Model(key string) (ComparisonModel, error) {
	m, ok := k.models[key]
	if !ok {
		return ComparisonModel{}, fmt.Errorf("model %q: %w", key, ErrNotFound)
	}
	return m, nil
}

// ModelsByDomain returns the keys of models whose domain matches. The
// DomainAll sentinel returns every model unfiltered.
func (k *KnowledgeBase) ModelsByDomain(domain string) []string {
	if domain == DomainAll {
		return k.modelOrder
	}
	var keys []string
	for _, key := range k.modelOrder {
		if k.models[key].Domain == domain {
			keys = append(keys, key)
		}
	}
	return keys
}

// Domains returns the distinct model domains in first-seen document order,
// prefixed by the DomainAll sentinel.
func (k *KnowledgeBase) Domains() []string {
	domains := []string{DomainAll}
	seen := map[string]bool{}
	for _, key := range k.modelOrder {
		d := k.models[key].Domain
		if !seen[d] {
			seen[d] = true
			domains = append(domains, d)
		}
	}
	return domains
}

// ModelDimensionTable projects the selected models onto the given
// dimensions: one row per dimension, one column per model, Placeholder for
// values a model does not describe. Empty keys yield a table with no
// columns, not an error.
func (k *KnowledgeBase) ModelDimensionTable(keys, dims []string) (DimensionTable, error) {
	table := DimensionTable{
		Dimensions: dims,
		ModelKeys:  keys,
		Labels:     make([]string, 0, len(keys)),
		Cells:      make([][]string, len(dims)),
	}
	models := make([]ComparisonModel, 0, len(keys))
	for _, key := range keys {
		m, err := k.Model(key)
		if err != nil {
			return DimensionTable{}, err
		}
		models = append(models, m)
		table.Labels = append(table.Labels, m.Label)
	}
	for i, dim := range dims {
		row := make([]string, len(models))
		for j, m := range models {
			if v, ok := m.Dimensions[dim]; ok && v != "" {
				row[j] = v
			} else {
				row[j] = Placeholder
			}
		}
		table.Cells[i] = row
	}
	return table, nil
}

// defaultCompareKeys is the selection preloaded by the browser when the
// document carries the classic trio.
var defaultCompareKeys = []string{"self-control", "self-regulation", "executive-function"}

// DefaultCompareSelection returns the canonical starter selection
// restricted to constructs actually present in the document.
func (k *KnowledgeBase) DefaultCompareSelection() []string {
	var keys []string
	for _, key := range defaultCompareKeys {
		if _, ok := k.constructs[key]; ok {
			keys = append(keys, key)
		}
	}
	return keys
}
