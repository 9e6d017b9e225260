package advisor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate_SinglePair(t *testing.T) {
	warnings := Evaluate(DefaultRules(), []string{"self-control", "grit"})
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "Grit")
	assert.Contains(t, warnings[0], "Jangle risk")
}

func TestEvaluate_PairOrderIrrelevant(t *testing.T) {
	a := Evaluate(DefaultRules(), []string{"grit", "self-control"})
	b := Evaluate(DefaultRules(), []string{"self-control", "grit"})
	assert.Equal(t, b, a)
}

func TestEvaluate_NoPairsPresent(t *testing.T) {
	warnings := Evaluate(DefaultRules(), []string{"grit", "mindset", "conscientiousness"})
	assert.Empty(t, warnings)
}

func TestEvaluate_EmptySelection(t *testing.T) {
	assert.Empty(t, Evaluate(DefaultRules(), nil))
}

func TestEvaluate_MultipleRulesFireInDeclarationOrder(t *testing.T) {
	selected := []string{"executive-function", "self-regulation", "self-control", "grit"}
	warnings := Evaluate(DefaultRules(), selected)
	require.Len(t, warnings, 3)
	assert.Contains(t, warnings[0], "Grit")
	assert.Contains(t, warnings[1], "Self-regulation")
	assert.Contains(t, warnings[2], "EF tasks")
}

func TestEvaluate_CustomRuleExtension(t *testing.T) {
	rules := append(DefaultRules(), Rule{
		First:   "grit",
		Second:  "conscientiousness",
		Message: "Jangle risk: grit loads heavily on conscientiousness facets.",
	})
	warnings := Evaluate(rules, []string{"grit", "conscientiousness"})
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "conscientiousness")
}

func TestStripMarkdown(t *testing.T) {
	msg := DefaultRules()[0].Message
	plain := StripMarkdown(msg)
	assert.False(t, strings.Contains(plain, "**"), "bold markers should be stripped: %s", plain)
	assert.Contains(t, plain, "Self-control")
}
