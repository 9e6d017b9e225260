// Package advisor flags likely jingle/jangle confusions between selected
// constructs.
//
// "Jingle" is the same name hiding different meanings; "jangle" is
// different names hiding the same underlying construct. The advisor is a
// static lookup over a declarative rule list documenting known pitfalls in
// the literature. It never infers anything from the data.
package advisor

import "strings"

// Rule fires when both of its keys appear in the selection. Adding a new
// known confound is a data edit here, not new control flow.
type Rule struct {
	First   string
	Second  string
	Message string
}

// DefaultRules returns the built-in confound rules, in emission order.
func DefaultRules() []Rule {
	return []Rule{
		{
			First:   "self-control",
			Second:  "grit",
			Message: "Jangle risk: **Self-control** and **Grit** often correlate and share self-report items.",
		},
		{
			First:   "self-control",
			Second:  "self-regulation",
			Message: "Jingle risk: **Self-control** (trait/impulse conflict) vs. **Self-regulation** (SRL process). Check definitions & measures.",
		},
		{
			First:   "executive-function",
			Second:  "self-control",
			Message: "Jangle risk: **EF tasks** are sometimes used as proxies for **Self-control**; construct scopes differ.",
		},
	}
}

// Evaluate returns the messages of every rule whose key pair is fully
// present in selected, in rule-declaration order. Rules are independent;
// several may fire at once.
func Evaluate(rules []Rule, selected []string) []string {
	present := make(map[string]bool, len(selected))
	for _, key := range selected {
		present[key] = true
	}
	var warnings []string
	for _, r := range rules {
		if present[r.First] && present[r.Second] {
			warnings = append(warnings, r.Message)
		}
	}
	return warnings
}

// StripMarkdown removes the bold markers from a warning for plain-text
// surfaces (CLI output, logs). The TUI renders them via glamour instead.
func StripMarkdown(msg string) string {
	return strings.ReplaceAll(msg, "**", "")
}
