package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ChartSeries is one construct's component vector with its display label.
type ChartSeries struct {
	Label  string
	Values []int // one level 0..3 per taxonomy dimension
}

// RenderComponentChart draws the terminal stand-in for the radar chart:
// one block per taxonomy dimension, with a colored horizontal bar per
// selected construct. Series colors follow ChartColor order, matching the
// legend.
func RenderComponentChart(styles Styles, taxonomy []string, series []ChartSeries) string {
	if len(series) == 0 {
		return styles.Muted.Render("No constructs selected.")
	}

	labelWidth := 0
	for _, s := range series {
		if w := lipgloss.Width(s.Label); w > labelWidth {
			labelWidth = w
		}
	}

	var sb strings.Builder

	// Legend
	for i, s := range series {
		if i > 0 {
			sb.WriteString("  ")
		}
		swatch := lipgloss.NewStyle().Foreground(ChartColor(i)).Render("■")
		sb.WriteString(swatch + " " + styles.Body.Render(s.Label))
	}
	sb.WriteString("\n\n")

	for dim, name := range taxonomy {
		sb.WriteString(styles.Bold.Render(name))
		sb.WriteString("\n")
		for i, s := range series {
			level := 0
			if dim < len(s.Values) {
				level = s.Values[dim]
			}
			bar := strings.Repeat("█", level*ChartCellWidth)
			pad := strings.Repeat("·", (ChartMaxLevel-level)*ChartCellWidth)
			sb.WriteString(fmt.Sprintf("  %-*s ", labelWidth, s.Label))
			sb.WriteString(lipgloss.NewStyle().Foreground(ChartColor(i)).Render(bar))
			sb.WriteString(styles.Muted.Render(pad))
			sb.WriteString(styles.Muted.Render(fmt.Sprintf(" %d", level)))
			sb.WriteString("\n")
		}
	}

	return sb.String()
}
