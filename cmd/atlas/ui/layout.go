// Package ui layout constants for consistent spacing and dimensions.
package ui

// Layout constants for viewport and pane sizing.
const (
	HeaderHeight = 1
	TabBarHeight = 2
	FooterHeight = 2

	// Constructs tab split: list on the left, card on the right.
	ListPaneRatio = 0.38
	PaneDivider   = 1

	SearchBoxHeight = 3

	// Chart geometry: strength levels span 0..3, each level two cells
	// wide so bars stay readable at narrow widths.
	ChartMaxLevel     = 3
	ChartCellWidth    = 2
	ChartLabelPadding = 2

	MinimumTerminalWidth  = 60
	MinimumTerminalHeight = 16
)

// SplitPaneWidths calculates list and detail pane widths for the
// constructs tab.
func SplitPaneWidths(totalWidth int) (listWidth, detailWidth int) {
	listWidth = int(float64(totalWidth) * ListPaneRatio)
	detailWidth = totalWidth - listWidth - PaneDivider
	return
}

// ContentHeight returns the height left for page content below the header
// and tab bar and above the footer.
func ContentHeight(totalHeight int) int {
	h := totalHeight - HeaderHeight - TabBarHeight - FooterHeight
	if h < 1 {
		h = 1
	}
	return h
}
