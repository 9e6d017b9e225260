package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// DataTable renders static tabular data (measures, model dimensions).
// Long cells are truncated to MaxColWidth so a wide Notes column cannot
// push the table off screen.
type DataTable struct {
	Title       string
	Headers     []string
	Rows        [][]string
	MaxColWidth int
}

// NewDataTable creates a table with the given title and headers.
func NewDataTable(title string, headers ...string) *DataTable {
	return &DataTable{
		Title:       title,
		Headers:     headers,
		MaxColWidth: 40,
	}
}

// AddRow appends one row. Short rows are padded to the header width.
func (t *DataTable) AddRow(cells ...string) {
	row := make([]string, len(t.Headers))
	copy(row, cells)
	t.Rows = append(t.Rows, row)
}

// View renders the table using the provided styles.
func (t *DataTable) View(styles Styles) string {
	if len(t.Rows) == 0 {
		return ""
	}

	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if w := lipgloss.Width(t.clip(cell)); w > widths[i] {
				widths[i] = w
			}
		}
	}

	headerStyle := styles.Bold.Padding(0, 1)
	cellStyle := styles.Body.Padding(0, 1)
	sepStyle := styles.Muted

	var sb strings.Builder
	if t.Title != "" {
		sb.WriteString(styles.Title.Render(t.Title))
		sb.WriteString("\n")
	}

	total := len(t.Headers) - 1
	for i, h := range t.Headers {
		sb.WriteString(headerStyle.Width(widths[i] + 2).Render(h))
		if i < len(t.Headers)-1 {
			sb.WriteString(sepStyle.Render("│"))
		}
		total += widths[i] + 2
	}
	sb.WriteString("\n")
	sb.WriteString(sepStyle.Render(strings.Repeat("─", total)))
	sb.WriteString("\n")

	for _, row := range t.Rows {
		for i, cell := range row {
			sb.WriteString(cellStyle.Width(widths[i] + 2).Render(t.clip(cell)))
			if i < len(row)-1 {
				sb.WriteString(sepStyle.Render("│"))
			}
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func (t *DataTable) clip(s string) string {
	if t.MaxColWidth > 3 && len(s) > t.MaxColWidth {
		return s[:t.MaxColWidth-3] + "..."
	}
	return s
}
