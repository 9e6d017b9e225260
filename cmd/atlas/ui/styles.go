// Package ui provides the Bubble Tea page models and lipgloss styling for
// the interactive construct browser.
package ui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette. The atlas leans on a muted academic scheme with one
// accent color per chart series.
var (
	// Light mode
	LightForeground = lipgloss.Color("#1f2430")
	LightPrimary    = lipgloss.Color("#2b5d8a")
	LightAccent     = lipgloss.Color("#2a9d8f")
	LightMuted      = lipgloss.Color("#8a8f98")
	LightBorder     = lipgloss.Color("#d5d9e0")

	// Dark mode
	DarkForeground = lipgloss.Color("#e6e8ee")
	DarkPrimary    = lipgloss.Color("#7fb4e0")
	DarkAccent     = lipgloss.Color("#64d3c5")
	DarkMuted      = lipgloss.Color("#6b7280")
	DarkBorder     = lipgloss.Color("#3a4150")

	// Semantic colors, same in both modes
	WarningColor = lipgloss.Color("#FFC107")
	ErrorColor   = lipgloss.Color("#e53935")
	SuccessColor = lipgloss.Color("#8BC34A")

	// Chart series colors, assigned to selected constructs in order
	ChartColors = []lipgloss.Color{
		lipgloss.Color("#e57373"),
		lipgloss.Color("#4db6ac"),
		lipgloss.Color("#ffd54f"),
		lipgloss.Color("#7986cb"),
		lipgloss.Color("#ff8a65"),
	}
)

// Theme holds the current color scheme.
type Theme struct {
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	IsDark     bool
}

// LightTheme returns the light mode theme.
func LightTheme() Theme {
	return Theme{
		Foreground: LightForeground,
		Primary:    LightPrimary,
		Accent:     LightAccent,
		Muted:      LightMuted,
		Border:     LightBorder,
		IsDark:     false,
	}
}

// DarkTheme returns the dark mode theme.
func DarkTheme() Theme {
	return Theme{
		Foreground: DarkForeground,
		Primary:    DarkPrimary,
		Accent:     DarkAccent,
		Muted:      DarkMuted,
		Border:     DarkBorder,
		IsDark:     true,
	}
}

// DetectTheme picks a theme from the terminal environment. COLORFGBG is
// the usual "fg;bg" hint; ATLAS_DARK_MODE=1 forces dark.
func DetectTheme() Theme {
	if os.Getenv("ATLAS_DARK_MODE") == "1" {
		return DarkTheme()
	}
	if colorTerm := os.Getenv("COLORFGBG"); colorTerm != "" {
		parts := strings.Split(colorTerm, ";")
		if len(parts) == 2 {
			if bgIdx, err := strconv.Atoi(parts[1]); err == nil {
				if (bgIdx >= 0 && bgIdx <= 6) || bgIdx == 8 {
					return DarkTheme()
				}
			}
		}
	}
	return LightTheme()
}

// Styles holds the styled components shared by every page model.
type Styles struct {
	Theme Theme

	Header   lipgloss.Style
	Footer   lipgloss.Style
	TabBar   lipgloss.Style
	Tab      lipgloss.Style
	TabFocus lipgloss.Style

	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Muted    lipgloss.Style
	Bold     lipgloss.Style

	Warning    lipgloss.Style
	WarningBox lipgloss.Style
	Error      lipgloss.Style
	Success    lipgloss.Style

	Prompt   lipgloss.Style
	Selected lipgloss.Style
	Card     lipgloss.Style
}

// NewStyles creates a Styles instance for the given theme.
func NewStyles(theme Theme) Styles {
	return Styles{
		Theme: theme,

		Header: lipgloss.NewStyle().
			Background(theme.Primary).
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 2).
			Bold(true),

		Footer: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Padding(0, 2),

		TabBar: lipgloss.NewStyle().
			BorderBottom(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(theme.Border),

		Tab: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Padding(0, 2),

		TabFocus: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true).
			Padding(0, 2).
			Underline(true),

		Title: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true).
			MarginBottom(1),

		Subtitle: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Italic(true),

		Body: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Bold: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Bold(true),

		Warning: lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true),

		WarningBox: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(WarningColor).
			Padding(0, 1),

		Error: lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true),

		Success: lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true),

		Prompt: lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true),

		Selected: lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),
	}
}

// DefaultStyles returns styles for the detected theme.
func DefaultStyles() Styles {
	return NewStyles(DetectTheme())
}

// ChartColor returns the series color for the i-th selected construct,
// cycling when the selection outgrows the palette.
func ChartColor(i int) lipgloss.Color {
	return ChartColors[i%len(ChartColors)]
}

// RenderDivider returns a horizontal divider of the given width.
func (s Styles) RenderDivider(width int) string {
	return s.Muted.Render(strings.Repeat("─", width))
}
