package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/heatcal/internal/activity"
	"github.com/julianstephens/heatcal/internal/constants"
	"github.com/julianstephens/heatcal/internal/tui/components/monthview"
)

// Theme is a named palette. Heat[0] colours empty days, Heat[MaxLevel] the busiest.
type Theme struct {
	Name   string
	Heat   [activity.MaxLevel + 1]lipgloss.Color
	Text   lipgloss.Color
	Muted  lipgloss.Color
	Accent lipgloss.Color
	Danger lipgloss.Color
}

var (
	LightTheme = Theme{
		Name:   constants.ThemeLight,
		Heat:   [activity.MaxLevel + 1]lipgloss.Color{"#ebedf0", "#9be9a8", "#40c463", "#30a14e", "#216e39"},
		Text:   lipgloss.Color("#24292f"),
		Muted:  lipgloss.Color("#8c959f"),
		Accent: lipgloss.Color("#0969da"),
		Danger: lipgloss.Color("#cf222e"),
	}

	DarkTheme = Theme{
		Name:   constants.ThemeDark,
		Heat:   [activity.MaxLevel + 1]lipgloss.Color{"#161b22", "#0e4429", "#006d32", "#26a641", "#39d353"},
		Text:   lipgloss.Color("#e6edf3"),
		Muted:  lipgloss.Color("#6e7681"),
		Accent: lipgloss.Color("#58a6ff"),
		Danger: lipgloss.Color("#f85149"),
	}
)

// ThemeNames lists the selectable theme settings in cycle order.
var ThemeNames = []string{constants.ThemeAuto, constants.ThemeLight, constants.ThemeDark}

// ResolveTheme maps a theme setting to a palette. "auto" follows the
// terminal background.
func ResolveTheme(name string, darkBackground bool) Theme {
	switch name {
	case constants.ThemeLight:
		return LightTheme
	case constants.ThemeDark:
		return DarkTheme
	}
	if darkBackground {
		return DarkTheme
	}
	return LightTheme
}

// NextThemeName returns the setting after name in ThemeNames.
func NextThemeName(name string) string {
	for i, n := range ThemeNames {
		if n == name {
			return ThemeNames[(i+1)%len(ThemeNames)]
		}
	}
	return ThemeNames[0]
}

// Styles are the rendered lipgloss styles of a Theme.
type Styles struct {
	Month    monthview.Styles
	Subtitle lipgloss.Style
	Modal    lipgloss.Style
	Error    lipgloss.Style
	Status   lipgloss.Style
	Doc      lipgloss.Style
}

const cellWidth = 4

func NewStyles(t Theme) Styles {
	s := Styles{
		Month: monthview.Styles{
			Title: lipgloss.NewStyle().
				Foreground(t.Accent).
				Bold(true).
				MarginBottom(1),
			Weekday: lipgloss.NewStyle().
				Foreground(t.Muted).
				Width(cellWidth).
				Align(lipgloss.Center),
			Legend: lipgloss.NewStyle().
				Foreground(t.Muted),
		},
		Subtitle: lipgloss.NewStyle().
			Foreground(t.Muted).
			Italic(true),
		Modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Accent).
			Padding(1, 2),
		Error: lipgloss.NewStyle().
			Foreground(t.Danger).
			Bold(true),
		Status: lipgloss.NewStyle().
			Foreground(t.Accent),
		Doc: lipgloss.NewStyle().Padding(1, 2),
	}
	for level, c := range t.Heat {
		fg := t.Text
		if level >= 2 {
			fg = lipgloss.Color("#ffffff")
		}
		s.Month.Heat[level] = lipgloss.NewStyle().
			Background(c).
			Foreground(fg).
			Width(cellWidth).
			Align(lipgloss.Center)
	}
	return s
}
