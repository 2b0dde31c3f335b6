// Package monthview renders a month grid as a heatmap.
package monthview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/heatcal/internal/activity"
	"github.com/julianstephens/heatcal/internal/calendar"
	"github.com/julianstephens/heatcal/internal/grid"
)

// Styles holds one style per heat level plus the header styles. Cell
// decorations (today, cursor, outside month) are layered on the heat style.
type Styles struct {
	Title   lipgloss.Style
	Weekday lipgloss.Style
	Legend  lipgloss.Style
	Heat    [activity.MaxLevel + 1]lipgloss.Style
}

type Model struct {
	grid      grid.Grid
	data      activity.Data
	cursor    calendar.Date
	hasCursor bool
	styles    Styles
}

func New(styles Styles) Model {
	return Model{styles: styles}
}

func (m *Model) SetGrid(g grid.Grid) { m.grid = g }

func (m *Model) SetData(data activity.Data) { m.data = data }

func (m *Model) SetStyles(styles Styles) { m.styles = styles }

func (m *Model) SetCursor(d calendar.Date) {
	m.cursor = d
	m.hasCursor = true
}

func (m Model) Grid() grid.Grid { return m.grid }

func (m Model) View() string {
	var cursor *calendar.Date
	if m.hasCursor {
		c := m.cursor
		cursor = &c
	}
	return Render(m.grid, m.data, cursor, m.styles)
}

// Render draws the title, weekday header and week rows of g. A nil cursor
// draws no selection.
func Render(g grid.Grid, data activity.Data, cursor *calendar.Date, styles Styles) string {
	rows := make([]string, 0, len(g.Cells)/7+2)
	rows = append(rows, styles.Title.Render(g.Title))

	header := make([]string, len(g.Weekdays))
	for i, wd := range g.Weekdays {
		header[i] = styles.Weekday.Render(wd)
	}
	rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, header...))

	selected := -1
	if cursor != nil {
		if i, ok := g.Find(*cursor); ok {
			selected = i
		}
	}
	for w, week := range g.Weeks() {
		cells := make([]string, len(week))
		for i, cell := range week {
			cells[i] = renderCell(cell, data.Count(cell.Key), w*7+i == selected, styles)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderCell(cell grid.Cell, count int, selected bool, styles Styles) string {
	style := styles.Heat[activity.Level(count)]
	if !cell.SameMonth {
		style = style.Faint(true)
	}
	if cell.IsToday {
		style = style.Bold(true).Underline(true)
	}
	if selected {
		style = style.Reverse(true)
	}
	return style.Render(cell.DisplayDay)
}

// Legend renders the "less ... more" scale of heat levels.
func Legend(styles Styles) string {
	var b strings.Builder
	b.WriteString(styles.Legend.Render("less "))
	for _, s := range styles.Heat {
		b.WriteString(s.Width(2).Render(" "))
	}
	b.WriteString(styles.Legend.Render(" more"))
	return b.String()
}
