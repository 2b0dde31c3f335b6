// Package grid lays out the days of a displayed month as six full weeks.
package grid

import (
	"github.com/julianstephens/heatcal/internal/calendar"
	"github.com/julianstephens/heatcal/internal/constants"
)

// Cell is one day of the grid. Cells are values and are never modified after
// Build returns them.
type Cell struct {
	Date       calendar.Date
	Key        string // canonical Gregorian YYYY-MM-DD, used for activity lookup
	DisplayDay string // day of month in the displayed system and digit style
	SameMonth  bool
	IsToday    bool
	CellKey    string
}

// Grid is the result of Build.
type Grid struct {
	Cells      []Cell
	MonthStart calendar.Date
	GridStart  calendar.Date
	Title      string
	MonthLabel string
	YearLabel  string
	Weekdays   [7]string
	Options    calendar.DisplayOptions
}

// Build returns the 42 days covering anchor's month in opts.System.
//
// The first column is opts.WeekStart, measured in real (Gregorian) weekdays
// whatever system is displayed. The run of SameMonth cells always has exactly
// DaysInMonth(anchor) entries and at most one cell is marked IsToday.
func Build(anchor calendar.Date, opts calendar.DisplayOptions, today calendar.Date) Grid {
	sys := opts.System
	monthStart := calendar.StartOfMonth(anchor, sys)
	back := (int(monthStart.Weekday()) - int(opts.WeekStart) + 7) % 7
	gridStart := monthStart.AddDays(-back)

	cells := make([]Cell, constants.GridCells)
	for i := range cells {
		d := gridStart.AddDays(i)
		cells[i] = Cell{
			Date:       d,
			Key:        d.Key(),
			DisplayDay: calendar.DayNumber(d, opts),
			SameMonth:  calendar.SameMonth(d, monthStart, sys),
			IsToday:    d == today,
			CellKey:    d.CellKey(),
		}
	}

	return Grid{
		Cells:      cells,
		MonthStart: monthStart,
		GridStart:  gridStart,
		Title:      calendar.Title(monthStart, opts),
		MonthLabel: calendar.MonthLabel(monthStart, opts),
		YearLabel:  calendar.YearLabel(monthStart, opts),
		Weekdays:   calendar.WeekdayLabels(opts),
		Options:    opts,
	}
}

// Weeks splits the cells into rows of seven.
func (g Grid) Weeks() [][]Cell {
	weeks := make([][]Cell, 0, len(g.Cells)/7)
	for i := 0; i+7 <= len(g.Cells); i += 7 {
		weeks = append(weeks, g.Cells[i:i+7])
	}
	return weeks
}

// Find returns the index of d in the grid.
func (g Grid) Find(d calendar.Date) (int, bool) {
	if len(g.Cells) == 0 {
		return 0, false
	}
	i := int(d - g.GridStart)
	if i < 0 || i >= len(g.Cells) {
		return 0, false
	}
	return i, true
}

// Keys returns the canonical keys of all cells in order.
func (g Grid) Keys() []string {
	keys := make([]string, len(g.Cells))
	for i, c := range g.Cells {
		keys[i] = c.Key
	}
	return keys
}

// MonthCells returns the cells that belong to the displayed month.
func (g Grid) MonthCells() []Cell {
	var out []Cell
	for _, c := range g.Cells {
		if c.SameMonth {
			out = append(out, c)
		}
	}
	return out
}
