package grid

import "github.com/julianstephens/heatcal/internal/constants"

// TrimTrailingWeeks drops trailing weeks that contain no day of the displayed
// month, stopping at five weeks. It is a separate pass over a built grid for
// consumers that want a variable-height layout; Build itself always returns
// six weeks.
func TrimTrailingWeeks(g Grid) Grid {
	n := len(g.Cells)
	for n-7 >= constants.MinTrimmedCells {
		week := g.Cells[n-7 : n]
		if anySameMonth(week) {
			break
		}
		n -= 7
	}
	g.Cells = g.Cells[:n:n]
	return g
}

func anySameMonth(cells []Cell) bool {
	for _, c := range cells {
		if c.SameMonth {
			return true
		}
	}
	return false
}
