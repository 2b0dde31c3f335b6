package grid

import (
	"time"

	"github.com/julianstephens/heatcal/internal/calendar"
)

type cacheKey struct {
	month     calendar.Date
	system    string
	weekStart time.Weekday
	digits    calendar.DigitStyle
	language  string
	today     calendar.Date
}

// Cache memoizes Build. The grid is rebuilt only when the displayed month,
// the system, the week start, the label settings or today's date change.
// A Cache is not safe for concurrent use.
type Cache struct {
	key    cacheKey
	grid   Grid
	valid  bool
	builds int
}

// Get returns the grid for the given inputs, building it if needed.
func (c *Cache) Get(anchor calendar.Date, opts calendar.DisplayOptions, today calendar.Date) Grid {
	key := cacheKey{
		month:     calendar.StartOfMonth(anchor, opts.System),
		system:    opts.System.Name(),
		weekStart: opts.WeekStart,
		digits:    opts.Digits,
		language:  opts.Language.String(),
		today:     today,
	}
	if c.valid && c.key == key {
		return c.grid
	}
	c.grid = Build(anchor, opts, today)
	c.key = key
	c.valid = true
	c.builds++
	return c.grid
}

// Builds reports how many times the cache has called Build.
func (c *Cache) Builds() int {
	return c.builds
}
