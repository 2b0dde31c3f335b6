// Package navigation owns the displayed month: which day anchors the view and
// how it moves when the user pages through months and years.
package navigation

import (
	"time"

	"golang.org/x/text/language"

	"github.com/julianstephens/heatcal/internal/calendar"
	"github.com/julianstephens/heatcal/internal/grid"
)

// Controller is the single writer of the display anchor and display options.
// Transitions are always allowed; bounds, if any, belong to the embedding
// application.
type Controller struct {
	anchor calendar.Date
	opts   calendar.DisplayOptions
	cache  grid.Cache
}

// New creates a controller showing anchor's month.
func New(anchor calendar.Date, opts calendar.DisplayOptions) *Controller {
	return &Controller{anchor: anchor, opts: opts}
}

// Anchor returns the day whose month is displayed.
func (c *Controller) Anchor() calendar.Date { return c.anchor }

// Options returns the current display options.
func (c *Controller) Options() calendar.DisplayOptions { return c.opts }

// System returns the active calendar system.
func (c *Controller) System() calendar.System { return c.opts.System }

// NavigateMonth moves the anchor by delta months in the active system.
func (c *Controller) NavigateMonth(delta int) {
	c.anchor = calendar.AddMonths(c.anchor, c.opts.System, delta)
}

// NavigateYear moves the anchor by delta years in the active system.
func (c *Controller) NavigateYear(delta int) {
	c.anchor = calendar.AddYears(c.anchor, c.opts.System, delta)
}

// GoTo anchors the view on d.
func (c *Controller) GoTo(d calendar.Date) {
	c.anchor = d
}

// Today anchors the view on the civil day of now.
func (c *Controller) Today(now time.Time) {
	c.anchor = calendar.FromTime(now)
}

// SwitchSystem changes the displayed calendar system. The anchor is an
// absolute day, so the same real-world day stays displayed.
func (c *Controller) SwitchSystem(sys calendar.System) {
	c.opts = c.opts.WithSystem(sys)
}

// ToggleSystem switches between the supported systems in order.
func (c *Controller) ToggleSystem() calendar.System {
	systems := calendar.Systems()
	for i, s := range systems {
		if s == c.opts.System {
			c.SwitchSystem(systems[(i+1)%len(systems)])
			return c.opts.System
		}
	}
	c.SwitchSystem(systems[0])
	return c.opts.System
}

// SetWeekStart changes the first grid column.
func (c *Controller) SetWeekStart(wd time.Weekday) {
	c.opts = c.opts.WithWeekStart(wd)
}

// SetDigits changes the digit style of day and year labels.
func (c *Controller) SetDigits(digits calendar.DigitStyle) {
	c.opts = c.opts.WithDigits(digits)
}

// SetLanguage changes the label language.
func (c *Controller) SetLanguage(tag language.Tag) {
	c.opts = c.opts.WithLanguage(tag)
}

// Grid returns the grid for the current state, reusing the previous one when
// nothing that affects it has changed.
func (c *Controller) Grid(today calendar.Date) grid.Grid {
	return c.cache.Get(c.anchor, c.opts, today)
}
