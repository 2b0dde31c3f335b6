package show

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/heatcal/internal/activity"
	"github.com/julianstephens/heatcal/internal/calendar"
	"github.com/julianstephens/heatcal/internal/cli"
	"github.com/julianstephens/heatcal/internal/constants"
	"github.com/julianstephens/heatcal/internal/grid"
	"github.com/julianstephens/heatcal/internal/logger"
	"github.com/julianstephens/heatcal/internal/models"
	"github.com/julianstephens/heatcal/internal/tui"
	"github.com/julianstephens/heatcal/internal/tui/components/monthview"
	"github.com/julianstephens/heatcal/internal/utils"
)

type ShowCmd struct {
	Month      string `help:"Month to show as YYYY-MM, counted in the selected calendar system (default: current month)."`
	Calendar   string `help:"Calendar system: gregorian or jalali." short:"c"`
	WeekStart  string `help:"First day of the week, e.g. sunday, saturday or monday."`
	Digits     string `help:"Digit style: latin or persian."`
	Lang       string `help:"Label language as a BCP 47 tag, e.g. en or fa."`
	Theme      string `help:"Color theme: auto, light or dark."`
	JSON       bool   `name:"json" help:"Print the grid as JSON."`
	Activities string `help:"Read activity data from a JSON file instead of the store." type:"existingfile"`
	Demo       bool   `help:"Show generated demo activity instead of the store."`
	Seed       uint64 `help:"Seed for --demo." default:"1"`
	Trim       bool   `help:"Drop trailing weeks that fall entirely in the next month."`
}

// Validate rejects unknown names before the store is touched.
func (c *ShowCmd) Validate() error {
	if c.Activities != "" && c.Demo {
		return errors.New("--activities and --demo cannot be used together")
	}
	if c.Calendar != "" {
		if _, err := calendar.ParseSystem(c.Calendar); err != nil {
			return err
		}
	}
	if c.Theme != "" {
		switch c.Theme {
		case constants.ThemeAuto, constants.ThemeLight, constants.ThemeDark:
		default:
			return fmt.Errorf("unknown theme %q (expected auto, light or dark)", c.Theme)
		}
	}
	return nil
}

func (c *ShowCmd) Run(ctx *cli.Context) error {
	return c.render(ctx, os.Stdout)
}

func (c *ShowCmd) render(ctx *cli.Context, w io.Writer) error {
	if err := c.Validate(); err != nil {
		return err
	}

	useStore := c.Activities == "" && !c.Demo
	var settings models.Settings
	if err := ctx.LoadStore(); err != nil {
		if useStore {
			return err
		}
		logger.Debug("Showing without stored settings", "error", err)
		models.ApplyDefaultSettings(&settings)
	} else {
		s, err := ctx.Settings()
		if err != nil {
			return err
		}
		settings = s
	}

	opts, err := c.options(settings)
	if err != nil {
		return err
	}

	today, err := ctx.Today(settings)
	if err != nil {
		return err
	}
	anchor := today
	if c.Month != "" {
		anchor, err = utils.ParseMonth(c.Month, opts.System)
		if err != nil {
			return err
		}
	}

	g := grid.Build(anchor, opts, today)
	if c.Trim {
		g = grid.TrimTrailingWeeks(g)
	}

	data, err := c.loadData(ctx, g, useStore)
	if err != nil {
		return err
	}

	if c.JSON {
		return writeJSON(w, g, data)
	}

	theme := settings.Theme
	if c.Theme != "" {
		theme = c.Theme
	}
	dark := theme == constants.ThemeAuto && lipgloss.HasDarkBackground()
	styles := tui.NewStyles(tui.ResolveTheme(theme, dark))
	fmt.Fprintln(w, monthview.Render(g, data, nil, styles.Month))
	fmt.Fprintln(w)
	fmt.Fprintln(w, monthview.Legend(styles.Month))
	fmt.Fprintln(w, summary(g, data))
	return nil
}

// options layers the command line flags over the stored settings.
func (c *ShowCmd) options(settings models.Settings) (calendar.DisplayOptions, error) {
	if c.Calendar != "" {
		settings.CalendarSystem = c.Calendar
	}
	if c.WeekStart != "" {
		settings.WeekStart = c.WeekStart
	}
	if c.Digits != "" {
		settings.Digits = c.Digits
	}
	if c.Lang != "" {
		settings.Language = c.Lang
	}
	opts, err := utils.OptionsFromSettings(settings)
	if err != nil {
		return opts, err
	}
	logger.Debug("Display options", "options", utils.DescribeOptions(opts))
	return opts, nil
}

func (c *ShowCmd) loadData(ctx *cli.Context, g grid.Grid, useStore bool) (activity.Data, error) {
	first := g.GridStart
	last := g.Cells[len(g.Cells)-1].Date

	switch {
	case c.Activities != "":
		f, err := os.Open(c.Activities)
		if err != nil {
			return nil, fmt.Errorf("failed to open activity file: %w", err)
		}
		defer f.Close()
		data, err := activity.DecodeJSON(f)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", c.Activities, err)
		}
		return data, nil
	case c.Demo:
		return activity.Generate(first, last, c.Seed), nil
	case useStore:
		entries, err := ctx.Store.GetActivitiesInRange(first.Key(), last.Key(), false)
		if err != nil {
			return nil, fmt.Errorf("failed to load activities: %w", err)
		}
		return activity.FromEntries(entries), nil
	}
	return activity.Data{}, nil
}

func summary(g grid.Grid, data activity.Data) string {
	total, days := 0, 0
	for _, cell := range g.MonthCells() {
		if n := data.Count(cell.Key); n > 0 {
			total += n
			days++
		}
	}
	return fmt.Sprintf("%d activities on %d of %d days", total, days, len(g.MonthCells()))
}

type cellJSON struct {
	Key       string `json:"key"`
	Day       string `json:"day"`
	SameMonth bool   `json:"same_month"`
	Today     bool   `json:"today"`
	Count     int    `json:"count"`
	Level     int    `json:"level"`
}

type gridJSON struct {
	Title     string     `json:"title"`
	System    string     `json:"system"`
	Month     string     `json:"month"`
	Year      string     `json:"year"`
	WeekStart string     `json:"week_start"`
	Weekdays  []string   `json:"weekdays"`
	MaxCount  int        `json:"max_count"`
	Cells     []cellJSON `json:"cells"`
}

func writeJSON(w io.Writer, g grid.Grid, data activity.Data) error {
	out := gridJSON{
		Title:     g.Title,
		System:    g.Options.System.Name(),
		Month:     g.MonthLabel,
		Year:      g.YearLabel,
		WeekStart: strings.ToLower(g.Options.WeekStart.String()),
		Weekdays:  g.Weekdays[:],
		MaxCount:  data.Max(g.Keys()),
		Cells:     make([]cellJSON, len(g.Cells)),
	}
	for i, cell := range g.Cells {
		n := data.Count(cell.Key)
		out.Cells[i] = cellJSON{
			Key:       cell.Key,
			Day:       cell.DisplayDay,
			SameMonth: cell.SameMonth,
			Today:     cell.IsToday,
			Count:     n,
			Level:     activity.Level(n),
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
