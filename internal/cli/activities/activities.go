package activities

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/heatcal/internal/activity"
	"github.com/julianstephens/heatcal/internal/calendar"
	"github.com/julianstephens/heatcal/internal/cli"
	"github.com/julianstephens/heatcal/internal/logger"
	"github.com/julianstephens/heatcal/internal/models"
	"github.com/julianstephens/heatcal/internal/utils"
)

type ActivityAddCmd struct {
	Description string `arg:"" help:"What you did."`
	Date        string `short:"d" help:"Gregorian day as YYYY-MM-DD (default: today)."`
}

func (c *ActivityAddCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Settings()
	if err != nil {
		return err
	}
	day, err := ctx.ParseDay(c.Date, settings)
	if err != nil {
		return err
	}

	entry := models.ActivityEntry{
		ID:          uuid.New().String(),
		Day:         day.Key(),
		Description: strings.TrimSpace(c.Description),
		CreatedAt:   ctx.Clock(),
	}
	if err := ctx.Store.AddActivity(entry); err != nil {
		return fmt.Errorf("failed to add activity: %w", err)
	}

	fmt.Printf("Added activity %s on %s\n", entry.ID, entry.Day)
	return nil
}

type ActivityListCmd struct {
	Date    string `short:"d" help:"Gregorian day as YYYY-MM-DD (default: today)."`
	From    string `help:"First day of a range (YYYY-MM-DD)."`
	To      string `help:"Last day of a range (YYYY-MM-DD)."`
	Deleted bool   `help:"Include deleted activities."`
}

func (c *ActivityListCmd) Validate() error {
	if c.Date != "" && (c.From != "" || c.To != "") {
		return fmt.Errorf("--date cannot be combined with --from/--to")
	}
	return nil
}

func (c *ActivityListCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Settings()
	if err != nil {
		return err
	}
	opts, err := utils.OptionsFromSettings(settings)
	if err != nil {
		return err
	}

	from, to, err := dayRange(ctx, settings, c.Date, c.From, c.To)
	if err != nil {
		return err
	}
	entries, err := ctx.Store.GetActivitiesInRange(from, to, c.Deleted)
	if err != nil {
		return fmt.Errorf("failed to list activities: %w", err)
	}

	return printEntries(os.Stdout, entries, opts)
}

// dayRange turns the --date/--from/--to flags into an inclusive key range.
func dayRange(ctx *cli.Context, settings models.Settings, date, from, to string) (string, string, error) {
	if from == "" && to == "" {
		day, err := ctx.ParseDay(date, settings)
		if err != nil {
			return "", "", err
		}
		return day.Key(), day.Key(), nil
	}

	start, end := cli.FirstDay, cli.LastDay
	if from != "" {
		d, err := calendar.ParseKey(from)
		if err != nil {
			return "", "", fmt.Errorf("invalid --from: %w", err)
		}
		start = d.Key()
	}
	if to != "" {
		d, err := calendar.ParseKey(to)
		if err != nil {
			return "", "", fmt.Errorf("invalid --to: %w", err)
		}
		end = d.Key()
	}
	if start > end {
		return "", "", fmt.Errorf("--from %s is after --to %s", start, end)
	}
	return start, end, nil
}

func printEntries(w io.Writer, entries []models.ActivityEntry, opts calendar.DisplayOptions) error {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No activities found.")
		return nil
	}

	current := ""
	for _, e := range entries {
		if e.Day != current {
			current = e.Day
			label := e.Day
			if d, err := calendar.ParseKey(e.Day); err == nil && opts.System != calendar.Gregorian {
				label += " (" + calendar.DayNumber(d, opts) + " " + calendar.Title(d, opts) + ")"
			}
			fmt.Fprintf(w, "%s\n", label)
		}
		status := ""
		if e.IsDeleted() {
			status = " [DELETED]"
		}
		fmt.Fprintf(w, "  %s  %s%s\n", e.ID, e.Description, status)
	}
	return nil
}

type ActivityDeleteCmd struct {
	ID string `arg:"" help:"Activity ID to delete."`
}

func (c *ActivityDeleteCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.DeleteActivity(c.ID); err != nil {
		return fmt.Errorf("failed to delete activity: %w", err)
	}
	fmt.Printf("Deleted activity with ID: %s\n", c.ID)
	return nil
}

type ActivityRestoreCmd struct {
	ID string `arg:"" help:"Activity ID to restore."`
}

func (c *ActivityRestoreCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.RestoreActivity(c.ID); err != nil {
		return fmt.Errorf("failed to restore activity: %w", err)
	}
	fmt.Printf("Restored activity with ID: %s\n", c.ID)
	return nil
}

type ActivityImportCmd struct {
	File string `arg:"" help:"JSON activity file mapping YYYY-MM-DD to descriptions." type:"existingfile"`
}

func (c *ActivityImportCmd) Run(ctx *cli.Context) error {
	f, err := os.Open(c.File)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", c.File, err)
	}
	defer f.Close()

	data, err := activity.DecodeJSON(f)
	if err != nil {
		return err
	}

	n, err := store(ctx, data, logger.Progress("import"))
	if err != nil {
		return err
	}
	fmt.Printf("Imported %d activities across %d days\n", n, len(data))
	return nil
}

// store writes every description of data as a new entry. Entries of a day get
// increasing timestamps so their order survives the round trip.
func store(ctx *cli.Context, data activity.Data, progress func(string)) (int, error) {
	base := ctx.Clock()
	n := 0
	for _, key := range data.Keys() {
		for _, desc := range data.Lookup(key).Descriptions {
			entry := models.ActivityEntry{
				ID:          uuid.New().String(),
				Day:         key,
				Description: desc,
				CreatedAt:   base.Add(time.Duration(n) * time.Millisecond),
			}
			if err := ctx.Store.AddActivity(entry); err != nil {
				return n, fmt.Errorf("failed to add activity on %s: %w", key, err)
			}
			n++
		}
	}
	progress(fmt.Sprintf("Stored %d activities", n))
	return n, nil
}

type ActivityExportCmd struct {
	From   string `help:"First day to export (YYYY-MM-DD)."`
	To     string `help:"Last day to export (YYYY-MM-DD)."`
	Output string `short:"o" help:"Write to this file instead of stdout." type:"path"`
}

func (c *ActivityExportCmd) Run(ctx *cli.Context) error {
	from, to := cli.FirstDay, cli.LastDay
	if c.From != "" || c.To != "" {
		var err error
		if from, to, err = dayRange(ctx, models.Settings{}, "", c.From, c.To); err != nil {
			return err
		}
	}

	entries, err := ctx.Store.GetActivitiesInRange(from, to, false)
	if err != nil {
		return fmt.Errorf("failed to read activities: %w", err)
	}
	data := activity.FromEntries(entries)

	if c.Output == "" {
		return activity.EncodeJSON(os.Stdout, data)
	}

	f, err := os.Create(c.Output)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", c.Output, err)
	}
	if err := activity.EncodeJSON(f, data); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Printf("Exported %d activities across %d days to %s\n", len(entries), len(data), c.Output)
	return nil
}
