package system

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/heatcal/internal/activity"
	"github.com/julianstephens/heatcal/internal/cli"
	"github.com/julianstephens/heatcal/internal/models"
	"github.com/julianstephens/heatcal/internal/tui"
	"github.com/julianstephens/heatcal/internal/utils"
)

type TuiCmd struct {
	Month      string `help:"Month to open as YYYY-MM in the stored calendar system."`
	Activities string `help:"Browse activity from a JSON file instead of the store (read-only)." type:"existingfile"`
	Demo       bool   `help:"Browse generated demo activity instead of the store."`
	Seed       uint64 `help:"Seed for --demo." default:"1"`
}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	cfg, err := c.config(ctx)
	if err != nil {
		return err
	}

	if cfg.Store != nil {
		ctx.PerformAutomaticBackup()
	}

	m, err := tui.NewModel(cfg)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui exited with error: %w", err)
	}
	return nil
}

func (c *TuiCmd) config(ctx *cli.Context) (tui.Config, error) {
	if c.Activities != "" && c.Demo {
		return tui.Config{}, errors.New("--activities and --demo cannot be used together")
	}

	var cfg tui.Config
	if c.Activities == "" && !c.Demo {
		if err := ctx.LoadStore(); err != nil {
			return cfg, err
		}
		cfg.Store = ctx.Store
		settings, err := ctx.Settings()
		if err != nil {
			return cfg, err
		}
		cfg.Settings = settings
	} else {
		models.ApplyDefaultSettings(&cfg.Settings)
	}

	today, err := ctx.Today(cfg.Settings)
	if err != nil {
		return cfg, err
	}
	cfg.Today = today
	cfg.Now = ctx.Clock
	cfg.DarkBackground = lipgloss.HasDarkBackground()

	if c.Month != "" {
		opts, err := utils.OptionsFromSettings(cfg.Settings)
		if err != nil {
			return cfg, err
		}
		if cfg.Anchor, err = utils.ParseMonth(c.Month, opts.System); err != nil {
			return cfg, err
		}
	}

	switch {
	case c.Activities != "":
		f, err := os.Open(c.Activities)
		if err != nil {
			return cfg, fmt.Errorf("failed to open activity file: %w", err)
		}
		defer f.Close()
		if cfg.Data, err = activity.DecodeJSON(f); err != nil {
			return cfg, fmt.Errorf("failed to read %s: %w", c.Activities, err)
		}
	case c.Demo:
		// a year either side of today
		cfg.Data = activity.Generate(today.AddDays(-366), today.AddDays(366), c.Seed)
	}
	return cfg, nil
}
