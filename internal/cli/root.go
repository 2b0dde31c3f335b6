package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/heatcal/internal/backup"
	"github.com/julianstephens/heatcal/internal/calendar"
	"github.com/julianstephens/heatcal/internal/constants"
	apperrors "github.com/julianstephens/heatcal/internal/errors"
	"github.com/julianstephens/heatcal/internal/logger"
	"github.com/julianstephens/heatcal/internal/models"
	"github.com/julianstephens/heatcal/internal/storage"
	"github.com/julianstephens/heatcal/internal/storage/sqlite"
	"github.com/julianstephens/heatcal/internal/utils"
)

type Context struct {
	Store storage.Provider
	// Now overrides the clock in tests
	Now func() time.Time
}

func (c *Context) Clock() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

// LoadStore opens the configured store, pointing at init when it is missing.
func (c *Context) LoadStore() error {
	if c.Store == nil {
		return errors.New("no storage configured")
	}
	if err := c.Store.Load(); err != nil {
		if errors.Is(err, sqlite.ErrNotInitialized) {
			return apperrors.WithHint(err, fmt.Sprintf("run '%s init' to create %s", constants.AppName, c.Store.GetConfigPath()))
		}
		return err
	}
	return nil
}

// Settings returns the stored settings, or the defaults when there is no store.
func (c *Context) Settings() (models.Settings, error) {
	var settings models.Settings
	if c.Store != nil {
		s, err := c.Store.GetSettings()
		if err != nil {
			return settings, fmt.Errorf("failed to get settings: %w", err)
		}
		settings = s
	}
	models.ApplyDefaultSettings(&settings)
	return settings, nil
}

// Today returns the current day in the timezone of settings.
func (c *Context) Today(settings models.Settings) (calendar.Date, error) {
	return utils.TodayInTimezone(c.Clock(), settings.Timezone)
}

// ParseDay parses a YYYY-MM-DD key; an empty string means today.
func (c *Context) ParseDay(s string, settings models.Settings) (calendar.Date, error) {
	if s == "" {
		return c.Today(settings)
	}
	d, err := calendar.ParseKey(s)
	if err != nil {
		return 0, fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD)", s)
	}
	return d, nil
}

// PerformAutomaticBackup backs up a SQLite store and only logs failures
func (c *Context) PerformAutomaticBackup() {
	if _, ok := c.Store.(*sqlite.Store); !ok {
		return
	}
	mgr := backup.NewManager(c.Store.GetConfigPath())
	path, err := mgr.CreateBackup()
	if err != nil {
		logger.Warn("Automatic backup failed", "error", err)
		return
	}
	logger.Debug("Automatic backup created", "path", path)
}

// Bounds for "every stored activity" range queries.
const (
	FirstDay = "0001-01-01"
	LastDay  = "9999-12-31"
)
