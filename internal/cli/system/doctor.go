package system

import (
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/heatcal/internal/backup"
	"github.com/julianstephens/heatcal/internal/cli"
	"github.com/julianstephens/heatcal/internal/storage"
	"github.com/julianstephens/heatcal/internal/storage/sqlite"
	"github.com/julianstephens/heatcal/internal/utils"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false
	dbReachable := false

	if err := checkDBReachable(ctx); err != nil {
		fmt.Printf("❌ Database reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Database reachable: OK\n")
		dbReachable = true
	}

	checks := []struct {
		name string
		fn   func(*cli.Context) error
	}{
		{"Schema version", checkSchemaVersion},
		{"Settings", checkSettings},
		{"Activity data", checkActivities},
	}
	for _, check := range checks {
		if !dbReachable {
			fmt.Printf("⊘ %s: SKIPPED (database not reachable)\n", check.name)
			continue
		}
		if err := check.fn(ctx); err != nil {
			fmt.Printf("❌ %s: FAIL\n", check.name)
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ %s: OK\n", check.name)
		}
	}

	// Missing backups only warn
	if err := checkBackupsPresent(ctx); err != nil {
		fmt.Printf("⚠ Backups present: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Backups present: OK\n")
	}

	if err := checkClockTimezone(); err != nil {
		fmt.Printf("❌ Clock/timezone: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Clock/timezone: OK\n")
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return errors.New("one or more health checks failed")
	}

	fmt.Println("All diagnostics passed!")
	return nil
}

func checkDBReachable(ctx *cli.Context) error {
	if err := ctx.LoadStore(); err != nil {
		return fmt.Errorf("failed to load database: %w", err)
	}
	if migrator, ok := ctx.Store.(storage.Migrator); ok {
		if err := migrator.Ping(); err != nil {
			return fmt.Errorf("failed to query database: %w", err)
		}
	}
	return nil
}

func checkSchemaVersion(ctx *cli.Context) error {
	migrator, ok := ctx.Store.(storage.Migrator)
	if !ok {
		return nil
	}
	current, latest, err := migrator.SchemaVersion()
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	if current > latest {
		return fmt.Errorf("database schema version (%d) is newer than supported version (%d)", current, latest)
	}
	if current < latest {
		return fmt.Errorf("%d pending migration(s); run 'heatcal migrate'", latest-current)
	}
	return nil
}

func checkSettings(ctx *cli.Context) error {
	settings, err := ctx.Settings()
	if err != nil {
		return err
	}
	if _, err := utils.OptionsFromSettings(settings); err != nil {
		return err
	}
	if !utils.ValidateTimezone(settings.Timezone) {
		return fmt.Errorf("invalid timezone %q", settings.Timezone)
	}
	return nil
}

func checkActivities(ctx *cli.Context) error {
	entries, err := ctx.Store.GetActivitiesInRange(cli.FirstDay, cli.LastDay, false)
	if err != nil {
		return fmt.Errorf("failed to read activities: %w", err)
	}
	invalid := 0
	for _, e := range entries {
		if err := e.Validate(); err != nil {
			invalid++
		}
	}
	if invalid > 0 {
		return fmt.Errorf("%d of %d activities are invalid", invalid, len(entries))
	}
	return nil
}

func checkBackupsPresent(ctx *cli.Context) error {
	if _, ok := ctx.Store.(*sqlite.Store); !ok {
		return nil
	}
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := mgr.ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found in %s", mgr.GetBackupDir())
	}
	newest := backups[0].Timestamp
	if age := time.Since(newest); age > 7*24*time.Hour {
		return fmt.Errorf("latest backup is %d days old", int(age.Hours()/24))
	}
	return nil
}

func checkClockTimezone() error {
	now := time.Now()
	if now.Year() < 2000 {
		return fmt.Errorf("system clock looks wrong: %s", now.Format(time.RFC3339))
	}
	if _, err := utils.LoadLocation("Local"); err != nil {
		return fmt.Errorf("failed to load local timezone: %w", err)
	}
	return nil
}
