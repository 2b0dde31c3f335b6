package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/heatcal/internal/cli"
	"github.com/julianstephens/heatcal/internal/cli/activities"
	"github.com/julianstephens/heatcal/internal/cli/backups"
	"github.com/julianstephens/heatcal/internal/cli/settings"
	"github.com/julianstephens/heatcal/internal/cli/show"
	"github.com/julianstephens/heatcal/internal/cli/system"
	"github.com/julianstephens/heatcal/internal/constants"
	"github.com/julianstephens/heatcal/internal/errors"
	"github.com/julianstephens/heatcal/internal/logger"
	"github.com/julianstephens/heatcal/internal/storage"
	"github.com/julianstephens/heatcal/internal/utils"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"SQLite database path or PostgreSQL connection string. PostgreSQL passwords must NOT be embedded here; use the OS keyring, HEATCAL_DB_CONNECTION or .pgpass instead." type:"string" default:"~/.config/heatcal/heatcal.db" env:"HEATCAL_CONFIG"`
	Debug   bool   `help:"Log debug output to stderr." env:"HEATCAL_DEBUG"`

	Init    system.InitCmd     `cmd:"" help:"Initialize heatcal storage."`
	Migrate system.MigrateCmd  `cmd:"" help:"Run database migrations."`
	Doctor  system.DoctorCmd   `cmd:"" help:"Run health checks and diagnostics."`
	Tui     system.TuiCmd      `cmd:"" help:"Launch the interactive calendar." default:"withargs"`
	Show    show.ShowCmd       `cmd:"" help:"Print one month as a heatmap."`
	Seed    activities.SeedCmd `cmd:"" help:"Fill the store with generated activity."`

	Activity struct {
		Add     activities.ActivityAddCmd     `cmd:"" help:"Record an activity."`
		List    activities.ActivityListCmd    `cmd:"" help:"List recorded activities."`
		Delete  activities.ActivityDeleteCmd  `cmd:"" help:"Delete an activity."`
		Restore activities.ActivityRestoreCmd `cmd:"" help:"Restore a deleted activity."`
		Import  activities.ActivityImportCmd  `cmd:"" help:"Import activities from a JSON file."`
		Export  activities.ActivityExportCmd  `cmd:"" help:"Export activities as JSON."`
	} `cmd:"" help:"Manage recorded activities."`

	Settings settings.SettingsCmd `cmd:"" help:"Manage display settings."`

	Backup struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage database backups."`

	Keyring struct {
		Set    system.KeyringSetCmd    `cmd:"" help:"Store a PostgreSQL connection string in the OS keyring."`
		Get    system.KeyringGetCmd    `cmd:"" help:"Show the stored connection string with the password masked."`
		Delete system.KeyringDeleteCmd `cmd:"" help:"Remove the stored connection string."`
		Status system.KeyringStatusCmd `cmd:"" help:"Check OS keyring availability."`
	} `cmd:"" help:"Manage database credentials in the OS keyring."`
}

// Commands that open the store themselves, or never need it.
var selfLoading = map[string]bool{
	"init":    true,
	"tui":     true,
	"show":    true,
	"doctor":  true,
	"keyring": true,
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Month calendar with an activity heatmap, in Gregorian and Jalali"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":   constants.Version,
			"seed_days": strconv.Itoa(constants.DefaultSeedDays),
		},
	)

	config, source := storage.Resolve(CLI.Config)

	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: configDir(config)}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}
	logger.Debug("Resolved storage", "source", source, "postgres", utils.IsPostgresConnString(config))

	store, err := storage.New(config, source)
	if err != nil {
		errors.Fatal(errors.WithHint(err,
			"store the full connection string with 'heatcal keyring set' or export "+constants.EnvDBConnection))
	}
	appCtx := &cli.Context{Store: store}

	if fields := strings.Fields(ctx.Command()); len(fields) > 0 && !selfLoading[fields[0]] {
		if err := appCtx.LoadStore(); err != nil {
			errors.Fatal(err)
		}
	}

	err = ctx.Run(appCtx)
	if closeErr := store.Close(); closeErr != nil {
		logger.Warn("Failed to close storage", "error", closeErr)
	}
	errors.Fatal(err)
}

// configDir is where logs live: next to a SQLite file, or the default
// directory for PostgreSQL.
func configDir(config string) string {
	if utils.IsPostgresConnString(config) {
		config = constants.DefaultConfigPath
	}
	path, err := utils.ExpandHome(config)
	if err != nil {
		return "."
	}
	return filepath.Dir(path)
}
