package system

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/heatcal/internal/cli"
	"github.com/julianstephens/heatcal/internal/logger"
	"github.com/julianstephens/heatcal/internal/storage"
	"github.com/julianstephens/heatcal/internal/storage/postgres"
	"github.com/julianstephens/heatcal/internal/utils"
)

type InitCmd struct {
	Force  bool   `help:"Force reset by deleting existing database before initialization."`
	Source string `help:"Source database path or connection string to copy settings and activities from."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		if err := c.reset(ctx); err != nil {
			return err
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized heatcal storage at: %s\n", ctx.Store.GetConfigPath())
	logger.Info("Storage initialized", "path", ctx.Store.GetConfigPath())

	if c.Source != "" {
		fmt.Printf("Migrating data from: %s\n", c.Source)
		if err := c.migrateData(ctx, c.Source); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
		fmt.Println("Migration completed successfully!")
	}

	return nil
}

// reset deletes an existing SQLite database file before initialization.
func (c *InitCmd) reset(ctx *cli.Context) error {
	dbPath := ctx.Store.GetConfigPath()
	if utils.IsPostgresConnString(dbPath) || dbPath == "postgresql" {
		return errors.New("--force is only supported for SQLite storage")
	}

	if c.Source != "" {
		absDbPath, err := filepath.Abs(dbPath)
		if err == nil {
			dbPath = absDbPath
		}
		absSource, err := filepath.Abs(c.Source)
		if err == nil && absSource == dbPath {
			return fmt.Errorf("cannot use --force when source and destination are the same: %s", dbPath)
		}
	}

	if _, err := os.Stat(dbPath); err == nil {
		if err := ctx.Store.Close(); err != nil {
			return fmt.Errorf("failed to close existing database: %w", err)
		}
		if err := os.Remove(dbPath); err != nil {
			return fmt.Errorf("failed to delete existing database: %w", err)
		}
		fmt.Printf("Deleted existing database at: %s\n", dbPath)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to access existing database: %w", err)
	}
	return nil
}

func (c *InitCmd) migrateData(ctx *cli.Context, sourcePath string) error {
	if utils.IsPostgresConnString(sourcePath) {
		if _, err := postgres.ValidateConnString(sourcePath); err != nil {
			if errors.Is(err, postgres.ErrEmbeddedCredentials) {
				return fmt.Errorf("PostgreSQL source connection string contains embedded credentials. Use environment variables or .pgpass instead")
			}
			return err
		}
	}

	sourceStore, err := storage.New(sourcePath, storage.SourceFlag)
	if err != nil {
		return err
	}
	if err := sourceStore.Load(); err != nil {
		return fmt.Errorf("failed to load source database: %w", err)
	}
	defer sourceStore.Close()

	fmt.Println("  Migrating settings...")
	settings, err := sourceStore.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings from source: %w", err)
	}
	if err := ctx.Store.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings to destination: %w", err)
	}

	fmt.Println("  Migrating activities...")
	entries, err := sourceStore.GetActivitiesInRange(cli.FirstDay, cli.LastDay, true)
	if err != nil {
		return fmt.Errorf("failed to get activities from source: %w", err)
	}
	for _, entry := range entries {
		if err := ctx.Store.AddActivity(entry); err != nil {
			return fmt.Errorf("failed to add activity %s: %w", entry.ID, err)
		}
	}
	fmt.Printf("    Migrated %d activities\n", len(entries))

	return nil
}
