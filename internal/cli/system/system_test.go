package system

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/heatcal/internal/cli"
	"github.com/julianstephens/heatcal/internal/models"
	"github.com/julianstephens/heatcal/internal/storage/sqlite"
)

func setupTestInitDB(t *testing.T) (*cli.Context, string) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store := sqlite.NewStore(dbPath)
	t.Cleanup(func() { store.Close() })
	return &cli.Context{Store: store}, dbPath
}

func TestInitCmd_Success(t *testing.T) {
	ctx, dbPath := setupTestInitDB(t)

	if err := (&InitCmd{}).Run(ctx); err != nil {
		t.Fatalf("init command failed: %v", err)
	}
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Errorf("database file was not created at %s", dbPath)
	}
}

func TestInitCmd_Idempotent(t *testing.T) {
	ctx, _ := setupTestInitDB(t)
	cmd := &InitCmd{}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("first init failed: %v", err)
	}
	if err := cmd.Run(ctx); err != nil {
		t.Errorf("second init failed (should be idempotent): %v", err)
	}
}

func TestInitCmd_ForceDeletesExisting(t *testing.T) {
	ctx, _ := setupTestInitDB(t)
	if err := (&InitCmd{}).Run(ctx); err != nil {
		t.Fatalf("initial init failed: %v", err)
	}
	entry := models.ActivityEntry{ID: "x", Day: "2024-01-01", Description: "old", CreatedAt: time.Now()}
	if err := ctx.Store.AddActivity(entry); err != nil {
		t.Fatalf("AddActivity() error = %v", err)
	}

	if err := (&InitCmd{Force: true}).Run(ctx); err != nil {
		t.Fatalf("force init failed: %v", err)
	}
	entries, err := ctx.Store.GetActivitiesForDay("2024-01-01")
	if err != nil {
		t.Fatalf("GetActivitiesForDay() error = %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("force init kept %d activities, want 0", len(entries))
	}
}

func TestInitCmd_ForceSameSource(t *testing.T) {
	ctx, dbPath := setupTestInitDB(t)
	if err := (&InitCmd{Force: true, Source: dbPath}).Run(ctx); err == nil {
		t.Error("force init with source == destination should fail")
	}
}

func TestInitCmd_SourceMigratesData(t *testing.T) {
	dir := t.TempDir()
	srcPath := filepath.Join(dir, "source.db")
	src := sqlite.NewStore(srcPath)
	if err := src.Init(); err != nil {
		t.Fatalf("source Init() error = %v", err)
	}
	settings, _ := src.GetSettings()
	settings.CalendarSystem = "jalali"
	if err := src.SaveSettings(settings); err != nil {
		t.Fatalf("SaveSettings() error = %v", err)
	}
	for _, id := range []string{"a", "b"} {
		err := src.AddActivity(models.ActivityEntry{ID: id, Day: "2024-03-20", Description: "nowruz " + id, CreatedAt: time.Now()})
		if err != nil {
			t.Fatalf("AddActivity() error = %v", err)
		}
	}
	if err := src.DeleteActivity("b"); err != nil {
		t.Fatalf("DeleteActivity() error = %v", err)
	}
	src.Close()

	ctx, _ := setupTestInitDB(t)
	if err := (&InitCmd{Source: srcPath}).Run(ctx); err != nil {
		t.Fatalf("init with source failed: %v", err)
	}

	got, err := ctx.Store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings() error = %v", err)
	}
	if got.CalendarSystem != "jalali" {
		t.Errorf("migrated calendar system = %q, want jalali", got.CalendarSystem)
	}
	all, err := ctx.Store.GetActivitiesInRange(cli.FirstDay, cli.LastDay, true)
	if err != nil {
		t.Fatalf("GetActivitiesInRange() error = %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("migrated %d activities, want 2", len(all))
	}
	live, _ := ctx.Store.GetActivitiesForDay("2024-03-20")
	if len(live) != 1 {
		t.Errorf("live activities = %d, want 1 (deleted entry stays deleted)", len(live))
	}
}

func TestDoctorCmd_HealthyDB(t *testing.T) {
	ctx, _ := setupTestInitDB(t)
	if err := ctx.Store.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	// Missing backups is a warning, not a failure
	if err := (&DoctorCmd{}).Run(ctx); err != nil {
		t.Errorf("doctor command failed on healthy database: %v", err)
	}
}

func TestDoctorCmd_UninitializedDB(t *testing.T) {
	ctx, _ := setupTestInitDB(t)
	if err := (&DoctorCmd{}).Run(ctx); err == nil {
		t.Error("doctor should fail when the database does not exist")
	}
}

func TestMigrateCmd(t *testing.T) {
	ctx, _ := setupTestInitDB(t)
	if err := ctx.Store.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if err := (&MigrateCmd{}).Run(ctx); err != nil {
		t.Errorf("migrate on current schema failed: %v", err)
	}
}

func TestTuiConfig(t *testing.T) {
	now := func() time.Time { return time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC) }

	t.Run("demo needs no store", func(t *testing.T) {
		ctx := &cli.Context{Now: now}
		cfg, err := (&TuiCmd{Demo: true, Seed: 3}).config(ctx)
		if err != nil {
			t.Fatalf("config() error = %v", err)
		}
		if cfg.Store != nil {
			t.Error("demo config should not carry a store")
		}
		if len(cfg.Data) == 0 {
			t.Error("demo config has no activity")
		}
		if cfg.Now == nil || !cfg.Now().Equal(now()) {
			t.Error("config should carry the command clock")
		}
	})

	t.Run("month anchor", func(t *testing.T) {
		ctx, _ := setupTestInitDB(t)
		ctx.Now = now
		if err := ctx.Store.Init(); err != nil {
			t.Fatalf("Init() error = %v", err)
		}
		cfg, err := (&TuiCmd{Month: "2023-07"}).config(ctx)
		if err != nil {
			t.Fatalf("config() error = %v", err)
		}
		if cfg.Store == nil {
			t.Error("store-backed config has no store")
		}
		if got := cfg.Anchor.Key(); got != "2023-07-01" {
			t.Errorf("anchor = %s, want 2023-07-01", got)
		}
	})

	t.Run("file and demo conflict", func(t *testing.T) {
		if _, err := (&TuiCmd{Demo: true, Activities: "x.json"}).config(&cli.Context{Now: now}); err == nil {
			t.Error("config() should reject --activities with --demo")
		}
	})
}
