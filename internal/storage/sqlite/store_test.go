package sqlite

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/heatcal/internal/constants"
	"github.com/julianstephens/heatcal/internal/models"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	store := NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestLoadUninitialized(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "missing.db"))
	if err := store.Load(); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Load() error = %v, want ErrNotInitialized", err)
	}
}

func TestInitThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "heatcal.db")
	store := NewStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	reopened := NewStore(path)
	if err := reopened.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	defer reopened.Close()
	if reopened.GetConfigPath() != path {
		t.Errorf("GetConfigPath() = %q, want %q", reopened.GetConfigPath(), path)
	}
}

func TestDefaultSettings(t *testing.T) {
	store := setupTestStore(t)

	settings, err := store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings() error = %v", err)
	}
	want := models.Settings{
		CalendarSystem: constants.DefaultCalendarSystem,
		WeekStart:      constants.DefaultWeekStart,
		Digits:         constants.DefaultDigits,
		Language:       constants.DefaultLanguage,
		Theme:          constants.DefaultTheme,
		Timezone:       constants.DefaultTimezone,
	}
	if settings != want {
		t.Errorf("GetSettings() = %+v, want %+v", settings, want)
	}
}

func TestSaveSettings(t *testing.T) {
	store := setupTestStore(t)

	updated := models.Settings{
		CalendarSystem: "jalali",
		WeekStart:      "saturday",
		Digits:         "persian",
		Language:       "fa",
		Theme:          constants.ThemeDark,
		Timezone:       "Asia/Tehran",
	}
	if err := store.SaveSettings(updated); err != nil {
		t.Fatalf("SaveSettings() error = %v", err)
	}
	got, err := store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings() error = %v", err)
	}
	if got != updated {
		t.Errorf("GetSettings() = %+v, want %+v", got, updated)
	}

	// Re-running Init must not clobber saved settings.
	if err := store.Init(); err != nil {
		t.Fatalf("second Init() error = %v", err)
	}
	got, _ = store.GetSettings()
	if got != updated {
		t.Errorf("settings after re-init = %+v, want %+v", got, updated)
	}
}

func TestActivityCRUD(t *testing.T) {
	store := setupTestStore(t)
	base := time.Date(2024, 2, 15, 8, 0, 0, 0, time.UTC)

	entries := []models.ActivityEntry{
		{ID: "b", Day: "2024-02-15", Description: "second", CreatedAt: base.Add(500 * time.Millisecond)},
		{ID: "a", Day: "2024-02-15", Description: "first", CreatedAt: base},
		{ID: "c", Day: "2024-02-16", Description: "next day", CreatedAt: base},
		{ID: "d", Day: "2024-03-01", Description: "out of range", CreatedAt: base},
	}
	for _, e := range entries {
		if err := store.AddActivity(e); err != nil {
			t.Fatalf("AddActivity(%s) error = %v", e.ID, err)
		}
	}

	got, err := store.GetActivity("a")
	if err != nil {
		t.Fatalf("GetActivity() error = %v", err)
	}
	if got.Description != "first" || !got.CreatedAt.Equal(base) {
		t.Errorf("GetActivity() = %+v", got)
	}

	if _, err := store.GetActivity("zzz"); !errors.Is(err, ErrActivityNotFound) {
		t.Errorf("GetActivity(missing) error = %v, want ErrActivityNotFound", err)
	}

	day, err := store.GetActivitiesForDay("2024-02-15")
	if err != nil {
		t.Fatalf("GetActivitiesForDay() error = %v", err)
	}
	if len(day) != 2 || day[0].ID != "a" || day[1].ID != "b" {
		t.Errorf("GetActivitiesForDay() = %+v, want [a b]", day)
	}

	ranged, err := store.GetActivitiesInRange("2024-02-01", "2024-02-29", false)
	if err != nil {
		t.Fatalf("GetActivitiesInRange() error = %v", err)
	}
	if len(ranged) != 3 {
		t.Errorf("GetActivitiesInRange() returned %d entries, want 3", len(ranged))
	}
}

func TestActivitySoftDelete(t *testing.T) {
	store := setupTestStore(t)
	entry := models.ActivityEntry{ID: "x", Day: "2024-02-15", Description: "run", CreatedAt: time.Now()}
	if err := store.AddActivity(entry); err != nil {
		t.Fatalf("AddActivity() error = %v", err)
	}

	if err := store.DeleteActivity("x"); err != nil {
		t.Fatalf("DeleteActivity() error = %v", err)
	}
	if err := store.DeleteActivity("x"); err == nil {
		t.Error("second DeleteActivity() should fail")
	}

	day, _ := store.GetActivitiesForDay("2024-02-15")
	if len(day) != 0 {
		t.Errorf("deleted activity still listed: %+v", day)
	}
	all, _ := store.GetActivitiesInRange("2024-02-15", "2024-02-15", true)
	if len(all) != 1 || all[0].DeletedAt == nil {
		t.Errorf("includeDeleted listing = %+v, want one deleted entry", all)
	}

	if err := store.RestoreActivity("x"); err != nil {
		t.Fatalf("RestoreActivity() error = %v", err)
	}
	if err := store.RestoreActivity("x"); err == nil {
		t.Error("second RestoreActivity() should fail")
	}
	day, _ = store.GetActivitiesForDay("2024-02-15")
	if len(day) != 1 {
		t.Errorf("restored activity not listed: %+v", day)
	}
}

func TestAddActivityValidates(t *testing.T) {
	store := setupTestStore(t)
	err := store.AddActivity(models.ActivityEntry{ID: "x", Day: "2024-02-30", Description: "bad", CreatedAt: time.Now()})
	if err == nil {
		t.Error("AddActivity() accepted an invalid day")
	}
}

func TestSchemaVersionAndMigrate(t *testing.T) {
	closed := NewStore(filepath.Join(t.TempDir(), "closed.db"))
	if _, _, err := closed.SchemaVersion(); !errors.Is(err, ErrNotOpen) {
		t.Errorf("SchemaVersion() on closed store error = %v, want ErrNotOpen", err)
	}

	store := setupTestStore(t)
	current, latest, err := store.SchemaVersion()
	if err != nil {
		t.Fatalf("SchemaVersion() error = %v", err)
	}
	if current != latest || latest < 2 {
		t.Errorf("SchemaVersion() = (%d, %d), want current == latest >= 2", current, latest)
	}

	applied, err := store.Migrate(nil)
	if err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}
	if applied != 0 {
		t.Errorf("Migrate() on current schema applied %d, want 0", applied)
	}
	if err := store.Ping(); err != nil {
		t.Errorf("Ping() error = %v", err)
	}
}
