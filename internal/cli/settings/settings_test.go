package settings

import (
	"path/filepath"
	"testing"

	"github.com/julianstephens/heatcal/internal/cli"
	"github.com/julianstephens/heatcal/internal/storage/sqlite"
)

func setupTestDB(t *testing.T) *cli.Context {
	t.Helper()
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return &cli.Context{Store: store}
}

func ptr(s string) *string { return &s }

func TestSettingsCmd_List(t *testing.T) {
	ctx := setupTestDB(t)
	if err := (&SettingsCmd{List: true}).Run(ctx); err != nil {
		t.Errorf("settings list failed: %v", err)
	}
}

func TestSettingsCmd_Update(t *testing.T) {
	ctx := setupTestDB(t)

	cmd := &SettingsCmd{
		Calendar:  ptr("Persian"),
		WeekStart: ptr("sat"),
		Digits:    ptr("persian"),
		Lang:      ptr("fa"),
		Theme:     ptr("dark"),
		Timezone:  ptr("Asia/Tehran"),
	}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("settings update failed: %v", err)
	}

	got, err := ctx.Store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings() error = %v", err)
	}
	if got.CalendarSystem != "jalali" {
		t.Errorf("CalendarSystem = %q, want jalali", got.CalendarSystem)
	}
	if got.WeekStart != "saturday" {
		t.Errorf("WeekStart = %q, want saturday", got.WeekStart)
	}
	if got.Digits != "persian" || got.Language != "fa" || got.Theme != "dark" || got.Timezone != "Asia/Tehran" {
		t.Errorf("settings = %+v", got)
	}
}

func TestSettingsCmd_Invalid(t *testing.T) {
	ctx := setupTestDB(t)
	tests := []struct {
		name string
		cmd  SettingsCmd
	}{
		{name: "calendar", cmd: SettingsCmd{Calendar: ptr("lunar")}},
		{name: "week start", cmd: SettingsCmd{WeekStart: ptr("someday")}},
		{name: "digits", cmd: SettingsCmd{Digits: ptr("roman")}},
		{name: "theme", cmd: SettingsCmd{Theme: ptr("neon")}},
		{name: "timezone", cmd: SettingsCmd{Timezone: ptr("Mars/Olympus")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cmd.Run(ctx); err == nil {
				t.Error("Run() should fail")
			}
		})
	}

	got, _ := ctx.Store.GetSettings()
	if got.CalendarSystem != "gregorian" {
		t.Errorf("rejected update changed CalendarSystem to %q", got.CalendarSystem)
	}
}
