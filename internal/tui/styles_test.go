package tui

import (
	"testing"

	"github.com/julianstephens/heatcal/internal/constants"
)

func TestResolveTheme(t *testing.T) {
	tests := []struct {
		name string
		dark bool
		want string
	}{
		{name: constants.ThemeLight, dark: true, want: constants.ThemeLight},
		{name: constants.ThemeDark, dark: false, want: constants.ThemeDark},
		{name: constants.ThemeAuto, dark: true, want: constants.ThemeDark},
		{name: constants.ThemeAuto, dark: false, want: constants.ThemeLight},
		{name: "", dark: true, want: constants.ThemeDark},
	}

	for _, tt := range tests {
		t.Run(tt.name+"/"+tt.want, func(t *testing.T) {
			if got := ResolveTheme(tt.name, tt.dark).Name; got != tt.want {
				t.Errorf("ResolveTheme(%q, %v) = %q, want %q", tt.name, tt.dark, got, tt.want)
			}
		})
	}
}

func TestNextThemeName(t *testing.T) {
	tests := map[string]string{
		constants.ThemeAuto:  constants.ThemeLight,
		constants.ThemeLight: constants.ThemeDark,
		constants.ThemeDark:  constants.ThemeAuto,
		"neon":               constants.ThemeAuto,
	}
	for in, want := range tests {
		if got := NextThemeName(in); got != want {
			t.Errorf("NextThemeName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestHeatPalettesDiffer(t *testing.T) {
	for level := range LightTheme.Heat {
		if LightTheme.Heat[level] == DarkTheme.Heat[level] {
			t.Errorf("level %d uses the same color in both themes", level)
		}
	}
}
