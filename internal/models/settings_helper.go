package models

import (
	"github.com/julianstephens/heatcal/internal/constants"
)

// MapToSettings converts a map of key-value pairs to a Settings struct.
// Unknown keys are ignored.
func MapToSettings(data map[string]string) Settings {
	settings := Settings{}

	for key, value := range data {
		switch key {
		case constants.SettingCalendarSystem:
			settings.CalendarSystem = value
		case constants.SettingWeekStart:
			settings.WeekStart = value
		case constants.SettingDigits:
			settings.Digits = value
		case constants.SettingLanguage:
			settings.Language = value
		case constants.SettingTheme:
			settings.Theme = value
		case constants.SettingTimezone:
			settings.Timezone = value
		}
	}
	return settings
}

// SettingsToMap converts a Settings struct to a map of key-value pairs.
func SettingsToMap(settings Settings) map[string]string {
	return map[string]string{
		constants.SettingCalendarSystem: settings.CalendarSystem,
		constants.SettingWeekStart:      settings.WeekStart,
		constants.SettingDigits:         settings.Digits,
		constants.SettingLanguage:       settings.Language,
		constants.SettingTheme:          settings.Theme,
		constants.SettingTimezone:       settings.Timezone,
	}
}

// ApplyDefaultSettings applies default values to missing settings.
func ApplyDefaultSettings(settings *Settings) {
	if settings.CalendarSystem == "" {
		settings.CalendarSystem = constants.DefaultCalendarSystem
	}
	if settings.WeekStart == "" {
		settings.WeekStart = constants.DefaultWeekStart
	}
	if settings.Digits == "" {
		settings.Digits = constants.DefaultDigits
	}
	if settings.Language == "" {
		settings.Language = constants.DefaultLanguage
	}
	if settings.Theme == "" {
		settings.Theme = constants.DefaultTheme
	}
	if settings.Timezone == "" {
		settings.Timezone = constants.DefaultTimezone
	}
}
