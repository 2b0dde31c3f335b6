package utils

import (
	"fmt"
	"strings"

	"github.com/julianstephens/heatcal/internal/calendar"
	"github.com/julianstephens/heatcal/internal/models"
)

// OptionsFromSettings builds display options from persisted settings. Empty
// fields fall back to the defaults.
func OptionsFromSettings(settings models.Settings) (calendar.DisplayOptions, error) {
	models.ApplyDefaultSettings(&settings)
	opts := calendar.DefaultOptions()

	sys, err := calendar.ParseSystem(settings.CalendarSystem)
	if err != nil {
		return opts, err
	}
	wd, err := calendar.ParseWeekday(settings.WeekStart)
	if err != nil {
		return opts, err
	}
	digits, err := calendar.ParseDigits(settings.Digits)
	if err != nil {
		return opts, err
	}
	tag, err := calendar.ParseLanguage(settings.Language)
	if err != nil {
		return opts, err
	}

	return opts.
		WithSystem(sys).
		WithWeekStart(wd).
		WithDigits(digits).
		WithLanguage(tag), nil
}

// ApplyOptions writes the display fields of opts back into settings.
func ApplyOptions(settings models.Settings, opts calendar.DisplayOptions) models.Settings {
	settings.CalendarSystem = opts.System.Name()
	settings.WeekStart = strings.ToLower(opts.WeekStart.String())
	settings.Digits = string(opts.Digits)
	settings.Language = opts.Language.String()
	return settings
}

// DescribeOptions renders opts on one line for logs and status output.
func DescribeOptions(opts calendar.DisplayOptions) string {
	return fmt.Sprintf("calendar=%s week_start=%s digits=%s lang=%s",
		opts.System.Name(), strings.ToLower(opts.WeekStart.String()), opts.Digits, opts.Language)
}
