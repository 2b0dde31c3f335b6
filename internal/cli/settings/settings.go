package settings

import (
	"fmt"
	"strings"

	"github.com/julianstephens/heatcal/internal/calendar"
	"github.com/julianstephens/heatcal/internal/cli"
	"github.com/julianstephens/heatcal/internal/constants"
	"github.com/julianstephens/heatcal/internal/utils"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	Calendar  *string `help:"Calendar system: gregorian or jalali."`
	WeekStart *string `help:"First day of the week, e.g. sunday, saturday or monday."`
	Digits    *string `help:"Digit style: latin or persian."`
	Lang      *string `help:"Label language as a BCP 47 tag, e.g. en or fa."`
	Theme     *string `help:"Color theme: auto, light or dark."`
	Timezone  *string `help:"IANA timezone used to decide what today is, or Local."`
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Settings()
	if err != nil {
		return err
	}

	if c.List {
		fmt.Println("Current Settings:")
		fmt.Printf("  Calendar System: %s\n", settings.CalendarSystem)
		fmt.Printf("  Week Start:      %s\n", settings.WeekStart)
		fmt.Printf("  Digits:          %s\n", settings.Digits)
		fmt.Printf("  Language:        %s\n", settings.Language)
		fmt.Printf("  Theme:           %s\n", settings.Theme)
		fmt.Printf("  Timezone:        %s\n", settings.Timezone)
		return nil
	}

	updated := false
	if c.Calendar != nil {
		sys, err := calendar.ParseSystem(*c.Calendar)
		if err != nil {
			return err
		}
		settings.CalendarSystem = sys.Name()
		updated = true
	}
	if c.WeekStart != nil {
		wd, err := calendar.ParseWeekday(*c.WeekStart)
		if err != nil {
			return err
		}
		settings.WeekStart = strings.ToLower(wd.String())
		updated = true
	}
	if c.Digits != nil {
		digits, err := calendar.ParseDigits(*c.Digits)
		if err != nil {
			return err
		}
		settings.Digits = string(digits)
		updated = true
	}
	if c.Lang != nil {
		tag, err := calendar.ParseLanguage(*c.Lang)
		if err != nil {
			return err
		}
		settings.Language = tag.String()
		updated = true
	}
	if c.Theme != nil {
		switch *c.Theme {
		case constants.ThemeAuto, constants.ThemeLight, constants.ThemeDark:
			settings.Theme = *c.Theme
		default:
			return fmt.Errorf("unknown theme %q (expected auto, light or dark)", *c.Theme)
		}
		updated = true
	}
	if c.Timezone != nil {
		if !utils.ValidateTimezone(*c.Timezone) {
			return fmt.Errorf("invalid timezone %q", *c.Timezone)
		}
		settings.Timezone = *c.Timezone
		updated = true
	}

	if updated {
		if err := ctx.Store.SaveSettings(settings); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}
		fmt.Println("Settings updated successfully.")
	} else {
		fmt.Println("No changes specified. Use --list to view settings or flags to update them.")
	}

	return nil
}
