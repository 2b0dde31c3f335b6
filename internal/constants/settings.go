package constants

const (
	// Settings keys
	SettingCalendarSystem = "calendar_system"
	SettingWeekStart      = "week_start"
	SettingDigits         = "digits"
	SettingLanguage       = "language"
	SettingTheme          = "theme"
	SettingTimezone       = "timezone"

	// Theme names
	ThemeAuto  = "auto"
	ThemeLight = "light"
	ThemeDark  = "dark"

	// Default Settings Values
	DefaultCalendarSystem = "gregorian"
	DefaultWeekStart      = "sunday"
	DefaultDigits         = "latin"
	DefaultLanguage       = "en"
	DefaultTheme          = ThemeAuto
	DefaultTimezone       = "Local" // Use system local timezone by default
)
