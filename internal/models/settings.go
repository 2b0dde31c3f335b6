package models

// Settings represents application-wide settings
type Settings struct {
	CalendarSystem string `json:"calendar_system"` // "gregorian" or "jalali"
	WeekStart      string `json:"week_start"`      // weekday name, e.g. "sunday"
	Digits         string `json:"digits"`          // "latin" or "persian"
	Language       string `json:"language"`        // BCP 47 tag for labels, e.g. "en" or "fa"
	Theme          string `json:"theme"`           // "auto", "light" or "dark"
	Timezone       string `json:"timezone"`        // IANA timezone name or "Local"
}
