package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/julianstephens/heatcal/internal/calendar"
)

// LoadLocation loads a timezone location from an IANA timezone name.
// If the timezone is "Local" or empty, it returns the system's local timezone.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(timezone)
}

// TodayInTimezone returns the civil day now falls on in the given timezone.
// "Today" follows the user's configured timezone, not the system's.
func TodayInTimezone(now time.Time, timezone string) (calendar.Date, error) {
	loc, err := LoadLocation(timezone)
	if err != nil {
		return 0, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return calendar.FromTime(now.In(loc)), nil
}

// ValidateTimezone checks if the timezone name is valid.
func ValidateTimezone(timezone string) bool {
	if timezone == "" || timezone == "Local" {
		return true
	}
	_, err := time.LoadLocation(timezone)
	return err == nil
}

// ParseMonth parses a "YYYY-MM" month in the given calendar system and returns
// its first day. "1402-11" under Jalali is Bahman 1402.
func ParseMonth(s string, sys calendar.System) (calendar.Date, error) {
	var year, month int
	if n, err := fmt.Sscanf(strings.TrimSpace(s), "%d-%d", &year, &month); err != nil || n != 2 {
		return 0, fmt.Errorf("invalid month %q (expected YYYY-MM)", s)
	}
	if month < 1 || month > 12 {
		return 0, fmt.Errorf("invalid month %q: month must be 1-12", s)
	}
	return sys.DateOf(calendar.Fields{Year: year, Month: month, Day: 1}), nil
}

// IsPostgresConnString reports whether config names a PostgreSQL database
// rather than a SQLite file.
func IsPostgresConnString(config string) bool {
	return strings.HasPrefix(config, "postgres://") ||
		strings.HasPrefix(config, "postgresql://") ||
		strings.Contains(config, "host=")
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
