package calendar

import (
	"fmt"
	"strings"
)

// System is a calendar system. The set of systems is closed: the unexported
// method keeps other packages from adding implementations, so a System value
// is always one of Gregorian or Jalali (or nil, which is a programming error).
type System interface {
	// Name returns the stable identifier used in settings and flags.
	Name() string
	// FieldsOf returns d as year/month/day in this system.
	FieldsOf(d Date) Fields
	// DateOf converts fields back to a Date, clamping out-of-range values to
	// the nearest valid day.
	DateOf(f Fields) Date
	// MonthLength returns the number of days in the given month.
	MonthLength(year, month int) int

	yearRange() (min, max int)
	monthNames(persian bool) *[12]string
}

var (
	// Gregorian is the proleptic Gregorian calendar.
	Gregorian System = gregorian{}
	// Jalali is the Solar Hijri calendar.
	Jalali System = jalali{}
)

// Systems returns all supported calendar systems.
func Systems() []System {
	return []System{Gregorian, Jalali}
}

// SystemNames returns the identifiers of all supported systems.
func SystemNames() []string {
	names := make([]string, 0, 2)
	for _, s := range Systems() {
		names = append(names, s.Name())
	}
	return names
}

// ParseSystem resolves a system identifier. Unknown names are an error; no
// default system is assumed.
func ParseSystem(name string) (System, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "gregorian":
		return Gregorian, nil
	case "jalali", "persian", "shamsi":
		return Jalali, nil
	}
	return nil, fmt.Errorf("unknown calendar system %q (expected one of %s)", name, strings.Join(SystemNames(), ", "))
}

// clampDate bounds d to the days sys supports.
func clampDate(sys System, d Date) Date {
	minYear, maxYear := sys.yearRange()
	if lo := sys.DateOf(Fields{Year: minYear, Month: 1, Day: 1}); d < lo {
		return lo
	}
	if hi := sys.DateOf(Fields{Year: maxYear, Month: 12, Day: 31}); d > hi {
		return hi
	}
	return d
}

// clampFields bounds f to the valid range of sys.
func clampFields(sys System, f Fields) Fields {
	minYear, maxYear := sys.yearRange()
	switch {
	case f.Year < minYear:
		return Fields{Year: minYear, Month: 1, Day: 1}
	case f.Year > maxYear:
		return Fields{Year: maxYear, Month: 12, Day: sys.MonthLength(maxYear, 12)}
	}
	if f.Month < 1 {
		f.Month = 1
	} else if f.Month > 12 {
		f.Month = 12
	}
	if f.Day < 1 {
		f.Day = 1
	} else if n := sys.MonthLength(f.Year, f.Month); f.Day > n {
		f.Day = n
	}
	return f
}
