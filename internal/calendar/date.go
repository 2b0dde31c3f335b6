// Package calendar converts between real-world days and the month/day
// numbering of the supported calendar systems.
package calendar

import (
	"fmt"
	"strconv"
	"time"

	"github.com/julianstephens/heatcal/internal/constants"
)

const secondsPerDay = 24 * 60 * 60

// Date identifies a single real-world day as the number of days since
// 1970-01-01 in the proleptic Gregorian calendar. It carries no calendar
// system of its own; systems only interpret it.
type Date int64

// Fields is a date as seen by one calendar system. Month and Day are 1-based.
type Fields struct {
	Year  int
	Month int
	Day   int
}

// FromGregorian returns the Date for a Gregorian year, month and day.
// Out-of-range months and days are normalized the way time.Date does.
func FromGregorian(year, month, day int) Date {
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return Date(floorDiv(t.Unix(), secondsPerDay))
}

// FromTime returns the civil day of t in t's own location.
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return FromGregorian(y, int(m), d)
}

// ParseKey parses a canonical YYYY-MM-DD key.
func ParseKey(key string) (Date, error) {
	t, err := time.Parse(constants.DateFormat, key)
	if err != nil {
		return 0, fmt.Errorf("invalid date key %q: %w", key, err)
	}
	return FromTime(t), nil
}

// Gregorian returns the Gregorian year, month and day of d.
func (d Date) Gregorian() (year, month, day int) {
	y, m, dd := time.Unix(int64(d)*secondsPerDay, 0).UTC().Date()
	return y, int(m), dd
}

// Key returns the canonical date key. It is always Gregorian so that activity
// data has one key space regardless of the displayed calendar system.
func (d Date) Key() string {
	y, m, dd := d.Gregorian()
	return fmt.Sprintf("%04d-%02d-%02d", y, m, dd)
}

// String implements fmt.Stringer.
func (d Date) String() string { return d.Key() }

// Weekday returns the day of the week of d.
func (d Date) Weekday() time.Weekday {
	// 1970-01-01 was a Thursday.
	return time.Weekday(floorMod(int64(d)+int64(time.Thursday), 7))
}

// AddDays returns d shifted by n days.
func (d Date) AddDays(n int) Date { return d + Date(n) }

// Time returns midnight of d in loc.
func (d Date) Time(loc *time.Location) time.Time {
	y, m, dd := d.Gregorian()
	return time.Date(y, time.Month(m), dd, 0, 0, 0, 0, loc)
}

// CellKey returns an identifier derived only from the day itself.
func (d Date) CellKey() string {
	return "d" + strconv.FormatInt(int64(d), 10)
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int64) int64 {
	return a - floorDiv(a, b)*b
}
