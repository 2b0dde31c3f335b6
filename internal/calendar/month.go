package calendar

// StartOfMonth returns the first day of d's month in sys.
func StartOfMonth(d Date, sys System) Date {
	f := sys.FieldsOf(clampDate(sys, d))
	f.Day = 1
	return sys.DateOf(f)
}

// DaysInMonth returns the length of d's month in sys.
func DaysInMonth(d Date, sys System) int {
	f := sys.FieldsOf(clampDate(sys, d))
	return sys.MonthLength(f.Year, f.Month)
}

// SameMonth reports whether a and b fall in the same month and year of sys.
func SameMonth(a, b Date, sys System) bool {
	fa, fb := sys.FieldsOf(a), sys.FieldsOf(b)
	return fa.Year == fb.Year && fa.Month == fb.Month
}

// AddMonths moves d by n months in sys. The day of month is kept when the
// target month is long enough and clamped to its last day otherwise, so a
// month step never spills into the following month. Results beyond the
// supported year range clamp to the nearest valid day.
func AddMonths(d Date, sys System, n int) Date {
	f := sys.FieldsOf(clampDate(sys, d))
	total := int64(f.Year)*12 + int64(f.Month-1) + int64(n)
	year := floorDiv(total, 12)
	minYear, maxYear := sys.yearRange()
	if year < int64(minYear) {
		return sys.DateOf(Fields{Year: minYear, Month: 1, Day: 1})
	}
	if year > int64(maxYear) {
		return sys.DateOf(Fields{Year: maxYear, Month: 12, Day: 31})
	}
	f.Year = int(year)
	f.Month = int(floorMod(total, 12)) + 1
	return sys.DateOf(f)
}

// AddYears moves d by n years in sys with the same clamping as AddMonths.
func AddYears(d Date, sys System, n int) Date {
	return AddMonths(d, sys, 12*n)
}
