package calendar

import (
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var (
	gregorianMonthsEn = [12]string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	}
	gregorianMonthsFa = [12]string{
		"ژانویه", "فوریه", "مارس", "آوریل", "مه", "ژوئن",
		"ژوئیه", "اوت", "سپتامبر", "اکتبر", "نوامبر", "دسامبر",
	}
	jalaliMonthsEn = [12]string{
		"Farvardin", "Ordibehesht", "Khordad", "Tir", "Mordad", "Shahrivar",
		"Mehr", "Aban", "Azar", "Dey", "Bahman", "Esfand",
	}
	jalaliMonthsFa = [12]string{
		"فروردین", "اردیبهشت", "خرداد", "تیر", "مرداد", "شهریور",
		"مهر", "آبان", "آذر", "دی", "بهمن", "اسفند",
	}

	// Indexed by time.Weekday.
	weekdaysEn = [7]string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}
	weekdaysFa = [7]string{"ی", "د", "س", "چ", "پ", "ج", "ش"}
)

// FormatNumber renders n without grouping separators using the given digits.
func FormatNumber(n int, digits DigitStyle) string {
	if digits != DigitsPersian {
		return strconv.Itoa(n)
	}
	p := message.NewPrinter(language.Persian)
	return p.Sprint(number.Decimal(n, number.NoSeparator()))
}

// DayNumber returns the 1-based day-of-month label of d in opts.System.
func DayNumber(d Date, opts DisplayOptions) string {
	return FormatNumber(opts.System.FieldsOf(d).Day, opts.Digits)
}

// MonthLabel returns the name of d's month in opts.System.
func MonthLabel(d Date, opts DisplayOptions) string {
	f := opts.System.FieldsOf(d)
	return opts.System.monthNames(opts.persian())[f.Month-1]
}

// YearLabel returns d's year number in opts.System.
func YearLabel(d Date, opts DisplayOptions) string {
	return FormatNumber(opts.System.FieldsOf(d).Year, opts.Digits)
}

// Title returns "<month> <year>" for d.
func Title(d Date, opts DisplayOptions) string {
	return MonthLabel(d, opts) + " " + YearLabel(d, opts)
}

// WeekdayLabels returns the column headers starting at opts.WeekStart.
func WeekdayLabels(opts DisplayOptions) [7]string {
	names := &weekdaysEn
	if opts.persian() {
		names = &weekdaysFa
	}
	var out [7]string
	for i := range out {
		out[i] = names[(int(opts.WeekStart)+i)%7]
	}
	return out
}
