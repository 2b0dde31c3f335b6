package calendar

type gregorian struct{}

const (
	gregorianMinYear = 1
	gregorianMaxYear = 9999
)

var gregorianMonthDays = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

func (gregorian) Name() string { return "gregorian" }

func (gregorian) FieldsOf(d Date) Fields {
	y, m, dd := d.Gregorian()
	return Fields{Year: y, Month: m, Day: dd}
}

func (g gregorian) DateOf(f Fields) Date {
	f = clampFields(g, f)
	return FromGregorian(f.Year, f.Month, f.Day)
}

func (gregorian) MonthLength(year, month int) int {
	if month < 1 || month > 12 {
		return 0
	}
	if month == 2 && isGregorianLeap(year) {
		return 29
	}
	return gregorianMonthDays[month-1]
}

func (gregorian) yearRange() (int, int) { return gregorianMinYear, gregorianMaxYear }

func (gregorian) monthNames(persian bool) *[12]string {
	if persian {
		return &gregorianMonthsFa
	}
	return &gregorianMonthsEn
}

func isGregorianLeap(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}
