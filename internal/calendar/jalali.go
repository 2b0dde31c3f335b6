package calendar

// The Jalali conversion uses the 33-year break table published with the
// jalaali reference algorithm, which gives the exact Nowruz day for every
// year in [jalaliMinYear, jalaliMaxYear].

type jalali struct{}

const (
	jalaliMinYear = -61
	jalaliMaxYear = 3177
)

var jalaliBreaks = [...]int{
	-61, 9, 38, 199, 426, 686, 756, 818, 1111, 1181, 1210,
	1635, 2060, 2097, 2192, 2262, 2324, 2394, 2456, 3178,
}

// jalaliYear describes where a Jalali year sits in the Gregorian calendar.
type jalaliYear struct {
	leap  int // years since the last leap year; 0 means jy itself is leap
	gy    int // Gregorian year in which jy begins
	march int // day of March on which Farvardin 1 falls
}

func jalaliCalendar(jy int) jalaliYear {
	gy := jy + 621
	leapJ := -14
	jp := jalaliBreaks[0]
	jump := 0
	for i := 1; i < len(jalaliBreaks); i++ {
		jm := jalaliBreaks[i]
		jump = jm - jp
		if jy < jm {
			break
		}
		leapJ += jump/33*8 + (jump%33)/4
		jp = jm
	}
	n := jy - jp

	leapJ += n/33*8 + (n%33+3)/4
	if jump%33 == 4 && jump-n == 4 {
		leapJ++
	}
	leapG := gy/4 - (gy/100+1)*3/4 - 150
	march := 20 + leapJ - leapG

	if jump-n < 6 {
		n = n - jump + (jump+4)/33*33
	}
	leap := ((n+1)%33 - 1) % 4
	if leap == -1 {
		leap = 4
	}
	return jalaliYear{leap: leap, gy: gy, march: march}
}

func (jalali) Name() string { return "jalali" }

// FieldsOf extrapolates past the break table with plain 365-day years, so days
// just outside the supported range still get distinct, ordered fields.
func (j jalali) FieldsOf(d Date) Fields {
	if lo := j.DateOf(Fields{Year: jalaliMinYear, Month: 1, Day: 1}); d < lo {
		back := (int(lo-d) + 364) / 365
		return jalaliYearDay(jalaliMinYear-back, int(d-lo.AddDays(-back*365)))
	}
	if next := j.DateOf(Fields{Year: jalaliMaxYear, Month: 12, Day: 31}).AddDays(1); d >= next {
		k := int(d - next)
		return jalaliYearDay(jalaliMaxYear+1+k/365, k%365)
	}

	// Nowruz falls in March, so d belongs either to gy-621 or the year before.
	gy, _, _ := d.Gregorian()
	jy := min(gy-621, jalaliMaxYear)
	start := j.DateOf(Fields{Year: jy, Month: 1, Day: 1})
	if d < start {
		jy--
		start = j.DateOf(Fields{Year: jy, Month: 1, Day: 1})
	}
	return jalaliYearDay(jy, int(d-start))
}

// jalaliYearDay converts a zero-based day of year into fields.
func jalaliYearDay(jy, k int) Fields {
	if k < 186 {
		return Fields{Year: jy, Month: 1 + k/31, Day: k%31 + 1}
	}
	k -= 186
	return Fields{Year: jy, Month: 7 + k/30, Day: k%30 + 1}
}

func (j jalali) DateOf(f Fields) Date {
	f = clampFields(j, f)
	r := jalaliCalendar(f.Year)
	offset := (f.Month-1)*31 - f.Month/7*(f.Month-7) + f.Day - 1
	return FromGregorian(r.gy, 3, r.march).AddDays(offset)
}

func (jalali) MonthLength(year, month int) int {
	switch {
	case month < 1 || month > 12:
		return 0
	case month <= 6:
		return 31
	case month <= 11:
		return 30
	case IsJalaliLeap(year):
		return 30
	default:
		return 29
	}
}

func (jalali) yearRange() (int, int) { return jalaliMinYear, jalaliMaxYear }

func (jalali) monthNames(persian bool) *[12]string {
	if persian {
		return &jalaliMonthsFa
	}
	return &jalaliMonthsEn
}

// IsJalaliLeap reports whether the Jalali year has 366 days.
func IsJalaliLeap(year int) bool {
	if year < jalaliMinYear || year > jalaliMaxYear {
		return false
	}
	return jalaliCalendar(year).leap == 0
}
