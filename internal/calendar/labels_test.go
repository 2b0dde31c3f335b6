package calendar

import (
	"testing"
	"time"

	"golang.org/x/text/language"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		n      int
		digits DigitStyle
		want   string
	}{
		{n: 7, digits: DigitsLatin, want: "7"},
		{n: 1403, digits: DigitsLatin, want: "1403"},
		{n: 15, digits: DigitsPersian, want: "۱۵"},
		{n: 1403, digits: DigitsPersian, want: "۱۴۰۳"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatNumber(tt.n, tt.digits); got != tt.want {
				t.Errorf("FormatNumber(%d, %s) = %q, want %q", tt.n, tt.digits, got, tt.want)
			}
		})
	}
}

func TestLabels(t *testing.T) {
	d := FromGregorian(2024, 3, 20)
	persian := language.MustParse("fa-IR")

	tests := []struct {
		name      string
		opts      DisplayOptions
		wantDay   string
		wantMonth string
		wantYear  string
	}{
		{name: "gregorian english", opts: DefaultOptions(), wantDay: "20", wantMonth: "March", wantYear: "2024"},
		{name: "jalali english", opts: DefaultOptions().WithSystem(Jalali), wantDay: "1", wantMonth: "Farvardin", wantYear: "1403"},
		{
			name:      "jalali persian",
			opts:      DefaultOptions().WithSystem(Jalali).WithLanguage(persian).WithDigits(DigitsPersian),
			wantDay:   "۱",
			wantMonth: "فروردین",
			wantYear:  "۱۴۰۳",
		},
		{name: "gregorian persian names", opts: DefaultOptions().WithLanguage(persian), wantDay: "20", wantMonth: "مارس", wantYear: "2024"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DayNumber(d, tt.opts); got != tt.wantDay {
				t.Errorf("DayNumber() = %q, want %q", got, tt.wantDay)
			}
			if got := MonthLabel(d, tt.opts); got != tt.wantMonth {
				t.Errorf("MonthLabel() = %q, want %q", got, tt.wantMonth)
			}
			if got := YearLabel(d, tt.opts); got != tt.wantYear {
				t.Errorf("YearLabel() = %q, want %q", got, tt.wantYear)
			}
			if got, want := Title(d, tt.opts), tt.wantMonth+" "+tt.wantYear; got != want {
				t.Errorf("Title() = %q, want %q", got, want)
			}
		})
	}
}

func TestWeekdayLabels(t *testing.T) {
	sunday := WeekdayLabels(DefaultOptions())
	if sunday != [7]string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"} {
		t.Errorf("WeekdayLabels(sunday) = %v", sunday)
	}
	saturday := WeekdayLabels(DefaultOptions().WithWeekStart(time.Saturday))
	if saturday[0] != "Sa" || saturday[1] != "Su" || saturday[6] != "Fr" {
		t.Errorf("WeekdayLabels(saturday) = %v", saturday)
	}
	fa := WeekdayLabels(DefaultOptions().WithWeekStart(time.Saturday).WithLanguage(language.Persian))
	if fa[0] != "ش" || fa[6] != "ج" {
		t.Errorf("WeekdayLabels(persian) = %v", fa)
	}
}

func TestParseWeekday(t *testing.T) {
	tests := []struct {
		input   string
		want    time.Weekday
		wantErr bool
	}{
		{input: "sunday", want: time.Sunday},
		{input: "Mon", want: time.Monday},
		{input: "sat", want: time.Saturday},
		{input: "6", want: time.Saturday},
		{input: "0", want: time.Sunday},
		{input: "7", wantErr: true},
		{input: "someday", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseWeekday(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseWeekday(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseWeekday(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseDigitsAndLanguage(t *testing.T) {
	if d, err := ParseDigits("Persian"); err != nil || d != DigitsPersian {
		t.Errorf("ParseDigits(Persian) = %v, %v", d, err)
	}
	if d, err := ParseDigits(""); err != nil || d != DigitsLatin {
		t.Errorf("ParseDigits(\"\") = %v, %v", d, err)
	}
	if _, err := ParseDigits("roman"); err == nil {
		t.Error("ParseDigits(roman) expected error")
	}
	if tag, err := ParseLanguage("fa-IR"); err != nil || !DefaultOptions().WithLanguage(tag).persian() {
		t.Errorf("ParseLanguage(fa-IR) = %v, %v", tag, err)
	}
	if _, err := ParseLanguage("not a tag!"); err == nil {
		t.Error("ParseLanguage(invalid) expected error")
	}
}
