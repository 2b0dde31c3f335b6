package calendar

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"
)

// DigitStyle selects the glyphs used for day and year numbers.
type DigitStyle string

const (
	DigitsLatin   DigitStyle = "latin"
	DigitsPersian DigitStyle = "persian"
)

// ParseDigits resolves a digit style name.
func ParseDigits(name string) (DigitStyle, error) {
	switch DigitStyle(strings.ToLower(strings.TrimSpace(name))) {
	case DigitsLatin, "":
		return DigitsLatin, nil
	case DigitsPersian:
		return DigitsPersian, nil
	}
	return "", fmt.Errorf("unknown digit style %q (expected latin or persian)", name)
}

// DisplayOptions carries every presentation input the calendar functions and
// the grid builder need. It is passed by value and never mutated in place.
type DisplayOptions struct {
	System    System
	WeekStart time.Weekday
	Digits    DigitStyle
	Language  language.Tag
}

// DefaultOptions returns Gregorian, Sunday-first, Latin digits, English.
func DefaultOptions() DisplayOptions {
	return DisplayOptions{
		System:    Gregorian,
		WeekStart: time.Sunday,
		Digits:    DigitsLatin,
		Language:  language.English,
	}
}

// WithSystem returns a copy of o using sys.
func (o DisplayOptions) WithSystem(sys System) DisplayOptions {
	o.System = sys
	return o
}

// WithWeekStart returns a copy of o using wd as the first grid column.
func (o DisplayOptions) WithWeekStart(wd time.Weekday) DisplayOptions {
	o.WeekStart = wd
	return o
}

// WithDigits returns a copy of o using digits.
func (o DisplayOptions) WithDigits(digits DigitStyle) DisplayOptions {
	o.Digits = digits
	return o
}

// WithLanguage returns a copy of o using tag for labels.
func (o DisplayOptions) WithLanguage(tag language.Tag) DisplayOptions {
	o.Language = tag
	return o
}

// ParseLanguage parses a BCP 47 tag such as "en" or "fa-IR".
func ParseLanguage(s string) (language.Tag, error) {
	if strings.TrimSpace(s) == "" {
		return language.English, nil
	}
	tag, err := language.Parse(s)
	if err != nil {
		return language.Und, fmt.Errorf("invalid language %q: %w", s, err)
	}
	return tag, nil
}

// ParseWeekday parses a weekday name ("sun", "Monday") or number (0=Sunday).
func ParseWeekday(s string) (time.Weekday, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		name := strings.ToLower(wd.String())
		if s == name || s == name[:3] {
			return wd, nil
		}
	}
	if len(s) == 1 && s[0] >= '0' && s[0] <= '6' {
		return time.Weekday(s[0] - '0'), nil
	}
	return time.Sunday, fmt.Errorf("invalid weekday: %s", s)
}

func (o DisplayOptions) persian() bool {
	base, _ := o.Language.Base()
	return base.String() == "fa"
}
