package grid

import (
	"strconv"
	"testing"
	"time"

	"github.com/julianstephens/heatcal/internal/calendar"
)

func mustKey(t *testing.T, key string) calendar.Date {
	t.Helper()
	d, err := calendar.ParseKey(key)
	if err != nil {
		t.Fatalf("ParseKey(%q): %v", key, err)
	}
	return d
}

func TestBuildLeapFebruary(t *testing.T) {
	anchor := mustKey(t, "2024-02-15")
	g := Build(anchor, calendar.DefaultOptions(), mustKey(t, "2024-02-20"))

	if len(g.Cells) != 42 {
		t.Fatalf("len(Cells) = %d, want 42", len(g.Cells))
	}
	if got := g.GridStart.Key(); got != "2024-01-28" {
		t.Errorf("GridStart = %s, want 2024-01-28", got)
	}
	if got := g.Cells[0].Key; got != "2024-01-28" {
		t.Errorf("Cells[0].Key = %s, want 2024-01-28", got)
	}
	if got := len(g.MonthCells()); got != 29 {
		t.Errorf("same-month cells = %d, want 29", got)
	}
	if g.Title != "February 2024" {
		t.Errorf("Title = %q, want February 2024", g.Title)
	}

	first := g.Cells[4]
	if first.Key != "2024-02-01" || !first.SameMonth || first.DisplayDay != "1" {
		t.Errorf("Cells[4] = %+v, want 2024-02-01 in month", first)
	}
	if g.Cells[3].SameMonth {
		t.Errorf("Cells[3] (%s) should be outside the month", g.Cells[3].Key)
	}
}

func TestBuildInvariants(t *testing.T) {
	optsList := []calendar.DisplayOptions{
		calendar.DefaultOptions(),
		calendar.DefaultOptions().WithWeekStart(time.Monday),
		calendar.DefaultOptions().WithSystem(calendar.Jalali),
		calendar.DefaultOptions().WithSystem(calendar.Jalali).WithWeekStart(time.Saturday),
	}
	start := mustKey(t, "2023-01-01")
	today := mustKey(t, "2024-06-15")

	for _, opts := range optsList {
		for i := 0; i < 900; i += 3 {
			anchor := start.AddDays(i)
			g := Build(anchor, opts, today)

			if len(g.Cells) != 42 {
				t.Fatalf("%s %s: len = %d", opts.System.Name(), anchor, len(g.Cells))
			}
			if g.Cells[0].Date.Weekday() != opts.WeekStart {
				t.Fatalf("%s %s: first cell weekday %v, want %v", opts.System.Name(), anchor, g.Cells[0].Date.Weekday(), opts.WeekStart)
			}

			inMonth, todays := 0, 0
			seen := make(map[string]bool)
			runStarted, runEnded := false, false
			for j, c := range g.Cells {
				if j > 0 && c.Date != g.Cells[j-1].Date.AddDays(1) {
					t.Fatalf("%s %s: gap at cell %d", opts.System.Name(), anchor, j)
				}
				if seen[c.CellKey] {
					t.Fatalf("%s %s: duplicate cell key %s", opts.System.Name(), anchor, c.CellKey)
				}
				seen[c.CellKey] = true
				if c.SameMonth {
					if runEnded {
						t.Fatalf("%s %s: same-month cells not contiguous", opts.System.Name(), anchor)
					}
					runStarted = true
					inMonth++
				} else if runStarted {
					runEnded = true
				}
				if c.IsToday {
					todays++
				}
			}

			if want := calendar.DaysInMonth(anchor, opts.System); inMonth != want {
				t.Fatalf("%s %s: same-month count %d, want %d", opts.System.Name(), anchor, inMonth, want)
			}
			_, inWindow := g.Find(today)
			if (inWindow && todays != 1) || (!inWindow && todays != 0) {
				t.Fatalf("%s %s: today count %d, in window %v", opts.System.Name(), anchor, todays, inWindow)
			}
		}
	}
}

func TestBuildJalaliFarvardin(t *testing.T) {
	opts := calendar.DefaultOptions().WithSystem(calendar.Jalali)
	g := Build(mustKey(t, "2024-04-01"), opts, mustKey(t, "2024-03-20"))

	if got := g.GridStart.Key(); got != "2024-03-17" {
		t.Errorf("GridStart = %s, want 2024-03-17", got)
	}
	if got := len(g.MonthCells()); got != 31 {
		t.Errorf("same-month cells = %d, want 31", got)
	}
	nowruz := g.Cells[3]
	if nowruz.Key != "2024-03-20" || nowruz.DisplayDay != "1" || !nowruz.SameMonth || !nowruz.IsToday {
		t.Errorf("Cells[3] = %+v, want Farvardin 1 marked today", nowruz)
	}
	if g.MonthLabel != "Farvardin" || g.YearLabel != "1403" {
		t.Errorf("labels = %q %q, want Farvardin 1403", g.MonthLabel, g.YearLabel)
	}
}

func TestKeysAreGregorianInEverySystem(t *testing.T) {
	anchor := mustKey(t, "2024-02-15")
	today := mustKey(t, "2024-02-15")
	greg := Build(anchor, calendar.DefaultOptions(), today)
	jal := Build(anchor, calendar.DefaultOptions().WithSystem(calendar.Jalali), today)

	for _, g := range []Grid{greg, jal} {
		for _, c := range g.Cells {
			if c.Key != c.Date.Key() {
				t.Fatalf("cell key %s does not match date %s", c.Key, c.Date)
			}
			if _, err := calendar.ParseKey(c.Key); err != nil {
				t.Fatalf("cell key %s is not a Gregorian key: %v", c.Key, err)
			}
		}
	}
}

func TestSwitchingSystemRoundTrip(t *testing.T) {
	anchor := mustKey(t, "2024-07-04")
	today := mustKey(t, "2024-07-04")
	greg := calendar.DefaultOptions()
	jal := greg.WithSystem(calendar.Jalali)

	before := Build(anchor, greg, today).Keys()
	_ = Build(anchor, jal, today)
	after := Build(anchor, greg, today).Keys()

	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("key %d changed after system round trip: %s -> %s", i, before[i], after[i])
		}
	}
}

func TestCellKeysStableAcrossRebuilds(t *testing.T) {
	anchor := mustKey(t, "2024-05-10")
	a := Build(anchor, calendar.DefaultOptions(), anchor)
	b := Build(anchor.AddDays(3), calendar.DefaultOptions(), anchor)
	for i := range a.Cells {
		if a.Cells[i].CellKey != b.Cells[i].CellKey {
			t.Fatalf("cell %d key changed: %s -> %s", i, a.Cells[i].CellKey, b.Cells[i].CellKey)
		}
	}
}

func TestTodayOutsideWindow(t *testing.T) {
	g := Build(mustKey(t, "2024-02-15"), calendar.DefaultOptions(), mustKey(t, "2025-01-01"))
	for _, c := range g.Cells {
		if c.IsToday {
			t.Fatalf("cell %s marked today", c.Key)
		}
	}
}

func TestWeeksAndFind(t *testing.T) {
	g := Build(mustKey(t, "2024-02-15"), calendar.DefaultOptions(), 0)
	weeks := g.Weeks()
	if len(weeks) != 6 {
		t.Fatalf("len(Weeks()) = %d, want 6", len(weeks))
	}
	for _, w := range weeks {
		if len(w) != 7 || w[0].Date.Weekday() != time.Sunday {
			t.Fatalf("malformed week starting %s", w[0].Key)
		}
	}
	if i, ok := g.Find(mustKey(t, "2024-02-01")); !ok || i != 4 {
		t.Errorf("Find(2024-02-01) = %d, %v, want 4, true", i, ok)
	}
	if _, ok := g.Find(mustKey(t, "2024-04-01")); ok {
		t.Error("Find(2024-04-01) should be outside the grid")
	}
}

func TestBuildJalaliRangeEdges(t *testing.T) {
	opts := calendar.DefaultOptions().WithSystem(calendar.Jalali)
	tests := []struct {
		name  string
		month calendar.Fields
	}{
		{name: "first supported month", month: calendar.Fields{Year: -61, Month: 1, Day: 1}},
		{name: "last supported month", month: calendar.Fields{Year: 3177, Month: 12, Day: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			anchor := calendar.Jalali.DateOf(tt.month)
			g := Build(anchor, opts, 0)

			month := g.MonthCells()
			if want := calendar.DaysInMonth(anchor, calendar.Jalali); len(month) != want {
				t.Fatalf("same-month cells = %d, want %d", len(month), want)
			}
			for i, c := range month {
				if want := strconv.Itoa(i + 1); c.DisplayDay != want {
					t.Errorf("month cell %d DisplayDay = %q, want %q", i, c.DisplayDay, want)
				}
			}
		})
	}
}
