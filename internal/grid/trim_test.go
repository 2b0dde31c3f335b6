package grid

import (
	"testing"
	"time"

	"github.com/julianstephens/heatcal/internal/calendar"
)

func TestTrimTrailingWeeks(t *testing.T) {
	tests := []struct {
		name   string
		anchor string
		opts   calendar.DisplayOptions
		want   int
	}{
		// February 2015 starts on a Sunday and fills exactly four weeks.
		{name: "four week month keeps five", anchor: "2015-02-10", opts: calendar.DefaultOptions(), want: 35},
		{name: "five week month", anchor: "2024-02-15", opts: calendar.DefaultOptions(), want: 35},
		// March 2024 starts on a Friday and spills into a sixth week.
		{name: "six week month", anchor: "2024-03-15", opts: calendar.DefaultOptions(), want: 42},
		{name: "monday start", anchor: "2024-09-10", opts: calendar.DefaultOptions().WithWeekStart(time.Monday), want: 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := Build(mustKey(t, tt.anchor), tt.opts, 0)
			trimmed := TrimTrailingWeeks(g)
			if got := len(trimmed.Cells); got != tt.want {
				t.Errorf("len(TrimTrailingWeeks()) = %d, want %d", got, tt.want)
			}
			if len(g.Cells) != 42 {
				t.Errorf("trim modified the source grid: len = %d", len(g.Cells))
			}
			if got, want := len(trimmed.MonthCells()), len(g.MonthCells()); got != want {
				t.Errorf("trim dropped month days: %d, want %d", got, want)
			}
		})
	}
}
