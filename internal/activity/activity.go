// Package activity holds per-day activity records keyed by canonical
// Gregorian date keys and maps activity counts onto heat levels.
package activity

import (
	"slices"
	"sort"

	"github.com/julianstephens/heatcal/internal/models"
)

// Activity is the ordered list of things recorded on one day.
type Activity struct {
	Descriptions []string `json:"descriptions"`
}

// Count returns the number of recorded activities.
func (a Activity) Count() int {
	return len(a.Descriptions)
}

// Data maps a canonical date key (YYYY-MM-DD) to that day's activity.
// An absent key means zero activities.
type Data map[string]Activity

// Lookup returns the activity for key, or the zero Activity when none exists.
func (d Data) Lookup(key string) Activity {
	return d[key]
}

// Count returns the number of activities recorded for key.
func (d Data) Count(key string) int {
	return len(d[key].Descriptions)
}

// Max returns the highest count among keys.
func (d Data) Max(keys []string) int {
	m := 0
	for _, k := range keys {
		if c := d.Count(k); c > m {
			m = c
		}
	}
	return m
}

// Add appends a description to key's activity.
func (d Data) Add(key, description string) {
	a := d[key]
	a.Descriptions = append(a.Descriptions, description)
	d[key] = a
}

// Keys returns the populated date keys in ascending order.
func (d Data) Keys() []string {
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// FromEntries groups stored entries by day, ordered by creation time.
// Soft-deleted entries are skipped.
func FromEntries(entries []models.ActivityEntry) Data {
	live := make([]models.ActivityEntry, 0, len(entries))
	for _, e := range entries {
		if e.IsDeleted() {
			continue
		}
		live = append(live, e)
	}
	slices.SortStableFunc(live, func(a, b models.ActivityEntry) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})

	data := make(Data)
	for _, e := range live {
		data.Add(e.Day, e.Description)
	}
	return data
}
