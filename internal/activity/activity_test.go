package activity

import (
	"bytes"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/heatcal/internal/calendar"
	"github.com/julianstephens/heatcal/internal/models"
)

func TestLookupAbsentKey(t *testing.T) {
	data := Data{"2024-02-15": {Descriptions: []string{"A"}}}

	if got := data.Count("2024-02-16"); got != 0 {
		t.Errorf("Count(absent) = %d, want 0", got)
	}
	if got := data.Lookup("2024-02-16"); got.Count() != 0 || got.Descriptions != nil {
		t.Errorf("Lookup(absent) = %+v, want zero value", got)
	}

	var nilData Data
	if got := nilData.Count("2024-02-15"); got != 0 {
		t.Errorf("nil Data Count() = %d, want 0", got)
	}
}

func TestMax(t *testing.T) {
	data := Data{
		"2024-02-14": {Descriptions: []string{"A"}},
		"2024-02-15": {Descriptions: []string{"A", "B", "C"}},
	}
	tests := []struct {
		name string
		keys []string
		want int
	}{
		{name: "empty", keys: nil, want: 0},
		{name: "absent only", keys: []string{"2024-01-01"}, want: 0},
		{name: "mixed", keys: []string{"2024-02-14", "2024-02-15", "2024-02-16"}, want: 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := data.Max(tt.keys); got != tt.want {
				t.Errorf("Max() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestLevel(t *testing.T) {
	tests := []struct {
		count int
		want  int
	}{
		{0, 0}, {1, 1}, {3, 1}, {4, 2}, {7, 2}, {8, 3}, {11, 3}, {12, 4}, {15, 4}, {50, 4}, {-1, 0},
	}
	for _, tt := range tests {
		if got := Level(tt.count); got != tt.want {
			t.Errorf("Level(%d) = %d, want %d", tt.count, got, tt.want)
		}
	}
}

func TestFromEntries(t *testing.T) {
	base := time.Date(2024, 2, 15, 9, 0, 0, 0, time.UTC)
	deleted := base.Add(time.Hour)
	entries := []models.ActivityEntry{
		{ID: "3", Day: "2024-02-15", Description: "third", CreatedAt: base.Add(3 * time.Minute)},
		{ID: "1", Day: "2024-02-15", Description: "first", CreatedAt: base},
		{ID: "x", Day: "2024-02-15", Description: "gone", CreatedAt: base.Add(time.Minute), DeletedAt: &deleted},
		{ID: "2", Day: "2024-02-15", Description: "second", CreatedAt: base.Add(2 * time.Minute)},
		{ID: "4", Day: "2024-02-16", Description: "other day", CreatedAt: base},
	}

	data := FromEntries(entries)

	want := []string{"first", "second", "third"}
	if got := data.Lookup("2024-02-15").Descriptions; !reflect.DeepEqual(got, want) {
		t.Errorf("descriptions = %v, want %v", got, want)
	}
	if got := data.Count("2024-02-16"); got != 1 {
		t.Errorf("Count(2024-02-16) = %d, want 1", got)
	}
	if got := len(data); got != 2 {
		t.Errorf("len(data) = %d, want 2", got)
	}
}

func TestDecodeJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		key     string
		want    []string
		wantErr bool
	}{
		{
			name:  "bare array",
			input: `{"2024-02-15":["A","B"]}`,
			key:   "2024-02-15",
			want:  []string{"A", "B"},
		},
		{
			name:  "object form",
			input: `{"2024-02-15":{"descriptions":["A"]}}`,
			key:   "2024-02-15",
			want:  []string{"A"},
		},
		{
			name:    "invalid key",
			input:   `{"2024-02-30":["A"]}`,
			wantErr: true,
		},
		{
			name:    "malformed json",
			input:   `{"2024-02-15":`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := DecodeJSON(strings.NewReader(tt.input))
			if (err != nil) != tt.wantErr {
				t.Fatalf("DecodeJSON() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got := data.Lookup(tt.key).Descriptions; !reflect.DeepEqual(got, tt.want) {
				t.Errorf("descriptions = %v, want %v", got, tt.want)
			}
			if got := data.Count(tt.key); got != len(tt.want) {
				t.Errorf("Count() = %d, want %d", got, len(tt.want))
			}
		})
	}
}

func TestEncodeDecode(t *testing.T) {
	data := Data{
		"2024-02-15": {Descriptions: []string{"A", "B"}},
		"2024-03-20": {Descriptions: []string{"Nowruz"}},
	}
	var buf bytes.Buffer
	if err := EncodeJSON(&buf, data); err != nil {
		t.Fatalf("EncodeJSON() error = %v", err)
	}
	if !strings.Contains(buf.String(), `"descriptions"`) {
		t.Errorf("encoded output missing descriptions field: %s", buf.String())
	}
	got, err := DecodeJSON(&buf)
	if err != nil {
		t.Fatalf("DecodeJSON() error = %v", err)
	}
	if !reflect.DeepEqual(got, data) {
		t.Errorf("decoded = %v, want %v", got, data)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	start := calendar.FromGregorian(2024, 1, 1)
	end := calendar.FromGregorian(2024, 3, 31)

	a := Generate(start, end, 42)
	b := Generate(start, end, 42)
	if !reflect.DeepEqual(a, b) {
		t.Fatal("Generate() with the same seed produced different data")
	}
	if len(a) == 0 {
		t.Fatal("Generate() produced no data")
	}
	for _, key := range a.Keys() {
		d, err := calendar.ParseKey(key)
		if err != nil {
			t.Fatalf("generated invalid key %q: %v", key, err)
		}
		if d < start || d > end {
			t.Errorf("generated key %s outside range", key)
		}
		if c := a.Count(key); c < 1 || c > MaxCount {
			t.Errorf("Count(%s) = %d, want 1..%d", key, c, MaxCount)
		}
	}
}
