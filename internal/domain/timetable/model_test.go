package timetable

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		want    TimeOfDay
		wantErr bool
	}{
		{"00:00", 0, false},
		{"08:30", 510, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"-1:00", 0, true},
		{"noon", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseClock(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseClock(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseClock(%q): unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseClock(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestTimeOfDay_String(t *testing.T) {
	tod, _ := NewTimeOfDay(9, 5)
	if tod.String() != "09:05" {
		t.Errorf("expected 09:05, got %s", tod)
	}
}

func TestTimeOfDay_MarshalJSON(t *testing.T) {
	tod, _ := NewTimeOfDay(8, 30)
	data, err := json.Marshal(tod)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var w struct {
		Hours   int `json:"hours"`
		Minutes int `json:"minutes"`
		Time    int `json:"time"`
	}
	if err := json.Unmarshal(data, &w); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w.Hours != 8 || w.Minutes != 30 || w.Time != 510 {
		t.Errorf("unexpected wire triple: %+v", w)
	}
	// The denormalized field is derived, so it cannot desync
	if w.Time != w.Hours*60+w.Minutes {
		t.Error("wire invariant time == hours*60+minutes violated")
	}
}

func TestTimeOfDay_UnmarshalJSON(t *testing.T) {
	var tod TimeOfDay
	if err := json.Unmarshal([]byte(`{"hours":14,"minutes":15,"time":855}`), &tod); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tod != 855 {
		t.Errorf("expected 855, got %d", tod)
	}

	// Triple without the denormalized field
	if err := json.Unmarshal([]byte(`{"hours":9,"minutes":0}`), &tod); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tod != 540 {
		t.Errorf("expected 540, got %d", tod)
	}

	if err := json.Unmarshal([]byte(`{"time":2000}`), &tod); err == nil {
		t.Error("expected error for out-of-range time")
	}
}

func TestParseWeekday(t *testing.T) {
	if _, err := ParseWeekday("monday"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if _, err := ParseWeekday("Monday"); err == nil {
		t.Error("expected error for capitalized day")
	}
	if _, err := ParseWeekday("funday"); err == nil {
		t.Error("expected error for unknown day")
	}
}

func TestOperatingHours_Validate(t *testing.T) {
	valid := OperatingHours{
		Monday: {Open: "08:00", Close: "17:00"},
		Sunday: {Closed: true},
	}
	if err := valid.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	bad := OperatingHours{Monday: {Open: "17:00", Close: "08:00"}}
	if err := bad.Validate(); err == nil {
		t.Error("expected error for open after close")
	}

	missing := OperatingHours{Monday: {}}
	if err := missing.Validate(); err == nil {
		t.Error("expected error for non-closed day without times")
	}
}

func entryAt(day Weekday, start TimeOfDay, order int) *Entry {
	return &Entry{
		ID:        uuid.New(),
		DayOfWeek: day,
		StartTime: start,
		EndTime:   start + 60,
		SlotOrder: order,
	}
}

func TestSortEntries(t *testing.T) {
	entries := []*Entry{
		entryAt(Tuesday, 540, 1),
		entryAt(Monday, 660, 1),
		entryAt(Monday, 540, 2),
		entryAt(Monday, 540, 1),
		entryAt(Sunday, 480, 1),
	}
	SortEntries(entries)

	// Monday before tuesday before sunday; within monday, 09:00 entries
	// before 11:00, slot order breaking the 09:00 tie.
	want := []struct {
		day   Weekday
		start TimeOfDay
		order int
	}{
		{Monday, 540, 1},
		{Monday, 540, 2},
		{Monday, 660, 1},
		{Tuesday, 540, 1},
		{Sunday, 480, 1},
	}
	for i, w := range want {
		e := entries[i]
		if e.DayOfWeek != w.day || e.StartTime != w.start || e.SlotOrder != w.order {
			t.Errorf("position %d: got %s %s order %d", i, e.DayOfWeek, e.StartTime, e.SlotOrder)
		}
	}
}

func TestSortEntries_NonDecreasingLaw(t *testing.T) {
	entries := []*Entry{
		entryAt(Monday, 900, 3),
		entryAt(Monday, 480, 1),
		entryAt(Monday, 480, 5),
		entryAt(Monday, 700, 2),
		entryAt(Monday, 480, 2),
	}
	SortEntries(entries)

	for i := 1; i < len(entries); i++ {
		prev, cur := entries[i-1], entries[i]
		if prev.StartTime > cur.StartTime {
			t.Fatalf("start times not non-decreasing at %d", i)
		}
		if prev.StartTime == cur.StartTime && prev.SlotOrder > cur.SlotOrder {
			t.Fatalf("slot order not non-decreasing for tied start at %d", i)
		}
	}
}
