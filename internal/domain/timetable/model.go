package timetable

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// TimeOfDay is a clock time stored as minutes since midnight. Hours and
// minutes are derived on read, so the wire triple {hours, minutes, time}
// cannot drift out of sync.
type TimeOfDay int

// NewTimeOfDay builds a TimeOfDay from clock components.
func NewTimeOfDay(hours, minutes int) (TimeOfDay, error) {
	if hours < 0 || hours > 23 {
		return 0, fmt.Errorf("hours out of range: %d", hours)
	}
	if minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("minutes out of range: %d", minutes)
	}
	return TimeOfDay(hours*60 + minutes), nil
}

// ParseClock parses an "HH:MM" string.
func ParseClock(s string) (TimeOfDay, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q, expected HH:MM", s)
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid time %q, expected HH:MM", s)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid time %q, expected HH:MM", s)
	}
	return NewTimeOfDay(hours, minutes)
}

func (t TimeOfDay) Hours() int   { return int(t) / 60 }
func (t TimeOfDay) Minutes() int { return int(t) % 60 }

// String formats the time as "HH:MM".
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hours(), t.Minutes())
}

type timeOfDayJSON struct {
	Hours   int  `json:"hours"`
	Minutes int  `json:"minutes"`
	Time    *int `json:"time,omitempty"`
}

// MarshalJSON emits the persisted-entry wire triple {hours, minutes, time}.
func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	total := int(t)
	return json.Marshal(timeOfDayJSON{Hours: t.Hours(), Minutes: t.Minutes(), Time: &total})
}

// UnmarshalJSON accepts the wire triple. The denormalized "time" field wins
// when present; otherwise it is derived from hours and minutes.
func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	var w timeOfDayJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	if w.Time != nil {
		if *w.Time < 0 || *w.Time >= 24*60 {
			return fmt.Errorf("time out of range: %d", *w.Time)
		}
		*t = TimeOfDay(*w.Time)
		return nil
	}
	parsed, err := NewTimeOfDay(w.Hours, w.Minutes)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Weekday is a lowercase weekday name, monday..sunday.
type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

var weekdayOrder = map[Weekday]int{
	Monday: 0, Tuesday: 1, Wednesday: 2, Thursday: 3,
	Friday: 4, Saturday: 5, Sunday: 6,
}

// ParseWeekday resolves a day name into a Weekday.
func ParseWeekday(s string) (Weekday, error) {
	d := Weekday(s)
	if _, ok := weekdayOrder[d]; !ok {
		return "", fmt.Errorf("unknown day of week: %q", s)
	}
	return d, nil
}

// Index returns the position of the day in the week, monday first.
func (d Weekday) Index() int { return weekdayOrder[d] }

// DayHours is one weekday's operating window. A day is either closed or has
// an open/close pair of "HH:MM" strings.
type DayHours struct {
	Open   string `json:"open,omitempty"`
	Close  string `json:"close,omitempty"`
	Closed bool   `json:"closed,omitempty"`
}

// OperatingHours maps weekdays to their operating windows. A nil or empty map
// means the clinic has not configured hours. A configured map with a missing
// day means the clinic is closed that day.
type OperatingHours map[Weekday]DayHours

// Validate checks the model-level invariant: every non-closed day has a
// well-formed open/close pair with open strictly before close.
func (h OperatingHours) Validate() error {
	for day, dh := range h {
		if _, ok := weekdayOrder[day]; !ok {
			return fmt.Errorf("unknown day of week: %q", day)
		}
		if dh.Closed {
			continue
		}
		open, err := ParseClock(dh.Open)
		if err != nil {
			return fmt.Errorf("%s open: %w", day, err)
		}
		close, err := ParseClock(dh.Close)
		if err != nil {
			return fmt.Errorf("%s close: %w", day, err)
		}
		if open >= close {
			return fmt.Errorf("%s: open %s must be before close %s", day, dh.Open, dh.Close)
		}
	}
	return nil
}

// OwnerType scopes a timetable entry to a clinic or an individual doctor.
type OwnerType string

const (
	OwnerClinic OwnerType = "clinic"
	OwnerDoctor OwnerType = "doctor"
)

// Owner identifies the clinic or doctor a timetable entry belongs to.
type Owner struct {
	Type OwnerType
	ID   uuid.UUID
}

// Entry maps to the timetable_entry table. Multiple entries may exist per day
// (split shifts), distinguished by SlotOrder.
type Entry struct {
	ID        uuid.UUID `db:"id" json:"id"`
	OwnerType OwnerType `db:"owner_type" json:"owner_type"`
	OwnerID   uuid.UUID `db:"owner_id" json:"owner_id"`
	DayOfWeek Weekday   `db:"day_of_week" json:"day_of_week"`
	StartTime TimeOfDay `db:"start_time" json:"start_time"`
	EndTime   TimeOfDay `db:"end_time" json:"end_time"`
	IsActive  bool      `db:"is_active" json:"is_active"`
	SlotOrder int       `db:"slot_order" json:"slot_order"`
	Notes     *string   `db:"notes" json:"notes,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// SortEntries orders entries by weekday, then start time ascending, then
// slot order as the tie-break.
func SortEntries(entries []*Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.DayOfWeek != b.DayOfWeek {
			return a.DayOfWeek.Index() < b.DayOfWeek.Index()
		}
		if a.StartTime != b.StartTime {
			return a.StartTime < b.StartTime
		}
		return a.SlotOrder < b.SlotOrder
	})
}
