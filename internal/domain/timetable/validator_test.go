package timetable

import (
	"strings"
	"testing"
)

func weekHours() OperatingHours {
	return OperatingHours{
		Monday:    {Open: "08:00", Close: "17:00"},
		Tuesday:   {Open: "08:00", Close: "17:00"},
		Wednesday: {Open: "09:00", Close: "13:00"},
		Thursday:  {Open: "08:00", Close: "17:00"},
		Friday:    {Open: "08:00", Close: "16:00"},
		Sunday:    {Closed: true},
	}
}

func TestValidateSlot_WithinHours(t *testing.T) {
	err := ValidateSlot(weekHours(), Monday, "09:00", "10:00")
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidateSlot_ExactBoundaries(t *testing.T) {
	err := ValidateSlot(weekHours(), Monday, "08:00", "17:00")
	if err != nil {
		t.Errorf("slot covering the full window should pass: %v", err)
	}
}

func TestValidateSlot_StartsBeforeOpen(t *testing.T) {
	err := ValidateSlot(weekHours(), Monday, "07:00", "09:00")
	if err == nil {
		t.Fatal("expected rejection for slot starting before open")
	}
	if !strings.Contains(err.Error(), "within operating hours (08:00-17:00)") {
		t.Errorf("error should cite the operating window, got %q", err)
	}
	if !IsValidationError(err) {
		t.Error("expected a validation error")
	}
}

func TestValidateSlot_EndsAfterClose(t *testing.T) {
	err := ValidateSlot(weekHours(), Friday, "15:00", "16:30")
	if err == nil {
		t.Fatal("expected rejection for slot ending after close")
	}
	if !strings.Contains(err.Error(), "(08:00-16:00)") {
		t.Errorf("error should cite friday's window, got %q", err)
	}
}

func TestValidateSlot_ClosedDay(t *testing.T) {
	cases := []struct{ start, end string }{
		{"09:00", "10:00"},
		{"00:00", "23:59"},
		{"10:00", "09:00"}, // closed wins even over a reversed range
	}
	for _, tc := range cases {
		err := ValidateSlot(weekHours(), Sunday, tc.start, tc.end)
		if err == nil {
			t.Fatalf("expected rejection for %s-%s on a closed day", tc.start, tc.end)
		}
		if !strings.Contains(err.Error(), "closed on sunday") {
			t.Errorf("expected closed message, got %q", err)
		}
	}
}

func TestValidateSlot_MissingDayMeansClosed(t *testing.T) {
	// Saturday has no entry in the configured week
	err := ValidateSlot(weekHours(), Saturday, "09:00", "10:00")
	if err == nil {
		t.Fatal("expected rejection for unconfigured day in configured week")
	}
	if !strings.Contains(err.Error(), "closed on saturday") {
		t.Errorf("expected closed message, got %q", err)
	}
}

func TestValidateSlot_EndNotAfterStart(t *testing.T) {
	for _, tc := range []struct{ start, end string }{
		{"10:00", "09:00"},
		{"10:00", "10:00"},
	} {
		err := ValidateSlot(weekHours(), Monday, tc.start, tc.end)
		if err == nil {
			t.Fatalf("expected rejection for %s-%s", tc.start, tc.end)
		}
		if err.Error() != "end time must be after start time" {
			t.Errorf("unexpected message: %q", err)
		}
	}
}

func TestValidateSlot_NoHoursConfigured(t *testing.T) {
	// No operating hours at all: any well-formed slot with start < end passes.
	if err := ValidateSlot(nil, Monday, "03:00", "23:00"); err != nil {
		t.Errorf("expected permissive fallback, got %v", err)
	}
	if err := ValidateSlot(OperatingHours{}, Sunday, "09:00", "10:00"); err != nil {
		t.Errorf("expected permissive fallback for empty map, got %v", err)
	}

	err := ValidateSlot(nil, Monday, "10:00", "09:00")
	if err == nil || err.Error() != "end time must be after start time" {
		t.Errorf("start >= end must still be rejected, got %v", err)
	}
}

func TestValidateSlot_MalformedTimes(t *testing.T) {
	for _, s := range []string{"9am", "25:00", "08:61", "", "08-30"} {
		if err := ValidateSlot(weekHours(), Monday, s, "10:00"); err == nil {
			t.Errorf("expected rejection for start %q", s)
		}
		if err := ValidateSlot(weekHours(), Monday, "09:00", s); err == nil {
			t.Errorf("expected rejection for end %q", s)
		}
	}
}

func TestValidateSlot_MisconfiguredHours(t *testing.T) {
	hours := OperatingHours{Monday: {Open: "bogus", Close: "17:00"}}
	err := ValidateSlot(hours, Monday, "09:00", "10:00")
	if err == nil {
		t.Fatal("expected rejection for misconfigured hours")
	}
	if !strings.Contains(err.Error(), "misconfigured") {
		t.Errorf("unexpected message: %q", err)
	}
}

func TestValidateSlot_AcceptanceLaw(t *testing.T) {
	// For open=08:00 close=17:00, (start, end) accepted iff
	// open <= start < end <= close.
	hours := OperatingHours{Monday: {Open: "08:00", Close: "17:00"}}
	cases := []struct {
		start, end string
		ok         bool
	}{
		{"08:00", "08:01", true},
		{"16:59", "17:00", true},
		{"08:00", "17:00", true},
		{"07:59", "17:00", false},
		{"08:00", "17:01", false},
		{"12:00", "12:00", false},
		{"13:00", "12:00", false},
	}
	for _, tc := range cases {
		err := ValidateSlot(hours, Monday, tc.start, tc.end)
		if tc.ok && err != nil {
			t.Errorf("%s-%s: expected accept, got %v", tc.start, tc.end, err)
		}
		if !tc.ok && err == nil {
			t.Errorf("%s-%s: expected reject", tc.start, tc.end)
		}
	}
}
