package timetable

import (
	"errors"
	"fmt"
)

// ValidationError is a user-facing rejection of a candidate time slot. It is
// distinguished from infrastructure errors so handlers can map it to a 422
// and nothing is ever persisted behind one.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

func validationf(format string, args ...interface{}) *ValidationError {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// IsValidationError reports whether err is a slot validation failure.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// ValidateSlot checks a candidate timetable entry against the clinic's
// operating hours for the given weekday. Start and end are "HH:MM" strings.
//
// A clinic with no operating hours configured at all imposes no window
// constraint: any well-formed slot with start before end is accepted. When
// hours are configured, a missing day entry means the clinic is closed that
// day.
func ValidateSlot(hours OperatingHours, day Weekday, start, end string) error {
	s, err := ParseClock(start)
	if err != nil {
		return validationf("invalid start time: %v", err)
	}
	e, err := ParseClock(end)
	if err != nil {
		return validationf("invalid end time: %v", err)
	}

	configured := len(hours) > 0
	var open, close TimeOfDay
	if configured {
		dh, ok := hours[day]
		if !ok || dh.Closed {
			return validationf("clinic is closed on %s", day)
		}
		open, err = ParseClock(dh.Open)
		if err != nil {
			return validationf("operating hours for %s are misconfigured: %v", day, err)
		}
		close, err = ParseClock(dh.Close)
		if err != nil {
			return validationf("operating hours for %s are misconfigured: %v", day, err)
		}
	}

	if s >= e {
		return validationf("end time must be after start time")
	}

	if configured && (s < open || e > close) {
		return validationf("time slot must be within operating hours (%s-%s)", open, close)
	}

	return nil
}
