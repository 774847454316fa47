package timetable

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// HoursProvider resolves the operating hours that constrain an owner's
// timetable. For a doctor owner the implementation looks up the doctor's
// clinic. A nil map with a nil error means no hours are configured; a load
// failure must return an error so validation is never silently bypassed.
type HoursProvider interface {
	OperatingHoursFor(ctx context.Context, owner Owner) (OperatingHours, error)
}

type Service struct {
	entries Repository
	hours   HoursProvider
}

func NewService(entries Repository, hours HoursProvider) *Service {
	return &Service{entries: entries, hours: hours}
}

// SlotInput is the form-submission payload for a single entry, with times as
// "HH:MM" strings.
type SlotInput struct {
	DayOfWeek string  `json:"day_of_week"`
	StartTime string  `json:"start_time"`
	EndTime   string  `json:"end_time"`
	IsActive  *bool   `json:"is_active"`
	SlotOrder int     `json:"slot_order"`
	Notes     *string `json:"notes"`
}

// TimeSlotInput is one staged slot in a bulk-initialize request.
type TimeSlotInput struct {
	StartTime string  `json:"start_time"`
	EndTime   string  `json:"end_time"`
	Notes     *string `json:"notes"`
}

// DaySchedule stages slots for one weekday in a bulk-initialize request.
type DaySchedule struct {
	DayOfWeek string          `json:"day_of_week"`
	TimeSlots []TimeSlotInput `json:"time_slots"`
}

// BulkInitRequest replaces or extends a whole week of entries in one batch.
type BulkInitRequest struct {
	Schedule        []DaySchedule `json:"schedule"`
	IsActive        bool          `json:"is_active"`
	ReplaceExisting bool          `json:"replace_existing"`
}

func (s *Service) validate(ctx context.Context, owner Owner, day Weekday, start, end string) error {
	hours, err := s.hours.OperatingHoursFor(ctx, owner)
	if err != nil {
		return fmt.Errorf("load operating hours: %w", err)
	}
	return ValidateSlot(hours, day, start, end)
}

// CreateEntry validates the candidate slot against the owner's operating
// hours and persists it. Nothing is written when validation fails.
func (s *Service) CreateEntry(ctx context.Context, owner Owner, in SlotInput) (*Entry, error) {
	day, err := ParseWeekday(in.DayOfWeek)
	if err != nil {
		return nil, validationf("%v", err)
	}
	if err := s.validate(ctx, owner, day, in.StartTime, in.EndTime); err != nil {
		return nil, err
	}

	start, _ := ParseClock(in.StartTime)
	end, _ := ParseClock(in.EndTime)

	entry := &Entry{
		OwnerType: owner.Type,
		OwnerID:   owner.ID,
		DayOfWeek: day,
		StartTime: start,
		EndTime:   end,
		IsActive:  true,
		SlotOrder: in.SlotOrder,
		Notes:     in.Notes,
	}
	if in.IsActive != nil {
		entry.IsActive = *in.IsActive
	}
	if entry.SlotOrder < 1 {
		entry.SlotOrder = 1
	}

	if err := s.entries.Create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// UpdateEntry re-validates and rewrites an existing entry.
func (s *Service) UpdateEntry(ctx context.Context, id uuid.UUID, in SlotInput) (*Entry, error) {
	entry, err := s.entries.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	day, err := ParseWeekday(in.DayOfWeek)
	if err != nil {
		return nil, validationf("%v", err)
	}
	owner := Owner{Type: entry.OwnerType, ID: entry.OwnerID}
	if err := s.validate(ctx, owner, day, in.StartTime, in.EndTime); err != nil {
		return nil, err
	}

	start, _ := ParseClock(in.StartTime)
	end, _ := ParseClock(in.EndTime)

	entry.DayOfWeek = day
	entry.StartTime = start
	entry.EndTime = end
	if in.IsActive != nil {
		entry.IsActive = *in.IsActive
	}
	if in.SlotOrder >= 1 {
		entry.SlotOrder = in.SlotOrder
	}
	entry.Notes = in.Notes

	if err := s.entries.Update(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// SetActive flips only the is_active flag. Applying the same flip twice
// returns the entry to its original state.
func (s *Service) SetActive(ctx context.Context, id uuid.UUID, active bool) (*Entry, error) {
	return s.entries.SetActive(ctx, id, active)
}

func (s *Service) GetEntry(ctx context.Context, id uuid.UUID) (*Entry, error) {
	return s.entries.GetByID(ctx, id)
}

func (s *Service) DeleteEntry(ctx context.Context, id uuid.UUID) error {
	return s.entries.Delete(ctx, id)
}

// ListByOwner returns the owner's entries ordered by weekday, start time
// ascending, and slot order as the tie-break.
func (s *Service) ListByOwner(ctx context.Context, owner Owner) ([]*Entry, error) {
	items, err := s.entries.ListByOwner(ctx, owner)
	if err != nil {
		return nil, err
	}
	SortEntries(items)
	return items, nil
}

// BulkInitialize stages a whole week of entries and submits them atomically.
// Every staged slot is validated against the owner's operating hours for its
// day before anything is written; the first failing day aborts the whole
// batch with the day named in the error.
func (s *Service) BulkInitialize(ctx context.Context, owner Owner, req BulkInitRequest) ([]*Entry, error) {
	if len(req.Schedule) == 0 {
		return nil, validationf("schedule must contain at least one day")
	}

	hours, err := s.hours.OperatingHoursFor(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("load operating hours: %w", err)
	}

	var staged []*Entry
	for _, day := range req.Schedule {
		weekday, err := ParseWeekday(day.DayOfWeek)
		if err != nil {
			return nil, validationf("%v", err)
		}
		for i, slot := range day.TimeSlots {
			if err := ValidateSlot(hours, weekday, slot.StartTime, slot.EndTime); err != nil {
				return nil, validationf("%s: %v", weekday, err)
			}
			start, _ := ParseClock(slot.StartTime)
			end, _ := ParseClock(slot.EndTime)
			staged = append(staged, &Entry{
				OwnerType: owner.Type,
				OwnerID:   owner.ID,
				DayOfWeek: weekday,
				StartTime: start,
				EndTime:   end,
				IsActive:  req.IsActive,
				SlotOrder: i + 1,
				Notes:     slot.Notes,
			})
		}
	}

	if len(staged) == 0 {
		return nil, validationf("schedule contains no time slots")
	}

	if err := s.entries.InitializeWeek(ctx, owner, staged, req.ReplaceExisting); err != nil {
		return nil, err
	}

	SortEntries(staged)
	return staged, nil
}
