package clinic

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/clinicore/clinicore/internal/domain/timetable"
)

type Service struct {
	clinics Repository
}

func NewService(clinics Repository) *Service {
	return &Service{clinics: clinics}
}

// CreateClinic persists a new clinic. An operating-hours payload, when
// present, must be well formed (open before close for every non-closed day).
func (s *Service) CreateClinic(ctx context.Context, c *Clinic) error {
	if c.Name == "" {
		return fmt.Errorf("name is required")
	}
	if err := c.OperatingHours.Validate(); err != nil {
		return fmt.Errorf("invalid operating hours: %w", err)
	}
	return s.clinics.Create(ctx, c)
}

func (s *Service) GetClinic(ctx context.Context, id uuid.UUID) (*Clinic, error) {
	return s.clinics.GetByID(ctx, id)
}

func (s *Service) UpdateClinic(ctx context.Context, c *Clinic) error {
	if c.Name == "" {
		return fmt.Errorf("name is required")
	}
	if err := c.OperatingHours.Validate(); err != nil {
		return fmt.Errorf("invalid operating hours: %w", err)
	}
	return s.clinics.Update(ctx, c)
}

func (s *Service) DeleteClinic(ctx context.Context, id uuid.UUID) error {
	return s.clinics.Delete(ctx, id)
}

func (s *Service) ListClinics(ctx context.Context, limit, offset int) ([]*Clinic, int, error) {
	return s.clinics.List(ctx, limit, offset)
}

// OperatingHoursFor exposes a clinic's hours for slot validation.
func (s *Service) OperatingHoursFor(ctx context.Context, id uuid.UUID) (timetable.OperatingHours, error) {
	c, err := s.clinics.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load clinic %s: %w", id, err)
	}
	return c.OperatingHours, nil
}
