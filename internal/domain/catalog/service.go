package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

type Service struct {
	offerings Repository
}

func NewService(offerings Repository) *Service {
	return &Service{offerings: offerings}
}

func (s *Service) validate(o *Offering) error {
	if o.Name == "" {
		return fmt.Errorf("name is required")
	}
	if o.ClinicID == uuid.Nil {
		return fmt.Errorf("clinic_id is required")
	}
	if o.DurationMinutes <= 0 {
		return fmt.Errorf("duration_minutes must be positive")
	}
	if o.PriceCents < 0 {
		return fmt.Errorf("price_cents must not be negative")
	}
	return nil
}

func (s *Service) CreateOffering(ctx context.Context, o *Offering) error {
	if err := s.validate(o); err != nil {
		return err
	}
	return s.offerings.Create(ctx, o)
}

func (s *Service) GetOffering(ctx context.Context, id uuid.UUID) (*Offering, error) {
	return s.offerings.GetByID(ctx, id)
}

func (s *Service) UpdateOffering(ctx context.Context, o *Offering) error {
	if err := s.validate(o); err != nil {
		return err
	}
	return s.offerings.Update(ctx, o)
}

func (s *Service) DeleteOffering(ctx context.Context, id uuid.UUID) error {
	return s.offerings.Delete(ctx, id)
}

func (s *Service) ListOfferings(ctx context.Context, limit, offset int) ([]*Offering, int, error) {
	return s.offerings.List(ctx, limit, offset)
}

func (s *Service) ListByClinic(ctx context.Context, clinicID uuid.UUID, limit, offset int) ([]*Offering, int, error) {
	return s.offerings.ListByClinic(ctx, clinicID, limit, offset)
}
