package doctor

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

type Service struct {
	doctors Repository
}

func NewService(doctors Repository) *Service {
	return &Service{doctors: doctors}
}

func (s *Service) CreateDoctor(ctx context.Context, d *Doctor) error {
	if d.FirstName == "" || d.LastName == "" {
		return fmt.Errorf("first_name and last_name are required")
	}
	if d.ClinicID == uuid.Nil {
		return fmt.Errorf("clinic_id is required")
	}
	return s.doctors.Create(ctx, d)
}

func (s *Service) GetDoctor(ctx context.Context, id uuid.UUID) (*Doctor, error) {
	return s.doctors.GetByID(ctx, id)
}

func (s *Service) UpdateDoctor(ctx context.Context, d *Doctor) error {
	if d.FirstName == "" || d.LastName == "" {
		return fmt.Errorf("first_name and last_name are required")
	}
	if d.ClinicID == uuid.Nil {
		return fmt.Errorf("clinic_id is required")
	}
	return s.doctors.Update(ctx, d)
}

func (s *Service) DeleteDoctor(ctx context.Context, id uuid.UUID) error {
	return s.doctors.Delete(ctx, id)
}

func (s *Service) ListDoctors(ctx context.Context, limit, offset int) ([]*Doctor, int, error) {
	return s.doctors.List(ctx, limit, offset)
}

func (s *Service) ListByClinic(ctx context.Context, clinicID uuid.UUID, limit, offset int) ([]*Doctor, int, error) {
	return s.doctors.ListByClinic(ctx, clinicID, limit, offset)
}

// ClinicIDFor resolves the clinic a doctor belongs to. Slot validation uses
// this to look up the operating hours that apply to a doctor's timetable.
func (s *Service) ClinicIDFor(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	d, err := s.doctors.GetByID(ctx, id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("load doctor %s: %w", id, err)
	}
	return d.ClinicID, nil
}
