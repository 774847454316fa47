package catalog

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, o *Offering) error
	GetByID(ctx context.Context, id uuid.UUID) (*Offering, error)
	Update(ctx context.Context, o *Offering) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*Offering, int, error)
	ListByClinic(ctx context.Context, clinicID uuid.UUID, limit, offset int) ([]*Offering, int, error)
}
