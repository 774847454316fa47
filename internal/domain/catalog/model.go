package catalog

import (
	"time"

	"github.com/google/uuid"
)

// Offering maps to the service_offering table: a bookable service a clinic
// provides, with its appointment duration and price.
type Offering struct {
	ID              uuid.UUID `db:"id" json:"id"`
	ClinicID        uuid.UUID `db:"clinic_id" json:"clinic_id"`
	Name            string    `db:"name" json:"name"`
	Description     *string   `db:"description" json:"description,omitempty"`
	DurationMinutes int       `db:"duration_minutes" json:"duration_minutes"`
	PriceCents      int       `db:"price_cents" json:"price_cents"`
	IsActive        bool      `db:"is_active" json:"is_active"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}
