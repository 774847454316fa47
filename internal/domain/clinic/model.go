package clinic

import (
	"time"

	"github.com/google/uuid"

	"github.com/clinicore/clinicore/internal/domain/timetable"
)

// Clinic maps to the clinic table. Operating hours are stored as a JSONB
// document keyed by weekday and constrain every timetable entry owned by the
// clinic or its doctors.
type Clinic struct {
	ID             uuid.UUID                `db:"id" json:"id"`
	Name           string                   `db:"name" json:"name"`
	Address        *string                  `db:"address" json:"address,omitempty"`
	City           *string                  `db:"city" json:"city,omitempty"`
	Phone          *string                  `db:"phone" json:"phone,omitempty"`
	Email          *string                  `db:"email" json:"email,omitempty"`
	OperatingHours timetable.OperatingHours `db:"operating_hours" json:"operating_hours,omitempty"`
	IsActive       bool                     `db:"is_active" json:"is_active"`
	CreatedAt      time.Time                `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time                `db:"updated_at" json:"updated_at"`
}
