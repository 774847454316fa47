package doctor

import (
	"time"

	"github.com/google/uuid"
)

// Doctor maps to the doctor table. Every doctor belongs to exactly one
// clinic; the clinic's operating hours constrain the doctor's timetable.
type Doctor struct {
	ID        uuid.UUID `db:"id" json:"id"`
	ClinicID  uuid.UUID `db:"clinic_id" json:"clinic_id"`
	FirstName string    `db:"first_name" json:"first_name"`
	LastName  string    `db:"last_name" json:"last_name"`
	Specialty *string   `db:"specialty" json:"specialty,omitempty"`
	Email     *string   `db:"email" json:"email,omitempty"`
	Phone     *string   `db:"phone" json:"phone,omitempty"`
	IsActive  bool      `db:"is_active" json:"is_active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
