package identity

import (
	"time"

	"github.com/google/uuid"

	"github.com/clinicore/clinicore/internal/platform/auth"
)

// User maps to the app_user table. The password hash never leaves the API.
type User struct {
	ID           uuid.UUID  `db:"id" json:"id"`
	Email        string     `db:"email" json:"email"`
	PasswordHash string     `db:"password_hash" json:"-"`
	FullName     string     `db:"full_name" json:"full_name"`
	Role         auth.Role  `db:"role" json:"role"`
	ClinicID     *uuid.UUID `db:"clinic_id" json:"clinic_id,omitempty"`
	IsActive     bool       `db:"is_active" json:"is_active"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updated_at"`
}
