package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/clinicore/clinicore/internal/platform/auth"
)

// ErrInvalidCredentials is returned for both unknown emails and wrong
// passwords so login responses don't reveal which one failed.
var ErrInvalidCredentials = errors.New("invalid email or password")

type Service struct {
	users Repository
	jwt   auth.JWTConfig
}

func NewService(users Repository, jwt auth.JWTConfig) *Service {
	return &Service{users: users, jwt: jwt}
}

// CreateUser registers a user with a bcrypt-hashed password. The role must be
// one of the closed set.
func (s *Service) CreateUser(ctx context.Context, u *User, password string) error {
	if u.Email == "" {
		return fmt.Errorf("email is required")
	}
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}
	if _, err := auth.ParseRole(string(u.Role)); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return s.users.Create(ctx, u)
}

// Login verifies credentials and issues a signed token carrying the user's
// role and clinic binding.
func (s *Service) Login(ctx context.Context, email, password string) (string, *User, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}
	if !u.IsActive {
		return "", nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	clinicID := ""
	if u.ClinicID != nil {
		clinicID = u.ClinicID.String()
	}
	token, err := auth.IssueToken(s.jwt, u.ID.String(), u.Role, clinicID)
	if err != nil {
		return "", nil, err
	}
	return token, u, nil
}

func (s *Service) GetUser(ctx context.Context, id uuid.UUID) (*User, error) {
	return s.users.GetByID(ctx, id)
}

// UpdateUser rewrites profile fields. A non-empty password re-hashes; an
// empty one keeps the stored hash.
func (s *Service) UpdateUser(ctx context.Context, u *User, password string) error {
	if u.Email == "" {
		return fmt.Errorf("email is required")
	}
	if _, err := auth.ParseRole(string(u.Role)); err != nil {
		return err
	}

	existing, err := s.users.GetByID(ctx, u.ID)
	if err != nil {
		return err
	}
	u.PasswordHash = existing.PasswordHash
	if password != "" {
		if len(password) < 8 {
			return fmt.Errorf("password must be at least 8 characters")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		u.PasswordHash = string(hash)
	}
	return s.users.Update(ctx, u)
}

func (s *Service) DeleteUser(ctx context.Context, id uuid.UUID) error {
	return s.users.Delete(ctx, id)
}

func (s *Service) ListUsers(ctx context.Context, limit, offset int) ([]*User, int, error) {
	return s.users.List(ctx, limit, offset)
}
