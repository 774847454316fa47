package timetable

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrNotFound is returned when no entry exists for the given id. Handlers map
// it to a 404 instead of a server error.
var ErrNotFound = errors.New("timetable entry not found")

type Repository interface {
	Create(ctx context.Context, e *Entry) error
	GetByID(ctx context.Context, id uuid.UUID) (*Entry, error)
	Update(ctx context.Context, e *Entry) error
	SetActive(ctx context.Context, id uuid.UUID, active bool) (*Entry, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListByOwner(ctx context.Context, owner Owner) ([]*Entry, error)
	// InitializeWeek inserts a whole week of entries for one owner in a single
	// transaction, optionally discarding the owner's existing entries first.
	InitializeWeek(ctx context.Context, owner Owner, entries []*Entry, replaceExisting bool) error
}
