package ports

import (
	"context"

	"github.com/carelink/call-center-api/internal/core/domain"
)

// Patch carries a shallow merge-patch: present keys overwrite the stored
// record's fields, absent keys are retained. The store ignores attempts to
// patch "id" or "createdAt".
type Patch map[string]any

// UserRepository is the CRUD contract over the users collection. GetAll
// returns records in insertion order; Delete of an absent id is a no-op.
type UserRepository interface {
	GetAll(ctx context.Context) ([]domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	Add(ctx context.Context, u domain.User) (*domain.User, error)
	Update(ctx context.Context, id string, patch Patch) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}

// ClientRepository is the CRUD contract over the clients collection.
type ClientRepository interface {
	GetAll(ctx context.Context) ([]domain.Client, error)
	GetByID(ctx context.Context, id string) (*domain.Client, error)
	Add(ctx context.Context, c domain.Client) (*domain.Client, error)
	Update(ctx context.Context, id string, patch Patch) (*domain.Client, error)
	Delete(ctx context.Context, id string) error
}

// CategoryRepository is the CRUD contract over the categories collection.
type CategoryRepository interface {
	GetAll(ctx context.Context) ([]domain.Category, error)
	GetByID(ctx context.Context, id string) (*domain.Category, error)
	Add(ctx context.Context, c domain.Category) (*domain.Category, error)
	Update(ctx context.Context, id string, patch Patch) (*domain.Category, error)
	Delete(ctx context.Context, id string) error
}

// CallRepository is the CRUD contract over the calls collection. Update and
// Delete are part of the store contract but exercised by no view today;
// they are kept for completeness.
type CallRepository interface {
	GetAll(ctx context.Context) ([]domain.Call, error)
	GetByID(ctx context.Context, id string) (*domain.Call, error)
	Add(ctx context.Context, c domain.Call) (*domain.Call, error)
	Update(ctx context.Context, id string, patch Patch) (*domain.Call, error)
	Delete(ctx context.Context, id string) error
}

// SessionStore holds the single current-user record ("who is logged in").
// Current returns (nil, nil) when no session exists.
type SessionStore interface {
	Current(ctx context.Context) (*domain.User, error)
	Set(ctx context.Context, u domain.User) error
	Clear(ctx context.Context) error
}
