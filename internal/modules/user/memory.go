package user

import (
	"context"
	"errors"

	"github.com/georgemunganga/productions-api/internal/apperr"
	"github.com/georgemunganga/productions-api/internal/memstore"
)

type memoryRepository struct {
	store *memstore.Store[User]
}

// NewMemoryRepository creates an in-memory user repository with unique emails.
func NewMemoryRepository() Repository {
	return &memoryRepository{
		store: memstore.New(
			func(u User) string { return u.ID.String() },
			memstore.Unique(func(u User) string { return u.Email }),
		),
	}
}

func (r *memoryRepository) CreateUser(ctx context.Context, user *User) error {
	err := r.store.Insert(ctx, *user)
	if errors.Is(err, memstore.ErrDuplicate) {
		return apperr.ErrConflict
	}
	return err
}

func (r *memoryRepository) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	return found(r.store.GetUnique(ctx, email))
}

func (r *memoryRepository) GetUserByID(ctx context.Context, id string) (*User, error) {
	return found(r.store.Get(ctx, id))
}

func found(u User, err error) (*User, error) {
	if errors.Is(err, memstore.ErrNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
