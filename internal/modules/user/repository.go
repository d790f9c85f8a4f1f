package user

import "context"

// Repository defines data access for users. Lookups of unknown users return
// apperr.ErrNotFound; a taken email returns apperr.ErrConflict.
type Repository interface {
	CreateUser(ctx context.Context, user *User) error
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	GetUserByID(ctx context.Context, id string) (*User, error)
}
