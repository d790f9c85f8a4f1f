package user

import "context"

// Service defines the interface for user-related business logic.
type Service interface {
	RegisterUser(ctx context.Context, req RegisterRequest) (*User, error)
	GetUser(ctx context.Context, id string) (*User, error)
	// Exists reports whether a user with id is registered. Malformed ids are
	// reported as absent.
	Exists(ctx context.Context, id string) (bool, error)
}
