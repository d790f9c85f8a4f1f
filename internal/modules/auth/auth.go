package auth

import "context"

// Service defines the interface for authentication-related business logic.
type Service interface {
	Login(ctx context.Context, email, password string) (string, error)
	// Verify checks a signed token and returns the user id it was issued for.
	Verify(token string) (string, error)
}
