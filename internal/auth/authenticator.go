package auth

import (
	"context"

	"github.com/roomiesplit/roomiesplit/internal/models"
)

// Authenticator defines the interface for authentication implementations.
// This abstraction allows swapping between different auth methods (password,
// passkeys, OAuth, etc.) without changing the handler layer.
type Authenticator interface {
	// Register creates a new user account with the given credentials.
	// Returns the created user or an error if registration fails.
	Register(ctx context.Context, fullName, email, credential string) (*models.User, error)

	// Authenticate verifies the user's credentials and returns the user if valid.
	// Returns an error if authentication fails.
	Authenticate(ctx context.Context, email, credential string) (*models.User, error)
}
