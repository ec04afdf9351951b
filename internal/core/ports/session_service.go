package ports

import (
	"context"

	"github.com/Ajayhariharan/activax/internal/core/domain"
)

// SessionService authenticates the single active session.
type SessionService interface {
	// Login verifies the credentials and replaces the current session,
	// returning a bearer token bound to it.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// Logout clears the current session. It never fails.
	Logout(ctx context.Context)
	// Authenticate resolves a bearer token to the live session user. Tokens
	// outlive neither logout nor a process restart.
	Authenticate(ctx context.Context, token string) (*domain.User, error)
}
