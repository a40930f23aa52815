package ports

import (
	"context"

	"github.com/acmecorp/adminboard/internal/core/domain"
)

// AuthService implements registration, login, and logout.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*domain.User, error)
	// Login returns a signed session token alongside the user. A wrong
	// password and an unknown email both fail with the same
	// domain.ErrInvalidCredentials so callers cannot probe accounts.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// Logout revokes the token's jti for its remaining validity. An
	// unparseable token is a no-op: the cookie is cleared either way.
	Logout(ctx context.Context, rawToken string) error
}
