package ports

import (
	"context"

	"github.com/acmecorp/adminboard/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	// Create inserts a new user. Returns domain.ErrEmailTaken when the
	// email is already registered; the existing record is untouched.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindByID returns domain.ErrInvalidUserID for a malformed id and
	// domain.ErrUserNotFound for a well-formed but absent one.
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindAll(ctx context.Context) ([]*domain.User, error)
	// UpdatePreferences overwrites the preference sub-document and
	// returns the user as stored after the write.
	UpdatePreferences(ctx context.Context, id string, prefs domain.Preferences) (*domain.User, error)
}
