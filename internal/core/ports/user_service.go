package ports

import (
	"context"

	"github.com/acmecorp/adminboard/internal/core/domain"
)

// PreferencesUpdate carries a partial preference change. Nil fields are
// left untouched (merge, not replace).
type PreferencesUpdate struct {
	Theme       *string
	AccentColor *string
}

// UserService defines use-case operations over user accounts.
type UserService interface {
	// ListUsers returns every account. Password hashes never leave the
	// domain model's JSON surface. Returns domain.ErrNoUsers when the
	// store is empty.
	ListUsers(ctx context.Context) ([]*domain.User, error)
	// UpdatePreferences merges update into the stored preference set of
	// the given user and returns the merged result. The session token's
	// embedded snapshot is not re-issued.
	UpdatePreferences(ctx context.Context, userID string, update PreferencesUpdate) (*domain.Preferences, error)
}
