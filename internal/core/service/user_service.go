package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/acmecorp/adminboard/internal/core/domain"
	"github.com/acmecorp/adminboard/internal/core/ports"
)

// UserService implements the users listing and the preference manager.
type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

// ListUsers returns every account. The password hash is excluded from
// the JSON surface by the domain model itself.
func (s *UserService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, domain.ErrNoUsers
	}
	return users, nil
}

// UpdatePreferences merges the partial update into the stored
// preference set and returns the merged result. Fields absent from the
// update are left untouched. The caller's session token keeps its
// issuance-time snapshot; the store is the source of truth from here on.
func (s *UserService) UpdatePreferences(ctx context.Context, userID string, update ports.PreferencesUpdate) (*domain.Preferences, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	prefs := user.Preferences
	if update.Theme != nil {
		theme := domain.Theme(*update.Theme)
		if !theme.IsValid() {
			return nil, domain.ErrInvalidTheme
		}
		prefs.Theme = theme
	}
	if update.AccentColor != nil {
		prefs.AccentColor = *update.AccentColor
	}

	updated, err := s.repo.UpdatePreferences(ctx, userID, prefs)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("user_id", userID).
		Str("theme", string(updated.Preferences.Theme)).
		Msg("preferences updated")
	return &updated.Preferences, nil
}
