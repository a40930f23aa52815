package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/acmecorp/adminboard/internal/api/metrics"
	"github.com/acmecorp/adminboard/internal/core/domain"
	"github.com/acmecorp/adminboard/internal/core/ports"
	"github.com/acmecorp/adminboard/internal/core/session"
)

// bcryptCost matches the work factor the dashboard has always used.
const bcryptCost = 10

// dummyHash is compared against on the unknown-email path so that a
// login probe costs one bcrypt round regardless of whether the email
// exists.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("adminboard-dummy"), bcryptCost)

// TokenRevoker is the server-side session revocation set (Redis).
type TokenRevoker interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// AuthService implements registration, login, and logout.
type AuthService struct {
	repo      ports.UserRepository
	revoker   TokenRevoker
	jwtSecret string
	logger    zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, revoker TokenRevoker, jwtSecret string, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, revoker: revoker, jwtSecret: jwtSecret, logger: logger}
}

// Register hashes the password and persists a new user with default
// preferences. A duplicate email fails with domain.ErrEmailTaken.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	if email == "" || password == "" || name == "" {
		return nil, domain.ErrMissingFields
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Email:        email,
		Username:     name,
		PasswordHash: string(hash),
		Preferences:  domain.DefaultPreferences(),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		metrics.RegistrationsTotal.WithLabelValues("failure").Inc()
		return nil, err
	}

	metrics.RegistrationsTotal.WithLabelValues("success").Inc()
	s.logger.Info().Str("user_id", created.ID).Msg("user registered")
	return created, nil
}

// Login verifies the credentials and issues a signed session token. An
// unknown email and a wrong password are indistinguishable: both return
// domain.ErrInvalidCredentials after exactly one bcrypt comparison.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := session.Sign(session.New(user, time.Now().UTC()), s.jwtSecret)
	if err != nil {
		return "", nil, err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.logger.Info().Str("user_id", user.ID).Msg("login successful")
	return token, user, nil
}

// Logout denylists the token's jti until its natural expiry, so a
// captured copy of the cookie stops working immediately. Tokens that no
// longer verify need no revocation.
func (s *AuthService) Logout(ctx context.Context, rawToken string) error {
	claims, err := session.Parse(rawToken, s.jwtSecret)
	if err != nil {
		return nil
	}

	remaining := time.Until(claims.ExpiresAt.Time)
	if remaining <= 0 {
		return nil
	}

	if err := s.revoker.Revoke(ctx, claims.ID, remaining); err != nil {
		s.logger.Error().Err(err).Str("jti", claims.ID).Msg("failed to revoke session")
		return err
	}

	s.logger.Info().Str("user_id", claims.UserID()).Msg("session revoked")
	return nil
}
