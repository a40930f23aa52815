package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/acmecorp/adminboard/internal/core/domain"
	"github.com/acmecorp/adminboard/internal/core/session"
)

type stubUserRepo struct {
	users  map[string]*domain.User // keyed by email
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Email]; exists {
		return nil, domain.ErrEmailTaken
	}
	created := cloneUser(user)
	r.nextID++
	created.ID = fmt.Sprintf("user-%d", r.nextID)
	r.users[created.Email] = cloneUser(created)
	return cloneUser(created), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if u, ok := r.users[email]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindAll(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, cloneUser(u))
	}
	return out, nil
}

func (r *stubUserRepo) UpdatePreferences(_ context.Context, id string, prefs domain.Preferences) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			u.Preferences = prefs
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

type stubRevoker struct {
	revoked map[string]time.Duration
}

func newStubRevoker() *stubRevoker {
	return &stubRevoker{revoked: make(map[string]time.Duration)}
}

func (s *stubRevoker) Revoke(_ context.Context, jti string, ttl time.Duration) error {
	s.revoked[jti] = ttl
	return nil
}

func (s *stubRevoker) IsRevoked(_ context.Context, jti string) (bool, error) {
	_, ok := s.revoked[jti]
	return ok, nil
}

func newAuthService(repo *stubUserRepo, revoker *stubRevoker) *AuthService {
	return NewAuthService(repo, revoker, "secret", zerolog.Nop())
}

func TestAuthService_Register_Success(t *testing.T) {
	svc := newAuthService(newStubUserRepo(), newStubRevoker())

	user, err := svc.Register(context.Background(), "Alice", "alice@example.com", "pass123")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.PasswordHash == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if user.Preferences.Theme != domain.ThemeSystem {
		t.Fatalf("expected default theme, got %s", user.Preferences.Theme)
	}
	if user.Preferences.AccentColor != domain.DefaultAccentColor {
		t.Fatalf("expected default accent color, got %s", user.Preferences.AccentColor)
	}
}

func TestAuthService_Register_MissingFields(t *testing.T) {
	svc := newAuthService(newStubUserRepo(), newStubRevoker())

	if _, err := svc.Register(context.Background(), "Bob", "", "pass"); err != domain.ErrMissingFields {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
	if _, err := svc.Register(context.Background(), "Bob", "bob@example.com", ""); err != domain.ErrMissingFields {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo, newStubRevoker())

	first, err := svc.Register(context.Background(), "Bob", "bob@example.com", "pass")
	if err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	if _, err := svc.Register(context.Background(), "Bobby", "bob@example.com", "pass2"); err != domain.ErrEmailTaken {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}

	// The existing record must be untouched.
	existing, _ := repo.FindByEmail(context.Background(), "bob@example.com")
	if existing.Username != "Bob" || existing.PasswordHash != first.PasswordHash {
		t.Fatalf("existing user mutated by duplicate registration: %+v", existing)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	svc := newAuthService(newStubUserRepo(), newStubRevoker())

	if _, err := svc.Register(context.Background(), "Carol", "carol@example.com", "s3cret"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "carol@example.com", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if user == nil || user.Username != "Carol" {
		t.Fatalf("unexpected user: %+v", user)
	}

	claims, err := session.Parse(token, "secret")
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if claims.UserID() != user.ID || claims.Email != "carol@example.com" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if claims.ID == "" {
		t.Fatalf("expected a jti")
	}
	if got := time.Until(claims.ExpiresAt.Time); got > session.TTL || got < session.TTL-time.Minute {
		t.Fatalf("unexpected token lifetime: %v", got)
	}
}

func TestAuthService_Login_FailuresIndistinguishable(t *testing.T) {
	svc := newAuthService(newStubUserRepo(), newStubRevoker())

	if _, err := svc.Register(context.Background(), "Dave", "dave@example.com", "goodpass"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, _, wrongPass := svc.Login(context.Background(), "dave@example.com", "badpass")
	_, _, noUser := svc.Login(context.Background(), "ghost@example.com", "whatever")

	if wrongPass != domain.ErrInvalidCredentials {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongPass)
	}
	if noUser != domain.ErrInvalidCredentials {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", noUser)
	}
	if wrongPass.Error() != noUser.Error() {
		t.Fatalf("failure causes distinguishable: %q vs %q", wrongPass, noUser)
	}
}

func TestAuthService_Logout_RevokesJTI(t *testing.T) {
	revoker := newStubRevoker()
	svc := newAuthService(newStubUserRepo(), revoker)

	if _, err := svc.Register(context.Background(), "Erin", "erin@example.com", "pass"); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	token, _, err := svc.Login(context.Background(), "erin@example.com", "pass")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if err := svc.Logout(context.Background(), token); err != nil {
		t.Fatalf("logout failed: %v", err)
	}

	claims, _ := session.Parse(token, "secret")
	ttl, ok := revoker.revoked[claims.ID]
	if !ok {
		t.Fatalf("jti not revoked")
	}
	if ttl <= 0 || ttl > session.TTL {
		t.Fatalf("unexpected revocation ttl: %v", ttl)
	}
}

func TestAuthService_Logout_UnparseableTokenIsNoop(t *testing.T) {
	revoker := newStubRevoker()
	svc := newAuthService(newStubUserRepo(), revoker)

	if err := svc.Logout(context.Background(), "not-a-token"); err != nil {
		t.Fatalf("logout of garbage token should be a no-op, got %v", err)
	}
	if len(revoker.revoked) != 0 {
		t.Fatalf("nothing should have been revoked")
	}
}
