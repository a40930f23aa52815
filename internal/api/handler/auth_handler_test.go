package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/acmecorp/adminboard/internal/core/domain"
	"github.com/acmecorp/adminboard/internal/core/session"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, name, email, password string) (*domain.User, error)
	loginFn    func(ctx context.Context, email, password string) (string, *domain.User, error)
	logoutFn   func(ctx context.Context, rawToken string) error
}

func (s *stubAuthService) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	return s.registerFn(ctx, name, email, password)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) Logout(ctx context.Context, rawToken string) error {
	return s.logoutFn(ctx, rawToken)
}

func newAuthEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req
}

func TestAuthHandler_Register_Success(t *testing.T) {
	e := newAuthEcho()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, name, email, password string) (*domain.User, error) {
			if name != "Alice" || email != "a@x.com" || password != "p" {
				t.Fatalf("unexpected args: %s %s %s", name, email, password)
			}
			return &domain.User{
				ID:           "id-1",
				Email:        email,
				Username:     name,
				PasswordHash: "$2a$10$secret",
				Preferences:  domain.DefaultPreferences(),
			}, nil
		},
	}
	h := NewAuthHandler(stub, false)

	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/auth/register", `{"name":"Alice","email":"a@x.com","password":"p"}`), rec)

	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "password") || strings.Contains(rec.Body.String(), "$2a$") {
		t.Fatalf("password material leaked: %s", rec.Body.String())
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	user, ok := resp["user"].(map[string]any)
	if !ok {
		t.Fatalf("expected user in response")
	}
	if user["email"] != "a@x.com" || user["username"] != "Alice" {
		t.Fatalf("unexpected user payload: %+v", user)
	}
}

func TestAuthHandler_Register_ValidationDetails(t *testing.T) {
	e := newAuthEcho()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, name, email, password string) (*domain.User, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	h := NewAuthHandler(stub, false)

	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/auth/register", `{"name":"Alice"}`), rec)

	err := h.Register(c)
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(ve.Details) == 0 {
		t.Fatalf("expected field details")
	}
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	e := newAuthEcho()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, name, email, password string) (*domain.User, error) {
			return nil, domain.ErrEmailTaken
		},
	}
	h := NewAuthHandler(stub, false)

	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/auth/register", `{"name":"Bob","email":"b@x.com","password":"p"}`), rec)

	if err := h.Register(c); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthHandler_Login_SetsSessionCookie(t *testing.T) {
	e := newAuthEcho()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, *domain.User, error) {
			return "signed-token", &domain.User{ID: "id-1", Email: email, Username: "alice"}, nil
		},
	}
	h := NewAuthHandler(stub, false)

	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/auth/login", `{"email":"a@x.com","password":"p"}`), rec)

	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected one cookie, got %d", len(cookies))
	}
	cookie := cookies[0]
	if cookie.Name != session.CookieName || cookie.Value != "signed-token" {
		t.Fatalf("unexpected cookie: %+v", cookie)
	}
	if !cookie.HttpOnly {
		t.Fatalf("cookie must be HTTP-only")
	}
	if cookie.SameSite != http.SameSiteStrictMode {
		t.Fatalf("cookie must be SameSite=Strict")
	}
	if cookie.Path != "/" {
		t.Fatalf("cookie path must be /, got %q", cookie.Path)
	}
	if cookie.MaxAge != int(session.TTL.Seconds()) {
		t.Fatalf("expected max-age %d, got %d", int(session.TTL.Seconds()), cookie.MaxAge)
	}
	if cookie.Secure {
		t.Fatalf("secure flag should be off outside production")
	}
}

func TestAuthHandler_Login_SecureCookieInProduction(t *testing.T) {
	e := newAuthEcho()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, *domain.User, error) {
			return "signed-token", &domain.User{ID: "id-1"}, nil
		},
	}
	h := NewAuthHandler(stub, true)

	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/auth/login", `{"email":"a@x.com","password":"p"}`), rec)

	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !rec.Result().Cookies()[0].Secure {
		t.Fatalf("production cookie must carry the Secure flag")
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	e := newAuthEcho()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, *domain.User, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(stub, false)

	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/auth/login", `{"email":"a@x.com","password":"wrong"}`), rec)

	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if len(rec.Result().Cookies()) != 0 {
		t.Fatalf("no cookie may be set on failed login")
	}
}

func TestAuthHandler_Login_UserNotFoundIndistinguishable(t *testing.T) {
	e := newAuthEcho()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, *domain.User, error) {
			return "", nil, domain.ErrUserNotFound
		},
	}
	h := NewAuthHandler(stub, false)

	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/auth/login", `{"email":"ghost@x.com","password":"p"}`), rec)

	// A lookup miss must surface exactly like a bad password.
	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	e := newAuthEcho()
	var revokedToken string
	stub := &stubAuthService{
		logoutFn: func(ctx context.Context, rawToken string) error {
			revokedToken = rawToken
			return nil
		},
	}
	h := NewAuthHandler(stub, false)

	req := jsonRequest(http.MethodPost, "/auth/logout", "")
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: "signed-token"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if revokedToken != "signed-token" {
		t.Fatalf("service not asked to revoke the token")
	}

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].MaxAge >= 0 {
		t.Fatalf("expected an expiring cookie, got %+v", cookies)
	}
}

func TestAuthHandler_Logout_NoCookie(t *testing.T) {
	e := newAuthEcho()
	stub := &stubAuthService{
		logoutFn: func(ctx context.Context, rawToken string) error {
			t.Fatalf("nothing to revoke without a cookie")
			return nil
		},
	}
	h := NewAuthHandler(stub, false)

	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/auth/logout", ""), rec)

	if err := h.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("logout without a session should still succeed, got %d", rec.Code)
	}
}
