package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/acmecorp/adminboard/internal/api/metrics"
	"github.com/acmecorp/adminboard/internal/core/session"
)

// ClaimsKey is the echo context key under which validated session
// claims are exposed to downstream handlers.
const ClaimsKey = "session_claims"

// RevocationChecker answers whether a token's jti has been denylisted.
type RevocationChecker interface {
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// SessionConfig configures the session gate.
type SessionConfig struct {
	Secret  string
	Revoked RevocationChecker
	// RedirectToLogin switches rejection from a 401 JSON error to a 302
	// redirect to /login. API routes use the error; page routes the
	// redirect.
	RedirectToLogin bool
}

// Session gates protected routes on a valid session cookie. A missing,
// unverifiable, expired, or revoked token are all treated identically:
// no session. On success the decoded claims are exposed via ClaimsKey.
func Session(cfg SessionConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, reason := resolve(c, cfg.Secret, cfg.Revoked)
			if claims == nil {
				metrics.SessionsRejectedTotal.WithLabelValues(reason).Inc()
				if cfg.RedirectToLogin {
					return c.Redirect(http.StatusFound, "/login")
				}
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
			}

			c.Set(ClaimsKey, claims)
			return next(c)
		}
	}
}

// RedirectAuthenticated is mounted on the public login/register pages:
// a visitor who already holds a valid session is sent to the dashboard
// instead of being offered a second login.
func RedirectAuthenticated(secret string, revoked RevocationChecker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if claims, _ := resolve(c, secret, revoked); claims != nil {
				return c.Redirect(http.StatusFound, "/dashboard")
			}
			return next(c)
		}
	}
}

// resolve extracts and validates the session cookie. It returns the
// claims, or nil plus the rejection reason. A revocation-store outage
// fails open: a live signature beats an unreachable denylist.
func resolve(c echo.Context, secret string, revoked RevocationChecker) (*session.Claims, string) {
	cookie, err := c.Cookie(session.CookieName)
	if err != nil || cookie.Value == "" {
		return nil, "missing"
	}

	claims, err := session.Parse(cookie.Value, secret)
	if err != nil {
		return nil, "invalid"
	}

	if revoked != nil {
		if isRevoked, err := revoked.IsRevoked(c.Request().Context(), claims.ID); err == nil && isRevoked {
			return nil, "revoked"
		}
	}

	return claims, ""
}
