// Package session defines the signed session token format shared by the
// issuer (auth service) and the authorizer (session middleware).
package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/acmecorp/adminboard/internal/core/domain"
)

// TTL is the fixed validity window of a session token. Tokens are not
// refreshed; a new login issues a new token.
const TTL = time.Hour

// CookieName is the cookie carrying the session token.
const CookieName = "token"

// Claims is the decoded payload of a session token. Preferences are a
// snapshot taken at issuance; the store remains the source of truth
// after any preference update.
type Claims struct {
	Email       string             `json:"email"`
	Username    string             `json:"username"`
	Preferences domain.Preferences `json:"preferences"`
	jwt.RegisteredClaims
}

// UserID returns the subject claim (the user's store id).
func (c *Claims) UserID() string {
	return c.Subject
}

// New builds the claims for a fresh session: subject is the user id,
// jti is a random UUID so individual tokens can be revoked, expiry is
// now+TTL.
func New(user *domain.User, now time.Time) *Claims {
	return &Claims{
		Email:       user.Email,
		Username:    user.Username,
		Preferences: user.Preferences,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TTL)),
		},
	}
}

// Sign serializes claims into a signed HS256 token string.
func Sign(claims *Claims, secret string) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}

// Parse verifies signature and expiry and returns the decoded claims.
// Any failure (bad signature, wrong algorithm, expired) is equivalent
// to having no session at all.
func Parse(raw, secret string) (*Claims, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !tkn.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}
	return claims, nil
}
