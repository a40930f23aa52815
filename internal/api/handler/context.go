package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/acmecorp/adminboard/internal/api/middleware"
	"github.com/acmecorp/adminboard/internal/core/session"
)

// ctxClaims extracts the session claims injected by the Session
// middleware. A missing value means the route was wired without the
// gate; fail with 401 rather than proceed unauthenticated.
func ctxClaims(c echo.Context) (*session.Claims, error) {
	claims, ok := c.Get(middleware.ClaimsKey).(*session.Claims)
	if !ok || claims == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return claims, nil
}
