package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/acmecorp/adminboard/internal/api/handler"
	"github.com/acmecorp/adminboard/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
// Code distinguishes same-status failures (a malformed id and a
// validation failure are both 400 but carry different codes), and
// Details lists per-field validation messages.
type errorResponse struct {
	Error   string   `json:"error"`
	Code    string   `json:"code,omitempty"`
	Details []string `json:"details,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>", ...}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, body := resolveError(err, log, c)
		_ = c.JSON(code, body)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, errorResponse) {
	// Validation failures carry their per-field details.
	var ve *handler.ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest, errorResponse{
			Error:   "validation failed",
			Code:    "validation_failed",
			Details: ve.Details,
		}
	}

	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, errorResponse{Error: fmt.Sprintf("%v", he.Message)}
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, errorResponse{Error: "invalid credentials", Code: "invalid_credentials"}
	case errors.Is(err, domain.ErrEmailTaken):
		return http.StatusConflict, errorResponse{Error: "email already registered", Code: "conflict"}
	case errors.Is(err, domain.ErrMissingFields):
		return http.StatusBadRequest, errorResponse{Error: err.Error(), Code: "validation_failed"}
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, errorResponse{Error: "user not found", Code: "not_found"}
	case errors.Is(err, domain.ErrNoUsers):
		return http.StatusNotFound, errorResponse{Error: "no users found", Code: "not_found"}
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, errorResponse{Error: "showcase item not found", Code: "not_found"}
	case errors.Is(err, domain.ErrInvalidUserID), errors.Is(err, domain.ErrInvalidItemID):
		return http.StatusBadRequest, errorResponse{Error: err.Error(), Code: "invalid_id"}
	case errors.Is(err, domain.ErrInvalidTheme),
		errors.Is(err, domain.ErrInvalidStatus),
		errors.Is(err, domain.ErrInvalidPriority):
		return http.StatusBadRequest, errorResponse{
			Error:   "validation failed",
			Code:    "validation_failed",
			Details: []string{err.Error()},
		}
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, errorResponse{Error: "internal server error"}
}
